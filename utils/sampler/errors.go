// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "errors"

var (
	// ErrInvalidArgument is returned when a draw is requested with malformed
	// input: a negative amount, mismatched values and weights, more unique
	// elements than the population holds, or weights without any mass.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrExhausted is returned when every candidate of a range is excluded.
	ErrExhausted = errors.New("no eligible value")
)
