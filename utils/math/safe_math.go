// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package math

import (
	"errors"
	"math/bits"
)

var ErrOverflow = errors.New("overflow")

// Add64 returns:
// 1) a + b
// 2) If there is overflow, an error
func Add64(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, ErrOverflow
	}
	return sum, nil
}

// Sum64 returns the sum of [values], or an error if the sum overflows.
func Sum64(values ...uint64) (uint64, error) {
	var sum uint64
	for _, value := range values {
		var err error
		sum, err = Add64(sum, value)
		if err != nil {
			return 0, err
		}
	}
	return sum, nil
}
