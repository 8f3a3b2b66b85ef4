// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package puzzle

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/exp/slices"

	"github.com/ava-labs/drawkit/utils/sampler"
)

// DefaultAlphabet omits characters that are easily confused with each other.
const DefaultAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

var (
	errNoLengths      = errors.New("no code lengths")
	errInvalidLength  = errors.New("code length must be positive")
	errEmptyAlphabet  = errors.New("empty alphabet")
	errNegativeAmount = errors.New("negative number of codes")
)

// CodeList returns [count] codes made of characters drawn, with replacement,
// from [alphabet]. The length of the i-th generated code is
// lengths[i % len(lengths)]. Codes are sorted by ascending length; codes of
// equal length keep their generation order.
func CodeList(s sampler.Sampler, alphabet string, lengths []int, count int) ([]string, error) {
	switch {
	case count < 0:
		return nil, fmt.Errorf("%w: %d", errNegativeAmount, count)
	case count == 0:
		return []string{}, nil
	case len(lengths) == 0:
		return nil, errNoLengths
	case len(alphabet) == 0:
		return nil, errEmptyAlphabet
	}

	characters := []rune(alphabet)
	codes := make([]string, count)
	for i := range codes {
		length := lengths[i%len(lengths)]
		if length <= 0 {
			return nil, fmt.Errorf("%w: %d", errInvalidLength, length)
		}

		code, err := sampler.DrawElements(s, length, characters)
		if err != nil {
			return nil, err
		}
		codes[i] = string(code)
	}

	slices.SortStableFunc(codes, func(a, b string) bool {
		return utf8.RuneCountInString(a) < utf8.RuneCountInString(b)
	})
	return codes, nil
}
