// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/ava-labs/drawkit/utils/set"
)

const (
	MinKey    = "min"
	MaxKey    = "max"
	ExceptKey = "except"
)

func exceptCommand(env *environment) *cobra.Command {
	c := &cobra.Command{
		Use:   "except",
		Short: "Draws one integer of [min, max) that isn't excepted",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			minInclusive, maxExclusive, exceptions, err := parseExceptFlags(c.Flags())
			if err != nil {
				return err
			}

			value, err := env.sampler.RandomWithExceptions(minInclusive, maxExclusive, exceptions)
			if err != nil {
				return err
			}
			env.log.Debug("drew value",
				zap.Int("min", minInclusive),
				zap.Int("max", maxExclusive),
				zap.Int("numExceptions", exceptions.Len()),
				zap.Int("value", value),
			)
			return writeResult(c, value)
		},
	}
	flags := c.Flags()
	flags.Int(MinKey, 0, "Smallest value that may be drawn")
	flags.Int(MaxKey, 0, "Values must be smaller than this")
	flags.IntSlice(ExceptKey, nil, "Values that may not be drawn")
	return c
}

func parseExceptFlags(flags *pflag.FlagSet) (int, int, set.Set[int], error) {
	minInclusive, err := flags.GetInt(MinKey)
	if err != nil {
		return 0, 0, nil, err
	}
	maxExclusive, err := flags.GetInt(MaxKey)
	if err != nil {
		return 0, 0, nil, err
	}
	exceptions, err := flags.GetIntSlice(ExceptKey)
	if err != nil {
		return 0, 0, nil, err
	}
	return minInclusive, maxExclusive, set.Of(exceptions...), nil
}
