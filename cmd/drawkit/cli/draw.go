// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/ava-labs/drawkit/utils/sampler"
)

const (
	AmountKey  = "amount"
	ValuesKey  = "values"
	WeightsKey = "weights"
)

type drawConfig struct {
	Amount  int
	Values  []string
	Weights []uint64
}

func addDrawFlags(flags *pflag.FlagSet, weighted bool) {
	flags.Int(AmountKey, 1, "Number of values to draw")
	flags.StringSlice(ValuesKey, nil, "Values to draw from")
	if weighted {
		flags.UintSlice(WeightsKey, nil, "Weight of each value")
	}
}

func parseDrawFlags(flags *pflag.FlagSet, weighted bool) (drawConfig, error) {
	amount, err := flags.GetInt(AmountKey)
	if err != nil {
		return drawConfig{}, err
	}
	values, err := flags.GetStringSlice(ValuesKey)
	if err != nil {
		return drawConfig{}, err
	}
	config := drawConfig{
		Amount: amount,
		Values: values,
	}
	if !weighted {
		return config, nil
	}

	weights, err := flags.GetUintSlice(WeightsKey)
	if err != nil {
		return drawConfig{}, err
	}
	config.Weights = make([]uint64, len(weights))
	for i, weight := range weights {
		config.Weights[i] = uint64(weight)
	}
	return config, nil
}

func elementsCommand(env *environment) *cobra.Command {
	c := &cobra.Command{
		Use:   "elements",
		Short: "Draws values uniformly with replacement",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			config, err := parseDrawFlags(c.Flags(), false)
			if err != nil {
				return err
			}

			drawn, err := sampler.DrawElements(env.sampler, config.Amount, config.Values)
			if err != nil {
				return err
			}
			env.log.Debug("drew elements",
				zap.Int("amount", config.Amount),
				zap.Int("numValues", len(config.Values)),
			)
			return writeResult(c, drawn)
		},
	}
	addDrawFlags(c.Flags(), false)
	return c
}

func weightedCommand(env *environment) *cobra.Command {
	c := &cobra.Command{
		Use:   "weighted",
		Short: "Draws weighted values with replacement",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			config, err := parseDrawFlags(c.Flags(), true)
			if err != nil {
				return err
			}

			drawn, err := sampler.DrawWithWeights(env.sampler, config.Amount, config.Values, config.Weights)
			if err != nil {
				return err
			}
			env.log.Debug("drew weighted elements",
				zap.Int("amount", config.Amount),
				zap.Uint64s("weights", config.Weights),
			)
			return writeResult(c, drawn)
		},
	}
	addDrawFlags(c.Flags(), true)
	return c
}

func uniqueCommand(env *environment) *cobra.Command {
	c := &cobra.Command{
		Use:   "unique",
		Short: "Draws distinct weighted values",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			config, err := parseDrawFlags(c.Flags(), true)
			if err != nil {
				return err
			}

			drawn, err := sampler.DrawUniqueWithWeights(env.sampler, config.Amount, config.Values, config.Weights)
			if err != nil {
				return err
			}
			env.log.Debug("drew unique elements",
				zap.Int("amount", config.Amount),
				zap.Uint64s("weights", config.Weights),
			)
			return writeResult(c, drawn)
		},
	}
	addDrawFlags(c.Flags(), true)
	return c
}
