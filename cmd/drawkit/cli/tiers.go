// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/drawkit/reward"
)

const (
	TierKey     = "tier"
	DistinctKey = "distinct"
)

func tiersCommand(env *environment) *cobra.Command {
	c := &cobra.Command{
		Use:   "tiers",
		Short: "Picks tiers of a weighted reward table",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			flags := c.Flags()
			tierStrs, err := flags.GetStringArray(TierKey)
			if err != nil {
				return err
			}
			amount, err := flags.GetInt(AmountKey)
			if err != nil {
				return err
			}
			distinct, err := flags.GetBool(DistinctKey)
			if err != nil {
				return err
			}

			tiers := make([]reward.Tier, len(tierStrs))
			for i, tierStr := range tierStrs {
				tiers[i], err = reward.ParseTier(tierStr)
				if err != nil {
					return err
				}
			}
			table, err := reward.NewTable(tiers...)
			if err != nil {
				return err
			}

			var picked []reward.Tier
			if distinct {
				picked, err = table.PickDistinct(env.sampler, amount)
			} else {
				picked, err = table.Pick(env.sampler, amount)
			}
			if err != nil {
				return err
			}

			names := make([]string, len(picked))
			for i, tier := range picked {
				names[i] = tier.Name
				env.log.Verbo("picked tier",
					zap.String("name", tier.Name),
					zap.Float64("probability", table.Probability(tier.Name)),
				)
			}
			return writeResult(c, names)
		},
	}
	flags := c.Flags()
	flags.StringArray(TierKey, nil, "Tier of the table, formatted as name=weight. May be repeated")
	flags.Int(AmountKey, 1, "Number of tiers to pick")
	flags.Bool(DistinctKey, false, "Whether every picked tier must be different")
	return c
}
