// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cli

import (
	"github.com/spf13/cobra"

	"github.com/ava-labs/drawkit/config"
)

// Command returns the drawkit root command.
func Command() *cobra.Command {
	env := &environment{}
	c := &cobra.Command{
		Use:                "drawkit",
		Short:              "Draws random values, optionally weighted and without replacement",
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  env.init,
		PersistentPostRunE: env.close,
	}
	c.PersistentFlags().AddFlagSet(config.BuildFlagSet())
	c.AddCommand(
		exceptCommand(env),
		elementsCommand(env),
		weightedCommand(env),
		uniqueCommand(env),
		gridCommand(env),
		codesCommand(env),
		tiersCommand(env),
	)
	return c
}
