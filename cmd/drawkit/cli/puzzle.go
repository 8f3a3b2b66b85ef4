// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/drawkit/puzzle"
	"github.com/ava-labs/drawkit/utils/set"
)

const (
	RowsKey     = "rows"
	ColumnsKey  = "columns"
	CountKey    = "count"
	OccupiedKey = "occupied"
	LengthsKey  = "lengths"
	AlphabetKey = "alphabet"
)

type placement struct {
	Grid      puzzle.Grid       `json:"grid"`
	Cells     []int             `json:"cells"`
	Positions []puzzle.Position `json:"positions"`
}

func gridCommand(env *environment) *cobra.Command {
	c := &cobra.Command{
		Use:   "grid",
		Short: "Places items on distinct free cells of a grid",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			flags := c.Flags()
			rows, err := flags.GetInt(RowsKey)
			if err != nil {
				return err
			}
			columns, err := flags.GetInt(ColumnsKey)
			if err != nil {
				return err
			}
			count, err := flags.GetInt(CountKey)
			if err != nil {
				return err
			}
			occupied, err := flags.GetIntSlice(OccupiedKey)
			if err != nil {
				return err
			}

			grid, err := puzzle.NewGrid(rows, columns)
			if err != nil {
				return err
			}
			cells, err := puzzle.PlaceItems(env.sampler, grid, count, set.Of(occupied...))
			if err != nil {
				return err
			}

			result := placement{
				Grid:      grid,
				Cells:     cells,
				Positions: make([]puzzle.Position, len(cells)),
			}
			for i, cell := range cells {
				result.Positions[i] = grid.Position(cell)
			}
			env.log.Debug("placed items",
				zap.Stringer("grid", grid),
				zap.Ints("cells", cells),
			)
			return writeResult(c, result)
		},
	}
	flags := c.Flags()
	flags.Int(RowsKey, 3, "Number of rows of the grid")
	flags.Int(ColumnsKey, 3, "Number of columns of the grid")
	flags.Int(CountKey, 1, "Number of items to place")
	flags.IntSlice(OccupiedKey, nil, "Row-major indices of cells that are already occupied")
	return c
}

func codesCommand(env *environment) *cobra.Command {
	c := &cobra.Command{
		Use:   "codes",
		Short: "Generates random codes, ordered by length",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			flags := c.Flags()
			count, err := flags.GetInt(CountKey)
			if err != nil {
				return err
			}
			lengths, err := flags.GetIntSlice(LengthsKey)
			if err != nil {
				return err
			}
			alphabet, err := flags.GetString(AlphabetKey)
			if err != nil {
				return err
			}

			codes, err := puzzle.CodeList(env.sampler, alphabet, lengths, count)
			if err != nil {
				return err
			}
			env.log.Debug("generated codes",
				zap.Int("count", count),
				zap.Ints("lengths", lengths),
			)
			return writeResult(c, codes)
		},
	}
	flags := c.Flags()
	flags.Int(CountKey, 4, "Number of codes to generate")
	flags.IntSlice(LengthsKey, []int{4}, "Lengths the codes cycle through")
	flags.String(AlphabetKey, puzzle.DefaultAlphabet, "Characters the codes are made of")
	return c
}
