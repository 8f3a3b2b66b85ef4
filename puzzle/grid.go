// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package puzzle

import (
	"errors"
	"fmt"
)

var errInvalidGrid = errors.New("invalid grid")

// Position of a cell on a Grid.
type Position struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

// Grid is a rectangle of cells indexed in row-major order.
type Grid struct {
	Rows    int `json:"rows"`
	Columns int `json:"columns"`
}

func NewGrid(rows, columns int) (Grid, error) {
	if rows <= 0 || columns <= 0 {
		return Grid{}, fmt.Errorf("%w: %dx%d", errInvalidGrid, rows, columns)
	}
	return Grid{
		Rows:    rows,
		Columns: columns,
	}, nil
}

// Cells returns the number of cells of the grid.
func (g Grid) Cells() int {
	return g.Rows * g.Columns
}

func (g Grid) Contains(p Position) bool {
	return 0 <= p.Row && p.Row < g.Rows && 0 <= p.Column && p.Column < g.Columns
}

// Index returns the row-major index of [p].
func (g Grid) Index(p Position) int {
	return p.Row*g.Columns + p.Column
}

// Position is the inverse of Index.
func (g Grid) Position(index int) Position {
	return Position{
		Row:    index / g.Columns,
		Column: index % g.Columns,
	}
}

func (g Grid) String() string {
	return fmt.Sprintf("%dx%d", g.Rows, g.Columns)
}
