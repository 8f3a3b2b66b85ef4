// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package puzzle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	tests := []struct {
		name        string
		rows        int
		columns     int
		expectedErr error
	}{
		{
			name:    "valid",
			rows:    3,
			columns: 4,
		},
		{
			name:        "no rows",
			rows:        0,
			columns:     4,
			expectedErr: errInvalidGrid,
		},
		{
			name:        "negative columns",
			rows:        3,
			columns:     -1,
			expectedErr: errInvalidGrid,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewGrid(test.rows, test.columns)
			require.ErrorIs(t, err, test.expectedErr)
		})
	}
}

func TestGridIndexing(t *testing.T) {
	require := require.New(t)

	g, err := NewGrid(3, 4)
	require.NoError(err)
	require.Equal(12, g.Cells())
	require.Equal("3x4", g.String())

	for i := 0; i < g.Cells(); i++ {
		p := g.Position(i)
		require.True(g.Contains(p))
		require.Equal(i, g.Index(p))
	}
	require.Equal(Position{Row: 2, Column: 1}, g.Position(9))
	require.False(g.Contains(Position{Row: 3, Column: 0}))
	require.False(g.Contains(Position{Row: 0, Column: -1}))
}
