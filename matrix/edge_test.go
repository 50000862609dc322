package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bellman/matrix"
)

func TestEdgeList_RowMajor(t *testing.T) {
	edges, err := matrix.EdgeList(textbook())
	require.NoError(t, err)

	want := []matrix.Edge{
		{0, 1, 6}, {0, 3, 7},
		{1, 2, 5}, {1, 3, 8}, {1, 4, -4},
		{2, 1, -2},
		{3, 2, -3}, {3, 4, 9},
		{4, 0, 2}, {4, 2, 7},
	}
	require.Equal(t, want, edges)
}

func TestEdgeList_SkipsZeroCells(t *testing.T) {
	edges, err := matrix.EdgeList([][]int64{{0, 0}, {0, 0}})
	require.NoError(t, err)
	assert.Empty(t, edges)
}

func TestEdgeList_SelfLoopIncluded(t *testing.T) {
	edges, err := matrix.EdgeList([][]int64{{-1}})
	require.NoError(t, err)
	assert.Equal(t, []matrix.Edge{{From: 0, To: 0, Weight: -1}}, edges)
}

func TestEdgeList_RejectsMalformed(t *testing.T) {
	_, err := matrix.EdgeList(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.EdgeList([][]int64{{0, 1}, {1}})
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestEdge_String(t *testing.T) {
	assert.Equal(t, "1->4(-4)", matrix.Edge{From: 1, To: 4, Weight: -4}.String())
}

func TestValidateIndex(t *testing.T) {
	require.NoError(t, matrix.ValidateIndex(0, 1))
	require.ErrorIs(t, matrix.ValidateIndex(1, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, matrix.ValidateIndex(-1, 3), matrix.ErrOutOfRange)
	require.ErrorIs(t, matrix.ValidateIndex(0, 0), matrix.ErrOutOfRange)
}
