package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinMax(t *testing.T) {
	require.Equal(t, 1, Min(1, 2))
	require.Equal(t, -3.5, Min(2.0, -3.5))
	require.Equal(t, 2, Max(1, 2))

	max, ok := MaxSlice([]int{3, 9, -1})
	require.True(t, ok)
	require.Equal(t, 9, max)

	_, ok = MaxSlice([]int{})
	require.False(t, ok)
}

func TestSaturatingSub(t *testing.T) {
	require.Equal(t, 2, SaturatingSub(5, 3))
	require.Equal(t, 0, SaturatingSub(3, 5))
	require.Equal(t, 0, SaturatingSub(3, 3))
}
