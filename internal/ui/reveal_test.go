package ui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRevealMarksOnce(t *testing.T) {
	var r Reveal
	require.False(t, r.Seen("mentor-0"))
	require.Zero(t, r.Len())

	require.True(t, r.MarkInView("mentor-0"))
	require.False(t, r.MarkInView("mentor-0"), "second mark is not new")
	require.True(t, r.MarkInView("agenda-1"))
	require.False(t, r.MarkInView(""))

	require.True(t, r.Seen("mentor-0"))
	require.Equal(t, 2, r.Len())
	require.Equal(t, []string{"agenda-1", "mentor-0"}, r.Keys())
}

func TestRevealZeroValueKeys(t *testing.T) {
	var r Reveal
	require.NotNil(t, r.Keys())
	require.Empty(t, r.Keys())
}
