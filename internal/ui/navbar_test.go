package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNavbar() *Navbar {
	return NewNavbar([]Link{
		{Label: "Agenda", Target: "#agenda"},
		{Label: "Mentors", Target: "#mentors"},
	}, Link{Label: "Book 1:1", Target: "#book"}, DefaultSolidThreshold)
}

func TestNavbarSolidFollowsOffset(t *testing.T) {
	w := NewWindow(0)
	n := testNavbar()
	n.Mount(w)
	t.Cleanup(n.Unmount)

	require.False(t, n.Solid(), "offset 0 should render transparent")

	w.ScrollTo(100)
	require.True(t, n.Solid(), "offset 100 should render solid")

	w.ScrollTo(10)
	require.False(t, n.Solid(), "offset 10 should render transparent")
}

func TestNavbarSolidIsFunctionOfLatestOffset(t *testing.T) {
	w := NewWindow(0)
	n := testNavbar()
	n.Mount(w)
	t.Cleanup(n.Unmount)

	offsets := []float64{0, 40, 40.5, 39, 41, 41, 200, 0, 40, 1000, -5, 39.99}
	for _, y := range offsets {
		w.ScrollTo(y)
		want := clampOffset(y) > DefaultSolidThreshold
		assert.Equalf(t, want, n.Solid(), "offset %v", y)
		assert.Equal(t, clampOffset(y), n.Offset())
	}
}

func TestNavbarMountSamplesCurrentOffset(t *testing.T) {
	w := NewWindow(250)
	n := testNavbar()
	require.False(t, n.Solid())

	n.Mount(w)
	t.Cleanup(n.Unmount)

	require.Equal(t, 250.0, n.Offset())
	require.True(t, n.Solid())
}

func TestNavbarMenuDoubleToggleRestores(t *testing.T) {
	n := testNavbar()
	require.False(t, n.Open())
	require.Equal(t, TransitionNone, n.Transition())

	require.True(t, n.ToggleMenu())
	require.Equal(t, TransitionEnter, n.Transition())
	require.Equal(t, "enter", n.Transition().String())

	require.False(t, n.ToggleMenu())
	require.Equal(t, TransitionExit, n.Transition())
	require.False(t, n.Open())
}

func TestNavbarModeChangeHooks(t *testing.T) {
	w := NewWindow(0)
	n := testNavbar()
	var got []bool
	cancel := n.OnModeChange(func(solid bool) { got = append(got, solid) })
	n.Mount(w)

	for _, y := range []float64{10, 50, 60, 30, 20, 90} {
		w.ScrollTo(y)
	}
	require.Equal(t, []bool{true, false, true}, got)

	cancel()
	w.ScrollTo(0)
	require.Len(t, got, 3)

	n.Unmount()
	require.Zero(t, w.Listeners())
}

func TestNavbarLinksAreCopied(t *testing.T) {
	n := testNavbar()
	links := n.Links()
	links[0].Label = "changed"
	require.Equal(t, "Agenda", n.Links()[0].Label)
	require.Equal(t, "#book", n.CTA().Target)

	st := n.State()
	st.Links[0].Label = "changed"
	require.Equal(t, "Agenda", n.State().Links[0].Label)
	require.Equal(t, n.CTA(), n.State().CTA)
}
