package live

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"veteranmentors.org/mentors-web/internal/content"
)

func testSite(t *testing.T) *content.Site {
	t.Helper()
	lib, err := content.Embedded("veteran-mentors")
	require.NoError(t, err)
	return lib.Default()
}

func TestPageNavbarFollowsScroll(t *testing.T) {
	p := newPage("p", testSite(t), time.Now())
	require.False(t, p.State().Navbar.Solid)

	var flips []bool
	cancel := p.OnModeChange(func(solid bool) { flips = append(flips, solid) })
	defer cancel()

	require.True(t, p.Scroll(100).Solid)
	require.True(t, p.Scroll(41).Solid)
	require.False(t, p.Scroll(40).Solid)
	require.False(t, p.Scroll(-5).Solid)
	require.Equal(t, []bool{true, false}, flips)
}

func TestPageMenuToggle(t *testing.T) {
	p := newPage("p", testSite(t), time.Now())
	require.True(t, p.ToggleMenu().Open)
	st := p.ToggleMenu()
	require.False(t, st.Open)
	require.Equal(t, "exit", st.Transition.String())
}

func TestPageTestimonialsToggle(t *testing.T) {
	p := newPage("p", testSite(t), time.Now())
	st := p.State().Testimonials
	require.Len(t, st.Visible, 6)
	require.Equal(t, 2, st.Hidden)
	require.Equal(t, "list.show_more", st.LabelKey)

	st = p.ToggleTestimonials()
	require.Len(t, st.Visible, 8)
	require.True(t, st.IndicatorUp)
	require.Equal(t, "list.show_less", st.LabelKey)

	require.Len(t, p.ToggleTestimonials().Visible, 6)
}

func TestPageAttachDetachManagesListener(t *testing.T) {
	p := newPage("p", testSite(t), time.Now())
	require.Equal(t, 1, p.Listeners())

	st, ok := p.Attach(120)
	require.True(t, ok)
	require.True(t, st.Solid)
	require.Equal(t, 1, p.Listeners())

	_, ok = p.Attach(120)
	require.True(t, ok)
	p.Detach()
	require.Equal(t, 1, p.Listeners(), "second connection keeps the navbar mounted")
	p.Detach()
	require.Equal(t, 0, p.Listeners())

	// fragment polling mounts again
	require.False(t, p.NavbarAt(3).Solid)
	require.Equal(t, 1, p.Listeners())

	p.close()
	require.Equal(t, 0, p.Listeners())
	_, ok = p.Attach(0)
	require.False(t, ok)
	p.NavbarAt(90)
	require.Equal(t, 0, p.Listeners())
}

func TestPageRevealIsMonotonic(t *testing.T) {
	p := newPage("p", testSite(t), time.Now())
	require.True(t, p.MarkInView("mentor-0"))
	require.False(t, p.MarkInView("mentor-0"))
	require.False(t, p.MarkInView(""))
	require.Equal(t, map[string]bool{"mentor-0": true}, p.State().Revealed)
}

func TestPageTestimonialsZeroPreview(t *testing.T) {
	site := *testSite(t)
	zero := 0
	site.Testimonials.PreviewLength = &zero

	p := newPage("p", &site, time.Now())
	st := p.State().Testimonials
	require.Empty(t, st.Visible)
	require.Equal(t, 8, st.Hidden)
	require.Len(t, p.ToggleTestimonials().Visible, 8)
}
