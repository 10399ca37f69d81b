package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"veteranmentors.org/mentors-web/internal/content"
	"veteranmentors.org/mentors-web/internal/live"
	"veteranmentors.org/mentors-web/internal/ui"
)

func newPage(t *testing.T, name string) *live.Page {
	t.Helper()
	lib, err := content.Embedded("veteran-mentors")
	require.NoError(t, err)
	site, err := lib.Site(name)
	require.NoError(t, err)
	reg := live.NewRegistry(time.Minute, nil)
	t.Cleanup(reg.Close)
	return reg.Create(site)
}

func TestBuildHomeData(t *testing.T) {
	page := newPage(t, "veteran-mentors")
	page.MarkInView("mentor-1")

	vm, err := BuildHomeData(page, RequestInfo{Lang: "en", Path: "/", CSRFToken: "tok"})
	require.NoError(t, err)

	require.Equal(t, page.ID, vm.PageID)
	require.Len(t, vm.Navbar.Links, 4)
	require.Equal(t, "agenda", vm.Navbar.Links[0].AnchorID)
	require.Equal(t, "book", vm.Navbar.CTA.AnchorID)
	require.False(t, vm.Navbar.Solid)
	require.Equal(t, 40.0, vm.Navbar.Threshold)

	require.Len(t, vm.Stats, 4)
	require.Equal(t, "stat-3", vm.Stats[3].Key)
	require.True(t, vm.Mentors[1].Revealed)
	require.False(t, vm.Mentors[0].Revealed)

	require.Equal(t, "₹1,200", vm.Offerings[1].Price)
	require.True(t, vm.Offerings[1].Action.External)
	require.Empty(t, vm.Offerings[0].Price)

	require.Len(t, vm.Testimonials.Items, 6)
	require.Equal(t, 2, vm.Testimonials.Hidden)
	require.Equal(t, "tok", vm.Testimonials.CSRFToken)
	require.Contains(t, string(vm.JSONLD), `"@graph"`)
	require.NotZero(t, vm.Footer.Year)
}

func TestBuildHomeDataRendersMarkdown(t *testing.T) {
	page := newPage(t, "career-compass")
	vm, err := BuildHomeData(page, RequestInfo{Lang: "en"})
	require.NoError(t, err)
	require.NotEmpty(t, vm.Mentors[0].DescriptionHTML)
	require.Len(t, vm.Gallery, 3)
}

func TestBuildTestimonialsFollowsToggle(t *testing.T) {
	page := newPage(t, "veteran-mentors")
	st := page.ToggleTestimonials()
	v := BuildTestimonials(page.ID, page.Site(), st, nil, RequestInfo{})
	require.Len(t, v.Items, 8)
	require.True(t, v.Expanded)
	require.Equal(t, "list.show_less", v.LabelKey)
	require.Equal(t, "testimonial-7", v.Items[7].Key)
}

func TestNotFound(t *testing.T) {
	p := NotFound(RequestInfo{Lang: "hi"})
	require.Equal(t, 404, p.Status)
	require.Equal(t, "error.not_found", p.MessageKey)
}

func TestBuildNavbarRendersNavbarState(t *testing.T) {
	page := newPage(t, "veteran-mentors")
	st := page.Scroll(120)
	st.Links = []ui.Link{{Label: "Mentors", Target: "#mentors"}}
	st.CTA = ui.Link{Label: "Call", Target: "tel:+919999999999"}

	v := BuildNavbar(page.ID, page.Site(), st, RequestInfo{Lang: "en"})
	require.True(t, v.Solid)
	require.Len(t, v.Links, 1)
	require.Equal(t, "mentors", v.Links[0].AnchorID)
	require.Equal(t, "Call", v.CTA.Label)
	require.Equal(t, "tel:+919999999999", v.CTA.Href)
}
