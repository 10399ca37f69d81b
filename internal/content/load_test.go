package content

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedSitesLoad(t *testing.T) {
	lib, err := Embedded("veteran-mentors")
	require.NoError(t, err)
	require.Equal(t, []string{"career-compass", "veteran-mentors"}, lib.Names())
	require.Equal(t, "veteran-mentors", lib.DefaultName())

	site := lib.Default()
	require.Equal(t, "Veteran Mentors", site.Brand.Name)
	require.Equal(t, 40.0, site.NavbarThreshold())
	require.Len(t, site.Stats.Items, 4)
	require.Len(t, site.Testimonials.Items, 8)
	require.Equal(t, 6, site.TestimonialsPreview())
	require.Empty(t, site.Warnings())

	wantLinks := []NavLink{
		{Label: "Agenda", Target: "#agenda"},
		{Label: "Mentors", Target: "#mentors"},
		{Label: "Offerings", Target: "#offerings"},
		{Label: "Testimonials", Target: "#testimonials"},
	}
	if diff := cmp.Diff(wantLinks, site.Navbar.Links); diff != "" {
		t.Fatalf("nav links mismatch (-want +got):\n%s", diff)
	}

	book := site.Offerings.Items[1]
	require.Equal(t, "book", book.ID)
	require.NotNil(t, book.Price)
	require.EqualValues(t, 120000, book.Price.Amount)
	require.True(t, book.Action.External())
}

func TestEmbeddedTOMLSite(t *testing.T) {
	lib, err := Embedded("")
	require.NoError(t, err)
	site, err := lib.Site("Career-Compass")
	require.NoError(t, err)

	require.Equal(t, 4, site.TestimonialsPreview())
	require.NotNil(t, site.Agenda.Session)
	require.Len(t, site.Gallery.Items, 3)
	// duplicate tags collapse to their first occurrence
	require.Equal(t, []string{"CLD/CHD", "BigTech", "Product"}, site.Mentors.Items[0].Tags)
	require.Len(t, site.Mentors.Items[0].Logos, 2)
}

func TestLibraryUnknownSite(t *testing.T) {
	lib, err := Embedded("")
	require.NoError(t, err)
	_, err = lib.Site("nope")
	require.True(t, errors.Is(err, ErrSiteNotFound))

	_, err = Embedded("missing")
	require.ErrorIs(t, err, ErrSiteNotFound)
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	_, err := Decode("x.yaml", []byte("brand: {name: X}\nhero: {headline: H}\nbogus: 1\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "bogus")

	_, err = Decode("x.toml", []byte("bogus = 1\n[brand]\nname = \"X\"\n[hero]\nheadline = \"H\"\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown keys")

	_, err = Decode("x.json", []byte("{}"))
	require.Error(t, err)
}

func TestDecodeDefaultsNameFromFile(t *testing.T) {
	site, err := Decode("Spring-Draft.yml", []byte("brand: {name: X}\nhero: {headline: H}\n"))
	require.NoError(t, err)
	require.Equal(t, "spring-draft", site.Name)
	require.Nil(t, site.Testimonials.PreviewLength)
	require.Equal(t, defaultPreviewLength, site.TestimonialsPreview())
	require.Equal(t, "X", site.SEO.Title)
}

func TestDecodeKeepsZeroPreviewLength(t *testing.T) {
	site, err := Decode("x.yaml", []byte("brand: {name: X}\nhero: {headline: H}\ntestimonials: {preview_length: 0}\n"))
	require.NoError(t, err)
	require.NotNil(t, site.Testimonials.PreviewLength)
	require.Zero(t, site.TestimonialsPreview())

	site, err = Decode("x.toml", []byte("[brand]\nname = \"X\"\n[hero]\nheadline = \"H\"\n[testimonials]\npreview_length = 0\n"))
	require.NoError(t, err)
	require.Zero(t, site.TestimonialsPreview())

	_, err = Decode("x.yaml", []byte("brand: {name: X}\nhero: {headline: H}\ntestimonials: {preview_length: -1}\n"))
	require.ErrorContains(t, err, "testimonials.preview_length must be non-negative")
}

func TestValidateCollectsEveryProblem(t *testing.T) {
	neg := -1.0
	s := Site{
		Name:   "bad",
		Navbar: Navbar{Threshold: &neg, Links: []NavLink{{Label: "", Target: "agenda"}}},
		Mentors: MentorsSection{Items: []MentorProfile{
			{Name: "", Avatar: "ftp://example.com/a.png"},
		}},
		Offerings: OfferingsSection{Items: []Offering{
			{ID: "mentors", Title: "x", Action: Link{Href: "javascript:alert(1)"}},
		}},
	}
	err := s.Validate()
	require.Error(t, err)
	msg := err.Error()
	for _, want := range []string{
		"brand.name is required",
		"navbar.threshold must be non-negative",
		"navbar.links[0]: label is required",
		`target "agenda" must be an in-page anchor`,
		"navbar.cta: href is required",
		"hero.headline is required",
		"mentors.items[0]: name is required",
		"mentors.items[0].avatar",
		"collides with a section anchor",
		"offerings.items[0].action",
	} {
		require.Truef(t, strings.Contains(msg, want), "missing %q in:\n%s", want, msg)
	}
}

func TestLoadDirPicksUpFiles(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	write("b.yaml", "brand: {name: B}\nhero: {headline: H}\n")
	write("a.toml", "[brand]\nname = \"A\"\n[hero]\nheadline = \"H\"\n")
	write("notes.txt", "ignored")

	lib, err := LoadDir(dir, "")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, lib.Names())
	require.Equal(t, "a", lib.DefaultName())

	write("c.yaml", "name: a\nbrand: {name: C}\nhero: {headline: H}\n")
	_, err = LoadDir(dir, "")
	require.ErrorContains(t, err, "duplicate site")
}

func TestRenderMarkdownSanitizes(t *testing.T) {
	out, err := RenderMarkdown("Joined **Apple** <script>alert(1)</script> https://example.com")
	require.NoError(t, err)
	html := string(out)
	require.Contains(t, html, "<strong>Apple</strong>")
	require.NotContains(t, html, "<script>")
	require.Contains(t, html, `rel="nofollow`)

	empty, err := RenderMarkdown("   ")
	require.NoError(t, err)
	require.Empty(t, empty)
}
