package anchors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckFindsDanglingLinks(t *testing.T) {
	doc := `<html><body>
<nav><a href="#agenda">Agenda</a><a href="#mentors">Mentors</a><a href="#">Logo</a><a href="#top">Top</a></nav>
<section id="agenda"></section>
<a href="#book">Book</a><a href="#book">Book again</a>
<a href="https://example.com/#mentors">out</a>
</body></html>`
	rep, err := Check(strings.NewReader(doc))
	require.NoError(t, err)
	require.False(t, rep.OK())
	require.Equal(t, []Dangling{{Href: "#book", Count: 2}, {Href: "#mentors", Count: 1}}, rep.Dangling)
	require.Equal(t, []string{"agenda"}, rep.IDs)
	require.Contains(t, rep.String(), "dangling link #book (2)")
}

func TestCheckDuplicateIDs(t *testing.T) {
	rep, err := Check(strings.NewReader(`<div id="a"></div><p id="a"></p><a href="#a">a</a>`))
	require.NoError(t, err)
	require.Empty(t, rep.Dangling)
	require.Equal(t, []string{"a"}, rep.Duplicate)
	require.False(t, rep.OK())
}

func TestCheckCleanDocument(t *testing.T) {
	rep, err := Check(strings.NewReader(`<main><section id="x"><a href="#x">x</a></section></main>`))
	require.NoError(t, err)
	require.True(t, rep.OK())
	require.Empty(t, rep.String())
}
