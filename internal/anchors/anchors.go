// Package anchors checks that in-page links in rendered HTML point at
// elements that exist.
package anchors

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/net/html"
)

// Dangling is an in-page link whose target id is missing.
type Dangling struct {
	Href  string
	Count int
}

// Report summarizes the anchors of a document.
type Report struct {
	IDs       []string
	Links     []string
	Dangling  []Dangling
	Duplicate []string
}

// OK reports whether every in-page link resolves and ids are unique.
func (r Report) OK() bool { return len(r.Dangling) == 0 && len(r.Duplicate) == 0 }

func (r Report) String() string {
	var b strings.Builder
	for _, d := range r.Dangling {
		fmt.Fprintf(&b, "dangling link %s (%d)\n", d.Href, d.Count)
	}
	for _, id := range r.Duplicate {
		fmt.Fprintf(&b, "duplicate id %q\n", id)
	}
	return b.String()
}

// Check parses the document and cross-references element ids with
// href="#..." links. "#" alone and "#top" refer to the document itself.
func Check(r io.Reader) (Report, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return Report{}, fmt.Errorf("anchors: parse: %w", err)
	}
	ids := map[string]int{}
	links := map[string]int{}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			for _, a := range n.Attr {
				switch a.Key {
				case "id":
					if v := strings.TrimSpace(a.Val); v != "" {
						ids[v]++
					}
				case "href":
					if strings.HasPrefix(a.Val, "#") {
						links[a.Val]++
					}
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	var rep Report
	for id, n := range ids {
		rep.IDs = append(rep.IDs, id)
		if n > 1 {
			rep.Duplicate = append(rep.Duplicate, id)
		}
	}
	for href, n := range links {
		rep.Links = append(rep.Links, href)
		target := strings.TrimPrefix(href, "#")
		if target == "" || target == "top" {
			continue
		}
		if _, ok := ids[target]; !ok {
			rep.Dangling = append(rep.Dangling, Dangling{Href: href, Count: n})
		}
	}
	sort.Strings(rep.IDs)
	sort.Strings(rep.Links)
	sort.Strings(rep.Duplicate)
	sort.Slice(rep.Dangling, func(i, j int) bool { return rep.Dangling[i].Href < rep.Dangling[j].Href })
	return rep, nil
}
