package nav

import (
	"strings"

	"veteranmentors.org/mentors-web/internal/ui"
)

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href     string
	Label    string
	AnchorID string // target element id for in-page links
	External bool
	Active   bool
}

// Anchors renders in-page navbar links.
func Anchors(links []ui.Link) []RenderedItem {
	items := make([]RenderedItem, 0, len(links))
	for _, l := range links {
		items = append(items, Item(l.Label, l.Target))
	}
	return items
}

// Item renders one link, classifying it as in-page or outbound.
func Item(label, href string) RenderedItem {
	href = strings.TrimSpace(href)
	lower := strings.ToLower(href)
	return RenderedItem{
		Href:     href,
		Label:    label,
		AnchorID: AnchorID(href),
		External: strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://"),
	}
}

// AnchorID returns the element id an in-page href points at, or "".
func AnchorID(href string) string {
	if !strings.HasPrefix(href, "#") {
		return ""
	}
	return strings.TrimPrefix(href, "#")
}

// Sites renders the site switcher. The default site lives at "/".
func Sites(names []string, defaultName, currentPath string) []RenderedItem {
	if currentPath == "" {
		currentPath = "/"
	}
	items := make([]RenderedItem, 0, len(names))
	for _, name := range names {
		href := "/sites/" + name
		if name == defaultName {
			href = "/"
		}
		items = append(items, RenderedItem{
			Href:   href,
			Label:  titleFromSegment(name),
			Active: isActive(href, currentPath) || (name == defaultName && currentPath == "/sites/"+name),
		})
	}
	return items
}

func isActive(itemPath, currentPath string) bool {
	if itemPath == "/" {
		return currentPath == "/"
	}
	// match exact or prefix boundary: "/sites/x" or "/sites/x/..."
	if currentPath == itemPath {
		return true
	}
	return strings.HasPrefix(currentPath, itemPath+"/")
}

func titleFromSegment(seg string) string {
	if seg == "" {
		return seg
	}
	s := strings.ReplaceAll(seg, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	r := []rune(s)
	r[0] = toUpper(r[0])
	return string(r)
}

func toUpper(r rune) rune {
	// ASCII only is sufficient for slugs here
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}
