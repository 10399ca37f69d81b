package seo

import (
	"strings"

	"veteranmentors.org/mentors-web/internal/content"
)

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
	SiteName    string
}

type Twitter struct {
	Card  string
	Image string
}

type Meta struct {
	Title       string
	Description string
	Canonical   string
	Lang        string
	OG          OpenGraph
	Twitter     Twitter
}

// ForSite builds document metadata from a site's SEO block. canonical
// overrides the configured URL when non-empty.
func ForSite(s *content.Site, canonical string) Meta {
	if canonical == "" {
		canonical = s.SEO.URL
	}
	image := s.SEO.Image
	if image == "" && len(s.Hero.Images) > 0 {
		image = s.Hero.Images[0]
	}
	card := "summary"
	if image != "" {
		card = "summary_large_image"
	}
	return Meta{
		Title:       s.SEO.Title,
		Description: strings.TrimSpace(s.SEO.Description),
		Canonical:   canonical,
		Lang:        s.SEO.Lang,
		OG: OpenGraph{
			Title:       s.SEO.Title,
			Description: strings.TrimSpace(s.SEO.Description),
			Image:       image,
			Type:        "website",
			URL:         canonical,
			SiteName:    s.Brand.Name,
		},
		Twitter: Twitter{Card: card, Image: image},
	}
}
