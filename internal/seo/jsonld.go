package seo

import (
	"encoding/json"
	"html/template"
	"strconv"

	"veteranmentors.org/mentors-web/internal/content"
)

// JSON marshals v for a <script type="application/ld+json"> block. It
// returns an empty object on error.
func JSON(v any) template.JS {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return template.JS(b)
}

// Organization returns a minimal EducationalOrganization schema.
func Organization(name, url, logoURL string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "EducationalOrganization",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if logoURL != "" {
		m["logo"] = logoURL
	}
	return m
}

// WebSite returns a minimal WebSite schema.
func WebSite(name, url, lang string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if lang != "" {
		m["inLanguage"] = lang
	}
	return m
}

// Person describes a mentor.
func Person(p content.MentorProfile) map[string]any {
	m := map[string]any{
		"@type":    "Person",
		"name":     p.Name,
		"jobTitle": p.Title,
	}
	if p.Avatar != "" {
		m["image"] = p.Avatar
	}
	if p.ProfileURL != "" {
		m["sameAs"] = []string{p.ProfileURL}
	}
	if len(p.Tags) > 0 {
		m["knowsAbout"] = p.Tags
	}
	return m
}

// Service describes an offering. Priced offerings carry an Offer with the
// amount in major units.
func Service(o content.Offering, provider string) map[string]any {
	m := map[string]any{
		"@type":    "Service",
		"name":     o.Title,
		"provider": map[string]any{"@type": "EducationalOrganization", "name": provider},
	}
	if o.Summary != "" {
		m["description"] = o.Summary
	}
	if o.Price != nil {
		m["offers"] = map[string]any{
			"@type":         "Offer",
			"price":         json.Number(majorUnits(o.Price.Amount)),
			"priceCurrency": o.Price.Currency,
			"url":           o.Action.Href,
		}
	}
	return m
}

// Graph bundles the organization, its mentors and its services.
func Graph(s *content.Site) map[string]any {
	nodes := []map[string]any{
		withoutContext(Organization(s.Brand.Name, s.SEO.URL, s.Brand.Logo)),
		withoutContext(WebSite(s.Brand.Name, s.SEO.URL, s.SEO.Lang)),
	}
	for _, p := range s.Mentors.Items {
		nodes = append(nodes, Person(p))
	}
	for _, o := range s.Offerings.Items {
		nodes = append(nodes, Service(o, s.Brand.Name))
	}
	return map[string]any{
		"@context": "https://schema.org",
		"@graph":   nodes,
	}
}

func withoutContext(m map[string]any) map[string]any {
	delete(m, "@context")
	return m
}

func majorUnits(minor int64) string {
	if minor%100 == 0 {
		return strconv.FormatInt(minor/100, 10)
	}
	return strconv.FormatFloat(float64(minor)/100, 'f', 2, 64)
}
