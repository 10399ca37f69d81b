package content

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// reserved section anchors emitted by the page template
var sectionAnchors = map[string]struct{}{
	"agenda":       {},
	"mentors":      {},
	"offerings":    {},
	"testimonials": {},
	"proud":        {},
	"top":          {},
	"navbar":       {},
	"mobile-menu":  {},
}

// Validate reports every structural problem in the site.
func (s *Site) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if s.Name == "" {
		add("name is required")
	}
	if strings.TrimSpace(s.Brand.Name) == "" {
		add("brand.name is required")
	}
	if s.Navbar.Threshold != nil && *s.Navbar.Threshold < 0 {
		add("navbar.threshold must be non-negative")
	}
	for i, l := range s.Navbar.Links {
		if strings.TrimSpace(l.Label) == "" {
			add("navbar.links[%d]: label is required", i)
		}
		if !strings.HasPrefix(l.Target, "#") || len(l.Target) < 2 {
			add("navbar.links[%d]: target %q must be an in-page anchor", i, l.Target)
		}
	}
	if err := checkHref(s.Navbar.CTA.Href); err != nil {
		add("navbar.cta: %v", err)
	}
	if strings.TrimSpace(s.Hero.Headline) == "" {
		add("hero.headline is required")
	}
	for _, l := range []struct {
		field string
		link  Link
	}{
		{"hero.primary", s.Hero.Primary},
		{"hero.secondary", s.Hero.Secondary},
	} {
		if l.link.Href == "" {
			continue
		}
		if err := checkHref(l.link.Href); err != nil {
			add("%s: %v", l.field, err)
		}
	}
	for _, u := range []struct{ field, v string }{
		{"hero.scene_url", s.Hero.SceneURL},
		{"seo.url", s.SEO.URL},
		{"seo.image", s.SEO.Image},
	} {
		if u.v != "" {
			if err := checkHTTPURL(u.v); err != nil {
				add("%s: %v", u.field, err)
			}
		}
	}
	if s.Hero.Video != nil {
		if err := checkHTTPURL(s.Hero.Video.URL); err != nil {
			add("hero.video.url: %v", err)
		}
	}
	for i, st := range s.Stats.Items {
		if st.Label == "" || st.Value == "" {
			add("stats.items[%d]: label and value are required", i)
		}
	}
	for i, a := range s.Agenda.Items {
		if strings.TrimSpace(a.Headline) == "" {
			add("agenda.items[%d]: headline is required", i)
		}
	}
	for i, m := range s.Mentors.Items {
		if strings.TrimSpace(m.Name) == "" {
			add("mentors.items[%d]: name is required", i)
		}
		if err := checkHTTPURL(m.Avatar); err != nil {
			add("mentors.items[%d].avatar: %v", i, err)
		}
		for j, logo := range m.Logos {
			if err := checkHTTPURL(logo); err != nil {
				add("mentors.items[%d].logos[%d]: %v", i, j, err)
			}
		}
		if m.ProfileURL != "" {
			if err := checkHTTPURL(m.ProfileURL); err != nil {
				add("mentors.items[%d].profile_url: %v", i, err)
			}
		}
	}
	ids := map[string]struct{}{}
	for i, o := range s.Offerings.Items {
		if strings.TrimSpace(o.Title) == "" {
			add("offerings.items[%d]: title is required", i)
		}
		if o.ID != "" {
			if _, clash := sectionAnchors[o.ID]; clash {
				add("offerings.items[%d]: id %q collides with a section anchor", i, o.ID)
			}
			if _, dup := ids[o.ID]; dup {
				add("offerings.items[%d]: duplicate id %q", i, o.ID)
			}
			ids[o.ID] = struct{}{}
		}
		if err := checkHref(o.Action.Href); err != nil {
			add("offerings.items[%d].action: %v", i, err)
		}
		if o.Price != nil && o.Price.Amount < 0 {
			add("offerings.items[%d].price: amount must be non-negative", i)
		}
	}
	if n := s.Testimonials.PreviewLength; n != nil && *n < 0 {
		add("testimonials.preview_length must be non-negative")
	}
	for i, t := range s.Testimonials.Items {
		if strings.TrimSpace(t.Quote) == "" {
			add("testimonials.items[%d]: quote is required", i)
		}
	}
	for i, g := range s.Gallery.Items {
		if err := checkHTTPURL(g.Image); err != nil {
			add("gallery.items[%d].image: %v", i, err)
		}
	}
	if sess := s.Agenda.Session; sess != nil && sess.Register.Href != "" {
		if err := checkHref(sess.Register.Href); err != nil {
			add("agenda.session.register: %v", err)
		}
	}
	for i, c := range s.Footer.Contact {
		if err := checkHref(c.Href); err != nil {
			add("footer.contact[%d]: %v", i, err)
		}
	}
	for i, l := range s.Footer.Links {
		if !strings.HasPrefix(l.Target, "#") {
			add("footer.links[%d]: target %q must be an in-page anchor", i, l.Target)
		}
	}
	return errors.Join(errs...)
}

// Warnings reports soft issues that do not block loading.
func (s *Site) Warnings() []string {
	var out []string
	if n := len(s.Stats.Items); n != 0 && n != 4 {
		out = append(out, fmt.Sprintf("stats: %d items, the layout is designed for 4", n))
	}
	if len(s.Testimonials.Items) > 0 && len(s.Testimonials.Items) <= s.TestimonialsPreview() {
		out = append(out, "testimonials: every entry fits the preview; the show-more control will not reveal anything")
	}
	return out
}

// checkHref accepts in-page anchors, tel:, mailto: and http(s) URLs.
func checkHref(h string) error {
	h = strings.TrimSpace(h)
	switch {
	case h == "":
		return errors.New("href is required")
	case strings.HasPrefix(h, "#"):
		return nil
	case strings.HasPrefix(h, "tel:"), strings.HasPrefix(h, "mailto:"):
		return nil
	default:
		return checkHTTPURL(h)
	}
}

func checkHTTPURL(v string) error {
	u, err := url.Parse(strings.TrimSpace(v))
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%q must be an http(s) URL", v)
	}
	if u.Host == "" {
		return fmt.Errorf("%q has no host", v)
	}
	return nil
}
