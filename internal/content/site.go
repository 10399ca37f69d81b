// Package content defines the literal records that drive the landing page
// and loads them from YAML or TOML files.
package content

import "strings"

// Site is one complete content configuration for the page template.
type Site struct {
	Name         string           `yaml:"name" toml:"name" json:"name"`
	Brand        Brand            `yaml:"brand" toml:"brand" json:"brand"`
	SEO          SEO              `yaml:"seo" toml:"seo" json:"seo"`
	Navbar       Navbar           `yaml:"navbar" toml:"navbar" json:"navbar"`
	Hero         Hero             `yaml:"hero" toml:"hero" json:"hero"`
	Stats        StatsSection     `yaml:"stats" toml:"stats" json:"stats"`
	Agenda       AgendaSection    `yaml:"agenda" toml:"agenda" json:"agenda"`
	Mentors      MentorsSection   `yaml:"mentors" toml:"mentors" json:"mentors"`
	Offerings    OfferingsSection `yaml:"offerings" toml:"offerings" json:"offerings"`
	Testimonials Testimonials     `yaml:"testimonials" toml:"testimonials" json:"testimonials"`
	Gallery      GallerySection   `yaml:"gallery" toml:"gallery" json:"gallery"`
	Footer       Footer           `yaml:"footer" toml:"footer" json:"footer"`
}

// Brand is the site's mark and one-line pitch.
type Brand struct {
	Name    string `yaml:"name" toml:"name" json:"name"`
	Mark    string `yaml:"mark" toml:"mark" json:"mark"`
	Tagline string `yaml:"tagline" toml:"tagline" json:"tagline"`
	Logo    string `yaml:"logo" toml:"logo" json:"logo,omitempty"`
}

// SEO holds document metadata.
type SEO struct {
	Title       string `yaml:"title" toml:"title" json:"title"`
	Description string `yaml:"description" toml:"description" json:"description"`
	URL         string `yaml:"url" toml:"url" json:"url,omitempty"`
	Image       string `yaml:"image" toml:"image" json:"image,omitempty"`
	Lang        string `yaml:"lang" toml:"lang" json:"lang,omitempty"`
}

// NavLink is an in-page navigation entry; Target is a "#fragment".
type NavLink struct {
	Label  string `yaml:"label" toml:"label" json:"label"`
	Target string `yaml:"target" toml:"target" json:"target"`
}

// Link is a labelled href, in-page or outbound.
type Link struct {
	Label string `yaml:"label" toml:"label" json:"label"`
	Href  string `yaml:"href" toml:"href" json:"href"`
	Icon  string `yaml:"icon" toml:"icon" json:"icon,omitempty"`
}

// External reports whether the link leaves the page.
func (l Link) External() bool {
	h := strings.ToLower(strings.TrimSpace(l.Href))
	return strings.HasPrefix(h, "http://") || strings.HasPrefix(h, "https://")
}

// Navbar configures the navigation bar.
type Navbar struct {
	Threshold *float64  `yaml:"threshold" toml:"threshold" json:"threshold,omitempty"`
	Links     []NavLink `yaml:"links" toml:"links" json:"links"`
	CTA       Link      `yaml:"cta" toml:"cta" json:"cta"`
}

// SectionHeader is the eyebrow/title/subtitle block atop most sections.
type SectionHeader struct {
	Eyebrow  string `yaml:"eyebrow" toml:"eyebrow" json:"eyebrow,omitempty"`
	Title    string `yaml:"title" toml:"title" json:"title"`
	Subtitle string `yaml:"subtitle" toml:"subtitle" json:"subtitle,omitempty"`
}

// Hero is the top banner.
type Hero struct {
	Headline   string   `yaml:"headline" toml:"headline" json:"headline"`
	Lede       string   `yaml:"lede" toml:"lede" json:"lede"`
	Primary    Link     `yaml:"primary" toml:"primary" json:"primary"`
	Secondary  Link     `yaml:"secondary" toml:"secondary" json:"secondary"`
	Highlights []Link   `yaml:"highlights" toml:"highlights" json:"highlights,omitempty"`
	SceneURL   string   `yaml:"scene_url" toml:"scene_url" json:"scene_url,omitempty"`
	Video      *Video   `yaml:"video" toml:"video" json:"video,omitempty"`
	Images     []string `yaml:"images" toml:"images" json:"images,omitempty"`
}

// Video is an autoplaying, muted, looping clip shown beside the hero copy.
type Video struct {
	URL     string `yaml:"url" toml:"url" json:"url"`
	Poster  string `yaml:"poster" toml:"poster" json:"poster,omitempty"`
	Eyebrow string `yaml:"eyebrow" toml:"eyebrow" json:"eyebrow,omitempty"`
	Caption string `yaml:"caption" toml:"caption" json:"caption,omitempty"`
}

// StatItem is one headline number.
type StatItem struct {
	Label    string `yaml:"label" toml:"label" json:"label"`
	Value    string `yaml:"value" toml:"value" json:"value"`
	Subtitle string `yaml:"subtitle" toml:"subtitle" json:"subtitle,omitempty"`
	Icon     string `yaml:"icon" toml:"icon" json:"icon,omitempty"`
	Accent   string `yaml:"accent" toml:"accent" json:"accent,omitempty"`
}

// StatsSection groups the statistics.
type StatsSection struct {
	Header SectionHeader `yaml:"header" toml:"header" json:"header"`
	Items  []StatItem    `yaml:"items" toml:"items" json:"items"`
}

// SessionAgendaItem is one master-session topic.
type SessionAgendaItem struct {
	Headline    string `yaml:"headline" toml:"headline" json:"headline"`
	Description string `yaml:"description" toml:"description" json:"description"`
	Accent      string `yaml:"accent" toml:"accent" json:"accent,omitempty"`
}

// AgendaSection is the live-session agenda card.
type AgendaSection struct {
	Header  SectionHeader       `yaml:"header" toml:"header" json:"header"`
	Session *SessionDetails     `yaml:"session" toml:"session" json:"session,omitempty"`
	Items   []SessionAgendaItem `yaml:"items" toml:"items" json:"items"`
}

// SessionDetails describes an upcoming live session.
type SessionDetails struct {
	Title    string `yaml:"title" toml:"title" json:"title"`
	When     string `yaml:"when" toml:"when" json:"when,omitempty"`
	Where    string `yaml:"where" toml:"where" json:"where,omitempty"`
	Register Link   `yaml:"register" toml:"register" json:"register"`
}

// MentorProfile is one mentor card.
type MentorProfile struct {
	Name        string   `yaml:"name" toml:"name" json:"name"`
	Title       string   `yaml:"title" toml:"title" json:"title"`
	Avatar      string   `yaml:"avatar" toml:"avatar" json:"avatar"`
	Tags        []string `yaml:"tags" toml:"tags" json:"tags,omitempty"`
	Description string   `yaml:"description" toml:"description" json:"description,omitempty"`
	Logos       []string `yaml:"logos" toml:"logos" json:"logos,omitempty"`
	ProfileURL  string   `yaml:"profile_url" toml:"profile_url" json:"profile_url,omitempty"`
}

// MentorsSection groups the mentor profiles.
type MentorsSection struct {
	Header SectionHeader   `yaml:"header" toml:"header" json:"header"`
	Items  []MentorProfile `yaml:"items" toml:"items" json:"items"`
}

// Price is an amount in minor units.
type Price struct {
	Amount   int64  `yaml:"amount" toml:"amount" json:"amount"`
	Currency string `yaml:"currency" toml:"currency" json:"currency"`
	Note     string `yaml:"note" toml:"note" json:"note,omitempty"`
}

// Offering is one service format.
type Offering struct {
	ID       string   `yaml:"id" toml:"id" json:"id,omitempty"`
	Title    string   `yaml:"title" toml:"title" json:"title"`
	Summary  string   `yaml:"summary" toml:"summary" json:"summary,omitempty"`
	Bullets  []string `yaml:"bullets" toml:"bullets" json:"bullets,omitempty"`
	Price    *Price   `yaml:"price" toml:"price" json:"price,omitempty"`
	Action   Link     `yaml:"action" toml:"action" json:"action"`
	Featured bool     `yaml:"featured" toml:"featured" json:"featured,omitempty"`
}

// OfferingsSection groups the offerings.
type OfferingsSection struct {
	Header SectionHeader `yaml:"header" toml:"header" json:"header"`
	Items  []Offering    `yaml:"items" toml:"items" json:"items"`
}

// TestimonialEntry is one quote.
type TestimonialEntry struct {
	Author string `yaml:"author" toml:"author" json:"author"`
	Quote  string `yaml:"quote" toml:"quote" json:"quote"`
}

// Testimonials groups the quotes with the collapsed preview length.
type Testimonials struct {
	Header        SectionHeader      `yaml:"header" toml:"header" json:"header"`
	PreviewLength *int               `yaml:"preview_length" toml:"preview_length" json:"preview_length,omitempty"`
	Items         []TestimonialEntry `yaml:"items" toml:"items" json:"items"`
}

// GalleryItem is a logo or photo in the proud-to-be strip.
type GalleryItem struct {
	Name  string `yaml:"name" toml:"name" json:"name"`
	Image string `yaml:"image" toml:"image" json:"image"`
}

// GallerySection is the proud-to-be section; it is omitted when empty.
type GallerySection struct {
	Header SectionHeader `yaml:"header" toml:"header" json:"header"`
	Items  []GalleryItem `yaml:"items" toml:"items" json:"items,omitempty"`
}

// Footer is static closing content.
type Footer struct {
	Tagline string    `yaml:"tagline" toml:"tagline" json:"tagline"`
	Links   []NavLink `yaml:"links" toml:"links" json:"links"`
	Holder  string    `yaml:"holder" toml:"holder" json:"holder"`
	Contact []Link    `yaml:"contact" toml:"contact" json:"contact,omitempty"`
}

const (
	defaultPreviewLength   = 6
	defaultNavbarThreshold = 40.0
)

// NavbarThreshold returns the configured solid threshold or the default.
func (s *Site) NavbarThreshold() float64 {
	if s.Navbar.Threshold != nil {
		return *s.Navbar.Threshold
	}
	return defaultNavbarThreshold
}

// TestimonialsPreview returns the collapsed testimonials length. Zero is a
// valid setting and hides every entry until the list is expanded.
func (s *Site) TestimonialsPreview() int {
	if s.Testimonials.PreviewLength != nil {
		return *s.Testimonials.PreviewLength
	}
	return defaultPreviewLength
}

// normalize trims strings and fills defaults after decoding.
func (s *Site) normalize() {
	s.Name = strings.ToLower(strings.TrimSpace(s.Name))
	if s.SEO.Title == "" {
		s.SEO.Title = s.Brand.Name
	}
	if s.SEO.Lang == "" {
		s.SEO.Lang = "en"
	}
	for i := range s.Mentors.Items {
		s.Mentors.Items[i].Tags = dedupe(s.Mentors.Items[i].Tags)
	}
}

// dedupe keeps the first occurrence of each tag.
func dedupe(tags []string) []string {
	if len(tags) == 0 {
		return tags
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
