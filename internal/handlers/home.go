package handlers

import (
	"fmt"
	"html/template"
	"time"

	"veteranmentors.org/mentors-web/internal/content"
	"veteranmentors.org/mentors-web/internal/format"
	"veteranmentors.org/mentors-web/internal/live"
	"veteranmentors.org/mentors-web/internal/nav"
	"veteranmentors.org/mentors-web/internal/seo"
	"veteranmentors.org/mentors-web/internal/ui"
)

// RequestInfo carries the per-request values every view needs.
type RequestInfo struct {
	Lang      string
	Path      string
	CSRFToken string
	Canonical string
	Sites     []nav.RenderedItem
}

// HomeData is the view model for the landing page.
type HomeData struct {
	RequestInfo
	PageID       string
	Site         *content.Site
	SEO          seo.Meta
	JSONLD       template.JS
	Navbar       NavbarView
	Hero         HeroView
	Stats        []Revealable[content.StatItem]
	Agenda       []Revealable[content.SessionAgendaItem]
	Mentors      []MentorView
	Offerings    []OfferingView
	Testimonials TestimonialsView
	Gallery      []Revealable[content.GalleryItem]
	Footer       FooterView
}

// Revealable pairs a record with its entrance-animation key.
type Revealable[T any] struct {
	Item     T
	Key      string
	Revealed bool
	Index    int
}

// NavbarView renders the navbar fragment.
type NavbarView struct {
	Lang       string
	PageID     string
	CSRFToken  string
	Brand      content.Brand
	Links      []nav.RenderedItem
	CTA        nav.RenderedItem
	Solid      bool
	Open       bool
	Transition string
	Threshold  float64
}

// HeroView is the hero banner with outbound flags resolved.
type HeroView struct {
	content.Hero
	PrimaryLink   nav.RenderedItem
	SecondaryLink nav.RenderedItem
}

// MentorView is a mentor card with its description rendered.
type MentorView struct {
	Revealable[content.MentorProfile]
	DescriptionHTML template.HTML
}

// OfferingView is an offering card.
type OfferingView struct {
	Revealable[content.Offering]
	Price  string
	Action nav.RenderedItem
}

// TestimonialsView renders the testimonials fragment.
type TestimonialsView struct {
	Lang        string
	PageID      string
	CSRFToken   string
	Header      content.SectionHeader
	Items       []Revealable[content.TestimonialEntry]
	Total       int
	Hidden      int
	Expanded    bool
	LabelKey    string
	IndicatorUp bool
}

// FooterView is the closing block.
type FooterView struct {
	content.Footer
	Nav   []nav.RenderedItem
	Sites []nav.RenderedItem
	Year  int
}

// BuildHomeData assembles the landing page for one page instance.
func BuildHomeData(page *live.Page, info RequestInfo) (HomeData, error) {
	site := page.Site()
	st := page.State()

	mentors := make([]MentorView, 0, len(site.Mentors.Items))
	for i, m := range site.Mentors.Items {
		desc, err := content.RenderMarkdown(m.Description)
		if err != nil {
			return HomeData{}, fmt.Errorf("handlers: mentor %q: %w", m.Name, err)
		}
		mentors = append(mentors, MentorView{
			Revealable:      reveal(m, "mentor", i, st.Revealed),
			DescriptionHTML: desc,
		})
	}

	offerings := make([]OfferingView, 0, len(site.Offerings.Items))
	for i, o := range site.Offerings.Items {
		v := OfferingView{
			Revealable: reveal(o, "offering", i, st.Revealed),
			Action:     nav.Item(o.Action.Label, o.Action.Href),
		}
		if o.Price != nil {
			v.Price = format.Currency(o.Price.Amount, o.Price.Currency)
		}
		offerings = append(offerings, v)
	}

	footerNav := make([]nav.RenderedItem, 0, len(site.Footer.Links))
	for _, l := range site.Footer.Links {
		footerNav = append(footerNav, nav.Item(l.Label, l.Target))
	}

	return HomeData{
		RequestInfo: info,
		PageID:      page.ID,
		Site:        site,
		SEO:         seo.ForSite(site, info.Canonical),
		JSONLD:      seo.JSON(seo.Graph(site)),
		Navbar:      BuildNavbar(page.ID, site, st.Navbar, info),
		Hero: HeroView{
			Hero:          site.Hero,
			PrimaryLink:   nav.Item(site.Hero.Primary.Label, site.Hero.Primary.Href),
			SecondaryLink: nav.Item(site.Hero.Secondary.Label, site.Hero.Secondary.Href),
		},
		Stats:        revealAll(site.Stats.Items, "stat", st.Revealed),
		Agenda:       revealAll(site.Agenda.Items, "agenda", st.Revealed),
		Mentors:      mentors,
		Offerings:    offerings,
		Testimonials: BuildTestimonials(page.ID, site, st.Testimonials, st.Revealed, info),
		Gallery:      revealAll(site.Gallery.Items, "gallery", st.Revealed),
		Footer: FooterView{
			Footer: site.Footer,
			Nav:    footerNav,
			Sites:  info.Sites,
			Year:   format.Year(time.Time{}),
		},
	}, nil
}

// BuildNavbar builds the navbar fragment view.
func BuildNavbar(pageID string, site *content.Site, st ui.NavbarState, info RequestInfo) NavbarView {
	return NavbarView{
		Lang:       info.Lang,
		PageID:     pageID,
		CSRFToken:  info.CSRFToken,
		Brand:      site.Brand,
		Links:      nav.Anchors(st.Links),
		CTA:        nav.Item(st.CTA.Label, st.CTA.Target),
		Solid:      st.Solid,
		Open:       st.Open,
		Transition: st.Transition.String(),
		Threshold:  site.NavbarThreshold(),
	}
}

// BuildTestimonials builds the testimonials fragment view.
func BuildTestimonials(pageID string, site *content.Site, st live.TestimonialsState, revealed map[string]bool, info RequestInfo) TestimonialsView {
	return TestimonialsView{
		Lang:        info.Lang,
		PageID:      pageID,
		CSRFToken:   info.CSRFToken,
		Header:      site.Testimonials.Header,
		Items:       revealAll(st.Visible, "testimonial", revealed),
		Total:       st.Total,
		Hidden:      st.Hidden,
		Expanded:    st.Expanded,
		LabelKey:    st.LabelKey,
		IndicatorUp: st.IndicatorUp,
	}
}

func reveal[T any](item T, prefix string, i int, revealed map[string]bool) Revealable[T] {
	key := fmt.Sprintf("%s-%d", prefix, i)
	return Revealable[T]{Item: item, Key: key, Revealed: revealed[key], Index: i}
}

func revealAll[T any](items []T, prefix string, revealed map[string]bool) []Revealable[T] {
	out := make([]Revealable[T], 0, len(items))
	for i, it := range items {
		out = append(out, reveal(it, prefix, i, revealed))
	}
	return out
}
