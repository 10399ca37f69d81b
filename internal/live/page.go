// Package live keeps the interactive state of rendered pages on the server
// and streams navbar updates to connected browsers.
package live

import (
	"sync"
	"time"

	"veteranmentors.org/mentors-web/internal/content"
	"veteranmentors.org/mentors-web/internal/ui"
)

// Page is one mounted instance of the landing page. Its UI components are
// not safe for concurrent use, so every access goes through mu.
type Page struct {
	ID   string
	site *content.Site

	mu           sync.Mutex
	window       *ui.Window
	navbar       *ui.Navbar
	testimonials *ui.ExpandableList[content.TestimonialEntry]
	reveal       ui.Reveal
	conns        int
	lastSeen     time.Time
	clock        func() time.Time
	closed       bool
}

// State is a consistent snapshot of a page for rendering.
type State struct {
	Navbar       ui.NavbarState
	Testimonials TestimonialsState
	Revealed     map[string]bool
}

// TestimonialsState is the rendered view of the testimonials list.
type TestimonialsState struct {
	Visible     []content.TestimonialEntry
	Total       int
	Hidden      int
	Expanded    bool
	LabelKey    string
	IndicatorUp bool
}

func newPage(id string, site *content.Site, now time.Time) *Page {
	links := make([]ui.Link, 0, len(site.Navbar.Links))
	for _, l := range site.Navbar.Links {
		links = append(links, ui.Link{Label: l.Label, Target: l.Target})
	}
	cta := ui.Link{Label: site.Navbar.CTA.Label, Target: site.Navbar.CTA.Href}
	p := &Page{
		ID:           id,
		site:         site,
		window:       ui.NewWindow(0),
		navbar:       ui.NewNavbar(links, cta, site.NavbarThreshold()),
		testimonials: ui.NewExpandableList(site.Testimonials.Items, site.TestimonialsPreview()),
		lastSeen:     now,
		clock:        time.Now,
	}
	p.navbar.Mount(p.window)
	return p
}

// Site returns the content the page was minted with.
func (p *Page) Site() *content.Site { return p.site }

// State snapshots the page.
func (p *Page) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stateLocked()
}

func (p *Page) stateLocked() State {
	revealed := make(map[string]bool, p.reveal.Len())
	for _, k := range p.reveal.Keys() {
		revealed[k] = true
	}
	return State{
		Navbar:       p.navbar.State(),
		Testimonials: p.testimonialsLocked(),
		Revealed:     revealed,
	}
}

func (p *Page) testimonialsLocked() TestimonialsState {
	l := p.testimonials
	return TestimonialsState{
		Visible:     l.Visible(),
		Total:       l.Len(),
		Hidden:      l.Hidden(),
		Expanded:    l.Expanded(),
		LabelKey:    l.LabelKey(),
		IndicatorUp: l.IndicatorUp(),
	}
}

// ToggleMenu flips the mobile menu.
func (p *Page) ToggleMenu() ui.NavbarState {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.navbar.ToggleMenu()
	return p.navbar.State()
}

// ToggleTestimonials flips the testimonials expansion.
func (p *Page) ToggleTestimonials() TestimonialsState {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.testimonials.Toggle()
	return p.testimonialsLocked()
}

// Scroll dispatches a scroll event at offset y to the page window.
func (p *Page) Scroll(y float64) ui.NavbarState {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lastSeen = p.clock()
	p.window.ScrollTo(y)
	return p.navbar.State()
}

// NavbarAt samples offset y for a client without a live connection. A
// navbar that was unmounted by a closed connection is mounted again.
func (p *Page) NavbarAt(y float64) ui.NavbarState {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.window.ScrollTo(y)
	if !p.navbar.Mounted() && !p.closed {
		p.navbar.Mount(p.window)
	}
	return p.navbar.State()
}

// MarkInView records a reveal key and reports whether it was new.
func (p *Page) MarkInView(key string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lastSeen = p.clock()
	return p.reveal.MarkInView(key)
}

// Attach registers a live connection whose viewport is at offset y. The
// navbar is (re)mounted so its offset is sampled from the client's report.
func (p *Page) Attach(y float64) (ui.NavbarState, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ui.NavbarState{}, false
	}
	p.conns++
	p.lastSeen = p.clock()
	p.window.ScrollTo(y)
	p.navbar.Mount(p.window)
	return p.navbar.State(), true
}

// Detach releases a live connection. The last one unmounts the navbar. The
// idle timeout restarts from the moment the connection drops.
func (p *Page) Detach() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lastSeen = p.clock()
	if p.conns > 0 {
		p.conns--
	}
	if p.conns == 0 {
		p.navbar.Unmount()
	}
}

// Navbar snapshots the navbar alone.
func (p *Page) Navbar() ui.NavbarState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.navbar.State()
}

// OnModeChange forwards navbar mode flips to fn. fn runs with the page
// locked and must not call back into the page.
func (p *Page) OnModeChange(fn func(solid bool)) (cancel func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	c := p.navbar.OnModeChange(fn)
	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		c()
	}
}

// Listeners returns the number of scroll listeners on the page window.
func (p *Page) Listeners() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.window.Listeners()
}

func (p *Page) touch(now time.Time) {
	p.mu.Lock()
	p.lastSeen = now
	p.mu.Unlock()
}

func (p *Page) idle(now time.Time, ttl time.Duration) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.conns == 0 && now.Sub(p.lastSeen) > ttl
}

func (p *Page) close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	p.navbar.Unmount()
}
