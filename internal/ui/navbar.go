package ui

// DefaultSolidThreshold is the scroll offset past which the navbar turns solid.
const DefaultSolidThreshold = 40.0

// Link is a navigation entry rendered by the navbar.
type Link struct {
	Label  string
	Target string
}

// Transition names the cosmetic animation applied to the mobile menu.
type Transition int

const (
	TransitionNone Transition = iota
	TransitionEnter
	TransitionExit
)

func (t Transition) String() string {
	switch t {
	case TransitionEnter:
		return "enter"
	case TransitionExit:
		return "exit"
	default:
		return ""
	}
}

// NavbarState is a snapshot used by templates.
type NavbarState struct {
	Offset     float64
	Solid      bool
	Open       bool
	Transition Transition
	Links      []Link
	CTA        Link
}

// Navbar owns the scroll observer for its lifetime and derives its display
// mode from the latest offset. The mobile menu starts closed.
type Navbar struct {
	links      []Link
	cta        Link
	threshold  float64
	observer   ScrollObserver
	solid      bool
	open       bool
	transition Transition
	nextHook   int
	hooks      []modeHook
}

type modeHook struct {
	id int
	fn func(solid bool)
}

// NewNavbar builds a navbar over a fixed link sequence and call to action.
func NewNavbar(links []Link, cta Link, threshold float64) *Navbar {
	n := &Navbar{
		links:     append([]Link(nil), links...),
		cta:       cta,
		threshold: threshold,
	}
	n.observer.Subscribe(n.onOffset)
	return n
}

// Mount attaches the navbar's observer to v.
func (n *Navbar) Mount(v Viewport) { n.observer.Mount(v) }

// Unmount detaches the observer. No mode changes are reported afterwards.
func (n *Navbar) Unmount() { n.observer.Unmount() }

// Mounted reports whether the navbar follows a viewport.
func (n *Navbar) Mounted() bool { return n.observer.Mounted() }

// Offset returns the latest observed scroll offset.
func (n *Navbar) Offset() float64 { return n.observer.Offset() }

// Threshold returns the solid-mode threshold.
func (n *Navbar) Threshold() float64 { return n.threshold }

// Solid reports whether the latest offset exceeds the threshold.
func (n *Navbar) Solid() bool { return n.observer.Offset() > n.threshold }

// Open reports whether the mobile menu is open.
func (n *Navbar) Open() bool { return n.open }

// ToggleMenu flips the mobile menu and returns the new value.
func (n *Navbar) ToggleMenu() bool {
	n.open = !n.open
	if n.open {
		n.transition = TransitionEnter
	} else {
		n.transition = TransitionExit
	}
	return n.open
}

// Transition returns the animation of the last menu toggle.
func (n *Navbar) Transition() Transition { return n.transition }

// Links returns the navigation links in order.
func (n *Navbar) Links() []Link { return append([]Link(nil), n.links...) }

// CTA returns the call-to-action link.
func (n *Navbar) CTA() Link { return n.cta }

// State snapshots the navbar for rendering.
func (n *Navbar) State() NavbarState {
	return NavbarState{
		Offset:     n.Offset(),
		Solid:      n.Solid(),
		Open:       n.open,
		Transition: n.transition,
		Links:      n.Links(),
		CTA:        n.cta,
	}
}

// OnModeChange registers fn to be called whenever Solid flips.
func (n *Navbar) OnModeChange(fn func(solid bool)) (cancel func()) {
	n.nextHook++
	id := n.nextHook
	n.hooks = append(n.hooks, modeHook{id: id, fn: fn})
	return func() {
		for i, h := range n.hooks {
			if h.id == id {
				n.hooks = append(n.hooks[:i], n.hooks[i+1:]...)
				return
			}
		}
	}
}

func (n *Navbar) onOffset(y float64) {
	solid := y > n.threshold
	if solid == n.solid {
		return
	}
	n.solid = solid
	hooks := make([]modeHook, len(n.hooks))
	copy(hooks, n.hooks)
	for _, h := range hooks {
		h.fn(solid)
	}
}
