package live

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"veteranmentors.org/mentors-web/internal/content"
)

// ErrPageNotFound is returned for unknown or expired page IDs.
var ErrPageNotFound = errors.New("live: page not found")

// Registry holds page instances keyed by ID and expires idle ones.
type Registry struct {
	mu    sync.Mutex
	pages map[string]*Page
	ttl   time.Duration
	now   func() time.Time
	log   *zap.Logger
}

func NewRegistry(ttl time.Duration, log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{
		pages: map[string]*Page{},
		ttl:   ttl,
		now:   time.Now,
		log:   log,
	}
}

// Create mints a page instance for site.
func (r *Registry) Create(site *content.Site) *Page {
	p := newPage(uuid.NewString(), site, r.now())
	p.clock = r.now
	r.mu.Lock()
	r.pages[p.ID] = p
	r.mu.Unlock()
	return p
}

// Get returns the page with id and marks it as recently used.
func (r *Registry) Get(id string) (*Page, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrPageNotFound
	}
	r.mu.Lock()
	p, ok := r.pages[id]
	r.mu.Unlock()
	if !ok {
		return nil, ErrPageNotFound
	}
	p.touch(r.now())
	return p, nil
}

// Remove tears down the page with id.
func (r *Registry) Remove(id string) bool {
	r.mu.Lock()
	p, ok := r.pages[id]
	delete(r.pages, id)
	r.mu.Unlock()
	if ok {
		p.close()
	}
	return ok
}

// Len returns the number of live pages.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pages)
}

// Sweep evicts pages idle for longer than the TTL and without connections.
func (r *Registry) Sweep() int {
	now := r.now()
	r.mu.Lock()
	var expired []*Page
	for id, p := range r.pages {
		if p.idle(now, r.ttl) {
			expired = append(expired, p)
			delete(r.pages, id)
		}
	}
	r.mu.Unlock()
	for _, p := range expired {
		p.close()
	}
	if len(expired) > 0 {
		r.log.Debug("evicted idle pages", zap.Int("count", len(expired)))
	}
	return len(expired)
}

// Run sweeps every interval until ctx is cancelled, then closes the registry.
func (r *Registry) Run(ctx context.Context, interval time.Duration) error {
	t := time.NewTicker(interval)
	defer t.Stop()
	defer r.Close()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			r.Sweep()
		}
	}
}

// Close tears down every page.
func (r *Registry) Close() {
	r.mu.Lock()
	pages := r.pages
	r.pages = map[string]*Page{}
	r.mu.Unlock()
	for _, p := range pages {
		p.close()
	}
}
