package ui

import "sort"

// Reveal records which elements have entered the viewport. Marks never
// reset; the zero value is empty and ready to use.
type Reveal struct {
	seen map[string]struct{}
}

// MarkInView records key and reports whether it was new.
func (r *Reveal) MarkInView(key string) bool {
	if key == "" {
		return false
	}
	if r.seen == nil {
		r.seen = map[string]struct{}{}
	}
	if _, ok := r.seen[key]; ok {
		return false
	}
	r.seen[key] = struct{}{}
	return true
}

// Seen reports whether key has entered the viewport.
func (r *Reveal) Seen(key string) bool {
	_, ok := r.seen[key]
	return ok
}

// Len returns the number of revealed keys.
func (r *Reveal) Len() int { return len(r.seen) }

// Keys returns the revealed keys in sorted order.
func (r *Reveal) Keys() []string {
	out := make([]string, 0, len(r.seen))
	for k := range r.seen {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
