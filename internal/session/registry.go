package session

import (
	"context"
	"sync"
	"time"

	"github.com/iliyamo/party-bliss/internal/booking"
)

// Registry holds the live form instances, one per browser session.  Instances
// idle for longer than the idle TTL are evicted and closed.
type Registry struct {
	mu      sync.Mutex
	pages   map[string]*entry
	idleTTL time.Duration
	newPage func(id string) *booking.Page

	// OnEvict, when set, is called with the id of every evicted instance.
	OnEvict func(id string)
	// Now is the clock used for idle tracking.
	Now func() time.Time
}

type entry struct {
	page     *booking.Page
	lastSeen time.Time
}

// NewRegistry returns an empty registry creating instances with newPage.
func NewRegistry(idleTTL time.Duration, newPage func(id string) *booking.Page) *Registry {
	return &Registry{
		pages:   make(map[string]*entry),
		idleTTL: idleTTL,
		newPage: newPage,
		Now:     time.Now,
	}
}

// Get returns the instance for id, creating it on first use.
func (r *Registry) Get(id string) *booking.Page {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.Now()
	if e, ok := r.pages[id]; ok {
		e.lastSeen = now
		return e.page
	}
	p := r.newPage(id)
	r.pages[id] = &entry{page: p, lastSeen: now}
	return p
}

// Lookup returns the instance for id without creating it.
func (r *Registry) Lookup(id string) (*booking.Page, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.pages[id]
	if !ok {
		return nil, false
	}
	return e.page, true
}

// Len returns the number of live instances.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pages)
}

// Sweep evicts idle instances and returns how many were removed.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	cutoff := r.Now().Add(-r.idleTTL)
	var evicted []string
	var pages []*booking.Page
	for id, e := range r.pages {
		if e.lastSeen.Before(cutoff) {
			evicted = append(evicted, id)
			pages = append(pages, e.page)
			delete(r.pages, id)
		}
	}
	r.mu.Unlock()

	for i, p := range pages {
		p.Close()
		if r.OnEvict != nil {
			r.OnEvict(evicted[i])
		}
	}
	return len(pages)
}

// Run sweeps every interval until ctx is done, then closes every instance.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			r.Close()
			return
		case <-t.C:
			r.Sweep()
		}
	}
}

// Close closes and removes every instance.
func (r *Registry) Close() {
	r.mu.Lock()
	pages := r.pages
	r.pages = make(map[string]*entry)
	r.mu.Unlock()
	for id, e := range pages {
		e.page.Close()
		if r.OnEvict != nil {
			r.OnEvict(id)
		}
	}
}
