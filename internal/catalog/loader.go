// Package catalog loads the party-favours shop items from the public product
// feed.  A Loader performs exactly one cancellable request per activation and
// exposes loading, error and item state to the page.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/iliyamo/party-bliss/internal/model"
)

// DefaultURL is the product feed the shop section reads from.
const DefaultURL = "https://fakestoreapi.com/products?limit=8&category=electronics"

// LoadErrorMessage is the banner text shown when the feed cannot be read.
const LoadErrorMessage = "Could not load products. Please try again later."

// Logger is the subset of the echo/gommon logger the loader writes to.
type Logger interface {
	Warnf(format string, args ...interface{})
}

// State is what the shop section renders.
type State struct {
	Loading bool                `json:"loading"`
	Error   string              `json:"error,omitempty"`
	Items   []model.CatalogItem `json:"items"`
}

// Loader fetches the feed once.  Start begins the request, Stop cancels it;
// a response arriving after cancellation leaves the state untouched.
type Loader struct {
	client *http.Client
	url    string
	log    Logger

	mu      sync.Mutex
	state   State
	started bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewLoader returns an idle loader.  A nil client uses http.DefaultClient and
// an empty url uses DefaultURL.
func NewLoader(client *http.Client, url string, logger Logger) *Loader {
	if client == nil {
		client = http.DefaultClient
	}
	if url == "" {
		url = DefaultURL
	}
	return &Loader{
		client: client,
		url:    url,
		log:    logger,
		state:  State{Items: []model.CatalogItem{}},
		done:   make(chan struct{}),
	}
}

// Start issues the request in the background.  Cancelling parent has the
// same effect as Stop.  Calls after the first are ignored.
func (l *Loader) Start(parent context.Context) {
	l.mu.Lock()
	if l.started {
		l.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(parent)
	l.started = true
	l.cancel = cancel
	l.state = State{Loading: true, Items: []model.CatalogItem{}}
	l.mu.Unlock()

	go l.run(ctx, cancel)
}

// Stop cancels an in-flight request.  It is safe to call at any time.
func (l *Loader) Stop() {
	l.mu.Lock()
	cancel := l.cancel
	l.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Done is closed when the request goroutine has finished, whether it
// completed or was cancelled.
func (l *Loader) Done() <-chan struct{} { return l.done }

// State returns a copy of the current state.
func (l *Loader) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := l.state
	out.Items = make([]model.CatalogItem, len(l.state.Items))
	copy(out.Items, l.state.Items)
	return out
}

// Load starts the loader, waits for it to finish or for ctx to end, and
// returns the resulting state.  The request is cancelled before returning.
func (l *Loader) Load(ctx context.Context) State {
	l.Start(ctx)
	defer l.Stop()
	select {
	case <-l.Done():
	case <-ctx.Done():
	}
	return l.State()
}

func (l *Loader) run(ctx context.Context, cancel context.CancelFunc) {
	defer close(l.done)
	defer cancel()

	items, err := l.fetch(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	if ctx.Err() != nil {
		// torn down before completion
		return
	}
	l.state.Loading = false
	if err != nil {
		if l.log != nil {
			l.log.Warnf("[catalog] load failed: %v", err)
		}
		l.state.Error = LoadErrorMessage
		return
	}
	l.state.Items = items
}

func (l *Loader) fetch(ctx context.Context) ([]model.CatalogItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", l.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("get %s: unexpected status %d", l.url, resp.StatusCode)
	}

	var items []model.CatalogItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("decode feed: %w", err)
	}
	if items == nil {
		items = []model.CatalogItem{}
	}
	return items, nil
}
