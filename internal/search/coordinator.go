// Package search coordinates debounced listing searches against a data source.
package search

import (
	"context"
	"sync"
	"time"

	"homeinsight-catalog/internal/filter"
	"homeinsight-catalog/internal/models"
	"homeinsight-catalog/pkg/logger"
	"homeinsight-catalog/pkg/metrics"

	"github.com/romdo/go-debounce"
)

// DefaultDebounce is the quiet period after the last keystroke before a fetch.
const DefaultDebounce = 600 * time.Millisecond

// DataSource fetches listings for a search term. An empty credential means
// anonymous access.
type DataSource interface {
	Fetch(ctx context.Context, term, credential string) ([]models.Listing, error)
}

// CredentialFunc returns the current session credential, or "" when signed out.
type CredentialFunc func() string

// State is a snapshot of what the browser should display.
type State struct {
	Term             string
	Records          []models.Listing
	Filter           filter.Availability
	IsInitialLoading bool
	IsSearching      bool
}

// Options configures a Coordinator
type Options struct {
	Source     DataSource
	Credential CredentialFunc
	// Debounce is the quiet period before a term change is fetched. Zero
	// fetches on every change; a negative value selects DefaultDebounce.
	Debounce   time.Duration
	OnChange   func(State)
}

// Coordinator owns the search term, the availability filter and the most
// recently applied results. Only the response to the latest dispatched
// request is ever applied.
type Coordinator struct {
	source     DataSource
	credential CredentialFunc
	onChange   func(State)

	ctx    context.Context
	cancel context.CancelFunc

	debounced      func()
	cancelDebounce func()

	mu             sync.Mutex
	term           string
	results        []models.Listing
	mode           filter.Availability
	seq            uint64
	initialLoading bool
	searching      bool
	closed         bool
	wg             sync.WaitGroup
}

// NewCoordinator creates a coordinator. Nothing is fetched until Start.
func NewCoordinator(opts Options) *Coordinator {
	if opts.Debounce < 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Credential == nil {
		opts.Credential = func() string { return "" }
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := &Coordinator{
		source:         opts.Source,
		credential:     opts.Credential,
		onChange:       opts.OnChange,
		ctx:            ctx,
		cancel:         cancel,
		results:        []models.Listing{},
		initialLoading: true,
	}
	if opts.Debounce == 0 {
		c.debounced, c.cancelDebounce = c.dispatch, func() {}
	} else {
		c.debounced, c.cancelDebounce = debounce.New(opts.Debounce, c.dispatch)
	}
	return c
}

// Start issues the initial fetch for the current term without waiting for
// the debounce.
func (c *Coordinator) Start() {
	c.dispatch()
}

// SetSearchTerm records the term and (re)arms the debounce timer.
func (c *Coordinator) SetSearchTerm(term string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.term = term
	c.mu.Unlock()

	c.notify()
	c.debounced()
}

// SetAvailabilityFilter changes the local filter. It never triggers a fetch.
func (c *Coordinator) SetAvailabilityFilter(mode filter.Availability) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.mode = mode
	c.mu.Unlock()

	c.notify()
}

// State returns the current display snapshot.
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Close stops the pending debounce and abandons in-flight requests. Results
// arriving afterwards are ignored.
func (c *Coordinator) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.mu.Unlock()

	c.cancelDebounce()
	c.cancel()
	c.wg.Wait()
}

func (c *Coordinator) snapshotLocked() State {
	return State{
		Term:             c.term,
		Records:          filter.Apply(c.results, c.mode),
		Filter:           c.mode,
		IsInitialLoading: c.initialLoading,
		IsSearching:      c.searching,
	}
}

func (c *Coordinator) notify() {
	if c.onChange == nil {
		return
	}
	c.onChange(c.State())
}

// dispatch starts a fetch for the current term under a new sequence number
func (c *Coordinator) dispatch() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.seq++
	seq := c.seq
	term := c.term
	c.searching = true
	c.wg.Add(1)
	c.mu.Unlock()

	credential := c.credential()
	metrics.ListingFetchesTotal.WithLabelValues("dispatched").Inc()
	logger.GlobalLogger.Debugf("Dispatching listing fetch: seq=%d, search=%q, authenticated=%t", seq, term, credential != "")
	c.notify()

	go c.fetch(seq, term, credential)
}

func (c *Coordinator) fetch(seq uint64, term, credential string) {
	defer c.wg.Done()

	start := time.Now()
	records, err := c.source.Fetch(c.ctx, term, credential)
	c.resolve(seq, term, records, err, time.Since(start))
}

func (c *Coordinator) resolve(seq uint64, term string, records []models.Listing, err error, latency time.Duration) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}

	c.initialLoading = false

	if seq != c.seq {
		c.mu.Unlock()
		metrics.ListingFetchesTotal.WithLabelValues("discarded").Inc()
		logger.GlobalLogger.Debugf("Discarding stale listing response: seq=%d, latest=%d, search=%q", seq, c.latestSeq(), term)
		c.notify()
		return
	}

	c.searching = false
	if err != nil {
		// records keep their previous value
		c.mu.Unlock()
		metrics.ListingFetchesTotal.WithLabelValues("failed").Inc()
		logger.GlobalLogger.Errorf("Listing fetch failed: seq=%d, search=%q, latency=%v, error=%v", seq, term, latency, err)
		c.notify()
		return
	}

	if records == nil {
		records = []models.Listing{}
	}
	c.results = records
	c.mu.Unlock()

	metrics.ListingFetchesTotal.WithLabelValues("applied").Inc()
	logger.GlobalLogger.Debugf("Applied listing response: seq=%d, search=%q, count=%d, latency=%v", seq, term, len(records), latency)
	c.notify()
}

func (c *Coordinator) latestSeq() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seq
}
