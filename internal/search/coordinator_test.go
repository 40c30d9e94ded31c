package search

import (
	"context"
	stderrors "errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homeinsight-catalog/internal/filter"
	"homeinsight-catalog/internal/models"
)

const (
	testWait = 30 * time.Millisecond
	waitFor  = 2 * time.Second
	tick     = 5 * time.Millisecond
)

type call struct {
	term       string
	credential string
	reply      chan reply
}

type reply struct {
	records []models.Listing
	err     error
}

// fakeSource blocks every Fetch until the test answers it.
type fakeSource struct {
	mu    sync.Mutex
	calls []*call
}

func (f *fakeSource) Fetch(ctx context.Context, term, credential string) ([]models.Listing, error) {
	c := &call{term: term, credential: credential, reply: make(chan reply, 1)}
	f.mu.Lock()
	f.calls = append(f.calls, c)
	f.mu.Unlock()

	select {
	case r := <-c.reply:
		return r.records, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (f *fakeSource) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeSource) call(i int) *call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[i]
}

func (f *fakeSource) waitCalls(t *testing.T, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return f.count() >= n }, waitFor, tick)
}

func listings(ids ...string) []models.Listing {
	out := make([]models.Listing, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.Listing{ID: id, Title: "Listing " + id, Available: id != "sold"})
	}
	return out
}

func ids(records []models.Listing) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func newTestCoordinator(t *testing.T, src *fakeSource, credential CredentialFunc) *Coordinator {
	t.Helper()
	c := NewCoordinator(Options{Source: src, Credential: credential, Debounce: testWait})
	t.Cleanup(c.Close)
	return c
}

func TestInitialState(t *testing.T) {
	c := newTestCoordinator(t, &fakeSource{}, nil)

	st := c.State()
	assert.Equal(t, "", st.Term)
	assert.Empty(t, st.Records)
	assert.Equal(t, filter.All, st.Filter)
	assert.True(t, st.IsInitialLoading)
	assert.False(t, st.IsSearching)
}

func TestStartFetchesImmediately(t *testing.T) {
	src := &fakeSource{}
	c := newTestCoordinator(t, src, nil)

	c.Start()
	src.waitCalls(t, 1)
	assert.Equal(t, "", src.call(0).term)
	assert.True(t, c.State().IsSearching)

	src.call(0).reply <- reply{records: listings("1", "2")}
	require.Eventually(t, func() bool { return !c.State().IsSearching }, waitFor, tick)

	st := c.State()
	assert.False(t, st.IsInitialLoading)
	assert.Equal(t, []string{"1", "2"}, ids(st.Records))
}

func TestBurstOfKeystrokesFetchesOnceWithFinalTerm(t *testing.T) {
	src := &fakeSource{}
	c := newTestCoordinator(t, src, nil)

	for _, term := range []string{"c", "ca", "cas", "casa", "casa "} {
		c.SetSearchTerm(term)
		time.Sleep(testWait / 5)
	}
	assert.Equal(t, 0, src.count(), "no fetch before the quiet period")
	assert.Equal(t, "casa ", c.State().Term)

	src.waitCalls(t, 1)
	time.Sleep(3 * testWait)
	assert.Equal(t, 1, src.count())
	assert.Equal(t, "casa ", src.call(0).term)
}

func TestStaleResponseIsDiscarded(t *testing.T) {
	src := &fakeSource{}
	c := newTestCoordinator(t, src, nil)

	c.SetSearchTerm("a")
	src.waitCalls(t, 1)
	c.SetSearchTerm("ab")
	src.waitCalls(t, 2)

	// newest first, then the older request resolves late
	src.call(1).reply <- reply{records: listings("new")}
	require.Eventually(t, func() bool { return !c.State().IsSearching }, waitFor, tick)
	src.call(0).reply <- reply{records: listings("old")}

	time.Sleep(3 * testWait)
	st := c.State()
	assert.Equal(t, []string{"new"}, ids(st.Records))
	assert.False(t, st.IsSearching)
}

func TestSupersededResponseKeepsSearching(t *testing.T) {
	src := &fakeSource{}
	c := newTestCoordinator(t, src, nil)

	c.Start()
	c.SetSearchTerm("x")
	src.waitCalls(t, 2)

	src.call(0).reply <- reply{records: listings("mount")}
	require.Eventually(t, func() bool { return !c.State().IsInitialLoading }, waitFor, tick)

	st := c.State()
	assert.True(t, st.IsSearching, "latest request still in flight")
	assert.Empty(t, st.Records, "superseded results are never applied")

	src.call(1).reply <- reply{records: listings("x1")}
	require.Eventually(t, func() bool { return !c.State().IsSearching }, waitFor, tick)
	assert.Equal(t, []string{"x1"}, ids(c.State().Records))
}

func TestFailureRetainsRecords(t *testing.T) {
	src := &fakeSource{}
	c := newTestCoordinator(t, src, nil)

	c.Start()
	src.waitCalls(t, 1)
	src.call(0).reply <- reply{records: listings("1")}
	require.Eventually(t, func() bool { return !c.State().IsSearching }, waitFor, tick)

	c.SetSearchTerm("boom")
	src.waitCalls(t, 2)
	src.call(1).reply <- reply{err: stderrors.New("connection reset")}
	require.Eventually(t, func() bool { return !c.State().IsSearching }, waitFor, tick)

	st := c.State()
	assert.Equal(t, []string{"1"}, ids(st.Records))
	assert.False(t, st.IsInitialLoading)
}

func TestInitialLoadingClearedByFailure(t *testing.T) {
	src := &fakeSource{}
	c := newTestCoordinator(t, src, nil)

	c.Start()
	src.waitCalls(t, 1)
	src.call(0).reply <- reply{err: stderrors.New("unreachable")}
	require.Eventually(t, func() bool { return !c.State().IsInitialLoading }, waitFor, tick)
	assert.Empty(t, c.State().Records)
}

func TestAvailabilityFilterIsLocal(t *testing.T) {
	src := &fakeSource{}
	c := newTestCoordinator(t, src, nil)

	c.Start()
	src.waitCalls(t, 1)
	src.call(0).reply <- reply{records: listings("1", "sold", "2")}
	require.Eventually(t, func() bool { return !c.State().IsSearching }, waitFor, tick)

	c.SetAvailabilityFilter(filter.Unavailable)
	assert.Equal(t, []string{"sold"}, ids(c.State().Records))
	c.SetAvailabilityFilter(filter.Available)
	assert.Equal(t, []string{"1", "2"}, ids(c.State().Records))
	c.SetAvailabilityFilter(filter.All)
	assert.Equal(t, []string{"1", "sold", "2"}, ids(c.State().Records))

	time.Sleep(3 * testWait)
	assert.Equal(t, 1, src.count())
}

func TestCredentialReadAtDispatch(t *testing.T) {
	src := &fakeSource{}
	var mu sync.Mutex
	token := ""
	c := newTestCoordinator(t, src, func() string {
		mu.Lock()
		defer mu.Unlock()
		return token
	})

	c.Start()
	src.waitCalls(t, 1)
	assert.Equal(t, "", src.call(0).credential)

	mu.Lock()
	token = "tok"
	mu.Unlock()
	c.SetSearchTerm("x")
	src.waitCalls(t, 2)
	assert.Equal(t, "tok", src.call(1).credential)
}

func TestCloseIgnoresLateResults(t *testing.T) {
	src := &fakeSource{}
	c := NewCoordinator(Options{Source: src, Debounce: testWait})

	c.Start()
	c.SetSearchTerm("pending")
	c.Close()

	time.Sleep(3 * testWait)
	assert.Equal(t, 1, src.count(), "pending debounce cancelled")
	st := c.State()
	assert.Empty(t, st.Records)
	assert.True(t, st.IsInitialLoading)

	c.SetSearchTerm("after close")
	assert.Equal(t, "pending", c.State().Term)
}

func TestOnChangeReceivesSnapshots(t *testing.T) {
	src := &fakeSource{}
	var mu sync.Mutex
	var seen []State
	c := NewCoordinator(Options{Source: src, Debounce: testWait, OnChange: func(s State) {
		mu.Lock()
		seen = append(seen, s)
		mu.Unlock()
	}})
	t.Cleanup(c.Close)

	c.Start()
	src.waitCalls(t, 1)
	src.call(0).reply <- reply{records: listings("1")}
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(seen) >= 2
	}, waitFor, tick)

	mu.Lock()
	defer mu.Unlock()
	assert.True(t, seen[0].IsSearching)
	last := seen[len(seen)-1]
	assert.False(t, last.IsSearching)
	assert.Equal(t, []string{"1"}, ids(last.Records))
}

func TestZeroDebounceFetchesEveryChange(t *testing.T) {
	src := &fakeSource{}
	c := NewCoordinator(Options{Source: src, Debounce: 0})
	t.Cleanup(c.Close)

	c.SetSearchTerm("c")
	c.SetSearchTerm("ca")
	src.waitCalls(t, 2)

	terms := []string{src.call(0).term, src.call(1).term}
	assert.ElementsMatch(t, []string{"c", "ca"}, terms)
	assert.True(t, c.State().IsSearching)
}
