// internal/fetch/search_test.go
package fetch

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type searchRecorder struct {
	mu      sync.Mutex
	queries []string
}

func (r *searchRecorder) search(ctx context.Context, query string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queries = append(r.queries, query)
	return []string{"result for " + query}, nil
}

func (r *searchRecorder) calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string{}, r.queries...)
}

func TestSearchController_DebouncesBurstToSingleCall(t *testing.T) {
	rec := &searchRecorder{}
	ctrl := NewSearchController(30*time.Millisecond, rec.search, nil)

	ctx := context.Background()
	for _, q := range []string{"s", "sh", "sho", "shoe", "shoes"} {
		ctrl.SetQuery(ctx, q)
		time.Sleep(5 * time.Millisecond)
	}

	assert.Equal(t, StateLoading, ctrl.Snapshot().State)

	// Let the debounce window elapse and the single fetch complete.
	time.Sleep(100 * time.Millisecond)

	calls := rec.calls()
	require.Len(t, calls, 1, "a burst of query changes produces one backend call")
	assert.Equal(t, "shoes", calls[0], "the call carries the final query")

	snap := ctrl.Snapshot()
	assert.Equal(t, StateLoaded, snap.State)
	require.Len(t, snap.Items, 1)
	assert.Equal(t, "result for shoes", snap.Items[0])
}

func TestSearchController_BlankQueryShortCircuits(t *testing.T) {
	rec := &searchRecorder{}
	ctrl := NewSearchController(10*time.Millisecond, rec.search, nil)

	ctx := context.Background()
	ctrl.SetQuery(ctx, "shoes")
	ctrl.SetQuery(ctx, "   ")

	time.Sleep(50 * time.Millisecond)

	assert.Empty(t, rec.calls(), "clearing the query cancels the pending fetch")

	snap := ctrl.Snapshot()
	assert.Equal(t, StateLoaded, snap.State)
	assert.Empty(t, snap.Items)
	assert.NoError(t, snap.Err)
}

func TestSearchController_NewQueryCancelsPending(t *testing.T) {
	rec := &searchRecorder{}
	ctrl := NewSearchController(30*time.Millisecond, rec.search, nil)

	ctx := context.Background()
	ctrl.SetQuery(ctx, "first")
	time.Sleep(10 * time.Millisecond)
	ctrl.SetQuery(ctx, "second")

	time.Sleep(100 * time.Millisecond)

	calls := rec.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "second", calls[0])
}
