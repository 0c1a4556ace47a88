// internal/fetch/search.go
package fetch

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// SearchFunc runs a query against the backend
type SearchFunc[T any] func(ctx context.Context, query string) ([]T, error)

// SearchController debounces keystroke-driven query changes so that a
// burst of changes produces a single backend call for the final query.
// A blank query short-circuits to an empty loaded result without calling
// the backend at all.
type SearchController[T any] struct {
	mu       sync.Mutex
	state    State
	items    []T
	err      error
	seq      uint64
	debounce time.Duration
	timer    *time.Timer
	search   SearchFunc[T]
	log      *logrus.Entry
}

// NewSearchController creates an idle search controller
func NewSearchController[T any](debounce time.Duration, search SearchFunc[T], log *logrus.Entry) *SearchController[T] {
	return &SearchController[T]{
		state:    StateIdle,
		debounce: debounce,
		search:   search,
		log:      log,
	}
}

// SetQuery registers a query change. The fetch fires after the debounce
// window elapses with no further changes; earlier pending fetches are
// cancelled, and in-flight ones are invalidated so a slow stale response
// cannot overwrite a newer result.
func (s *SearchController[T]) SetQuery(ctx context.Context, query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	if strings.TrimSpace(query) == "" {
		s.seq++
		s.state = StateLoaded
		s.items = []T{}
		s.err = nil
		return
	}

	s.state = StateLoading
	s.timer = time.AfterFunc(s.debounce, func() {
		s.run(ctx, query)
	})
}

func (s *SearchController[T]) run(ctx context.Context, query string) {
	s.mu.Lock()
	s.seq++
	mySeq := s.seq
	s.mu.Unlock()

	results, err := s.search(ctx, query)

	s.mu.Lock()
	defer s.mu.Unlock()
	if mySeq != s.seq {
		return
	}
	if err != nil {
		s.state = StateError
		s.err = err
		if s.log != nil {
			s.log.WithError(err).WithField("query", query).Warn("search failed")
		}
		return
	}
	s.state = StateLoaded
	s.items = results
	s.err = nil
}

// Snapshot returns a value copy of the observable state
func (s *SearchController[T]) Snapshot() Snapshot[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]T, len(s.items))
	copy(items, s.items)
	return Snapshot[T]{
		State: s.state,
		Items: items,
		Err:   s.err,
	}
}
