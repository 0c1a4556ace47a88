// internal/fetch/controller.go
package fetch

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

// State is the lifecycle state of a fetch controller
type State string

const (
	StateIdle        State = "idle"
	StateLoading     State = "loading"
	StateLoaded      State = "loaded"
	StateLoadingMore State = "loading-more"
	StateError       State = "error"
)

// PageFunc loads one page of results from the backend
type PageFunc[T any] func(ctx context.Context, offset, limit int) ([]T, error)

// Snapshot is a value copy of a controller's observable state
type Snapshot[T any] struct {
	State   State `json:"state"`
	Items   []T   `json:"items"`
	Err     error `json:"-"`
	HasMore bool  `json:"has_more"`
}

// Controller is a finite-state fetch controller over a paged backend read.
// It owns the collection it fetched and guards against out-of-order
// completions with a monotonic request sequence: a completion whose
// sequence no longer matches the latest issued request is discarded
// without touching state. In-flight calls are not aborted; only their
// results are dropped.
type Controller[T any] struct {
	mu        sync.Mutex
	state     State
	items     []T
	err       error
	hasMore   bool
	seq       uint64
	pageSize  int
	fetch     PageFunc[T]
	transform func([]T) []T
	log       *logrus.Entry
}

// NewController creates a controller in the idle state
func NewController[T any](pageSize int, fetch PageFunc[T], log *logrus.Entry) *Controller[T] {
	return &Controller[T]{
		state:    StateIdle,
		pageSize: pageSize,
		fetch:    fetch,
		log:      log,
	}
}

// WithTransform sets a transform applied once to every freshly fetched
// page before it is exposed (e.g. a shuffle). Snapshots never re-apply it.
func (c *Controller[T]) WithTransform(fn func([]T) []T) *Controller[T] {
	c.transform = fn
	return c
}

// Refresh (re)loads the first page. Previously loaded items survive a
// failed refresh; only a successful one replaces them.
func (c *Controller[T]) Refresh(ctx context.Context) {
	c.mu.Lock()
	c.seq++
	mySeq := c.seq
	c.state = StateLoading
	c.mu.Unlock()

	page, err := c.fetch(ctx, 0, c.pageSize)

	c.mu.Lock()
	defer c.mu.Unlock()
	if mySeq != c.seq {
		// A newer request superseded this one; drop the result.
		return
	}
	if err != nil {
		c.state = StateError
		c.err = err
		if c.log != nil {
			c.log.WithError(err).Warn("fetch failed")
		}
		return
	}
	if c.transform != nil {
		page = c.transform(page)
	}
	c.state = StateLoaded
	c.items = page
	c.err = nil
	c.hasMore = len(page) == c.pageSize
}

// LoadMore appends the next page to the collection. It is a no-op unless
// the controller is loaded and the previous page indicated more data may
// exist (a full page of exactly pageSize rows; the backend reports no
// total count, so this is an accepted approximation). A failed load keeps
// the collection and surfaces the error.
func (c *Controller[T]) LoadMore(ctx context.Context) {
	c.mu.Lock()
	if c.state != StateLoaded || !c.hasMore {
		c.mu.Unlock()
		return
	}
	c.seq++
	mySeq := c.seq
	offset := len(c.items)
	c.state = StateLoadingMore
	c.mu.Unlock()

	page, err := c.fetch(ctx, offset, c.pageSize)

	c.mu.Lock()
	defer c.mu.Unlock()
	if mySeq != c.seq {
		return
	}
	c.state = StateLoaded
	if err != nil {
		c.err = err
		if c.log != nil {
			c.log.WithError(err).Warn("load more failed")
		}
		return
	}
	if c.transform != nil {
		page = c.transform(page)
	}
	c.items = append(c.items, page...)
	c.err = nil
	c.hasMore = len(page) == c.pageSize
}

// Reset returns the controller to idle, dropping items and errors and
// invalidating any in-flight request.
func (c *Controller[T]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	c.state = StateIdle
	c.items = nil
	c.err = nil
	c.hasMore = false
}

// Snapshot returns a value copy of the observable state
func (c *Controller[T]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]T, len(c.items))
	copy(items, c.items)
	return Snapshot[T]{
		State:   c.state,
		Items:   items,
		Err:     c.err,
		HasMore: c.hasMore,
	}
}
