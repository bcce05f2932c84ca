package service

import (
	"context"
	"sync"
)

// Feed is the view state of one listing: the records last loaded and
// whether a load is in progress. A failed load keeps the prior records.
type Feed[T any] struct {
	mu        sync.Mutex
	items     []T
	loading   bool
	err       error
	onLoading func(loading bool)
}

// NewFeed returns a feed showing prior until the first successful load.
func NewFeed[T any](prior []T) *Feed[T] {
	if prior == nil {
		prior = []T{}
	}
	return &Feed[T]{items: prior}
}

// OnLoading registers fn to observe every change of the loading flag.
func (f *Feed[T]) OnLoading(fn func(loading bool)) {
	f.mu.Lock()
	f.onLoading = fn
	f.mu.Unlock()
}

// Load runs fetch once. The loading flag is raised before the call and
// lowered exactly once when it returns, whatever the outcome.
func (f *Feed[T]) Load(ctx context.Context, fetch func(context.Context) ([]T, error)) error {
	f.setLoading(true)
	defer f.setLoading(false)

	items, err := fetch(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
	if err != nil {
		return err
	}
	if items == nil {
		items = []T{}
	}
	f.items = items
	return nil
}

// Items returns the records currently displayed. Never nil.
func (f *Feed[T]) Items() []T {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.items
}

// Loading reports whether a load is in progress.
func (f *Feed[T]) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading
}

// Err returns the error of the last load, if any.
func (f *Feed[T]) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

func (f *Feed[T]) setLoading(v bool) {
	f.mu.Lock()
	f.loading = v
	fn := f.onLoading
	f.mu.Unlock()
	if fn != nil {
		fn(v)
	}
}
