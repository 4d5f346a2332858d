package apiclient

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ErrSuperseded is returned from Loader.Do when a newer load started while
// this one was in flight.
var ErrSuperseded = errors.New("load superseded by a newer request")

// Loader serializes list loads by generation: starting a load cancels the
// context of the previous one, so the last load REQUESTED is the one whose
// result callers keep — not whichever response happened to arrive last.
type Loader struct {
	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
}

// Do runs fn under a fresh generation. If another Do begins before fn
// returns, fn's context is cancelled and Do reports ErrSuperseded regardless
// of fn's own result, so a stale result is never mistaken for a current one.
func (l *Loader) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	l.gen++
	gen := l.gen
	l.cancel = cancel
	l.mu.Unlock()

	err := fn(ctx)

	l.mu.Lock()
	current := gen == l.gen
	if current {
		l.cancel = nil
	}
	l.mu.Unlock()
	cancel()

	if !current {
		return ErrSuperseded
	}
	return err
}

// Enrich runs fn over every item with at most limit in flight. A failing
// item keeps whatever fallback fn left in place and never fails the batch;
// only a cancelled context aborts the whole pass.
func Enrich[T any](ctx context.Context, items []T, limit int, fn func(ctx context.Context, item *T) error) error {
	if limit < 1 {
		limit = 1
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			_ = fn(ctx, &items[i])
			return nil
		})
	}
	return g.Wait()
}
