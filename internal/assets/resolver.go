package assets

import (
	"context"
	"errors"
	"image"
	"log"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
)

// MaxConcurrentFetches bounds how many fetches a batch runs at once.
const MaxConcurrentFetches = 8

// Table maps a symbolic key to its decoded image. A key is absent when its
// load failed.
type Table map[string]image.Image

// Manifest maps a symbolic key to a resource locator.
type Manifest map[string]string

var errNoImage = errors.New("fetcher returned no image")

// Batch is an in-flight load of a Manifest. It completes exactly once, after
// every fetch has either loaded or failed.
type Batch struct {
	done       chan struct{}
	once       sync.Once
	onComplete func(Table)

	mu       sync.Mutex
	pending  int
	table    Table
	failures map[string]error
}

// Load fetches every entry of m exactly once and calls onComplete (if non-nil)
// exactly once when the whole batch has settled. Failures are logged and
// counted toward completion; they never abort the batch.
//
// With an empty manifest onComplete runs before Load returns.
func Load(m Manifest, f Fetcher, onComplete func(Table)) *Batch {
	b := &Batch{
		done:       make(chan struct{}),
		onComplete: onComplete,
		pending:    len(m),
		table:      make(Table, len(m)),
		failures:   make(map[string]error),
	}
	if len(m) == 0 {
		b.finish()
		return b
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// Dispatch from a goroutine: g.Go blocks once the limit is reached.
	go func() {
		var g errgroup.Group
		g.SetLimit(MaxConcurrentFetches)
		for _, key := range keys {
			loc := m[key]
			g.Go(func() error {
				img, err := f.Fetch(loc)
				if err == nil && img == nil {
					err = errNoImage
				}
				b.settle(key, loc, img, err)
				return nil
			})
		}
		_ = g.Wait()
	}()
	return b
}

// LoadDefault loads DefaultManifest with f.
func LoadDefault(f Fetcher, onComplete func(Table)) *Batch {
	return Load(DefaultManifest(), f, onComplete)
}

func (b *Batch) settle(key, loc string, img image.Image, err error) {
	b.mu.Lock()
	if err != nil {
		log.Printf("assets: failed to load %s: %v", loc, err)
		b.failures[key] = err
	} else {
		b.table[key] = img
	}
	b.pending--
	last := b.pending == 0
	b.mu.Unlock()

	if last {
		b.finish()
	}
}

func (b *Batch) finish() {
	b.once.Do(func() {
		close(b.done)
		if b.onComplete != nil {
			b.onComplete(b.table)
		}
	})
}

// Done is closed when every fetch has settled.
func (b *Batch) Done() <-chan struct{} {
	return b.done
}

// Wait blocks until the batch completes or ctx ends. Returning early does not
// cancel outstanding fetches.
func (b *Batch) Wait(ctx context.Context) (Table, error) {
	select {
	case <-b.done:
		return b.table, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Table returns the loaded images, or nil while the batch is still running.
func (b *Batch) Table() Table {
	select {
	case <-b.done:
		return b.table
	default:
		return nil
	}
}

// Failures returns a copy of the per-key load errors recorded so far.
func (b *Batch) Failures() map[string]error {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make(map[string]error, len(b.failures))
	for k, v := range b.failures {
		out[k] = v
	}
	return out
}
