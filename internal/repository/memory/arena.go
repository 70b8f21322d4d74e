// Package memory is the default in-process store. Records live in an arena
// keyed by id with insertion order kept, and every operation waits a
// configurable delay before touching the arena.
package memory

import (
	"context"
	"sync"
	"time"

	"go-ats-dashboard/internal/domain"
)

// Latency is the simulated delay per operation.
type Latency struct {
	List   time.Duration
	Get    time.Duration
	Create time.Duration
	Update time.Duration
	Delete time.Duration
}

// DefaultLatency mirrors the delays of the demo backend the dashboard was built against.
func DefaultLatency() Latency {
	return Latency{
		List:   500 * time.Millisecond,
		Get:    300 * time.Millisecond,
		Create: 400 * time.Millisecond,
		Update: 400 * time.Millisecond,
		Delete: 300 * time.Millisecond,
	}
}

// Scaled multiplies every delay by f. f <= 0 disables latency.
func (l Latency) Scaled(f float64) Latency {
	if f <= 0 {
		return Latency{}
	}
	scale := func(d time.Duration) time.Duration { return time.Duration(float64(d) * f) }
	return Latency{
		List:   scale(l.List),
		Get:    scale(l.Get),
		Create: scale(l.Create),
		Update: scale(l.Update),
		Delete: scale(l.Delete),
	}
}

// sleep blocks for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

type arena[T any] struct {
	mu    sync.RWMutex
	order []string
	items map[string]T
	id    func(T) string
	clone func(T) T
}

func newArena[T any](id func(T) string, clone func(T) T, seed []T) *arena[T] {
	a := &arena[T]{
		items: make(map[string]T, len(seed)),
		id:    id,
		clone: clone,
	}
	for _, it := range seed {
		_ = a.insert(it)
	}
	return a
}

func (a *arena[T]) list() []T {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]T, 0, len(a.order))
	for _, id := range a.order {
		out = append(out, a.clone(a.items[id]))
	}
	return out
}

func (a *arena[T]) get(id string) (T, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	it, ok := a.items[id]
	if !ok {
		var zero T
		return zero, domain.ErrNotFound
	}
	return a.clone(it), nil
}

func (a *arena[T]) insert(it T) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	id := a.id(it)
	if _, ok := a.items[id]; ok {
		return domain.ErrDuplicateID
	}
	a.items[id] = a.clone(it)
	a.order = append(a.order, id)
	return nil
}

func (a *arena[T]) replace(it T) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	id := a.id(it)
	if _, ok := a.items[id]; !ok {
		return domain.ErrNotFound
	}
	a.items[id] = a.clone(it)
	return nil
}

func (a *arena[T]) remove(id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(a.items, id)
	for i, oid := range a.order {
		if oid == id {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
	return nil
}
