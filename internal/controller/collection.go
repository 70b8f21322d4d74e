package controller

import (
	"slices"
	"sync"
)

// collection is the local cache of one entity list plus the current selection.
type collection[T any] struct {
	mu       sync.RWMutex
	items    []T
	selected *T
	id       func(T) string
	clone    func(T) T
}

func newCollection[T any](id func(T) string, clone func(T) T) *collection[T] {
	return &collection[T]{id: id, clone: clone}
}

func (c *collection[T]) all() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	for i, it := range c.items {
		out[i] = c.clone(it)
	}
	return out
}

func (c *collection[T]) set(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make([]T, len(items))
	for i, it := range items {
		c.items[i] = c.clone(it)
	}
}

func (c *collection[T]) add(item T) {
	c.mu.Lock()
	c.items = append(c.items, c.clone(item))
	c.mu.Unlock()
}

// replace swaps the item with the same id, and the selection if it matches.
func (c *collection[T]) replace(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.id(item)
	if i := c.index(id); i >= 0 {
		c.items[i] = c.clone(item)
	}
	if c.selected != nil && c.id(*c.selected) == id {
		cp := c.clone(item)
		c.selected = &cp
	}
}

func (c *collection[T]) remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = slices.DeleteFunc(c.items, func(it T) bool { return c.id(it) == id })
	if c.selected != nil && c.id(*c.selected) == id {
		c.selected = nil
	}
}

func (c *collection[T]) index(id string) int {
	return slices.IndexFunc(c.items, func(it T) bool { return c.id(it) == id })
}

// selectID selects the cached item with id and reports whether it exists.
func (c *collection[T]) selectID(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.index(id)
	if i < 0 {
		return false
	}
	cp := c.clone(c.items[i])
	c.selected = &cp
	return true
}

func (c *collection[T]) selectItem(item T) {
	c.mu.Lock()
	cp := c.clone(item)
	c.selected = &cp
	c.mu.Unlock()
}

func (c *collection[T]) current() *T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.selected == nil {
		return nil
	}
	cp := c.clone(*c.selected)
	return &cp
}

func (c *collection[T]) clearSelection() {
	c.mu.Lock()
	c.selected = nil
	c.mu.Unlock()
}

func (c *collection[T]) reset() {
	c.mu.Lock()
	c.items = nil
	c.selected = nil
	c.mu.Unlock()
}
