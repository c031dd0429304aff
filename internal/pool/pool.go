// Package pool reuses the scratch slices built while parsing a command line.
package pool

import "sync"

// Pool is a type-safe wrapper around sync.Pool.
type Pool[T any] struct {
	pool  sync.Pool
	reset func(*T)
}

// New creates a pool; reset, when non-nil, runs on every object handed out by
// Get.
func New[T any](factory func() *T, reset func(*T)) *Pool[T] {
	return &Pool[T]{
		pool:  sync.Pool{New: func() any { return factory() }},
		reset: reset,
	}
}

// Get retrieves an object from the pool or creates a new one.
func (p *Pool[T]) Get() *T {
	obj := p.pool.Get().(*T)
	if p.reset != nil {
		p.reset(obj)
	}
	return obj
}

// Put returns obj for reuse. A nil obj is ignored.
func (p *Pool[T]) Put(obj *T) {
	if obj == nil {
		return
	}
	p.pool.Put(obj)
}

// maxSliceCap bounds the slices kept by a SlicePool so one huge command line
// does not pin its buffer forever.
const maxSliceCap = 1024

// SlicePool hands out zero-length slices with spare capacity.
type SlicePool[E any] struct {
	*Pool[[]E]
}

// NewSlicePool creates a pool of slices with the given initial capacity.
func NewSlicePool[E any](capacity int) *SlicePool[E] {
	return &SlicePool[E]{
		Pool: New(
			func() *[]E {
				s := make([]E, 0, capacity)
				return &s
			},
			func(s *[]E) {
				clear(*s)
				*s = (*s)[:0]
			},
		),
	}
}

// Put returns s unless it has grown past the retention limit.
func (p *SlicePool[E]) Put(s *[]E) {
	if s == nil || cap(*s) > maxSliceCap {
		return
	}
	p.Pool.Put(s)
}
