// Package pool provides a fixed-capacity free list for reusable records.
package pool

// Pool hands out recycled instances and takes them back up to a fixed capacity.
// It is not safe for concurrent use; callers own it from a single goroutine.
type Pool[T any] struct {
	free     []T
	capacity int
	newFn    func() T
	allocs   int
}

// New returns an empty pool holding at most capacity free instances.
func New[T any](capacity int, newFn func() T) *Pool[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Pool[T]{
		free:     make([]T, 0, capacity),
		capacity: capacity,
		newFn:    newFn,
	}
}

// NewFilled returns a pool whose free list is already full.
func NewFilled[T any](capacity int, newFn func() T) *Pool[T] {
	p := New(capacity, newFn)
	for i := 0; i < p.capacity; i++ {
		p.free = append(p.free, newFn())
	}
	return p
}

// Acquire pops the most recently released instance, or builds a fresh one
// when the free list is empty.
func (p *Pool[T]) Acquire() T {
	n := len(p.free)
	if n == 0 {
		p.allocs++
		return p.newFn()
	}
	item := p.free[n-1]
	var zero T
	p.free[n-1] = zero
	p.free = p.free[:n-1]
	return item
}

// Release returns item to the free list. When the list is already at capacity
// the item is dropped and Release reports false.
func (p *Pool[T]) Release(item T) bool {
	if len(p.free) >= p.capacity {
		return false
	}
	p.free = append(p.free, item)
	return true
}

// Len is the number of idle instances.
func (p *Pool[T]) Len() int { return len(p.free) }

// Cap is the free list bound.
func (p *Pool[T]) Cap() int { return p.capacity }

// Allocs counts instances built because the free list was empty.
func (p *Pool[T]) Allocs() int { return p.allocs }
