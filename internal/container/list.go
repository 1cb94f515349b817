// Package container provides List, an insertion-ordered sequence that owns
// its elements. A List knows nothing about its element type beyond the two
// callbacks bound at construction: clone deep-copies one element and may
// fail, destroy releases one element and never fails.
package container

import (
	"fmt"
	"iter"

	"github.com/mesh-intelligence/grades/pkg/types"
)

// CloneFunc returns an independent deep copy of v.
type CloneFunc[T any] func(v T) (T, error)

// DestroyFunc releases v and everything v owns.
type DestroyFunc[T any] func(v T)

// Node is a traversal position. Positions are invalidated by any mutation
// of the List they came from.
type Node[T any] struct {
	value T
	next  *Node[T]
}

// Option configures a List at construction.
type Option func(*options)

type options struct {
	capacity int
}

// WithCapacity bounds the number of elements the List may hold. Append
// fails with types.ErrExhausted once the bound is reached. Zero or a
// negative value means unbounded.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.capacity = n
	}
}

// List is an insertion-ordered sequence of owned elements.
type List[T any] struct {
	head     *Node[T]
	tail     *Node[T]
	size     int
	capacity int
	clone    CloneFunc[T]
	destroy  DestroyFunc[T]
}

// New returns an empty List bound to clone and destroy.
func New[T any](clone CloneFunc[T], destroy DestroyFunc[T], opts ...Option) (*List[T], error) {
	if clone == nil || destroy == nil {
		return nil, fmt.Errorf("container callbacks must not be nil: %w", types.ErrInvalidArgument)
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &List[T]{
		capacity: o.capacity,
		clone:    clone,
		destroy:  destroy,
	}, nil
}

// Append inserts v as the last element and takes ownership of it. On
// failure the List is unchanged and the caller still owns v.
func (l *List[T]) Append(v T) error {
	if l == nil {
		return fmt.Errorf("append: %w", types.ErrInvalidArgument)
	}
	if l.capacity > 0 && l.size >= l.capacity {
		return fmt.Errorf("append: list full at %d elements: %w", l.capacity, types.ErrExhausted)
	}
	n := &Node[T]{value: v}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++
	return nil
}

// Begin returns the first position, or nil when the List is empty.
func (l *List[T]) Begin() *Node[T] {
	if l == nil {
		return nil
	}
	return l.head
}

// Next returns the position after n, or nil at the end of the sequence.
func (l *List[T]) Next(n *Node[T]) *Node[T] {
	if n == nil {
		return nil
	}
	return n.next
}

// Get returns the element at n. Ownership stays with the List.
func (l *List[T]) Get(n *Node[T]) T {
	if n == nil {
		var zero T
		return zero
	}
	return n.value
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.size
}

// Cap returns the capacity bound, or 0 when unbounded.
func (l *List[T]) Cap() int {
	if l == nil {
		return 0
	}
	return l.capacity
}

// All yields every element in insertion order. It is restartable; each
// call begins a fresh traversal.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.Begin(); n != nil; n = l.Next(n) {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Clone returns a new List with the same callbacks and capacity holding a
// clone of every element, in order. If any clone or append fails, every
// clone made so far is destroyed and l is left untouched.
func (l *List[T]) Clone() (*List[T], error) {
	if l == nil {
		return nil, fmt.Errorf("clone: %w", types.ErrInvalidArgument)
	}
	out := &List[T]{
		capacity: l.capacity,
		clone:    l.clone,
		destroy:  l.destroy,
	}
	i := 0
	for n := l.head; n != nil; n = n.next {
		c, err := l.clone(n.value)
		if err != nil {
			out.Destroy()
			return nil, fmt.Errorf("clone element %d: %w", i, err)
		}
		if err := out.Append(c); err != nil {
			l.destroy(c)
			out.Destroy()
			return nil, fmt.Errorf("clone element %d: %w", i, err)
		}
		i++
	}
	return out, nil
}

// Destroy releases every element in order and empties the List. It is
// safe on a nil or already destroyed List.
func (l *List[T]) Destroy() {
	if l == nil {
		return
	}
	for n := l.head; n != nil; {
		next := n.next
		l.destroy(n.value)
		var zero T
		n.value = zero
		n.next = nil
		n = next
	}
	l.head = nil
	l.tail = nil
	l.size = 0
}
