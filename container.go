package roster

import (
	"cmp"
	"context"
	"fmt"
	"strings"

	"github.com/zoobzio/capitan"
)

// Container is a generic additive collection: push, iterate, print.
// The zero value is an unbounded empty container.
type Container[T any] struct {
	elements []T
	capacity int // 0 means unbounded
}

// ContainerOption configures a Container.
type ContainerOption[T any] func(*Container[T])

// WithCapacity bounds the container to n elements. Once the bound is
// reached, Add returns ErrAllocation.
func WithCapacity[T any](n int) ContainerOption[T] {
	return func(c *Container[T]) {
		c.capacity = n
	}
}

// NewContainer creates a Container for type T.
func NewContainer[T any](opts ...ContainerOption[T]) *Container[T] {
	c := &Container[T]{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Add appends elements in order. On a bounded container it stops at the
// first element that would exceed the capacity and returns ErrAllocation;
// elements appended before that point stay.
func (c *Container[T]) Add(elements ...T) error {
	for _, e := range elements {
		if c.capacity > 0 && len(c.elements) >= c.capacity {
			capitan.Emit(context.Background(), ContainerExhausted,
				KeyCapacity.Field(c.capacity))
			return fmt.Errorf("container at capacity %d: %w", c.capacity, ErrAllocation)
		}
		c.elements = append(c.elements, e)
	}
	return nil
}

// Len returns the number of stored elements.
func (c *Container[T]) Len() int {
	return len(c.elements)
}

// Items returns a copy of the stored elements in insertion order.
func (c *Container[T]) Items() []T {
	items := make([]T, len(c.elements))
	copy(items, c.elements)
	return items
}

// Keep returns the elements satisfying pred, in insertion order.
func (c *Container[T]) Keep(pred func(T) bool) []T {
	var kept []T
	for _, e := range c.elements {
		if pred(e) {
			kept = append(kept, e)
		}
	}
	return kept
}

// String renders the elements space-separated.
func (c *Container[T]) String() string {
	parts := make([]string, len(c.elements))
	for i, e := range c.elements {
		parts[i] = fmt.Sprint(e)
	}
	return strings.Join(parts, " ")
}

// Max returns the larger of a and b.
func Max[T cmp.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}
