package ecs

import "slices"

// idGenerator hands out monotonically increasing ids starting at 1.
// Ids are never reused for the lifetime of the generator.
type idGenerator[T ~int] struct {
	next T
}

func newIdGenerator[T ~int]() *idGenerator[T] {
	return &idGenerator[T]{next: 1}
}

func (g *idGenerator[T]) Next() T {
	id := g.next
	g.next++
	return id
}

// idOrder keeps ids in the order they were added. Ids usually arrive in
// increasing order, so remove binary searches first. A Create hook that
// registers another object can add a larger id before a smaller one; remove
// then falls back to a linear scan.
type idOrder[T ~int] []T

func (o *idOrder[T]) add(id T) {
	*o = append(*o, id)
}

func (o *idOrder[T]) remove(id T) {
	i, ok := slices.BinarySearch(*o, id)
	if !ok {
		i = slices.Index(*o, id)
		ok = i >= 0
	}
	if ok {
		*o = slices.Delete(*o, i, i+1)
	}
}

func (o idOrder[T]) clone() []T {
	return slices.Clone([]T(o))
}
