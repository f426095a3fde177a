package seq

import "iter"

// View is a restartable lazy view over a source slice. It stores no elements
// of its own: each call to Iter starts a new pass over the source and runs
// every filter stage again.
//
// Example:
//
//	v := seq.Over([]int{1, 2, 3, 4, 5}).Filter(func(n int) bool { return n%2 == 0 })
//	first := seq.ToSlice(v.Iter())  // [2 4]
//	second := seq.ToSlice(v.Iter()) // [2 4]
type View[T any] struct {
	source []T
	stages []func(T) bool
}

// Over returns a view yielding every element of source in order. The slice
// is referenced, not copied.
func Over[T any](source []T) View[T] {
	return View[T]{source: source}
}

// Filter returns a new view that additionally keeps only values satisfying
// predicate. The receiver is left untouched.
func (v View[T]) Filter(predicate func(T) bool) View[T] {
	stages := make([]func(T) bool, len(v.stages), len(v.stages)+1)
	copy(stages, v.stages)
	return View[T]{source: v.source, stages: append(stages, predicate)}
}

// Iter starts a fresh pass over the view.
func (v View[T]) Iter() Iterator[T] {
	it := FromSlice(v.source)
	for _, stage := range v.stages {
		it = FilterIter(it, stage)
	}
	return it
}

// All starts a fresh pass usable in a range-over-func loop.
func (v View[T]) All() iter.Seq[T] {
	return v.Iter().All()
}
