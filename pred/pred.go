// Package pred provides small predicates and combinators for building them.
//
// Example:
//
//	positiveEven := pred.And(pred.IsEven[int], func(n int) bool { return n > 0 })
//	fmt.Println(positiveEven(4)) // true
package pred

// Integer is satisfied by every built-in integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// IsEven reports whether n modulo 2 is zero. Zero and negative even values
// are even.
//
// Example:
//
//	IsEven(-4) // true
func IsEven[T Integer](n T) bool {
	return n%2 == 0
}

// IsOdd reports whether n is not even.
func IsOdd[T Integer](n T) bool {
	return n%2 != 0
}

// Not negates p.
func Not[T any](p func(T) bool) func(T) bool {
	return func(v T) bool {
		return !p(v)
	}
}

// And returns a predicate that holds when every ps holds. Evaluation stops at
// the first false result; with no predicates it always holds.
//
// Example:
//
//	small := And(IsEven[int], func(n int) bool { return n < 10 })
func And[T any](ps ...func(T) bool) func(T) bool {
	return func(v T) bool {
		for _, p := range ps {
			if !p(v) {
				return false
			}
		}
		return true
	}
}

// Or returns a predicate that holds when any of ps holds. With no predicates
// it never holds.
func Or[T any](ps ...func(T) bool) func(T) bool {
	return func(v T) bool {
		for _, p := range ps {
			if p(v) {
				return true
			}
		}
		return false
	}
}
