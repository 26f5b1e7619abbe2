// Package rope implements the balanced, monoid-augmented B-tree that
// backs the text buffer (spec §4.1, grounded on
// _examples/original_source/tree.hpp).
package rope

// StaticVector is a fixed-capacity vector used as the storage for tree
// leaves and internal-node child lists. It mirrors tree.hpp's
// StaticVector<T,N>: Go generics have no way to parameterize a struct
// over a compile-time array length the way the C++ template does, so
// capacity is a constructor argument instead of a type parameter, and
// the backing array is an ordinary slice allocated once at that
// capacity.
type StaticVector[T any] struct {
	data []T
	cap  int
}

// NewStaticVector returns an empty vector with room for cap elements.
func NewStaticVector[T any](cap int) StaticVector[T] {
	return StaticVector[T]{data: make([]T, 0, cap), cap: cap}
}

// Len returns the number of elements currently stored.
func (v *StaticVector[T]) Len() int {
	return len(v.data)
}

// Full reports whether the vector has reached its capacity.
func (v *StaticVector[T]) Full() bool {
	return len(v.data) == v.cap
}

// Get returns the element at index.
func (v *StaticVector[T]) Get(index int) T {
	return v.data[index]
}

// Set overwrites the element at index.
func (v *StaticVector[T]) Set(index int, t T) {
	v.data[index] = t
}

// Last returns the final element.
func (v *StaticVector[T]) Last() T {
	return v.data[len(v.data)-1]
}

// Insert inserts t at index, shifting everything at and after index
// one slot to the right. Panics if the vector is already full.
func (v *StaticVector[T]) Insert(index int, t T) {
	if v.Full() {
		panic("rope: StaticVector insert on full vector")
	}
	v.data = append(v.data, t)
	copy(v.data[index+1:], v.data[index:len(v.data)-1])
	v.data[index] = t
}

// Append inserts t at the end. Panics if the vector is already full.
func (v *StaticVector[T]) Append(t T) {
	if v.Full() {
		panic("rope: StaticVector append on full vector")
	}
	v.data = append(v.data, t)
}

// Remove removes the element at index, shifting later elements left.
func (v *StaticVector[T]) Remove(index int) {
	v.data = append(v.data[:index], v.data[index+1:]...)
}

// RemoveLast removes the final element.
func (v *StaticVector[T]) RemoveLast() {
	v.data = v.data[:len(v.data)-1]
}

// Split moves the upper half of this vector's elements into dst, which
// must be empty. Mirrors StaticVector::split.
func (v *StaticVector[T]) Split(dst *StaticVector[T]) {
	if dst.Len() != 0 {
		panic("rope: StaticVector split into non-empty vector")
	}
	n := len(v.data)
	half := n / 2
	dst.data = append(dst.data, v.data[half:]...)
	v.data = v.data[:half]
}

// Merge moves all of src's elements onto the end of this vector. src is
// left empty. Mirrors StaticVector::merge.
func (v *StaticVector[T]) Merge(src *StaticVector[T]) {
	if v.Len()+src.Len() > v.cap {
		panic("rope: StaticVector merge would overflow capacity")
	}
	v.data = append(v.data, src.data...)
	src.data = src.data[:0]
}

// Slice exposes the current elements for read-only iteration.
func (v *StaticVector[T]) Slice() []T {
	return v.data
}
