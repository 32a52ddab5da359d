// SPDX-License-Identifier: CC-BY-NC-SA-4.0
// Copyright (c) 2025-2026 fumi-engineer

package fastvec

import (
	"fmt"
	"strings"
)

// Vector owns a fixed-length buffer of numeric elements. The length is
// set at construction and never changes. The buffer is private and the
// API is pointer-only, so the only way to duplicate a vector's contents
// is an explicit FromSlice(v.Data()); ownership moves with Move.
type Vector[T Number] struct {
	data []T
}

// New creates a zero-filled vector of length n. Panics if n <= 0;
// a vector of length zero makes no sense.
func New[T Number](n int) *Vector[T] {
	if n <= 0 {
		panic(fmt.Sprintf("vector length must be positive, got %d", n))
	}
	return &Vector[T]{data: make([]T, n)}
}

// Full creates a vector of length n with every element set to value.
func Full[T Number](n int, value T) *Vector[T] {
	v := New[T](n)
	for i := range v.data {
		v.data[i] = value
	}
	return v
}

// FromSlice creates a vector holding a copy of data.
func FromSlice[T Number](data []T) *Vector[T] {
	v := New[T](len(data))
	copy(v.data, data)
	return v
}

// FromExpr evaluates op once into a freshly allocated vector. The
// operand must have a definite length: an expression built purely from
// scalars cannot size a vector.
func FromExpr[T Number](op Operand[T]) *Vector[T] {
	n := op.Len()
	if n < 0 {
		panic("cannot build a vector from a pure-scalar expression")
	}
	v := New[T](n)
	for i := range v.data {
		v.data[i] = op.At(i)
	}
	return v
}

// Assign evaluates op element by element into v's existing storage and
// returns v. Each element is computed exactly once. The operand's
// length must equal v's (broadcast scalars match any length).
func (v *Vector[T]) Assign(op Operand[T]) *Vector[T] {
	v.checkLen(op)
	for i := range v.data {
		v.data[i] = op.At(i)
	}
	return v
}

// AddAssign adds the evaluated operand to v in place.
func (v *Vector[T]) AddAssign(op Operand[T]) *Vector[T] {
	v.checkLen(op)
	for i := range v.data {
		v.data[i] += op.At(i)
	}
	return v
}

// DivAssign divides every element of v by s in place.
func (v *Vector[T]) DivAssign(s T) *Vector[T] {
	for i := range v.data {
		v.data[i] /= s
	}
	return v
}

// Fill sets every element of v to value.
func (v *Vector[T]) Fill(value T) {
	for i := range v.data {
		v.data[i] = value
	}
}

// Move transfers ownership of v's storage to a new vector. v is left
// empty but valid: Len reports 0 and the contents must not be relied
// on afterwards.
func (v *Vector[T]) Move() *Vector[T] {
	out := &Vector[T]{data: v.data}
	v.data = nil
	return out
}

// At returns the element at index i.
func (v *Vector[T]) At(i int) T {
	if i < 0 || i >= len(v.data) {
		panic(fmt.Sprintf("index %d out of bounds for length %d", i, len(v.data)))
	}
	return v.data[i]
}

// Set stores value at index i.
func (v *Vector[T]) Set(i int, value T) {
	if i < 0 || i >= len(v.data) {
		panic(fmt.Sprintf("index %d out of bounds for length %d", i, len(v.data)))
	}
	v.data[i] = value
}

// Len returns the vector's length.
func (v *Vector[T]) Len() int {
	return len(v.data)
}

// Data returns a copy of the underlying elements.
func (v *Vector[T]) Data() []T {
	d := make([]T, len(v.data))
	copy(d, v.data)
	return d
}

// DataPtr returns the underlying buffer (use with caution). Ranging
// over it is the mutable iteration surface; Data covers the immutable
// one.
func (v *Vector[T]) DataPtr() []T {
	return v.data
}

// Add returns the unevaluated elementwise sum of v and rhs. The
// receiver is borrowed, not copied: v must outlive the expression's
// evaluation.
func (v *Vector[T]) Add(rhs Operand[T]) Expr[T] {
	return newExpr[T](v, rhs, add[T])
}

// Sub returns the unevaluated elementwise difference of v and rhs.
func (v *Vector[T]) Sub(rhs Operand[T]) Expr[T] {
	return newExpr[T](v, rhs, sub[T])
}

// Mul returns the unevaluated elementwise product of v and rhs.
func (v *Vector[T]) Mul(rhs Operand[T]) Expr[T] {
	return newExpr[T](v, rhs, mul[T])
}

// Div returns the unevaluated elementwise quotient of v and rhs.
func (v *Vector[T]) Div(rhs Operand[T]) Expr[T] {
	return newExpr[T](v, rhs, div[T])
}

// Scale returns the unevaluated product of v and the scalar s.
func (v *Vector[T]) Scale(s T) Expr[T] {
	return newExpr[T](v, Const(s), mul[T])
}

// String returns a human-readable representation.
func (v *Vector[T]) String() string {
	parts := make([]string, len(v.data))
	for i, x := range v.data {
		parts[i] = fmt.Sprintf("%v", x)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (v *Vector[T]) checkLen(op Operand[T]) {
	if n := op.Len(); n >= 0 && n != len(v.data) {
		panic(fmt.Sprintf("length mismatch: %d vs %d", len(v.data), n))
	}
}
