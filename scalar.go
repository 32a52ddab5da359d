// SPDX-License-Identifier: CC-BY-NC-SA-4.0
// Copyright (c) 2025-2026 fumi-engineer

package fastvec

// Scalar broadcasts a single value across any length. It owns its
// value, so it carries no lifetime constraints.
type Scalar[T Number] struct {
	value T
}

// Const wraps a value as a broadcast operand, letting scalars appear
// on either side of Add, Sub, Mul and Div.
func Const[T Number](v T) Scalar[T] {
	return Scalar[T]{value: v}
}

// At returns the wrapped value for any index.
func (s Scalar[T]) At(int) T {
	return s.value
}

// Len returns -1: a scalar matches operands of any length.
func (s Scalar[T]) Len() int {
	return -1
}
