// SPDX-License-Identifier: CC-BY-NC-SA-4.0
// Copyright (c) 2025-2026 fumi-engineer

package fastvec

import "fmt"

// Operand is anything an expression can evaluate at an index: a
// borrowed *Vector leaf, a nested Expr, or a Const broadcast.
type Operand[T Number] interface {
	// At returns the operand's value at index i.
	At(i int) T
	// Len returns the operand's length, or -1 when the operand
	// matches any length (a broadcast scalar).
	Len() int
}

// Expr is one unevaluated binary node of an expression tree. It holds
// no element storage; At recomputes both sides on every call, trading
// repeated work for zero intermediate buffers. Built via the Add, Sub,
// Mul and Div methods on Vector and Expr, and immutable afterwards.
type Expr[T Number] struct {
	lhs, rhs Operand[T]
	op       func(T, T) T
	n        int
}

// newExpr binds two operands under an operator. Operand lengths are
// reconciled here, when the node is built, so a length mismatch fails
// before any evaluation starts.
func newExpr[T Number](lhs, rhs Operand[T], op func(T, T) T) Expr[T] {
	ln, rn := lhs.Len(), rhs.Len()
	n := ln
	switch {
	case ln == rn:
	case ln < 0:
		n = rn
	case rn < 0:
	default:
		panic(fmt.Sprintf("length mismatch: %d vs %d", ln, rn))
	}
	return Expr[T]{lhs: lhs, rhs: rhs, op: op, n: n}
}

// At evaluates the node at index i. Cost is O(depth) per call; repeated
// queries at the same index recompute from scratch.
func (e Expr[T]) At(i int) T {
	return e.op(e.lhs.At(i), e.rhs.At(i))
}

// Len returns the node's length, fixed when the node was built.
func (e Expr[T]) Len() int {
	return e.n
}

// Add returns the unevaluated elementwise sum of e and rhs.
func (e Expr[T]) Add(rhs Operand[T]) Expr[T] {
	return newExpr[T](e, rhs, add[T])
}

// Sub returns the unevaluated elementwise difference of e and rhs.
func (e Expr[T]) Sub(rhs Operand[T]) Expr[T] {
	return newExpr[T](e, rhs, sub[T])
}

// Mul returns the unevaluated elementwise product of e and rhs.
func (e Expr[T]) Mul(rhs Operand[T]) Expr[T] {
	return newExpr[T](e, rhs, mul[T])
}

// Div returns the unevaluated elementwise quotient of e and rhs.
func (e Expr[T]) Div(rhs Operand[T]) Expr[T] {
	return newExpr[T](e, rhs, div[T])
}

// Scale returns the unevaluated product of e and the scalar s.
func (e Expr[T]) Scale(s T) Expr[T] {
	return newExpr[T](e, Const(s), mul[T])
}
