// SPDX-License-Identifier: CC-BY-NC-SA-4.0
// Copyright (c) 2025-2026 fumi-engineer

// Package fastvec implements lazy, fixed-length vector arithmetic.
//
// Arithmetic on a Vector builds an unevaluated expression tree instead
// of computing anything; the tree is forced element by element, exactly
// once, when it is assigned into a Vector. Chained operations therefore
// never allocate intermediate buffers: c.Assign(a.Add(b).Scale(2))
// walks the tree once per index and writes straight into c's storage.
//
// Vectors own their storage exclusively. There is no Clone and no
// implicit copy; ownership changes hands only through Move. Expressions
// borrow the vectors they reference, so a vector must stay alive until
// the expression built from it has been evaluated.
package fastvec

import "golang.org/x/exp/constraints"

// Number constrains the element types a Vector can hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// Binary operators applied during expression evaluation. Division keeps
// the element type's own semantics: IEEE-754 Inf/NaN for floats,
// truncation and divide-by-zero panics for integers.

func add[T Number](a, b T) T { return a + b }

func sub[T Number](a, b T) T { return a - b }

func mul[T Number](a, b T) T { return a * b }

func div[T Number](a, b T) T { return a / b }
