// Package matrix provides immutable rational vectors and dense matrices and
// the exact elimination engine built on them.
//
// The matrix package provides:
//
//   - Vector: component-wise algebra, dot product, exact squared length,
//     murmur3 hashing and "(a,b,c)" rendering.
//   - Matrix: construction (tables, flat square lists, identity, diagonal,
//     zeros, text), row/column access and replacement, slicing, minors,
//     transpose, concatenation, element-wise algebra and products.
//   - The elimination engine: ForwardEliminate (with the determinant sign),
//     BackwardEliminate, StaggerRows and IsStaggered.
//   - Derived quantities: Determinant, Adjoint, Inverse and Rank.
//
// All values are immutable and every call keeps its elimination state to
// itself, so vectors and matrices may be shared between goroutines freely.
// Arithmetic is exact; the only numeric failure mode is int64 overflow,
// reported as ErrOverflow.
//
// See the examples in this package and in solvers for usage patterns.
package matrix
