// Package solvers solves linear systems Ax = b exactly over rationals.
//
// What & Why:
//
//	Four classical strategies share one classification step and one
//	elimination engine (package matrix):
//	  - Gauss: forward elimination of [A|b] and back-substitution;
//	  - GaussJordan: forward and backward elimination, then per-row division;
//	  - Cramer: ratios of determinants;
//	  - InverseMethod: x = A⁻¹·b.
//	Because every value is exact, all four agree bit-for-bit on any square,
//	non-singular system, which CrossCheck verifies.
//
// Classification:
//
//	rank(A) != rank([A|b])              → Incompatible   (ErrIncompatible)
//	rank([A|b]) < number of unknowns    → Indeterminate  (ErrIndeterminate)
//	otherwise                           → Determined
//
//	Gauss and GaussJordan classify first and never return a partial result.
//	Cramer and InverseMethod instead require a square A with det(A) != 0 and
//	report ErrSingular otherwise.
//
// Configuration:
//
//	Solve(A, b, WithMethod(MethodCramer), WithVerify())
//
// Logging:
//
//	Debug records (classification, method choice) and CrossCheck
//	disagreement warnings go to the go-log logger "tangled/solvers".
//
// Concurrency:
//
//	All functions are pure; elimination state is per call. Solvers may be
//	called concurrently on shared matrices.
package solvers
