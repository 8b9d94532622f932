// SPDX-License-Identifier: MIT

package solvers

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/tangled/matrix"
)

// Method selects a solving strategy for Solve.
type Method int

const (
	// MethodGauss is Gaussian elimination with back-substitution.
	MethodGauss Method = iota
	// MethodGaussJordan is Gauss-Jordan elimination.
	MethodGaussJordan
	// MethodCramer is Cramer's rule (square, non-singular A only).
	MethodCramer
	// MethodInverse multiplies b by A⁻¹ (square, non-singular A only).
	MethodInverse
)

// Methods lists every strategy in a stable order.
var Methods = []Method{MethodGauss, MethodGaussJordan, MethodCramer, MethodInverse}

var methodNames = map[Method]string{
	MethodGauss:       "gauss",
	MethodGaussJordan: "gauss-jordan",
	MethodCramer:      "cramer",
	MethodInverse:     "inverse",
}

// String returns the canonical lower-case name, e.g. "gauss-jordan".
func (m Method) String() string {
	if s, ok := methodNames[m]; ok {
		return s
	}

	return fmt.Sprintf("Method(%d)", int(m))
}

func (m Method) valid() bool {
	_, ok := methodNames[m]

	return ok
}

// ParseMethod maps a name (case-insensitive; "_" and " " read as "-") to a Method.
// "jordan" and "gaussjordan" are accepted for MethodGaussJordan.
//
// Errors: ErrUnknownMethod.
func ParseMethod(s string) (Method, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("_", "-", " ", "-").Replace(key)
	switch key {
	case "jordan", "gaussjordan":
		return MethodGaussJordan, nil
	}
	for m, name := range methodNames {
		if name == key {
			return m, nil
		}
	}

	return 0, fmt.Errorf("ParseMethod(%q): %w", s, ErrUnknownMethod)
}

// solver returns the entry point implementing m.
func (m Method) solver() func(matrix.Matrix, matrix.Vector) (matrix.Vector, error) {
	switch m {
	case MethodGaussJordan:
		return GaussJordan
	case MethodCramer:
		return Cramer
	case MethodInverse:
		return InverseMethod
	default:
		return Gauss
	}
}
