// SPDX-License-Identifier: MIT

// Command tangled evaluates exact rational linear algebra from the command line.
//
// Usage:
//
//	tangled -op solve -A "2 -1 -1; 3 4 -2; 3 -2 4" -b "4 11 11"
//	tangled -op det -A "1 2; 3 4"
//	tangled -op crosscheck -method cramer -v -A "..." -b "..."
//
// Operations: solve, classify, crosscheck, det, rank, inverse, adjoint.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/tangled/matrix"
	"github.com/katalvlaran/tangled/solvers"
)

var errUsage = errors.New("tangled: usage")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type config struct {
	op      string
	method  string
	a, b    string
	verify  bool
	verbose bool
}

func parseFlags(args []string, out io.Writer) (config, error) {
	var c config
	fs := flag.NewFlagSet("tangled", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&c.op, "op", "solve", "solve | classify | crosscheck | det | rank | inverse | adjoint")
	fs.StringVar(&c.method, "method", solvers.DefaultMethod.String(), "solving method for -op solve")
	fs.StringVar(&c.a, "A", "", `matrix, rows separated by ';' (e.g. "1 2; 3 4")`)
	fs.StringVar(&c.b, "b", "", `right-hand side vector (e.g. "5 6" or "(5,6)")`)
	fs.BoolVar(&c.verify, "verify", false, "check A·x == b after solving")
	fs.BoolVar(&c.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return c, err
	}
	if c.a == "" {
		return c, fmt.Errorf("%w: -A is required", errUsage)
	}

	return c, nil
}

func run(args []string, stdout io.Writer) error {
	c, err := parseFlags(args, stdout)
	if err != nil {
		return err
	}
	if c.verbose {
		for _, sub := range []string{"tangled/matrix", "tangled/solvers"} {
			if err = logging.SetLogLevel(sub, "debug"); err != nil {
				return err
			}
		}
	}

	a, err := matrix.ParseMatrix(c.a)
	if err != nil {
		return err
	}

	switch c.op {
	case "det":
		d, err := a.Determinant()
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, d)
	case "rank":
		r, err := a.Rank()
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, r)
	case "inverse", "adjoint":
		derive := a.Inverse
		if c.op == "adjoint" {
			derive = a.Adjoint
		}
		res, err := derive()
		if err != nil {
			return err
		}
		fmt.Fprint(stdout, res)
	case "solve", "classify", "crosscheck":
		return runSystem(c, a, stdout)
	default:
		return fmt.Errorf("%w: unknown -op %q", errUsage, c.op)
	}

	return nil
}

func runSystem(c config, a matrix.Matrix, stdout io.Writer) error {
	if c.b == "" {
		return fmt.Errorf("%w: -b is required for -op %s", errUsage, c.op)
	}
	b, err := matrix.ParseVector(c.b)
	if err != nil {
		return err
	}

	switch c.op {
	case "classify":
		cl, err := solvers.Classify(a, b)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, cl)
	case "crosscheck":
		res, err := solvers.CrossCheck(a, b)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%s %v\n", res.Solution, res.Solved)
	default:
		m, err := solvers.ParseMethod(c.method)
		if err != nil {
			return err
		}
		opts := []solvers.Option{solvers.WithMethod(m)}
		if c.verify {
			opts = append(opts, solvers.WithVerify())
		}
		x, err := solvers.Solve(a, b, opts...)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, x)
	}

	return nil
}
