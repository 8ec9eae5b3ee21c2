// Package lisptest provides a source-level harness for interpreter tests.
// Suites are tables of expression/result string pairs which are parsed and
// evaluated against a fresh environment per sequence.
package lisptest

import (
	"testing"

	"github.com/rbarraud/lisper/lisp"
	"github.com/rbarraud/lisper/parser"
)

// TestSequence is a sequence of lisp expressions which are evaluated
// sequentially by a single interpreter, threading the environment so that
// defines in earlier expressions are visible to later ones.
type TestSequence []struct {
	Expr   string // a lisp expression
	Result string // the evaluated result, as printed
}

// TestSuite is a set of named TestSequences
type TestSuite []struct {
	Name string
	TestSequence
}

// RunTestSuite runs each TestSequence in tests on isolated environments.
func RunTestSuite(t *testing.T, tests TestSuite) {
	for i, test := range tests {
		ip := lisp.New()
		var env *lisp.LEnv
		for j, expr := range test.TestSequence {
			v, _, err := parser.ParseLVal([]byte(expr.Expr))
			if err != nil {
				t.Errorf("test %d %q: expr %d: parse error: %v", i, test.Name, j, err)
				continue
			}
			if len(v) == 0 {
				t.Errorf("test %d %q: expr %d: no expression parsed", i, test.Name, j)
				continue
			}
			if len(v) != 1 {
				t.Errorf("test %d %q: expr %d: more than one expression parsed (%d)", i, test.Name, j, len(v))
				continue
			}
			r, next := ip.Eval(v[0], env)
			if r.Type != lisp.LError {
				env = next
			}
			result := r.String()
			if result != expr.Result {
				t.Errorf("test %d %q: expr %d: expected result %s (got %s)", i, test.Name, j, expr.Result, result)
			}
		}
	}
}
