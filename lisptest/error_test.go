package lisptest

import (
	"testing"
)

func TestErrors(t *testing.T) {
	tests := TestSuite{
		{"unbound symbols", TestSequence{
			{"a", "unbound variable: a"},
			{"(set! a 1)", "unbound variable: a"},
		}},
		{"undefined primitives", TestSequence{
			{"(foo 1)", "undefined primitive: foo"},
			{"(define foo (lambda (x) x))", "(lambda (x) x)"},
			{"(foo 1)", "1"},
		}},
		{"arity", TestSequence{
			{"((lambda (x y) x) 1 2 3)", "function expects 2 arguments (got 3)"},
			{"((lambda (x y) x) 1)", "function expects 2 arguments (got 1)"},
			{"((lambda () 1) 2)", "function expects 0 arguments (got 1)"},
		}},
		{"duplicate formals", TestSequence{
			{"(lambda (x x) x)", "duplicate argument names: x"},
			{"(define (f a b a b) a)", "duplicate argument names: a b"},
			{"(lambda (x y) x)", "(lambda (x y) x)"},
		}},
		{"one armed if", TestSequence{
			{"(if (eq 1 2) 5)", "if condition is false and no alternative was given"},
			{"(if (eq 1 1) 5)", "5"},
		}},
		{"not applicable", TestSequence{
			{"(1 2)", "cannot apply non-function value: 1"},
			{"(define x 1)", "1"},
			{"(x 2)", "cannot apply non-function value: 1"},
			{`("f" 2)`, `cannot apply non-function value: "f"`},
		}},
		{"malformed special forms", TestSequence{
			{"(quote)", "syntax error: quote expects one form (got 0)"},
			{"(quote 1 2)", "syntax error: quote expects one form (got 2)"},
			{"(if 1)", "syntax error: if expects two or three forms (got 1)"},
			{"(let 5 1)", "syntax error: let bindings are not a list: 5"},
			{"(let ((x)) x)", "syntax error: malformed let binding: (x)"},
			{"(cond (1 2 3))", "syntax error: malformed cond clause: (1 2 3)"},
			{"(set! 1 2)", "syntax error: set! target is not a symbol: 1"},
			{"(define 1 2)", "syntax error: cannot define 1"},
			{"(lambda)", "syntax error: lambda expects a parameter spec"},
			{"(lambda 1 2)", "syntax error: malformed lambda parameters: 1"},
		}},
		{"errors abort a sequence immediately", TestSequence{
			{"(define x 1)", "1"},
			{"(+ x (foo) (set! x 2))", "undefined primitive: foo"},
			// The failing call aborted argument evaluation before set! ran.
			{"x", "1"},
		}},
		{"primitive misuse", TestSequence{
			{"(car '())", "car: argument is not a pair or non-empty list: ()"},
			{"(+ 1 'a)", "+: argument is not a number: a"},
			{"(-)", "-: expected at least one argument"},
			{"(< 1)", "<: expected at least two arguments (got 1)"},
		}},
	}
	RunTestSuite(t, tests)
}
