package lisptest

import (
	"testing"
)

func TestScope(t *testing.T) {
	tests := TestSuite{
		{"define", TestSequence{
			{"(define x 1)", "1"},
			{"x", "1"},
			{"(define y (+ x 1))", "2"},
			{"y", "2"},
		}},
		{"redefinition shadows", TestSequence{
			{"(define x 1)", "1"},
			{"(define x 2)", "2"},
			{"x", "2"},
		}},
		{"set!", TestSequence{
			{"(define x 1)", "1"},
			{"(set! x 2)", "nil"},
			{"x", "2"},
			{"(set! y 1)", "unbound variable: y"},
			{"x", "2"},
		}},
		{"let", TestSequence{
			{"(define x 1)", "1"},
			{"(let ((x 2) (y 3)) (+ x y))", "5"},
			{"x", "1"},
			// Binding values are evaluated before any binding takes
			// effect, so later bindings do not see earlier ones.
			{"(let ((x 10) (y x)) y)", "1"},
			{"(let () 7)", "7"},
		}},
		{"let body mutations are scoped", TestSequence{
			{"(define x 1)", "1"},
			{"(let ((x 2)) (define x 3) x)", "3"},
			{"x", "1"},
			{"(let ((y 2)) (set! x 9) x)", "9"},
			{"x", "1"},
		}},
		{"closures capture definition scope", TestSequence{
			{"(define x 1)", "1"},
			{"(define f (lambda () x))", "(lambda () x)"},
			{"(define x 2)", "2"},
			// f sees the binding captured when it was created.
			{"(f)", "1"},
			{"x", "2"},
		}},
		{"lexical not dynamic scoping", TestSequence{
			{"(define f (lambda () y))", "(lambda () y)"},
			{"(let ((y 1)) (f))", "unbound variable: y"},
		}},
		{"callee mutations stay in the callee", TestSequence{
			{"(define x 1)", "1"},
			{"(define (f) (define x 2) x)", "(lambda () (define x 2) x)"},
			{"(f)", "2"},
			{"x", "1"},
		}},
		{"arguments evaluate in the caller scope", TestSequence{
			{"(define x 10)", "10"},
			{"(define (f y) (+ y 1))", "(lambda (y) (+ y 1))"},
			{"(f (+ x 1))", "12"},
		}},
		{"named function recursion", TestSequence{
			{"(define (count-down n) (if (= n 0) 'done (count-down (- n 1))))",
				"(lambda (n) (if (= n 0) (quote done) (count-down (- n 1))))"},
			{"(count-down 3)", "done"},
			{"(define (fact n) (if (= n 0) 1 (* n (fact (- n 1)))))",
				"(lambda (n) (if (= n 0) 1 (* n (fact (- n 1)))))"},
			{"(fact 5)", "120"},
		}},
		{"higher order functions", TestSequence{
			{"(define (compose f g) (lambda (x) (f (g x))))",
				"(lambda (f g) (lambda (x) (f (g x))))"},
			{"(define (inc n) (+ n 1))", "(lambda (n) (+ n 1))"},
			{"(define (double n) (* n 2))", "(lambda (n) (* n 2))"},
			{"((compose inc double) 5)", "11"},
		}},
		{"end to end square", TestSequence{
			{"(define square (lambda (x) (* x x)))", "(lambda (x) (* x x))"},
			{"(square 5)", "25"},
		}},
	}
	RunTestSuite(t, tests)
}
