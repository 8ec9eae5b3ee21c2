package lisp

import "io"

// Reserved head symbols.  The evaluator recognizes these structurally when
// they lead a list, before any environment lookup, so they cannot be
// shadowed by bindings.
const (
	QuoteForm  = "quote"
	IfForm     = "if"
	LetForm    = "let"
	CondForm   = "cond"
	SetForm    = "set!"
	DefineForm = "define"
	LambdaForm = "lambda"
)

// ElseSymbol marks the always-matching cond clause.
const ElseSymbol = "else"

// Reader abstracts a parser implementation so that it may be implemented in
// a separate package as an optional/swappable component.
type Reader interface {
	// Read the contents of r and return the sequence of LVals that it
	// contains.  The returned LVals should be executed as if inside a progn.
	Read(name string, r io.Reader) ([]*LVal, error)
}
