package lisp

import (
	"fmt"
	"strings"
)

// Evaluation failures are first class: the evaluator wraps one of the typed
// conditions below in an LError value and every evaluation routine
// propagates LError results unchanged to its caller.  The types implement
// error so callers outside the core can inspect them with errors.As.

// UndefinedVariableError reports a symbol lookup miss.
type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("unbound variable: %s", e.Name)
}

// UndefinedPrimitiveError reports application of a symbol that names neither
// a bound value nor a primitive function.
type UndefinedPrimitiveError struct {
	Name string
}

func (e *UndefinedPrimitiveError) Error() string {
	return fmt.Sprintf("undefined primitive: %s", e.Name)
}

// SyntaxError reports a special form whose shape is malformed.
type SyntaxError struct {
	Desc string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: %s", e.Desc)
}

// DuplicateArgumentError reports repeated formal parameter names.
type DuplicateArgumentError struct {
	Names []string
}

func (e *DuplicateArgumentError) Error() string {
	return fmt.Sprintf("duplicate argument names: %s", strings.Join(e.Names, " "))
}

// ArityMismatchError reports a fixed-arity function called with the wrong
// number of arguments.
type ArityMismatchError struct {
	Expected int
	Got      int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("function expects %d arguments (got %d)", e.Expected, e.Got)
}

// UnspecifiedReturnError reports a one-armed if whose condition was falsy.
// The form has no value to produce and no implicit nil fallback.
type UnspecifiedReturnError struct{}

func (e *UnspecifiedReturnError) Error() string {
	return "if condition is false and no alternative was given"
}

// NotApplicableError reports an attempt to call a non-function value.
type NotApplicableError struct {
	Val string
}

func (e *NotApplicableError) Error() string {
	return fmt.Sprintf("cannot apply non-function value: %s", e.Val)
}

// UnknownFormError reports an expression matching no dispatch rule.
type UnknownFormError struct {
	Expr string
}

func (e *UnknownFormError) Error() string {
	return fmt.Sprintf("unrecognized expression form: %s", e.Expr)
}

func undefinedVariable(name string) *LVal {
	return Error(&UndefinedVariableError{Name: name})
}

func undefinedPrimitive(name string) *LVal {
	return Error(&UndefinedPrimitiveError{Name: name})
}

func syntaxErrorf(format string, v ...interface{}) *LVal {
	return Error(&SyntaxError{Desc: fmt.Sprintf(format, v...)})
}

func duplicateArgument(names []string) *LVal {
	return Error(&DuplicateArgumentError{Names: names})
}

func arityMismatch(expected, got int) *LVal {
	return Error(&ArityMismatchError{Expected: expected, Got: got})
}

func unspecifiedReturn() *LVal {
	return Error(&UnspecifiedReturnError{})
}

func notApplicable(v *LVal) *LVal {
	return Error(&NotApplicableError{Val: v.String()})
}

func unknownForm(v *LVal) *LVal {
	return Error(&UnknownFormError{Expr: v.String()})
}
