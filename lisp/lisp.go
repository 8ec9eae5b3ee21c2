package lisp

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// LValType is the type of an LVal
type LValType uint

// Possible LValType values
const (
	LInvalid LValType = iota
	LBool
	LNumber
	LString
	LSymbol
	LSExpr
	LPair
	LNil
	LFun
	LError
)

var lvalTypeStrings = []string{
	LInvalid: "INVALID",
	LBool:    "bool",
	LNumber:  "number",
	LString:  "string",
	LSymbol:  "symbol",
	LSExpr:   "sexpr",
	LPair:    "pair",
	LNil:     "nil",
	LFun:     "function",
	LError:   "error",
}

func (t LValType) String() string {
	if int(t) >= len(lvalTypeStrings) {
		return lvalTypeStrings[LInvalid]
	}
	return lvalTypeStrings[t]
}

// LVal is a lisp value.  One variant serves as both expression and runtime
// datum; the evaluator dispatches on Type and, for LSExpr, on the shape of
// Cells.
type LVal struct {
	Type LValType
	Bool bool
	Num  float64
	Str  string // symbol name or string text
	Err  error

	// Cells holds list elements.  A pair uses exactly two cells, head and
	// tail.
	Cells []*LVal

	// Fields used by function values.  A variadic function has a single
	// formal bound to the whole argument list.
	Env      *LEnv
	Formals  []string
	Variadic bool
	Body     []*LVal
}

// Bool returns an LVal representing the boolean b.
func Bool(b bool) *LVal {
	return &LVal{
		Type: LBool,
		Bool: b,
	}
}

// Number returns an LVal representing the number x.
func Number(x float64) *LVal {
	return &LVal{
		Type: LNumber,
		Num:  x,
	}
}

// String returns an LVal representing the string s.
func String(s string) *LVal {
	return &LVal{
		Type: LString,
		Str:  s,
	}
}

// Symbol returns an LVal representing the symbol s.
func Symbol(s string) *LVal {
	return &LVal{
		Type: LSymbol,
		Str:  s,
	}
}

// SExpr returns an LVal representing a list with the given elements.
func SExpr(cells []*LVal) *LVal {
	return &LVal{
		Type:  LSExpr,
		Cells: cells,
	}
}

// EmptyList returns an LVal representing the empty list.
func EmptyList() *LVal {
	return SExpr(nil)
}

// Pair returns an LVal representing the dotted cons of head and tail.
func Pair(head, tail *LVal) *LVal {
	return &LVal{
		Type:  LPair,
		Cells: []*LVal{head, tail},
	}
}

// Nil returns an LVal representing nil, the canonical absent value.  Nil is
// falsy but distinct from both the empty list and the false boolean.
func Nil() *LVal {
	return &LVal{
		Type: LNil,
	}
}

// Lambda returns a fixed-arity function value closing over env.
func Lambda(env *LEnv, formals []string, body []*LVal) *LVal {
	return &LVal{
		Type:    LFun,
		Env:     env,
		Formals: formals,
		Body:    body,
	}
}

// VarLambda returns a variadic function value closing over env.  The single
// formal is bound to the list of call-site argument expressions.
func VarLambda(env *LEnv, formal string, body []*LVal) *LVal {
	return &LVal{
		Type:     LFun,
		Env:      env,
		Formals:  []string{formal},
		Variadic: true,
		Body:     body,
	}
}

// Error returns an LVal representing the error corresponding to err.
func Error(err error) *LVal {
	return &LVal{
		Type: LError,
		Err:  err,
	}
}

// Errorf returns an LVal representing an error with a formatted message.
func Errorf(format string, v ...interface{}) *LVal {
	return &LVal{
		Type: LError,
		Err:  fmt.Errorf(format, v...),
	}
}

// IsEmptyList returns true if v is the empty list.
func (v *LVal) IsEmptyList() bool {
	return v.Type == LSExpr && len(v.Cells) == 0
}

// Truthy returns false when v is nil or the false boolean and true for every
// other value.  It is the single truthiness predicate used by if and cond.
func (v *LVal) Truthy() bool {
	switch v.Type {
	case LNil:
		return false
	case LBool:
		return v.Bool
	default:
		return true
	}
}

// Equal compares two values structurally.  Function values are equal only
// when they are the same value.
func Equal(a, b *LVal) bool {
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case LBool:
		return a.Bool == b.Bool
	case LNumber:
		return a.Num == b.Num
	case LString, LSymbol:
		return a.Str == b.Str
	case LNil:
		return true
	case LSExpr, LPair:
		if len(a.Cells) != len(b.Cells) {
			return false
		}
		for i := range a.Cells {
			if !Equal(a.Cells[i], b.Cells[i]) {
				return false
			}
		}
		return true
	case LFun:
		return a == b
	case LError:
		return a.Err == b.Err
	}
	return false
}

func (v *LVal) String() string {
	switch v.Type {
	case LBool:
		if v.Bool {
			return "#t"
		}
		return "#f"
	case LNumber:
		return strconv.FormatFloat(v.Num, 'g', -1, 64)
	case LString:
		return fmt.Sprintf("%q", v.Str)
	case LSymbol:
		return v.Str
	case LSExpr:
		return exprString(v, "(", ")")
	case LPair:
		return fmt.Sprintf("(%v . %v)", v.Cells[0], v.Cells[1])
	case LNil:
		return "nil"
	case LFun:
		return fmt.Sprintf("(lambda %s%s)", formalsString(v), bodyString(v))
	case LError:
		return v.Err.Error()
	default:
		return fmt.Sprintf("%#v", v)
	}
}

func formalsString(v *LVal) string {
	if v.Variadic {
		return v.Formals[0]
	}
	return "(" + strings.Join(v.Formals, " ") + ")"
}

func bodyString(v *LVal) string {
	var buf bytes.Buffer
	for _, form := range v.Body {
		buf.WriteString(" ")
		buf.WriteString(form.String())
	}
	return buf.String()
}

func exprString(v *LVal, left string, right string) string {
	if len(v.Cells) == 0 {
		return left + right
	}
	var buf bytes.Buffer
	buf.WriteString(left)
	for i, c := range v.Cells {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(c.String())
	}
	buf.WriteString(right)
	return buf.String()
}
