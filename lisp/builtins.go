package lisp

import (
	"fmt"
)

// Primitive is a host-implemented pure function over evaluated argument
// values.  A primitive reports misuse by returning an LError value; the
// applier propagates such results like any other evaluation error.
type Primitive func(args []*LVal) *LVal

// PrimTable maps primitive names to their implementations.  The evaluator
// never inspects an implementation, only its presence and its result.
type PrimTable map[string]Primitive

type langPrimitive struct {
	name string
	fun  Primitive
}

var userPrimitives []*langPrimitive
var langPrimitives = []*langPrimitive{
	{"+", primAdd},
	{"-", primSub},
	{"*", primMul},
	{"/", primDiv},
	{"=", compareChain("=", func(a, b float64) bool { return a == b })},
	{"<", compareChain("<", func(a, b float64) bool { return a < b })},
	{"<=", compareChain("<=", func(a, b float64) bool { return a <= b })},
	{">", compareChain(">", func(a, b float64) bool { return a > b })},
	{">=", compareChain(">=", func(a, b float64) bool { return a >= b })},
	{"eq", primEqual},
	{"equal?", primEqual},
	{"not", primNot},
	{"cons", primCons},
	{"car", primCAR},
	{"cdr", primCDR},
	{"list", primList},
	{"length", primLength},
	{"reverse", primReverse},
	{"null?", primNullP},
	{"pair?", primPairP},
	{"number?", typePredicate(LNumber)},
	{"symbol?", typePredicate(LSymbol)},
	{"string?", typePredicate(LString)},
}

// RegisterDefaultPrimitive adds the given function to the table returned by
// DefaultPrimitives.
func RegisterDefaultPrimitive(name string, fn Primitive) {
	userPrimitives = append(userPrimitives, &langPrimitive{name, fn})
}

// DefaultPrimitives returns the default primitive table used by interpreters
// constructed without WithPrimitives.
func DefaultPrimitives() PrimTable {
	table := make(PrimTable, len(langPrimitives)+len(userPrimitives))
	for _, p := range langPrimitives {
		table[p.name] = p.fun
	}
	for _, p := range userPrimitives {
		table[p.name] = p.fun
	}
	return table
}

func checkArity(name string, args []*LVal, n int) *LVal {
	if len(args) != n {
		return Errorf("%s: expected %d arguments (got %d)", name, n, len(args))
	}
	return nil
}

func numArgs(name string, args []*LVal) ([]float64, *LVal) {
	xs := make([]float64, len(args))
	for i, a := range args {
		if a.Type != LNumber {
			return nil, Errorf("%s: argument is not a number: %v", name, a)
		}
		xs[i] = a.Num
	}
	return xs, nil
}

func primAdd(args []*LVal) *LVal {
	xs, lerr := numArgs("+", args)
	if lerr != nil {
		return lerr
	}
	acc := 0.0
	for _, x := range xs {
		acc += x
	}
	return Number(acc)
}

func primMul(args []*LVal) *LVal {
	xs, lerr := numArgs("*", args)
	if lerr != nil {
		return lerr
	}
	acc := 1.0
	for _, x := range xs {
		acc *= x
	}
	return Number(acc)
}

func primSub(args []*LVal) *LVal {
	xs, lerr := numArgs("-", args)
	if lerr != nil {
		return lerr
	}
	switch len(xs) {
	case 0:
		return Errorf("-: expected at least one argument")
	case 1:
		return Number(-xs[0])
	}
	acc := xs[0]
	for _, x := range xs[1:] {
		acc -= x
	}
	return Number(acc)
}

func primDiv(args []*LVal) *LVal {
	xs, lerr := numArgs("/", args)
	if lerr != nil {
		return lerr
	}
	switch len(xs) {
	case 0:
		return Errorf("/: expected at least one argument")
	case 1:
		return Number(1 / xs[0])
	}
	acc := xs[0]
	for _, x := range xs[1:] {
		acc /= x
	}
	return Number(acc)
}

func compareChain(name string, cmp func(a, b float64) bool) Primitive {
	return func(args []*LVal) *LVal {
		xs, lerr := numArgs(name, args)
		if lerr != nil {
			return lerr
		}
		if len(xs) < 2 {
			return Errorf("%s: expected at least two arguments (got %d)", name, len(xs))
		}
		for i := 1; i < len(xs); i++ {
			if !cmp(xs[i-1], xs[i]) {
				return Bool(false)
			}
		}
		return Bool(true)
	}
}

func primEqual(args []*LVal) *LVal {
	if lerr := checkArity("equal?", args, 2); lerr != nil {
		return lerr
	}
	return Bool(Equal(args[0], args[1]))
}

func primNot(args []*LVal) *LVal {
	if lerr := checkArity("not", args, 1); lerr != nil {
		return lerr
	}
	return Bool(!args[0].Truthy())
}

// primCons prepends onto a list when the tail is one and builds a dotted
// pair otherwise.
func primCons(args []*LVal) *LVal {
	if lerr := checkArity("cons", args, 2); lerr != nil {
		return lerr
	}
	head, tail := args[0], args[1]
	if tail.Type == LSExpr {
		cells := make([]*LVal, 0, len(tail.Cells)+1)
		cells = append(cells, head)
		cells = append(cells, tail.Cells...)
		return SExpr(cells)
	}
	return Pair(head, tail)
}

func primCAR(args []*LVal) *LVal {
	if lerr := checkArity("car", args, 1); lerr != nil {
		return lerr
	}
	v := args[0]
	switch {
	case v.Type == LPair:
		return v.Cells[0]
	case v.Type == LSExpr && len(v.Cells) > 0:
		return v.Cells[0]
	}
	return Errorf("car: argument is not a pair or non-empty list: %v", v)
}

func primCDR(args []*LVal) *LVal {
	if lerr := checkArity("cdr", args, 1); lerr != nil {
		return lerr
	}
	v := args[0]
	switch {
	case v.Type == LPair:
		return v.Cells[1]
	case v.Type == LSExpr && len(v.Cells) > 0:
		return SExpr(append([]*LVal(nil), v.Cells[1:]...))
	}
	return Errorf("cdr: argument is not a pair or non-empty list: %v", v)
}

func primList(args []*LVal) *LVal {
	return SExpr(append([]*LVal(nil), args...))
}

func primLength(args []*LVal) *LVal {
	if lerr := checkArity("length", args, 1); lerr != nil {
		return lerr
	}
	if args[0].Type != LSExpr {
		return Errorf("length: argument is not a list: %v", args[0])
	}
	return Number(float64(len(args[0].Cells)))
}

func primReverse(args []*LVal) *LVal {
	if lerr := checkArity("reverse", args, 1); lerr != nil {
		return lerr
	}
	if args[0].Type != LSExpr {
		return Errorf("reverse: argument is not a list: %v", args[0])
	}
	cells := args[0].Cells
	rev := make([]*LVal, len(cells))
	for i, c := range cells {
		rev[len(cells)-1-i] = c
	}
	return SExpr(rev)
}

func primNullP(args []*LVal) *LVal {
	if lerr := checkArity("null?", args, 1); lerr != nil {
		return lerr
	}
	return Bool(args[0].IsEmptyList())
}

func primPairP(args []*LVal) *LVal {
	if lerr := checkArity("pair?", args, 1); lerr != nil {
		return lerr
	}
	v := args[0]
	return Bool(v.Type == LPair || (v.Type == LSExpr && len(v.Cells) > 0))
}

func typePredicate(t LValType) Primitive {
	name := t.String() + "?"
	return func(args []*LVal) *LVal {
		if lerr := checkArity(name, args, 1); lerr != nil {
			return lerr
		}
		return Bool(args[0].Type == t)
	}
}

func (ip *Interp) primDebugPrint(args []*LVal) *LVal {
	iargs := make([]interface{}, len(args))
	for i, arg := range args {
		iargs[i] = arg
	}
	fmt.Fprintln(ip.Stderr, iargs...)
	return Nil()
}
