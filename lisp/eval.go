package lisp

import (
	"fmt"
	"io"
	"os"
)

// Interp is an evaluation context.  It carries the primitive function table
// supplied by the host and the writer used for diagnostic output.  The
// environment is not part of the context; it is threaded explicitly through
// Eval, Apply and Progn, which each return the environment that subsequent
// sibling forms must evaluate under.
type Interp struct {
	Prims  PrimTable
	Stderr io.Writer
	Reader Reader
}

// New initializes and returns a new Interp.  Without configuration the
// interpreter uses DefaultPrimitives and writes diagnostics to os.Stderr.
func New(config ...Config) *Interp {
	ip := &Interp{
		Stderr: os.Stderr,
	}
	for _, fn := range config {
		fn(ip)
	}
	if ip.Prims == nil {
		ip.Prims = DefaultPrimitives()
	}
	// debug-print writes to the interpreter's stderr so it is installed here
	// instead of the static table.
	if _, ok := ip.Prims["debug-print"]; !ok {
		ip.Prims["debug-print"] = ip.primDebugPrint
	}
	return ip
}

// Evaluate runs program as a single top-level sequence starting from the
// empty environment and returns the final form's value along with the
// accumulated environment.  On failure Evaluate returns only the error:
// bindings created by forms evaluated before the failing one are discarded
// with the rest of the environment thread.
func (ip *Interp) Evaluate(program []*LVal) (*LVal, *LEnv, error) {
	v, env := ip.Progn(program, nil)
	if v.Type == LError {
		return nil, nil, v.Err
	}
	return v, env, nil
}

// Load reads the source stream r with the interpreter's Reader and runs it
// as one program via Evaluate.
func (ip *Interp) Load(name string, r io.Reader) (*LVal, *LEnv, error) {
	if ip.Reader == nil {
		return nil, nil, fmt.Errorf("interpreter has no reader")
	}
	program, err := ip.Reader.Read(name, r)
	if err != nil {
		return nil, nil, err
	}
	return ip.Evaluate(program)
}

// Progn evaluates body in order under env and returns the last form's value.
// An empty body evaluates to nil.  Every form is forced before the next one
// runs, so an error partway through aborts the rest of the sequence, and the
// environment returned by each form is the one the next form sees.
func (ip *Interp) Progn(body []*LVal, env *LEnv) (*LVal, *LEnv) {
	v := Nil()
	for _, form := range body {
		v, env = ip.Eval(form, env)
		if v.Type == LError {
			return v, env
		}
	}
	return v, env
}

// Eval evaluates v in env and returns the result together with the
// environment for the next sibling form.  Errors are returned as LError
// values.
func (ip *Interp) Eval(v *LVal, env *LEnv) (*LVal, *LEnv) {
	switch v.Type {
	case LBool, LNumber, LString, LPair, LNil, LFun, LError:
		return v, env
	case LSymbol:
		val, ok := env.Get(v.Str)
		if !ok {
			return undefinedVariable(v.Str), env
		}
		return val, env
	case LSExpr:
		if len(v.Cells) == 0 {
			return v, env
		}
		return ip.evalSExpr(v, env)
	}
	return unknownForm(v), env
}

func (ip *Interp) evalSExpr(s *LVal, env *LEnv) (*LVal, *LEnv) {
	head := s.Cells[0]
	if head.Type == LSymbol {
		switch head.Str {
		case QuoteForm:
			return ip.evalQuote(s, env)
		case LetForm:
			return ip.evalLet(s, env)
		case CondForm:
			return ip.evalCond(s, env)
		case IfForm:
			return ip.evalIf(s, env)
		case SetForm:
			return ip.evalSet(s, env)
		case DefineForm:
			return ip.evalDefine(s, env)
		case LambdaForm:
			return ip.evalLambda(s, env)
		}
		if fn, ok := env.Get(head.Str); ok {
			return ip.Apply(fn, s.Cells[1:], env)
		}
		// An unbound head symbol names a primitive; resolving it is the
		// applier's concern.
		return ip.Apply(head, s.Cells[1:], env)
	}
	fn, env := ip.Eval(head, env)
	if fn.Type == LError {
		return fn, env
	}
	return ip.Apply(fn, s.Cells[1:], env)
}

func (ip *Interp) evalQuote(s *LVal, env *LEnv) (*LVal, *LEnv) {
	if len(s.Cells) != 2 {
		return syntaxErrorf("quote expects one form (got %d)", len(s.Cells)-1), env
	}
	return s.Cells[1], env
}

// evalLet evaluates every binding value in the enclosing environment before
// binding any of them, so bindings cannot refer to one another.  The
// extension, and anything the body defines on top of it, is discarded when
// the body returns.
func (ip *Interp) evalLet(s *LVal, env *LEnv) (*LVal, *LEnv) {
	if len(s.Cells) < 2 {
		return syntaxErrorf("let expects a binding list"), env
	}
	bindings := s.Cells[1]
	if bindings.Type != LSExpr {
		return syntaxErrorf("let bindings are not a list: %v", bindings), env
	}
	names := make([]string, 0, len(bindings.Cells))
	vals := make([]*LVal, 0, len(bindings.Cells))
	for _, b := range bindings.Cells {
		if b.Type != LSExpr || len(b.Cells) != 2 || b.Cells[0].Type != LSymbol {
			return syntaxErrorf("malformed let binding: %v", b), env
		}
		var v *LVal
		v, env = ip.Eval(b.Cells[1], env)
		if v.Type == LError {
			return v, env
		}
		names = append(names, b.Cells[0].Str)
		vals = append(vals, v)
	}
	v, _ := ip.Progn(s.Cells[2:], env.BindAll(names, vals))
	return v, env
}

func (ip *Interp) evalCond(s *LVal, env *LEnv) (*LVal, *LEnv) {
	for _, clause := range s.Cells[1:] {
		if clause.Type != LSExpr || len(clause.Cells) != 2 {
			return syntaxErrorf("malformed cond clause: %v", clause), env
		}
		test := clause.Cells[0]
		if test.Type == LSymbol && test.Str == ElseSymbol {
			return ip.Eval(clause.Cells[1], env)
		}
		var v *LVal
		v, env = ip.Eval(test, env)
		if v.Type == LError {
			return v, env
		}
		if v.Truthy() {
			return ip.Eval(clause.Cells[1], env)
		}
	}
	return Nil(), env
}

func (ip *Interp) evalIf(s *LVal, env *LEnv) (*LVal, *LEnv) {
	if len(s.Cells) != 3 && len(s.Cells) != 4 {
		return syntaxErrorf("if expects two or three forms (got %d)", len(s.Cells)-1), env
	}
	v, env := ip.Eval(s.Cells[1], env)
	if v.Type == LError {
		return v, env
	}
	if v.Truthy() {
		return ip.Eval(s.Cells[2], env)
	}
	if len(s.Cells) == 4 {
		return ip.Eval(s.Cells[3], env)
	}
	// A one-armed if taken on a falsy condition has no value to produce.
	return unspecifiedReturn(), env
}

// evalSet requires the target symbol to be bound already; set! never
// introduces bindings.  The update itself is a shadowing prepend, so the
// previous entry remains in the chain but becomes unreachable by lookup.
func (ip *Interp) evalSet(s *LVal, env *LEnv) (*LVal, *LEnv) {
	if len(s.Cells) != 3 {
		return syntaxErrorf("set! expects a symbol and a value (got %d forms)", len(s.Cells)-1), env
	}
	sym := s.Cells[1]
	if sym.Type != LSymbol {
		return syntaxErrorf("set! target is not a symbol: %v", sym), env
	}
	if _, ok := env.Get(sym.Str); !ok {
		return undefinedVariable(sym.Str), env
	}
	v, env := ip.Eval(s.Cells[2], env)
	if v.Type == LError {
		return v, env
	}
	return Nil(), env.Bind(sym.Str, v)
}

func (ip *Interp) evalDefine(s *LVal, env *LEnv) (*LVal, *LEnv) {
	if len(s.Cells) < 3 {
		return syntaxErrorf("define expects a target and a body"), env
	}
	target := s.Cells[1]
	switch target.Type {
	case LSymbol:
		if len(s.Cells) != 3 {
			return syntaxErrorf("define expects a single value form for %s", target.Str), env
		}
		v, env := ip.Eval(s.Cells[2], env)
		if v.Type == LError {
			return v, env
		}
		return v, env.Bind(target.Str, v)
	case LSExpr:
		return ip.evalDefineFun(target, s.Cells[2:], env)
	}
	return syntaxErrorf("cannot define %v", target), env
}

// evalDefineFun handles (define (name formals...) body...).  The function's
// captured environment is the chain that already contains its own binding,
// so a call to name inside body resolves through the closure without any
// global lookup.  The closure value is allocated first, bound, and then
// back-filled with the extended chain.  Only direct self reference is tied
// this way; simultaneously defined functions are not mutually recursive.
func (ip *Interp) evalDefineFun(target *LVal, body []*LVal, env *LEnv) (*LVal, *LEnv) {
	if len(target.Cells) == 0 || target.Cells[0].Type != LSymbol {
		return syntaxErrorf("malformed function definition: %v", target), env
	}
	formals, lerr := formalNames(target.Cells[1:])
	if lerr != nil {
		return lerr, env
	}
	fun := Lambda(nil, formals, body)
	env = env.Bind(target.Cells[0].Str, fun)
	fun.Env = env
	return fun, env
}

func (ip *Interp) evalLambda(s *LVal, env *LEnv) (*LVal, *LEnv) {
	if len(s.Cells) < 2 {
		return syntaxErrorf("lambda expects a parameter spec"), env
	}
	params := s.Cells[1]
	switch params.Type {
	case LSymbol:
		return VarLambda(env, params.Str, s.Cells[2:]), env
	case LSExpr:
		formals, lerr := formalNames(params.Cells)
		if lerr != nil {
			return lerr, env
		}
		return Lambda(env, formals, s.Cells[2:]), env
	}
	return syntaxErrorf("malformed lambda parameters: %v", params), env
}

func formalNames(cells []*LVal) ([]string, *LVal) {
	names := make([]string, len(cells))
	for i, c := range cells {
		if c.Type != LSymbol {
			return nil, syntaxErrorf("formal parameter is not a symbol: %v", c)
		}
		names[i] = c.Str
	}
	seen := make(map[string]bool, len(names))
	var dups []string
	for _, name := range names {
		if seen[name] {
			dups = append(dups, name)
		}
		seen[name] = true
	}
	if len(dups) != 0 {
		return nil, duplicateArgument(dups)
	}
	return names, nil
}

// Apply invokes fn with the given unevaluated argument expressions.  How and
// whether the arguments are evaluated depends on the callable: fixed-arity
// functions and primitives evaluate them eagerly left to right in the
// caller's environment, while a variadic function receives the expressions
// themselves.  An unbound symbol in call position names a primitive.
func (ip *Interp) Apply(fn *LVal, args []*LVal, env *LEnv) (*LVal, *LEnv) {
	switch fn.Type {
	case LFun:
		if fn.Variadic {
			return ip.applyVariadic(fn, args, env)
		}
		return ip.applyFixed(fn, args, env)
	case LSymbol:
		return ip.applyPrimitive(fn.Str, args, env)
	}
	return notApplicable(fn), env
}

// applyFixed evaluates arguments in the caller's environment and runs the
// body against the captured environment plus the argument bindings.  The
// callee extension never escapes: mutations inside the body are invisible
// once the call returns and the caller keeps only the result value.
func (ip *Interp) applyFixed(fn *LVal, args []*LVal, env *LEnv) (*LVal, *LEnv) {
	if len(args) != len(fn.Formals) {
		return arityMismatch(len(fn.Formals), len(args)), env
	}
	vals := make([]*LVal, len(args))
	for i, arg := range args {
		var v *LVal
		v, env = ip.Eval(arg, env)
		if v.Type == LError {
			return v, env
		}
		vals[i] = v
	}
	v, _ := ip.Progn(fn.Body, fn.Env.BindAll(fn.Formals, vals))
	return v, env
}

// applyVariadic binds the rest parameter to the literal list of call-site
// expressions without evaluating them.  The asymmetry with applyFixed is
// load-bearing: a variadic body observes the argument forms, not their
// values.
func (ip *Interp) applyVariadic(fn *LVal, args []*LVal, env *LEnv) (*LVal, *LEnv) {
	rest := SExpr(append([]*LVal(nil), args...))
	v, _ := ip.Progn(fn.Body, fn.Env.Bind(fn.Formals[0], rest))
	return v, env
}

func (ip *Interp) applyPrimitive(name string, args []*LVal, env *LEnv) (*LVal, *LEnv) {
	prim, ok := ip.Prims[name]
	if !ok {
		return undefinedPrimitive(name), env
	}
	vals := make([]*LVal, len(args))
	for i, arg := range args {
		var v *LVal
		v, env = ip.Eval(arg, env)
		if v.Type == LError {
			return v, env
		}
		vals[i] = v
	}
	return prim(vals), env
}
