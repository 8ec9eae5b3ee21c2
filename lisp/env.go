package lisp

// LEnv is a lisp environment: a persistent chain of bindings with the most
// recent binding at the head.  A nil *LEnv is the empty environment.
//
// Bindings are append-only.  Bind prepends a new entry and shares the rest
// of the chain with the receiver, so extending a scope never mutates or
// copies the parent bindings and multiple extensions of one environment can
// coexist.  A name may appear multiple times; Get returns the innermost
// entry, which is how set! and redefinition shadow earlier bindings without
// removing them.
type LEnv struct {
	Name string
	Val  *LVal
	Next *LEnv
}

// Bind returns env extended with a binding of name to v.
func (env *LEnv) Bind(name string, v *LVal) *LEnv {
	return &LEnv{
		Name: name,
		Val:  v,
		Next: env,
	}
}

// BindAll returns env extended with positional bindings of names to vals.
// The caller is responsible for ensuring the slices have equal length.
func (env *LEnv) BindAll(names []string, vals []*LVal) *LEnv {
	for i := range names {
		env = env.Bind(names[i], vals[i])
	}
	return env
}

// Get returns the value bound to name in env.  When name is bound more than
// once the most recently added binding wins.
func (env *LEnv) Get(name string) (*LVal, bool) {
	for e := env; e != nil; e = e.Next {
		if e.Name == name {
			return e.Val, true
		}
	}
	return nil, false
}

// Len returns the total number of entries in the chain, counting shadowed
// bindings.
func (env *LEnv) Len() int {
	n := 0
	for e := env; e != nil; e = e.Next {
		n++
	}
	return n
}
