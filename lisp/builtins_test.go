package lisp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPrimitives(t *testing.T) {
	table := DefaultPrimitives()
	for _, name := range []string{"+", "-", "*", "/", "=", "<", "eq", "cons", "car", "cdr", "list", "null?"} {
		_, ok := table[name]
		assert.True(t, ok, "missing primitive %s", name)
	}
}

func TestConsBuildsPairsAndLists(t *testing.T) {
	v := primCons([]*LVal{Number(1), EmptyList()})
	require.Equal(t, LSExpr, v.Type)
	assert.Equal(t, "(1)", v.String())

	v = primCons([]*LVal{Number(1), SExpr([]*LVal{Number(2)})})
	assert.Equal(t, "(1 2)", v.String())

	v = primCons([]*LVal{Number(1), Number(2)})
	require.Equal(t, LPair, v.Type)
	assert.Equal(t, "(1 . 2)", v.String())
}

func TestCdrCopiesCells(t *testing.T) {
	orig := SExpr([]*LVal{Number(1), Number(2), Number(3)})
	rest := primCDR([]*LVal{orig})
	require.Equal(t, LSExpr, rest.Type)
	assert.Equal(t, "(2 3)", rest.String())
	// cons cells are immutable from the language's perspective; cdr hands
	// out an independent slice so the original list cannot be aliased.
	rest.Cells[0] = Number(9)
	assert.Equal(t, "(1 2 3)", orig.String())
}

func TestDebugPrintWritesToStderr(t *testing.T) {
	var buf bytes.Buffer
	ip := New(WithStderr(&buf))
	r, _ := ip.Eval(SExpr([]*LVal{Symbol("debug-print"), Number(1), String("a")}), nil)
	require.Equal(t, LNil, r.Type)
	assert.Equal(t, `1 "a"`, strings.TrimSpace(buf.String()))
}

func TestRegisterDefaultPrimitive(t *testing.T) {
	RegisterDefaultPrimitive("always-seven", func(args []*LVal) *LVal {
		return Number(7)
	})
	defer func() { userPrimitives = nil }()

	ip := New()
	r, _ := ip.Eval(SExpr([]*LVal{Symbol("always-seven")}), nil)
	require.Equal(t, LNumber, r.Type)
	assert.Equal(t, 7.0, r.Num)
}
