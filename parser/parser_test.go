package parser

import (
	"io"
	"strings"
	"testing"

	"github.com/rbarraud/lisper/lisp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOne(t *testing.T, src string) *lisp.LVal {
	t.Helper()
	v, _, err := ParseLVal([]byte(src))
	require.NoError(t, err, "source %q", src)
	require.Len(t, v, 1, "source %q", src)
	return v[0]
}

func TestParseTerms(t *testing.T) {
	tests := []struct {
		src string
		typ lisp.LValType
		out string
	}{
		{"3", lisp.LNumber, "3"},
		{"-2.5", lisp.LNumber, "-2.5"},
		{"1e3", lisp.LNumber, "1000"},
		{"#t", lisp.LBool, "#t"},
		{"#f", lisp.LBool, "#f"},
		{`"abc"`, lisp.LString, `"abc"`},
		{"foo", lisp.LSymbol, "foo"},
		{"set!", lisp.LSymbol, "set!"},
		{"null?", lisp.LSymbol, "null?"},
		{"+", lisp.LSymbol, "+"},
	}
	for _, test := range tests {
		v := parseOne(t, test.src)
		assert.Equal(t, test.typ, v.Type, "source %q", test.src)
		assert.Equal(t, test.out, v.String(), "source %q", test.src)
	}
}

func TestParseLists(t *testing.T) {
	v := parseOne(t, "(+ 1 (* 2 3))")
	require.Equal(t, lisp.LSExpr, v.Type)
	assert.Equal(t, "(+ 1 (* 2 3))", v.String())

	v = parseOne(t, "()")
	require.Equal(t, lisp.LSExpr, v.Type)
	assert.Len(t, v.Cells, 0)
}

func TestParseQuoteSugar(t *testing.T) {
	v := parseOne(t, "'x")
	require.Equal(t, lisp.LSExpr, v.Type)
	require.Len(t, v.Cells, 2)
	assert.Equal(t, lisp.QuoteForm, v.Cells[0].Str)
	assert.Equal(t, "x", v.Cells[1].Str)

	v = parseOne(t, "'(1 2)")
	assert.Equal(t, "(quote (1 2))", v.String())
}

func TestParseDottedPair(t *testing.T) {
	v := parseOne(t, "(1 . 2)")
	require.Equal(t, lisp.LPair, v.Type)
	assert.Equal(t, "(1 . 2)", v.String())

	v = parseOne(t, "(a . (b . c))")
	assert.Equal(t, "(a . (b . c))", v.String())
}

func TestParseMultipleForms(t *testing.T) {
	v, _, err := ParseLVal([]byte("(define x 1) x"))
	require.NoError(t, err)
	require.Len(t, v, 2)
	assert.Equal(t, "(define x 1)", v[0].String())
	assert.Equal(t, "x", v[1].String())
}

func TestParseComments(t *testing.T) {
	v, _, err := ParseLVal([]byte("; just a comment"))
	require.NoError(t, err)
	assert.Len(t, v, 0)

	v, _, err = ParseLVal([]byte("1 ; trailing\n2"))
	require.NoError(t, err)
	require.Len(t, v, 2)
}

func TestParseIncompleteInput(t *testing.T) {
	_, _, err := ParseLVal([]byte("(define x"))
	assert.Equal(t, io.ErrUnexpectedEOF, err)

	_, _, err = ParseLVal([]byte("(a (b c)"))
	assert.Equal(t, io.ErrUnexpectedEOF, err)
}

func TestReader(t *testing.T) {
	r := NewReader()
	v, err := r.Read("test", strings.NewReader("(+ 1 2)\n(quote a)\n"))
	require.NoError(t, err)
	require.Len(t, v, 2)
	assert.Equal(t, "(+ 1 2)", v[0].String())

	_, err = r.Read("test", strings.NewReader("(unbalanced"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "test")
}
