/*
Package parser provides a lisp parser.

	expr   := '(' <expr>* ')' | '(' <expr> '.' <expr> ')' | <number> | <bool> | <string> | <symbol> | ' <expr>
	number := /[+-]?[0-9]+/ <fraction>? <exponent>?
	fraction := '.' /[0-9]+/
	exponent := e /[0-9]+/
	bool   := '#t' | '#f'
	string := '"' <strcontent> '"'
	strcontent := /[^"]+/ | '\' '"'
	symbol := /[^[:space:]]+/
*/
package parser

import (
	"fmt"
	"io"
	"strconv"

	parsec "github.com/prataprc/goparsec"
	"github.com/rbarraud/lisper/lisp"
)

const (
	nodeInvalid nodeType = iota
	nodeTerm
	nodeSExpr
	nodePair
	nodeQExpr
)

var nodeTypeStrings = []string{
	nodeInvalid: "INVALID",
	nodeTerm:    "TERM",
	nodeSExpr:   "SEXPR",
	nodePair:    "PAIR",
	nodeQExpr:   "QEXPR",
}

// ParseLVal parses LVal values from text and returns them.  The number of
// bytes read is returned along with any error that was encountered in
// parsing.  Trailing input that matches no expression, including an
// unterminated list, is reported as io.ErrUnexpectedEOF so interactive
// callers can buffer continuation lines.
func ParseLVal(text []byte) ([]*lisp.LVal, int, error) {
	var v []*lisp.LVal
	s := parsec.NewScanner(text)
	parser := newParsecParser()
	root, s := parser(s)
	for root != nil {
		lval := getLVal(root)
		if lval != nil {
			v = append(v, lval)
		}
		root, s = parser(s)
	}
	_, s = s.SkipWS()
	if !s.Endof() {
		return v, s.GetCursor(), io.ErrUnexpectedEOF
	}
	return v, s.GetCursor(), nil
}

// Reader implements lisp.Reader on top of ParseLVal.
type Reader struct{}

// NewReader returns a Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read implements lisp.Reader.
func (*Reader) Read(name string, r io.Reader) ([]*lisp.LVal, error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	v, _, err := ParseLVal(text)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", name, err)
	}
	return v, nil
}

func newParsecParser() parsec.Parser {
	openP := parsec.Atom("(", "OPENP")
	closeP := parsec.Atom(")", "CLOSEP")
	q := parsec.Atom("'", "QUOTE")
	dot := parsec.Atom(".", "DOT")
	comment := parsec.Token(`;([^\n]*[^\s])?`, "COMMENT")
	boolean := parsec.Token(`#[tf]`, "BOOL")
	decimal := parsec.Token(`[+-]?[0-9]+([.][0-9]+)?([eE][+-]?[0-9]+)?`, "DECIMAL")
	symbol := parsec.Token(`(?:\pL|[_+\-*/\=<>!&~%?])(?:\pL|[0-9]|[_+\-*/\=<>!&~%?])*`, "SYMBOL")
	term := parsec.OrdChoice(astNode(nodeTerm), // terminal token
		parsec.String(),
		boolean,
		decimal,
		symbol, // symbol comes last because it swallows anything
	)
	var expr parsec.Parser // forward declaration allows for recursive parsing
	exprList := parsec.Kleene(nil, &expr)
	pexpr := parsec.And(astNode(nodePair), openP, &expr, dot, &expr, closeP)
	sexpr := parsec.And(astNode(nodeSExpr), openP, exprList, closeP)
	qexpr := parsec.And(astNode(nodeQExpr), q, &expr)
	expr = parsec.OrdChoice(nil, comment, term, pexpr, sexpr, qexpr)
	return expr
}

type nodeType uint

func (t nodeType) String() string {
	if int(t) >= len(nodeTypeStrings) {
		return "INVALID"
	}
	return nodeTypeStrings[t]
}

func newAST(typ nodeType, nodes []parsec.ParsecNode) parsec.ParsecNode {
	nodes = cleanParsecNodeList(nodes)
	switch typ {
	case nodeTerm:
		var lval *lisp.LVal
		switch term := nodes[0].(type) {
		case string:
			lval = lisp.String(unquoteString(term))
		case *parsec.Terminal:
			switch term.Name {
			case "BOOL":
				lval = lisp.Bool(term.Value == "#t")
			case "DECIMAL":
				f, err := strconv.ParseFloat(term.Value, 64)
				if err != nil {
					lval = lisp.Errorf("bad number: %v (%s)", err, term.Value)
				} else {
					lval = lisp.Number(f)
				}
			case "SYMBOL":
				lval = lisp.Symbol(term.Value)
			}
		}
		return lval
	case nodeSExpr:
		lval := lisp.SExpr(nil)
		// We don't want terminal parsec nodes '(' and ')'
		for _, c := range nodes {
			switch c.(type) {
			case *lisp.LVal:
				lval.Cells = append(lval.Cells, c.(*lisp.LVal))
			}
		}
		return lval
	case nodePair:
		// The non-terminal nodes are the head and tail; the parsec terminals
		// '(' '.' ')' are skipped.
		var vals []*lisp.LVal
		for _, c := range nodes {
			if lv, ok := c.(*lisp.LVal); ok {
				vals = append(vals, lv)
			}
		}
		if len(vals) != 2 {
			return lisp.Errorf("malformed dotted pair")
		}
		return lisp.Pair(vals[0], vals[1])
	case nodeQExpr:
		// We don't want the terminal parsec node "'"
		c := nodes[1].(*lisp.LVal)
		return lisp.SExpr([]*lisp.LVal{lisp.Symbol(lisp.QuoteForm), c})
	default:
		panic(fmt.Sprintf("unknown nodeType: %s (%d)", typ, typ))
	}
}

func cleanParsecNodeList(lis []parsec.ParsecNode) []parsec.ParsecNode {
	var nodes []parsec.ParsecNode
	for _, n := range lis {
		switch node := n.(type) {
		case []parsec.ParsecNode:
			nodes = append(nodes, cleanParsecNodeList(node)...)
		default:
			nodes = append(nodes, node)
		}
	}
	return nodes
}

func astNode(t nodeType) parsec.Nodify {
	return func(nodes []parsec.ParsecNode) parsec.ParsecNode {
		return newAST(t, nodes)
	}
}

func getLVal(root parsec.ParsecNode) *lisp.LVal {
	nodes := cleanParsecNodeList([]parsec.ParsecNode{root})
	if len(nodes) == 0 {
		// we can be here if there is only whitespace on a line
		return nil
	}
	lval, ok := nodes[0].(*lisp.LVal)
	if !ok {
		// we can be here if there is only a comment on a line
		return nil
	}
	return lval
}

func unquoteString(s string) string {
	return s[1 : len(s)-1]
}
