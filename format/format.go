// Package format renders Corona syntax trees.
package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dhamidi/corona/ast"
	"github.com/dhamidi/corona/lexer"
)

type Encoder interface {
	Encode(node ast.Node) error
}

// NewEncoder returns the encoder registered under name: "tree", "json" or
// "sexpr".
func NewEncoder(name string, w io.Writer, tokens []lexer.Token) (Encoder, error) {
	switch name {
	case "tree", "":
		return NewTreeEncoder(w, tokens), nil
	case "json":
		return NewASTJSONEncoder(w, tokens), nil
	case "sexpr":
		return NewSExprEncoder(w, tokens), nil
	}
	return nil, fmt.Errorf("unknown format %q", name)
}

// text returns the source text of a leaf node, or "" for composites.
func text(n ast.Node, tokens []lexer.Token) string {
	if op, ok := n.(*ast.Operator); ok {
		s := tokenText(op.Op, tokens)
		if op.HasRem() {
			s += " " + tokenText(op.Rem, tokens)
		}
		return s
	}
	if i, ok := ast.LeafIndex(n); ok {
		return tokenText(i, tokens)
	}
	return ""
}

func tokenText(i int, tokens []lexer.Token) string {
	if i < 0 || i >= len(tokens) {
		return "#" + strconv.Itoa(i)
	}
	return tokens[i].Data
}

// position returns the position of the first token of n.
func position(n ast.Node, tokens []lexer.Token) (row, column int, ok bool) {
	indices := ast.TokenIndices(n)
	if len(indices) == 0 {
		return 0, 0, false
	}
	first := indices[0]
	for _, i := range indices[1:] {
		first = min(first, i)
	}
	if first < 0 || first >= len(tokens) {
		return 0, 0, false
	}
	return tokens[first].Row, tokens[first].Column, true
}

// attributes lists the non-child properties of n that change its meaning.
func attributes(n ast.Node) []string {
	var attrs []string
	flag := func(set bool, name string) {
		if set {
			attrs = append(attrs, name)
		}
	}
	switch n := n.(type) {
	case *ast.FuncExpr:
		flag(n.IsBlock, "block")
	case *ast.Comprehension:
		attrs = append(attrs, n.Type.String())
	case *ast.ComprehensionFor:
		flag(n.IsAsync, "async")
	case *ast.Yield:
		flag(n.IsFrom, "from")
	case *ast.SubscriptIndex:
		flag(n.IsSlice, "slice")
	case *ast.MainPath:
		if n.RelativeLevel > 0 {
			attrs = append(attrs, "level="+strconv.Itoa(n.RelativeLevel))
		}
	case *ast.SubPath:
		flag(n.IsImportAll, "all")
	case *ast.Decorator:
		flag(n.IsCall, "call")
	case *ast.Function:
		flag(n.IsAsync, "async")
	case *ast.ForStatement:
		flag(n.IsAsync, "async")
	case *ast.WithStatement:
		flag(n.IsAsync, "async")
	}
	return attrs
}

func heading(n ast.Node) string {
	attrs := attributes(n)
	if len(attrs) == 0 {
		return n.Kind().String()
	}
	return n.Kind().String() + ":" + strings.Join(attrs, ",")
}
