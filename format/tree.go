package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/corona/ast"
	"github.com/dhamidi/corona/lexer"
)

// TreeEncoder prints one node per line, indented by depth, with the token
// text of leaves and the position of the first token.
type TreeEncoder struct {
	w      io.Writer
	tokens []lexer.Token
}

func NewTreeEncoder(w io.Writer, tokens []lexer.Token) *TreeEncoder {
	return &TreeEncoder{w: w, tokens: tokens}
}

func (e *TreeEncoder) Encode(node ast.Node) error {
	text, err := e.MarshalText(node)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TreeEncoder) MarshalText(node ast.Node) ([]byte, error) {
	var sb strings.Builder
	e.write(&sb, node, 0)
	return []byte(sb.String()), nil
}

func (e *TreeEncoder) write(sb *strings.Builder, n ast.Node, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(heading(n))
	if t := text(n, e.tokens); t != "" {
		fmt.Fprintf(sb, " %q", t)
	}
	if row, column, ok := position(n, e.tokens); ok {
		fmt.Fprintf(sb, " @%d:%d", row, column)
	}
	sb.WriteByte('\n')
	for _, child := range ast.Children(n) {
		e.write(sb, child, depth+1)
	}
}

// SExprEncoder prints a tree on a single line: leaves as their token text,
// Null as `_` and composites as `(Kind child...)`.
type SExprEncoder struct {
	w      io.Writer
	tokens []lexer.Token
}

func NewSExprEncoder(w io.Writer, tokens []lexer.Token) *SExprEncoder {
	return &SExprEncoder{w: w, tokens: tokens}
}

func (e *SExprEncoder) Encode(node ast.Node) error {
	_, err := io.WriteString(e.w, SExpr(node, e.tokens)+"\n")
	return err
}

// SExpr renders n compactly.
func SExpr(n ast.Node, tokens []lexer.Token) string {
	var sb strings.Builder
	sexpr(&sb, n, tokens)
	return sb.String()
}

func sexpr(sb *strings.Builder, n ast.Node, tokens []lexer.Token) {
	if _, ok := n.(*ast.Null); ok {
		sb.WriteString("_")
		return
	}
	children := ast.Children(n)
	if len(children) == 0 && len(attributes(n)) == 0 {
		if t := text(n, tokens); t != "" {
			sb.WriteString(t)
			return
		}
	}
	sb.WriteString("(")
	sb.WriteString(heading(n))
	for _, child := range children {
		sb.WriteString(" ")
		sexpr(sb, child, tokens)
	}
	sb.WriteString(")")
}
