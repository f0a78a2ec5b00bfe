package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/corona/ast"
	"github.com/dhamidi/corona/lexer"
)

type ASTJSONEncoder struct {
	w      io.Writer
	tokens []lexer.Token
}

func NewASTJSONEncoder(w io.Writer, tokens []lexer.Token) *ASTJSONEncoder {
	return &ASTJSONEncoder{w: w, tokens: tokens}
}

func (e *ASTJSONEncoder) Encode(node ast.Node) error {
	text, err := e.MarshalText(node)
	if err != nil {
		return err
	}
	text = append(text, '\n')
	_, err = e.w.Write(text)
	return err
}

func (e *ASTJSONEncoder) MarshalText(node ast.Node) ([]byte, error) {
	return json.MarshalIndent(e.nodeToJSON(node), "", "  ")
}

type astJSONNode struct {
	Kind       string         `json:"kind"`
	Position   *astJSONPos    `json:"position,omitempty"`
	Token      string         `json:"token,omitempty"`
	Attributes []string       `json:"attributes,omitempty"`
	Children   []*astJSONNode `json:"children,omitempty"`
}

type astJSONPos struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

func (e *ASTJSONEncoder) nodeToJSON(n ast.Node) *astJSONNode {
	jn := &astJSONNode{
		Kind:       n.Kind().String(),
		Token:      text(n, e.tokens),
		Attributes: attributes(n),
	}

	if row, column, ok := position(n, e.tokens); ok {
		jn.Position = &astJSONPos{Line: row, Column: column}
	}

	children := ast.Children(n)
	if len(children) > 0 {
		jn.Children = make([]*astJSONNode, len(children))
		for i, child := range children {
			jn.Children[i] = e.nodeToJSON(child)
		}
	}

	return jn
}
