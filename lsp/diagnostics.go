package lsp

import (
	"errors"

	"github.com/dhamidi/corona/ast"
	"github.com/dhamidi/corona/lexer"
	"github.com/dhamidi/corona/parser"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Diagnostics converts a parse result into LSP diagnostics. A nil error
// yields an empty, non-nil slice so that publishing it clears the client's
// list.
func Diagnostics(err error, tokens []lexer.Token) []protocol.Diagnostic {
	if err == nil {
		return []protocol.Diagnostic{}
	}

	row, column, message := 1, 1, err.Error()
	var syntaxErr *parser.SyntaxError
	var lexErr *lexer.Error
	switch {
	case errors.As(err, &syntaxErr):
		row, column, message = syntaxErr.Row, syntaxErr.Column, syntaxErr.Message
	case errors.As(err, &lexErr):
		row, column, message = lexErr.Row, lexErr.Column, lexErr.Message
	}

	start := toPosition(row, column)
	end := start
	end.Character += protocol.UInteger(tokenWidth(tokens, row, column))

	return []protocol.Diagnostic{{
		Range:    protocol.Range{Start: start, End: end},
		Severity: ptrTo(protocol.DiagnosticSeverityError),
		Source:   ptrTo(lsName),
		Message:  message,
	}}
}

// toPosition converts a 1-based row and column to an LSP position.
func toPosition(row, column int) protocol.Position {
	return protocol.Position{
		Line:      protocol.UInteger(max(row-1, 0)),
		Character: protocol.UInteger(max(column-1, 0)),
	}
}

// tokenWidth is the length of the token starting at row and column, or 1.
func tokenWidth(tokens []lexer.Token, row, column int) int {
	for _, tok := range tokens {
		if tok.Row == row && tok.Column == column && tok.Data != "" && tok.Kind != lexer.TokenNewline {
			return len(tok.Data)
		}
	}
	return 1
}

// nodeRange spans the first to the last token of n.
func nodeRange(n ast.Node, tokens []lexer.Token) (protocol.Range, bool) {
	indices := ast.TokenIndices(n)
	if len(indices) == 0 {
		return protocol.Range{}, false
	}
	first, last := indices[0], indices[0]
	for _, i := range indices[1:] {
		first, last = min(first, i), max(last, i)
	}
	if first < 0 || last >= len(tokens) {
		return protocol.Range{}, false
	}
	end := toPosition(tokens[last].Row, tokens[last].Column)
	end.Character += protocol.UInteger(len(tokens[last].Data))
	return protocol.Range{Start: toPosition(tokens[first].Row, tokens[first].Column), End: end}, true
}

// Symbols lists the functions and classes of prog, nesting the definitions
// found in class and function bodies.
func Symbols(prog *ast.Program, tokens []lexer.Token) []protocol.DocumentSymbol {
	if prog == nil {
		return []protocol.DocumentSymbol{}
	}
	return symbols(prog.Statements, tokens, false)
}

func symbols(stmts []ast.Node, tokens []lexer.Token, inClass bool) []protocol.DocumentSymbol {
	out := []protocol.DocumentSymbol{}
	for _, stmt := range stmts {
		var (
			name *ast.Identifier
			kind protocol.SymbolKind
			body *ast.Block
		)
		switch n := stmt.(type) {
		case *ast.Function:
			name, body = n.Name, n.Body
			kind = protocol.SymbolKindFunction
			if inClass {
				kind = protocol.SymbolKindMethod
			}
		case *ast.Class:
			name, body = n.Name, n.Body
			kind = protocol.SymbolKindClass
		default:
			continue
		}

		full, ok := nodeRange(stmt, tokens)
		if !ok {
			continue
		}
		selection, _ := nodeRange(name, tokens)
		sym := protocol.DocumentSymbol{
			Name:           tokens[name.Index].Data,
			Kind:           kind,
			Range:          full,
			SelectionRange: selection,
		}
		if body != nil {
			sym.Children = symbols(body.Statements, tokens, kind == protocol.SymbolKindClass)
		}
		out = append(out, sym)
	}
	return out
}

func ptrTo[T any](v T) *T {
	return &v
}
