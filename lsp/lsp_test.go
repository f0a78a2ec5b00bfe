package lsp

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestDiagnostics(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		message string
		start   protocol.Position
		end     protocol.Position
	}{
		{"syntax error", "if x\n  pass\n", "expected ':'", protocol.Position{Line: 0, Character: 4}, protocol.Position{Line: 0, Character: 5}},
		{"covers the offending token", "x = 1 foo\n", "expected end of statement", protocol.Position{Line: 0, Character: 6}, protocol.Position{Line: 0, Character: 9}},
		{"lexer error", "x = \"open\n", "unterminated string literal", protocol.Position{Line: 0, Character: 4}, protocol.Position{Line: 0, Character: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := NewWorkspace("/").Update("file:///a.corona", 1, []byte(tt.src))
			diags := Diagnostics(doc.Err, doc.Tokens)
			require.Len(t, diags, 1)
			assert.Contains(t, diags[0].Message, tt.message)
			assert.Equal(t, tt.start, diags[0].Range.Start)
			assert.Equal(t, tt.end, diags[0].Range.End)
			require.NotNil(t, diags[0].Severity)
			assert.Equal(t, protocol.DiagnosticSeverityError, *diags[0].Severity)
		})
	}

	clean := Diagnostics(nil, nil)
	assert.NotNil(t, clean)
	assert.Empty(t, clean)
}

func TestSymbols(t *testing.T) {
	src := "class A:\n  def m(self):\n    pass\ndef f():\n  pass\nx = 1\n"
	doc := NewWorkspace("/").Update("file:///a.corona", 1, []byte(src))
	require.NoError(t, doc.Err)

	syms := Symbols(doc.Program, doc.Tokens)
	require.Len(t, syms, 2)

	assert.Equal(t, "A", syms[0].Name)
	assert.Equal(t, protocol.SymbolKindClass, syms[0].Kind)
	assert.Equal(t, protocol.Position{Line: 0, Character: 6}, syms[0].SelectionRange.Start)
	assert.Equal(t, protocol.Position{Line: 0, Character: 7}, syms[0].SelectionRange.End)
	require.Len(t, syms[0].Children, 1)
	assert.Equal(t, "m", syms[0].Children[0].Name)
	assert.Equal(t, protocol.SymbolKindMethod, syms[0].Children[0].Kind)
	assert.Equal(t, protocol.Position{Line: 1, Character: 6}, syms[0].Children[0].SelectionRange.Start)

	assert.Equal(t, "f", syms[1].Name)
	assert.Equal(t, protocol.SymbolKindFunction, syms[1].Kind)
	assert.Equal(t, protocol.Position{Line: 3, Character: 4}, syms[1].SelectionRange.Start)
	assert.Empty(t, syms[1].Children)

	assert.Empty(t, Symbols(nil, nil))
}

func TestWorkspace(t *testing.T) {
	w := NewWorkspace("/proj")
	w.Update("file:///b.corona", 1, []byte("pass\n"))
	w.Update("file:///a.corona", 2, []byte("if\n"))

	assert.Equal(t, []string{"file:///a.corona", "file:///b.corona"}, w.URIs())
	assert.NoError(t, w.Get("file:///b.corona").Err)
	assert.Error(t, w.Get("file:///a.corona").Err)
	assert.Equal(t, int32(2), w.Get("file:///a.corona").Version)

	w.Remove("file:///a.corona")
	assert.Nil(t, w.Get("file:///a.corona"))
	assert.Equal(t, "/proj", w.RootDir())
}

type notification struct {
	method string
	params protocol.PublishDiagnosticsParams
}

func recordingContext(out *[]notification) *glsp.Context {
	return &glsp.Context{
		Notify: func(method string, params any) {
			*out = append(*out, notification{method, params.(protocol.PublishDiagnosticsParams)})
		},
	}
}

func TestServerPublishesDiagnostics(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/proj/corona.yaml", []byte("parser:\n  lenient: true\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/proj/main.corona", []byte("def f():\n  pass\n"), 0o644))

	ls := newLSPServer("test", fs)
	var sent []notification
	ctx := recordingContext(&sent)

	root := "/proj"
	_, err := ls.initialize(ctx, &protocol.InitializeParams{RootPath: &root})
	require.NoError(t, err)
	assert.Equal(t, "/proj", ls.Workspace().RootDir())

	uri := "file:///proj/main.corona"
	require.NoError(t, ls.textDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Version: 1, Text: "if x\n  pass\n"},
	}))
	require.Len(t, sent, 1)
	assert.Equal(t, protocol.ServerTextDocumentPublishDiagnostics, sent[0].method)
	require.Len(t, sent[0].params.Diagnostics, 1)
	// lenient mode from corona.yaml
	assert.Contains(t, sent[0].params.Diagnostics[0].Message, "invalid syntax")

	change := &protocol.DidChangeTextDocumentParams{
		ContentChanges: []any{protocol.TextDocumentContentChangeEventWhole{Text: "if x:\n  pass\n"}},
	}
	change.TextDocument.URI = uri
	change.TextDocument.Version = 2
	require.NoError(t, ls.textDocumentDidChange(ctx, change))
	require.Len(t, sent, 2)
	assert.Empty(t, sent[1].params.Diagnostics)
	assert.Equal(t, int32(2), ls.Workspace().Get(uri).Version)

	save := &protocol.DidSaveTextDocumentParams{}
	save.TextDocument.URI = uri
	require.NoError(t, ls.textDocumentDidSave(ctx, save))
	require.Len(t, sent, 3)
	assert.Empty(t, sent[2].params.Diagnostics)

	syms, err := ls.textDocumentDocumentSymbol(ctx, &protocol.DocumentSymbolParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	require.Len(t, syms, 1)
	assert.Equal(t, "f", syms.([]protocol.DocumentSymbol)[0].Name)

	closeParams := &protocol.DidCloseTextDocumentParams{TextDocument: protocol.TextDocumentIdentifier{URI: uri}}
	require.NoError(t, ls.textDocumentDidClose(ctx, closeParams))
	require.Len(t, sent, 4)
	assert.NotNil(t, sent[3].params.Diagnostics)
	assert.Empty(t, sent[3].params.Diagnostics)
	assert.Nil(t, ls.Workspace().Get(uri))
}

func TestURIToPath(t *testing.T) {
	path, err := uriToPath("file:///proj/a%20b/main.corona")
	require.NoError(t, err)
	assert.Equal(t, "/proj/a b/main.corona", path)

	path, err = uriToPath("untitled:1")
	require.NoError(t, err)
	assert.Equal(t, "untitled:1", path)
}
