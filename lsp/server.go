// Package lsp serves Corona syntax diagnostics and document symbols over
// the Language Server Protocol.
package lsp

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhamidi/corona/config"
	"github.com/spf13/afero"
	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "corona"

var log = commonlog.GetLogger("corona.lsp")

type LSPServer struct {
	workspace *Workspace
	fs        afero.Fs
	handler   protocol.Handler
	server    *server.Server
	version   string
}

func NewLSPServer(version string) *LSPServer {
	return newLSPServer(version, afero.NewOsFs())
}

func newLSPServer(version string, fs afero.Fs) *LSPServer {
	ls := &LSPServer{
		version:   version,
		fs:        fs,
		workspace: NewWorkspace(getRootDir(), config.Default().Parser.Options()...),
	}

	ls.handler = protocol.Handler{
		Initialize:                 ls.initialize,
		Initialized:                ls.initialized,
		Shutdown:                   ls.shutdown,
		SetTrace:                   ls.setTrace,
		TextDocumentDidOpen:        ls.textDocumentDidOpen,
		TextDocumentDidChange:      ls.textDocumentDidChange,
		TextDocumentDidClose:       ls.textDocumentDidClose,
		TextDocumentDidSave:        ls.textDocumentDidSave,
		TextDocumentDocumentSymbol: ls.textDocumentDocumentSymbol,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *LSPServer) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *LSPServer) Workspace() *Workspace {
	return ls.workspace
}

func (ls *LSPServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	rootDir := ls.workspace.RootDir()
	if params.RootPath != nil && *params.RootPath != "" {
		rootDir = *params.RootPath
	} else if params.RootURI != nil && *params.RootURI != "" {
		if path, err := uriToPath(*params.RootURI); err == nil {
			rootDir = path
		}
	}

	ls.workspace = NewWorkspace(rootDir)
	cfg, err := config.LoadDir(ls.fs, rootDir)
	if err != nil {
		log.Warningf("%s, using defaults", err)
		cfg = config.Default()
	}
	ls.workspace.SetOptions(cfg.Parser.Options()...)

	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    intPtr(int(protocol.TextDocumentSyncKindFull)),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *LSPServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Infof("serving %s", ls.workspace.RootDir())
	return nil
}

func (ls *LSPServer) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *LSPServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *LSPServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := ls.workspace.Update(params.TextDocument.URI, int32(params.TextDocument.Version), []byte(params.TextDocument.Text))
	ls.publish(ctx, doc)
	return nil
}

func (ls *LSPServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole)
	if !ok {
		return nil
	}
	doc := ls.workspace.Update(params.TextDocument.URI, int32(params.TextDocument.Version), []byte(textChange.Text))
	ls.publish(ctx, doc)
	return nil
}

func (ls *LSPServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	ls.workspace.Remove(params.TextDocument.URI)
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

func (ls *LSPServer) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	uri := params.TextDocument.URI
	var content []byte
	if params.Text != nil {
		content = []byte(*params.Text)
	} else {
		path, err := uriToPath(uri)
		if err != nil {
			return nil
		}
		if content, err = afero.ReadFile(ls.fs, path); err != nil {
			log.Errorf("read %s: %s", path, err)
			return nil
		}
	}

	var version int32
	if prev := ls.workspace.Get(uri); prev != nil {
		version = prev.Version
	}
	ls.publish(ctx, ls.workspace.Update(uri, version, content))
	return nil
}

func (ls *LSPServer) textDocumentDocumentSymbol(ctx *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	doc := ls.workspace.Get(params.TextDocument.URI)
	if doc == nil {
		return []protocol.DocumentSymbol{}, nil
	}
	return Symbols(doc.Program, doc.Tokens), nil
}

func (ls *LSPServer) publish(ctx *glsp.Context, doc *Document) {
	if doc.Err != nil {
		log.Debugf("%s: %s", doc.URI, doc.Err)
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         doc.URI,
		Diagnostics: Diagnostics(doc.Err, doc.Tokens),
	})
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func boolPtr(b bool) *bool {
	return &b
}

func intPtr(i int) *protocol.TextDocumentSyncKind {
	v := protocol.TextDocumentSyncKind(i)
	return &v
}

func getRootDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	return dir
}
