package lsp

import (
	"sort"
	"sync"

	"github.com/dhamidi/corona/ast"
	"github.com/dhamidi/corona/lexer"
	"github.com/dhamidi/corona/parser"
)

// Document is the last parsed state of an open file.
type Document struct {
	URI     string
	Version int32
	Content []byte
	Program *ast.Program
	Tokens  []lexer.Token
	Err     error
}

// Workspace holds the open documents. Each update parses the document on
// its own parser.
type Workspace struct {
	mu      sync.RWMutex
	rootDir string
	options []parser.Option
	docs    map[string]*Document
}

func NewWorkspace(rootDir string, opts ...parser.Option) *Workspace {
	return &Workspace{
		rootDir: rootDir,
		options: opts,
		docs:    make(map[string]*Document),
	}
}

func (w *Workspace) RootDir() string {
	return w.rootDir
}

// SetOptions replaces the parser options used for later updates.
func (w *Workspace) SetOptions(opts ...parser.Option) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.options = opts
}

// Update parses content and stores it as the current state of uri.
func (w *Workspace) Update(uri string, version int32, content []byte) *Document {
	w.mu.RLock()
	opts := w.options
	w.mu.RUnlock()

	doc := &Document{URI: uri, Version: version, Content: content}
	p, err := parser.FromSource(content, opts...)
	if err != nil {
		doc.Err = err
	} else {
		doc.Tokens = p.Tokens()
		doc.Program, doc.Err = p.Program()
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.docs[uri] = doc
	return doc
}

func (w *Workspace) Remove(uri string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.docs, uri)
}

func (w *Workspace) Get(uri string) *Document {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.docs[uri]
}

// URIs lists the open documents in sorted order.
func (w *Workspace) URIs() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	uris := make([]string, 0, len(w.docs))
	for uri := range w.docs {
		uris = append(uris, uri)
	}
	sort.Strings(uris)
	return uris
}
