// Package lsp implements a language server that reports the furthest parse
// error of every open document as a diagnostic.
package lsp

import (
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/dhamidi/pcomb/config"
	"github.com/dhamidi/pcomb/grammar"
)

const lsName = "pcomb"

// Server checks documents against a compiled grammar.
type Server struct {
	grammar *grammar.Grammar
	docs    *Store
	handler protocol.Handler
	server  *server.Server
	version string
}

// NewServer creates a server. When g is nil the grammar is taken from the
// project file found in the workspace root on initialize.
func NewServer(version string, g *grammar.Grammar) *Server {
	ls := &Server{
		grammar: g,
		docs:    NewStore(),
		version: version,
	}

	ls.handler = protocol.Handler{
		Initialize:            ls.initialize,
		Initialized:           ls.initialized,
		Shutdown:              ls.shutdown,
		SetTrace:              ls.setTrace,
		TextDocumentDidOpen:   ls.textDocumentDidOpen,
		TextDocumentDidChange: ls.textDocumentDidChange,
		TextDocumentDidClose:  ls.textDocumentDidClose,
		TextDocumentDidSave:   ls.textDocumentDidSave,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

// RunStdio serves the protocol over standard input and output.
func (ls *Server) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *Server) log() commonlog.Logger {
	return commonlog.GetLogger("pcomb.lsp")
}

func (ls *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	if ls.grammar == nil {
		rootDir := getRootDir()
		if params.RootPath != nil && *params.RootPath != "" {
			rootDir = *params.RootPath
		} else if params.RootURI != nil && *params.RootURI != "" {
			if path, err := uriToPath(*params.RootURI); err == nil {
				rootDir = path
			}
		}
		g, err := loadGrammar(rootDir)
		if err != nil {
			return nil, err
		}
		ls.grammar = g
	}

	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
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

func loadGrammar(rootDir string) (*grammar.Grammar, error) {
	path, ok := config.Find(rootDir)
	if !ok {
		return nil, errors.New("no " + config.FileName + " found in " + rootDir)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return cfg.Compile()
}

func (ls *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	if ls.grammar == nil {
		return nil
	}
	ls.log().Infof("checking documents against production %q", ls.grammar.Start())
	return nil
}

func (ls *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	ls.update(ctx, params.TextDocument.URI, []byte(params.TextDocument.Text))
	return nil
}

func (ls *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			ls.update(ctx, params.TextDocument.URI, []byte(textChange.Text))
		}
	}
	return nil
}

func (ls *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	ls.docs.Delete(params.TextDocument.URI)
	ls.publish(ctx, params.TextDocument.URI, []protocol.Diagnostic{})
	return nil
}

func (ls *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	uri := params.TextDocument.URI
	if params.Text != nil {
		ls.update(ctx, uri, []byte(*params.Text))
		return nil
	}
	if text, ok := ls.docs.Get(uri); ok {
		ls.update(ctx, uri, text)
		return nil
	}
	path, err := uriToPath(uri)
	if err != nil {
		return nil
	}
	text, err := os.ReadFile(path)
	if err != nil {
		ls.log().Warningf("read %s: %s", path, err)
		return nil
	}
	ls.update(ctx, uri, text)
	return nil
}

func (ls *Server) update(ctx *glsp.Context, uri string, text []byte) {
	ls.docs.Set(uri, text)
	if ls.grammar == nil {
		ls.log().Warningf("%s: no grammar loaded, skipping diagnostics", uri)
		return
	}
	diagnostics := Diagnose(ls.grammar, text)
	ls.log().Debugf("%s: %d diagnostics", uri, len(diagnostics))
	ls.publish(ctx, uri, diagnostics)
}

func (ls *Server) publish(ctx *glsp.Context, uri string, diagnostics []protocol.Diagnostic) {
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
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

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}

func getRootDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	return dir
}
