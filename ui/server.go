// Package ui serves a web playground: post a grammar and some input, get
// back the syntax tree or the furthest parse error.
package ui

import (
	"embed"
	"encoding/json"
	"fmt"
	"errors"
	"html/template"
	"io/fs"
	"mime"
	"net/http"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/pcomb/comb"
	"github.com/dhamidi/pcomb/config"
	"github.com/dhamidi/pcomb/format"
	"github.com/dhamidi/pcomb/grammar"
)

//go:embed templates
var embeddedFS embed.FS

const exampleGrammar = `Expr   = Term { ( "+" | "-" ) Term } .
Term   = Factor { ( "*" | "/" ) Factor } .
Factor = number | "(" Expr ")" .
number = digit { digit } .
digit  = "0" … "9" .
`

// MaxRequestBytes bounds the body of POST /parse.
var MaxRequestBytes int64 = 1 << 20

type Server struct {
	templates *template.Template
	mux       *http.ServeMux
}

func NewServer() (*Server, error) {
	tmpl, err := template.New("").ParseFS(mustSub(embeddedFS, "templates"), "*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		templates: tmpl,
		mux:       http.NewServeMux(),
	}

	s.mux.HandleFunc("POST /parse", s.handleParse)
	s.mux.HandleFunc("GET /{$}", s.handleIndex)

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) log() commonlog.Logger {
	return commonlog.GetLogger("pcomb.ui")
}

func (s *Server) render(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		s.log().Warningf("render %s: %s", name, err)
	}
}

// Request is the body of POST /parse, either as JSON or as form fields.
type Request struct {
	Grammar string `json:"grammar"`
	Start   string `json:"start"`
	Skip    string `json:"skip,omitempty"`
	Input   string `json:"input"`
}

// Response is the JSON answer of POST /parse. Exactly one of Tree and
// Error is set.
type Response struct {
	Tree  json.RawMessage `json:"tree,omitempty"`
	Error *ParseError     `json:"error,omitempty"`
}

// ParseError locates the furthest failure in the input.
type ParseError struct {
	Message string `json:"message"`
	Offset  int    `json:"offset"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Report  string `json:"report"`
}

// page is the data of index.html.
type page struct {
	Request
	Tree  string
	Error *ParseError
	Fatal string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "index.html", page{Request: Request{
		Grammar: exampleGrammar,
		Start:   "Expr",
		Skip:    config.SkipUnicode,
		Input:   "1 + 2 * (3 - 4)",
	}})
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req Request
	r.Body = http.MaxBytesReader(w, r.Body, MaxRequestBytes)
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	wantJSON := mediaType == "application/json"
	if wantJSON {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON: "+err.Error(), requestErrorStatus(err))
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form data: "+err.Error(), requestErrorStatus(err))
			return
		}
		req = Request{
			Grammar: r.FormValue("grammar"),
			Start:   r.FormValue("start"),
			Skip:    r.FormValue("skip"),
			Input:   r.FormValue("input"),
		}
	}

	g, err := compile(req)
	if err != nil {
		if wantJSON {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.render(w, http.StatusBadRequest, "index.html", page{Request: req, Fatal: err.Error()})
		return
	}

	tree, err := g.Parse([]byte(req.Input))
	if !wantJSON {
		p := page{Request: req}
		if err != nil {
			p.Error = toParseError(err)
		} else {
			p.Tree = tree.Dump()
		}
		s.render(w, http.StatusOK, "index.html", p)
		return
	}

	var resp Response
	if err != nil {
		resp.Error = toParseError(err)
	} else {
		resp.Tree, err = format.NewJSONEncoder(nil).MarshalText(tree)
		if err != nil {
			http.Error(w, "encode tree: "+err.Error(), http.StatusInternalServerError)
			return
		}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func requestErrorStatus(err error) int {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}

func compile(req Request) (*grammar.Grammar, error) {
	cfg := config.Default()
	cfg.Start = req.Start
	if req.Skip != "" {
		cfg.Skip = req.Skip
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Start == "" {
		return nil, fmt.Errorf("no start production given")
	}

	g, err := grammar.Parse("playground", strings.NewReader(req.Grammar))
	if err != nil {
		return nil, err
	}
	var opts []grammar.Option
	if skip := cfg.SkipOption(); skip != nil {
		opts = append(opts, skip)
	}
	return grammar.Compile(g, cfg.Start, opts...)
}

func toParseError(err error) *ParseError {
	leaf := comb.Resolve(err)
	pe := &ParseError{
		Message: leaf.Error(),
		Offset:  leaf.Position(),
		Report:  leaf.Report(),
	}
	if e, ok := leaf.(*comb.Error[byte]); ok {
		pe.Message = e.Message
		pe.Line, pe.Column = e.Loc.LineOffset()
	}
	return pe
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
