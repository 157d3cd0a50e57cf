package ui

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := NewServer()
	require.NoError(t, err)
	return s
}

func postJSON(t *testing.T, s *Server, req Request) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(req)
	require.NoError(t, err)
	r := httptest.NewRequest(http.MethodPost, "/parse", bytes.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.ServeHTTP(w, r)
	return w
}

func TestIndex(t *testing.T) {
	s := newTestServer(t)
	w := httptest.NewRecorder()
	s.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `<form method="post" action="/parse">`)
	assert.Contains(t, w.Body.String(), `value="Expr"`)

	w = httptest.NewRecorder()
	s.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestParseJSON(t *testing.T) {
	s := newTestServer(t)

	w := postJSON(t, s, Request{Grammar: exampleGrammar, Start: "Expr", Input: "1 + 2"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp struct {
		Tree struct {
			Kind     string            `json:"kind"`
			Children []json.RawMessage `json:"children"`
		} `json:"tree"`
		Error *ParseError `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Nil(t, resp.Error)
	assert.Equal(t, "Expr", resp.Tree.Kind)
	assert.Len(t, resp.Tree.Children, 3)
}

func TestParseJSONError(t *testing.T) {
	s := newTestServer(t)

	w := postJSON(t, s, Request{Grammar: exampleGrammar, Start: "Expr", Input: "1 +\n(2 * )"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Empty(t, resp.Tree)
	assert.Equal(t, 9, resp.Error.Offset)
	assert.Equal(t, 2, resp.Error.Line)
	assert.Equal(t, 5, resp.Error.Column)
	assert.Contains(t, resp.Error.Message, "found ')'")
	assert.Contains(t, resp.Error.Report, "^--- here")
}

func TestParseJSONWithCharset(t *testing.T) {
	s := newTestServer(t)

	body, err := json.Marshal(Request{Grammar: exampleGrammar, Start: "Expr", Input: "1"})
	require.NoError(t, err)
	r := httptest.NewRequest(http.MethodPost, "/parse", bytes.NewReader(body))
	r.Header.Set("Content-Type", "application/json; charset=utf-8")
	w := httptest.NewRecorder()
	s.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), `"kind":"Expr"`)
}

func TestParseBodyLimit(t *testing.T) {
	s := newTestServer(t)

	w := postJSON(t, s, Request{Grammar: exampleGrammar, Start: "Expr", Input: strings.Repeat("1+", int(MaxRequestBytes))})
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

	form := url.Values{"grammar": {exampleGrammar}, "start": {"Expr"}, "input": {strings.Repeat("1", int(MaxRequestBytes))}}
	r := httptest.NewRequest(http.MethodPost, "/parse", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w = httptest.NewRecorder()
	s.ServeHTTP(w, r)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestParseBadRequest(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name string
		req  Request
		want string
	}{
		{"grammar syntax", Request{Grammar: `Expr = "x"`, Start: "Expr"}, "parse grammar"},
		{"unknown start", Request{Grammar: exampleGrammar, Start: "Nope"}, "Nope"},
		{"no start", Request{Grammar: exampleGrammar}, "no start production"},
		{"bad skip", Request{Grammar: exampleGrammar, Start: "Expr", Skip: "tabs"}, "invalid skip"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, s, tt.req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.want)
		})
	}

	r := httptest.NewRequest(http.MethodPost, "/parse", strings.NewReader("{"))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.ServeHTTP(w, r)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestParseForm(t *testing.T) {
	s := newTestServer(t)

	form := url.Values{
		"grammar": {exampleGrammar},
		"start":   {"Expr"},
		"skip":    {"none"},
		"input":   {"1+2"},
	}
	r := httptest.NewRequest(http.MethodPost, "/parse", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	s.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Syntax tree")
	assert.Contains(t, body, "Expr @ line 1, byte offset 0")
	assert.Contains(t, body, `<option value="none" selected>`)

	form.Set("input", "1 + 2")
	r = httptest.NewRequest(http.MethodPost, "/parse", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w = httptest.NewRecorder()
	s.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Line 1, byte offset 1")
}
