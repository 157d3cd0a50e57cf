package lsp

import "sync"

// Store holds the text of open documents keyed by URI.
type Store struct {
	mu   sync.Mutex
	docs map[string][]byte
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{docs: make(map[string][]byte)}
}

// Set replaces the text of uri.
func (s *Store) Set(uri string, text []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[uri] = text
}

// Get returns the text of uri.
func (s *Store) Get(uri string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	text, ok := s.docs[uri]
	return text, ok
}

// Delete forgets uri.
func (s *Store) Delete(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}

// Len returns the number of open documents.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.docs)
}
