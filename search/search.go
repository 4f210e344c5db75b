// Package search runs match expressions against a document repository.
package search

import (
	"fmt"

	"github.com/omichalon/stanza/match"
	"github.com/omichalon/stanza/storage"
)

// Search orchestrates the strategy selection for finding sentences that
// match an expression against a document repository.
type Search struct {
	matcher *match.Matcher
	repo    storage.DocReader
	docID   *int
}

// New creates a new Search for the given expression and repository.
func New(expr match.Expr, dr storage.DocReader) *Search {
	return &Search{
		matcher: match.NewMatcher(expr),
		repo:    dr,
	}
}

// WithDocID restricts the search to a single document ID. If set, the
// single-document strategy (Read) will be favored over the full scan.
func (s *Search) WithDocID(id int) *Search {
	s.docID = &id
	return s
}

// Sentences streams every matching sentence to onMatch, in document and
// sentence order. A non-nil error from the callback stops the search.
func (s *Search) Sentences(onMatch func(*match.SentenceMatch) error) error {
	// Strategy 1: Single Document
	if s.docID != nil {
		return s.searchDoc(*s.docID, onMatch)
	}

	// Strategy 2: Full scan
	metas, err := s.repo.List()
	if err != nil {
		return fmt.Errorf("failed to list docs: %w", err)
	}

	for _, meta := range metas {
		if err := s.searchDoc(meta.ID, onMatch); err != nil {
			return err
		}
	}

	return nil
}

func (s *Search) searchDoc(id int, onMatch func(*match.SentenceMatch) error) error {
	doc, err := s.repo.Read(id)
	if err != nil {
		return err
	}

	d, err := doc.Document()
	if err != nil {
		return fmt.Errorf("failed to load doc %d: %w", id, err)
	}

	for _, m := range s.matcher.MatchDoc(d, id) {
		if err := onMatch(m); err != nil {
			return err
		}
	}

	return nil
}
