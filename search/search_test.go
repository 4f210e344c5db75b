package search

import (
	"errors"
	"fmt"
	"testing"

	"github.com/omichalon/stanza/document"
	"github.com/omichalon/stanza/match"
	"github.com/omichalon/stanza/storage"
)

func intp(v int) *int { return &v }

type stubRepo struct {
	docs []storage.Doc
}

func (r *stubRepo) List() ([]storage.Doc, error) {
	metas := make([]storage.Doc, 0, len(r.docs))
	for _, d := range r.docs {
		metas = append(metas, storage.Doc{ID: d.ID, Name: d.Name})
	}
	return metas, nil
}

func (r *stubRepo) Read(id int) (storage.Doc, error) {
	for _, d := range r.docs {
		if d.ID == id {
			return d, nil
		}
	}
	return storage.Doc{}, fmt.Errorf("doc not found: %d", id)
}

func testRepo() *stubRepo {
	return &stubRepo{docs: []storage.Doc{
		{
			ID:   0,
			Name: "john.json",
			Text: "John reads books",
			Sentences: [][]document.Record{
				{
					{ID: "1", Text: "John", Lemma: "John", UPOS: "PROPN", Head: intp(2), DepRel: "nsubj", NER: "S-PER"},
					{ID: "2", Text: "reads", Lemma: "read", UPOS: "VERB", Head: intp(0), DepRel: "root", NER: "O"},
					{ID: "3", Text: "books", Lemma: "book", UPOS: "NOUN", Head: intp(2), DepRel: "obj", NER: "O"},
				},
			},
		},
		{
			ID:   1,
			Name: "mary.json",
			Text: "Mary sleeps. Dogs bark.",
			Sentences: [][]document.Record{
				{
					{ID: "1", Text: "Mary", Lemma: "Mary", UPOS: "PROPN", NER: "S-PER"},
					{ID: "2", Text: "sleeps", Lemma: "sleep", UPOS: "VERB", NER: "O"},
				},
				{
					{ID: "1", Text: "Dogs", Lemma: "dog", UPOS: "NOUN", NER: "O"},
					{ID: "2", Text: "bark", Lemma: "bark", UPOS: "VERB", NER: "O"},
				},
			},
		},
	}}
}

func collect(t *testing.T, s *Search) []*match.SentenceMatch {
	t.Helper()

	var matches []*match.SentenceMatch
	err := s.Sentences(func(m *match.SentenceMatch) error {
		matches = append(matches, m)
		return nil
	})
	if err != nil {
		t.Fatalf("Sentences: %v", err)
	}

	return matches
}

func TestSentencesFullScan(t *testing.T) {
	s := New(match.Expr{{UPOS: "PROPN"}}, testRepo())

	matches := collect(t, s)
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}

	if matches[0].DocID != 0 || matches[0].SentID != 0 {
		t.Errorf("first match: got doc %d sentence %d, want doc 0 sentence 0", matches[0].DocID, matches[0].SentID)
	}

	if matches[1].DocID != 1 || matches[1].SentID != 0 {
		t.Errorf("second match: got doc %d sentence %d, want doc 1 sentence 0", matches[1].DocID, matches[1].SentID)
	}

	if matches[1].Words[0].Text != "Mary" {
		t.Errorf("second match: got word %q, want %q", matches[1].Words[0].Text, "Mary")
	}
}

func TestSentencesAcrossSentences(t *testing.T) {
	s := New(match.Expr{{UPOS: "VERB"}}, testRepo())

	matches := collect(t, s)
	if len(matches) != 3 {
		t.Fatalf("got %d matches, want 3", len(matches))
	}

	if matches[2].DocID != 1 || matches[2].SentID != 1 {
		t.Errorf("third match: got doc %d sentence %d, want doc 1 sentence 1", matches[2].DocID, matches[2].SentID)
	}
}

func TestSentencesWithDocID(t *testing.T) {
	s := New(match.Expr{{UPOS: "PROPN"}}, testRepo()).WithDocID(1)

	matches := collect(t, s)
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}

	if matches[0].DocID != 1 {
		t.Errorf("got doc %d, want 1", matches[0].DocID)
	}
}

func TestSentencesUnknownDoc(t *testing.T) {
	s := New(match.Expr{{UPOS: "PROPN"}}, testRepo()).WithDocID(9)

	err := s.Sentences(func(m *match.SentenceMatch) error { return nil })
	if err == nil {
		t.Fatal("expected error for unknown doc")
	}
}

func TestSentencesCallbackError(t *testing.T) {
	s := New(match.Expr{{UPOS: "VERB"}}, testRepo())

	stop := errors.New("stop")
	calls := 0
	err := s.Sentences(func(m *match.SentenceMatch) error {
		calls++
		return stop
	})

	if !errors.Is(err, stop) {
		t.Fatalf("got error %v, want %v", err, stop)
	}

	if calls != 1 {
		t.Errorf("callback ran %d times, want 1", calls)
	}
}
