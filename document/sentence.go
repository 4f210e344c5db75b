package document

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// rootText is the surface form of the synthetic word heading every parse.
const rootText = "ROOT"

// Dependency is one edge of the parse: the head word, the relation label and
// the dependent word. The head of a top-level word is the sentence's
// synthetic root, which has id 0.
type Dependency struct {
	Head *Word
	Rel  string
	Dep  *Word
}

// Sentence is one sentence's worth of tokens and words, with the dependency
// graph derived from the words' head fields once they are all annotated.
type Sentence struct {
	tokens       []*Token
	words        []*Word
	dependencies []Dependency
	text         string
	root         *Word
}

// NewSentence builds a sentence by partitioning records into tokens and
// words. A record flagged as multi-word becomes a token shell; a plain
// record becomes a word, attached to the preceding shell while its id falls
// inside the shell's range and wrapped in a token of its own otherwise.
// Records missing an id take their 1-based position. When every word carries
// head and deprel and ids are dense, the dependency graph is built as well.
func NewSentence(records []Record) (*Sentence, error) {
	s := &Sentence{}
	if err := s.processRecords(records); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Sentence) processRecords(records []Record) error {
	s.tokens, s.words = nil, nil
	s.dependencies = nil
	en := -1
	for i, rec := range records {
		if rec.ID == "" {
			rec.ID = strconv.Itoa(i + 1)
		}
		if m := rangeID.FindStringSubmatch(rec.ID); m != nil || hasMWTMarker(rec.Misc) {
			if m != nil {
				en, _ = strconv.Atoi(m[2])
			}
			tok, err := NewToken(rec)
			if err != nil {
				return err
			}
			s.tokens = append(s.tokens, tok)
			continue
		}
		w, err := NewWord(rec)
		if err != nil {
			return err
		}
		s.words = append(s.words, w)
		if w.ID <= en {
			s.tokens[len(s.tokens)-1].appendWord(w)
		} else {
			tok, err := NewToken(rec, w)
			if err != nil {
				return err
			}
			s.tokens = append(s.tokens, tok)
		}
	}

	if !s.annotated() {
		return nil
	}
	return s.BuildDependencies()
}

// annotated reports whether the sentence is ready for dependency building:
// at least one word, every word carrying head and deprel, and word ids dense
// from 1.
func (s *Sentence) annotated() bool {
	if len(s.words) == 0 {
		return false
	}
	for _, w := range s.words {
		if w.Head == nil || w.DepRel == "" {
			return false
		}
	}
	return len(s.words) == s.words[len(s.words)-1].ID
}

// BuildDependencies derives one (head, relation, dependent) edge per word.
// Heads resolve positionally: head i must be the word stored at index i-1.
// Head 0 resolves to the sentence's synthetic root word, shared across
// edges.
func (s *Sentence) BuildDependencies() error {
	s.dependencies = make([]Dependency, 0, len(s.words))
	for _, w := range s.words {
		var head *Word
		switch {
		case *w.Head == 0:
			head = s.rootWord()
		case *w.Head < 1 || *w.Head > len(s.words):
			return fmt.Errorf("word %d: head %d outside sentence of %d words", w.ID, *w.Head, len(s.words))
		default:
			head = s.words[*w.Head-1]
			if head.ID != *w.Head {
				return fmt.Errorf("word %d: head %d resolves to word id %d", w.ID, *w.Head, head.ID)
			}
		}
		s.dependencies = append(s.dependencies, Dependency{Head: head, Rel: w.DepRel, Dep: w})
	}
	return nil
}

// rootWord returns the sentence's synthetic ROOT word, allocating it on
// first use.
func (s *Sentence) rootWord() *Word {
	if s.root == nil {
		s.root = &Word{ID: 0, Text: rootText}
	}
	return s.root
}

// Tokens returns the sentence's surface tokens in order.
func (s *Sentence) Tokens() []*Token {
	return s.tokens
}

// Words returns the sentence's syntactic words in order.
func (s *Sentence) Words() []*Word {
	return s.words
}

// Dependencies returns the parse edges, one per word, or nil while the
// sentence is not fully annotated.
func (s *Sentence) Dependencies() []Dependency {
	return s.dependencies
}

// Text returns the raw sentence text, or "" when unknown.
func (s *Sentence) Text() string {
	return s.text
}

// SetText records the raw sentence text.
func (s *Sentence) SetText(text string) {
	s.text = text
}

// ToRecords serializes the sentence token by token.
func (s *Sentence) ToRecords() []Record {
	var recs []Record
	for _, t := range s.tokens {
		recs = append(recs, t.ToRecords()...)
	}
	return recs
}

// Rebuild re-derives the sentence's tokens, words and dependency graph from
// its own serialized form. Mutations that renumber ids or replace word lists
// leave the partition stale until this runs.
func (s *Sentence) Rebuild() error {
	return s.processRecords(s.ToRecords())
}

func (s *Sentence) String() string {
	b, _ := json.MarshalIndent(s.ToRecords(), "", "  ")
	return string(b)
}
