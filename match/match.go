// Package match finds sentences whose words satisfy a field expression.
package match

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/omichalon/stanza/document"
)

// Item is one word predicate of an expression. Every set field must match
// the word's value. A value may carry |-separated alternatives, and a
// leading ! negates the check.
type Item struct {
	Text   string
	Lemma  string
	UPOS   string
	DepRel string
	NER    string
}

// Expr is a conjunction of items. A sentence matches when every item is
// satisfied by at least one of its words; the items may hit different words.
type Expr []Item

func (e Expr) String() string {
	sl := []string{}
	for _, item := range e {
		sl = append(sl, item.String())
	}

	return strings.Join(sl, " ")
}

func (i Item) String() string {
	sl := []string{}
	if len(i.Text) > 0 {
		sl = append(sl, "text="+i.Text)
	}
	if len(i.Lemma) > 0 {
		sl = append(sl, "lemma="+i.Lemma)
	}
	if len(i.UPOS) > 0 {
		sl = append(sl, "upos="+i.UPOS)
	}
	if len(i.DepRel) > 0 {
		sl = append(sl, "deprel="+i.DepRel)
	}
	if len(i.NER) > 0 {
		sl = append(sl, "ner="+i.NER)
	}

	return strings.Join(sl, ",")
}

// Parse converts command arguments into an expression. A field=value
// argument names the word field explicitly. A bare argument reads as a upos
// predicate when it starts uppercase and as a lemma predicate otherwise, the
// way queries are usually written.
func Parse(args []string) (Expr, error) {
	var expr Expr
	for _, arg := range args {
		if arg == "" {
			continue
		}

		if field, value, ok := strings.Cut(arg, "="); ok {
			item, err := newItem(field, value)
			if err != nil {
				return nil, err
			}
			expr = append(expr, item)
			continue
		}

		firstChar := []rune(arg)[0]
		if unicode.IsUpper(firstChar) && unicode.IsLetter(firstChar) {
			expr = append(expr, Item{UPOS: arg})
			continue
		}

		expr = append(expr, Item{Lemma: arg})
	}

	if len(expr) == 0 {
		return nil, errors.New("empty expression")
	}

	return expr, nil
}

func newItem(field, value string) (Item, error) {
	if value == "" {
		return Item{}, fmt.Errorf("empty value for field %q", field)
	}

	switch document.Field(field) {
	case document.FieldText:
		return Item{Text: value}, nil
	case document.FieldLemma:
		return Item{Lemma: value}, nil
	case document.FieldUPOS:
		return Item{UPOS: value}, nil
	case document.FieldDepRel:
		return Item{DepRel: value}, nil
	case document.FieldNER:
		return Item{NER: value}, nil
	}

	return Item{}, fmt.Errorf("unknown expression field %q", field)
}

// SentenceMatch is one matching sentence along with the words that satisfied
// the expression, one word per item.
type SentenceMatch struct {
	// DocID and SentID locate the sentence in the repository.
	DocID  int
	SentID int

	Sentence *document.Sentence

	Words []*document.Word
}

// Matcher matches sentences against one expression. A set of documents can
// be matched by repeated MatchDoc calls.
type Matcher struct {
	expr Expr
}

func NewMatcher(expr Expr) *Matcher {
	return &Matcher{
		expr: expr,
	}
}

// MatchDoc returns a match for every sentence of the document satisfying the
// expression, in sentence order.
func (m *Matcher) MatchDoc(d *document.Document, docID int) []*SentenceMatch {
	var matches []*SentenceMatch
	for i, s := range d.Sentences() {
		if sm := m.MatchSentence(s, docID, i); sm != nil {
			matches = append(matches, sm)
		}
	}

	return matches
}

// MatchSentence returns the sentence's match, or nil when some item of the
// expression matches none of its words.
func (m *Matcher) MatchSentence(s *document.Sentence, docID, sentID int) *SentenceMatch {
	words := make([]*document.Word, 0, len(m.expr))
	for _, item := range m.expr {
		w := matchOne(s.Words(), item)
		if w == nil {
			return nil
		}
		words = append(words, w)
	}

	return &SentenceMatch{
		DocID:    docID,
		SentID:   sentID,
		Sentence: s,
		Words:    words,
	}
}

// matchOne returns the first word satisfying the item.
func matchOne(words []*document.Word, item Item) *document.Word {
	for _, w := range words {
		if isWordMatch(w, item) {
			return w
		}
	}

	return nil
}

func isWordMatch(w *document.Word, item Item) bool {
	if !fieldMatch(w.Text, item.Text) {
		return false
	}

	if !fieldMatch(w.Lemma, item.Lemma) {
		return false
	}

	if !fieldMatch(w.UPOS, item.UPOS) {
		return false
	}

	if !fieldMatch(w.DepRel, item.DepRel) {
		return false
	}

	if !fieldMatch(w.NER, item.NER) {
		return false
	}

	return true
}

// fieldMatch checks one predicate value against a word field. An empty
// predicate always matches. A leading ! negates the whole check; |-separated
// alternatives are ORed.
func fieldMatch(value, predicate string) bool {
	if predicate == "" {
		return true
	}

	if negated := strings.TrimPrefix(predicate, "!"); negated != predicate {
		return !fieldMatch(value, negated)
	}

	for _, orValue := range strings.Split(predicate, "|") {
		if orValue == value {
			return true
		}
	}

	return false
}
