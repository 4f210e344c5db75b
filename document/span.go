package document

import (
	"errors"
	"fmt"
)

// Span is a typed region of the document, usually a named entity. A span
// built from words keeps the words and derives its character range from
// their parent tokens; a span built from a record trusts the record's text,
// type and range as given.
type Span struct {
	doc       *Document
	text      string
	typ       string
	startChar *int
	endChar   *int
	words     []*Word
}

var (
	errSpanDoc   = errors.New("span needs a parent document")
	errSpanWords = errors.New("span needs at least one word")
)

// NewSpan builds a span directly from a record.
func NewSpan(rec Record, doc *Document) (*Span, error) {
	if doc == nil {
		return nil, errSpanDoc
	}
	sp := &Span{
		doc:  doc,
		text: rec.Text,
		typ:  rec.Type,
	}
	if rec.StartChar != nil {
		v := *rec.StartChar
		sp.startChar = &v
	}
	if rec.EndChar != nil {
		v := *rec.EndChar
		sp.endChar = &v
	}
	return sp, nil
}

// NewSpanFromWords builds a span covering words already attached to doc. The
// span's character range comes from the first word's token start and the
// last word's token end, and its text is the document text over that range.
func NewSpanFromWords(words []*Word, typ string, doc *Document) (*Span, error) {
	if doc == nil {
		return nil, errSpanDoc
	}
	if len(words) == 0 {
		return nil, errSpanWords
	}
	return spanFromWords(words, typ, doc), nil
}

// spanFromWords builds without precondition checks; callers guarantee a
// non-empty word list and a non-nil document. Missing token offsets leave
// the range and text unset rather than failing the whole span.
func spanFromWords(words []*Word, typ string, doc *Document) *Span {
	sp := &Span{
		doc:   doc,
		typ:   typ,
		words: words,
	}
	first, last := words[0].Parent(), words[len(words)-1].Parent()
	if first == nil || last == nil {
		return sp
	}
	st, ok := first.StartChar()
	if !ok {
		return sp
	}
	en, ok := last.EndChar()
	if !ok {
		return sp
	}
	sp.startChar = &st
	sp.endChar = &en
	sp.text = runeSlice(doc.Text(), st, en)
	return sp
}

// Text returns the surface text the span covers.
func (sp *Span) Text() string {
	return sp.text
}

// Type returns the span's label, e.g. an entity type like "PER".
func (sp *Span) Type() string {
	return sp.typ
}

// StartChar returns the span's start offset into the document text, in
// runes. The second result is false when the offset is unknown.
func (sp *Span) StartChar() (int, bool) {
	if sp.startChar == nil {
		return 0, false
	}
	return *sp.startChar, true
}

// EndChar returns the span's end offset into the document text, in runes.
// The second result is false when the offset is unknown.
func (sp *Span) EndChar() (int, bool) {
	if sp.endChar == nil {
		return 0, false
	}
	return *sp.endChar, true
}

// Words returns the words the span covers, or nil for a span built from a
// record.
func (sp *Span) Words() []*Word {
	return sp.words
}

// Doc returns the document the span belongs to.
func (sp *Span) Doc() *Document {
	return sp.doc
}

// toRecord projects the span into the serialized form.
func (sp *Span) toRecord() Record {
	rec := Record{
		Text: sp.text,
		Type: sp.typ,
	}
	if sp.startChar != nil {
		v := *sp.startChar
		rec.StartChar = &v
	}
	if sp.endChar != nil {
		v := *sp.endChar
		rec.EndChar = &v
	}
	return rec
}

// String gives the one-line debug form.
func (sp *Span) String() string {
	st, _ := sp.StartChar()
	en, _ := sp.EndChar()
	return fmt.Sprintf("<Span text=%s;type=%s;start_char=%d;end_char=%d>", sp.text, sp.typ, st, en)
}
