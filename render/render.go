// Package render writes human- and machine-readable views of annotated
// documents.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/omichalon/stanza/document"
	"github.com/omichalon/stanza/match"
)

var (
	Black   = "\033[1;30m"
	Red     = "\033[1;31m"
	Green   = "\033[1;32m"
	Yellow  = "\033[0;33m"
	Purple  = "\033[1;34m"
	Magenta = "\033[1;35m"
	Teal    = "\033[1;36m"
	Gray    = "\033[0;37m"
	White   = "\033[1;37m"
	Off     = "\033[0m"

	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
	ClearLine = "\033[K"
)

// Renderer writes one view of a document.
type Renderer interface {
	Render(d *document.Document) error
}

// TextRenderer writes plain-text views of documents, sentences and
// entities, optionally colored.
type TextRenderer struct {
	W        io.Writer
	HasColor bool
}

// compile-time interface check
var _ Renderer = (*TextRenderer)(nil)

// NewTextRenderer creates a TextRenderer writing to w.
func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{W: w}
}

// Render writes every sentence of the document, one numbered line per
// sentence.
func (r *TextRenderer) Render(d *document.Document) error {
	for i, s := range d.Sentences() {
		r.Sentence(s, fmt.Sprintf("✍  %d ", i))
	}
	return nil
}

// Sentence writes the sentence text after the prefix. When the raw text is
// unknown it falls back to the space-joined word texts.
func (r *TextRenderer) Sentence(s *document.Sentence, prefix string) {
	fmt.Fprintf(r.W, "%s%s\n", prefix, strings.ReplaceAll(sentenceText(s), "\n", " "))
}

// Words writes one aligned line per word: text, lemma, upos, id, head,
// deprel and ner.
func (r *TextRenderer) Words(s *document.Sentence) {
	for _, w := range s.Words() {
		head := document.NullValue
		if w.Head != nil {
			head = strconv.Itoa(*w.Head)
		}
		fmt.Fprintf(r.W, "%20q %15q %8s %6d %6s %8s %s\n",
			w.Text, orNull(w.Lemma), orNull(w.UPOS), w.ID, head, orNull(w.DepRel), w.NER)
	}
}

// Dependencies writes one (dependent, head id, relation) triple per edge of
// the sentence parse.
func (r *TextRenderer) Dependencies(s *document.Sentence) {
	for _, e := range s.Dependencies() {
		fmt.Fprintf(r.W, "('%s', %d, '%s')\n", e.Dep.Text, e.Head.ID, e.Rel)
	}
}

// Entities writes one line per entity span: type, character range and text.
func (r *TextRenderer) Entities(d *document.Document) {
	for _, sp := range d.Entities() {
		st, _ := sp.StartChar()
		en, _ := sp.EndChar()
		typ := fmt.Sprintf("%-8s", sp.Type())
		fmt.Fprintf(r.W, "🏷  %s %4d-%-4d %s\n", r.color(Yellow256, typ), st, en, spanText(sp))
	}
}

// Match writes one line per matched sentence: a doc and sentence locator
// followed by the sentence words, the matching ones colored.
func (r *TextRenderer) Match(ms []*match.SentenceMatch) {
	for _, m := range ms {
		prefix := fmt.Sprintf("[%2d %5d] ✍  ", m.DocID, m.SentID)
		fmt.Fprintf(r.W, "%s%s\n", prefix, r.matchText(m))
	}
}

func (r *TextRenderer) matchText(m *match.SentenceMatch) string {
	texts := []string{}
	for _, w := range m.Sentence.Words() {
		texts = append(texts, r.colorWord(w, m.Words))
	}
	return strings.Join(texts, " ")
}

func (r *TextRenderer) colorWord(w *document.Word, matches []*document.Word) string {
	if !r.HasColor {
		return w.Text
	}

	for _, mw := range matches {
		if mw == w {
			return Green256 + w.Text + Off
		}
	}

	return w.Text
}

func (r *TextRenderer) color(code, s string) string {
	if !r.HasColor {
		return s
	}
	return code + s + Off
}

func sentenceText(s *document.Sentence) string {
	if s.Text() != "" {
		return s.Text()
	}
	texts := []string{}
	for _, w := range s.Words() {
		texts = append(texts, w.Text)
	}
	return strings.Join(texts, " ")
}

func spanText(sp *document.Span) string {
	if sp.Text() != "" {
		return sp.Text()
	}
	texts := []string{}
	for _, w := range sp.Words() {
		texts = append(texts, w.Text)
	}
	return strings.Join(texts, " ")
}

func orNull(v string) string {
	if v == "" {
		return document.NullValue
	}
	return v
}
