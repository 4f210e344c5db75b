package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"strings"
)

var (
	// ErrNoFields is returned by the field projections when no field names
	// are given.
	ErrNoFields = errors.New("at least one field required")

	// ErrLengthMismatch is returned by Set when the number of value rows
	// differs from the document's word count.
	ErrLengthMismatch = errors.New("contents do not match word count")

	// ErrExpansionCount is returned by SetMWTExpansions when the number of
	// expansions differs from the number of tokens awaiting one.
	ErrExpansionCount = errors.New("expansions do not match multi-word tokens")
)

// Document is a whole annotated text: sentences over an optional raw text,
// with a word count and an entity list derived from them. Annotators
// exchange data with the document through Get, Set and the builders; the
// document never reads or writes storage itself.
type Document struct {
	sentences []*Sentence
	text      string
	numWords  int
	ents      []*Span
}

// New builds a document from per-sentence record lists, the same shape
// ToRecords produces. text is the raw text the records annotate; pass ""
// when it is unavailable. Sentence texts are sliced out of the raw text
// wherever the boundary tokens carry character offsets.
func New(sentences [][]Record, text string) (*Document, error) {
	d := &Document{text: text}
	if err := d.processSentences(sentences); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Document) processSentences(sentences [][]Record) error {
	d.sentences = nil
	for _, records := range sentences {
		s, err := NewSentence(records)
		if err != nil {
			return err
		}
		d.sentences = append(d.sentences, s)
		if d.text == "" || len(s.tokens) == 0 {
			continue
		}
		st, ok := s.tokens[0].StartChar()
		if !ok {
			continue
		}
		en, ok := s.tokens[len(s.tokens)-1].EndChar()
		if !ok {
			continue
		}
		s.text = runeSlice(d.text, st, en)
	}
	n := 0
	for _, s := range d.sentences {
		n += len(s.words)
	}
	d.numWords = n
	return nil
}

// Sentences returns the document's sentences in order.
func (d *Document) Sentences() []*Sentence {
	return d.sentences
}

// Text returns the raw document text, or "" when unknown.
func (d *Document) Text() string {
	return d.text
}

// NumWords returns the number of words across all sentences.
func (d *Document) NumWords() int {
	return d.numWords
}

// Entities returns the spans found by the last BuildEntities call.
func (d *Document) Entities() []*Span {
	return d.ents
}

// Words iterates over every word in the document, sentence by sentence.
func (d *Document) Words() iter.Seq[*Word] {
	return func(yield func(*Word) bool) {
		for _, s := range d.sentences {
			for _, w := range s.words {
				if !yield(w) {
					return
				}
			}
		}
	}
}

// Tokens iterates over every token in the document, sentence by sentence.
func (d *Document) Tokens() iter.Seq[*Token] {
	return func(yield func(*Token) bool) {
		for _, s := range d.sentences {
			for _, t := range s.tokens {
				if !yield(t) {
					return
				}
			}
		}
	}
}

// Get projects the given fields for every word in document order, one row
// per word. Unset fields project as "". Words, not surface tokens, are the
// unit of projection, so rows line up with Set and with NumWords.
func (d *Document) Get(fields []Field) ([][]string, error) {
	getters, err := fieldGetters(fields)
	if err != nil {
		return nil, err
	}
	rows := make([][]string, 0, d.numWords)
	for w := range d.Words() {
		rows = append(rows, project(w, getters))
	}
	return rows, nil
}

// GetBySentence projects like Get but keeps the rows grouped per sentence.
func (d *Document) GetBySentence(fields []Field) ([][][]string, error) {
	getters, err := fieldGetters(fields)
	if err != nil {
		return nil, err
	}
	out := make([][][]string, len(d.sentences))
	for i, s := range d.sentences {
		rows := make([][]string, len(s.words))
		for j, w := range s.words {
			rows[j] = project(w, getters)
		}
		out[i] = rows
	}
	return out, nil
}

// GetField projects a single field for every word in document order.
func (d *Document) GetField(field Field) ([]string, error) {
	rows, err := d.Get([]Field{field})
	if err != nil {
		return nil, err
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = row[0]
	}
	return out, nil
}

// Set writes one row of field values per word, in the same document order
// Get reads. The row count must equal NumWords and every row must cover
// every field. The null placeholder clears a field. A write touching id,
// head or deprel invalidates the partition or the dependency graphs, so Set
// rebuilds the document itself before returning; writes to other fields
// leave existing structure alone.
func (d *Document) Set(fields []Field, contents [][]string) error {
	setters, err := fieldSetters(fields)
	if err != nil {
		return err
	}
	if len(contents) != d.numWords {
		return fmt.Errorf("%w: %d rows for %d words", ErrLengthMismatch, len(contents), d.numWords)
	}
	for i, row := range contents {
		if len(row) != len(fields) {
			return fmt.Errorf("row %d: %d values for %d fields", i, len(row), len(fields))
		}
	}
	i := 0
	for w := range d.Words() {
		for j, set := range setters {
			if err := set(w, contents[i][j]); err != nil {
				return err
			}
		}
		i++
	}
	for _, f := range fields {
		if f == FieldID || f == FieldHead || f == FieldDepRel {
			return d.Rebuild()
		}
	}
	return nil
}

// SetField writes a single field for every word in document order.
func (d *Document) SetField(field Field, contents []string) error {
	rows := make([][]string, len(contents))
	for i, v := range contents {
		rows[i] = []string{v}
	}
	return d.Set([]Field{field}, rows)
}

func fieldGetters(fields []Field) ([]func(*Word) string, error) {
	if len(fields) == 0 {
		return nil, ErrNoFields
	}
	getters := make([]func(*Word) string, len(fields))
	for i, f := range fields {
		g, ok := wordFieldGet[f]
		if !ok {
			return nil, fmt.Errorf("unknown word field %q", f)
		}
		getters[i] = g
	}
	return getters, nil
}

func fieldSetters(fields []Field) ([]func(*Word, string) error, error) {
	if len(fields) == 0 {
		return nil, ErrNoFields
	}
	setters := make([]func(*Word, string) error, len(fields))
	for i, f := range fields {
		s, ok := wordFieldSet[f]
		if !ok {
			return nil, fmt.Errorf("unknown word field %q", f)
		}
		setters[i] = s
	}
	return setters, nil
}

func project(w *Word, getters []func(*Word) string) []string {
	row := make([]string, len(getters))
	for i, g := range getters {
		row[i] = g(w)
	}
	return row
}

// Expansion pairs a multi-word token's surface text with the space-joined
// texts of the words it expands into.
type Expansion struct {
	Token string
	Words string
}

// MWTExpansions lists the expansion of every token flagged as multi-word, in
// document order. With evaluation set only the surface side is filled, for
// annotators predicting expansions against it.
func (d *Document) MWTExpansions(evaluation bool) []Expansion {
	var out []Expansion
	for t := range d.Tokens() {
		if !t.mwtMarked() {
			continue
		}
		e := Expansion{Token: t.Text}
		if !evaluation {
			texts := make([]string, len(t.words))
			for i, w := range t.words {
				texts[i] = w.Text
			}
			e.Words = strings.Join(texts, " ")
		}
		out = append(out, e)
	}
	return out
}

// SetMWTExpansions hands one expansion, in document order, to every token
// flagged as multi-word. The token's words are replaced by one bare word per
// whitespace-separated part of the expansion, its id becomes the covered
// range and the expansion marker leaves its misc. Words of unflagged tokens
// are renumbered to keep ids dense and lose their head and deprel, since the
// renumbering invalidates them. The expansion count is checked before
// anything is mutated; afterwards every sentence and the document are
// rebuilt.
func (d *Document) SetMWTExpansions(expansions []string) error {
	want := 0
	for t := range d.Tokens() {
		if t.mwtMarked() {
			want++
		}
	}
	if want != len(expansions) {
		return fmt.Errorf("%w: %d expansions for %d tokens", ErrExpansionCount, len(expansions), want)
	}

	idxE := 0
	for _, s := range d.sentences {
		idxW := 0
		for _, t := range s.tokens {
			idxW++
			if !t.mwtMarked() {
				for _, w := range t.words {
					w.ID = idxW
					w.Head = nil
					w.DepRel = ""
				}
				continue
			}
			parts := strings.Fields(expansions[idxE])
			idxE++
			end := idxW + len(parts) - 1
			t.ID = fmt.Sprintf("%d-%d", idxW, end)
			t.Misc = stripMWTMarker(t.Misc)
			words := make([]*Word, len(parts))
			for i, text := range parts {
				words[i] = &Word{ID: idxW + i, Text: text}
			}
			t.SetWords(words)
			idxW = end
		}
		if err := s.Rebuild(); err != nil {
			return err
		}
	}
	return d.Rebuild()
}

// BuildEntities rebuilds the document's entity list by decoding each word's
// BIOES-style NER tag and returns the entity count. A tag's prefix drives
// the scan: B and S open a fresh entity, I and E extend the running one, O
// and unset close it. E and S also close. An entity never outlives its
// sentence. The type is taken from the last tag seen, so mid-entity type
// drift resolves to the final type.
func (d *Document) BuildEntities() int {
	d.ents = nil
	var entWords []*Word
	entType := ""
	flush := func() {
		if len(entWords) == 0 {
			return
		}
		d.ents = append(d.ents, spanFromWords(entWords, entType, d))
		entWords = nil
	}
	for _, s := range d.sentences {
		for _, w := range s.words {
			tag := w.NER
			switch {
			case tag == "" || tag == "O":
				flush()
			case strings.HasPrefix(tag, "B-"), strings.HasPrefix(tag, "S-"):
				flush()
				entWords = []*Word{w}
				entType = tag[2:]
				if tag[0] == 'S' {
					flush()
				}
			case strings.HasPrefix(tag, "I-"), strings.HasPrefix(tag, "E-"):
				entWords = append(entWords, w)
				entType = tag[2:]
				if tag[0] == 'E' {
					flush()
				}
			}
		}
		flush()
	}
	return len(d.ents)
}

// ToRecords serializes the document into per-sentence record lists, the same
// shape New consumes. Only set fields appear in each record.
func (d *Document) ToRecords() [][]Record {
	out := make([][]Record, len(d.sentences))
	for i, s := range d.sentences {
		out[i] = s.ToRecords()
	}
	return out
}

// Rebuild re-derives every sentence and the word count from the document's
// current serialized form. Call it after mutations Set cannot see through,
// like id renumbering done field by field.
func (d *Document) Rebuild() error {
	return d.processSentences(d.ToRecords())
}

func (d *Document) String() string {
	b, _ := json.MarshalIndent(d.ToRecords(), "", "  ")
	return string(b)
}
