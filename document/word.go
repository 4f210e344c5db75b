package document

import (
	"fmt"
	"strconv"
	"strings"
)

// Word is one syntactic word: the unit dependency relations and most
// annotation layers attach to. Words carry 1-based ids that are dense within
// their sentence. String fields hold "" when unset; Head is nil when unset
// and 0 when the word attaches to the root.
type Word struct {
	ID     int
	Text   string
	Lemma  string
	UPOS   string
	XPOS   string
	Feats  string
	Head   *int
	DepRel string
	Deps   string
	Misc   string
	NER    string

	parent *Token
}

// NewWord builds a word from its record. The record must carry both id and
// text; every other field is optional, and the null placeholder reads as
// unset.
func NewWord(rec Record) (*Word, error) {
	if rec.ID == "" || rec.Text == "" {
		return nil, fmt.Errorf("word record needs id and text, got %+v", rec)
	}
	id, err := strconv.Atoi(rec.ID)
	if err != nil {
		return nil, fmt.Errorf("word id %q: %w", rec.ID, err)
	}
	w := &Word{
		ID:     id,
		Text:   rec.Text,
		UPOS:   clean(rec.UPOS),
		XPOS:   clean(rec.XPOS),
		Feats:  clean(rec.Feats),
		DepRel: clean(rec.DepRel),
		Deps:   clean(rec.Deps),
		Misc:   clean(rec.Misc),
		NER:    clean(rec.NER),
	}
	w.SetLemma(rec.Lemma)
	if rec.Head != nil {
		h := *rec.Head
		w.Head = &h
	}
	return w, nil
}

// SetLemma stores the lemma. A placeholder lemma is kept verbatim when the
// text itself is the placeholder character, since an actual underscore word
// lemmatizes to itself; otherwise the placeholder means unset.
func (w *Word) SetLemma(value string) {
	if isNull(value) && w.Text != NullValue {
		w.Lemma = ""
		return
	}
	w.Lemma = value
}

// SetHead parses and stores the head id from its string form. The null
// placeholder clears it.
func (w *Word) SetHead(value string) error {
	if isNull(value) {
		w.Head = nil
		return nil
	}
	h, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("word head %q: %w", value, err)
	}
	w.Head = &h
	return nil
}

// Parent returns the surface token the word belongs to, or nil for a word
// not yet claimed by a token.
func (w *Word) Parent() *Token {
	return w.parent
}

// toRecord projects the word's set fields into the serialized form.
func (w *Word) toRecord() Record {
	rec := Record{
		ID:     strconv.Itoa(w.ID),
		Text:   w.Text,
		Lemma:  w.Lemma,
		UPOS:   w.UPOS,
		XPOS:   w.XPOS,
		Feats:  w.Feats,
		DepRel: w.DepRel,
		Deps:   w.Deps,
		Misc:   w.Misc,
		NER:    w.NER,
	}
	if w.Head != nil {
		h := *w.Head
		rec.Head = &h
	}
	return rec
}

// String gives the one-line debug form, listing the set fields up to the
// dependency relation.
func (w *Word) String() string {
	var b strings.Builder
	b.WriteString("<Word ")
	first := true
	for _, f := range []Field{FieldID, FieldText, FieldLemma, FieldUPOS, FieldXPOS, FieldFeats, FieldHead, FieldDepRel} {
		v := wordFieldGet[f](w)
		if v == "" {
			continue
		}
		if !first {
			b.WriteString(";")
		}
		fmt.Fprintf(&b, "%s=%s", f, v)
		first = false
	}
	b.WriteString(">")
	return b.String()
}

// wordFieldGet projects one word field into its string form; unset fields
// project as "". The table fixes the set of fields Get understands.
var wordFieldGet = map[Field]func(*Word) string{
	FieldID:    func(w *Word) string { return strconv.Itoa(w.ID) },
	FieldText:  func(w *Word) string { return w.Text },
	FieldLemma: func(w *Word) string { return w.Lemma },
	FieldUPOS:  func(w *Word) string { return w.UPOS },
	FieldXPOS:  func(w *Word) string { return w.XPOS },
	FieldFeats: func(w *Word) string { return w.Feats },
	FieldHead: func(w *Word) string {
		if w.Head == nil {
			return ""
		}
		return strconv.Itoa(*w.Head)
	},
	FieldDepRel: func(w *Word) string { return w.DepRel },
	FieldDeps:   func(w *Word) string { return w.Deps },
	FieldMisc:   func(w *Word) string { return w.Misc },
	FieldNER:    func(w *Word) string { return w.NER },
}

// wordFieldSet writes one word field from its string form, normalizing the
// null placeholder to unset. The table fixes the set of fields Set
// understands.
var wordFieldSet = map[Field]func(*Word, string) error{
	FieldID: func(w *Word, v string) error {
		id, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("word id %q: %w", v, err)
		}
		w.ID = id
		return nil
	},
	FieldText: func(w *Word, v string) error {
		w.Text = v
		return nil
	},
	FieldLemma: func(w *Word, v string) error {
		w.SetLemma(v)
		return nil
	},
	FieldUPOS: func(w *Word, v string) error {
		w.UPOS = clean(v)
		return nil
	},
	FieldXPOS: func(w *Word, v string) error {
		w.XPOS = clean(v)
		return nil
	},
	FieldFeats: func(w *Word, v string) error {
		w.Feats = clean(v)
		return nil
	},
	FieldHead: func(w *Word, v string) error {
		return w.SetHead(v)
	},
	FieldDepRel: func(w *Word, v string) error {
		w.DepRel = clean(v)
		return nil
	},
	FieldDeps: func(w *Word, v string) error {
		w.Deps = clean(v)
		return nil
	},
	FieldMisc: func(w *Word, v string) error {
		w.Misc = clean(v)
		return nil
	},
	FieldNER: func(w *Word, v string) error {
		w.NER = clean(v)
		return nil
	},
}
