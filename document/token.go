package document

import (
	"fmt"
	"strconv"
	"strings"
)

// Token is one surface token. A token usually owns exactly one word; a
// multi-word token owns the several words it expands into, and an unexpanded
// one owns none yet. Character offsets, when known, travel in the misc field
// and are materialized at construction.
type Token struct {
	ID   string
	Text string
	Misc string

	words     []*Word
	startChar *int
	endChar   *int
}

// tokenMiscFields maps the misc keys that materialize as structured token
// attributes to their setters.
var tokenMiscFields = map[string]func(*Token, string) error{
	string(FieldStartChar): func(t *Token, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		t.startChar = &n
		return nil
	},
	string(FieldEndChar): func(t *Token, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		t.endChar = &n
		return nil
	},
}

// NewToken builds a token from its record and claims the given words. The
// record must carry both id and text.
func NewToken(rec Record, words ...*Word) (*Token, error) {
	if rec.ID == "" || rec.Text == "" {
		return nil, fmt.Errorf("token record needs id and text, got %+v", rec)
	}
	t := &Token{
		ID:   rec.ID,
		Text: rec.Text,
		Misc: clean(rec.Misc),
	}
	if t.Misc != "" {
		if err := t.initFromMisc(); err != nil {
			return nil, err
		}
	}
	t.SetWords(words)
	return t, nil
}

// initFromMisc materializes recognized key=value entries from the misc
// field. Entries without "=" or with unrecognized keys are left alone.
func (t *Token) initFromMisc() error {
	for _, item := range strings.Split(t.Misc, "|") {
		key, value, ok := strings.Cut(item, "=")
		if !ok {
			continue
		}
		set, ok := tokenMiscFields[key]
		if !ok {
			continue
		}
		if err := set(t, value); err != nil {
			return fmt.Errorf("token %s misc %s=%q: %w", t.ID, key, value, err)
		}
	}
	return nil
}

// Words returns the words the token expands into.
func (t *Token) Words() []*Word {
	return t.words
}

// SetWords replaces the token's word list. This is the only path by which a
// word acquires its parent token.
func (t *Token) SetWords(words []*Word) {
	t.words = words
	for _, w := range t.words {
		w.parent = t
	}
}

// appendWord attaches one more word to the token, claiming parenthood.
func (t *Token) appendWord(w *Word) {
	t.words = append(t.words, w)
	w.parent = t
}

// IsMWT reports whether the token actually expands into several words.
func (t *Token) IsMWT() bool {
	return len(t.words) > 1
}

// mwtMarked reports whether the token is flagged for multi-word expansion:
// either its id covers a range or its misc carries the marker.
func (t *Token) mwtMarked() bool {
	return rangeID.MatchString(t.ID) || hasMWTMarker(t.Misc)
}

// StartChar returns the token's start offset into the document text, in
// runes. The second result is false when the offset is unknown.
func (t *Token) StartChar() (int, bool) {
	if t.startChar == nil {
		return 0, false
	}
	return *t.startChar, true
}

// EndChar returns the token's end offset into the document text, in runes.
// The second result is false when the offset is unknown.
func (t *Token) EndChar() (int, bool) {
	if t.endChar == nil {
		return 0, false
	}
	return *t.endChar, true
}

// ToRecords serializes the token. A token owning exactly one word collapses
// into that word's record; otherwise a token record precedes the word
// records, so the multi-word grouping survives a round trip.
func (t *Token) ToRecords() []Record {
	var recs []Record
	if len(t.words) != 1 {
		recs = append(recs, Record{ID: t.ID, Text: t.Text, Misc: t.Misc})
	}
	for _, w := range t.words {
		recs = append(recs, w.toRecord())
	}
	return recs
}

// String gives the one-line debug form, listing the token's words.
func (t *Token) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "<Token id=%s;words=[", t.ID)
	for i, w := range t.words {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(w.String())
	}
	b.WriteString("]>")
	return b.String()
}
