// Package document holds the in-memory model for annotated text: a Document
// of Sentences, each partitioned into surface Tokens and syntactic Words,
// plus entity Spans derived from NER tags. Annotators read and write the
// model through field projections (Get/Set) and the expansion and entity
// builders; the model itself never touches files or databases.
package document

import (
	"regexp"
	"strings"
)

// Field names a per-unit annotation field. The names double as the JSON keys
// of the serialized form.
type Field string

const (
	FieldID        Field = "id"
	FieldText      Field = "text"
	FieldLemma     Field = "lemma"
	FieldUPOS      Field = "upos"
	FieldXPOS      Field = "xpos"
	FieldFeats     Field = "feats"
	FieldHead      Field = "head"
	FieldDepRel    Field = "deprel"
	FieldDeps      Field = "deps"
	FieldMisc      Field = "misc"
	FieldNER       Field = "ner"
	FieldStartChar Field = "start_char"
	FieldEndChar   Field = "end_char"
	FieldType      Field = "type"
)

// NullValue is the placeholder annotation sources use for an absent field.
// The model normalizes it to the zero value on the way in and never stores
// it, except for a word whose text is itself the placeholder character.
const NullValue = "_"

// MWTMarker is the misc entry that flags a token for multi-word expansion.
const MWTMarker = "MWT=Yes"

// Record is the uniform construction and serialization shape for every unit.
// Empty strings and nil pointers mean "unset"; string fields may also carry
// NullValue, which constructors normalize away. Head is a pointer because 0
// is a real value (the syntactic root) distinct from unset.
type Record struct {
	ID        string `json:"id,omitempty"`
	Text      string `json:"text,omitempty"`
	Lemma     string `json:"lemma,omitempty"`
	UPOS      string `json:"upos,omitempty"`
	XPOS      string `json:"xpos,omitempty"`
	Feats     string `json:"feats,omitempty"`
	Head      *int   `json:"head,omitempty"`
	DepRel    string `json:"deprel,omitempty"`
	Deps      string `json:"deps,omitempty"`
	Misc      string `json:"misc,omitempty"`
	NER       string `json:"ner,omitempty"`
	StartChar *int   `json:"start_char,omitempty"`
	EndChar   *int   `json:"end_char,omitempty"`
	Type      string `json:"type,omitempty"`
}

// rangeID matches the id of a token covering several words, e.g. "3-4".
var rangeID = regexp.MustCompile(`^([0-9]+)-([0-9]+)$`)

// isNull reports whether a raw field value means "unset".
func isNull(value string) bool {
	return value == "" || value == NullValue
}

// clean normalizes a raw field value, mapping the null placeholder to unset.
func clean(value string) string {
	if isNull(value) {
		return ""
	}
	return value
}

// hasMWTMarker reports whether one of the |-separated misc entries is
// exactly the multi-word marker.
func hasMWTMarker(misc string) bool {
	if misc == "" {
		return false
	}
	for _, part := range strings.Split(misc, "|") {
		if part == MWTMarker {
			return true
		}
	}
	return false
}

// stripMWTMarker removes the multi-word marker from a misc value, dropping
// the value entirely when the marker was its only content.
func stripMWTMarker(misc string) string {
	if misc == "" || misc == MWTMarker {
		return ""
	}
	parts := strings.Split(misc, "|")
	kept := parts[:0]
	for _, p := range parts {
		if p != MWTMarker {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "|")
}

// runeSlice returns s[start:end] counted in runes, the unit character
// offsets are expressed in. Out-of-range bounds clamp to the text.
func runeSlice(s string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end < start {
		return ""
	}
	pos := 0
	from, to := len(s), len(s)
	for i := range s {
		if pos == start {
			from = i
		}
		if pos == end {
			to = i
			break
		}
		pos++
	}
	if from > to {
		return ""
	}
	return s[from:to]
}
