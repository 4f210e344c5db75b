// Package storage defines how annotated documents are persisted and loaded.
// The document model itself never touches storage; repositories move its
// serialized record form in and out of a backing store.
package storage

import (
	"github.com/omichalon/stanza/document"
)

// Doc is the stored form of an annotated document: a name, the raw text and
// the per-sentence record lists the model serializes to.
type Doc struct {
	ID        int                 `json:"id,omitempty"`
	Name      string              `json:"name,omitempty"`
	Text      string              `json:"text,omitempty"`
	Sentences [][]document.Record `json:"sentences"`
}

// NewDoc snapshots a document into its stored form.
func NewDoc(name string, d *document.Document) Doc {
	return Doc{
		Name:      name,
		Text:      d.Text(),
		Sentences: d.ToRecords(),
	}
}

// Document builds the in-memory model back from the stored form.
func (d Doc) Document() (*document.Document, error) {
	return document.New(d.Sentences, d.Text)
}

// DocReader defines read operations for document storage
type DocReader interface {
	// List returns the metadata (ID, Name) of stored documents.
	// Sentence records are not loaded.
	List() ([]Doc, error)

	// Read returns a full document by id
	Read(id int) (Doc, error)
}

// DocWriter defines write operations for document storage
type DocWriter interface {
	// Write persists a document and its sentences to storage
	Write(doc Doc) error
}

// DocRepository combines read and write operations
type DocRepository interface {
	DocReader
	DocWriter
}
