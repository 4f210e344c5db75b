// Package filesystem stores documents as JSON files, one per document, in a
// flat directory. The store is read-only; writing happens through the sqlite
// backend.
package filesystem

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/omichalon/stanza/document"
	"github.com/omichalon/stanza/storage"
)

type DocStore struct {
	docDir string

	// metadata of the .json files found at construction, in directory order
	docs []storage.Doc
}

var _ storage.DocRepository = (*DocStore)(nil)

// NewDocStore creates a filesystem document store over docDir.
func NewDocStore(docDir string) (*DocStore, error) {
	files, err := os.ReadDir(docDir)
	if err != nil {
		return nil, err
	}

	docs := make([]storage.Doc, 0, len(files))
	idx := 0
	for _, file := range files {
		if filepath.Ext(file.Name()) == ".json" {
			docs = append(docs, storage.Doc{
				ID:   idx,
				Name: file.Name(),
			})
			idx++
		}
	}

	return &DocStore{
		docDir: docDir,
		docs:   docs,
	}, nil
}

func (s *DocStore) List() ([]storage.Doc, error) {
	return s.docs, nil
}

func (s *DocStore) Read(id int) (storage.Doc, error) {
	if id < 0 || id >= len(s.docs) {
		return storage.Doc{}, fmt.Errorf("doc id out of range: %d", id)
	}

	doc, err := ReadDoc(filepath.Join(s.docDir, s.docs[id].Name))
	if err != nil {
		return storage.Doc{}, err
	}
	doc.ID = id
	doc.Name = s.docs[id].Name
	return doc, nil
}

func (s *DocStore) Write(doc storage.Doc) error {
	return fmt.Errorf("read-only storage")
}

// ReadDoc reads a stored document from the given path. Both shapes produced
// by annotation pipelines are accepted: a document object carrying name and
// text, or a bare array of per-sentence record lists.
func ReadDoc(path string) (storage.Doc, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return storage.Doc{}, fmt.Errorf("IO error: %w", err)
	}

	data := bytes.TrimSpace(f)
	if len(data) > 0 && data[0] == '[' {
		var sentences [][]document.Record
		if err := json.Unmarshal(data, &sentences); err != nil {
			return storage.Doc{}, fmt.Errorf("JSON decoding error: %w", err)
		}
		return storage.Doc{Sentences: sentences}, nil
	}

	var doc storage.Doc
	if err := json.Unmarshal(data, &doc); err != nil {
		return storage.Doc{}, fmt.Errorf("JSON decoding error: %w", err)
	}
	return doc, nil
}
