package main

import (
	"fmt"
	"os"

	"github.com/omichalon/stanza/document"
	"github.com/omichalon/stanza/storage"
	"github.com/omichalon/stanza/storage/filesystem"
	"github.com/omichalon/stanza/storage/sqlite/zombiezen"
)

// NewDocRepository opens the document repository at path. A directory is
// served from the filesystem; anything else is opened as a SQLite database.
func NewDocRepository(p *Pool, path string) (storage.DocRepository, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("repository not found: %s", path)
	}

	if info.IsDir() {
		return filesystem.NewDocStore(path)
	}

	pool, err := p.Open(path)
	if err != nil {
		return nil, err
	}
	return zombiezen.NewDocStore(pool), nil
}

// readDocument loads a stored document and rebuilds the in-memory model.
func readDocument(repo storage.DocReader, id int) (*document.Document, error) {
	doc, err := repo.Read(id)
	if err != nil {
		return nil, err
	}
	return doc.Document()
}
