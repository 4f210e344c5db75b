package zombiezen

import (
	"context"
	"encoding/json"
	"fmt"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/omichalon/stanza/document"
	"github.com/omichalon/stanza/storage"
)

type DocStore struct {
	pool *sqlitex.Pool
}

var _ storage.DocRepository = (*DocStore)(nil)

func NewDocStore(pool *sqlitex.Pool) *DocStore {
	return &DocStore{pool: pool}
}

func (s *DocStore) List() ([]storage.Doc, error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer s.pool.Put(conn)

	var docs []storage.Doc
	err = sqlitex.Execute(conn, "SELECT id, name FROM docs ORDER BY id", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			docs = append(docs, storage.Doc{
				ID:   stmt.ColumnInt(0),
				Name: stmt.ColumnText(1),
			})
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (s *DocStore) Read(id int) (storage.Doc, error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return storage.Doc{}, err
	}
	defer s.pool.Put(conn)

	doc := storage.Doc{ID: id}
	found := false

	err = sqlitex.Execute(conn, "SELECT name, text FROM docs WHERE id = ?", &sqlitex.ExecOptions{
		Args: []interface{}{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			found = true
			doc.Name = stmt.ColumnText(0)
			doc.Text = stmt.ColumnText(1)
			return nil
		},
	})
	if err != nil {
		return storage.Doc{}, err
	}
	if !found {
		return storage.Doc{}, fmt.Errorf("doc not found: %d", id)
	}

	err = sqlitex.Execute(conn, "SELECT data FROM sentences WHERE doc_id = ? ORDER BY rowid", &sqlitex.ExecOptions{
		Args: []interface{}{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			var records []document.Record
			if err := json.Unmarshal([]byte(stmt.ColumnText(0)), &records); err != nil {
				return err
			}
			doc.Sentences = append(doc.Sentences, records)
			return nil
		},
	})
	if err != nil {
		return storage.Doc{}, err
	}

	return doc, nil
}

// Write persists the document inside one transaction, one sentences row per
// sentence record list.
func (s *DocStore) Write(doc storage.Doc) (err error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer s.pool.Put(conn)

	defer sqlitex.Save(conn)(&err)

	err = sqlitex.Execute(conn, "INSERT INTO docs (name, text) VALUES (?, ?)", &sqlitex.ExecOptions{
		Args: []interface{}{doc.Name, doc.Text},
	})
	if err != nil {
		return fmt.Errorf("failed to insert doc: %w", err)
	}
	docID := conn.LastInsertRowID()

	for _, records := range doc.Sentences {
		data, marshalErr := json.Marshal(records)
		if marshalErr != nil {
			return marshalErr
		}

		err = sqlitex.Execute(conn, "INSERT INTO sentences (doc_id, data) VALUES (?, ?)", &sqlitex.ExecOptions{
			Args: []interface{}{docID, string(data)},
		})
		if err != nil {
			return fmt.Errorf("failed to insert sentence: %w", err)
		}
	}

	return nil
}
