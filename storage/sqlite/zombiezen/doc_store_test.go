package zombiezen

import (
	"path/filepath"
	"testing"

	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/omichalon/stanza/document"
	"github.com/omichalon/stanza/storage"
)

func setupPool(t *testing.T) *sqlitex.Pool {
	t.Helper()
	pool, err := NewPool(filepath.Join(t.TempDir(), "docs.db"))
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	t.Cleanup(func() { pool.Close() })

	if err := CreateSchema(pool); err != nil {
		t.Fatalf("CreateSchema: %v", err)
	}
	return pool
}

func testDoc(t *testing.T) storage.Doc {
	t.Helper()
	d, err := document.New([][]document.Record{
		{
			{ID: "1", Text: "Kein", Misc: "start_char=0|end_char=4"},
			{ID: "2", Text: "Problem", Misc: "start_char=5|end_char=12"},
		},
		{
			{ID: "1", Text: "Gut", Misc: "start_char=14|end_char=17"},
			{ID: "2", Text: ".", Misc: "start_char=17|end_char=18"},
		},
	}, "Kein Problem. Gut.")
	if err != nil {
		t.Fatalf("document.New: %v", err)
	}
	return storage.NewDoc("problem.json", d)
}

func TestDocStoreWriteRead(t *testing.T) {
	store := NewDocStore(setupPool(t))

	if err := store.Write(testDoc(t)); err != nil {
		t.Fatalf("Write: %v", err)
	}

	docs, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 doc, got %d", len(docs))
	}
	if docs[0].ID != 1 || docs[0].Name != "problem.json" {
		t.Errorf("unexpected metadata %+v", docs[0])
	}

	doc, err := store.Read(1)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if doc.Text != "Kein Problem. Gut." {
		t.Errorf("unexpected text %q", doc.Text)
	}
	if len(doc.Sentences) != 2 {
		t.Fatalf("expected 2 sentences, got %d", len(doc.Sentences))
	}

	d, err := doc.Document()
	if err != nil {
		t.Fatalf("Document: %v", err)
	}
	if d.NumWords() != 4 {
		t.Errorf("expected 4 words, got %d", d.NumWords())
	}
	if got := d.Sentences()[1].Text(); got != "Gut." {
		t.Errorf("unexpected second sentence text %q", got)
	}
}

func TestDocStoreReadMissing(t *testing.T) {
	store := NewDocStore(setupPool(t))
	if _, err := store.Read(42); err == nil {
		t.Error("expected error for missing doc")
	}
}

func TestDocStoreWriteSeveral(t *testing.T) {
	store := NewDocStore(setupPool(t))

	for i := 0; i < 3; i++ {
		if err := store.Write(testDoc(t)); err != nil {
			t.Fatalf("Write %d: %v", i, err)
		}
	}
	docs, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("expected 3 docs, got %d", len(docs))
	}
	for i, doc := range docs {
		if doc.ID != i+1 {
			t.Errorf("expected sequential ids, got %d at %d", doc.ID, i)
		}
	}
}
