package stat

import (
	"testing"

	"github.com/omichalon/stanza/document"
)

func intp(n int) *int {
	return &n
}

// no dependency or entity annotation, one multi-word token
func frenchDoc(t *testing.T) *document.Document {
	t.Helper()
	records := [][]document.Record{
		{
			{ID: "1", Text: "La"},
			{ID: "2", Text: "fin"},
			{ID: "3-4", Text: "du"},
			{ID: "3", Text: "de"},
			{ID: "4", Text: "le"},
			{ID: "5", Text: "sentier"},
			{ID: "6", Text: "."},
		},
	}
	d, err := document.New(records, "La fin du sentier.")
	if err != nil {
		t.Fatalf("failed to build document: %v", err)
	}
	return d
}

func englishDoc(t *testing.T) *document.Document {
	t.Helper()
	records := [][]document.Record{
		{
			{ID: "1", Text: "John", UPOS: "PROPN", Head: intp(2), DepRel: "nsubj", NER: "S-PER", Misc: "start_char=0|end_char=4"},
			{ID: "2", Text: "reads", UPOS: "VERB", Head: intp(0), DepRel: "root", NER: "O", Misc: "start_char=5|end_char=10"},
			{ID: "3", Text: "books", UPOS: "NOUN", Head: intp(2), DepRel: "obj", NER: "O", Misc: "start_char=11|end_char=16"},
		},
	}
	d, err := document.New(records, "John reads books")
	if err != nil {
		t.Fatalf("failed to build document: %v", err)
	}
	return d
}

func TestAggregate(t *testing.T) {
	h := NewHandler()
	h.Aggregate(frenchDoc(t))

	stats := h.Get()
	if stats.NumDocs != 1 {
		t.Errorf("expected 1 doc, got %d", stats.NumDocs)
	}

	if stats.NumSentences != 1 {
		t.Errorf("expected 1 sentence, got %d", stats.NumSentences)
	}

	if stats.NumTokens != 5 {
		t.Errorf("expected 5 tokens, got %d", stats.NumTokens)
	}

	if stats.NumWords != 6 {
		t.Errorf("expected 6 words, got %d", stats.NumWords)
	}

	if stats.NumMWTs != 1 {
		t.Errorf("expected 1 multi-word token, got %d", stats.NumMWTs)
	}

	if stats.NumEntities != 0 {
		t.Errorf("expected 0 entities, got %d", stats.NumEntities)
	}

	if stats.WordsPerSentenceMean != 6 {
		t.Errorf("expected mean 6, got %d", stats.WordsPerSentenceMean)
	}

	if stats.WordsPerSentenceDis[6] != 1 {
		t.Errorf("expected 1 sentence with 6 words, got %d", stats.WordsPerSentenceDis[6])
	}
}

func TestAggregateAccumulates(t *testing.T) {
	h := NewHandler()
	h.Aggregate(frenchDoc(t))
	h.Aggregate(englishDoc(t))

	stats := h.Get()
	if stats.NumDocs != 2 {
		t.Errorf("expected 2 docs, got %d", stats.NumDocs)
	}

	if stats.NumSentences != 2 {
		t.Errorf("expected 2 sentences, got %d", stats.NumSentences)
	}

	if stats.NumTokens != 8 {
		t.Errorf("expected 8 tokens, got %d", stats.NumTokens)
	}

	if stats.NumWords != 9 {
		t.Errorf("expected 9 words, got %d", stats.NumWords)
	}

	if stats.NumEntities != 1 {
		t.Errorf("expected 1 entity, got %d", stats.NumEntities)
	}

	if stats.EntityTypeDis["PER"] != 1 {
		t.Errorf("expected 1 PER entity, got %d", stats.EntityTypeDis["PER"])
	}

	if stats.UPOSDis["VERB"] != 1 {
		t.Errorf("expected 1 VERB, got %d", stats.UPOSDis["VERB"])
	}

	if stats.WordsPerSentenceMean != 4 {
		t.Errorf("expected mean 4, got %d", stats.WordsPerSentenceMean)
	}

	if stats.WordsPerSentenceDis[3] != 1 || stats.WordsPerSentenceDis[6] != 1 {
		t.Errorf("unexpected distribution %v", stats.WordsPerSentenceDis)
	}
}

func TestGetBeforeAggregate(t *testing.T) {
	stats := NewHandler().Get()
	if stats.NumDocs != 0 || stats.WordsPerSentenceMean != 0 {
		t.Errorf("expected zero stats, got %+v", stats)
	}

	if stats.UPOSDis == nil {
		t.Error("expected initialized distribution map")
	}
}
