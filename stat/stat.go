package stat

import (
	"github.com/omichalon/stanza/document"
)

type Handler struct {
	stats Stats
}

type Stats struct {
	NumDocs              int
	NumSentences         int
	NumTokens            int
	NumWords             int
	NumMWTs              int
	NumEntities          int
	WordsPerSentenceMean int
	WordsPerSentenceDis  map[int]int
	UPOSDis              map[string]int
	EntityTypeDis        map[string]int
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{
		WordsPerSentenceDis: map[int]int{},
		UPOSDis:             map[string]int{},
		EntityTypeDis:       map[string]int{},
	}
	return &Handler{
		stats: stats,
	}
}

// Aggregate adds the document's counts to the running stats. It builds the
// document's entities as a side effect.
func (h *Handler) Aggregate(d *document.Document) {
	h.stats.NumDocs++
	h.stats.NumSentences += len(d.Sentences())

	for _, sentence := range d.Sentences() {
		h.stats.NumWords += len(sentence.Words())
		h.stats.WordsPerSentenceDis[len(sentence.Words())]++

		for _, token := range sentence.Tokens() {
			h.stats.NumTokens++
			if token.IsMWT() {
				h.stats.NumMWTs++
			}
		}

		for _, word := range sentence.Words() {
			if word.UPOS != "" {
				h.stats.UPOSDis[word.UPOS]++
			}
		}
	}

	h.stats.NumEntities += d.BuildEntities()
	for _, span := range d.Entities() {
		h.stats.EntityTypeDis[span.Type()]++
	}

	if h.stats.NumSentences > 0 {
		h.stats.WordsPerSentenceMean = h.stats.NumWords / h.stats.NumSentences
	}
}
