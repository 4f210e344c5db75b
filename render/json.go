package render

import (
	"encoding/json"
	"io"

	"github.com/omichalon/stanza/document"
)

// JSONRenderer writes a document as JSON to a writer.
type JSONRenderer struct {
	W io.Writer

	// Indent pretty-prints the output.
	Indent bool
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Render serializes the document as a JSON array of sentences, each a JSON
// array of token and word objects.
func (r *JSONRenderer) Render(d *document.Document) error {
	enc := json.NewEncoder(r.W)
	if r.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(d.ToRecords())
}

// compile-time interface check
var _ Renderer = (*JSONRenderer)(nil)
