package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/omichalon/stanza/document"
	"github.com/omichalon/stanza/match"
	"github.com/omichalon/stanza/render"
	"github.com/omichalon/stanza/search"
	"github.com/omichalon/stanza/storage"
)

// commands are the verbs the prompt understands, also used for completion.
var commands = []prompt.Suggest{
	{Text: "docs", Description: "list documents"},
	{Text: "sents", Description: "sentences of a document"},
	{Text: "words", Description: "word annotations of a document"},
	{Text: "deps", Description: "dependency edges of a document"},
	{Text: "ents", Description: "named entities of a document"},
	{Text: "text", Description: "raw text of a document"},
	{Text: "find", Description: "sentences matching a word expression"},
	{Text: "help", Description: "list commands"},
	{Text: "quit", Description: "exit the prompt"},
}

type Handler struct {
	DocRepo  storage.DocReader
	Renderer *render.TextRenderer
}

func NewHandler(dr storage.DocReader, r *render.TextRenderer) *Handler {
	return &Handler{
		DocRepo:  dr,
		Renderer: r,
	}
}

// Run presents the interactive prompt until the user quits.
func (h *Handler) Run() error {
	fmt.Println("🔑 Ctrl+X: Toggle color, 🔧 quit")

	docs, err := h.DocRepo.List()
	if err != nil {
		return err
	}

	// initialize prompt history
	history := []string{}

	for {
		in := prompt.Input("      📖 ", h.completer(docs),
			prompt.OptionTitle("stanza query"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlX,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.HasColor = !h.Renderer.HasColor
					fmt.Printf("Color set to %t\n", h.Renderer.HasColor)
				}}),
		)

		if in == "quit" {
			return nil
		}

		history = append(history, in)
		if err := h.eval(in); err != nil {
			fmt.Printf("✍  %v\n", err)
		}
	}
}

func (h *Handler) eval(in string) error {
	args := strings.Fields(in)
	if len(args) == 0 {
		return nil
	}

	switch args[0] {
	case "docs":
		return h.listDocs()

	case "help":
		for _, c := range commands {
			fmt.Fprintf(h.Renderer.W, "%8s %s\n", c.Text, c.Description)
		}
		return nil

	case "find":
		return h.find(args[1:])

	case "sents", "words", "deps", "ents", "text":
		return h.evalDoc(args[0], args[1:])
	}

	return fmt.Errorf("unknown command: %s", args[0])
}

func (h *Handler) find(args []string) error {
	expr, err := match.Parse(args)
	if err != nil {
		return err
	}

	return search.New(expr, h.DocRepo).Sentences(func(m *match.SentenceMatch) error {
		h.Renderer.Match([]*match.SentenceMatch{m})
		return nil
	})
}

func (h *Handler) evalDoc(cmd string, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: %s <doc> [sentence]", cmd)
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("doc id %q: %w", args[0], err)
	}

	doc, err := h.document(id)
	if err != nil {
		return err
	}

	sentences := doc.Sentences()
	if len(args) > 1 {
		sentId, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("sentence index %q: %w", args[1], err)
		}
		if sentId < 0 || sentId >= len(sentences) {
			return fmt.Errorf("sentence index %d out of bounds (doc has %d sentences)", sentId, len(sentences))
		}
		sentences = sentences[sentId : sentId+1]
	}

	switch cmd {
	case "sents":
		for i, s := range sentences {
			h.Renderer.Sentence(s, fmt.Sprintf("✍  %d ", i))
		}

	case "words":
		for _, s := range sentences {
			h.Renderer.Words(s)
		}

	case "deps":
		for _, s := range sentences {
			h.Renderer.Dependencies(s)
		}

	case "ents":
		doc.BuildEntities()
		h.Renderer.Entities(doc)

	case "text":
		fmt.Fprintln(h.Renderer.W, doc.Text())
	}

	return nil
}

func (h *Handler) listDocs() error {
	docs, err := h.DocRepo.List()
	if err != nil {
		return err
	}

	for _, d := range docs {
		fmt.Fprintf(h.Renderer.W, "📖 %d %s\n", d.ID, d.Name)
	}

	return nil
}

func (h *Handler) document(id int) (*document.Document, error) {
	doc, err := h.DocRepo.Read(id)
	if err != nil {
		return nil, err
	}
	return doc.Document()
}

func (h *Handler) completer(docs []storage.Doc) func(in prompt.Document) []prompt.Suggest {
	return func(in prompt.Document) []prompt.Suggest {
		s := []prompt.Suggest{}
		befCursor := in.TextBeforeCursor()

		// Only one character in line
		if "" == befCursor {
			return s
		}

		tokens := strings.Split(befCursor, " ")
		if len(tokens) == 1 {
			for _, c := range commands {
				if strings.HasPrefix(c.Text, tokens[0]) {
					s = append(s, c)
				}
			}
			return s
		}

		// second token addresses a document, by id or name
		word := in.GetWordBeforeCursor()
		for _, d := range docs {
			id := strconv.Itoa(d.ID)
			if strings.HasPrefix(id, word) || strings.HasPrefix(d.Name, word) {
				s = append(s, prompt.Suggest{Text: id, Description: "📖 " + d.Name})
			}
		}

		return s
	}
}
