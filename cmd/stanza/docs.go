package main

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/omichalon/stanza/render"
	"github.com/omichalon/stanza/storage"
)

type DocsOptions struct {
	// Start is the first sentence to print.
	Start int

	// Count limits the number of printed sentences, -1 prints all.
	Count int
}

func newDocsCommand(ui UI, pool *Pool) *cli.Command {
	return &cli.Command{
		Name:      "docs",
		Usage:     "list documents, or print one document's sentences",
		ArgsUsage: "[id]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "start",
				Aliases: []string{"s"},
				Usage:   "first sentence to print",
				Value:   0,
			},
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"c"},
				Usage:   "number of sentences to print",
				Value:   -1,
			},
		},
		Action: func(c *cli.Context) error {
			repo, err := NewDocRepository(pool, c.String("repo"))
			if err != nil {
				return err
			}

			if !c.Args().Present() {
				return listDocsCommand(repo, ui)
			}

			id, err := strconv.Atoi(c.Args().First())
			if err != nil {
				return fmt.Errorf("doc id %q: %w", c.Args().First(), err)
			}

			opts := DocsOptions{Start: c.Int("start"), Count: c.Int("count")}
			return docsCommand(repo, opts, id, ui)
		},
	}
}

func listDocsCommand(repo storage.DocReader, ui UI) error {
	docs, err := repo.List()
	if err != nil {
		return err
	}

	for _, doc := range docs {
		fmt.Fprintf(ui.Out, "📖 %d %s\n", doc.ID, doc.Name)
	}

	return nil
}

func docsCommand(repo storage.DocReader, opts DocsOptions, id int, ui UI) error {
	doc, err := readDocument(repo, id)
	if err != nil {
		return err
	}

	sentences := doc.Sentences()
	start := opts.Start
	if start < 0 {
		start = 0
	}
	if start >= len(sentences) {
		return nil
	}

	sentences = sentences[start:]
	if opts.Count >= 0 && opts.Count < len(sentences) {
		sentences = sentences[:opts.Count]
	}

	r := render.NewTextRenderer(ui.Out)
	for i, s := range sentences {
		r.Sentence(s, fmt.Sprintf("✍  %d ", start+i))
	}

	return nil
}
