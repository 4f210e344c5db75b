package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/omichalon/stanza/render"
	"github.com/omichalon/stanza/storage"
)

func newDepsCommand(ui UI, pool *Pool) *cli.Command {
	return &cli.Command{
		Name:      "deps",
		Usage:     "print the dependency edges of a document, sentence by sentence",
		ArgsUsage: "<id> [sentence]",
		Action: func(c *cli.Context) error {
			repo, err := NewDocRepository(pool, c.String("repo"))
			if err != nil {
				return err
			}

			id, sentId, err := parseDocSentArgs(c)
			if err != nil {
				return err
			}

			return depsCommand(repo, id, sentId, ui)
		},
	}
}

func depsCommand(repo storage.DocReader, id int, sentId *int, ui UI) error {
	doc, err := readDocument(repo, id)
	if err != nil {
		return err
	}

	r := render.NewTextRenderer(ui.Out)
	sentences := doc.Sentences()

	if sentId != nil {
		if *sentId < 0 || *sentId >= len(sentences) {
			return fmt.Errorf("sentence index %d out of bounds (doc has %d sentences)", *sentId, len(sentences))
		}
		r.Dependencies(sentences[*sentId])
		return nil
	}

	for i, s := range sentences {
		r.Sentence(s, fmt.Sprintf("✍  %d ", i))
		r.Dependencies(s)
		fmt.Fprintln(ui.Out)
	}

	return nil
}
