package main

import (
	"github.com/urfave/cli/v2"

	"github.com/omichalon/stanza/render"
	"github.com/omichalon/stanza/storage"
)

type EntsOptions struct {
	NoColor bool
}

func newEntsCommand(ui UI, pool *Pool) *cli.Command {
	return &cli.Command{
		Name:      "ents",
		Usage:     "print the named entities of a document",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			repo, err := NewDocRepository(pool, c.String("repo"))
			if err != nil {
				return err
			}

			id, err := parseDocArg(c)
			if err != nil {
				return err
			}

			opts := EntsOptions{NoColor: c.Bool("no-color")}
			return entsCommand(repo, opts, id, ui)
		},
	}
}

func entsCommand(repo storage.DocReader, opts EntsOptions, id int, ui UI) error {
	doc, err := readDocument(repo, id)
	if err != nil {
		return err
	}

	doc.BuildEntities()

	r := render.NewTextRenderer(ui.Out)
	r.HasColor = !opts.NoColor
	r.Entities(doc)

	return nil
}
