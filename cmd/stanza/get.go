package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/omichalon/stanza/document"
	"github.com/omichalon/stanza/storage"
)

type GetOptions struct {
	Fields []document.Field
}

func newGetCommand(ui UI, pool *Pool) *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "print selected word fields, one row per word",
		ArgsUsage: "<id>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "fields",
				Aliases: []string{"f"},
				Usage:   "comma-separated word fields",
				Value:   "text,lemma,upos",
			},
		},
		Action: func(c *cli.Context) error {
			repo, err := NewDocRepository(pool, c.String("repo"))
			if err != nil {
				return err
			}

			id, err := parseDocArg(c)
			if err != nil {
				return err
			}

			opts := GetOptions{Fields: parseFields(c.String("fields"))}
			return getCommand(repo, opts, id, ui)
		},
	}
}

func getCommand(repo storage.DocReader, opts GetOptions, id int, ui UI) error {
	doc, err := readDocument(repo, id)
	if err != nil {
		return err
	}

	rows, err := doc.Get(opts.Fields)
	if err != nil {
		return err
	}

	for _, row := range rows {
		fmt.Fprintln(ui.Out, strings.Join(row, "\t"))
	}

	return nil
}

func parseFields(s string) []document.Field {
	var fields []document.Field
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, document.Field(f))
		}
	}
	return fields
}
