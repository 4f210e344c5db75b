package main

import (
	"github.com/urfave/cli/v2"

	"github.com/omichalon/stanza/match"
	"github.com/omichalon/stanza/render"
	"github.com/omichalon/stanza/search"
	"github.com/omichalon/stanza/storage"
)

type FindOptions struct {
	// Doc restricts the search to one document.
	Doc     *int
	NoColor bool
}

func newFindCommand(ui UI, pool *Pool) *cli.Command {
	return &cli.Command{
		Name:      "find",
		Usage:     "print the sentences matching a word expression",
		ArgsUsage: "<expr>...",
		Description: "An expression argument is either field=value (text, lemma, upos, deprel, ner)\n" +
			"or a bare word: uppercase reads as a upos, lowercase as a lemma. A value\n" +
			"may carry |-separated alternatives and a leading ! negates it. A sentence\n" +
			"matches when every argument is satisfied by one of its words.",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "doc",
				Aliases: []string{"d"},
				Usage:   "search only this doc id",
			},
		},
		Action: func(c *cli.Context) error {
			repo, err := NewDocRepository(pool, c.String("repo"))
			if err != nil {
				return err
			}

			opts := FindOptions{NoColor: c.Bool("no-color")}
			if c.IsSet("doc") {
				id := c.Int("doc")
				opts.Doc = &id
			}

			return findCommand(repo, opts, c.Args().Slice(), ui)
		},
	}
}

func findCommand(repo storage.DocReader, opts FindOptions, args []string, ui UI) error {
	expr, err := match.Parse(args)
	if err != nil {
		return err
	}

	r := render.NewTextRenderer(ui.Out)
	r.HasColor = !opts.NoColor

	s := search.New(expr, repo)
	if opts.Doc != nil {
		s = s.WithDocID(*opts.Doc)
	}

	return s.Sentences(func(m *match.SentenceMatch) error {
		r.Match([]*match.SentenceMatch{m})
		return nil
	})
}
