package main

import (
	"github.com/urfave/cli/v2"

	"github.com/omichalon/stanza/query"
	"github.com/omichalon/stanza/render"
)

// Query command
func newQueryCommand(ui UI, pool *Pool) *cli.Command {
	return &cli.Command{
		Name:  "query",
		Usage: "explore the repository in an interactive prompt",
		Action: func(c *cli.Context) error {
			repo, err := NewDocRepository(pool, c.String("repo"))
			if err != nil {
				return err
			}

			r := render.NewTextRenderer(ui.Out)
			r.HasColor = !c.Bool("no-color")

			h := query.NewHandler(repo, r)
			return h.Run()
		},
	}
}
