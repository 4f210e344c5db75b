package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/omichalon/stanza/render"
	"github.com/omichalon/stanza/storage"
)

type ExpandOptions struct {
	// DryRun lists the pending expansions instead of applying them.
	DryRun bool

	// Indent pretty-prints the JSON output.
	Indent bool
}

func newExpandCommand(ui UI, pool *Pool) *cli.Command {
	return &cli.Command{
		Name:      "expand",
		Usage:     "apply multi-word token expansions and print the expanded document",
		ArgsUsage: "<id> [expansions-file]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "list the marked tokens without applying expansions",
			},
			&cli.BoolFlag{
				Name:  "indent",
				Usage: "pretty-print the JSON output",
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

			var in io.Reader = os.Stdin
			if c.Args().Len() > 1 {
				f, err := os.Open(c.Args().Get(1))
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			opts := ExpandOptions{DryRun: c.Bool("dry-run"), Indent: c.Bool("indent")}
			return expandCommand(repo, opts, id, in, ui)
		},
	}
}

// expandCommand expands the document's marked tokens with the expansions
// read from in, one per marked token, and prints the expanded document as
// JSON. With DryRun it prints one editable "token -> words" line per marked
// token instead.
func expandCommand(repo storage.DocReader, opts ExpandOptions, id int, in io.Reader, ui UI) error {
	doc, err := readDocument(repo, id)
	if err != nil {
		return err
	}

	if opts.DryRun {
		for _, e := range doc.MWTExpansions(false) {
			fmt.Fprintf(ui.Out, "%s -> %s\n", e.Token, e.Words)
		}
		return nil
	}

	expansions, err := parseExpansions(in)
	if err != nil {
		return err
	}

	if err := doc.SetMWTExpansions(expansions); err != nil {
		return err
	}

	r := &render.JSONRenderer{W: ui.Out, Indent: opts.Indent}
	return r.Render(doc)
}

// parseExpansions reads one expansion per line, in marked-token order. Lines
// may carry the "token -> words" form the dry run prints; only the right
// side is kept. Blank lines and lines starting with # are skipped.
func parseExpansions(r io.Reader) ([]string, error) {
	var expansions []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, after, ok := strings.Cut(line, "->"); ok {
			line = strings.TrimSpace(after)
		}
		expansions = append(expansions, line)
	}
	return expansions, sc.Err()
}
