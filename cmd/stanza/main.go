package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

// set by the linker at release build time
var (
	BuildTag    = "dev"
	BuildCommit = "none"
)

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}
	pool := &Pool{}

	err := newApp(ui, pool).Run(os.Args)
	if cerr := pool.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "stanza: %v\n", err)
}

func newApp(ui UI, pool *Pool) *cli.App {
	return &cli.App{
		Name:                 "stanza",
		Usage:                "inspect and transform annotated document corpora",
		Version:              BuildTag,
		Writer:               ui.Out,
		ErrWriter:            ui.Err,
		EnableBashCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "repo",
				Aliases: []string{"r"},
				Usage:   "document repository: a directory of JSON files or a SQLite database",
				Value:   "docs",
				EnvVars: []string{"STANZA_CORPUS"},
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable colored output",
			},
		},
		Commands: []*cli.Command{
			newDocsCommand(ui, pool),
			newWordsCommand(ui, pool),
			newDepsCommand(ui, pool),
			newEntsCommand(ui, pool),
			newFindCommand(ui, pool),
			newGetCommand(ui, pool),
			newExpandCommand(ui, pool),
			newStatCommand(ui, pool),
			newImportDocCommand(ui),
			newQueryCommand(ui, pool),
			newVersionCommand(ui),
		},
	}
}

// parseDocArg reads the required doc id from the first command argument.
func parseDocArg(c *cli.Context) (int, error) {
	if !c.Args().Present() {
		return 0, fmt.Errorf("missing doc id")
	}

	id, err := strconv.Atoi(c.Args().First())
	if err != nil {
		return 0, fmt.Errorf("doc id %q: %w", c.Args().First(), err)
	}

	return id, nil
}

// parseDocSentArgs reads the required doc id and the optional sentence index
// from the command arguments.
func parseDocSentArgs(c *cli.Context) (int, *int, error) {
	id, err := parseDocArg(c)
	if err != nil {
		return 0, nil, err
	}

	if c.Args().Len() < 2 {
		return id, nil, nil
	}

	sentId, err := strconv.Atoi(c.Args().Get(1))
	if err != nil {
		return 0, nil, fmt.Errorf("sentence index %q: %w", c.Args().Get(1), err)
	}

	return id, &sentId, nil
}
