package main

import (
	"fmt"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"

	"github.com/omichalon/stanza/storage/filesystem"
	"github.com/omichalon/stanza/storage/sqlite/zombiezen"
)

type ImportDocOptions struct {
	From string
	To   string
}

func newImportDocCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: "import a directory of JSON documents into a SQLite database",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "from",
				Usage:    "source directory",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "to",
				Usage:    "target SQLite database file",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			opts := ImportDocOptions{From: c.String("from"), To: c.String("to")}
			return importDocCommand(opts, ui)
		},
	}
}

func importDocCommand(opts ImportDocOptions, ui UI) error {
	src, err := filesystem.NewDocStore(opts.From)
	if err != nil {
		return err
	}

	pool, err := zombiezen.NewPool(opts.To)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := zombiezen.CreateSchema(pool); err != nil {
		return fmt.Errorf("failed to create docs table: %w", err)
	}

	dst := zombiezen.NewDocStore(pool)

	fmt.Fprintf(ui.Out, "Reading docs from %s...\n", opts.From)
	docs, err := src.List()
	if err != nil {
		return err
	}

	uiprogress.Start()
	bar := uiprogress.AddBar(len(docs))
	bar.AppendCompleted()
	bar.PrependElapsed()

	count := 0
	for _, meta := range docs {
		doc, err := src.Read(meta.ID)
		if err != nil {
			uiprogress.Stop()
			return fmt.Errorf("failed to read doc %s (id %d): %w", meta.Name, meta.ID, err)
		}

		if err := dst.Write(doc); err != nil {
			uiprogress.Stop()
			return fmt.Errorf("failed to write doc %s: %w", meta.Name, err)
		}
		count++
		bar.Incr()
	}
	uiprogress.Stop()

	fmt.Fprintf(ui.Out, "Successfully imported %d docs from %s to %s\n", count, opts.From, opts.To)
	return nil
}
