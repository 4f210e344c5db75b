package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/omichalon/stanza/stat"
	"github.com/omichalon/stanza/storage"
)

func newStatCommand(ui UI, pool *Pool) *cli.Command {
	return &cli.Command{
		Name:      "stat",
		Usage:     "corpus statistics, for one document or the whole repository",
		ArgsUsage: "[id]",
		Action: func(c *cli.Context) error {
			repo, err := NewDocRepository(pool, c.String("repo"))
			if err != nil {
				return err
			}

			var docId *int
			if c.Args().Present() {
				id, err := strconv.Atoi(c.Args().First())
				if err != nil {
					return fmt.Errorf("doc id %q: %w", c.Args().First(), err)
				}
				docId = &id
			}

			return statCommand(repo, docId, ui)
		},
	}
}

func statCommand(repo storage.DocReader, docId *int, ui UI) error {
	hdl := stat.NewHandler()

	if docId != nil {
		doc, err := readDocument(repo, *docId)
		if err != nil {
			return err
		}
		hdl.Aggregate(doc)
	} else {
		docs, err := repo.List()
		if err != nil {
			return err
		}
		for _, meta := range docs {
			doc, err := readDocument(repo, meta.ID)
			if err != nil {
				return err
			}
			hdl.Aggregate(doc)
		}
	}

	stats := hdl.Get()
	fmt.Fprintf(ui.Out, "Num docs %d, num sentences %d, num tokens %d, num words %d\n",
		stats.NumDocs, stats.NumSentences, stats.NumTokens, stats.NumWords)
	fmt.Fprintf(ui.Out, "Num multi-word tokens %d, num entities %d, words per sentence %d\n",
		stats.NumMWTs, stats.NumEntities, stats.WordsPerSentenceMean)

	for _, upos := range sortedKeys(stats.UPOSDis) {
		fmt.Fprintf(ui.Out, "%8s %d\n", upos, stats.UPOSDis[upos])
	}

	for _, typ := range sortedKeys(stats.EntityTypeDis) {
		fmt.Fprintf(ui.Out, "🏷  %s %d\n", typ, stats.EntityTypeDis[typ])
	}

	return nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
