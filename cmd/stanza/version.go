package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func newVersionCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "print the build version",
		Action: func(c *cli.Context) error {
			return versionCommand(ui)
		},
	}
}

func versionCommand(ui UI) error {
	_, err := fmt.Fprintf(ui.Out, "stanza version %s (commit: %s)\n", BuildTag, BuildCommit)
	return err
}
