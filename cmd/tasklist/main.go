// Package main provides the entry point for the tasklist CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mrz1836/tasklist/internal/cli"
	"github.com/mrz1836/tasklist/internal/errors"
	"github.com/mrz1836/tasklist/internal/signal"
)

// Set at build time via -ldflags "-X main.version=... -X main.commit=... -X main.date=...".
//
//nolint:gochecknoglobals // ldflags targets
var (
	version = ""
	commit  = ""
	date    = ""
)

func main() {
	os.Exit(run())
}

func run() int {
	h := signal.NewHandler(context.Background())
	defer h.Stop()

	err := cli.Execute(h.Context(), cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	})
	if err != nil {
		msg, action := errors.Actionable(err)
		_, _ = fmt.Fprintln(os.Stderr, "Error: "+msg)
		if action != "" {
			_, _ = fmt.Fprintln(os.Stderr, "  "+action)
		}
	}

	return h.ExitCode(cli.ExitCodeForError(err))
}
