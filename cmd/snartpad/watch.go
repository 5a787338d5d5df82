package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/dshills/snartpad/internal/definition"
	"github.com/dshills/snartpad/internal/notepad"
	"github.com/dshills/snartpad/internal/session"
	"github.com/dshills/snartpad/internal/watch"
	"github.com/spf13/cobra"
)

type watchFlags struct {
	defFlags
	verbose bool
	stdout  io.Writer
}

func newWatchCmd() *cobra.Command {
	f := &watchFlags{}

	cmd := &cobra.Command{
		Use:   "watch <notepad-file>",
		Short: "Print the grand total every time the notepad changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f.stdout = cmd.OutOrStdout()
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return runWatch(ctx, args[0], f)
		},
	}

	addDefFlags(cmd, &f.defFlags)
	cmd.Flags().BoolVar(&f.verbose, "verbose", false, "Print processing steps to stderr")

	return cmd
}

func runWatch(ctx context.Context, path string, f *watchFlags) error {
	logger := log.New(os.Stderr, "", 0)
	verbose := func(msg string, args ...any) {
		if f.verbose {
			logger.Printf(msg, args...)
		}
	}

	set, _, _, err := buildDefinitions(&f.defFlags, verbose)
	if err != nil {
		return err
	}

	out := f.stdout
	if out == nil {
		out = os.Stdout
	}
	sess := newWatchSession(set.List(), out, logger)

	w, err := watch.New(path)
	if err != nil {
		return exitError(3, "failed to watch notepad: %v", err)
	}
	defer w.Stop()
	verbose("Watching %s", w.Path())

	reload := func() {
		n, err := notepad.Load(path)
		if err != nil {
			verbose("Notepad unavailable: %v", err)
			return
		}
		sess.SetText(n.Raw)
	}
	reload()

	err = w.Run(ctx, reload, func(err error) {
		verbose("Watcher error: %v", err)
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// newWatchSession returns a session preloaded with defs that prints the
// grand total to out on every change.
func newWatchSession(defs []definition.Definition, out io.Writer, logger *log.Logger) *session.Session {
	sess := session.New()
	for _, d := range defs {
		sess.Add(d.Pattern, d.Points)
	}
	sess.OnChange = func(total int, err error) {
		if err != nil {
			logger.Printf("scoring failed: %v", err)
			return
		}
		fmt.Fprintf(out, "Grand Total: %d\n", total)
	}
	return sess
}
