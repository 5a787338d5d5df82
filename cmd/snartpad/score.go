package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/dshills/snartpad/internal/notepad"
	"github.com/dshills/snartpad/internal/render"
	"github.com/spf13/cobra"
)

type scoreFlags struct {
	defFlags
	format   string
	out      string
	limit    int
	hasLimit bool
	verbose  bool
	stdout   io.Writer
}

func newScoreCmd() *cobra.Command {
	f := &scoreFlags{}

	cmd := &cobra.Command{
		Use:   "score <notepad-file|->",
		Short: "Compute the grand total of a notepad",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Check if limit was explicitly set
			f.hasLimit = cmd.Flags().Changed("limit")
			f.stdout = cmd.OutOrStdout()
			return runScore(args[0], f)
		},
	}

	addDefFlags(cmd, &f.defFlags)
	flags := cmd.Flags()
	flags.StringVar(&f.format, "format", "text", "Output format: text, json or md")
	flags.StringVar(&f.out, "out", "", "Output file path (default: stdout)")
	flags.IntVar(&f.limit, "limit", 0, "Exit with code 2 if the grand total exceeds this value")
	flags.BoolVar(&f.verbose, "verbose", false, "Print processing steps to stderr")

	return cmd
}

func runScore(path string, f *scoreFlags) error {
	logger := log.New(os.Stderr, "", 0)
	verbose := func(msg string, args ...any) {
		if f.verbose {
			logger.Printf(msg, args...)
		}
	}

	switch f.format {
	case "text", "json", "md":
	default:
		return exitError(3, "unknown format: %s", f.format)
	}

	// 1. Load notepad
	verbose("Loading notepad: %s", path)
	n, err := notepad.Load(path)
	if err != nil {
		return exitError(3, "failed to load notepad: %v", err)
	}
	verbose("Read %d lines", len(n.Lines))

	// 2. Definitions
	_, sources, sc, err := buildDefinitions(&f.defFlags, verbose)
	if err != nil {
		return err
	}

	// 3. Score
	rep := sc.Report(n.Lines)
	rep.Tool = "snartpad"
	rep.Version = version
	rep.Input.NotepadFile = filepath.Base(n.FilePath)
	rep.Input.NotepadHash = n.Hash
	rep.Input.Sources = sources
	verbose("Grand total %d from %d scoring lines", rep.Total, len(rep.Lines))

	// 4. Output
	var output string
	switch f.format {
	case "json":
		data, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		output = string(data) + "\n"
	case "md":
		output = render.Markdown(&rep)
	default:
		output = render.Text(&rep)
	}

	if f.out != "" {
		verbose("Writing output to %s", f.out)
		if err := os.WriteFile(f.out, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		w := f.stdout
		if w == nil {
			w = os.Stdout
		}
		fmt.Fprint(w, output)
	}

	// 5. Exit code based on --limit
	if f.hasLimit && rep.Total > f.limit {
		return exitError(2, "grand total %d exceeds limit %d", rep.Total, f.limit)
	}

	return nil
}
