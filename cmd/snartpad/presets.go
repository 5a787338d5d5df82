package main

import (
	"fmt"
	"strings"

	"github.com/dshills/snartpad/internal/preset"
	"github.com/spf13/cobra"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets [name]",
		Short: "List built-in definition presets, or show one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				p, err := preset.LoadBuiltin(args[0])
				if err != nil {
					return exitError(3, "failed to load preset: %v", err)
				}
				fmt.Fprint(out, preset.Format(p))
				return nil
			}

			names, err := preset.List()
			if err != nil {
				return err
			}
			for _, name := range names {
				p, err := preset.LoadBuiltin(name)
				if err != nil {
					return exitError(3, "failed to load preset: %v", err)
				}
				fmt.Fprintf(out, "%-12s %s\n", name, firstLine(p.Description))
			}
			return nil
		},
	}
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
