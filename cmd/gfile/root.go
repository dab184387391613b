package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command. run receives the directory to browse.
func NewRootCmd(run func(ctx context.Context, path string) error) *cobra.Command {
	return &cobra.Command{
		Use:   "gfile [path]",
		Short: "Browse directories in a terminal grid",
		Long: `gfile lists a directory as a grid of names that wraps to the terminal
width. Move with the arrow keys or h/j/k/l, enter directories with Space or
Enter, and press H inside the browser for every key binding.

Environment:
  SHELL       shell started with 's' (default /bin/sh)
  TERMINAL    terminal emulator started with 't'
  NO_COLOR    disable colors
  GFILE_LOG   write a debug log to this file
  GFILE_POLL  key poll interval, e.g. 100ms; 0 waits for keys`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolvePath(args)
			if err != nil {
				return fail(err)
			}
			return run(cmd.Context(), path)
		},
	}
}

// resolvePath returns the directory argument or the user's home.
func resolvePath(args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return home, nil
}
