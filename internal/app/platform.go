package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

var (
	// ErrTerminalNotSet is returned when $TERMINAL is empty.
	ErrTerminalNotSet = errors.New("$TERMINAL is not set")
	// ErrNoOpener is returned when no system opener is installed.
	ErrNoOpener = errors.New("no opener available")
)

const defaultShell = "/bin/sh"

func detectShell(getenv func(string) string) []string {
	if args := parseCommandLine(getenv("SHELL")); len(args) > 0 {
		return args
	}
	return []string{defaultShell}
}

func detectTerminal(getenv func(string) string) ([]string, error) {
	args := parseCommandLine(getenv("TERMINAL"))
	if len(args) == 0 {
		return nil, ErrTerminalNotSet
	}
	return args, nil
}

func detectOpener(goos string, lookPath func(string) (string, error)) ([]string, error) {
	candidates := []string{"xdg-open"}
	if strings.EqualFold(goos, "darwin") {
		candidates = []string{"open"}
	}
	for _, candidate := range candidates {
		if path, err := lookPath(candidate); err == nil && path != "" {
			return []string{path}, nil
		}
	}
	return nil, ErrNoOpener
}

// parseCommandLine splits an environment command such as "kitty --single-instance"
// into arguments, honouring single and double quotes.
func parseCommandLine(cmd string) []string {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return nil
	}

	var args []string
	var current strings.Builder
	inSingle := false
	inDouble := false

	for _, r := range cmd {
		switch r {
		case '\'':
			if inDouble {
				current.WriteRune(r)
			} else {
				inSingle = !inSingle
			}
			continue
		case '"':
			if inSingle {
				current.WriteRune(r)
			} else {
				inDouble = !inDouble
			}
			continue
		default:
			if !inSingle && !inDouble && unicode.IsSpace(r) {
				if current.Len() > 0 {
					args = append(args, current.String())
					current.Reset()
				}
				continue
			}
			current.WriteRune(r)
		}
	}

	if current.Len() > 0 {
		args = append(args, current.String())
	}

	if len(args) > 0 {
		args[0] = expandUserPath(args[0])
	}

	return args
}

func expandUserPath(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if len(path) == 1 {
		return home
	}
	if path[1] != '/' {
		return path
	}
	return filepath.Join(home, path[2:])
}
