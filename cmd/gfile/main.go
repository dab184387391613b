package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	apppkg "github.com/kk-code-lab/gfile/internal/app"
)

// exitError carries a process exit code out of the cobra command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func main() {
	rootCmd := NewRootCmd(runBrowser)
	os.Exit(exitCode(rootCmd.Execute(), os.Stderr))
}

// exitCode maps the result of Execute to a process exit code. Errors that
// did not pass through fail, such as argument errors, are printed here.
func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	fmt.Fprintf(stderr, "gfile: %v\n", err)
	return 1
}

func runBrowser(ctx context.Context, path string) error {
	cfg, err := apppkg.ConfigFromEnv(path)
	if err != nil {
		return fail(err)
	}

	closeLog, err := apppkg.ConfigureLogging(cfg.LogPath)
	if err != nil {
		return fail(err)
	}
	defer func() {
		_ = closeLog()
	}()

	app, err := apppkg.NewApplication(cfg)
	if err != nil {
		return fail(fmt.Errorf("error initializing application: %w", err))
	}

	runErr := app.Run(ctx)
	_ = app.Close()
	if runErr != nil {
		return fail(runErr)
	}
	fmt.Println(apppkg.ExitMessage)
	return nil
}

func fail(err error) error {
	fmt.Fprintf(os.Stderr, "gfile: %v\n", err)
	return &exitError{code: 1, err: err}
}
