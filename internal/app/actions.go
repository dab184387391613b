package app

import (
	"context"
	"errors"
	"fmt"

	statepkg "github.com/kk-code-lab/gfile/internal/state"
	"github.com/sirupsen/logrus"
)

// handleAction runs the side effects of handoff actions and passes
// everything else to the reducer. While help is shown every key goes to the
// reducer, which closes the overlay.
func (app *Application) handleAction(ctx context.Context, action statepkg.Action) {
	if _, idle := action.(statepkg.NoneAction); !idle {
		log.WithFields(logrus.Fields{"cwd": app.state.Cwd, "action": fmt.Sprintf("%T", action)}).Debug("key")
	}
	if app.state.HelpVisible {
		app.reduce(action)
		return
	}
	if app.handleAppAction(ctx, action) {
		return
	}
	app.reduce(action)
}

func (app *Application) handleAppAction(ctx context.Context, action statepkg.Action) bool {
	switch action.(type) {
	case statepkg.ShellAction:
		app.setMessage("")
		app.runShell()
	case statepkg.TerminalAction:
		app.setMessage("")
		app.startTerminal()
	case statepkg.OpenAction:
		app.setMessage("")
		app.openSelection()
	case statepkg.CommandAction:
		app.setMessage("")
		app.runCommand(ctx)
	default:
		return false
	}
	return true
}

func (app *Application) runShell() {
	argv := detectShell(app.cfg.Getenv)
	log.WithFields(logrus.Fields{"cwd": app.state.Cwd, "cmd": argv}).Debug("shell")

	err := app.inForeground(func() error {
		return app.launcher.Run(app.state.Cwd, argv)
	})
	if err != nil {
		app.showError(fmt.Errorf("%s: %w", argv[0], err))
	}
	// The shell may have changed the directory contents.
	app.reduce(statepkg.RefreshAction{})
}

func (app *Application) startTerminal() {
	argv, err := detectTerminal(app.cfg.Getenv)
	if errors.Is(err, ErrTerminalNotSet) {
		app.setMessage(ErrTerminalNotSet.Error())
		return
	}
	log.WithFields(logrus.Fields{"cwd": app.state.Cwd, "cmd": argv}).Debug("terminal")
	if err := app.launcher.Start(app.state.Cwd, argv); err != nil {
		app.showError(fmt.Errorf("failed to start terminal: %w", err))
	}
}

func (app *Application) openSelection() {
	entry, ok := app.state.SelectedEntry()
	if !ok {
		return
	}
	opener, err := detectOpener(app.cfg.GOOS, app.cfg.LookPath)
	if err != nil {
		app.showError(err)
		return
	}
	argv := append(opener, entry.FullPath)
	log.WithFields(logrus.Fields{"cwd": app.state.Cwd, "cmd": argv}).Debug("open")
	if err := app.launcher.Start(app.state.Cwd, argv); err != nil {
		app.showError(fmt.Errorf("failed to open %s: %w", entry.DisplayName(), err))
	}
}

// runCommand asks for a program and replaces the process with it, passing
// the selected name as the last argument.
func (app *Application) runCommand(ctx context.Context) {
	entry, ok := app.state.SelectedEntry()
	if !ok {
		return
	}
	line, ok, err := app.prompt(ctx, commandPrompt)
	if err != nil {
		if ctx.Err() == nil {
			app.showError(err)
		}
		return
	}
	args := parseCommandLine(line)
	if !ok || len(args) == 0 {
		return
	}

	path, err := app.cfg.LookPath(args[0])
	if err != nil {
		app.showError(fmt.Errorf("command not found: %s", args[0]))
		return
	}
	argv := append(args, entry.Name)
	log.WithFields(logrus.Fields{"cwd": app.state.Cwd, "cmd": argv}).Info("exec")

	if err := app.suspendUI(); err != nil {
		log.WithError(err).Warn("restore before exec")
	}
	err = app.launcher.Exec(app.state.Cwd, path, argv)
	if err == nil {
		// Only reachable when the launcher does not replace the process.
		app.handedOff = true
		app.reduce(statepkg.QuitAction{})
		return
	}
	app.showError(errors.Join(fmt.Errorf("%s: %w", args[0], err), app.resumeUI()))
}

// inForeground hands the terminal to fn and takes it back afterwards.
func (app *Application) inForeground(fn func() error) error {
	suspendErr := app.suspendUI()
	runErr := fn()
	return errors.Join(runErr, suspendErr, app.resumeUI())
}

// suspendUI parks the listener and puts the terminal back into cooked mode
// on the main screen.
func (app *Application) suspendUI() error {
	app.reduce(statepkg.SetModeAction{Mode: statepkg.ModeSuspended})
	app.listener.Suspend()
	return app.term.Restore()
}

func (app *Application) resumeUI() error {
	err := app.term.Enter()
	app.listener.Clear()
	app.listener.Resume()
	app.lastFrame = ""
	app.reduce(statepkg.SetModeAction{Mode: statepkg.ModeBrowsing})
	return err
}
