package app

import (
	"errors"
	"fmt"

	fsutil "github.com/kk-code-lab/gfile/internal/fs"
	statepkg "github.com/kk-code-lab/gfile/internal/state"
	inputui "github.com/kk-code-lab/gfile/internal/ui/input"
	renderui "github.com/kk-code-lab/gfile/internal/ui/render"
)

// ExitMessage is printed once the terminal has been restored after a quit.
const ExitMessage = "Exit"

// keyListener is the part of the input listener the event loop drives.
type keyListener interface {
	inputui.ByteSource
	Suspend()
	Resume()
	Clear()
	Close() error
	Err() error
}

// Application represents the running app.
type Application struct {
	cfg      Config
	term     Terminal
	listener keyListener
	decoder  *inputui.Decoder
	nav      *statepkg.Navigator
	state    *statepkg.NavState
	renderer *renderui.Renderer
	launcher Launcher

	height    int
	lastFrame string
	handedOff bool
}

// NewApplication opens the controlling terminal and scans cfg.Path.
func NewApplication(cfg Config) (*Application, error) {
	cfg.withDefaults()
	palette := renderui.NewPalette(cfg.Term, cfg.NoColor)

	tty, err := openTerminal(palette)
	if err != nil {
		return nil, err
	}
	listener, err := inputui.NewListener(tty.Input())
	if err != nil {
		_ = tty.Close()
		return nil, err
	}

	app, err := newApplication(cfg, tty, listener, osLauncher{tty: tty.Input()}, fsutil.NewOSReader(), renderui.NewRenderer(nil, palette))
	if err != nil {
		_ = listener.Close()
		_ = tty.Close()
		return nil, err
	}
	return app, nil
}

func newApplication(cfg Config, term Terminal, listener keyListener, launcher Launcher, reader fsutil.DirReader, renderer *renderui.Renderer) (*Application, error) {
	cfg.withDefaults()
	app := &Application{
		cfg:      cfg,
		term:     term,
		listener: listener,
		decoder:  inputui.NewDecoder(listener),
		nav:      statepkg.NewNavigator(reader),
		state:    &statepkg.NavState{HideHidden: true},
		renderer: renderer,
		launcher: launcher,
		height:   defaultHeight,
	}
	app.state.Width = app.querySize()

	if err := app.nav.Load(app.state, cfg.Path); err != nil {
		return nil, fmt.Errorf("cannot open %s: %w", cfg.Path, err)
	}
	log.WithField("cwd", app.state.Cwd).Debug("initial scan")
	return app, nil
}

// State exposes the navigation state, for inspection after Run.
func (app *Application) State() *statepkg.NavState {
	return app.state
}

// Close releases the terminal. Run already restored it on every exit path.
func (app *Application) Close() error {
	var errs []error
	if !app.handedOff {
		errs = append(errs, app.listener.Close())
	}
	errs = append(errs, app.term.Close())
	return errors.Join(errs...)
}
