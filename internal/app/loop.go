package app

import (
	"context"
	"errors"
	"fmt"

	statepkg "github.com/kk-code-lab/gfile/internal/state"
	inputui "github.com/kk-code-lab/gfile/internal/ui/input"
	"github.com/sirupsen/logrus"
)

const defaultHeight = 24

// ErrTerminalLost is returned by Run when the key listener stops.
var ErrTerminalLost = errors.New("terminal lost")

// Run drives the event loop until the user quits. The terminal is restored
// before Run returns, including when it panics.
func (app *Application) Run(ctx context.Context) (err error) {
	if err := app.term.Enter(); err != nil {
		return err
	}
	defer func() {
		if app.handedOff {
			return
		}
		if restoreErr := app.term.Restore(); restoreErr != nil && err == nil {
			err = restoreErr
		}
	}()

	for app.state.Mode != statepkg.ModeTerminal {
		app.render()

		action, err := app.nextAction(ctx)
		if err != nil {
			if errors.Is(err, inputui.ErrListenerStopped) {
				cause := app.listener.Err()
				log.WithError(cause).Error("key listener stopped")
				return fmt.Errorf("%w: %v", ErrTerminalLost, cause)
			}
			return err
		}

		if width := app.querySize(); width != app.state.Width {
			app.reduce(statepkg.ResizeAction{Width: width})
		}

		app.handleAction(ctx, action)
	}
	return nil
}

// nextAction waits for one key. In polling mode an idle interval yields
// NoneAction so the loop can notice a resize.
func (app *Application) nextAction(ctx context.Context) (statepkg.Action, error) {
	if app.cfg.PollInterval <= 0 {
		return app.decoder.Next(ctx)
	}
	waitCtx, cancel := context.WithTimeout(ctx, app.cfg.PollInterval)
	defer cancel()
	action, err := app.decoder.Next(waitCtx)
	if err != nil && errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
		return statepkg.NoneAction{}, nil
	}
	return action, err
}

// querySize refreshes the terminal height and returns the width. Errors and
// zero sizes keep the last known values.
func (app *Application) querySize() int {
	width := app.state.Width
	if width <= 0 {
		width = statepkg.DefaultWidth
	}
	w, h, err := app.term.Size()
	if err != nil {
		log.WithError(err).Debug("terminal size unavailable")
		return width
	}
	if h > 0 {
		app.height = h
	}
	if w > 0 {
		width = w
	}
	return width
}

func (app *Application) render() {
	frame := app.renderer.Render(app.state, app.height)
	if frame == app.lastFrame {
		return
	}
	if err := app.term.WriteString(frame); err != nil {
		log.WithError(err).Warn("write frame")
		return
	}
	app.lastFrame = frame
}

// reduce applies action and turns errors into the message line.
func (app *Application) reduce(action statepkg.Action) {
	if _, err := app.nav.Reduce(app.state, action); err != nil {
		app.showError(err)
	}
}

func (app *Application) setMessage(msg string) {
	app.reduce(statepkg.SetMessageAction{Message: msg})
}

func (app *Application) showError(err error) {
	log.WithFields(logrus.Fields{"cwd": app.state.Cwd, "err": err}).Warn("action failed")
	app.setMessage(err.Error())
}
