package app

import (
	"context"
	"unicode/utf8"

	inputui "github.com/kk-code-lab/gfile/internal/ui/input"
)

const commandPrompt = "run: "

// prompt reads a line on the message row. It reports false when the user
// cancels with Escape or Ctrl-C.
func (app *Application) prompt(ctx context.Context, label string) (string, bool, error) {
	var line []byte
	defer app.setMessage("")

	for {
		app.setMessage(label + string(line))
		app.render()

		b, err := app.decoder.ReadRaw(ctx)
		if err != nil {
			return "", false, err
		}

		switch b {
		case inputui.KeyEnter, inputui.KeyNewline:
			return string(line), true, nil
		case inputui.KeyEscape:
			app.decoder.DiscardEscape()
			return "", false, nil
		case inputui.KeyCtrlC:
			return "", false, nil
		case inputui.KeyBackspace, inputui.KeyCtrlH:
			if len(line) > 0 {
				_, size := utf8.DecodeLastRune(line)
				line = line[:len(line)-size]
			}
		default:
			if b >= 0x20 {
				line = append(line, b)
			}
		}
	}
}
