package input

import statepkg "github.com/kk-code-lab/gfile/internal/state"

// Control bytes the decoder and the prompt care about.
const (
	KeyEscape    byte = 0x1b
	KeyCtrlC     byte = 0x03
	KeyEnter     byte = '\r'
	KeyNewline   byte = '\n'
	KeyBackspace byte = 0x7f
	KeyCtrlH     byte = 0x08
)

// KeyAction maps a single byte to its action. Unbound bytes map to
// NoneAction.
func KeyAction(b byte) statepkg.Action {
	switch b {
	case 'k':
		return statepkg.MoveUpAction{}
	case 'j':
		return statepkg.MoveDownAction{}
	case 'l':
		return statepkg.MoveRightAction{}
	case 'h':
		return statepkg.MoveLeftAction{}
	case ' ', KeyEnter, KeyNewline:
		return statepkg.DescendAction{}
	case 'a':
		return statepkg.ParentAction{}
	case 'g', 'd':
		return statepkg.JumpTopAction{}
	case 'G', 'c':
		return statepkg.JumpBottomAction{}
	case '.':
		return statepkg.ToggleHiddenAction{}
	case 'q', KeyCtrlC:
		return statepkg.QuitAction{}
	case 's':
		return statepkg.ShellAction{}
	case 't':
		return statepkg.TerminalAction{}
	case 'f':
		return statepkg.OpenAction{}
	case '!':
		return statepkg.CommandAction{}
	case 'H':
		return statepkg.HelpAction{}
	default:
		return statepkg.NoneAction{}
	}
}

// arrowAction maps the final byte of ESC [ x and ESC O x.
func arrowAction(final byte) statepkg.Action {
	switch final {
	case 'A':
		return statepkg.MoveUpAction{}
	case 'B':
		return statepkg.MoveDownAction{}
	case 'C':
		return statepkg.MoveRightAction{}
	case 'D':
		return statepkg.MoveLeftAction{}
	default:
		return statepkg.NoneAction{}
	}
}
