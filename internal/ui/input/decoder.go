package input

import (
	"context"
	"time"

	statepkg "github.com/kk-code-lab/gfile/internal/state"
)

// EscapeTimeout bounds the wait for each byte following ESC.
const EscapeTimeout = 25 * time.Millisecond

// sentinel stands in for a byte that did not arrive in time.
const sentinel byte = 0

// ByteSource is the part of the Listener the decoder consumes.
type ByteSource interface {
	Wait(ctx context.Context) (byte, error)
	WaitTimeout(d time.Duration) (byte, bool)
}

// Decoder turns the raw byte stream into actions.
type Decoder struct {
	src           ByteSource
	escapeTimeout time.Duration
}

// NewDecoder creates a decoder reading from src.
func NewDecoder(src ByteSource) *Decoder {
	return &Decoder{src: src, escapeTimeout: EscapeTimeout}
}

// Next blocks for the next key and returns its action. Errors come from the
// byte source (context end or a stopped listener).
func (d *Decoder) Next(ctx context.Context) (statepkg.Action, error) {
	b, err := d.src.Wait(ctx)
	if err != nil {
		return statepkg.NoneAction{}, err
	}
	if b == KeyEscape {
		return d.escapeSequence(), nil
	}
	return KeyAction(b), nil
}

// escapeSequence reads the two bytes after ESC. Anything other than a
// cursor key, including a lone ESC, maps to NoneAction.
func (d *Decoder) escapeSequence() statepkg.Action {
	seq := d.escapeTail()
	switch seq[0] {
	case '[', 'O':
		return arrowAction(seq[1])
	default:
		return statepkg.NoneAction{}
	}
}

func (d *Decoder) escapeTail() [2]byte {
	var seq [2]byte
	for i := range seq {
		b, ok := d.src.WaitTimeout(d.escapeTimeout)
		if !ok {
			b = sentinel
		}
		seq[i] = b
	}
	return seq
}

// DiscardEscape drops the bytes that may follow an ESC already returned by
// ReadRaw, leaving later input buffered.
func (d *Decoder) DiscardEscape() {
	d.escapeTail()
}

// ReadRaw returns the next raw byte, for line prompts.
func (d *Decoder) ReadRaw(ctx context.Context) (byte, error) {
	return d.src.Wait(ctx)
}
