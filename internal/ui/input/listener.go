//go:build !windows && !plan9 && !js && !wasip1

package input

import (
	"context"
	"errors"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sys/unix"
)

// ErrListenerStopped is returned by Wait once the listener has stopped and
// every buffered byte has been consumed.
var ErrListenerStopped = errors.New("key listener stopped")

const readChunk = 64

// Listener reads the terminal in the background and buffers the bytes for
// the event loop. It can be parked while a foreground child owns the
// terminal so that the child sees every key press.
type Listener struct {
	src    *os.File
	wakeR  *os.File
	wakeW  *os.File
	notify chan struct{}
	done   chan struct{}
	closed chan struct{}

	mu  sync.Mutex
	buf []byte
	err error

	suspendReq atomic.Bool
	suspendAck atomic.Bool
	ackCh      chan struct{}
	resumeCh   chan struct{}

	closeOnce sync.Once
}

// NewListener starts listening on src.
func NewListener(src *os.File) (*Listener, error) {
	if src == nil {
		return nil, errors.New("no input available")
	}
	wakeR, wakeW, err := os.Pipe()
	if err != nil {
		return nil, err
	}
	l := &Listener{
		src:      src,
		wakeR:    wakeR,
		wakeW:    wakeW,
		notify:   make(chan struct{}, 1),
		done:     make(chan struct{}),
		closed:   make(chan struct{}),
		ackCh:    make(chan struct{}, 1),
		resumeCh: make(chan struct{}, 1),
	}
	go l.run()
	return l, nil
}

func (l *Listener) run() {
	defer close(l.done)

	srcFd := int(l.src.Fd())
	wakeFd := int(l.wakeR.Fd())
	chunk := make([]byte, readChunk)

	for {
		select {
		case <-l.closed:
			return
		default:
		}

		if l.suspendReq.Load() {
			l.suspendAck.Store(true)
			signal(l.ackCh)
			select {
			case <-l.resumeCh:
			case <-l.closed:
				return
			}
			continue
		}

		srcReady, woken, err := waitReadable(srcFd, wakeFd)
		if err != nil {
			l.stop(err)
			return
		}
		if woken {
			l.drainWake()
			continue
		}
		if !srcReady {
			continue
		}

		n, err := l.src.Read(chunk)
		if n > 0 {
			l.push(chunk[:n])
		}
		if err != nil {
			l.stop(err)
			return
		}
	}
}

func waitReadable(srcFd, wakeFd int) (bool, bool, error) {
	for {
		var readfds unix.FdSet
		readfds.Set(srcFd)
		readfds.Set(wakeFd)
		maxfd := srcFd
		if wakeFd > maxfd {
			maxfd = wakeFd
		}
		n, err := unix.Select(maxfd+1, &readfds, nil, nil, nil)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return false, false, err
		}
		if n == 0 {
			return false, false, nil
		}
		return readfds.IsSet(srcFd), readfds.IsSet(wakeFd), nil
	}
}

// drainWake consumes pending wake-ups. Select reported the pipe readable, so
// the read does not block; leftovers trigger another pass.
func (l *Listener) drainWake() {
	var scratch [16]byte
	_, _ = l.wakeR.Read(scratch[:])
}

func (l *Listener) push(p []byte) {
	l.mu.Lock()
	l.buf = append(l.buf, p...)
	l.mu.Unlock()
	signal(l.notify)
}

func (l *Listener) stop(err error) {
	l.mu.Lock()
	if l.err == nil {
		l.err = err
	}
	l.mu.Unlock()
}

func (l *Listener) wake() {
	_, _ = l.wakeW.Write([]byte{1})
}

func signal(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

// Poll pops one buffered byte without blocking.
func (l *Listener) Poll() (byte, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.buf) == 0 {
		return 0, false
	}
	b := l.buf[0]
	l.buf = l.buf[1:]
	return b, true
}

// Wait blocks until a byte is available, ctx ends, or the listener has
// stopped with nothing left to deliver.
func (l *Listener) Wait(ctx context.Context) (byte, error) {
	for {
		if b, ok := l.Poll(); ok {
			return b, nil
		}
		select {
		case <-l.notify:
		case <-l.done:
			if b, ok := l.Poll(); ok {
				return b, nil
			}
			return 0, ErrListenerStopped
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}
}

// WaitTimeout waits at most d for a byte.
func (l *Listener) WaitTimeout(d time.Duration) (byte, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()
	b, err := l.Wait(ctx)
	return b, err == nil
}

// Suspend parks the listener and returns once it is idle and no longer
// reading from the terminal.
func (l *Listener) Suspend() {
	l.suspendReq.Store(true)
	l.wake()
	for !l.suspendAck.Load() {
		select {
		case <-l.ackCh:
		case <-l.done:
			return
		}
	}
}

// Resume re-arms a suspended listener.
func (l *Listener) Resume() {
	l.suspendReq.Store(false)
	l.suspendAck.Store(false)
	signal(l.resumeCh)
}

// Clear drops every buffered byte.
func (l *Listener) Clear() {
	l.mu.Lock()
	l.buf = l.buf[:0]
	l.mu.Unlock()
	select {
	case <-l.notify:
	default:
	}
}

// Err returns the error that stopped the listener, if any.
func (l *Listener) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Close stops the listener loop and waits for it to exit. The source file
// is left open.
func (l *Listener) Close() error {
	l.closeOnce.Do(func() {
		close(l.closed)
		l.wake()
		<-l.done
		_ = l.wakeW.Close()
		_ = l.wakeR.Close()
	})
	return nil
}
