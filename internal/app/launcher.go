//go:build !windows && !plan9 && !js && !wasip1

package app

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

// Launcher starts external programs on behalf of the event loop.
type Launcher interface {
	// Run starts argv in dir attached to the terminal and waits for it.
	Run(dir string, argv []string) error
	// Start launches argv in dir in its own session without waiting.
	Start(dir string, argv []string) error
	// Exec replaces the current process with path. It only returns on
	// failure.
	Exec(dir, path string, argv []string) error
}

type osLauncher struct {
	tty *os.File
}

func (l osLauncher) Run(dir string, argv []string) error {
	if len(argv) == 0 {
		return fmt.Errorf("empty command")
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = dir
	if l.tty != nil {
		cmd.Stdin = l.tty
		cmd.Stdout = l.tty
		cmd.Stderr = l.tty
	} else {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}
	return cmd.Run()
}

func (l osLauncher) Start(dir string, argv []string) error {
	if len(argv) == 0 {
		return fmt.Errorf("empty command")
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	if err := cmd.Start(); err != nil {
		return err
	}
	// Reap the child so it does not linger as a zombie.
	go func() { _ = cmd.Wait() }()
	return nil
}

func (l osLauncher) Exec(dir, path string, argv []string) error {
	if err := os.Chdir(dir); err != nil {
		return err
	}
	return unix.Exec(path, argv, os.Environ())
}
