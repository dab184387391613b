package app

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"time"
)

// DefaultPollInterval bounds each wait for a key so that a resize repaints
// without input.
const DefaultPollInterval = 100 * time.Millisecond

// Config collects everything the application reads from its environment.
type Config struct {
	Path         string
	PollInterval time.Duration // 0 waits for keys without a bound
	Term         string
	NoColor      bool
	LogPath      string

	Getenv   func(string) string
	LookPath func(string) (string, error)
	GOOS     string
}

// ConfigFromEnv builds a Config for path from the process environment.
func ConfigFromEnv(path string) (Config, error) {
	return configFromEnv(path, os.Getenv)
}

func configFromEnv(path string, getenv func(string) string) (Config, error) {
	cfg := Config{
		Path:         path,
		PollInterval: DefaultPollInterval,
		Term:         getenv("TERM"),
		NoColor:      getenv("NO_COLOR") != "",
		LogPath:      getenv("GFILE_LOG"),
		Getenv:       getenv,
		LookPath:     exec.LookPath,
		GOOS:         runtime.GOOS,
	}
	if raw := getenv("GFILE_POLL"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid GFILE_POLL %q: %w", raw, err)
		}
		if d < 0 {
			return Config{}, fmt.Errorf("invalid GFILE_POLL %q: negative duration", raw)
		}
		cfg.PollInterval = d
	}
	return cfg, nil
}

func (c *Config) withDefaults() {
	if c.Getenv == nil {
		c.Getenv = os.Getenv
	}
	if c.LookPath == nil {
		c.LookPath = exec.LookPath
	}
	if c.GOOS == "" {
		c.GOOS = runtime.GOOS
	}
}
