package app

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// log writes debug records to the file named by GFILE_LOG. The terminal
// belongs to the UI, so nothing is logged to stderr.
var log = newLogger(io.Discard)

func newLogger(out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	l.SetLevel(logrus.DebugLevel)
	return l
}

// ConfigureLogging points the logger at path. An empty path discards
// records. The returned function closes the log file.
func ConfigureLogging(path string) (func() error, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file %s: %w", path, err)
	}
	log.SetOutput(f)
	return func() error {
		log.SetOutput(io.Discard)
		return f.Close()
	}, nil
}
