package scribe

import (
	"errors"
	"io"
	"os"
)

// ErrNoLogFile is returned by file-targeted operations when the logger
// was constructed without a file path.
var ErrNoLogFile = errors.New("log file not provided")

// osExit is swapped out by tests to observe fatal termination.
var osExit = os.Exit

// Logger writes formatted, timestamped lines to standard output and,
// when configured with a file path, to an append-only plain-text file.
// All three fields are fixed at construction; every write operation
// derives its own timestamp.
//
// A Logger holds no lock. Concurrent file-targeted calls on the same
// path are appended in unspecified order; callers that need ordering
// must serialize access themselves.
type Logger struct {
	name     string
	filePath string
	useUTC   bool
	console  io.Writer
}

// New creates a Logger. An empty filePath configures a console-only
// logger whose file-targeted operations return ErrNoLogFile.
//
// When filePath is set, the file is created if absent and verified
// readable and writable; existing content is left untouched. Any I/O
// failure is returned to the caller and no Logger is produced.
func New(name, filePath string, useUTC bool) (*Logger, error) {
	if filePath != "" {
		if err := touchLogFile(filePath); err != nil {
			return nil, err
		}
	}

	return &Logger{
		name:     name,
		filePath: filePath,
		useUTC:   useUTC,
		console:  os.Stdout,
	}, nil
}

// Name returns the display name prepended to every line.
func (l *Logger) Name() string {
	return l.name
}

// FilePath returns the target log file path, or empty for a
// console-only logger.
func (l *Logger) FilePath() string {
	return l.filePath
}

// UTC reports whether timestamps are rendered in UTC rather than
// local time.
func (l *Logger) UTC() bool {
	return l.useUTC
}
