package scribe

import (
	"fmt"
	"os"
)

// Log writes an info line to standard output. The log file is never
// touched.
func (l *Logger) Log(msg any) {
	fmt.Fprintln(l.console, l.formatLine(msg, false))
}

// Error writes an error line to standard output. The log file is never
// touched.
func (l *Logger) Error(msg any) {
	fmt.Fprintln(l.console, l.formatLine(msg, true))
}

// LogToFile appends an info line to the log file. Nothing is written to
// standard output. Returns ErrNoLogFile when the logger has no file
// path configured.
func (l *Logger) LogToFile(msg any) error {
	if l.filePath == "" {
		return ErrNoLogFile
	}
	return appendLogLine(l.filePath, l.formatLine(msg, false))
}

// ErrorToFile appends an error line to the log file. Nothing is written
// to standard output. Returns ErrNoLogFile when the logger has no file
// path configured.
func (l *Logger) ErrorToFile(msg any) error {
	if l.filePath == "" {
		return ErrNoLogFile
	}
	return appendLogLine(l.filePath, l.formatLine(msg, true))
}

// LogBoth writes the info line to standard output first, then appends
// it to the log file. The two writes are not atomic: the console line
// is emitted even when the file write fails, and each destination
// carries its own timestamp.
func (l *Logger) LogBoth(msg any) error {
	l.Log(msg)
	return l.LogToFile(msg)
}

// ErrorBoth writes the error line to standard output first, then
// appends it to the log file. Same ordering and atomicity as LogBoth.
func (l *Logger) ErrorBoth(msg any) error {
	l.Error(msg)
	return l.ErrorToFile(msg)
}

// Fatal writes an error line to standard output, then terminates the
// process with exit status 1.
func (l *Logger) Fatal(msg any) {
	l.Error(msg)
	osExit(1)
}

// FatalToFile appends an error line to the log file, then terminates
// the process with exit status 1. A file failure (including a missing
// file path) is reported on standard error before termination; the
// process exits either way.
func (l *Logger) FatalToFile(msg any) {
	if err := l.ErrorToFile(msg); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	osExit(1)
}
