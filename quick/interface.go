// Package quick provides zero-setup access to a package-level scribe
// logger. Without configuration it logs to the console under the name
// "log"; Configure rebuilds it from "key=value" statements.
package quick

import (
	"fmt"

	"scribe"
)

// Configure replaces the default logger using string statements.
// e.g. quick.Configure("name=Svc", "file=out.txt", "utc=true")
func Configure(args ...string) error {
	if len(args) == 0 {
		return fmt.Errorf("no config provided")
	}

	name, file, useUTC, err := config(args...)
	if err != nil {
		return err
	}

	l, err := scribe.New(name, file, useUTC)
	if err != nil {
		return err
	}

	mu.Lock()
	std = l
	mu.Unlock()
	return nil
}

// Log writes an info line to standard output.
func Log(msg any) {
	logger().Log(msg)
}

// Error writes an error line to standard output.
func Error(msg any) {
	logger().Error(msg)
}

// LogToFile appends an info line to the configured log file.
func LogToFile(msg any) error {
	return logger().LogToFile(msg)
}

// ErrorToFile appends an error line to the configured log file.
func ErrorToFile(msg any) error {
	return logger().ErrorToFile(msg)
}

// LogBoth writes an info line to standard output and the log file.
func LogBoth(msg any) error {
	return logger().LogBoth(msg)
}

// ErrorBoth writes an error line to standard output and the log file.
func ErrorBoth(msg any) error {
	return logger().ErrorBoth(msg)
}

// Fatal writes an error line to standard output and terminates the
// process with exit status 1.
func Fatal(msg any) {
	logger().Fatal(msg)
}

// FatalToFile appends an error line to the log file and terminates the
// process with exit status 1.
func FatalToFile(msg any) {
	logger().FatalToFile(msg)
}
