package scribe

import (
	"fmt"
	"os"
)

// touchLogFile verifies the log file is readable and writable, creating
// it if absent. Existing content is left untouched.
func touchLogFile(path string) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close log file %q: %w", path, err)
	}
	return nil
}

// appendLogLine appends one formatted line to the log file through an
// append-mode handle. Lines are separated by a single newline; the
// separator is written before the line only when the file already has
// content, and no trailing newline follows the last line.
//
// The file must exist; construction created it, so a missing file here
// means it was removed afterwards and the error says so.
func appendLogLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %q: %w", path, err)
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return fmt.Errorf("failed to stat log file %q: %w", path, err)
	}

	buf := make([]byte, 0, len(line)+1)
	if fi.Size() > 0 {
		buf = append(buf, '\n')
	}
	buf = append(buf, line...)

	if _, err := f.Write(buf); err != nil {
		f.Close()
		return fmt.Errorf("failed to write log file %q: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close log file %q: %w", path, err)
	}
	return nil
}
