package scribe

import (
	"fmt"
	"time"
)

// errorPrefix marks error-class lines in both destinations.
const errorPrefix = "ERROR: "

// formatLine builds a single log line:
//
//	<name> - [<timestamp>]: <message>
//
// prefixed with "ERROR: " when isError is set. The message is written
// verbatim; embedded newlines or separator sequences are not escaped.
func (l *Logger) formatLine(msg any, isError bool) string {
	ts := l.timestamp()
	m := stringifyMessage(msg)

	buf := make([]byte, 0, len(errorPrefix)+len(l.name)+len(ts)+len(m)+8)
	if isError {
		buf = append(buf, errorPrefix...)
	}
	buf = append(buf, l.name...)
	buf = append(buf, " - ["...)
	buf = append(buf, ts...)
	buf = append(buf, "]: "...)
	buf = append(buf, m...)

	return string(buf)
}

// timestamp renders the current time as RFC3339 with nanosecond
// precision, in UTC or local time per the logger configuration.
func (l *Logger) timestamp() string {
	now := time.Now()
	if l.useUTC {
		now = now.UTC()
	}
	return now.Format(time.RFC3339Nano)
}

// stringifyMessage converts any type to a string representation
func stringifyMessage(msg any) string {
	switch m := msg.(type) {
	case string:
		return m
	case error:
		return m.Error()
	case fmt.Stringer:
		return m.String()
	default:
		return fmt.Sprintf("%+v", m)
	}
}
