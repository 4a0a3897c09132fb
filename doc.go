// Package scribe provides a minimal, synchronous logger that writes
// name-and-timestamp prefixed lines to standard output and/or an
// append-only plain-text log file.
//
// Features:
//   - Console and file destinations, separately or combined
//   - Info and error variants with a fixed ERROR prefix
//   - RFC3339 timestamps in UTC or local time per logger
//   - File writes that append without touching existing content
//   - Fatal variants that log and terminate the process
//   - Explicit error returns on every file operation
package scribe
