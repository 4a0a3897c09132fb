package quick

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"scribe"
)

// Default logger state. The quick layer may be reconfigured from init
// paths of concurrent goroutines, so access goes through a mutex; the
// underlying scribe.Logger itself holds no lock.
var (
	mu  sync.Mutex
	std *scribe.Logger
)

// logger returns the active default logger, creating a console-only
// one named "log" on first use. Console-only construction performs no
// I/O and cannot fail.
func logger() *scribe.Logger {
	mu.Lock()
	defer mu.Unlock()
	if std == nil {
		std, _ = scribe.New("log", "", false)
	}
	return std
}

// config parses configuration strings into constructor parameters.
// Each argument must be in "key=value" format with keys "name", "file"
// and "utc". Values for unset keys fall back to the defaults of the
// zero-setup logger.
func config(args ...string) (name, file string, useUTC bool, err error) {
	name = "log"

	for _, arg := range args {
		key, value, err := parseKeyValue(arg)
		if err != nil {
			return "", "", false, fmt.Errorf("invalid config format: %s", arg)
		}

		switch key {
		case "name":
			name = value
		case "file":
			file = value
		case "utc":
			v, err := strconv.ParseBool(value)
			if err != nil {
				return "", "", false, fmt.Errorf("invalid bool value for utc: %s", value)
			}
			useUTC = v
		default:
			return "", "", false, fmt.Errorf("unknown config key: %s", key)
		}
	}
	return name, file, useUTC, nil
}

// parseKeyValue splits a configuration string into key and value parts.
// Input format must be "key=value". Leading and trailing spaces are
// removed from both parts. Returns error if format is invalid.
func parseKeyValue(arg string) (string, string, error) {
	parts := strings.Split(strings.TrimSpace(arg), "=")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid format")
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), nil
}
