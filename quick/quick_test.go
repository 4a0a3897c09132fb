package quick

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"scribe"
)

// resetDefault clears the package logger so each test starts from the
// zero-setup state.
func resetDefault(t *testing.T) {
	t.Helper()
	mu.Lock()
	std = nil
	mu.Unlock()
}

func TestDefaultLogger_ConsoleOnly(t *testing.T) {
	resetDefault(t)

	l := logger()
	require.Equal(t, "log", l.Name())
	require.Empty(t, l.FilePath())

	require.True(t, errors.Is(LogToFile("x"), scribe.ErrNoLogFile))
}

func TestConfigure_Rejections(t *testing.T) {
	resetDefault(t)

	cases := []struct {
		name string
		args []string
	}{
		{"no args", nil},
		{"malformed pair", []string{"bogus"}},
		{"unknown key", []string{"color=red"}},
		{"bad bool", []string{"utc=maybe"}},
		{"unwritable file", []string{"file=" + filepath.Join(t.TempDir(), "missing", "q.log")}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Error(t, Configure(tc.args...))
		})
	}
}

func TestConfigure_FileLogging(t *testing.T) {
	resetDefault(t)
	path := filepath.Join(t.TempDir(), "q.log")

	require.NoError(t, Configure("name=Quick", "file="+path, "utc=true"))
	require.NoError(t, LogToFile("hi"))
	require.NoError(t, ErrorToFile("bad"))

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(string(b), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasPrefix(lines[0], "Quick - ["))
	require.True(t, strings.HasPrefix(lines[1], "ERROR: Quick - ["))
}

func TestConfigure_TrimsSpaces(t *testing.T) {
	resetDefault(t)

	require.NoError(t, Configure(" name = Spaced ", "utc = true"))
	require.Equal(t, "Spaced", logger().Name())
	require.True(t, logger().UTC())
}
