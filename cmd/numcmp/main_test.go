package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"gitlab.com/rogov-ks/numcmp/config"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type result struct {
	code   int
	stdout string
	stderr string
}

func execute(t *testing.T, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(append([]string{}, args...), &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func writeFiles(t *testing.T, contents ...string) []string {
	t.Helper()
	dir := t.TempDir()
	paths := make([]string, 0, len(contents))
	for i, c := range contents {
		p := filepath.Join(dir, string(rune('a'+i))+".txt")
		require.NoError(t, os.WriteFile(p, []byte(c), 0o644))
		paths = append(paths, p)
	}
	return paths
}

func TestSameNumbers(t *testing.T) {
	t.Setenv(config.EnvPath, "")
	files := writeFiles(t, "3 apples, 4 oranges", "4 oranges, 3 apples")

	res := execute(t, files[0], files[1])
	require.Equal(t, 0, res.code)
	require.Equal(t, "The files contain the same set of numbers (with the same frequency).\n", res.stdout)
	require.Empty(t, res.stderr)
}

func TestDifferentNumbers(t *testing.T) {
	t.Setenv(config.EnvPath, "")
	files := writeFiles(t, "10 20 20", "10 20")

	res := execute(t, files[0], files[1])
	require.Equal(t, 0, res.code)
	require.Equal(t, "The files do not contain the same set of numbers.\n"+
		"Number of numbers in "+files[0]+": 3\n"+
		"Number of numbers in "+files[1]+": 2\n"+
		"Numbers in "+files[0]+" but not in "+files[1]+":\n"+
		"Number 20 occurs 1 time(s)\n", res.stdout)
	require.Empty(t, res.stderr)
}

func TestMissingFile(t *testing.T) {
	t.Setenv(config.EnvPath, "")
	files := writeFiles(t, "1 2 3")
	missing := filepath.Join(t.TempDir(), "missing.txt")

	res := execute(t, missing, files[0])
	require.Equal(t, 0, res.code)
	require.Empty(t, res.stdout)
	require.Equal(t, "Error: The file '"+missing+"' was not found.\n", res.stderr)

	res = execute(t, files[0], missing)
	require.Equal(t, 0, res.code)
	require.Empty(t, res.stdout)
	require.Equal(t, "Error: The file '"+missing+"' was not found.\n", res.stderr)
}

func TestReadFailure(t *testing.T) {
	t.Setenv(config.EnvPath, "")
	files := writeFiles(t, "1 2 3")
	dir := t.TempDir()

	res := execute(t, dir, files[0])
	require.Equal(t, 0, res.code)
	require.Empty(t, res.stdout)
	require.Contains(t, res.stderr, "Error reading '"+dir+"': ")
}

func TestReadErrorExitCode(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "numcmp.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("read_error_exit_code: 3\n"), 0o644))
	t.Setenv(config.EnvPath, cfg)

	res := execute(t, filepath.Join(t.TempDir(), "nope"), filepath.Join(t.TempDir(), "nope2"))
	require.Equal(t, 3, res.code)
	require.Empty(t, res.stdout)
}

func TestUsageErrors(t *testing.T) {
	t.Setenv(config.EnvPath, "")
	for _, args := range [][]string{
		{},
		{"only-one"},
		{"a", "b", "c"},
		{"--verbose", "a", "b"},
	} {
		res := execute(t, args...)
		require.Equal(t, 1, res.code, args)
		require.Empty(t, res.stdout, args)
		require.Contains(t, res.stderr, "Error: ", args)
		require.Contains(t, res.stderr, "Usage:", args)
	}
}

func TestHelp(t *testing.T) {
	for _, flag := range []string{"-h", "--help"} {
		res := execute(t, flag)
		require.Equal(t, 0, res.code)
		require.Contains(t, res.stdout, "numcmp <file1> <file2>")
		require.Contains(t, res.stdout, "Path to the first file")
		require.Contains(t, res.stdout, "Path to the second file")
		require.Empty(t, res.stderr)
	}
}

func TestBadConfig(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "numcmp.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("log_level: loud\n"), 0o644))
	t.Setenv(config.EnvPath, cfg)
	files := writeFiles(t, "1", "1")

	res := execute(t, files[0], files[1])
	require.Equal(t, 1, res.code)
	require.Empty(t, res.stdout)
	require.Contains(t, res.stderr, "log_level")
	require.NotContains(t, res.stderr, "Usage:")
}

func TestDebugLogging(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "numcmp.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("log_level: debug\n"), 0o644))
	t.Setenv(config.EnvPath, cfg)
	files := writeFiles(t, "007", "7")

	res := execute(t, files[0], files[1])
	require.Equal(t, 0, res.code)
	require.Equal(t, "The files contain the same set of numbers (with the same frequency).\n", res.stdout)
	require.Contains(t, res.stderr, "starting comparison")
	require.Contains(t, res.stderr, "comparison done")
}
