package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), append([]string{"-log-level", "error"}, args...), &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func TestGenerateThenSolve(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ladder_3.txt")

	code, out, errOut := runCLI(t, "-gen", "ladder", "-n", "3", "-o", path, "-max-cap", "1")
	require.Equal(t, 0, code, errOut)
	require.Contains(t, out, "Wrote "+path+": 8 nodes, 14 edges")

	code, out, errOut = runCLI(t, path)
	require.Equal(t, 0, code, errOut)
	require.Contains(t, out, "Processing file: "+path)
	require.Contains(t, out, "Maximum Flow: 2")
	require.Contains(t, out, "Edmonds-Karp Algorithm Steps:")
	require.Contains(t, out, "Final Flow Distribution:")
	require.NotContains(t, out, "Results saved")
}

func TestDirectoryWritesCSV(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.txt", "b.txt", "c.txt", "d.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("2\n0 1 5\n"), 0o644))
	}
	csvPath := filepath.Join(dir, "results.csv")

	code, out, errOut := runCLI(t, "-csv", csvPath, "-workers", "2", "-backend", "sparse", "-d", dir)
	require.Equal(t, 0, code, errOut)
	require.Contains(t, out, "Processing 4 files...")
	require.Contains(t, out, filepath.Join(dir, "c.txt")+": 2 nodes, 1 edges, Max Flow = 5, Time = ")
	require.Contains(t, out, "Results saved to "+csvPath)

	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 5)
	require.True(t, strings.HasPrefix(lines[1], "a.txt,2,1,5,"))
}

func TestFailedFileExitCode(t *testing.T) {
	code, out, _ := runCLI(t, filepath.Join(t.TempDir(), "missing.txt"))
	require.Equal(t, 1, code)
	require.Contains(t, out, "Error: ")
}

func TestNodeLimitFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "n.txt")
	require.NoError(t, os.WriteFile(path, []byte("50\n0 49 5\n"), 0o644))

	code, out, _ := runCLI(t, "-max-nodes", "10", path)
	require.Equal(t, 1, code)
	require.Contains(t, out, "node count above limit")

	code, out, _ = runCLI(t, path)
	require.Equal(t, 0, code)
	require.Contains(t, out, "Maximum Flow: 5")
}

func TestBadArguments(t *testing.T) {
	code, _, errOut := runCLI(t, "-gen", "torus")
	require.Equal(t, 2, code)
	require.Contains(t, errOut, "unknown generator")

	path := filepath.Join(t.TempDir(), "n.txt")
	require.NoError(t, os.WriteFile(path, []byte("2\n0 1 5\n"), 0o644))
	code, _, errOut = runCLI(t, "-backend", "quantum", path)
	require.Equal(t, 2, code)
	require.Contains(t, errOut, "unknown backend")

	code, _, _ = runCLI(t, "-no-such-flag")
	require.Equal(t, 2, code)
}
