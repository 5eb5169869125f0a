package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestGenerateHistoryReset(t *testing.T) {
	dir := t.TempDir()
	corpusPath := filepath.Join(dir, "names.txt")
	require.NoError(t, os.WriteFile(corpusPath, []byte("bob\n"), 0o644))
	dbPath := filepath.Join(dir, "namegen.db")

	out, err := execute(t, "generate", "--db", dbPath, "--corpus", corpusPath, "--count", "3", "--seed", "7")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "bob"), "output: %q", out)

	out, err = execute(t, "history", "list", "--db", dbPath)
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "bob"), "output: %q", out)

	out, err = execute(t, "history", "view", "1", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Seed:        7")

	_, err = execute(t, "reset", "--db", dbPath)
	assert.Error(t, err)

	out, err = execute(t, "reset", "--db", dbPath, "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted 3 generated names.")
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	corpusPath := filepath.Join(dir, "names.csv")
	require.NoError(t, os.WriteFile(corpusPath, []byte("ab"), 0o644))

	out, err := execute(t, "inspect", "--corpus", corpusPath, "--separator", ",", "--max-chunk", "3", "--key", "^", "--key", "zz")
	require.NoError(t, err)
	assert.Contains(t, out, "13")
	assert.Contains(t, out, "ab$")
	assert.Contains(t, out, "is not a context key")
}

func TestGenerate_MissingCorpus(t *testing.T) {
	t.Setenv("NAMEGEN_CORPUS", "")
	_, err := execute(t, "generate", "--no-history", "--corpus", "")
	assert.Error(t, err)
}

func TestDisplayContinuation(t *testing.T) {
	assert.Equal(t, "ab$", displayContinuation("ab\x03"))
	assert.Equal(t, "$", displayContinuation("\x03"))
	assert.Equal(t, "ab", displayContinuation("ab"))
}

func TestTally(t *testing.T) {
	counts, order := tally([]string{"a", "b", "b", "c", "b", "a"})
	assert.Equal(t, []string{"b", "a", "c"}, order)
	assert.Equal(t, 3, counts["b"])
}
