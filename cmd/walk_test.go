package cmd

import (
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalkCmd_ReportsAndIndexes(t *testing.T) {
	root := writeTree(t, "a.txt", "sub/b.txt")

	output, err := executeCommand(t, "walk", root)
	require.NoError(t, err)

	want := "File: \"a.txt\" ('a.txt')\n" +
		"File: \"b.txt\" ('b.txt')\n" +
		"file: #0 'a.txt' (\"a.txt\")\n" +
		"file: #1 'b.txt' (\"b.txt\")\n"
	assert.Equal(t, want, output)
}

func TestWalkCmd_Quiet(t *testing.T) {
	root := writeTree(t, "a.txt", "sub/a.txt")

	output, err := executeCommand(t, "walk", "-q", root)
	require.NoError(t, err)

	assert.Equal(t, "file: #0 'a.txt' (\"a.txt\")\nfile: #1 'a.txt' (\"a.txt\")\n", output)
}

func TestWalkCmd_MissingRoot(t *testing.T) {
	_, err := executeCommand(t, "walk", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestWalkCmd_TooManyArgs(t *testing.T) {
	_, err := executeCommand(t, "walk", t.TempDir(), t.TempDir())
	require.Error(t, err)
}

func TestWalkRoot(t *testing.T) {
	assert.Equal(t, "/tmp/t", string(walkRoot([]string{"/tmp/t"})))
	assert.Equal(t, viper.GetString(walkRootConfigKey), string(walkRoot(nil)))
	assert.Equal(t, "/bin", defaultWalkRoot)
}
