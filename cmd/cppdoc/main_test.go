package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandRequiresExactlyOneArg(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "cppdoc [file]", cmd.Use)
	assert.NoError(t, cmd.Args(cmd, []string{"a.h"}))
	assert.Error(t, cmd.Args(cmd, []string{}))
	assert.Error(t, cmd.Args(cmd, []string{"a.h", "b.h"}))
}

func TestIndexFlagDefaultsToFalse(t *testing.T) {
	cmd := newRootCmd()
	flag := cmd.Flags().Lookup("index")
	require.NotNil(t, flag)
	assert.Equal(t, "false", flag.DefValue)
}

func TestRunParsesFileAndPrintsScope(t *testing.T) {
	path := filepath.Join(t.TempDir(), "widget.h")
	require.NoError(t, os.WriteFile(path, []byte("namespace n { class Widget {}; }"), 0o644))

	assert.NoError(t, run(path, false))
	assert.NoError(t, run(path, true))
}

func TestRunReportsMissingFile(t *testing.T) {
	assert.Error(t, run(filepath.Join(t.TempDir(), "missing.h"), false))
}

func TestRunReportsSyntaxError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.h")
	require.NoError(t, os.WriteFile(path, []byte("class {};"), 0o644))

	assert.Error(t, run(path, false))
}
