package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, dbPath string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("NOTESBOT_LOG_FILE", filepath.Join(t.TempDir(), "bot.log"))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--db", dbPath}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestCLI_FolderAndTasks(t *testing.T) {
	db := filepath.Join(t.TempDir(), "bot_settings.db")

	out, err := run(t, db, "init")
	require.NoError(t, err)
	assert.Contains(t, out, db)

	out, err = run(t, db, "folder", "get", "42")
	require.NoError(t, err)
	assert.Equal(t, "\n", out)

	out, err = run(t, db, "folder", "set", "42", "/notes")
	require.NoError(t, err)
	assert.Equal(t, "Notes folder for 42 set to: /notes\n", out)

	out, err = run(t, db, "tasks", "set", "42", "on")
	require.NoError(t, err)
	assert.Equal(t, "All posts as tasks for 42: ON\n", out)

	out, err = run(t, db, "tasks", "get", "42")
	require.NoError(t, err)
	assert.Equal(t, "ON\n", out)

	out, err = run(t, db, "show", "42")
	require.NoError(t, err)
	assert.Contains(t, out, "notes_folder: /notes")
	assert.Contains(t, out, "all_as_tasks: ON")
}

func TestCLI_NegativeChatID(t *testing.T) {
	db := filepath.Join(t.TempDir(), "bot_settings.db")

	_, err := run(t, db, "folder", "set", "--", "-1001234", "/group")
	require.NoError(t, err)

	out, err := run(t, db, "folder", "get", "--", "-1001234")
	require.NoError(t, err)
	assert.Equal(t, "/group\n", out)
}

func TestCLI_BadArguments(t *testing.T) {
	db := filepath.Join(t.TempDir(), "bot_settings.db")

	_, err := run(t, db, "folder", "get", "abc")
	assert.Error(t, err)

	_, err = run(t, db, "tasks", "set", "1", "sometimes")
	assert.Error(t, err)
}

func TestParseSwitch(t *testing.T) {
	for in, want := range map[string]bool{"on": true, "OFF": false, "true": true, "0": false} {
		got, err := parseSwitch(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}
