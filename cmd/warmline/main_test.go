package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warmlinehq/warmline"
)

// newTestMain returns a Main backed by a temporary database file.
func newTestMain(t *testing.T) *Main {
	t.Helper()

	m := NewMain()
	m.DBPath = t.TempDir() + "/warmline.db"
	return m
}

func runCmd(t *testing.T, m *Main, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errBuf bytes.Buffer
	err = m.Run(context.Background(), args, &out, &errBuf)
	return out.String(), errBuf.String(), err
}

func TestMain_SourceLifecycle(t *testing.T) {
	t.Parallel()

	m := newTestMain(t)

	stdout, _, err := runCmd(t, m, "source", "add", "https://example.com/speakers", "--tag", "mentor", "--every", "48")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Added source")
	assert.Contains(t, stdout, "https://example.com/speakers")
	assert.Contains(t, stdout, "every 48h")

	stdout, _, err = runCmd(t, m, "source", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "https://example.com/speakers")
	assert.Contains(t, stdout, "[mentor]")
	assert.Contains(t, stdout, "never checked")

	// The list output leads with the source ID.
	fields := strings.Fields(stdout)
	require.NotEmpty(t, fields)
	id := fields[0]

	_, stderr, err := runCmd(t, m, "source", "remove", id)
	require.Error(t, err)
	assert.Contains(t, stderr, "--force")

	stdout, _, err = runCmd(t, m, "source", "remove", id, "--force")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Removed source")

	stdout, _, err = runCmd(t, m, "source", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No sources found")
}

func TestMain_DuplicateSource(t *testing.T) {
	t.Parallel()

	m := newTestMain(t)

	_, _, err := runCmd(t, m, "source", "add", "https://example.com/speakers")
	require.NoError(t, err)

	_, stderr, err := runCmd(t, m, "source", "add", "https://example.com/speakers")
	require.Error(t, err)
	assert.Equal(t, warmline.ECONFLICT, warmline.ErrorCode(err))
	assert.Contains(t, stderr, "already registered")
}

func TestMain_PeopleEmpty(t *testing.T) {
	t.Parallel()

	m := newTestMain(t)

	stdout, _, err := runCmd(t, m, "people")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No people found")
}

func TestMain_NoCommand(t *testing.T) {
	t.Parallel()

	m := newTestMain(t)

	_, _, err := runCmd(t, m, []string{}...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

func TestMain_Help(t *testing.T) {
	t.Parallel()

	m := newTestMain(t)

	stdout, _, err := runCmd(t, m, "--help")
	require.NoError(t, err)
	assert.Contains(t, stdout, "discover")
}
