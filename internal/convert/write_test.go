package convert

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.csv")
	output := filepath.Join(dir, "out.json")

	writeInput(t, input, "title\nA\nB\n")

	res, err := ConvertFile(input, output, testOptions())
	require.NoError(t, err)
	assert.Len(t, res.Documents, 2)

	data, err := os.ReadFile(output)
	require.NoError(t, err)

	var docs []map[string]any
	require.NoError(t, json.Unmarshal(data, &docs))
	assert.Len(t, docs, 2)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "no temporary files are left behind")

	info, err := os.Stat(output)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(filePerm), info.Mode().Perm())
}

func TestConvertFileFailureKeepsPreviousOutput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.csv")
	output := filepath.Join(dir, "out.json")

	writeInput(t, output, "previous")
	writeInput(t, input, "")

	_, err := ConvertFile(input, output, testOptions())
	require.ErrorIs(t, err, ErrEmptyInput)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(data))

	_, err = ConvertFile(filepath.Join(dir, "missing.csv"), output, testOptions())
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestWatchReconvertsOnChange(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.csv")
	output := filepath.Join(dir, "out.json")

	writeInput(t, input, "title\nFirst version\n")

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- Watch(ctx, input, output, testOptions()) }()

	require.Eventually(t, func() bool {
		data, err := os.ReadFile(output)
		return err == nil && json.Valid(data) && strings.Contains(string(data), "First version")
	}, 5*time.Second, 50*time.Millisecond)

	// Give the watcher time to register before changing the file.
	time.Sleep(200 * time.Millisecond)
	writeInput(t, input, "title\nSecond version\n")

	require.Eventually(t, func() bool {
		data, err := os.ReadFile(output)
		return err == nil && strings.Contains(string(data), "Second version")
	}, 5*time.Second, 50*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

// lockedBuffer is a log sink shared between the watch loop and the test.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

func TestWatchCoalescesBurstsAndStopsCleanly(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.csv")
	output := filepath.Join(dir, "out.json")

	writeInput(t, input, "title\nFirst version\n")

	logs := &lockedBuffer{}
	opts := testOptions()
	opts.Logger = log.New(logs, "", 0)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- Watch(ctx, input, output, opts) }()

	require.Eventually(t, func() bool {
		return strings.Contains(logs.String(), "watching ")
	}, 5*time.Second, 20*time.Millisecond)

	for _, title := range []string{"Second", "Third", "Fourth"} {
		writeInput(t, input, "title\n"+title+" version\n")
	}

	require.Eventually(t, func() bool {
		data, err := os.ReadFile(output)
		return err == nil && strings.Contains(string(data), "Fourth version")
	}, 5*time.Second, 50*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}

	// Watch has returned, so no conversion can still be writing.
	assert.Equal(t, 1, strings.Count(logs.String(), "converting"))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}
