package choose

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultHistoryConfig(t *testing.T) {
	t.Parallel()

	config := DefaultHistoryConfig()

	assert.True(t, config.Enabled)
	assert.Empty(t, config.File, "default history is memory only")
	assert.Equal(t, 500, config.MaxEntries)
}

func TestDefaultHistoryFile(t *testing.T) {
	path := DefaultHistoryFile()
	require.NotEmpty(t, path)
	assert.Equal(t, filepath.Join("choose", "history"), filepath.Join(filepath.Base(filepath.Dir(path)), filepath.Base(path)))
}

func TestHistoryStoreBasicOperations(t *testing.T) {
	t.Parallel()

	hs := NewHistoryStore(nil)
	assert.True(t, hs.Enabled())
	assert.Empty(t, hs.Entries())

	hs.Add("first")
	hs.Add("second")
	hs.Add("second") // consecutive duplicate is dropped
	hs.Add("third")
	hs.Add("") // empty values are never recorded

	assert.Equal(t, []string{"first", "second", "third"}, hs.Entries())

	hs.Clear()
	assert.Empty(t, hs.Entries())
}

func TestHistoryStoreDisabled(t *testing.T) {
	t.Parallel()

	hs := NewHistoryStore(&HistoryConfig{Enabled: false})

	hs.Add("ignored")
	assert.Empty(t, hs.Entries())
	require.NoError(t, hs.Load())
	require.NoError(t, hs.Save())
}

func TestHistoryStoreTrim(t *testing.T) {
	t.Parallel()

	hs := NewHistoryStore(&HistoryConfig{Enabled: true, MaxEntries: 3})

	for _, v := range []string{"a", "b", "c", "d", "e"} {
		hs.Add(v)
	}

	assert.Equal(t, []string{"c", "d", "e"}, hs.Entries())
}

func TestHistoryStoreEntriesReturnsCopy(t *testing.T) {
	t.Parallel()

	hs := NewHistoryStore(nil)
	hs.Add("original")

	entries := hs.Entries()
	entries[0] = "mutated"

	assert.Equal(t, []string{"original"}, hs.Entries())
}

func TestHistoryStorePersistence(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "nested", "history")

	hs := NewHistoryStore(&HistoryConfig{Enabled: true, MaxEntries: 100, File: file})
	hs.Add("alpha")
	hs.Add("beta")
	require.NoError(t, hs.Save())

	reloaded := NewHistoryStore(&HistoryConfig{Enabled: true, MaxEntries: 100, File: file})
	require.NoError(t, reloaded.Load())
	assert.Equal(t, []string{"alpha", "beta"}, reloaded.Entries())
}

func TestHistoryStoreLoadMissingFile(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "does-not-exist")
	hs := NewHistoryStore(&HistoryConfig{Enabled: true, MaxEntries: 100, File: file})

	require.NoError(t, hs.Load())
	assert.Empty(t, hs.Entries())
}

func TestHistoryStoreLoadSkipsBlankLines(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "history")
	require.NoError(t, os.WriteFile(file, []byte("one\n\n  \ntwo\n"), 0600))

	hs := NewHistoryStore(&HistoryConfig{Enabled: true, MaxEntries: 100, File: file})
	require.NoError(t, hs.Load())
	assert.Equal(t, []string{"one", "two"}, hs.Entries())
}

func TestExpandHistoryPath(t *testing.T) {
	t.Parallel()

	t.Run("tilde expands to the home directory", func(t *testing.T) {
		t.Parallel()

		home, err := os.UserHomeDir()
		require.NoError(t, err)

		got, err := expandHistoryPath("~/.app_choices")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".app_choices"), got)
	})

	t.Run("relative path becomes absolute", func(t *testing.T) {
		t.Parallel()

		got, err := expandHistoryPath("relative/history")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got))
		assert.True(t, strings.HasSuffix(got, filepath.Join("relative", "history")))
	})

	t.Run("empty path stays empty", func(t *testing.T) {
		t.Parallel()

		got, err := expandHistoryPath("")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
