package choose

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(input string) (*engine, *scriptedConsole) {
	con := newScriptedConsole(input)
	return &engine{
		console:  con,
		renderer: newRenderer(&bytes.Buffer{}, ThemeDefault),
		keyMap:   NewDefaultKeyMap(),
	}, con
}

func testEntries(t *testing.T) []menuEntry {
	t.Helper()
	entries, overflow := assignShortcuts(
		[]string{"foo", "foo-baz", "foo-car", "foo-dry", "foo-eel"},
		[]rune(DefaultShortcutAlphabet),
	)
	require.False(t, overflow)
	return entries
}

func testAskRequest(t *testing.T, entries []menuEntry, defaultIndex int) askRequest {
	t.Helper()
	seed, anchor := buildCycle(entries, defaultIndex)
	shortcuts := make(map[rune]string, len(entries))
	for _, entry := range entries {
		if entry.hasMarker {
			shortcuts[entry.marker] = entry.decorated()
		}
	}
	return askRequest{label: "pick: ", entries: entries, seed: seed, pos: anchor, shortcuts: shortcuts}
}

func TestEngineAsk(t *testing.T) {
	t.Parallel()

	t.Run("enter accepts the pre-filled default", func(t *testing.T) {
		t.Parallel()

		entries := testEntries(t)
		eng, _ := newTestEngine("\r")

		reply, err := eng.ask(context.Background(), testAskRequest(t, entries, 2))

		require.NoError(t, err)
		assert.False(t, reply.fallback)
		assert.Equal(t, "s=>foo-car", reply.text)
	})

	t.Run("marker key commits its entry without enter", func(t *testing.T) {
		t.Parallel()

		entries := testEntries(t)
		eng, _ := newTestEngine("d")

		reply, err := eng.ask(context.Background(), testAskRequest(t, entries, 0))

		require.NoError(t, err)
		assert.Equal(t, "d=>foo-dry", reply.text)
	})

	t.Run("up from the first entry wraps to the last", func(t *testing.T) {
		t.Parallel()

		entries := testEntries(t)
		eng, _ := newTestEngine("\x1b[A\r")

		reply, err := eng.ask(context.Background(), testAskRequest(t, entries, 0))

		require.NoError(t, err)
		assert.Equal(t, "l=>foo-eel", reply.text)
	})

	t.Run("down from the last entry wraps to the first", func(t *testing.T) {
		t.Parallel()

		entries := testEntries(t)
		eng, _ := newTestEngine("\x1b[B\r")

		reply, err := eng.ask(context.Background(), testAskRequest(t, entries, 4))

		require.NoError(t, err)
		assert.Equal(t, "f=>foo", reply.text)
	})

	t.Run("repeated navigation keeps cycling through the menu", func(t *testing.T) {
		t.Parallel()

		entries := testEntries(t)
		// Five downs from the first entry land back on it one cycle later.
		eng, _ := newTestEngine("\x1b[B\x1b[B\x1b[B\x1b[B\x1b[B\r")

		reply, err := eng.ask(context.Background(), testAskRequest(t, entries, 0))

		require.NoError(t, err)
		assert.Equal(t, "f=>foo", reply.text)
	})

	t.Run("ctrl+f requests fallback", func(t *testing.T) {
		t.Parallel()

		entries := testEntries(t)
		eng, _ := newTestEngine("\x06")

		reply, err := eng.ask(context.Background(), testAskRequest(t, entries, 0))

		require.NoError(t, err)
		assert.True(t, reply.fallback)
		assert.Empty(t, reply.text)
	})

	t.Run("ctrl+c interrupts and restores the terminal", func(t *testing.T) {
		t.Parallel()

		entries := testEntries(t)
		eng, con := newTestEngine("\x03")

		_, err := eng.ask(context.Background(), testAskRequest(t, entries, 0))

		require.ErrorIs(t, err, ErrInterrupted)
		assert.False(t, con.rawMode, "terminal must be restored on interrupt")
	})

	t.Run("ctrl+d on an empty line reports EOF", func(t *testing.T) {
		t.Parallel()

		entries := testEntries(t)
		eng, _ := newTestEngine("\x15\x04") // clear line, then Ctrl+D

		_, err := eng.ask(context.Background(), testAskRequest(t, entries, 0))

		require.ErrorIs(t, err, ErrEOF)
	})

	t.Run("input running dry reports EOF", func(t *testing.T) {
		t.Parallel()

		entries := testEntries(t)
		eng, _ := newTestEngine("")

		_, err := eng.ask(context.Background(), testAskRequest(t, entries, 0))

		require.ErrorIs(t, err, ErrEOF)
	})

	t.Run("cancelled context aborts the loop", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		entries := testEntries(t)
		eng, _ := newTestEngine("\r")

		_, err := eng.ask(ctx, testAskRequest(t, entries, 0))

		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("tab completes typed text against the menu", func(t *testing.T) {
		t.Parallel()

		entries := testEntries(t)
		eng, _ := newTestEngine("f\t\r")

		// Shortcuts disabled so the marker letters can be typed as text.
		req := testAskRequest(t, entries, 0)
		req.seed = []string{""}
		req.pos = 0
		req.shortcuts = nil

		reply, err := eng.ask(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, "f=>foo", reply.text)
	})

	t.Run("editing away from the seed then submitting returns the typed text", func(t *testing.T) {
		t.Parallel()

		entries := testEntries(t)
		// Clear the default and submit empty.
		eng, _ := newTestEngine("\x15\r")

		reply, err := eng.ask(context.Background(), testAskRequest(t, entries, 0))

		require.NoError(t, err)
		assert.Empty(t, reply.text)
	})
}

func TestHighlightIndex(t *testing.T) {
	t.Parallel()

	entries := testEntries(t)
	seed, anchor := buildCycle(entries, 2)
	eng, _ := newTestEngine("")
	req := askRequest{entries: entries, seed: seed}

	t.Run("seed position maps to its menu entry", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 2, eng.highlightIndex(req, anchor, seed[anchor]))
	})

	t.Run("edited buffer clears the highlight", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, -1, eng.highlightIndex(req, anchor, "something else"))
	})

	t.Run("out of range position clears the highlight", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, -1, eng.highlightIndex(req, len(seed), ""))
	})
}

func TestCompleteText(t *testing.T) {
	t.Parallel()

	entries := testEntries(t)

	tests := []struct {
		name string
		raw  string
		want string
		ok   bool
	}{
		{name: "unique prefix completes fully", raw: "f", want: "f=>foo", ok: true},
		{name: "another unique prefix", raw: "d", want: "d=>foo-dry", ok: true},
		{name: "no match", raw: "zzz", ok: false},
		{name: "empty input extends to the common prefix", raw: "", want: "", ok: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := completeText(tt.raw, entries)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestCommonPrefix(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "foo-", commonPrefix([]string{"foo-bar", "foo-baz", "foo-car"}))
	assert.Equal(t, "", commonPrefix([]string{"abc", "xyz"}))
	assert.Equal(t, "same", commonPrefix([]string{"same", "same"}))
}
