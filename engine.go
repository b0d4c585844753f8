package choose

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// askRequest seeds one interaction with the prompt engine. The seed sequence
// is traversed linearly with hard stops at both ends; boundary-free cycling
// is the cycle builder's job, not the engine's.
type askRequest struct {
	label     string
	entries   []menuEntry
	seed      []string
	pos       int
	shortcuts map[rune]string // marker -> decorated label; nil disables single-key accept
}

// askReply is the typed outcome of one engine interaction. Either the user
// committed to text, or they pressed the fallback key; there is no shared
// flag signalling across the read loop.
type askReply struct {
	text     string
	fallback bool
}

// engine runs the interactive read loop for shortcut-mode selection. It owns
// nothing between invocations; all state lives on the stack of ask.
type engine struct {
	console  console
	renderer *renderer
	keyMap   *KeyMap
}

// ask blocks until the user commits text, requests fallback, or cancels.
// Cancellation surfaces as ErrInterrupted (Ctrl+C) or ErrEOF (Ctrl+D on an
// empty line, or the input source running dry).
func (e *engine) ask(ctx context.Context, req askRequest) (askReply, error) {
	if err := e.console.SetRaw(); err != nil {
		return askReply{}, fmt.Errorf("failed to enter raw mode: %w", err)
	}
	restored := false
	defer func() {
		if !restored {
			if err := e.console.Restore(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to exit raw mode: %v\n", err)
			}
		}
	}()

	width, _, _ := e.console.Size()

	var buffer []rune
	pos := req.pos
	if pos >= 0 && pos < len(req.seed) {
		buffer = []rune(req.seed[pos])
	}
	cursor := len(buffer)

	for {
		select {
		case <-ctx.Done():
			return askReply{}, ctx.Err()
		default:
		}

		highlight := e.highlightIndex(req, pos, string(buffer))
		if err := e.renderer.renderSelect(req.label, string(buffer), cursor, req.entries, highlight, width); err != nil {
			return askReply{}, fmt.Errorf("failed to render: %w", err)
		}

		r, err := e.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				e.renderer.done()
				return askReply{}, ErrEOF
			}
			return askReply{}, fmt.Errorf("failed to read input: %w", err)
		}

		var action KeyAction
		if r == '\x1b' {
			seq, err := e.readEscapeSequence()
			if err != nil {
				continue
			}
			action = e.keyMap.sequenceFor(seq)
		} else {
			action = e.keyMap.actionFor(r)
		}

		// Marker keys take priority over plain text entry: a single
		// keystroke commits the decorated label it was assigned to.
		if action == ActionNone {
			if decorated, ok := req.shortcuts[r]; ok {
				e.renderer.done()
				return askReply{text: decorated}, nil
			}
		}

		switch action {
		case ActionSubmit:
			e.renderer.done()
			return askReply{text: string(buffer)}, nil

		case ActionCancel:
			if err := e.console.Restore(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to restore terminal state: %v\n", err)
			}
			restored = true
			e.renderer.done()
			return askReply{}, ErrInterrupted

		case ActionFallback:
			e.renderer.done()
			return askReply{fallback: true}, nil

		case ActionMoveUp:
			if pos > 0 {
				pos--
				buffer = []rune(req.seed[pos])
				cursor = len(buffer)
			}

		case ActionMoveDown:
			if pos < len(req.seed)-1 {
				pos++
				buffer = []rune(req.seed[pos])
				cursor = len(buffer)
			}

		case ActionMoveLeft:
			if cursor > 0 {
				cursor--
			}

		case ActionMoveRight:
			if cursor < len(buffer) {
				cursor++
			}

		case ActionMoveHome:
			cursor = 0

		case ActionMoveEnd:
			cursor = len(buffer)

		case ActionDeleteChar:
			if r == '\x7f' || r == '\b' {
				if cursor > 0 {
					buffer = append(buffer[:cursor-1], buffer[cursor:]...)
					cursor--
				}
			} else if cursor < len(buffer) {
				buffer = append(buffer[:cursor], buffer[cursor+1:]...)
			}

		case ActionDeleteLine:
			buffer = nil
			cursor = 0

		case ActionComplete:
			if completed, ok := completeText(string(buffer), req.entries); ok {
				buffer = []rune(completed)
				cursor = len(buffer)
			}

		default:
			if r >= 32 && r != 127 {
				buffer = append(buffer[:cursor], append([]rune{r}, buffer[cursor:]...)...)
				cursor++
			} else if r == '\x04' && len(buffer) == 0 { // Ctrl+D
				e.renderer.done()
				return askReply{}, ErrEOF
			}
		}
	}
}

// highlightIndex maps the cursor's seed position back to the real menu entry
// it represents, or -1 once the user has edited the text away from the seed.
func (e *engine) highlightIndex(req askRequest, pos int, buffer string) int {
	if len(req.entries) == 0 || pos < 0 || pos >= len(req.seed) {
		return -1
	}
	if req.seed[pos] != buffer {
		return -1
	}
	return pos % len(req.entries)
}

// completeText extends raw to the longest unambiguous prefix of the
// decorated labels it matches. It reports false when nothing matches.
func completeText(raw string, entries []menuEntry) (string, bool) {
	var matches []string
	for _, entry := range entries {
		if decorated := entry.decorated(); strings.HasPrefix(decorated, raw) {
			matches = append(matches, decorated)
		}
	}
	if len(matches) == 0 {
		return "", false
	}
	if len(matches) == 1 {
		return matches[0], true
	}
	return commonPrefix(matches), true
}

func commonPrefix(texts []string) string {
	prefix := []rune(texts[0])
	for _, text := range texts[1:] {
		runes := []rune(text)
		if len(runes) < len(prefix) {
			prefix = prefix[:len(runes)]
		}
		for i := range prefix {
			if runes[i] != prefix[i] {
				prefix = prefix[:i]
				break
			}
		}
	}
	return string(prefix)
}

func (e *engine) readRune() (rune, error) {
	r, _, err := e.console.ReadRune()
	return r, err
}

// readEscapeSequence consumes the remainder of an escape sequence after ESC.
func (e *engine) readEscapeSequence() (string, error) {
	seq := make([]rune, 0, 8)
	for i := 0; i < 8; i++ {
		r, err := e.readRune()
		if err != nil {
			return "", err
		}
		seq = append(seq, r)

		s := string(seq)
		switch s {
		case "[A", "[B", "[C", "[D", "[H", "[F":
			return s, nil
		}
		if strings.HasSuffix(s, "~") && len(s) >= 3 {
			return s, nil
		}
		if len(seq) >= 3 && (seq[len(seq)-1] < '0' || seq[len(seq)-1] > '9') {
			return s, nil
		}
	}
	return string(seq), nil
}
