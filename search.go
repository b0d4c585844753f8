package choose

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
)

// maxSearchLines limits how many ranked matches the search prompt displays.
const maxSearchLines = 8

// searchFallback is the built-in generic completion prompt, used when no
// FallbackFunc was injected. The user types a query, matches are ranked with
// fuzzy matching, and Up/Down move through them. Candidates the user picked
// before (per the request history and the shared store) rank first while the
// query is empty.
func (s *Selector) searchFallback(ctx context.Context, req Request) (string, error) {
	labels := req.Source(req.InitialInput, req.Predicate)
	if len(labels) == 0 {
		return "", fmt.Errorf("%w: no candidates for %q", ErrEmptyMenu, req.Label)
	}
	base := rankByHistory(labels, append(s.store.Entries(), req.History...))

	if err := s.console.SetRaw(); err != nil {
		return "", fmt.Errorf("failed to enter raw mode: %w", err)
	}
	restored := false
	defer func() {
		if !restored {
			if err := s.console.Restore(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to exit raw mode: %v\n", err)
			}
		}
	}()

	width, _, _ := s.console.Size()

	query := []rune(req.InitialInput)
	lines := searchMatches(string(query), base)
	selected := resolveDefaultIndex(linesText(lines), req.Defaults)

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		shown := lines
		if len(shown) > maxSearchLines {
			shown = shown[:maxSearchLines]
		}
		if err := s.renderer.renderSearch(req.Label, string(query), shown, selected, width); err != nil {
			return "", fmt.Errorf("failed to render: %w", err)
		}

		r, _, err := s.console.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.renderer.done()
				return "", ErrEOF
			}
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		switch r {
		case '\r', '\n':
			if selected < len(lines) {
				s.renderer.done()
				return lines[selected].text, nil
			}
			if !req.RequireMatch {
				s.renderer.done()
				return string(query), nil
			}
			// A match is required but nothing matches; keep editing.

		case '\x03': // Ctrl+C
			if err := s.console.Restore(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to restore terminal state: %v\n", err)
			}
			restored = true
			s.renderer.done()
			return "", ErrInterrupted

		case '\x04': // Ctrl+D
			if len(query) == 0 {
				s.renderer.done()
				return "", ErrEOF
			}

		case '\x7f', '\b': // Backspace
			if len(query) > 0 {
				query = query[:len(query)-1]
				lines = searchMatches(string(query), base)
				selected = 0
			}

		case '\x15': // Ctrl+U
			query = nil
			lines = searchMatches("", base)
			selected = 0

		case '\x10': // Ctrl+P
			if selected > 0 {
				selected--
			}

		case '\x0e': // Ctrl+N
			if selected < len(lines)-1 {
				selected++
			}

		case '\x1b':
			seq, err := s.readSearchSequence()
			if err != nil {
				continue
			}
			switch seq {
			case "[A":
				if selected > 0 {
					selected--
				}
			case "[B":
				if selected < len(lines)-1 {
					selected++
				}
			}

		case '\t': // Tab adopts the selected match as the query
			if selected < len(lines) {
				query = []rune(lines[selected].text)
				lines = searchMatches(string(query), base)
				selected = 0
			}

		default:
			if r >= 32 && r != 127 {
				query = append(query, r)
				lines = searchMatches(string(query), base)
				selected = 0
			}
		}
	}
}

// searchMatches ranks candidates against the query. An empty query keeps the
// base order with no highlighting.
func searchMatches(query string, candidates []string) []searchLine {
	if query == "" {
		return lo.Map(candidates, func(c string, _ int) searchLine {
			return searchLine{text: c}
		})
	}
	matches := fuzzy.Find(query, candidates)
	lines := make([]searchLine, 0, len(matches))
	for _, m := range matches {
		lines = append(lines, searchLine{text: m.Str, matched: m.MatchedIndexes})
	}
	return lines
}

// rankByHistory reorders candidates so that those present in the history
// come first, most recent first, without dropping or duplicating any.
func rankByHistory(candidates, history []string) []string {
	if len(history) == 0 {
		return candidates
	}
	known := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		known[c] = true
	}

	seen := make(map[string]bool, len(history))
	ranked := make([]string, 0, len(candidates))
	for i := len(history) - 1; i >= 0; i-- {
		h := history[i]
		if known[h] && !seen[h] {
			ranked = append(ranked, h)
			seen[h] = true
		}
	}
	for _, c := range candidates {
		if !seen[c] {
			ranked = append(ranked, c)
			seen[c] = true
		}
	}
	return ranked
}

func linesText(lines []searchLine) []string {
	return lo.Map(lines, func(l searchLine, _ int) string { return l.text })
}

// readSearchSequence consumes the remainder of an arrow-key escape sequence.
func (s *Selector) readSearchSequence() (string, error) {
	seq := make([]rune, 0, 4)
	for i := 0; i < 4; i++ {
		r, _, err := s.console.ReadRune()
		if err != nil {
			return "", err
		}
		seq = append(seq, r)
		switch string(seq) {
		case "[A", "[B", "[C", "[D":
			return string(seq), nil
		}
	}
	return string(seq), nil
}
