package choose

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// renderer draws the selection prompt: one input line followed by the menu
// (or search matches) below it, with the cursor parked back on the input
// line after every frame. It tracks how many lines the previous frame used
// so stale output is cleared before redrawing.
type renderer struct {
	output    io.Writer
	scheme    *ColorScheme
	lastLines int
}

func newRenderer(output io.Writer, scheme *ColorScheme) *renderer {
	return &renderer{
		output: output,
		scheme: scheme,
	}
}

// renderSelect draws the shortcut-mode frame: the label and editable text on
// the first line, then every menu entry with its marker column. highlight is
// the index of the entry the cursor currently sits on, or -1.
func (r *renderer) renderSelect(label, input string, cursor int, entries []menuEntry, highlight, width int) error {
	r.clearPrevious()

	if err := r.renderInputLine(label, input, width); err != nil {
		return err
	}

	for i, entry := range entries {
		if _, err := fmt.Fprint(r.output, "\r\n\x1b[K"); err != nil {
			return err
		}
		if err := r.renderEntry(entry, i == highlight, width); err != nil {
			return err
		}
	}

	r.lastLines = 1 + len(entries)
	r.parkCursor(len(entries), label, input, cursor)
	return nil
}

// searchLine is one ranked match in the fallback search prompt. matched
// holds the rune indexes that the query matched, for highlighting.
type searchLine struct {
	text    string
	matched []int
}

// renderSearch draws the fallback-mode frame: the label and query on the
// first line, then the ranked matches with the matched runes highlighted.
func (r *renderer) renderSearch(label, query string, lines []searchLine, selected, width int) error {
	r.clearPrevious()

	if err := r.renderInputLine(label, query, width); err != nil {
		return err
	}

	for i, line := range lines {
		if _, err := fmt.Fprint(r.output, "\r\n\x1b[K"); err != nil {
			return err
		}
		if err := r.renderMatch(line, i == selected, width); err != nil {
			return err
		}
	}

	r.lastLines = 1 + len(lines)
	r.parkCursor(len(lines), label, query, len([]rune(query)))
	return nil
}

func (r *renderer) renderInputLine(label, input string, width int) error {
	if _, err := fmt.Fprint(r.output, "\r\x1b[K"); err != nil {
		return err
	}
	shown := runewidth.Truncate(input, max(width-runewidth.StringWidth(label), 1), "")
	_, err := fmt.Fprint(r.output,
		r.scheme.Label.ToANSI(), label, Reset(),
		r.scheme.Input.ToANSI(), shown, Reset())
	return err
}

func (r *renderer) renderEntry(entry menuEntry, selected bool, width int) error {
	indicator := "  "
	bodyColor := r.scheme.Entry
	if selected {
		indicator = "▶ "
		bodyColor = r.scheme.Selected
	}

	marker := " "
	if entry.hasMarker {
		marker = string(entry.marker)
	}

	// indicator + marker + separator take a fixed-width prefix; the label
	// gets whatever remains.
	prefixWidth := runewidth.StringWidth(indicator) + 1 + len(markerSeparator)
	label := runewidth.Truncate(entry.label, max(width-prefixWidth, 1), "…")

	_, err := fmt.Fprint(r.output,
		indicator,
		r.scheme.Marker.ToANSI(), marker, Reset(),
		markerSeparator,
		bodyColor.ToANSI(), label, Reset())
	return err
}

func (r *renderer) renderMatch(line searchLine, selected bool, width int) error {
	indicator := "  "
	if selected {
		indicator = "▶ "
	}
	text := runewidth.Truncate(line.text, max(width-runewidth.StringWidth(indicator), 1), "…")

	if _, err := fmt.Fprint(r.output, indicator); err != nil {
		return err
	}

	matched := make(map[int]bool, len(line.matched))
	for _, idx := range line.matched {
		matched[idx] = true
	}

	var b strings.Builder
	for i, ch := range []rune(text) {
		switch {
		case selected:
			b.WriteString(r.scheme.Selected.ToANSI())
		case matched[i]:
			b.WriteString(r.scheme.Marker.ToANSI())
		default:
			b.WriteString(r.scheme.Entry.ToANSI())
		}
		b.WriteRune(ch)
		b.WriteString(Reset())
	}
	_, err := fmt.Fprint(r.output, b.String())
	return err
}

// parkCursor moves the terminal cursor from the end of the last rendered
// line back to its editing position on the input line.
func (r *renderer) parkCursor(linesBelow int, label, input string, cursor int) {
	if linesBelow > 0 {
		fmt.Fprintf(r.output, "\x1b[%dA", linesBelow)
	}
	fmt.Fprint(r.output, "\r")

	inputRunes := []rune(input)
	if cursor > len(inputRunes) {
		cursor = len(inputRunes)
	}
	if cursor < 0 {
		cursor = 0
	}
	col := runewidth.StringWidth(label) + runewidth.StringWidth(string(inputRunes[:cursor]))
	if col > 0 {
		fmt.Fprintf(r.output, "\x1b[%dC", col)
	}
}

// clearPrevious wipes the lines drawn by the previous frame. The cursor is
// assumed to be on the input line, where parkCursor left it.
func (r *renderer) clearPrevious() {
	if r.lastLines <= 1 {
		return
	}
	for i := 0; i < r.lastLines-1; i++ {
		fmt.Fprint(r.output, "\x1b[E\x1b[K")
	}
	fmt.Fprintf(r.output, "\x1b[%dA", r.lastLines-1)
	fmt.Fprint(r.output, "\r")
}

// done clears the menu and leaves the terminal on a fresh line after the
// interaction finishes.
func (r *renderer) done() {
	r.clearPrevious()
	r.lastLines = 0
	fmt.Fprint(r.output, "\r\n")
}
