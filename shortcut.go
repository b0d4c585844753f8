package choose

import (
	"strings"

	"github.com/samber/lo"
)

// markerDelimiter is the structural delimiter between a shortcut marker and
// the label it decorates. Labels that themselves start with this rune can
// never carry a marker, because the decorated form would be ambiguous.
const markerDelimiter = '='

// markerSeparator is the full separator rendered between marker and label.
const markerSeparator = "=>"

// DefaultShortcutAlphabet is the priority-ordered set of keys available for
// single-keystroke selection. Home row keys come first so the most common
// menus need no finger travel. Override with WithShortcutAlphabet.
const DefaultShortcutAlphabet = "asdfghjkl"

// menuEntry is one selectable row of a menu. It is built once per invocation
// and never mutated afterwards. The value is kept separate from the label so
// that marker decoration can never corrupt the payload handed back to the
// caller.
type menuEntry struct {
	label     string
	value     string
	marker    rune
	hasMarker bool
}

// decorated returns the display form of the entry: the marker (or a blank
// slot), the separator, and the unmodified label.
func (e menuEntry) decorated() string {
	if e.hasMarker {
		return string(e.marker) + markerSeparator + e.label
	}
	return " " + markerSeparator + e.label
}

// assignShortcuts builds menu entries for the given labels, giving each a
// distinct single-key marker where possible. The second return value reports
// overflow: at least one entry could not be given a marker, either because
// the alphabet ran out or because the label starts with the structural
// delimiter. Entries preserve input order and labels are never modified.
func assignShortcuts(labels []string, alphabet []rune) ([]menuEntry, bool) {
	entries := make([]menuEntry, 0, len(labels))
	used := make(map[rune]bool, len(labels))

	for _, label := range labels {
		entry := menuEntry{label: label, value: label}
		if !strings.HasPrefix(label, string(markerDelimiter)) {
			if marker, ok := pickMarker(label, alphabet, used); ok {
				entry.marker = marker
				entry.hasMarker = true
				used[marker] = true
			}
		}
		entries = append(entries, entry)
	}

	overflow := lo.SomeBy(entries, func(e menuEntry) bool { return !e.hasMarker })
	return entries, overflow
}

// pickMarker selects an unused marker for the label. A rune that occurs in
// the label itself is preferred so the shortcut reads as a mnemonic; when no
// such rune is free the first unused rune in priority order is taken.
func pickMarker(label string, alphabet []rune, used map[rune]bool) (rune, bool) {
	lower := strings.ToLower(label)
	for _, r := range alphabet {
		if !used[r] && strings.ContainsRune(lower, r) {
			return r, true
		}
	}
	for _, r := range alphabet {
		if !used[r] {
			return r, true
		}
	}
	return 0, false
}
