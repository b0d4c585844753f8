// Package choose provides an interactive single-selection prompt for the
// terminal, built around single-keystroke shortcuts.
//
// Each candidate is shown with a marker key in front of it; pressing that key
// selects the candidate immediately, with no Enter required. When shortcuts
// are not viable (too many candidates for the alphabet) or the user declines
// them with Ctrl+F, the selector transparently delegates to a generic
// text-search prompt instead, so the caller always gets a single tagged
// result either way.
//
// Key Features:
//
//   - Single-keystroke selection with mnemonic marker assignment
//   - Boundary-free Up/Down navigation (the menu wraps in both directions)
//   - Default candidate pre-selected and pre-filled as editable text
//   - Tab completion and prefix matching against the menu labels
//   - Built-in fuzzy-search fallback, or bring your own with WithFallback
//   - Selection history with optional file persistence
//   - Configurable key bindings, shortcut alphabet, and color themes
//   - Context support for timeouts and cancellation
//
// Quick Start:
//
//	package main
//
//	import (
//		"context"
//		"fmt"
//		"log"
//
//		"github.com/nao1215/choose"
//	)
//
//	func main() {
//		s, err := choose.New()
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer s.Close()
//
//		result, err := s.Select(context.Background(), choose.Request{
//			Label:  "branch: ",
//			Source: choose.StaticSource([]string{"main", "develop", "release"}),
//		})
//		if err != nil {
//			log.Fatal(err)
//		}
//		if result.Outcome == choose.OutcomeCancelled {
//			fmt.Println("nothing selected")
//			return
//		}
//		fmt.Printf("You picked: %s\n", result.Value)
//	}
//
// Outcomes:
//
// Select returns a Result tagged with exactly one Outcome:
//
//   - OutcomeChosen: the user picked a candidate in shortcut mode
//   - OutcomeFallback: the fallback prompt produced the value
//   - OutcomeCancelled: the user dismissed the prompt (Ctrl+C or Ctrl+D);
//     this is a normal outcome, not an error
//
// Only genuine faults are returned as errors: an empty candidate list
// (ErrEmptyMenu), terminal failures, and errors raised by a custom fallback.
//
// Key Bindings:
//
//   - a s d f g h j k l: select the candidate carrying that marker
//   - Enter: accept the current text (the pre-filled default on first press)
//   - Up/Down (and Ctrl+P/Ctrl+N): move through the menu, wrapping at the ends
//   - Ctrl+F: abandon shortcut mode and open the search fallback
//   - Tab: complete the typed text against the menu labels
//   - Ctrl+C: cancel; Ctrl+D on an empty line: cancel
//   - Left/Right, Home/End (Ctrl+A/Ctrl+E), Backspace, Delete, Ctrl+U: edit
//
// The marker alphabet and all bindings are configurable:
//
//	keyMap := choose.NewDefaultKeyMap()
//	keyMap.Bind('\x07', choose.ActionFallback) // also Ctrl+G
//
//	s, err := choose.New(
//		choose.WithShortcutAlphabet("123456789"),
//		choose.WithKeyMap(keyMap),
//	)
//
// Fallback:
//
// The fallback receives the original request untouched, so from its point of
// view shortcut mode never happened. The built-in fallback is a fuzzy-search
// prompt that ranks previously chosen candidates first; WithFallback replaces
// it entirely:
//
//	s, err := choose.New(choose.WithFallback(
//		func(ctx context.Context, req choose.Request) (string, error) {
//			// drive any completion UI you like and return the value
//		},
//	))
//
// History:
//
// Accepted values are recorded per Selector and used by the search fallback
// for ranking. History is memory-only by default; WithFileHistory persists it
// across runs:
//
//	s, err := choose.New(
//		choose.WithFileHistory(choose.DefaultHistoryFile(), 500),
//	)
//
// Thread Safety:
//
// Selector instances are not thread-safe, and at most one selection prompt
// may be active per process at a time. You can safely cancel a running
// Select from another goroutine through context cancellation.
//
// Resource Management:
//
// Always call Close when done with a Selector; it saves the history file and
// releases the terminal. Close is safe to call multiple times.
package choose
