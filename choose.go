package choose

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Common errors
var (
	// ErrEmptyMenu is returned when the candidate source yields no candidates.
	ErrEmptyMenu = errors.New("empty menu")
	// ErrInterrupted is reported by the prompt engine when the user presses Ctrl+C.
	ErrInterrupted = errors.New("interrupted")
	// ErrEOF is reported by the prompt engine when the user presses Ctrl+D or input ends.
	ErrEOF = errors.New("EOF")
)

// Outcome tags the terminal state of one selection.
type Outcome int

// Exactly one outcome is reached per invocation.
const (
	// OutcomeChosen means the user picked a candidate in shortcut mode.
	OutcomeChosen Outcome = iota
	// OutcomeFallback means the fallback prompt produced the value, either
	// because shortcuts overflowed or because the user forced it.
	OutcomeFallback
	// OutcomeCancelled means the user dismissed the prompt without a
	// resolvable choice. It is a normal outcome, not an error.
	OutcomeCancelled
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeChosen:
		return "chosen"
	case OutcomeFallback:
		return "fallback"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result is the tagged outcome of one Select call. Value is populated for
// OutcomeChosen and OutcomeFallback and empty for OutcomeCancelled.
type Result struct {
	Outcome Outcome
	Value   string
}

// CandidateSource produces the ordered candidate labels for one invocation.
// It receives the request's filter text and predicate and is queried exactly
// once per Select call. Labels are opaque strings and must be distinct; the
// selector does not enforce uniqueness.
type CandidateSource func(filter string, predicate func(string) bool) []string

// StaticSource adapts a fixed label list to a CandidateSource, applying the
// predicate if one is given.
func StaticSource(labels []string) CandidateSource {
	return func(_ string, predicate func(string) bool) []string {
		if predicate == nil {
			return labels
		}
		out := make([]string, 0, len(labels))
		for _, label := range labels {
			if predicate(label) {
				out = append(out, label)
			}
		}
		return out
	}
}

// Request carries the parameters of one selection. Its shape mirrors the
// generic completion prompt it can stand in for, so a Selector is a drop-in
// replacement for any "ask the user to pick from a list" primitive.
type Request struct {
	Label        string            // prompt label shown before the input text
	Source       CandidateSource   // candidate source, queried once
	Predicate    func(string) bool // optional candidate filter
	RequireMatch bool              // fallback must return a known candidate
	InitialInput string            // filter text / initial fallback query
	History      []string          // extra history for the fallback prompt
	Defaults     []string          // default candidates; the first one is used
	InputMethod  bool              // input-method hint, passed through to the fallback
}

// Config holds the configuration for a Selector.
type Config struct {
	Alphabet    []rune         // shortcut alphabet in priority order (nil for default)
	Fallback    FallbackFunc   // fallback prompt (nil for the built-in search prompt)
	ColorScheme *ColorScheme   // colors (nil for default)
	KeyMap      *KeyMap        // key bindings (nil for default)
	History     *HistoryConfig // selection history (nil for memory-only default)
}

// Option represents a configuration option for a Selector.
type Option func(*Config)

// WithShortcutAlphabet sets the priority-ordered shortcut alphabet.
func WithShortcutAlphabet(alphabet string) Option {
	return func(c *Config) {
		c.Alphabet = []rune(alphabet)
	}
}

// WithFallback sets the fallback prompt invoked when shortcuts overflow or
// the user declines them.
func WithFallback(fallback FallbackFunc) Option {
	return func(c *Config) {
		c.Fallback = fallback
	}
}

// WithColorScheme sets the color scheme.
func WithColorScheme(scheme *ColorScheme) Option {
	return func(c *Config) {
		c.ColorScheme = scheme
	}
}

// WithKeyMap sets the key bindings.
func WithKeyMap(keyMap *KeyMap) Option {
	return func(c *Config) {
		c.KeyMap = keyMap
	}
}

// WithHistory configures the selection history store.
func WithHistory(config *HistoryConfig) Option {
	return func(c *Config) {
		c.History = config
	}
}

// WithFileHistory is a convenience option for a persistent selection history.
func WithFileHistory(file string, maxEntries int) Option {
	return func(c *Config) {
		if maxEntries <= 0 {
			maxEntries = 500
		}
		c.History = &HistoryConfig{Enabled: true, MaxEntries: maxEntries, File: file}
	}
}

// Selector runs interactive single-selection prompts. A Selector is not safe
// for concurrent use; at most one selection prompt may be active per process
// at a time.
type Selector struct {
	config   Config
	output   io.Writer
	console  console
	renderer *renderer
	keyMap   *KeyMap
	alphabet []rune
	fallback FallbackFunc
	store    *HistoryStore
}

// New creates a Selector bound to the real terminal.
//
// Example:
//
//	s, err := choose.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer s.Close()
//
//	result, err := s.Select(context.Background(), choose.Request{
//		Label:  "branch: ",
//		Source: choose.StaticSource([]string{"main", "develop", "release"}),
//	})
func New(options ...Option) (*Selector, error) {
	var config Config
	for _, option := range options {
		option(&config)
	}

	console, err := newTTYConsole()
	if err != nil {
		return nil, fmt.Errorf("failed to open terminal: %w", err)
	}
	return newSelector(config, console, consoleOutput())
}

// newSelector wires a Selector onto an arbitrary console and output. Tests
// use it with a scripted console.
func newSelector(config Config, con console, output io.Writer) (*Selector, error) {
	if config.Alphabet == nil {
		config.Alphabet = []rune(DefaultShortcutAlphabet)
	}
	if config.ColorScheme == nil {
		config.ColorScheme = ThemeDefault
	}
	if config.KeyMap == nil {
		config.KeyMap = NewDefaultKeyMap()
	}

	store := NewHistoryStore(config.History)
	if err := store.Load(); err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	return &Selector{
		config:   config,
		output:   output,
		console:  con,
		renderer: newRenderer(output, config.ColorScheme),
		keyMap:   config.KeyMap,
		alphabet: config.Alphabet,
		fallback: config.Fallback,
		store:    store,
	}, nil
}

// Select runs one selection. It retrieves the candidates, assigns shortcut
// markers, and either drives the shortcut prompt or delegates to the
// fallback. Exactly one outcome is reached:
//
//   - a single candidate is returned directly without any prompting
//   - zero candidates fail with ErrEmptyMenu
//   - marker overflow or Ctrl+F delegates the original request to the fallback
//   - Ctrl+C and Ctrl+D surface as OutcomeCancelled, not as errors
//
// Faults raised by the console or the fallback itself propagate unchanged.
func (s *Selector) Select(ctx context.Context, req Request) (Result, error) {
	if req.Source == nil {
		return Result{}, errors.New("choose: request has no candidate source")
	}

	labels := req.Source(req.InitialInput, req.Predicate)
	if len(labels) == 0 {
		return Result{}, fmt.Errorf("%w: no candidates for %q", ErrEmptyMenu, req.Label)
	}
	if len(labels) == 1 {
		s.remember(labels[0])
		return Result{Outcome: OutcomeChosen, Value: labels[0]}, nil
	}

	entries, overflow := assignShortcuts(labels, s.alphabet)
	if overflow {
		return s.delegate(ctx, req)
	}

	defaultIdx := resolveDefaultIndex(labels, req.Defaults)
	seed, anchor := buildCycle(entries, defaultIdx)

	shortcuts := make(map[rune]string, len(entries))
	for _, entry := range entries {
		if entry.hasMarker {
			shortcuts[entry.marker] = entry.decorated()
		}
	}

	eng := &engine{console: s.console, renderer: s.renderer, keyMap: s.keyMap}
	reply, err := eng.ask(ctx, askRequest{
		label:     req.Label,
		entries:   entries,
		seed:      seed,
		pos:       anchor,
		shortcuts: shortcuts,
	})
	if err != nil {
		if errors.Is(err, ErrInterrupted) || errors.Is(err, ErrEOF) {
			return Result{Outcome: OutcomeCancelled}, nil
		}
		return Result{}, err
	}
	if reply.fallback {
		return s.delegate(ctx, req)
	}

	entry, ok := resolveEntry(reply.text, entries, seed[anchor])
	if !ok {
		return Result{Outcome: OutcomeCancelled}, nil
	}
	s.remember(entry.value)
	return Result{Outcome: OutcomeChosen, Value: entry.value}, nil
}

// resolveEntry maps the raw text committed in the prompt back to a menu
// entry. Strategies, in order: exact match against a decorated label; strip
// the decorated default that was pre-filled into the prompt and retry; treat
// the text as a prefix and accept a unique completion. Anything else fails,
// including an ambiguous completion, and the controller reports a cancelled
// selection.
func resolveEntry(raw string, entries []menuEntry, shownDefault string) (menuEntry, bool) {
	if entry, ok := exactDecorated(raw, entries); ok {
		return entry, true
	}

	if shownDefault != "" && strings.HasPrefix(raw, shownDefault) {
		stripped := strings.TrimPrefix(raw, shownDefault)
		if entry, ok := exactDecorated(stripped, entries); ok {
			return entry, true
		}
	}

	if raw == "" {
		return menuEntry{}, false
	}
	var match menuEntry
	count := 0
	for _, entry := range entries {
		if strings.HasPrefix(entry.decorated(), raw) {
			match = entry
			count++
		}
	}
	if count == 1 {
		return match, true
	}
	return menuEntry{}, false
}

func exactDecorated(raw string, entries []menuEntry) (menuEntry, bool) {
	for _, entry := range entries {
		if entry.decorated() == raw {
			return entry, true
		}
	}
	return menuEntry{}, false
}

// remember records an accepted value in the shared history store.
func (s *Selector) remember(value string) {
	if s.store != nil {
		s.store.Add(value)
	}
}

// History returns the values accepted by past selections, oldest first.
func (s *Selector) History() []string {
	if s.store == nil {
		return []string{}
	}
	return s.store.Entries()
}

// Close saves the selection history and releases the terminal. It is safe to
// call Close multiple times.
func (s *Selector) Close() error {
	if s.output != nil {
		fmt.Fprint(s.output, "\x1b[?25h") // make sure the cursor is visible
	}
	if s.store != nil {
		if err := s.store.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to save history: %v\n", err)
		}
	}
	if s.console != nil {
		return s.console.Close()
	}
	return nil
}
