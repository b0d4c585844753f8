package choose

// KeyAction represents the action performed when a bound key is pressed.
type KeyAction int

// Key action constants for the selection prompt.
const (
	ActionNone KeyAction = iota
	ActionSubmit
	ActionCancel
	ActionFallback
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionMoveHome
	ActionMoveEnd
	ActionDeleteChar
	ActionDeleteLine
	ActionComplete
)

// KeyMap holds the key binding configuration for the selection prompt.
// Single runes (including control characters) and escape sequences are bound
// separately, mirroring how terminals deliver them.
type KeyMap struct {
	bindings  map[rune]KeyAction
	sequences map[string]KeyAction
}

// NewDefaultKeyMap creates the default key bindings.
//
// Defaults:
//   - Enter: submit the current text
//   - Ctrl+C: cancel the selection
//   - Ctrl+F: abandon shortcut mode and fall back to the search prompt
//   - Up/Down (and Ctrl+P/Ctrl+N): move through the menu
//   - Left/Right, Home/End (Ctrl+A/Ctrl+E): move the cursor
//   - Tab: complete the typed text against the menu labels
//   - Backspace/Delete: delete characters
//   - Ctrl+U: clear the line
func NewDefaultKeyMap() *KeyMap {
	km := &KeyMap{
		bindings:  make(map[rune]KeyAction),
		sequences: make(map[string]KeyAction),
	}

	km.bindings['\r'] = ActionSubmit
	km.bindings['\n'] = ActionSubmit
	km.bindings['\x03'] = ActionCancel   // Ctrl+C
	km.bindings['\x06'] = ActionFallback // Ctrl+F
	km.bindings['\x10'] = ActionMoveUp   // Ctrl+P
	km.bindings['\x0e'] = ActionMoveDown // Ctrl+N
	km.bindings['\x01'] = ActionMoveHome // Ctrl+A
	km.bindings['\x05'] = ActionMoveEnd  // Ctrl+E
	km.bindings['\x15'] = ActionDeleteLine
	km.bindings['\t'] = ActionComplete
	km.bindings['\x7f'] = ActionDeleteChar // Backspace
	km.bindings['\b'] = ActionDeleteChar

	km.sequences["[A"] = ActionMoveUp
	km.sequences["[B"] = ActionMoveDown
	km.sequences["[C"] = ActionMoveRight
	km.sequences["[D"] = ActionMoveLeft
	km.sequences["[H"] = ActionMoveHome
	km.sequences["[F"] = ActionMoveEnd
	km.sequences["[3~"] = ActionDeleteChar // Delete

	return km
}

// Bind adds or updates a key binding for a single rune.
func (km *KeyMap) Bind(key rune, action KeyAction) {
	km.bindings[key] = action
}

// BindSequence adds or updates an escape sequence binding. The sequence must
// not include the initial ESC character.
func (km *KeyMap) BindSequence(seq string, action KeyAction) {
	km.sequences[seq] = action
}

// actionFor returns the action bound to a rune, or ActionNone.
func (km *KeyMap) actionFor(key rune) KeyAction {
	if km == nil || km.bindings == nil {
		return ActionNone
	}
	return km.bindings[key]
}

// sequenceFor returns the action bound to an escape sequence, or ActionNone.
func (km *KeyMap) sequenceFor(seq string) KeyAction {
	if km == nil || km.sequences == nil {
		return ActionNone
	}
	return km.sequences[seq]
}
