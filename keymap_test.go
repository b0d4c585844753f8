package choose

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaultKeyMap(t *testing.T) {
	t.Parallel()

	km := NewDefaultKeyMap()

	tests := []struct {
		name string
		key  rune
		want KeyAction
	}{
		{name: "enter submits", key: '\r', want: ActionSubmit},
		{name: "newline submits", key: '\n', want: ActionSubmit},
		{name: "ctrl+c cancels", key: '\x03', want: ActionCancel},
		{name: "ctrl+f falls back", key: '\x06', want: ActionFallback},
		{name: "ctrl+p moves up", key: '\x10', want: ActionMoveUp},
		{name: "ctrl+n moves down", key: '\x0e', want: ActionMoveDown},
		{name: "tab completes", key: '\t', want: ActionComplete},
		{name: "backspace deletes", key: '\x7f', want: ActionDeleteChar},
		{name: "ctrl+u clears the line", key: '\x15', want: ActionDeleteLine},
		{name: "plain letters are unbound", key: 'a', want: ActionNone},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, km.actionFor(tt.key))
		})
	}
}

func TestKeyMapSequences(t *testing.T) {
	t.Parallel()

	km := NewDefaultKeyMap()

	assert.Equal(t, ActionMoveUp, km.sequenceFor("[A"))
	assert.Equal(t, ActionMoveDown, km.sequenceFor("[B"))
	assert.Equal(t, ActionMoveRight, km.sequenceFor("[C"))
	assert.Equal(t, ActionMoveLeft, km.sequenceFor("[D"))
	assert.Equal(t, ActionDeleteChar, km.sequenceFor("[3~"))
	assert.Equal(t, ActionNone, km.sequenceFor("[Z"))
}

func TestKeyMapBind(t *testing.T) {
	t.Parallel()

	km := NewDefaultKeyMap()

	km.Bind('\x07', ActionFallback) // Ctrl+G as a second fallback key
	assert.Equal(t, ActionFallback, km.actionFor('\x07'))

	km.Bind('\x06', ActionNone) // unbind the default
	assert.Equal(t, ActionNone, km.actionFor('\x06'))

	km.BindSequence("OP", ActionComplete) // F1
	assert.Equal(t, ActionComplete, km.sequenceFor("OP"))
}

func TestKeyMapNilSafety(t *testing.T) {
	t.Parallel()

	var km *KeyMap
	assert.Equal(t, ActionNone, km.actionFor('\r'))
	assert.Equal(t, ActionNone, km.sequenceFor("[A"))
}
