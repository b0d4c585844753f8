package choose

import "io"

// scriptedConsole implements console for tests. It feeds a pre-recorded key
// sequence to the prompt engine and tracks raw-mode transitions so tests can
// assert whether the interactive path ran at all.
type scriptedConsole struct {
	input    []rune
	pos      int
	rawMode  bool
	rawCalls int
	size     [2]int
}

func newScriptedConsole(input string) *scriptedConsole {
	return &scriptedConsole{
		input: []rune(input),
		size:  [2]int{80, 24},
	}
}

func (c *scriptedConsole) SetRaw() error {
	c.rawMode = true
	c.rawCalls++
	return nil
}

func (c *scriptedConsole) Restore() error {
	c.rawMode = false
	return nil
}

func (c *scriptedConsole) Size() (width, height int, err error) {
	return c.size[0], c.size[1], nil
}

func (c *scriptedConsole) ReadRune() (rune, int, error) {
	if c.pos >= len(c.input) {
		return 0, 0, io.EOF
	}
	r := c.input[c.pos]
	c.pos++
	return r, 1, nil
}

func (c *scriptedConsole) Close() error {
	return nil
}
