package choose

import (
	"io"
	"os"
	"runtime"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-tty"
	"golang.org/x/term"
)

// console abstracts the terminal so the selection prompt can be driven by a
// real TTY in production and by a scripted console in tests.
type console interface {
	SetRaw() error                        // enter raw mode for unbuffered key input
	Restore() error                       // restore the original terminal settings
	Size() (width, height int, err error) // terminal dimensions with safe fallbacks
	ReadRune() (rune, int, error)         // read a single rune from the keyboard
	Close() error                         // release the underlying device
}

// ttyConsole implements console on top of go-tty, with raw mode managed via
// golang.org/x/term so the original state is always restorable. The closed
// flag guards against a double Close, which panics on Windows.
type ttyConsole struct {
	tty           *tty.TTY
	closed        bool
	stdinFd       int
	originalState *term.State
}

func newTTYConsole() (*ttyConsole, error) {
	t, err := tty.Open()
	if err != nil {
		return nil, err
	}
	return &ttyConsole{
		tty:     t,
		stdinFd: int(os.Stdin.Fd()),
	}, nil
}

// consoleOutput returns the writer the renderer should target. Windows needs
// go-colorable to translate ANSI escape sequences.
func consoleOutput() io.Writer {
	if runtime.GOOS == "windows" {
		return colorable.NewColorableStdout()
	}
	return os.Stdout
}

func (c *ttyConsole) SetRaw() error {
	if !term.IsTerminal(c.stdinFd) {
		return nil
	}
	// Capture the current state on every entry so repeated raw-mode cycles
	// within one process always restore to a sane baseline.
	state, err := term.GetState(c.stdinFd)
	if err != nil {
		return err
	}
	c.originalState = state
	_, err = term.MakeRaw(c.stdinFd)
	return err
}

func (c *ttyConsole) Restore() error {
	if c.originalState == nil || !term.IsTerminal(c.stdinFd) {
		return nil
	}
	err := term.Restore(c.stdinFd, c.originalState)
	c.originalState = nil
	return err
}

func (c *ttyConsole) Size() (width, height int, err error) {
	w, h, err := c.tty.Size()
	if err != nil || w <= 0 || h <= 0 {
		// Fall back to a conventional size rather than risk zero-width math.
		return 80, 24, err
	}
	return w, h, nil
}

func (c *ttyConsole) ReadRune() (rune, int, error) {
	r, err := c.tty.ReadRune()
	if err != nil {
		return 0, 0, err
	}
	return r, 1, nil
}

func (c *ttyConsole) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	if c.tty != nil {
		return c.tty.Close()
	}
	return nil
}
