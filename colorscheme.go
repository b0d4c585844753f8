package choose

import (
	"fmt"
	"strings"
)

// ColorScheme defines the colors used by the selection prompt.
type ColorScheme struct {
	Name     string `json:"name"`
	Label    Color  `json:"label"`    // prompt label
	Input    Color  `json:"input"`    // text the user is editing
	Marker   Color  `json:"marker"`   // shortcut marker column
	Entry    Color  `json:"entry"`    // plain menu entry
	Selected Color  `json:"selected"` // entry under the cursor / matched runes
}

// Color represents an RGB color with optional bold formatting.
type Color struct {
	R    uint8 `json:"r"`
	G    uint8 `json:"g"`
	B    uint8 `json:"b"`
	Bold bool  `json:"bold"`
}

// ThemeDefault is the default color scheme with a green label and white text.
var ThemeDefault = &ColorScheme{
	Name:     "default",
	Label:    Color{R: 0, G: 255, B: 0, Bold: true},
	Input:    Color{R: 255, G: 255, B: 255, Bold: true},
	Marker:   Color{R: 255, G: 255, B: 0, Bold: true},
	Entry:    Color{R: 200, G: 200, B: 200},
	Selected: Color{R: 0, G: 255, B: 255, Bold: true},
}

// ThemeDark is a dark theme with light blue label and off-white text.
var ThemeDark = &ColorScheme{
	Name:     "Dark",
	Label:    Color{R: 102, G: 217, B: 239, Bold: true},
	Input:    Color{R: 248, G: 248, B: 242},
	Marker:   Color{R: 255, G: 184, B: 108, Bold: true},
	Entry:    Color{R: 189, G: 147, B: 249},
	Selected: Color{R: 80, G: 250, B: 123, Bold: true},
}

// ThemeLight is a light theme with blue label and dark gray text.
var ThemeLight = &ColorScheme{
	Name:     "Light",
	Label:    Color{R: 0, G: 119, B: 187, Bold: true},
	Input:    Color{R: 36, G: 41, B: 46},
	Marker:   Color{R: 215, G: 58, B: 73, Bold: true},
	Entry:    Color{R: 88, G: 96, B: 105},
	Selected: Color{R: 40, G: 167, B: 69, Bold: true},
}

// ToANSI converts a Color to an ANSI escape sequence (true color).
func (c Color) ToANSI() string {
	var codes []string
	if c.Bold {
		codes = append(codes, "1")
	}
	codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d", c.R, c.G, c.B))
	return fmt.Sprintf("\x1b[%sm", strings.Join(codes, ";"))
}

// Reset returns the ANSI reset sequence.
func Reset() string {
	return "\x1b[0m"
}
