package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette helpers.
//
// Output has to stay readable on light and dark terminals, so colours are
// AdaptiveColor pairs and the theme setting only decides which half is used.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorMuted   = ac("240", "245")
	colorAccent  = ac("27", "75")
	colorDanger  = ac("160", "203")
	colorWarning = ac("130", "221")
	colorOK      = ac("28", "114")
)

// routineColors maps the opaque colour tokens stored on routine items to
// terminal colours.
var routineColors = map[string]lipgloss.AdaptiveColor{
	"blue":   ac("27", "69"),
	"green":  ac("28", "78"),
	"orange": ac("166", "214"),
	"purple": ac("91", "141"),
	"red":    ac("160", "203"),
	"yellow": ac("136", "227"),
	"indigo": ac("54", "105"),
	"pink":   ac("162", "218"),
}

// ColorFor returns the terminal colour for a routine colour token. Unknown
// tokens fall back to the muted colour.
func ColorFor(token string) lipgloss.TerminalColor {
	if c, ok := routineColors[token]; ok {
		return c
	}
	return colorMuted
}

// ApplyTheme tells lipgloss which half of each adaptive colour to use.
func ApplyTheme(theme string) {
	lipgloss.SetHasDarkBackground(theme == "dark")
}

// DisableColor forces plain output, e.g. for pipes or --no-color.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func styleMuted() lipgloss.Style   { return lipgloss.NewStyle().Foreground(colorMuted) }
func styleHeading() lipgloss.Style { return lipgloss.NewStyle().Bold(true).Foreground(colorAccent) }
func styleTitle() lipgloss.Style   { return lipgloss.NewStyle().Bold(true) }
