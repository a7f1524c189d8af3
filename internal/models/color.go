package models

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

// Color is a token from the fixed column palette
type Color string

// ErrInvalidColor is returned for names outside the palette
var ErrInvalidColor = errors.New("unknown color")

// Palette tokens
const (
	ColorGray   Color = "gray"
	ColorRed    Color = "red"
	ColorOrange Color = "orange"
	ColorYellow Color = "yellow"
	ColorGreen  Color = "green"
	ColorTeal   Color = "teal"
	ColorBlue   Color = "blue"
	ColorPurple Color = "purple"
	ColorPink   Color = "pink"
)

// Palette lists every valid column color in display order
var Palette = []Color{
	ColorGray,
	ColorRed,
	ColorOrange,
	ColorYellow,
	ColorGreen,
	ColorTeal,
	ColorBlue,
	ColorPurple,
	ColorPink,
}

// paletteHex maps each token to the hex value used when rendering
var paletteHex = map[Color]string{
	ColorGray:   "#8B8B8B",
	ColorRed:    "#E5484D",
	ColorOrange: "#F76B15",
	ColorYellow: "#FFC53D",
	ColorGreen:  "#46A758",
	ColorTeal:   "#12A594",
	ColorBlue:   "#0090FF",
	ColorPurple: "#8E4EC6",
	ColorPink:   "#D6409F",
}

// Valid reports whether c is a palette token
func (c Color) Valid() bool {
	_, ok := paletteHex[c]
	return ok
}

// Hex returns the hex value for the token, falling back to gray
func (c Color) Hex() string {
	if hex, ok := paletteHex[c]; ok {
		return hex
	}
	return paletteHex[ColorGray]
}

// ParseColor normalizes user input into a palette token
func ParseColor(s string) (Color, error) {
	c := Color(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w %q (must be one of: %s)", ErrInvalidColor, s, paletteNames())
	}
	return c, nil
}

// RandomColor picks a palette token pseudo-randomly from choices.
// An empty choices slice uses the full palette.
func RandomColor(rng *rand.Rand, choices []Color) Color {
	if len(choices) == 0 {
		choices = Palette
	}
	if rng == nil {
		return choices[rand.IntN(len(choices))]
	}
	return choices[rng.IntN(len(choices))]
}

// Next returns the palette token after c, wrapping around
func (c Color) Next() Color {
	for i, p := range Palette {
		if p == c {
			return Palette[(i+1)%len(Palette)]
		}
	}
	return Palette[0]
}

func paletteNames() string {
	names := make([]string, len(Palette))
	for i, c := range Palette {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
