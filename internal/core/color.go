package core

import "fmt"

// Color is a terminal palette colour for HUD text. Board tiles use RGB.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorYellow
	ColorBlue
	ColorGray
	ColorBrightWhite
	ColorBrightCyan
)

// RGB is a 24-bit colour.
type RGB struct {
	R, G, B uint8
}

// Hex formats c as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
