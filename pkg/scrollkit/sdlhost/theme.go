package sdlhost

import "github.com/veandco/go-sdl2/sdl"

// Theme defines the colors used to draw a list.
type Theme struct {
	BackgroundColor sdl.Color // Window background
	PanelColor      sdl.Color // Viewport background
	RowColor        sdl.Color // Even rows
	AltRowColor     sdl.Color // Odd rows
	AccentColor     sdl.Color // Row icons and the scroll indicator
}

// DefaultTheme is a dark theme with a teal accent.
func DefaultTheme() Theme {
	return Theme{
		BackgroundColor: HexToColor(0x101010),
		PanelColor:      HexToColor(0x1C1C1C),
		RowColor:        HexToColor(0x2A2A2A),
		AltRowColor:     HexToColor(0x333333),
		AccentColor:     HexToColor(0x008080),
	}
}

// HexToColor converts 0xRRGGBB to an opaque color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}
