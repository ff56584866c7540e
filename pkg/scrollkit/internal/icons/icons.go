// Package icons rasterizes the small SVG glyphs drawn next to list rows.
package icons

import (
	"bytes"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Built-in icons, keyed by name.
var builtin = map[string]string{
	"chevron": `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">` +
		`<path d="M8 4 L16 12 L8 20 L6 18 L12 12 L6 6 Z" fill="#FFFFFF"/></svg>`,
	"dot": `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">` +
		`<circle cx="12" cy="12" r="6" fill="#FFFFFF"/></svg>`,
	"square": `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">` +
		`<rect x="4" y="4" width="16" height="16" fill="#FFFFFF"/></svg>`,
}

// Names returns the built-in icon names.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	return names
}

// Builtin rasterizes the named built-in icon at size x size pixels.
func Builtin(name string, size int) (*image.RGBA, error) {
	svg, ok := builtin[name]
	if !ok {
		return nil, fmt.Errorf("icons: unknown icon %q", name)
	}
	return Rasterize([]byte(svg), size, size)
}

// Rasterize renders SVG data into a width x height RGBA image.
func Rasterize(data []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("icons: invalid size %dx%d", width, height)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("icons: parse: %w", err)
	}

	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1)

	return img, nil
}
