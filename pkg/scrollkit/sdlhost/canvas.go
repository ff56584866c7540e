package sdlhost

import (
	"math"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/scrollkit/pkg/scrollkit"
	"github.com/BrandonKowalski/scrollkit/pkg/scrollkit/memory"
)

// rowPadding is the gap between a row's edge and its icon.
const rowPadding int32 = 8

// Canvas draws the active views of a memory scene inside a viewport.
type Canvas struct {
	Viewport sdl.Rect
	Theme    Theme
	Icons    *TextureCache
	IconName string
}

func NewCanvas(viewport sdl.Rect, theme Theme) *Canvas {
	return &Canvas{
		Viewport: viewport,
		Theme:    theme,
		Icons:    NewTextureCache(),
		IconName: "chevron",
	}
}

// RowRect maps a view's local position to screen space. Local axes point
// up and left, toward lower indices; screen axes point down and right.
func RowRect(viewport sdl.Rect, movement scrollkit.Movement, itemSize float32, panelPos, viewPos scrollkit.Vector3) sdl.Rect {
	size := int32(math.Round(float64(itemSize)))

	if movement == scrollkit.MovementHorizontal {
		return sdl.Rect{
			X: viewport.X - int32(math.Round(float64(viewPos.X+panelPos.X))),
			Y: viewport.Y,
			W: size,
			H: viewport.H,
		}
	}

	return sdl.Rect{
		X: viewport.X,
		Y: viewport.Y - int32(math.Round(float64(viewPos.Y+panelPos.Y))),
		W: viewport.W,
		H: size,
	}
}

// Draw paints the viewport background and every active, on-screen view.
// Rows alternate color by logical index.
func (c *Canvas) Draw(renderer *sdl.Renderer, scene *memory.Scene, helper *scrollkit.WrapContentHelper) error {
	renderer.SetClipRect(&c.Viewport)
	defer renderer.SetClipRect(nil)

	setColor(renderer, c.Theme.PanelColor)
	if err := renderer.FillRect(&c.Viewport); err != nil {
		return err
	}

	movement := scene.ScrollView.Movement()
	panelPos := scene.Panel.LocalPosition()

	for _, view := range scene.Container.Views() {
		if !view.Active() {
			continue
		}

		rect := RowRect(c.Viewport, movement, scene.Container.ItemSize(), panelPos, view.LocalPosition())
		if !rect.HasIntersection(&c.Viewport) {
			continue
		}

		color := c.Theme.RowColor
		if index, ok := helper.IndexOf(view); ok && index%2 == 1 {
			color = c.Theme.AltRowColor
		}
		setColor(renderer, color)

		inner := sdl.Rect{X: rect.X + 1, Y: rect.Y + 1, W: rect.W - 2, H: rect.H - 2}
		if err := renderer.FillRect(&inner); err != nil {
			return err
		}

		if err := c.drawIcon(renderer, rect); err != nil {
			return err
		}
	}

	return nil
}

func (c *Canvas) drawIcon(renderer *sdl.Renderer, row sdl.Rect) error {
	if c.Icons == nil || c.IconName == "" {
		return nil
	}

	size := min(row.W, row.H) - 2*rowPadding
	if size <= 0 {
		return nil
	}

	texture, err := c.Icons.Icon(renderer, c.IconName, size)
	if err != nil {
		return err
	}

	accent := c.Theme.AccentColor
	texture.SetColorMod(accent.R, accent.G, accent.B)

	dst := sdl.Rect{X: row.X + rowPadding, Y: row.Y + rowPadding, W: size, H: size}
	return renderer.Copy(texture, nil, &dst)
}

func setColor(renderer *sdl.Renderer, color sdl.Color) {
	renderer.SetDrawColor(color.R, color.G, color.B, color.A)
}

// Destroy releases cached textures.
func (c *Canvas) Destroy() {
	if c.Icons != nil {
		c.Icons.Destroy()
	}
}
