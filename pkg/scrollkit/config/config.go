// Package config loads wrap-content list settings from TOML.
//
//	item_size = 60.0
//	pool_size = 8
//	movement  = "vertical"
//	clipping  = "soft_clip"
//	count     = 200
//	language  = "en"
//	icon      = "chevron"
//
//	[viewport]
//	width  = 640
//	height = 480
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/scrollkit/pkg/scrollkit"
	"github.com/BrandonKowalski/scrollkit/pkg/scrollkit/internal/icons"
)

// List describes a wrap-content list and the panel it scrolls in.
type List struct {
	ItemSize float32  `toml:"item_size"`
	PoolSize int      `toml:"pool_size"`
	Movement string   `toml:"movement"`
	Clipping string   `toml:"clipping"`
	Count    int      `toml:"count"`
	Language string   `toml:"language"`
	Icon     string   `toml:"icon"`
	Viewport Viewport `toml:"viewport"`
}

// Viewport is the panel's clip region in pixels.
type Viewport struct {
	Width  int32 `toml:"width"`
	Height int32 `toml:"height"`
}

// Default returns the settings used for any key a file leaves out.
func Default() List {
	return List{
		ItemSize: 60,
		PoolSize: 8,
		Movement: scrollkit.MovementVertical.String(),
		Clipping: scrollkit.ClippingSoftClip.String(),
		Count:    100,
		Language: "en",
		Icon:     "chevron",
		Viewport: Viewport{Width: 640, Height: 420},
	}
}

// Parse decodes TOML on top of Default and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (List, error) {
	cfg := Default()

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return List{}, fmt.Errorf("config: decode: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return List{}, fmt.Errorf("config: unknown keys: %s", strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return List{}, err
	}
	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return List{}, fmt.Errorf("config: %w", err)
	}
	return Parse(data)
}

func (l List) Validate() error {
	var errs []error

	if l.ItemSize <= 0 {
		errs = append(errs, fmt.Errorf("item_size must be positive, got %v", l.ItemSize))
	}
	if l.PoolSize <= 0 {
		errs = append(errs, fmt.Errorf("pool_size must be positive, got %d", l.PoolSize))
	}
	if l.Count < 0 {
		errs = append(errs, fmt.Errorf("count must not be negative, got %d", l.Count))
	}
	if _, err := l.MovementValue(); err != nil {
		errs = append(errs, err)
	}
	if _, err := l.ClippingValue(); err != nil {
		errs = append(errs, err)
	}
	// An empty icon draws rows without one.
	if l.Icon != "" && !slices.Contains(icons.Names(), l.Icon) {
		errs = append(errs, fmt.Errorf("unknown icon %q", l.Icon))
	}
	if l.Viewport.Width <= 0 || l.Viewport.Height <= 0 {
		errs = append(errs, fmt.Errorf("viewport must be positive, got %dx%d", l.Viewport.Width, l.Viewport.Height))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

func (l List) MovementValue() (scrollkit.Movement, error) {
	for _, m := range []scrollkit.Movement{
		scrollkit.MovementVertical,
		scrollkit.MovementHorizontal,
		scrollkit.MovementUnrestricted,
		scrollkit.MovementCustom,
	} {
		if strings.EqualFold(l.Movement, m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown movement %q", l.Movement)
}

func (l List) ClippingValue() (scrollkit.Clipping, error) {
	for _, c := range []scrollkit.Clipping{
		scrollkit.ClippingNone,
		scrollkit.ClippingTextureMask,
		scrollkit.ClippingSoftClip,
		scrollkit.ClippingConstrainButDontClip,
	} {
		if strings.EqualFold(l.Clipping, c.String()) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown clipping %q", l.Clipping)
}
