package scrollkit

// Vector2 is a 2D offset, used for panel clip offsets.
type Vector2 struct {
	X, Y float32
}

// Vector3 is a local-space position.
type Vector3 struct {
	X, Y, Z float32
}

// WithX returns a copy of v with X replaced.
func (v Vector3) WithX(x float32) Vector3 {
	v.X = x
	return v
}

// WithY returns a copy of v with Y replaced.
func (v Vector3) WithY(y float32) Vector3 {
	v.Y = y
	return v
}

// Movement is the axis a scroll view may be dragged along.
type Movement int

const (
	MovementVertical Movement = iota
	MovementHorizontal
	MovementUnrestricted
	MovementCustom
)

func (m Movement) String() string {
	switch m {
	case MovementVertical:
		return "vertical"
	case MovementHorizontal:
		return "horizontal"
	case MovementUnrestricted:
		return "unrestricted"
	case MovementCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Clipping is the clip mode of a panel.
type Clipping int

const (
	ClippingNone Clipping = iota
	ClippingTextureMask
	ClippingSoftClip
	ClippingConstrainButDontClip
)

func (c Clipping) String() string {
	switch c {
	case ClippingNone:
		return "none"
	case ClippingTextureMask:
		return "texture_mask"
	case ClippingSoftClip:
		return "soft_clip"
	case ClippingConstrainButDontClip:
		return "constrain_but_dont_clip"
	default:
		return "unknown"
	}
}
