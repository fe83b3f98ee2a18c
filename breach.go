package breach

import (
	imagecolor "image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Mode is the rendering intent for a scene traversal. It plays the role the
// OpenGL render mode plays for classic selection: the same scene graph is
// walked with the same pipeline, and nodes adjust the primitives they emit.
type Mode uint8

const (
	// ModeRender produces pixels: leaves emit textured, shaded triangles
	// into the frame's command queue.
	ModeRender Mode = iota
	// ModeSelect performs hit testing: leaves test their primitives against
	// the pick ray and record hits under the current name stack.
	ModeSelect
	// ModeFeedback captures transformed primitives without producing pixels
	// or hits. Used to probe visibility.
	ModeFeedback
)

// String returns the mode name for debug output.
func (m Mode) String() string {
	switch m {
	case ModeRender:
		return "render"
	case ModeSelect:
		return "select"
	case ModeFeedback:
		return "feedback"
	default:
		return "unknown"
	}
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float32
}

// ColorWhite is the default material tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// Rect is a 2D offset and size. When used with textures it selects the
// sub/super portion of the texture to apply: remember texture coordinates
// have unit width and height regardless of the image size, so a Width of 4
// tiles the texture 4 times.
type Rect struct {
	X, Y, Width, Height float32
}

// UV is a texture coordinate pair.
type UV struct {
	U, V float32
}

// RGBA converts the color to a standard library color.RGBA (premultiplying).
func (c Color) RGBA() imagecolor.RGBA {
	return imagecolor.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// WhitePixel is a 1x1 white image used when no texture is bound.
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(ColorWhite.RGBA())
}
