package breach

import (
	"image"

	"github.com/chewxy/math32"
	"github.com/hajimehoshi/ebiten/v2"
)

// Texture wraps an ebiten image together with the sampling state geometry
// is drawn with.
type Texture struct {
	Image  *ebiten.Image
	Filter ebiten.Filter
	Wrap   ebiten.Address
}

// NewTexture returns a texture over img with linear filtering and
// repeat wrapping, the defaults wall geometry expects.
func NewTexture(img *ebiten.Image) *Texture {
	return &Texture{
		Image:  img,
		Filter: ebiten.FilterLinear,
		Wrap:   ebiten.AddressRepeat,
	}
}

// Texturer binds a texture for its subtree during Configure and unbinds
// it during Deconfigure. Selection passes are untouched, pick geometry
// does not sample.
type Texturer struct {
	texture  *Texture
	previous *Texture
}

// NewTexturer returns a texturer decoration binding tex.
func NewTexturer(tex *Texture) Texturer {
	return Texturer{texture: tex}
}

func (t *Texturer) Configure(ctx *Context, mode Mode) {
	if mode != ModeSelect {
		t.previous = ctx.CurrentTexture()
		ctx.SetTexture(t.texture)
	}
}

func (t *Texturer) Deconfigure(ctx *Context, mode Mode) {
	if mode != ModeSelect {
		ctx.SetTexture(t.previous)
		t.previous = nil
	}
}

// TexturerComposite is a composite whose subtree renders with a bound
// texture.
type TexturerComposite struct {
	Composite
	Texturer
}

// NewTexturerComposite returns a textured composite with the given
// children.
func NewTexturerComposite(tex *Texture, components ...Renderable) *TexturerComposite {
	return &TexturerComposite{
		Composite: Composite{components: components},
		Texturer:  Texturer{texture: tex},
	}
}

func (t *TexturerComposite) Configure(ctx *Context, mode Mode) {
	t.Texturer.Configure(ctx, mode)
}

func (t *TexturerComposite) Deconfigure(ctx *Context, mode Mode) {
	t.Texturer.Deconfigure(ctx, mode)
}

func (t *TexturerComposite) Accept(v Visitor) bool {
	return acceptComposite(t, t.components, v)
}

// The generators below build the textures the prototype ships with, so
// running it needs no files on disk.

// CheckerTexture returns a size x size two tone checker, cells pixels per
// square. Used for walls.
func CheckerTexture(size, cells int, a, b Color) *Texture {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	ca, cb := a.RGBA(), b.RGBA()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/cells+y/cells)%2 == 0 {
				img.Set(x, y, ca)
			} else {
				img.Set(x, y, cb)
			}
		}
	}
	return NewTexture(ebiten.NewImageFromImage(img))
}

// RingTexture returns a size x size concentric ring target on a
// transparent background.
func RingTexture(size int, rings ...Color) *Texture {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	if len(rings) == 0 {
		rings = []Color{{1, 0, 0, 1}, {1, 1, 1, 1}}
	}
	center := float32(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float32(x) + 0.5 - center
			dy := float32(y) + 0.5 - center
			d := math32.Sqrt(dx*dx+dy*dy) / center
			if d > 1 {
				continue
			}
			band := int(d * float32(len(rings)))
			if band >= len(rings) {
				band = len(rings) - 1
			}
			img.Set(x, y, rings[band].RGBA())
		}
	}
	tex := NewTexture(ebiten.NewImageFromImage(img))
	tex.Wrap = ebiten.AddressClampToZero
	return tex
}

// DiscTexture returns a size x size filled disc of col with a soft edge,
// the swirl a breach renders with.
func DiscTexture(size int, col Color) *Texture {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	center := float32(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float32(x) + 0.5 - center
			dy := float32(y) + 0.5 - center
			d := math32.Sqrt(dx*dx+dy*dy) / center
			if d > 1 {
				continue
			}
			fade := float32(1)
			if d > 0.8 {
				fade = (1 - d) / 0.2
			}
			c := Color{col.R, col.G, col.B, col.A * fade}
			img.Set(x, y, c.RGBA())
		}
	}
	tex := NewTexture(ebiten.NewImageFromImage(img))
	tex.Wrap = ebiten.AddressClampToZero
	return tex
}
