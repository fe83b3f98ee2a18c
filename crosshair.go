package breach

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Crosshair is the screen space aiming overlay drawn after the 3D pass.
// Besides the reticle it shows one indicator dot per breach, lit when
// that breach is open.
type Crosshair struct {
	Size      float32
	Thickness float32
	Color     color.RGBA

	breaches *Breaches
}

// NewCrosshair returns a crosshair reporting the state of bs.
func NewCrosshair(bs *Breaches) *Crosshair {
	return &Crosshair{
		Size:      10,
		Thickness: 2,
		Color:     color.RGBA{255, 255, 255, 200},
		breaches:  bs,
	}
}

// Draw renders the crosshair centered on screen with breach indicators
// below it.
func (c *Crosshair) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	cx := float32(b.Dx()) / 2
	cy := float32(b.Dy()) / 2

	vector.StrokeLine(screen, cx-c.Size, cy, cx+c.Size, cy, c.Thickness, c.Color, true)
	vector.StrokeLine(screen, cx, cy-c.Size, cx, cy+c.Size, c.Thickness, c.Color, true)

	if c.breaches == nil {
		return
	}
	all := c.breaches.All()
	spacing := c.Size * 1.6
	x := cx - spacing*float32(len(all)-1)/2
	y := cy + c.Size*2.5
	for _, breach := range all {
		col := breach.Color.RGBA()
		if !breach.Opened() {
			vector.StrokeCircle(screen, x, y, c.Size*0.4, 1, col, true)
		} else {
			vector.DrawFilledCircle(screen, x, y, c.Size*0.4, col, true)
		}
		x += spacing
	}
}
