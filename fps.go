package breach

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// FPSWidget is a small screen corner readout of FPS, TPS and the last
// frame's pipeline stats. It refreshes every ~0.5 seconds.
type FPSWidget struct {
	Visible    bool
	img        *ebiten.Image
	lastUpdate float64
}

// NewFPSWidget creates the widget. It uses a custom internal image and
// ebitenutil.DebugPrint for rendering.
func NewFPSWidget() *FPSWidget {
	// 140x48 is enough for three lines of debug text
	return &FPSWidget{Visible: true, img: ebiten.NewImage(140, 48)}
}

// Update advances the refresh timer; dt is in seconds.
func (w *FPSWidget) Update(dt float64, stats ContextStats) {
	if !w.Visible {
		return
	}
	w.lastUpdate += dt
	if w.lastUpdate < 0.5 {
		return
	}
	w.lastUpdate = 0

	w.img.Clear()
	// Semi-transparent background for readability
	w.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(w.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nTris: %d  Batches: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), stats.Triangles, stats.Batches))
}

// Draw blits the widget onto screen at the top left.
func (w *FPSWidget) Draw(screen *ebiten.Image) {
	if !w.Visible {
		return
	}
	var opts ebiten.DrawImageOptions
	opts.GeoM.Translate(4, 4)
	screen.DrawImage(w.img, &opts)
}
