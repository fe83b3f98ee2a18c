package breach

import "github.com/chewxy/math32"

// Default breach footprint on a wall, in world units.
const (
	DefaultBreachWidth  float32 = 0.8
	DefaultBreachHeight float32 = 0.8
)

// Breach is one breach that can be shot onto a wall. A breach starts
// closed; shooting it attaches it to a wall at a point in that wall's
// coordinate system and opens it. Shooting again relocates it.
type Breach struct {
	Color  Color
	Width  float32
	Height float32

	opened bool
	wall   *Wall
	shotA  float32
	shotB  float32

	// openScale animates the opening, 0 closed to 1 fully open.
	openScale float32
}

// NewBreach returns a closed breach of the default size drawn in col.
func NewBreach(col Color) *Breach {
	return &Breach{
		Color:  col,
		Width:  DefaultBreachWidth,
		Height: DefaultBreachHeight,
	}
}

// Opened reports whether the breach is attached to a wall.
func (b *Breach) Opened() bool { return b.opened }

// Wall returns the wall the breach is attached to, nil while closed.
func (b *Breach) Wall() *Wall { return b.wall }

// ShotPoint returns the breach center in wall coordinates.
func (b *Breach) ShotPoint() (float32, float32) { return b.shotA, b.shotB }

// OpenScale returns the opening animation progress.
func (b *Breach) OpenScale() float32 { return b.openScale }

// SetOpenScale sets the opening animation progress, clamped to [0,1].
func (b *Breach) SetOpenScale(s float32) { b.openScale = clamp01(s) }

// adjustedShotPoint clamps a shot point so the breach footprint stays
// inside the wall.
func (b *Breach) adjustedShotPoint(wall *Wall, a, c float32) (float32, float32) {
	extA, extB := wall.Extents()
	halfW, halfH := b.Width/2, b.Height/2
	return clampRange(a, halfW, extA-halfW), clampRange(c, halfH, extB-halfH)
}

func clampRange(v, lo, hi float32) float32 {
	if hi < lo {
		// wall narrower than the breach, center it
		return (lo + hi) / 2
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// transformation returns the breach's placement on its wall: the wall
// basis translated to the shot point, rolled about the wall normal so the
// breach's vertical tracks the player's up at the moment of the shot.
func (b *Breach) transformation(playerUp Vec4) Mat4 {
	wall := b.wall
	ua := playerUp.Dot(wall.AxisA.Normalized())
	ub := playerUp.Dot(wall.AxisB.Normalized())
	roll := -math32.Atan2(ua, ub)

	center := wall.FromWallCoordinates(b.shotA, b.shotB)
	basis := BasisTransform(center,
		wall.AxisA.Normalized().Scale(b.Width),
		wall.AxisB.Normalized().Scale(b.Height))
	return basis.
		Mul(Rotation(roll, Dir(0, 0, 1))).
		Mul(Translation(-0.5, -0.5, 0))
}

// Breaches is the fixed set of breaches the player cycles through.
type Breaches struct {
	breaches []*Breach
}

// NewBreaches returns a set of closed breaches, one per color.
func NewBreaches(colors ...Color) *Breaches {
	bs := make([]*Breach, len(colors))
	for i, c := range colors {
		bs[i] = NewBreach(c)
	}
	return &Breaches{breaches: bs}
}

// All returns the breaches in index order.
func (bs *Breaches) All() []*Breach { return bs.breaches }

// Get returns the breach at index i.
func (bs *Breaches) Get(i int) *Breach { return bs.breaches[i] }

// Shoot places breach i on wall at the wall coordinate point (a, c). The
// point is first clamped so the breach fits on the wall. The shot is
// rejected when it would overlap another open breach on the same wall.
func (bs *Breaches) Shoot(i int, wall *Wall, a, c float32) bool {
	b := bs.breaches[i]
	a, c = b.adjustedShotPoint(wall, a, c)

	minDistSq := (b.Width*b.Width + b.Height*b.Height) / 2 * 0.9
	for j, other := range bs.breaches {
		if j == i || !other.opened || other.wall != wall {
			continue
		}
		da := a - other.shotA
		dc := c - other.shotB
		if da*da+dc*dc < minDistSq {
			return false
		}
	}

	b.wall = wall
	b.shotA = a
	b.shotB = c
	b.opened = true
	b.openScale = 0
	return true
}

// BreachRenderer draws an open breach as a textured disc quad lying on
// its wall. The placement transform is refreshed every LoadTransform
// because the breach can be relocated between frames. Its payload is the
// *Breach.
type BreachRenderer struct {
	SelectableLeaf
	MatrixTransformer
	breach   *Breach
	playerUp func() Vec4
	tex      *Texture
}

// NewBreachRenderer returns a renderer for breach named name within the
// breach group. playerUp supplies the camera up axis used to roll the
// breach upright; nil means world up.
func NewBreachRenderer(name uint32, breach *Breach, tex *Texture, playerUp func() Vec4) *BreachRenderer {
	r := &BreachRenderer{
		SelectableLeaf:    SelectableLeaf{Selectable: NewSelectable(name)},
		MatrixTransformer: NewMatrixTransformer(Mat4Identity()),
		breach:            breach,
		playerUp:          playerUp,
		tex:               tex,
	}
	r.SetPayload(NewPayload(breach))
	return r
}

// Breach returns the breach being rendered.
func (r *BreachRenderer) Breach() *Breach { return r.breach }

func (r *BreachRenderer) LoadTransform(ctx *Context, mode Mode) {
	if r.breach.opened {
		up := Dir(0, 1, 0)
		if r.playerUp != nil {
			up = r.playerUp()
		}
		s := r.breach.openScale
		if s <= 0 {
			s = 0.01
		}
		grow := Translation(0.5, 0.5, 0).
			Mul(Scaling(s, s, 1)).
			Mul(Translation(-0.5, -0.5, 0))
		r.SetTransformation(r.breach.transformation(up).Mul(grow))
	}
	r.MatrixTransformer.LoadTransform(ctx, mode)
}

func (r *BreachRenderer) UnloadTransform(ctx *Context, mode Mode) {
	r.MatrixTransformer.UnloadTransform(ctx, mode)
}

func (r *BreachRenderer) Render(ctx *Context, mode Mode) {
	if !r.breach.opened || mode != ModeRender {
		return
	}
	prevTex := ctx.CurrentTexture()
	prevCol := ctx.color
	prevCull := ctx.cull
	ctx.SetTexture(r.tex)
	ctx.SetColor(r.breach.Color)
	ctx.SetCulling(false)

	// lifted slightly off the wall plane to avoid fighting it
	a, b := Vec(0, 0, 0.01), Vec(1, 0, 0.01)
	c, d := Vec(1, 1, 0.01), Vec(0, 1, 0.01)
	ctx.Quad(mode, a, b, c, d, UV{0, 1}, UV{1, 1}, UV{1, 0}, UV{0, 0})

	ctx.SetCulling(prevCull)
	ctx.SetColor(prevCol)
	ctx.SetTexture(prevTex)
}

func (r *BreachRenderer) Accept(v Visitor) bool {
	return acceptLeaf(r, v)
}

// NewBreachGroup builds the selectable composite holding one renderer
// per breach under the breach group name. Member names count from 1 in
// breach order. Each breach gets its own disc texture tinted by draw
// color at render time.
func NewBreachGroup(bs *Breaches, tex *Texture, playerUp func() Vec4) *SelectableComposite {
	members := make([]Renderable, len(bs.breaches))
	for i, b := range bs.breaches {
		members[i] = NewBreachRenderer(uint32(i+1), b, tex, playerUp)
	}
	return NewSelectableComposite(NameBreaches, members...)
}
