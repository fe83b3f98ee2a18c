package breach

import "github.com/chewxy/math32"

// Wall group and member naming. Selection name paths into the scene are
// [group, member]; members count from 1.
const (
	NameTargets  uint32 = 1
	NameWalls    uint32 = 2
	NameBreaches uint32 = 3
)

// Default wall surface parameters: how finely a wall is subdivided for
// shading and how many world units one texture tile covers.
const (
	defaultWallTessellation = 10
	defaultWallTextureScale = 2.0
)

// Wall is one flat surface of the arena. Corner is one corner of the
// wall; AxisA and AxisB span its edges, so the wall covers
// Corner + a*AxisA + b*AxisB for a, b in [0,1]. Walls are addressable in
// their own 2D coordinate system, measured in world units along each
// axis, which is how breaches are placed.
type Wall struct {
	Corner Vec4
	AxisA  Vec4
	AxisB  Vec4

	Tessellation int
	TextureScale float32
}

// NewWall returns a wall spanning the given corner and edge axes with
// the default surface parameters.
func NewWall(corner, axisA, axisB Vec4) *Wall {
	return &Wall{
		Corner:       corner,
		AxisA:        axisA,
		AxisB:        axisB,
		Tessellation: defaultWallTessellation,
		TextureScale: defaultWallTextureScale,
	}
}

// Extents returns the wall's edge lengths in world units.
func (w *Wall) Extents() (float32, float32) {
	return w.AxisA.Norm(), w.AxisB.Norm()
}

// Normal returns the wall's unit normal, AxisA cross AxisB.
func (w *Wall) Normal() Vec4 {
	return w.AxisA.Cross(w.AxisB).Normalized()
}

// InWallCoordinates maps a world point onto the wall plane and returns
// its wall coordinates in world units along each axis.
func (w *Wall) InWallCoordinates(p Vec4) (float32, float32) {
	d := p.Sub(w.Corner)
	return d.Dot(w.AxisA.Normalized()), d.Dot(w.AxisB.Normalized())
}

// FromWallCoordinates maps wall coordinates back to a world point on the
// wall plane.
func (w *Wall) FromWallCoordinates(a, b float32) Vec4 {
	return w.Corner.
		Add(w.AxisA.Normalized().Scale(a)).
		Add(w.AxisB.Normalized().Scale(b))
}

// WallRenderer draws a wall as a double sided tessellated rectangle and
// names it for selection. Its payload is the *Wall, so resolving a hit
// on it answers which wall was shot.
type WallRenderer struct {
	SelectableLeaf
	wall *Wall
	rect *TessellatedRect
}

// NewWallRenderer returns a renderer for wall named name within the wall
// group.
func NewWallRenderer(name uint32, wall *Wall) *WallRenderer {
	lenA, lenB := wall.Extents()
	texRect := Rect{
		X: 0, Y: 0,
		Width:  lenA / wall.TextureScale,
		Height: lenB / wall.TextureScale,
	}
	stepsA := wallSteps(lenA, wall.Tessellation)
	stepsB := wallSteps(lenB, wall.Tessellation)
	r := &WallRenderer{
		SelectableLeaf: SelectableLeaf{Selectable: NewSelectable(name)},
		wall:           wall,
		rect:           NewTessellatedRectAt(wall.Corner, wall.AxisA, wall.AxisB, stepsA, stepsB, texRect, true),
	}
	r.SetPayload(NewPayload(wall))
	return r
}

// wallSteps caps subdivision so very large walls do not explode triangle
// counts.
func wallSteps(length float32, tessellation int) int {
	steps := int(math32.Ceil(length))
	if steps < 1 {
		steps = 1
	}
	if steps > tessellation {
		steps = tessellation
	}
	return steps
}

// Wall returns the wall being rendered.
func (r *WallRenderer) Wall() *Wall { return r.wall }

func (r *WallRenderer) Render(ctx *Context, mode Mode) {
	FullRender(r.rect, ctx, mode)
}

func (r *WallRenderer) Accept(v Visitor) bool {
	return acceptLeaf(r, v)
}

// NewWallGroup builds the selectable composite holding one renderer per
// wall under the wall group name, textured with tex. Member names count
// from 1 in wall order.
func NewWallGroup(walls []*Wall, tex *Texture) *SelectableComposite {
	members := make([]Renderable, len(walls))
	for i, w := range walls {
		members[i] = NewWallRenderer(uint32(i+1), w)
	}
	group := NewSelectableComposite(NameWalls, NewTexturerComposite(tex, members...))
	return group
}
