package breach

import "github.com/chewxy/math32"

// MatrixTransformer decorates a node with a local transformation applied
// during LoadTransform and undone during UnloadTransform.
type MatrixTransformer struct {
	transformation Mat4
}

// NewMatrixTransformer returns a transformer applying m.
func NewMatrixTransformer(m Mat4) MatrixTransformer {
	return MatrixTransformer{transformation: m}
}

// SetTransformation replaces the local transformation.
func (t *MatrixTransformer) SetTransformation(m Mat4) { t.transformation = m }

// Transformation returns the local transformation.
func (t *MatrixTransformer) Transformation() Mat4 { return t.transformation }

func (t *MatrixTransformer) LoadTransform(ctx *Context, mode Mode) {
	ctx.PushMatrix()
	ctx.MultMatrix(t.transformation)
}

func (t *MatrixTransformer) UnloadTransform(ctx *Context, mode Mode) {
	ctx.PopMatrix()
}

// TessellatedRect is a unit rectangle in the local xy plane, subdivided
// into a grid of quads when rendered so the headlamp shading varies
// across its surface. Selection and feedback use the plain rectangle, the
// subdivision only matters for lighting. texRect maps the grid onto a
// region of texture space, so a wall can repeat its texture.
type TessellatedRect struct {
	Leaf
	MatrixTransformer

	xSteps      int
	ySteps      int
	texRect     Rect
	doubleSided bool
}

// NewTessellatedRect returns a unit rect subdivided xSteps by ySteps with
// texcoords spanning texRect.
func NewTessellatedRect(xSteps, ySteps int, texRect Rect, doubleSided bool) *TessellatedRect {
	if xSteps < 1 {
		xSteps = 1
	}
	if ySteps < 1 {
		ySteps = 1
	}
	return &TessellatedRect{
		MatrixTransformer: NewMatrixTransformer(Mat4Identity()),
		xSteps:            xSteps,
		ySteps:            ySteps,
		texRect:           texRect,
		doubleSided:       doubleSided,
	}
}

// NewTessellatedRectAt places the rect in space: offset is its origin
// corner, axisX and axisY span its edges.
func NewTessellatedRectAt(offset, axisX, axisY Vec4, xSteps, ySteps int, texRect Rect, doubleSided bool) *TessellatedRect {
	r := NewTessellatedRect(xSteps, ySteps, texRect, doubleSided)
	r.transformation = BasisTransform(offset, axisX, axisY)
	return r
}

func (r *TessellatedRect) LoadTransform(ctx *Context, mode Mode) {
	r.MatrixTransformer.LoadTransform(ctx, mode)
}

func (r *TessellatedRect) UnloadTransform(ctx *Context, mode Mode) {
	r.MatrixTransformer.UnloadTransform(ctx, mode)
}

func (r *TessellatedRect) Render(ctx *Context, mode Mode) {
	if mode != ModeRender {
		// pick and feedback do not care about shading detail
		r.quad(ctx, mode, false)
		if r.doubleSided && mode == ModeFeedback {
			r.quad(ctx, mode, true)
		}
		return
	}
	r.grid(ctx, false)
	if r.doubleSided {
		r.grid(ctx, true)
	}
}

func (r *TessellatedRect) uv(x, y float32) UV {
	return UV{
		U: r.texRect.X + x*r.texRect.Width,
		V: r.texRect.Y + (1-y)*r.texRect.Height,
	}
}

func (r *TessellatedRect) quad(ctx *Context, mode Mode, reversed bool) {
	a, b, c, d := Vec(0, 0, 0), Vec(1, 0, 0), Vec(1, 1, 0), Vec(0, 1, 0)
	ua, ub, uc, ud := r.uv(0, 0), r.uv(1, 0), r.uv(1, 1), r.uv(0, 1)
	if reversed {
		ctx.Quad(mode, d, c, b, a, ud, uc, ub, ua)
		return
	}
	ctx.Quad(mode, a, b, c, d, ua, ub, uc, ud)
}

func (r *TessellatedRect) grid(ctx *Context, reversed bool) {
	dx := 1 / float32(r.xSteps)
	dy := 1 / float32(r.ySteps)
	for iy := 0; iy < r.ySteps; iy++ {
		y0 := float32(iy) * dy
		y1 := y0 + dy
		for ix := 0; ix < r.xSteps; ix++ {
			x0 := float32(ix) * dx
			x1 := x0 + dx
			a, b := Vec(x0, y0, 0), Vec(x1, y0, 0)
			c, d := Vec(x1, y1, 0), Vec(x0, y1, 0)
			ua, ub := r.uv(x0, y0), r.uv(x1, y0)
			uc, ud := r.uv(x1, y1), r.uv(x0, y1)
			if reversed {
				ctx.Quad(ModeRender, d, c, b, a, ud, uc, ub, ua)
			} else {
				ctx.Quad(ModeRender, a, b, c, d, ua, ub, uc, ud)
			}
		}
	}
}

// Accept is provided on the concrete type so visitors see it, not the
// embedded Leaf.
func (r *TessellatedRect) Accept(v Visitor) bool {
	return acceptLeaf(r, v)
}

// RegularPolygon is a unit radius polygon in the local xy plane, centered
// on the origin, rendered as a triangle fan. Texcoords map the polygon's
// bounding square onto the full texture.
type RegularPolygon struct {
	Leaf
	MatrixTransformer

	sides int
}

// NewRegularPolygon returns a polygon with the given number of sides.
func NewRegularPolygon(sides int) *RegularPolygon {
	if sides < 3 {
		sides = 3
	}
	return &RegularPolygon{
		MatrixTransformer: NewMatrixTransformer(Mat4Identity()),
		sides:             sides,
	}
}

func (p *RegularPolygon) LoadTransform(ctx *Context, mode Mode) {
	p.MatrixTransformer.LoadTransform(ctx, mode)
}

func (p *RegularPolygon) UnloadTransform(ctx *Context, mode Mode) {
	p.MatrixTransformer.UnloadTransform(ctx, mode)
}

func (p *RegularPolygon) Render(ctx *Context, mode Mode) {
	center := Vec(0, 0, 0)
	centerUV := UV{0.5, 0.5}
	rim := func(i int) (Vec4, UV) {
		if i == p.sides {
			i = 0 // close the fan with the exact first vertex
		}
		s, c := math32.Sincos(-2 * math32.Pi * float32(i) / float32(p.sides))
		return Vec(c, s, 0), UV{0.5 + c*0.5, 0.5 - s*0.5}
	}
	for i := 0; i < p.sides; i++ {
		a, ua := rim(i)
		b, ub := rim(i + 1)
		ctx.Triangle(mode, center, a, b, centerUV, ua, ub)
	}
}

func (p *RegularPolygon) Accept(v Visitor) bool {
	return acceptLeaf(p, v)
}
