package breach

// Target is one shootable target floating in the arena. A hit target
// stops answering selection immediately and fades out of the render over
// a short tween driven by the game loop.
type Target struct {
	Position Vec4
	Size     float32

	hit  bool
	fade float32
}

// NewTarget returns a live target of the given size centered on pos.
func NewTarget(pos Vec4, size float32) *Target {
	return &Target{Position: pos, Size: size, fade: 1}
}

// Hit reports whether the target has been shot.
func (t *Target) Hit() bool { return t.hit }

// MarkHit flags the target as shot. Idempotent.
func (t *Target) MarkHit() { t.hit = true }

// Fade returns the target's render opacity in [0,1].
func (t *Target) Fade() float32 { return t.fade }

// SetFade sets the render opacity, clamped to [0,1].
func (t *Target) SetFade(f float32) {
	t.fade = clamp01(f)
}

// TargetRenderer draws a target as a textured square facing the z axis.
// Selection uses a 20-gon instead of the square, so near misses on the
// corners do not count. Its payload is the *Target.
type TargetRenderer struct {
	SelectableLeaf
	target *Target
	rect   *TessellatedRect
	poly   *RegularPolygon
}

// targetSelectSides is the fan resolution of the selection silhouette.
const targetSelectSides = 20

// NewTargetRenderer returns a renderer for target named name within the
// target group.
func NewTargetRenderer(name uint32, target *Target) *TargetRenderer {
	half := target.Size / 2
	rect := NewTessellatedRectAt(
		target.Position.Add(Vec4{-half, -half, 0, 0}),
		Dir(target.Size, 0, 0),
		Dir(0, target.Size, 0),
		1, 1,
		Rect{X: 0, Y: 0, Width: 1, Height: 1},
		true,
	)
	poly := NewRegularPolygon(targetSelectSides)
	poly.SetTransformation(Translation(target.Position[0], target.Position[1], target.Position[2]).
		Mul(Scaling(half, half, 1)))

	r := &TargetRenderer{
		SelectableLeaf: SelectableLeaf{Selectable: NewSelectable(name)},
		target:         target,
		rect:           rect,
		poly:           poly,
	}
	r.SetPayload(NewPayload(target))
	return r
}

// Target returns the target being rendered.
func (r *TargetRenderer) Target() *Target { return r.target }

func (r *TargetRenderer) Render(ctx *Context, mode Mode) {
	switch mode {
	case ModeSelect:
		if r.target.hit {
			return
		}
		FullRender(r.poly, ctx, mode)
	default:
		if r.target.fade <= 0 {
			return
		}
		prev := ctx.color
		ctx.SetColor(Color{prev.R, prev.G, prev.B, prev.A * r.target.fade})
		FullRender(r.rect, ctx, mode)
		ctx.SetColor(prev)
	}
}

func (r *TargetRenderer) Accept(v Visitor) bool {
	return acceptLeaf(r, v)
}

// NewTargetGroup builds the selectable composite holding one renderer
// per target under the target group name, textured with tex. Member
// names count from 1 in target order.
func NewTargetGroup(targets []*Target, tex *Texture) *SelectableComposite {
	members := make([]Renderable, len(targets))
	for i, t := range targets {
		members[i] = NewTargetRenderer(uint32(i+1), t)
	}
	return NewSelectableComposite(NameTargets, NewTexturerComposite(tex, members...))
}
