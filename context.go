package breach

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Ray is a world space picking ray. Dir need not be normalized; hit
// depths are measured along Dir from Origin.
type Ray struct {
	Origin Vec4
	Dir    Vec4
}

// Context carries the mutable state of one pipeline pass: the model matrix
// stack, the selection name stack, the command queue for rendering and the
// record buffer for selection. One Context is reused across frames; the
// per-frame state is reset by BeginFrame or beginSelect.
type Context struct {
	model      Mat4
	modelStack []Mat4

	view Mat4
	proj Mat4

	width  float32
	height float32
	near   float32
	far    float32

	// headlamp shading: fragments darken with distance from the eye.
	eye        Vec4
	lampRadius float32

	cull    bool
	texture *Texture
	color   Color

	commands []renderCommand

	// selection
	ray         Ray
	names       []uint32
	pending     pendingHit
	selectBuf   []uint32
	selectCount int
	overflow    bool

	// feedback
	feedback []Vec4

	stats ContextStats

	// Debug enables per-frame timing logs on stderr.
	Debug bool
	dbg   debugStats
}

// ContextStats counts work done in the most recent pass.
type ContextStats struct {
	Triangles int
	Batches   int
	Hits      int
}

// pendingHit accumulates the z extent of the triangles drawn under one
// name stack configuration. GL style selection emits one record per
// named object, not per triangle, so consecutive hits merge until the
// name stack changes.
type pendingHit struct {
	valid bool
	zmin  float32
	zmax  float32
	names []uint32
}

// NewContext returns a context with an identity model matrix, white draw
// color and culling enabled.
func NewContext() *Context {
	return &Context{
		model:      Mat4Identity(),
		cull:       true,
		color:      ColorWhite,
		lampRadius: 20,
		near:       0.1,
		far:        100,
	}
}

// Stats returns the counters of the most recent pass.
func (c *Context) Stats() ContextStats { return c.stats }

// SetColor sets the draw color multiplied into emitted vertices.
func (c *Context) SetColor(col Color) { c.color = col }

// SetCulling toggles backface culling for subsequent triangles.
func (c *Context) SetCulling(enabled bool) { c.cull = enabled }

// SetTexture binds tex for subsequent triangles; nil binds the white
// pixel so untextured geometry still draws.
func (c *Context) SetTexture(tex *Texture) { c.texture = tex }

// CurrentTexture returns the bound texture, nil when none is bound.
func (c *Context) CurrentTexture() *Texture { return c.texture }

// PushMatrix saves the current model matrix.
func (c *Context) PushMatrix() {
	c.modelStack = append(c.modelStack, c.model)
	if c.Debug {
		c.debugCheckStackDepth()
	}
}

// PopMatrix restores the most recently saved model matrix. Popping an
// empty stack is a programmer error and panics.
func (c *Context) PopMatrix() {
	if len(c.modelStack) == 0 {
		panic("breach: PopMatrix on empty matrix stack")
	}
	c.model = c.modelStack[len(c.modelStack)-1]
	c.modelStack = c.modelStack[:len(c.modelStack)-1]
}

// MultMatrix multiplies the current model matrix by m on the right.
func (c *Context) MultMatrix(m Mat4) {
	c.model = c.model.Mul(m)
}

// LoadIdentity resets the current model matrix.
func (c *Context) LoadIdentity() {
	c.model = Mat4Identity()
}

// ModelMatrix returns the current model matrix.
func (c *Context) ModelMatrix() Mat4 { return c.model }

// PushName pushes a selection name. Changing the name stack closes the
// pending hit record, so every record reflects exactly one configuration
// of the stack.
func (c *Context) PushName(name uint32) {
	c.flushPending()
	c.names = append(c.names, name)
}

// PopName pops the top selection name. Popping an empty stack is a
// programmer error and panics.
func (c *Context) PopName() {
	if len(c.names) == 0 {
		panic("breach: PopName on empty name stack")
	}
	c.flushPending()
	c.names = c.names[:len(c.names)-1]
}

// BeginFrame prepares the context for a render pass with the given view
// and projection state.
func (c *Context) BeginFrame(view, proj Mat4, eye Vec4, width, height, near, far float32) {
	c.mustBalanced()
	c.model = Mat4Identity()
	c.view = view
	c.proj = proj
	c.eye = eye
	c.width = width
	c.height = height
	c.near = near
	c.far = far
	c.commands = c.commands[:0]
	c.stats = ContextStats{}
}

// beginSelect prepares the context for a selection pass along ray,
// recording into buf.
func (c *Context) beginSelect(ray Ray, buf []uint32, view, proj Mat4, eye Vec4, near, far float32) {
	c.mustBalanced()
	c.model = Mat4Identity()
	c.view = view
	c.proj = proj
	c.eye = eye
	c.near = near
	c.far = far
	c.ray = ray
	c.selectBuf = buf
	c.selectCount = 0
	c.overflow = false
	c.pending = pendingHit{}
	c.stats = ContextStats{}
}

// endSelect closes the pass and returns the number of records written. A
// buffer too small for the hits found reports an overflow error; partial
// records are never written.
func (c *Context) endSelect() (int, error) {
	c.flushPending()
	c.selectBuf = nil
	if c.overflow {
		return c.selectCount, errSelectOverflow
	}
	return c.selectCount, nil
}

func (c *Context) mustBalanced() {
	if len(c.modelStack) != 0 {
		panic("breach: unbalanced matrix stack between passes")
	}
	if len(c.names) != 0 {
		panic("breach: unbalanced name stack between passes")
	}
}

// recordHit folds one triangle intersection at depth z into the pending
// record for the current name stack.
func (c *Context) recordHit(z float32) {
	if !c.pending.valid {
		c.pending.valid = true
		c.pending.zmin = z
		c.pending.zmax = z
		c.pending.names = append(c.pending.names[:0], c.names...)
		return
	}
	if z < c.pending.zmin {
		c.pending.zmin = z
	}
	if z > c.pending.zmax {
		c.pending.zmax = z
	}
}

// flushPending writes the pending hit record, if any, to the selection
// buffer as [nameCount, zMinRaw, zMaxRaw, names...].
func (c *Context) flushPending() {
	if !c.pending.valid {
		return
	}
	c.pending.valid = false
	record := 3 + len(c.pending.names)
	if len(c.selectBuf) < record {
		c.overflow = true
		return
	}
	buf := c.selectBuf
	buf[0] = uint32(len(c.pending.names))
	buf[1] = encodeDepth(c.pending.zmin)
	buf[2] = encodeDepth(c.pending.zmax)
	copy(buf[3:], c.pending.names)
	c.selectBuf = buf[record:]
	c.selectCount++
	c.stats.Hits++
}

// encodeDepth maps a normalized depth in [0,1] to the full uint32 range,
// the format selection records use on the wire.
func encodeDepth(z float32) uint32 {
	if z <= 0 {
		return 0
	}
	if z >= 1 {
		return 0xffffffff
	}
	return uint32(float64(z) * float64(0xffffffff))
}

// selectBufferSize is the default capacity, in uint32 words, of the
// buffer Pick records into.
const selectBufferSize = 512

// Pick runs a selection pass of root along ray and returns the decoded
// hits sorted nearest first.
func (c *Context) Pick(root Renderable, ray Ray, view, proj Mat4, eye Vec4, near, far float32) ([]Hit, error) {
	buf := make([]uint32, selectBufferSize)
	c.beginSelect(ray, buf, view, proj, eye, near, far)
	FullRender(root, c, ModeSelect)
	count, err := c.endSelect()
	if err != nil {
		return nil, err
	}
	return DecodeSelectionBuffer(count, buf)
}

// BeginFeedback prepares the context for a feedback pass: vertices are
// projected and collected but nothing is drawn or recorded.
func (c *Context) BeginFeedback(view, proj Mat4, width, height float32) {
	c.mustBalanced()
	c.model = Mat4Identity()
	c.view = view
	c.proj = proj
	c.width = width
	c.height = height
	c.feedback = c.feedback[:0]
	c.stats = ContextStats{}
}

// Feedback returns the screen space vertices collected since
// BeginFeedback. Callers must not retain the slice across passes.
func (c *Context) Feedback() []Vec4 { return c.feedback }

// renderCommand is one textured triangle queued for Flush.
type renderCommand struct {
	verts [3]ebiten.Vertex
	tex   *Texture
	depth float32
}
