package breach

import (
	"sort"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Triangle submits one triangle with the current model matrix, texture and
// color. What happens depends on the mode: rendering projects and queues it
// for Flush, selection intersects it against the pick ray, feedback
// projects it into the feedback buffer.
func (c *Context) Triangle(mode Mode, a, b, tc Vec4, uva, uvb, uvc UV) {
	switch mode {
	case ModeRender:
		c.renderTriangle(a, b, tc, uva, uvb, uvc)
	case ModeSelect:
		c.selectTriangle(a, b, tc)
	case ModeFeedback:
		c.feedbackTriangle(a, b, tc)
	}
}

// Quad submits the quad (a,b,c,d) in winding order as two triangles with
// texcoords interpolated from the corner UVs.
func (c *Context) Quad(mode Mode, a, b, qc, d Vec4, uva, uvb, uvc, uvd UV) {
	c.Triangle(mode, a, b, qc, uva, uvb, uvc)
	c.Triangle(mode, a, qc, d, uva, uvc, uvd)
}

func (c *Context) renderTriangle(a, b, tc Vec4, uva, uvb, uvc UV) {
	world := [3]Vec4{
		c.model.MulVec(a),
		c.model.MulVec(b),
		c.model.MulVec(tc),
	}
	viewproj := c.proj.Mul(c.view)

	var screen [3]Vec4
	depth := float32(0)
	for i, w := range world {
		clip := viewproj.MulVec(w)
		if clip[3] <= c.near {
			// at least one vertex behind the near plane, drop the
			// triangle rather than clip it
			return
		}
		inv := 1 / clip[3]
		screen[i] = Vec4{
			(clip[0]*inv*0.5 + 0.5) * c.width,
			(1 - (clip[1]*inv*0.5 + 0.5)) * c.height,
			clip[2] * inv,
			clip[3],
		}
		depth += clip[3]
	}
	depth /= 3

	if c.cull {
		// screen space signed area; the y flip makes front faces negative
		area2 := (screen[1][0]-screen[0][0])*(screen[2][1]-screen[0][1]) -
			(screen[2][0]-screen[0][0])*(screen[1][1]-screen[0][1])
		if area2 >= 0 {
			return
		}
	}

	uvs := [3]UV{uva, uvb, uvc}
	_, sw, sh := c.textureImage()

	var cmd renderCommand
	cmd.tex = c.texture
	cmd.depth = depth
	for i := range cmd.verts {
		shade := c.headlamp(world[i])
		cmd.verts[i] = ebiten.Vertex{
			DstX:   screen[i][0],
			DstY:   screen[i][1],
			SrcX:   uvs[i].U * sw,
			SrcY:   uvs[i].V * sh,
			ColorR: c.color.R * shade,
			ColorG: c.color.G * shade,
			ColorB: c.color.B * shade,
			ColorA: c.color.A,
		}
	}
	c.commands = append(c.commands, cmd)
	c.stats.Triangles++
}

// headlamp returns the shading factor for a world position: full bright at
// the eye, falling off linearly to a dim ambient floor at lampRadius.
func (c *Context) headlamp(world Vec4) float32 {
	if c.lampRadius <= 0 {
		return 1
	}
	d := world.Sub(c.eye).Norm()
	shade := 1 - d/c.lampRadius
	if shade < 0.15 {
		return 0.15
	}
	return shade
}

func (c *Context) textureImage() (*ebiten.Image, float32, float32) {
	if c.texture == nil || c.texture.Image == nil {
		return WhitePixel, 1, 1
	}
	b := c.texture.Image.Bounds()
	return c.texture.Image, float32(b.Dx()), float32(b.Dy())
}

// selectTriangle intersects the pick ray with the triangle in world space
// and folds a hit into the pending selection record. Both faces intersect;
// selection ignores winding.
func (c *Context) selectTriangle(a, b, tc Vec4) {
	v0 := c.model.MulVec(a)
	v1 := c.model.MulVec(b)
	v2 := c.model.MulVec(tc)
	c.stats.Triangles++

	t, ok := intersectTriangle(c.ray, v0, v1, v2)
	if !ok {
		return
	}
	z := (t - c.near) / (c.far - c.near)
	if z < 0 {
		z = 0
	} else if z > 1 {
		z = 1
	}
	c.recordHit(z)
}

// intersectTriangle is the Moller-Trumbore ray triangle test, accepting
// hits on either face. It returns the distance along the ray direction.
func intersectTriangle(ray Ray, v0, v1, v2 Vec4) (float32, bool) {
	const eps = 1e-7
	e1 := v1.Sub(v0)
	e2 := v2.Sub(v0)
	p := ray.Dir.Cross(e2)
	det := e1.Dot(p)
	if det > -eps && det < eps {
		return 0, false
	}
	inv := 1 / det
	s := ray.Origin.Sub(v0)
	u := s.Dot(p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}
	q := s.Cross(e1)
	v := ray.Dir.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}
	t := e2.Dot(q) * inv
	if t <= eps {
		return 0, false
	}
	return t, true
}

func (c *Context) feedbackTriangle(a, b, tc Vec4) {
	viewproj := c.proj.Mul(c.view)
	for _, v := range [3]Vec4{a, b, tc} {
		clip := viewproj.MulVec(c.model.MulVec(v))
		if clip[3] <= 0 {
			continue
		}
		inv := 1 / clip[3]
		c.feedback = append(c.feedback, Vec4{
			(clip[0]*inv*0.5 + 0.5) * c.width,
			(1 - (clip[1]*inv*0.5 + 0.5)) * c.height,
			clip[2] * inv,
			1,
		})
	}
	c.stats.Triangles++
}

// Flush draws the queued triangles to screen back to front, batching runs
// that share a texture into single DrawTriangles calls, and clears the
// queue.
func (c *Context) Flush(screen *ebiten.Image) {
	if len(c.commands) == 0 {
		return
	}
	sortStart := time.Now()
	sort.SliceStable(c.commands, func(i, j int) bool {
		return c.commands[i].depth > c.commands[j].depth
	})
	if c.Debug {
		c.dbg.sortTime = time.Since(sortStart)
	}
	submitStart := time.Now()

	var verts []ebiten.Vertex
	var indices []uint16
	flushBatch := func(tex *Texture) {
		if len(verts) == 0 {
			return
		}
		opts := &ebiten.DrawTrianglesOptions{
			ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
		}
		img := WhitePixel
		if tex != nil && tex.Image != nil {
			img = tex.Image
			opts.Filter = tex.Filter
			opts.Address = tex.Wrap
		}
		screen.DrawTriangles(verts, indices, img, opts)
		c.stats.Batches++
		verts = verts[:0]
		indices = indices[:0]
	}

	current := c.commands[0].tex
	for _, cmd := range c.commands {
		if cmd.tex != current {
			flushBatch(current)
			current = cmd.tex
		}
		base := uint16(len(verts))
		verts = append(verts, cmd.verts[0], cmd.verts[1], cmd.verts[2])
		indices = append(indices, base, base+1, base+2)
	}
	flushBatch(current)
	if c.Debug {
		c.dbg.submitTime = time.Since(submitStart)
		c.dbg.commandCount = len(c.commands)
		c.dbg.batchCount = c.stats.Batches
	}
	c.commands = c.commands[:0]
}
