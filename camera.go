package breach

import "github.com/chewxy/math32"

// Camera is a free fly first person camera. Position, Look and Up define
// its frame; Look and Up stay unit length and orthogonal under the
// movement operations.
type Camera struct {
	Position Vec4
	Look     Vec4
	Up       Vec4

	FOV  float32 // vertical field of view in radians
	Near float32
	Far  float32
}

// NewCamera returns a camera at the origin looking down negative z.
func NewCamera() *Camera {
	return &Camera{
		Position: Vec(0, 0, 0),
		Look:     Dir(0, 0, -1),
		Up:       Dir(0, 1, 0),
		FOV:      math32.Pi / 3,
		Near:     0.1,
		Far:      100,
	}
}

// ViewMatrix returns the world to eye transform.
func (c *Camera) ViewMatrix() Mat4 {
	return LookAt(c.Position, c.Position.Add(c.Look), c.Up)
}

// ProjMatrix returns the perspective projection for the given aspect
// ratio.
func (c *Camera) ProjMatrix(aspect float32) Mat4 {
	return Perspective(c.FOV, aspect, c.Near, c.Far)
}

// Move translates the camera: forward along the look axis, strafe along
// the right axis, rise along the up axis, each scaled by speed.
func (c *Camera) Move(forward, strafe, rise, speed float32) {
	right := c.Look.Cross(c.Up).Normalized()
	delta := c.Look.Scale(forward).Add(right.Scale(strafe)).Add(c.Up.Scale(rise))
	c.Position = c.Position.Add(delta.Scale(speed))
}

// Rotate turns the camera by yaw about its up axis and pitch about its
// right axis, in radians.
func (c *Camera) Rotate(yaw, pitch float32) {
	if yaw != 0 {
		r := Rotation(yaw, c.Up)
		c.Look = r.MulVec(c.Look).Normalized()
	}
	if pitch != 0 {
		right := c.Look.Cross(c.Up).Normalized()
		r := Rotation(pitch, right)
		c.Look = r.MulVec(c.Look).Normalized()
		c.Up = r.MulVec(c.Up).Normalized()
	}
}

// Tilt rolls the camera about its look axis, in radians.
func (c *Camera) Tilt(roll float32) {
	if roll == 0 {
		return
	}
	r := Rotation(roll, c.Look)
	c.Up = r.MulVec(c.Up).Normalized()
}

// PickRay returns the world space ray through the pixel (x, y) of a
// width by height viewport. The ray direction is unit length.
func (c *Camera) PickRay(x, y, width, height float32) Ray {
	ndcX := 2*x/width - 1
	ndcY := 1 - 2*y/height
	halfV := math32.Tan(c.FOV / 2)
	halfH := halfV * width / height

	right := c.Look.Cross(c.Up).Normalized()
	dir := c.Look.
		Add(right.Scale(ndcX * halfH)).
		Add(c.Up.Scale(ndcY * halfV)).
		Normalized()
	return Ray{Origin: c.Position, Dir: dir}
}
