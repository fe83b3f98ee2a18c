package breach

import (
	"testing"

	"github.com/chewxy/math32"
)

func breachTestWall() *Wall {
	// z=0 plane, 10 units along x, 6 along y
	return NewWall(Vec(0, 0, 0), Dir(10, 0, 0), Dir(0, 6, 0))
}

func TestShootPlacesBreach(t *testing.T) {
	bs := NewBreaches(Color{0, 0.5, 1, 1}, Color{1, 0.5, 0, 1})
	wall := breachTestWall()
	if !bs.Shoot(0, wall, 5, 3) {
		t.Fatal("clear shot rejected")
	}
	b := bs.Get(0)
	if !b.Opened() || b.Wall() != wall {
		t.Fatal("breach not attached after shot")
	}
	a, c := b.ShotPoint()
	assertNear(t, "a", a, 5)
	assertNear(t, "c", c, 3)
	if b.OpenScale() != 0 {
		t.Errorf("open scale = %v, want 0 right after the shot", b.OpenScale())
	}
}

func TestShootClampsToWall(t *testing.T) {
	bs := NewBreaches(ColorWhite)
	wall := breachTestWall()
	bs.Shoot(0, wall, -2, 100)
	a, c := bs.Get(0).ShotPoint()
	// half of the default 0.8 footprint stays inside each edge
	assertNear(t, "a clamped", a, 0.4)
	assertNear(t, "c clamped", c, 5.6)
}

func TestShootNarrowWallCenters(t *testing.T) {
	bs := NewBreaches(ColorWhite)
	narrow := NewWall(Vec(0, 0, 0), Dir(0.5, 0, 0), Dir(0, 6, 0))
	bs.Shoot(0, narrow, 0, 3)
	a, _ := bs.Get(0).ShotPoint()
	assertNear(t, "centered", a, 0.25)
}

func TestShootOverlapRejected(t *testing.T) {
	bs := NewBreaches(ColorWhite, ColorWhite)
	wall := breachTestWall()
	if !bs.Shoot(0, wall, 5, 3) {
		t.Fatal("first shot rejected")
	}
	if bs.Shoot(1, wall, 5.1, 3.1) {
		t.Error("overlapping shot accepted")
	}
	if bs.Get(1).Opened() {
		t.Error("rejected breach opened anyway")
	}
	if !bs.Shoot(1, wall, 8, 3) {
		t.Error("distant shot on the same wall rejected")
	}
}

func TestShootOverlapOnlySameWall(t *testing.T) {
	bs := NewBreaches(ColorWhite, ColorWhite)
	wallA := breachTestWall()
	wallB := NewWall(Vec(0, 0, 10), Dir(10, 0, 0), Dir(0, 6, 0))
	bs.Shoot(0, wallA, 5, 3)
	if !bs.Shoot(1, wallB, 5, 3) {
		t.Error("same spot on a different wall rejected")
	}
}

func TestShootRelocates(t *testing.T) {
	bs := NewBreaches(ColorWhite)
	wall := breachTestWall()
	bs.Shoot(0, wall, 2, 2)
	bs.Get(0).SetOpenScale(1)
	if !bs.Shoot(0, wall, 8, 4) {
		t.Fatal("relocation rejected")
	}
	a, c := bs.Get(0).ShotPoint()
	assertNear(t, "a", a, 8)
	assertNear(t, "c", c, 4)
	if bs.Get(0).OpenScale() != 0 {
		t.Error("relocation did not restart the open animation")
	}
}

func TestBreachTransformationCenters(t *testing.T) {
	b := NewBreach(ColorWhite)
	wall := breachTestWall()
	b.wall = wall
	b.shotA, b.shotB = 5, 3
	b.opened = true

	m := b.transformation(Dir(0, 1, 0))
	// the local quad center (0.5, 0.5) lands on the shot point
	assertVec(t, "center", m.MulVec(Vec(0.5, 0.5, 0)), Vec(5, 3, 0))
}

func TestBreachTransformationTracksUp(t *testing.T) {
	b := NewBreach(ColorWhite)
	wall := breachTestWall()
	b.wall = wall
	b.shotA, b.shotB = 5, 3
	b.opened = true

	// with the player's up along the wall's B axis there is no roll, so
	// the local y axis maps onto the wall's B direction
	m := b.transformation(Dir(0, 1, 0))
	yDir := m.MulVec(Vec(0.5, 1, 0)).Sub(m.MulVec(Vec(0.5, 0.5, 0))).Normalized()
	assertVec(t, "upright", yDir, Dir(0, 1, 0))

	// with up along the A axis the breach rolls a quarter turn
	m = b.transformation(Dir(1, 0, 0))
	yDir = m.MulVec(Vec(0.5, 1, 0)).Sub(m.MulVec(Vec(0.5, 0.5, 0))).Normalized()
	assertNear(t, "rolled", math32.Abs(yDir.Dot(Dir(0, 1, 0))), 0)
}

func TestBreachRendererOnlyRenderOpened(t *testing.T) {
	b := NewBreach(ColorWhite)
	r := NewBreachRenderer(1, b, nil, nil)
	ctx := NewContext()
	ctx.BeginFeedback(Mat4Identity(), Mat4Identity(), 100, 100)
	FullRender(r, ctx, ModeFeedback)
	if len(ctx.Feedback()) != 0 {
		t.Error("closed breach emitted geometry")
	}
}

func TestBreachRendererNotSelectable(t *testing.T) {
	bs := NewBreaches(ColorWhite)
	wall := breachTestWall()
	bs.Shoot(0, wall, 5, 3)
	bs.Get(0).SetOpenScale(1)
	group := NewBreachGroup(bs, nil, nil)

	ctx := NewContext()
	ray := Ray{Origin: Vec(5, 3, 5), Dir: Dir(0, 0, -1)}
	hits, err := ctx.Pick(group, ray, Mat4Identity(), Mat4Identity(), ray.Origin, 0, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 0 {
		t.Errorf("open breach produced selection hits: %v", hits)
	}
}
