package breach

import "testing"

func testWall() *Wall {
	// x=0 plane, 4 units along y, 6 along z
	return NewWall(Vec(0, 0, 0), Dir(0, 4, 0), Dir(0, 0, 6))
}

func TestWallExtents(t *testing.T) {
	a, b := testWall().Extents()
	assertNear(t, "extent a", a, 4)
	assertNear(t, "extent b", b, 6)
}

func TestWallNormal(t *testing.T) {
	assertVec(t, "normal", testWall().Normal(), Dir(1, 0, 0))
}

func TestWallCoordinateRoundTrip(t *testing.T) {
	w := testWall()
	p := w.FromWallCoordinates(1.5, 4)
	assertVec(t, "world point", p, Vec(0, 1.5, 4))
	a, b := w.InWallCoordinates(p)
	assertNear(t, "a", a, 1.5)
	assertNear(t, "b", b, 4)
}

func TestWallCoordinatesIgnoreNormalOffset(t *testing.T) {
	w := testWall()
	// a point off the plane projects onto it
	a, b := w.InWallCoordinates(Vec(3, 2, 1))
	assertNear(t, "a", a, 2)
	assertNear(t, "b", b, 1)
}

func TestWallStepsCapped(t *testing.T) {
	if got := wallSteps(100, 10); got != 10 {
		t.Errorf("steps = %d, want capped at 10", got)
	}
	if got := wallSteps(0.3, 10); got != 1 {
		t.Errorf("steps = %d, want floor of 1", got)
	}
}

func TestWallRendererPayload(t *testing.T) {
	w := testWall()
	r := NewWallRenderer(3, w)
	if r.Name() != 3 {
		t.Errorf("name = %d, want 3", r.Name())
	}
	got, ok := Get[*Wall](r.Payload())
	if !ok || got != w {
		t.Errorf("payload = %v, %v; want the wall", got, ok)
	}
}

func TestWallGroupResolution(t *testing.T) {
	walls := []*Wall{
		testWall(),
		NewWall(Vec(10, 0, 0), Dir(0, 4, 0), Dir(0, 0, 6)),
	}
	group := NewWallGroup(walls, nil)

	got, ok := Resolve[*Wall](group, []uint32{NameWalls, 2})
	if !ok || got != walls[1] {
		t.Fatalf("Resolve wall 2 = %v, %v", got, ok)
	}
	if _, ok := Resolve[*Wall](group, []uint32{NameWalls, 3}); ok {
		t.Error("resolved a wall member that does not exist")
	}
}

func TestWallGroupPick(t *testing.T) {
	group := NewWallGroup([]*Wall{testWall()}, nil)
	ctx := NewContext()
	ray := Ray{Origin: Vec(5, 2, 3), Dir: Dir(-1, 0, 0)}
	hits, err := ctx.Pick(group, ray, Mat4Identity(), Mat4Identity(), Vec(5, 2, 3), 0, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 1 {
		t.Fatalf("hits = %d, want 1", len(hits))
	}
	wall, ok := Resolve[*Wall](group, hits[0].NamePath)
	if !ok {
		t.Fatalf("hit path %v did not resolve", hits[0].NamePath)
	}
	a, b := wall.InWallCoordinates(ray.Origin.Add(ray.Dir.Scale(hits[0].ZMin * 10)))
	assertNear(t, "hit a", a, 2)
	assertNear(t, "hit b", b, 3)
}
