package breach

import "testing"

func pickGroup(t *testing.T, group Renderable, ray Ray) []Hit {
	t.Helper()
	ctx := NewContext()
	hits, err := ctx.Pick(group, ray, Mat4Identity(), Mat4Identity(), ray.Origin, 0, 20)
	if err != nil {
		t.Fatal(err)
	}
	return hits
}

func TestTargetFadeClamped(t *testing.T) {
	target := NewTarget(Vec(0, 0, 0), 1)
	target.SetFade(2)
	assertNear(t, "fade high", target.Fade(), 1)
	target.SetFade(-1)
	assertNear(t, "fade low", target.Fade(), 0)
}

func TestTargetRendererPayload(t *testing.T) {
	target := NewTarget(Vec(1, 2, -3), 0.8)
	r := NewTargetRenderer(4, target)
	got, ok := Get[*Target](r.Payload())
	if !ok || got != target {
		t.Errorf("payload = %v, %v", got, ok)
	}
}

func TestTargetSelectable(t *testing.T) {
	target := NewTarget(Vec(0, 0, -5), 1)
	group := NewTargetGroup([]*Target{target}, nil)

	ray := Ray{Origin: Vec(0, 0, 0), Dir: Dir(0, 0, -1)}
	hits := pickGroup(t, group, ray)
	if len(hits) != 1 {
		t.Fatalf("hits = %d, want 1", len(hits))
	}
	got, ok := Resolve[*Target](group, hits[0].NamePath)
	if !ok || got != target {
		t.Fatalf("resolved %v, %v", got, ok)
	}
}

func TestHitTargetLeavesSelection(t *testing.T) {
	target := NewTarget(Vec(0, 0, -5), 1)
	group := NewTargetGroup([]*Target{target}, nil)
	ray := Ray{Origin: Vec(0, 0, 0), Dir: Dir(0, 0, -1)}

	target.MarkHit()
	if hits := pickGroup(t, group, ray); len(hits) != 0 {
		t.Errorf("hit target still selectable: %v", hits)
	}
}

func TestTargetCornerNotSelectable(t *testing.T) {
	// the render quad covers the corner, the selection silhouette is
	// round and must not
	target := NewTarget(Vec(0, 0, -5), 2)
	group := NewTargetGroup([]*Target{target}, nil)

	corner := Ray{Origin: Vec(0.95, 0.95, 0), Dir: Dir(0, 0, -1)}
	if hits := pickGroup(t, group, corner); len(hits) != 0 {
		t.Errorf("corner shot selected the target: %v", hits)
	}
	edge := Ray{Origin: Vec(0.9, 0, 0), Dir: Dir(0, 0, -1)}
	if hits := pickGroup(t, group, edge); len(hits) != 1 {
		t.Error("shot inside the silhouette missed")
	}
}

func TestTargetGroupNaming(t *testing.T) {
	targets := []*Target{
		NewTarget(Vec(0, 0, -5), 1),
		NewTarget(Vec(3, 0, -5), 1),
	}
	group := NewTargetGroup(targets, nil)
	got, ok := Resolve[*Target](group, []uint32{NameTargets, 2})
	if !ok || got != targets[1] {
		t.Errorf("member 2 = %v, %v", got, ok)
	}
}
