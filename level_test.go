package breach

import (
	"strings"
	"testing"
)

func TestDefaultLevelValid(t *testing.T) {
	l := DefaultLevel()
	if err := l.Validate(); err != nil {
		t.Fatal(err)
	}
	if len(l.Walls) != 6 {
		t.Errorf("walls = %d, want 6", len(l.Walls))
	}
	if len(l.Targets) != 20 {
		t.Errorf("targets = %d, want 20", len(l.Targets))
	}
	if len(l.Breaches) != 2 {
		t.Errorf("breaches = %d, want 2", len(l.Breaches))
	}
}

func TestLoadLevel(t *testing.T) {
	src := `{
		"walls": [
			{"corner": [0,0,0], "axisA": [10,0,0], "axisB": [0,6,0]}
		],
		"targets": [
			{"position": [1,2,-3], "size": 0.8}
		],
		"breaches": [
			{"R": 0, "G": 0.5, "B": 1, "A": 1}
		]
	}`
	l, err := LoadLevel(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	walls := l.BuildWalls()
	if len(walls) != 1 {
		t.Fatalf("walls = %d", len(walls))
	}
	assertVec(t, "corner", walls[0].Corner, Vec(0, 0, 0))
	a, b := walls[0].Extents()
	assertNear(t, "extent a", a, 10)
	assertNear(t, "extent b", b, 6)

	targets := l.BuildTargets()
	if len(targets) != 1 {
		t.Fatalf("targets = %d", len(targets))
	}
	assertVec(t, "target pos", targets[0].Position, Vec(1, 2, -3))
}

func TestLoadLevelUnknownField(t *testing.T) {
	src := `{"walls": [], "portals": []}`
	if _, err := LoadLevel(strings.NewReader(src)); err == nil {
		t.Fatal("unknown field accepted")
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name  string
		level Level
	}{
		{"no walls", Level{Breaches: []Color{ColorWhite}}},
		{"zero axis", Level{
			Walls:    []WallSpec{{AxisA: [3]float32{0, 0, 0}, AxisB: [3]float32{0, 1, 0}}},
			Breaches: []Color{ColorWhite},
		}},
		{"collinear axes", Level{
			Walls:    []WallSpec{{AxisA: [3]float32{1, 0, 0}, AxisB: [3]float32{2, 0, 0}}},
			Breaches: []Color{ColorWhite},
		}},
		{"bad target size", Level{
			Walls:    []WallSpec{{AxisA: [3]float32{1, 0, 0}, AxisB: [3]float32{0, 1, 0}}},
			Targets:  []TargetSpec{{Size: 0}},
			Breaches: []Color{ColorWhite},
		}},
		{"no breaches", Level{
			Walls: []WallSpec{{AxisA: [3]float32{1, 0, 0}, AxisB: [3]float32{0, 1, 0}}},
		}},
	}
	for _, tc := range cases {
		if err := tc.level.Validate(); err == nil {
			t.Errorf("%s: validated", tc.name)
		}
	}
}

// --- sibling name validation ---

func TestValidateNamesOK(t *testing.T) {
	scene := NewComposite(
		NewSelectableComposite(1, newPayloadLeaf(1, nil), newPayloadLeaf(2, nil)),
		NewSelectableComposite(2, newPayloadLeaf(1, nil)),
	)
	if err := ValidateNames(scene); err != nil {
		t.Errorf("distinct siblings rejected: %v", err)
	}
}

func TestValidateNamesDuplicate(t *testing.T) {
	scene := NewComposite(
		NewSelectableComposite(1,
			newPayloadLeaf(7, nil),
			newPayloadLeaf(7, nil),
		),
	)
	err := ValidateNames(scene)
	if err == nil {
		t.Fatal("duplicate siblings accepted")
	}
	if !strings.Contains(err.Error(), "7") {
		t.Errorf("err = %v, want the duplicate name mentioned", err)
	}
}

func TestValidateNamesDuplicateGroups(t *testing.T) {
	scene := NewComposite(
		NewSelectableComposite(5),
		NewSelectableComposite(5),
	)
	if ValidateNames(scene) == nil {
		t.Fatal("duplicate group names accepted")
	}
}
