package breach

import (
	"encoding/json"
	"fmt"
	"io"
)

// Level is the serialized description of an arena: its walls, targets and
// the breach colors the player shoots with. Levels are plain JSON; see
// DefaultLevel for the layout the prototype ships with.
type Level struct {
	Walls    []WallSpec   `json:"walls"`
	Targets  []TargetSpec `json:"targets"`
	Breaches []Color      `json:"breaches"`
}

// WallSpec places one wall: a corner and the two edge vectors spanning
// it.
type WallSpec struct {
	Corner [3]float32 `json:"corner"`
	AxisA  [3]float32 `json:"axisA"`
	AxisB  [3]float32 `json:"axisB"`
}

// TargetSpec places one target.
type TargetSpec struct {
	Position [3]float32 `json:"position"`
	Size     float32    `json:"size"`
}

// LoadLevel reads and validates a JSON level.
func LoadLevel(r io.Reader) (*Level, error) {
	var l Level
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&l); err != nil {
		return nil, fmt.Errorf("breach: decoding level: %w", err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Validate checks the level for shapes the renderer cannot handle.
func (l *Level) Validate() error {
	if len(l.Walls) == 0 {
		return fmt.Errorf("breach: level has no walls")
	}
	for i, w := range l.Walls {
		a := Dir(w.AxisA[0], w.AxisA[1], w.AxisA[2])
		b := Dir(w.AxisB[0], w.AxisB[1], w.AxisB[2])
		if a.Norm() == 0 || b.Norm() == 0 {
			return fmt.Errorf("breach: wall %d has a zero axis", i)
		}
		if a.Cross(b).Norm() == 0 {
			return fmt.Errorf("breach: wall %d axes are collinear", i)
		}
	}
	for i, t := range l.Targets {
		if t.Size <= 0 {
			return fmt.Errorf("breach: target %d has non-positive size %v", i, t.Size)
		}
	}
	if len(l.Breaches) == 0 {
		return fmt.Errorf("breach: level has no breaches")
	}
	return nil
}

// BuildWalls instantiates the level's walls.
func (l *Level) BuildWalls() []*Wall {
	walls := make([]*Wall, len(l.Walls))
	for i, w := range l.Walls {
		walls[i] = NewWall(
			Vec(w.Corner[0], w.Corner[1], w.Corner[2]),
			Dir(w.AxisA[0], w.AxisA[1], w.AxisA[2]),
			Dir(w.AxisB[0], w.AxisB[1], w.AxisB[2]),
		)
	}
	return walls
}

// BuildTargets instantiates the level's targets.
func (l *Level) BuildTargets() []*Target {
	targets := make([]*Target, len(l.Targets))
	for i, t := range l.Targets {
		targets[i] = NewTarget(Vec(t.Position[0], t.Position[1], t.Position[2]), t.Size)
	}
	return targets
}

// DefaultLevel returns the arena the prototype ships with: a closed room
// with twenty floating targets and two breaches.
func DefaultLevel() *Level {
	l := &Level{
		Walls: []WallSpec{
			{Corner: [3]float32{-10, 0, -10}, AxisA: [3]float32{20, 0, 0}, AxisB: [3]float32{0, 0, 20}},  // floor
			{Corner: [3]float32{-10, 6, -10}, AxisA: [3]float32{0, 0, 20}, AxisB: [3]float32{20, 0, 0}},  // ceiling
			{Corner: [3]float32{-10, 0, -10}, AxisA: [3]float32{20, 0, 0}, AxisB: [3]float32{0, 6, 0}},   // back
			{Corner: [3]float32{10, 0, 10}, AxisA: [3]float32{-20, 0, 0}, AxisB: [3]float32{0, 6, 0}},    // front
			{Corner: [3]float32{-10, 0, 10}, AxisA: [3]float32{0, 0, -20}, AxisB: [3]float32{0, 6, 0}},   // left
			{Corner: [3]float32{10, 0, -10}, AxisA: [3]float32{0, 0, 20}, AxisB: [3]float32{0, 6, 0}},    // right
		},
		Breaches: []Color{
			{0, 0.5, 1, 1},
			{1, 0.5, 0, 1},
		},
	}
	for i := 0; i < 20; i++ {
		row, col := i/5, i%5
		l.Targets = append(l.Targets, TargetSpec{
			Position: [3]float32{
				-8 + 4*float32(col),
				1.5 + float32(row%3),
				-8 + 5*float32(row),
			},
			Size: 0.8,
		})
	}
	return l
}

// ValidateNames walks the scene graph and reports an error when two
// siblings of the same composite carry the same selection name. Duplicate
// sibling names make selection paths ambiguous.
func ValidateNames(root Renderable) error {
	var dup error
	v := NewSpecializedVisitor(true, true, true)
	AddEnter(v, func(node CompositeNode) bool {
		seen := make(map[uint32]bool)
		for _, child := range node.Children() {
			named, ok := child.(interface{ Name() uint32 })
			if !ok {
				continue
			}
			name := named.Name()
			if seen[name] {
				dup = fmt.Errorf("breach: duplicate sibling selection name %d", name)
				return false
			}
			seen[name] = true
		}
		return true
	})
	root.Accept(v)
	return dup
}
