package breach

import (
	"errors"
	"fmt"
	"sort"
)

var errSelectOverflow = errors.New("breach: selection buffer overflow")

// Hit is one decoded selection record: the name path of the node that was
// hit and the normalized depth extent of its geometry along the pick ray.
type Hit struct {
	ZMin     float32
	ZMax     float32
	NamePath []uint32
}

// DecodeSelectionBuffer parses count records from buf, each laid out as
// [nameCount, zMinRaw, zMaxRaw, names...], and returns them sorted nearest
// first. Raw depths cover the full uint32 range and decode to [0,1]. A
// record with zero names is legal and produces an empty path. A record
// that runs past the end of buf is an error.
func DecodeSelectionBuffer(count int, buf []uint32) ([]Hit, error) {
	hits := make([]Hit, 0, count)
	pos := 0
	for i := 0; i < count; i++ {
		if pos+3 > len(buf) {
			return nil, fmt.Errorf("breach: selection record %d overruns buffer", i)
		}
		n := int(buf[pos])
		if pos+3+n > len(buf) {
			return nil, fmt.Errorf("breach: selection record %d overruns buffer", i)
		}
		hit := Hit{
			ZMin: decodeDepth(buf[pos+1]),
			ZMax: decodeDepth(buf[pos+2]),
		}
		if n > 0 {
			hit.NamePath = append([]uint32(nil), buf[pos+3:pos+3+n]...)
		}
		hits = append(hits, hit)
		pos += 3 + n
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].ZMin < hits[j].ZMin
	})
	return hits, nil
}

func decodeDepth(raw uint32) float32 {
	return float32(float64(raw) / float64(0xffffffff))
}

// pathResolver walks the scene graph matching selectable nodes against a
// desired name path. Unnamed nodes are transparent: the resolver descends
// through them without consuming a path element. A named node whose name
// differs from the expected element prunes its subtree. When the final
// element matches, the node's payload is grabbed and the walk stops.
type pathResolver struct {
	*SpecializedVisitor
	desired []uint32
	level   int
	found   bool
	payload Payload
}

func newPathResolver(desired []uint32) *pathResolver {
	r := &pathResolver{
		SpecializedVisitor: NewSpecializedVisitor(true, true, true),
		desired:            desired,
	}
	AddEnter(r.SpecializedVisitor, r.enterSelectable)
	AddLeaf(r.SpecializedVisitor, r.visitSelectableLeaf)
	AddLeave(r.SpecializedVisitor, r.leaveSelectable)
	return r
}

func (r *pathResolver) enterSelectable(node SelectableCompositeNode) bool {
	if !r.matches(node.Name()) {
		return false
	}
	r.level++
	if r.level == len(r.desired) {
		r.grab(node.Payload())
		return false
	}
	return !r.found
}

func (r *pathResolver) visitSelectableLeaf(node SelectableLeafNode) bool {
	if !r.matches(node.Name()) {
		return !r.found
	}
	r.level++
	if r.level == len(r.desired) {
		r.grab(node.Payload())
	}
	return !r.found
}

func (r *pathResolver) leaveSelectable(node SelectableCompositeNode) bool {
	return !r.found
}

// matches reports whether name is the next expected path element. An
// empty or exhausted desired path matches nothing.
func (r *pathResolver) matches(name uint32) bool {
	return r.level < len(r.desired) && r.desired[r.level] == name
}

func (r *pathResolver) grab(p Payload) {
	r.found = true
	if p.IsSet() {
		r.payload = p
	}
}

// ResolvePayload finds the node addressed by the name path under root and
// returns its payload. The second result is false when no node matches
// the path or the matched node carries no payload.
func ResolvePayload(root Renderable, path []uint32) (Payload, bool) {
	r := newPathResolver(path)
	root.Accept(r)
	if !r.found || !r.payload.IsSet() {
		return Payload{}, false
	}
	return r.payload, true
}

// Resolve finds the node addressed by the name path under root and returns
// its payload as a T. Resolution fails when no node matches, the node has
// no payload, or the payload is not exactly a T.
func Resolve[T any](root Renderable, path []uint32) (T, bool) {
	p, ok := ResolvePayload(root, path)
	if !ok {
		var zero T
		return zero, false
	}
	return Get[T](p)
}
