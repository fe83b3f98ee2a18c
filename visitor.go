package breach

import "reflect"

// Visitor is a hierarchy-aware visitor over the scene graph.
//
// A leaf's Accept calls VisitLeaf and returns its result. A composite's
// Accept first calls VisitEnter; a false return prunes the subtree (children
// and VisitLeave are skipped and Accept returns false). Otherwise the
// composite walks its children in order, stopping at the first child whose
// Accept returns false, then always calls VisitLeave and returns its result.
type Visitor interface {
	// VisitEnter is called by a composite before any of its children.
	// Return false to skip the subtree.
	VisitEnter(node Renderable) bool
	// VisitLeaf is called by a leaf in place of enter/leave.
	VisitLeaf(node Renderable) bool
	// VisitLeave is called by a composite after its children, even when
	// child traversal stopped early. Its result becomes the composite's
	// Accept result.
	VisitLeave(node Renderable) bool
}

// BaseVisitor implements Visitor with the default behavior: every call
// returns true for a non-nil node and false for nil, so an absent node
// trivially fails any "should I continue" check. Embed it to override only
// the entry points an algorithm cares about.
type BaseVisitor struct{}

func (BaseVisitor) VisitEnter(node Renderable) bool { return node != nil }
func (BaseVisitor) VisitLeaf(node Renderable) bool  { return node != nil }
func (BaseVisitor) VisitLeave(node Renderable) bool { return node != nil }

// specialization is one registered callback together with the information
// needed to match it against a visited node.
type specialization struct {
	// typ is the exact reflect key for concrete registrations; nil when the
	// registered type is an interface (interfaces only take part in the
	// ordered compatibility scan).
	typ   reflect.Type
	match func(Renderable) (matched, result bool)
}

// dispatchTable holds the registrations for one dispatch point. The exact
// map is the fast path for concrete types registered verbatim; the ordered
// list is scanned in registration order when no exact match exists, and the
// first entry whose type the node satisfies wins.
type dispatchTable struct {
	exact        map[reflect.Type]func(Renderable) bool
	ordered      []specialization
	defaultValue bool
}

func (t *dispatchTable) add(s specialization) {
	if s.typ != nil {
		if t.exact == nil {
			t.exact = make(map[reflect.Type]func(Renderable) bool)
		}
		match := s.match
		t.exact[s.typ] = func(n Renderable) bool {
			_, result := match(n)
			return result
		}
	}
	t.ordered = append(t.ordered, s)
}

// dispatch resolves the callback for node per the resolution order: exact
// type match, then ordered compatibility scan, then the fallback entry
// point, then the configured default.
func (t *dispatchTable) dispatch(node Renderable, fallback func(Renderable) bool) bool {
	if node != nil {
		if cb, ok := t.exact[reflect.TypeOf(node)]; ok {
			return cb(node)
		}
		for _, s := range t.ordered {
			if matched, result := s.match(node); matched {
				return result
			}
		}
	}
	if fallback != nil {
		return fallback(node)
	}
	return t.defaultValue
}

// SpecializedVisitor is a Visitor that resolves each call to a callback
// registered for the visited node's type. It mimics overloading on the
// dynamic type without coupling node types to the algorithms that walk
// them: callers register with AddEnter, AddLeaf and AddLeave for the
// concrete types (or capability interfaces) they care about.
//
// Enter, leaf and leave each have an independent dispatch table. When no
// registration matches a node, the call is delegated to the fallback
// visitor if one was set, otherwise the per-point default answer given at
// construction is returned.
type SpecializedVisitor struct {
	enter, leaf, leave dispatchTable
	fallback           Visitor
}

// NewSpecializedVisitor returns an empty specialized visitor with the given
// default answers for the enter, leaf and leave dispatch points.
func NewSpecializedVisitor(defaultEnter, defaultLeaf, defaultLeave bool) *SpecializedVisitor {
	v := &SpecializedVisitor{}
	v.enter.defaultValue = defaultEnter
	v.leaf.defaultValue = defaultLeaf
	v.leave.defaultValue = defaultLeave
	return v
}

// SetFallback sets the visitor consulted when type resolution fails.
func (v *SpecializedVisitor) SetFallback(fallback Visitor) {
	v.fallback = fallback
}

func (v *SpecializedVisitor) VisitEnter(node Renderable) bool {
	return v.enter.dispatch(node, v.fallbackFunc((Visitor).VisitEnter))
}

func (v *SpecializedVisitor) VisitLeaf(node Renderable) bool {
	return v.leaf.dispatch(node, v.fallbackFunc((Visitor).VisitLeaf))
}

func (v *SpecializedVisitor) VisitLeave(node Renderable) bool {
	return v.leave.dispatch(node, v.fallbackFunc((Visitor).VisitLeave))
}

func (v *SpecializedVisitor) fallbackFunc(call func(Visitor, Renderable) bool) func(Renderable) bool {
	if v.fallback == nil {
		return nil
	}
	return func(n Renderable) bool { return call(v.fallback, n) }
}

// newSpecialization builds the dispatch entry for a callback registered
// against type T. The match closure is a safe dynamic check: nodes that are
// not a T are simply reported unmatched, never mis-cast.
func newSpecialization[T Renderable](callback func(T) bool) specialization {
	s := specialization{
		match: func(n Renderable) (bool, bool) {
			t, ok := n.(T)
			if !ok {
				return false, false
			}
			return true, callback(t)
		},
	}
	if rt := reflect.TypeFor[T](); rt.Kind() != reflect.Interface {
		s.typ = rt
	}
	return s
}

// AddEnter registers callback for VisitEnter calls on nodes of type T.
// Concrete types get an exact-match fast path; interface types take part in
// the ordered scan only. Registration order is the tie-break among
// compatible non-exact matches: first registered wins.
func AddEnter[T Renderable](v *SpecializedVisitor, callback func(T) bool) {
	v.enter.add(newSpecialization(callback))
}

// AddLeaf registers callback for VisitLeaf calls on nodes of type T.
func AddLeaf[T Renderable](v *SpecializedVisitor, callback func(T) bool) {
	v.leaf.add(newSpecialization(callback))
}

// AddLeave registers callback for VisitLeave calls on nodes of type T.
func AddLeave[T Renderable](v *SpecializedVisitor, callback func(T) bool) {
	v.leave.add(newSpecialization(callback))
}
