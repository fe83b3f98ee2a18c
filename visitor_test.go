package breach

import "testing"

// typeA and typeB are distinct leaf types for dispatch tests.
type typeA struct{ Leaf }

func (l *typeA) Render(ctx *Context, mode Mode) {}
func (l *typeA) Accept(v Visitor) bool          { return acceptLeaf(l, v) }

type typeB struct{ Leaf }

func (l *typeB) Render(ctx *Context, mode Mode) {}
func (l *typeB) Accept(v Visitor) bool          { return acceptLeaf(l, v) }

// --- exact dispatch ---

func TestSpecializedExactMatch(t *testing.T) {
	v := NewSpecializedVisitor(false, false, false)
	var hit string
	AddLeaf(v, func(n *typeA) bool { hit = "A"; return true })
	AddLeaf(v, func(n *typeB) bool { hit = "B"; return true })

	if !v.VisitLeaf(&typeB{}) {
		t.Error("VisitLeaf = false, want registered callback's true")
	}
	if hit != "B" {
		t.Errorf("dispatched to %q, want B", hit)
	}
}

func TestSpecializedExactBeatsInterface(t *testing.T) {
	v := NewSpecializedVisitor(false, false, false)
	var hit string
	// the interface registration comes first, but the exact concrete
	// registration still wins
	AddLeaf(v, func(n LeafNode) bool { hit = "interface"; return true })
	AddLeaf(v, func(n *typeA) bool { hit = "exact"; return true })

	v.VisitLeaf(&typeA{})
	if hit != "exact" {
		t.Errorf("dispatched to %q, want exact", hit)
	}
}

// --- compatibility ordering ---

func TestSpecializedFirstCompatibleWins(t *testing.T) {
	v := NewSpecializedVisitor(false, false, false)
	var hit string
	AddEnter(v, func(n CompositeNode) bool { hit = "composite"; return true })
	AddEnter(v, func(n SelectableCompositeNode) bool { hit = "selectable"; return true })

	// *SelectableComposite satisfies both; registration order decides
	v.VisitEnter(NewSelectableComposite(1))
	if hit != "composite" {
		t.Errorf("dispatched to %q, want composite (registered first)", hit)
	}
}

func TestSpecializedOrderingReversed(t *testing.T) {
	v := NewSpecializedVisitor(false, false, false)
	var hit string
	AddEnter(v, func(n SelectableCompositeNode) bool { hit = "selectable"; return true })
	AddEnter(v, func(n CompositeNode) bool { hit = "composite"; return true })

	v.VisitEnter(NewSelectableComposite(1))
	if hit != "selectable" {
		t.Errorf("dispatched to %q, want selectable (registered first)", hit)
	}
}

func TestSpecializedIncompatibleSkipped(t *testing.T) {
	v := NewSpecializedVisitor(false, false, false)
	called := false
	AddLeaf(v, func(n *typeA) bool { called = true; return true })

	if v.VisitLeaf(&typeB{}) {
		t.Error("VisitLeaf = true for unregistered type, want default false")
	}
	if called {
		t.Error("callback for a different type was invoked")
	}
}

// --- fallback and defaults ---

func TestSpecializedDefaults(t *testing.T) {
	v := NewSpecializedVisitor(true, false, true)
	if !v.VisitEnter(&typeA{}) {
		t.Error("enter default not honored")
	}
	if v.VisitLeaf(&typeA{}) {
		t.Error("leaf default not honored")
	}
	if !v.VisitLeave(&typeA{}) {
		t.Error("leave default not honored")
	}
}

func TestSpecializedFallback(t *testing.T) {
	v := NewSpecializedVisitor(false, false, false)
	fb := &scriptedVisitor{enterValue: true, leaveValue: true}
	v.SetFallback(fb)

	if !v.VisitEnter(&typeA{}) {
		t.Error("fallback enter result not propagated")
	}
	if !v.VisitLeaf(&typeA{}) {
		t.Error("fallback leaf result not propagated")
	}
	assertLog(t, fb.log, []string{"enter", "leaf"})
}

func TestSpecializedRegisteredSkipsFallback(t *testing.T) {
	v := NewSpecializedVisitor(false, false, false)
	fb := &scriptedVisitor{enterValue: true, leaveValue: true}
	v.SetFallback(fb)
	AddLeaf(v, func(n *typeA) bool { return false })

	if v.VisitLeaf(&typeA{}) {
		t.Error("registered callback's false not propagated")
	}
	if len(fb.log) != 0 {
		t.Error("fallback consulted despite a matching registration")
	}
}

func TestSpecializedNilNode(t *testing.T) {
	v := NewSpecializedVisitor(false, true, false)
	called := false
	AddLeaf(v, func(n *typeA) bool { called = true; return true })

	// nil never matches a registration; the default answers
	if !v.VisitLeaf(nil) {
		t.Error("VisitLeaf(nil) = false, want leaf default true")
	}
	if called {
		t.Error("registration matched nil")
	}
}

func TestSpecializedNilNodeFallback(t *testing.T) {
	v := NewSpecializedVisitor(true, true, true)
	fb := &scriptedVisitor{enterValue: true, leaveValue: true}
	v.SetFallback(fb)
	v.VisitLeaf(nil)
	assertLog(t, fb.log, []string{"leaf"})
}

// --- driving a traversal ---

func TestSpecializedVisitorOverScene(t *testing.T) {
	scene := NewComposite(&typeA{}, &typeB{}, &typeA{})
	v := NewSpecializedVisitor(true, true, true)
	countA := 0
	AddLeaf(v, func(n *typeA) bool { countA++; return true })

	if !scene.Accept(v) {
		t.Error("Accept = false")
	}
	if countA != 2 {
		t.Errorf("typeA leaves seen = %d, want 2", countA)
	}
}
