package breach

// Renderable is a node of the scene graph. Rendering a node is a five step
// pipeline driven by FullRender: Configure, LoadTransform, Render,
// UnloadTransform, Deconfigure. Configure and Deconfigure bracket state a
// node contributes for itself and its subtree (texture bindings, selection
// names); LoadTransform and UnloadTransform bracket its model transform.
// Types that override a step and still want the embedded behavior must call
// through to it, the pipeline itself never calls a step twice.
type Renderable interface {
	Configure(ctx *Context, mode Mode)
	LoadTransform(ctx *Context, mode Mode)
	Render(ctx *Context, mode Mode)
	UnloadTransform(ctx *Context, mode Mode)
	Deconfigure(ctx *Context, mode Mode)

	// Accept drives a Visitor over the node, see Visitor for the contract.
	Accept(v Visitor) bool
}

// FullRender runs the complete pipeline over node. Unwinding is balanced
// even if Render panics: the transform is unloaded before the node is
// deconfigured.
func FullRender(node Renderable, ctx *Context, mode Mode) {
	node.Configure(ctx, mode)
	defer node.Deconfigure(ctx, mode)
	node.LoadTransform(ctx, mode)
	defer node.UnloadTransform(ctx, mode)
	node.Render(ctx, mode)
}

// acceptComposite implements the composite traversal contract on behalf of
// self. It exists as a free helper because embedding does not redispatch:
// every composite type calls it with itself so visitors see the concrete
// node, not the embedded base.
func acceptComposite(self Renderable, components []Renderable, v Visitor) bool {
	if !v.VisitEnter(self) {
		return false
	}
	for _, c := range components {
		if !c.Accept(v) {
			break
		}
	}
	return v.VisitLeave(self)
}

// acceptLeaf is the leaf counterpart of acceptComposite.
func acceptLeaf(self Renderable, v Visitor) bool {
	return v.VisitLeaf(self)
}

// Composite is a Renderable that owns an ordered list of child nodes and
// renders them back to front in insertion order. All five pipeline steps
// are no-ops apart from Render, which runs the full pipeline of each child.
type Composite struct {
	components []Renderable
}

// NewComposite returns a composite holding the given children.
func NewComposite(components ...Renderable) *Composite {
	return &Composite{components: components}
}

// Add appends children to the composite.
func (c *Composite) Add(components ...Renderable) {
	c.components = append(c.components, components...)
}

// Children returns the child list in render order. Callers must not
// mutate it.
func (c *Composite) Children() []Renderable { return c.components }

func (c *Composite) Configure(ctx *Context, mode Mode)       {}
func (c *Composite) LoadTransform(ctx *Context, mode Mode)   {}
func (c *Composite) UnloadTransform(ctx *Context, mode Mode) {}
func (c *Composite) Deconfigure(ctx *Context, mode Mode)     {}

func (c *Composite) Render(ctx *Context, mode Mode) {
	for _, child := range c.components {
		FullRender(child, ctx, mode)
	}
}

func (c *Composite) Accept(v Visitor) bool {
	return acceptComposite(c, c.components, v)
}

// Leaf is the base for terminal nodes. It provides no-op pipeline steps
// except Render, which concrete leaves must supply themselves.
type Leaf struct{}

func (Leaf) Configure(ctx *Context, mode Mode)       {}
func (Leaf) LoadTransform(ctx *Context, mode Mode)   {}
func (Leaf) UnloadTransform(ctx *Context, mode Mode) {}
func (Leaf) Deconfigure(ctx *Context, mode Mode)     {}

// leafRenderable marks types built on Leaf for capability checks.
func (Leaf) leafRenderable() {}

// LeafNode is satisfied by any Renderable built on Leaf.
type LeafNode interface {
	Renderable
	leafRenderable()
}

// CompositeNode is satisfied by any Renderable that exposes children.
type CompositeNode interface {
	Renderable
	Children() []Renderable
}
