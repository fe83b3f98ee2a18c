package breach

// Selectable decorates a node with a selection name and an optional
// payload. In ModeSelect the name is pushed on the context's name stack
// during Configure and popped during Deconfigure, so every hit recorded
// under the node carries the full name path down from the root. Other
// modes are untouched.
type Selectable struct {
	name    uint32
	payload Payload
}

// NewSelectable returns a selectable decoration with the given name.
func NewSelectable(name uint32) Selectable {
	return Selectable{name: name}
}

// Name returns the selection name.
func (s *Selectable) Name() uint32 { return s.name }

// Payload returns the payload attached to the node, set or not.
func (s *Selectable) Payload() Payload { return s.payload }

// SetPayload attaches a payload to the node.
func (s *Selectable) SetPayload(p Payload) { s.payload = p }

func (s *Selectable) Configure(ctx *Context, mode Mode) {
	if mode == ModeSelect {
		ctx.PushName(s.name)
	}
}

func (s *Selectable) Deconfigure(ctx *Context, mode Mode) {
	if mode == ModeSelect {
		ctx.PopName()
	}
}

// SelectableComposite is a composite carrying a selection name. The
// explicit pipeline overrides resolve the promotion tie between the
// embedded Composite no-ops and the Selectable decoration.
type SelectableComposite struct {
	Composite
	Selectable
}

// NewSelectableComposite returns a named composite with the given children.
func NewSelectableComposite(name uint32, components ...Renderable) *SelectableComposite {
	return &SelectableComposite{
		Composite:  Composite{components: components},
		Selectable: Selectable{name: name},
	}
}

func (s *SelectableComposite) Configure(ctx *Context, mode Mode) {
	s.Selectable.Configure(ctx, mode)
}

func (s *SelectableComposite) Deconfigure(ctx *Context, mode Mode) {
	s.Selectable.Deconfigure(ctx, mode)
}

func (s *SelectableComposite) Accept(v Visitor) bool {
	return acceptComposite(s, s.components, v)
}

// SelectableLeaf is the leaf counterpart of SelectableComposite; concrete
// leaves embed it and provide Render and Accept themselves.
type SelectableLeaf struct {
	Leaf
	Selectable
}

func (s *SelectableLeaf) Configure(ctx *Context, mode Mode) {
	s.Selectable.Configure(ctx, mode)
}

func (s *SelectableLeaf) Deconfigure(ctx *Context, mode Mode) {
	s.Selectable.Deconfigure(ctx, mode)
}

// SelectableLeafNode is satisfied by leaves that carry a selection name.
type SelectableLeafNode interface {
	LeafNode
	Name() uint32
	Payload() Payload
}

// SelectableCompositeNode is satisfied by composites that carry a
// selection name.
type SelectableCompositeNode interface {
	CompositeNode
	Name() uint32
	Payload() Payload
}
