// Package breach is a small first-person "breach" shooting prototype built on
// [Ebitengine], with a software-projected 3D scene graph and GPU-selection
// style picking.
//
// The package centers on three cooperating pieces:
//
// A composite scene graph of [Renderable] nodes, each driven through a fixed
// five-step pipeline (configure, load transform, render, unload transform,
// deconfigure) by [FullRender]. Composites render their children in order;
// leaves emit primitives against a [Context].
//
// A hierarchical [Visitor] with a type-dispatching [SpecializedVisitor] on
// top: algorithms register callbacks per concrete node type (or per
// capability interface) without the node types knowing about them.
//
// A selection pipeline: rendering the scene in [ModeSelect] accumulates a
// flat hit buffer in the classic OpenGL selection layout, which
// [DecodeSelectionBuffer] turns into depth-sorted [Hit] records. The nearest
// hit's name path is then resolved back to a strongly typed payload with
// [Resolve], walking the same scene graph.
//
// # Quick start
//
//	level := breach.DefaultLevel()
//	game, err := breach.NewGame(level)
//	if err != nil {
//		log.Fatal(err)
//	}
//	ebiten.SetWindowSize(600, 600)
//	ebiten.SetWindowTitle("Breach")
//	if err := ebiten.RunGame(game); err != nil {
//		log.Fatal(err)
//	}
//
// Click to capture the mouse, then aim with the crosshair: clicking a target
// marks it hit, clicking a wall shoots a breach onto it. WASD moves, Q/E
// strafes vertically, the wheel rolls the view.
//
// [Ebitengine]: https://ebitengine.org
package breach
