package breach

// injectedInput represents a single synthetic input action. Injected
// actions go through the same shoot and camera paths as real input, one
// action per frame.
type injectedInput struct {
	kind injectKind

	// shoot
	breach int

	// move and look
	forward, strafe, rise float32
	yaw, pitch            float32
}

type injectKind int

const (
	injectShoot injectKind = iota
	injectMove
	injectLook
)

// InjectShoot queues a shot of breach i through the screen center. The
// action is consumed on the next frame's Update call.
func (g *Game) InjectShoot(i int) {
	g.injectQueue = append(g.injectQueue, injectedInput{kind: injectShoot, breach: i})
}

// InjectMove queues one frame of camera movement, components as in
// Camera.Move.
func (g *Game) InjectMove(forward, strafe, rise float32) {
	g.injectQueue = append(g.injectQueue, injectedInput{
		kind: injectMove, forward: forward, strafe: strafe, rise: rise,
	})
}

// InjectLook queues one frame of camera rotation, in radians.
func (g *Game) InjectLook(yaw, pitch float32) {
	g.injectQueue = append(g.injectQueue, injectedInput{
		kind: injectLook, yaw: yaw, pitch: pitch,
	})
}

// processInjectedInput pops one action from the inject queue and applies
// it. Returns true if an action was consumed, in which case real input is
// skipped for the frame.
func (g *Game) processInjectedInput() bool {
	if len(g.injectQueue) == 0 {
		return false
	}
	in := g.injectQueue[0]
	copy(g.injectQueue, g.injectQueue[1:])
	g.injectQueue = g.injectQueue[:len(g.injectQueue)-1]

	switch in.kind {
	case injectShoot:
		g.shoot(in.breach)
	case injectMove:
		g.camera.Move(in.forward, in.strafe, in.rise, moveSpeed)
	case injectLook:
		g.camera.Rotate(in.yaw, in.pitch)
	}
	return true
}
