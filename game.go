package breach

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Logical rendering resolution; the window scales it.
const (
	ScreenWidth  = 960
	ScreenHeight = 540
)

// EventKind discriminates game events.
type EventKind int

const (
	EventTargetHit EventKind = iota
	EventBreachShot
	EventBreachRejected
)

// GameEvent is one gameplay occurrence a store can record or fan out.
type GameEvent struct {
	Kind   EventKind
	Target *Target
	Breach int
	Wall   *Wall
}

// EventStore receives gameplay events. Stores must not retain the event's
// pointers past the call.
type EventStore interface {
	Publish(GameEvent)
}

// tween pairs an interpolator with the setter it drives.
type tween struct {
	tw    *gween.Tween
	apply func(float32)
}

// Game is the playable prototype: a free fly camera in a walled arena,
// left and right click shooting the two breaches, targets scored on hit.
// It implements ebiten.Game.
type Game struct {
	level    *Level
	camera   *Camera
	ctx      *Context
	scene    *Composite
	walls    []*Wall
	targets  []*Target
	breaches *Breaches

	// resolution runs against the group roots: a name mismatch prunes
	// and ends a traversal, so paths cannot be resolved across sibling
	// groups from the scene root.
	wallGroup   *SelectableComposite
	targetGroup *SelectableComposite

	crosshair *Crosshair
	fps       *FPSWidget
	events    EventStore

	tweens []tween
	score  int

	lastCursorX, lastCursorY int
	cursorInit               bool

	// ScreenshotDir is where F12 and Screenshot captures are written.
	ScreenshotDir   string
	screenshotQueue []string

	runner      *ScriptRunner
	injectQueue []injectedInput
}

// NewGame builds a game from level. The scene graph is assembled with
// procedural textures, so no assets are loaded from disk.
func NewGame(level *Level) (*Game, error) {
	if err := level.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		level:    level,
		camera:   NewCamera(),
		ctx:      NewContext(),
		walls:    level.BuildWalls(),
		targets:  level.BuildTargets(),
		breaches: NewBreaches(level.Breaches...),
	}
	g.camera.Position = Vec(0, 1.7, 8)
	g.camera.Look = Dir(0, 0, -1)

	wallTex := CheckerTexture(128, 16, Color{0.55, 0.55, 0.6, 1}, Color{0.4, 0.4, 0.45, 1})
	targetTex := RingTexture(128, Color{1, 0.1, 0.1, 1}, Color{1, 1, 1, 1}, Color{1, 0.1, 0.1, 1}, Color{1, 1, 1, 1})
	breachTex := DiscTexture(128, ColorWhite)

	g.wallGroup = NewWallGroup(g.walls, wallTex)
	g.targetGroup = NewTargetGroup(g.targets, targetTex)
	breachGroup := NewBreachGroup(g.breaches, breachTex, func() Vec4 { return g.camera.Up })

	g.scene = NewComposite(g.wallGroup, breachGroup, g.targetGroup)
	if err := ValidateNames(g.scene); err != nil {
		return nil, err
	}

	g.crosshair = NewCrosshair(g.breaches)
	g.fps = NewFPSWidget()
	return g, nil
}

// SetEventStore attaches a store that receives gameplay events.
func (g *Game) SetEventStore(store EventStore) { g.events = store }

// Score returns the number of targets hit so far.
func (g *Game) Score() int { return g.score }

// Scene returns the root of the scene graph.
func (g *Game) Scene() Renderable { return g.scene }

// Camera returns the player camera.
func (g *Game) Camera() *Camera { return g.camera }

// Breaches returns the breach set.
func (g *Game) Breaches() *Breaches { return g.breaches }

func (g *Game) publish(ev GameEvent) {
	if g.events != nil {
		g.events.Publish(ev)
	}
}

const moveSpeed = 0.08

func (g *Game) Update() error {
	dt := 1 / float32(ebiten.TPS())

	if g.runner != nil {
		g.runner.step(g)
	}
	if !g.processInjectedInput() {
		g.updateMovement()
		g.updateLook()

		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			g.shoot(0)
		}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
			g.shoot(1)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
			g.Screenshot("manual")
		}
	}

	// advance tweens, dropping the finished ones in place
	alive := g.tweens[:0]
	for _, t := range g.tweens {
		v, done := t.tw.Update(dt)
		t.apply(v)
		if !done {
			alive = append(alive, t)
		}
	}
	g.tweens = alive

	g.fps.Update(float64(dt), g.ctx.Stats())
	return nil
}

func (g *Game) updateMovement() {
	var forward, strafe, rise float32
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		forward++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		forward--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		strafe++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		strafe--
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		rise++
	}
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		rise--
	}
	if forward != 0 || strafe != 0 || rise != 0 {
		g.camera.Move(forward, strafe, rise, moveSpeed)
	}
}

const lookSensitivity = 0.003

func (g *Game) updateLook() {
	x, y := ebiten.CursorPosition()
	if !g.cursorInit {
		g.lastCursorX, g.lastCursorY = x, y
		g.cursorInit = true
		return
	}
	dx := float32(x - g.lastCursorX)
	dy := float32(y - g.lastCursorY)
	g.lastCursorX, g.lastCursorY = x, y
	if dx != 0 || dy != 0 {
		g.camera.Rotate(-dx*lookSensitivity, -dy*lookSensitivity)
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.camera.Tilt(float32(wy) * 0.05)
	}
}

// shoot fires breach i through the screen center: if the nearest hit is
// a target it is scored, if it is a wall it receives the breach.
func (g *Game) shoot(i int) {
	if i >= len(g.breaches.All()) {
		return
	}
	ray := g.camera.PickRay(ScreenWidth/2, ScreenHeight/2, ScreenWidth, ScreenHeight)
	hits, err := g.ctx.Pick(g.scene, ray,
		g.camera.ViewMatrix(), g.camera.ProjMatrix(float32(ScreenWidth)/ScreenHeight),
		g.camera.Position, g.camera.Near, g.camera.Far)
	if err != nil || len(hits) == 0 {
		return
	}

	// only the nearest hit counts; whatever it occludes stays unshot
	nearest := hits[0]
	if target, ok := Resolve[*Target](g.targetGroup, nearest.NamePath); ok {
		g.hitTarget(target)
		return
	}

	wall, ok := Resolve[*Wall](g.wallGroup, nearest.NamePath)
	if !ok {
		return
	}
	dist := g.camera.Near + nearest.ZMin*(g.camera.Far-g.camera.Near)
	point := ray.Origin.Add(ray.Dir.Scale(dist))
	a, b := wall.InWallCoordinates(point)

	if !g.breaches.Shoot(i, wall, a, b) {
		g.publish(GameEvent{Kind: EventBreachRejected, Breach: i, Wall: wall})
		return
	}
	breach := g.breaches.Get(i)
	g.tweens = append(g.tweens, tween{
		tw:    gween.New(0, 1, 0.3, ease.OutBack),
		apply: breach.SetOpenScale,
	})
	g.publish(GameEvent{Kind: EventBreachShot, Breach: i, Wall: wall})
}

func (g *Game) hitTarget(target *Target) {
	if target.Hit() {
		return
	}
	target.MarkHit()
	g.score++
	g.tweens = append(g.tweens, tween{
		tw:    gween.New(1, 0, 0.5, ease.OutQuad),
		apply: target.SetFade,
	})
	g.publish(GameEvent{Kind: EventTargetHit, Target: target})
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.ctx.BeginFrame(
		g.camera.ViewMatrix(),
		g.camera.ProjMatrix(float32(ScreenWidth)/ScreenHeight),
		g.camera.Position,
		ScreenWidth, ScreenHeight,
		g.camera.Near, g.camera.Far,
	)
	traverseStart := time.Now()
	FullRender(g.scene, g.ctx, ModeRender)
	if g.ctx.Debug {
		g.ctx.dbg.traverseTime = time.Since(traverseStart)
	}
	g.ctx.Flush(screen)
	g.ctx.debugLog()

	g.crosshair.Draw(screen)
	g.fps.Draw(screen)
	g.flushScreenshots(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// RunConfig configures the window Run opens. Zero-valued dimensions fall
// back to the logical resolution.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
}

// Run opens a window and runs the game until it is closed.
func Run(g *Game, cfg RunConfig) error {
	w, h := cfg.Width, cfg.Height
	if w <= 0 {
		w = ScreenWidth
	}
	if h <= 0 {
		h = ScreenHeight
	}
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	g.fps.Visible = cfg.ShowFPS
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("breach: game loop: %w", err)
	}
	return nil
}
