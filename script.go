package breach

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a run script.
type scriptStep struct {
	Action  string  `json:"action"`
	Label   string  `json:"label,omitempty"`
	Breach  int     `json:"breach,omitempty"`
	Forward float32 `json:"forward,omitempty"`
	Strafe  float32 `json:"strafe,omitempty"`
	Rise    float32 `json:"rise,omitempty"`
	Yaw     float32 `json:"yaw,omitempty"`
	Pitch   float32 `json:"pitch,omitempty"`
	Frames  int     `json:"frames,omitempty"`
}

// runScript is the top-level JSON structure for a run script.
type runScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences injected input and screenshots across frames for
// automated play sessions. Attach to a Game via SetScriptRunner.
//
// Supported actions: "shoot" (breach index), "move" (forward, strafe,
// rise, repeated over frames), "look" (yaw, pitch in radians, repeated
// over frames), "wait" (frames) and "screenshot" (label).
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON run script and returns a ScriptRunner ready to
// be attached to a Game via SetScriptRunner.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script runScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse run script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse run script: no steps")
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// SetScriptRunner attaches a runner to the game. The runner's step method
// is called from Game.Update before real input each frame.
func (g *Game) SetScriptRunner(runner *ScriptRunner) {
	g.runner = runner
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from Game.Update.
func (r *ScriptRunner) step(g *Game) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(g.injectQueue) > 0 {
		return
	}
	// Count down wait frames.
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		g.Screenshot(st.Label)
	case "shoot":
		g.InjectShoot(st.Breach)
	case "move":
		frames := st.Frames
		if frames < 1 {
			frames = 1
		}
		for i := 0; i < frames; i++ {
			g.InjectMove(st.Forward, st.Strafe, st.Rise)
		}
	case "look":
		frames := st.Frames
		if frames < 1 {
			frames = 1
		}
		for i := 0; i < frames; i++ {
			g.InjectLook(st.Yaw/float32(frames), st.Pitch/float32(frames))
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	// Check if we've reached the end after executing.
	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(g.injectQueue) == 0 {
		r.done = true
	}
}
