package breach

import "testing"

func TestLoadScriptErrors(t *testing.T) {
	if _, err := LoadScript([]byte("not json")); err == nil {
		t.Error("malformed script accepted")
	}
	if _, err := LoadScript([]byte(`{"steps": []}`)); err == nil {
		t.Error("empty script accepted")
	}
}

func TestScriptRunnerShoots(t *testing.T) {
	g, err := NewGame(gameTestLevel())
	if err != nil {
		t.Fatal(err)
	}
	runner, err := LoadScript([]byte(`{
		"steps": [
			{"action": "shoot", "breach": 0},
			{"action": "wait", "frames": 2}
		]
	}`))
	if err != nil {
		t.Fatal(err)
	}
	g.SetScriptRunner(runner)

	for i := 0; i < 10 && !runner.Done(); i++ {
		if err := g.Update(); err != nil {
			t.Fatal(err)
		}
	}
	if !runner.Done() {
		t.Fatal("runner did not finish")
	}
	if g.Score() != 1 {
		t.Errorf("score = %d, want 1 after scripted shot", g.Score())
	}
}

func TestScriptRunnerMoves(t *testing.T) {
	g, err := NewGame(gameTestLevel())
	if err != nil {
		t.Fatal(err)
	}
	start := g.Camera().Position
	runner, err := LoadScript([]byte(`{
		"steps": [{"action": "move", "forward": 1, "frames": 5}]
	}`))
	if err != nil {
		t.Fatal(err)
	}
	g.SetScriptRunner(runner)

	for i := 0; i < 20 && !runner.Done(); i++ {
		if err := g.Update(); err != nil {
			t.Fatal(err)
		}
	}
	moved := g.Camera().Position.Sub(start).Norm()
	assertNear(t, "distance", moved, 5*moveSpeed)
}

func TestScriptRunnerLook(t *testing.T) {
	g, err := NewGame(gameTestLevel())
	if err != nil {
		t.Fatal(err)
	}
	runner, err := LoadScript([]byte(`{
		"steps": [{"action": "look", "yaw": 1.5707963, "frames": 4}]
	}`))
	if err != nil {
		t.Fatal(err)
	}
	g.SetScriptRunner(runner)

	for i := 0; i < 20 && !runner.Done(); i++ {
		if err := g.Update(); err != nil {
			t.Fatal(err)
		}
	}
	// a quarter turn left in total, within accumulated rounding
	if g.Camera().Look[0] > -0.999 {
		t.Errorf("look = %v, want close to (-1, 0, 0)", g.Camera().Look)
	}
}
