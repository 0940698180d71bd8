package systems

import (
	"testing"

	"github.com/mlange-42/ark-tools/app"
	"github.com/mlange-42/ark-tools/resource"
	"github.com/mlange-42/ark/ecs"

	"pong/internal/controller/components"
	"pong/internal/controller/entities"
	"pong/internal/match"
)

type frameLog struct {
	deltas []float64
	events [][]match.Event
}

func (f *frameLog) Record(deltaMs float64, events []match.Event) {
	f.deltas = append(f.deltas, deltaMs)
	f.events = append(f.events, events)
}

type bounceLog []int

func (b *bounceLog) Bounce(n int) { *b = append(*b, n) }

type fixture struct {
	tool  *app.App
	state *match.State
	input ecs.Resource[components.FrameInput]
	out   ecs.Resource[components.FrameOutput]
	term  ecs.Resource[resource.Termination]
	scene *entities.Scene
}

func newFixture(t *testing.T, rec Recorder, b Bouncer) *fixture {
	t.Helper()
	tool := app.New(1024).Seed(123)
	world := &tool.World

	f := &fixture{
		tool:  tool,
		state: match.New(123),
		input: ecs.NewResource[components.FrameInput](world),
		out:   ecs.NewResource[components.FrameOutput](world),
		term:  ecs.NewResource[resource.Termination](world),
	}
	ecs.AddResource(world, &components.Game{State: f.state})
	ecs.AddResource(world, &components.MatchInfo{SessionID: "test"})
	f.input.Add(&components.FrameInput{})
	f.out.Add(&components.FrameOutput{})
	if !f.term.Has() {
		f.term.Add(&resource.Termination{})
	}
	f.scene = entities.NewScene(world, f.state.Snapshot())

	tool.AddSystem(&RecordSystem{Recorder: rec})
	tool.AddSystem(&MatchSystem{})
	tool.AddSystem(&BounceSystem{Bouncer: b})
	tool.AddSystem(&SceneSystem{Scene: f.scene})
	tool.Initialize()
	t.Cleanup(tool.Finalize)
	return f
}

func (f *fixture) step(delta float64, events ...match.Event) {
	in := f.input.Get()
	in.DeltaMs = delta
	in.Events = events
	f.tool.Update()
}

func TestMatchSystem_PublishesResult(t *testing.T) {
	f := newFixture(t, nil, nil)

	if got := f.out.Get().Snapshot.Phase; got != match.NotStarted {
		t.Fatalf("initial published phase = %v", got)
	}

	f.step(16, match.Down(match.Confirm))
	out := f.out.Get()
	if !out.Result.Transitioned() || out.Result.To != match.Playing {
		t.Errorf("result = %+v", out.Result)
	}
	if out.Snapshot != f.state.Snapshot() {
		t.Error("published snapshot differs from state")
	}
}

func TestMatchSystem_QuitSetsTermination(t *testing.T) {
	f := newFixture(t, nil, nil)

	f.step(16)
	if f.term.Get().Terminate {
		t.Fatal("terminated without quit")
	}
	f.step(16, match.Down(match.Quit))
	if !f.term.Get().Terminate {
		t.Error("quit should request termination")
	}
	if !f.out.Get().Result.Quit {
		t.Error("quit should be published")
	}
}

func TestRecordSystem_RecordsEveryFrame(t *testing.T) {
	rec := &frameLog{}
	f := newFixture(t, rec, nil)

	f.step(16)
	f.step(8, match.Down(match.Confirm))
	f.step(12, match.Down(match.Quit))

	if len(rec.deltas) != 3 {
		t.Fatalf("recorded %d frames, want 3", len(rec.deltas))
	}
	if rec.deltas[1] != 8 || len(rec.events[1]) != 1 || rec.events[1][0] != match.Down(match.Confirm) {
		t.Errorf("frame 1 = %v %v", rec.deltas[1], rec.events[1])
	}
	if len(rec.events[2]) != 1 || rec.events[2][0].Key != match.Quit {
		t.Errorf("quit frame not recorded: %v", rec.events[2])
	}
}

func TestBounceSystem_OnlyOnCollision(t *testing.T) {
	var bounces bounceLog
	f := newFixture(t, nil, &bounces)

	f.step(16, match.Down(match.Confirm))
	// put the ball just under the top wall, moving up
	f.state.Ball.X, f.state.Ball.Y = 400, 2
	f.state.Ball.VX, f.state.Ball.VY = 0.3, -0.3
	f.step(16)
	f.step(16)

	if len(bounces) != 1 || bounces[0] != 1 {
		t.Errorf("bounces = %v, want [1]", bounces)
	}
}

func TestSceneSystem_SyncsPositions(t *testing.T) {
	f := newFixture(t, nil, nil)

	f.step(16, match.Down(match.Confirm))
	f.step(16, match.Down(match.P1Down))
	f.step(16)

	rect, sprite := f.scene.Bodies.Get(f.scene.Paddles[0])
	if rect.Y != f.state.Paddles[0].Y {
		t.Errorf("paddle entity y = %v, state y = %v", rect.Y, f.state.Paddles[0].Y)
	}
	if sprite.Hidden {
		t.Error("paddle should be visible while playing")
	}
	ball, _ := f.scene.Bodies.Get(f.scene.Ball)
	if ball.X != f.state.Ball.X || ball.Y != f.state.Ball.Y {
		t.Errorf("ball entity %+v, state %+v", *ball, f.state.Ball.Rect)
	}
}
