// Package controller wires the match into an ark world and drives it one
// frame at a time. The game loop owns the clock; the controller only runs
// the systems when asked.
package controller

import (
	"time"

	"github.com/google/uuid"
	"github.com/mlange-42/ark-tools/app"
	"github.com/mlange-42/ark-tools/resource"
	"github.com/mlange-42/ark/ecs"

	"pong/internal/controller/components"
	"pong/internal/controller/entities"
	"pong/internal/controller/systems"
	"pong/internal/logger"
	"pong/internal/match"
)

type Options struct {
	Seed      uint64
	SessionID string
	Logger    logger.Logger
	Bouncer   systems.Bouncer
	Recorder  systems.Recorder
}

// Controller manages the ECS world and its systems using ark-tools.
type Controller struct {
	app   *app.App
	world *ecs.World
	scene *entities.Scene

	input  ecs.Resource[components.FrameInput]
	output ecs.Resource[components.FrameOutput]
	info   ecs.Resource[components.MatchInfo]
	term   ecs.Resource[resource.Termination]

	log     logger.Logger
	metrics StepMetrics
	now     func() time.Time
	stopped bool
}

// New builds the world, registers resources and systems, and initializes
// them. Systems run in the order record, match, bounce, scene.
func New(opts Options) *Controller {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}
	sessionID := opts.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	arkApp := app.New(1024).Seed(opts.Seed)
	world := &arkApp.World

	state := match.New(opts.Seed)

	c := &Controller{
		app:    arkApp,
		world:  world,
		input:  ecs.NewResource[components.FrameInput](world),
		output: ecs.NewResource[components.FrameOutput](world),
		info:   ecs.NewResource[components.MatchInfo](world),
		term:   ecs.NewResource[resource.Termination](world),
		log:    log,
		now:    time.Now,
	}
	ecs.AddResource(world, &components.Game{State: state})
	c.input.Add(&components.FrameInput{})
	c.output.Add(&components.FrameOutput{})
	c.info.Add(&components.MatchInfo{SessionID: sessionID})
	if !c.term.Has() {
		c.term.Add(&resource.Termination{})
	}

	c.scene = entities.NewScene(world, state.Snapshot())

	arkApp.AddSystem(&systems.RecordSystem{Recorder: opts.Recorder})
	arkApp.AddSystem(&systems.MatchSystem{Logger: logger.Component(log, "match")})
	arkApp.AddSystem(&systems.BounceSystem{Bouncer: opts.Bouncer})
	arkApp.AddSystem(&systems.SceneSystem{Scene: c.scene})

	arkApp.Initialize()
	return c
}

// Step runs every system once for a frame of deltaMs milliseconds. After
// Quit has been seen, or after Stop, it does nothing.
func (c *Controller) Step(deltaMs float64, events []match.Event) match.Result {
	if c.Done() {
		return c.output.Get().Result
	}
	in := c.input.Get()
	in.DeltaMs = deltaMs
	in.Events = events

	start := c.now()
	c.app.Update()
	c.metrics.record(c.now().Sub(start), deltaMs, match.MaxDeltaMs)

	in.Events = nil
	return c.output.Get().Result
}

func (c *Controller) Snapshot() match.Snapshot {
	return c.output.Get().Snapshot
}

func (c *Controller) Info() components.MatchInfo {
	return *c.info.Get()
}

// Done reports whether the session has ended.
func (c *Controller) Done() bool {
	return c.stopped || c.term.Get().Terminate
}

// World returns the ECS world for the renderer and tests.
func (c *Controller) World() *ecs.World {
	return c.world
}

func (c *Controller) Scene() *entities.Scene {
	return c.scene
}

func (c *Controller) Metrics() StepMetrics {
	return c.metrics
}

// Stop finalizes the systems and logs step timing. It is safe to call more
// than once.
func (c *Controller) Stop() {
	if c.stopped {
		return
	}
	c.app.Finalize()
	c.stopped = true

	c.log.Info("controller stopped",
		logger.F("steps", c.metrics.Steps),
		logger.F("long_frames", c.metrics.LongFrames),
		logger.F("avg_step", c.metrics.AvgStepDuration()),
		logger.F("max_step", c.metrics.MaxStepDuration),
		logger.F("requested_ms", c.metrics.RequestedMs),
	)
}
