package controller

import (
	"testing"
	"time"

	"pong/internal/match"
)

func TestStepMetrics_Record(t *testing.T) {
	var m StepMetrics
	if m.AvgStepDuration() != 0 {
		t.Error("average before any step should be zero")
	}

	m.record(2*time.Millisecond, 16, match.MaxDeltaMs)
	m.record(4*time.Millisecond, 40, match.MaxDeltaMs)
	m.record(time.Millisecond, 10, match.MaxDeltaMs)

	if m.Steps != 3 || m.LongFrames != 1 {
		t.Errorf("steps=%d long=%d", m.Steps, m.LongFrames)
	}
	if m.MinStepDuration != time.Millisecond || m.MaxStepDuration != 4*time.Millisecond {
		t.Errorf("min=%v max=%v", m.MinStepDuration, m.MaxStepDuration)
	}
	if m.AvgStepDuration() != 7*time.Millisecond/3 {
		t.Errorf("avg=%v", m.AvgStepDuration())
	}
	if m.RequestedMs != 66 {
		t.Errorf("requested=%v", m.RequestedMs)
	}
}

func TestController_CountsSteps(t *testing.T) {
	c := New(Options{Seed: 8})

	ticks := []time.Time{time.Unix(0, 0), time.Unix(0, int64(3*time.Millisecond))}
	i := 0
	c.now = func() time.Time {
		t := ticks[i%2]
		i++
		return t
	}

	c.Step(frame, nil)
	c.Step(50, nil)
	c.Stop()
	c.Step(frame, nil)

	m := c.Metrics()
	if m.Steps != 2 {
		t.Errorf("steps = %d, want 2 (no steps after stop)", m.Steps)
	}
	if m.LongFrames != 1 {
		t.Errorf("long frames = %d", m.LongFrames)
	}
	if m.AvgStepDuration() != 3*time.Millisecond {
		t.Errorf("avg = %v", m.AvgStepDuration())
	}
}
