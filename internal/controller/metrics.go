package controller

import "time"

// StepMetrics holds timing for controller steps: how long running the
// systems took in wall time against how much match time was requested.
type StepMetrics struct {
	Steps           int64
	LongFrames      int64 // frames whose delta exceeded the match's cap
	TotalDuration   time.Duration
	MaxStepDuration time.Duration
	MinStepDuration time.Duration
	RequestedMs     float64
}

func (m *StepMetrics) record(duration time.Duration, deltaMs, capMs float64) {
	m.Steps++
	m.TotalDuration += duration
	m.RequestedMs += deltaMs
	if deltaMs > capMs {
		m.LongFrames++
	}

	if duration > m.MaxStepDuration {
		m.MaxStepDuration = duration
	}
	if m.MinStepDuration == 0 || duration < m.MinStepDuration {
		m.MinStepDuration = duration
	}
}

// AvgStepDuration is zero before the first step.
func (m StepMetrics) AvgStepDuration() time.Duration {
	if m.Steps == 0 {
		return 0
	}
	return m.TotalDuration / time.Duration(m.Steps)
}
