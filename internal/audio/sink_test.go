package audio

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"pong/internal/logger"
)

type fakePlayer struct {
	played chan struct{}
	err    error
	panics bool
}

func newFakePlayer() *fakePlayer {
	return &fakePlayer{played: make(chan struct{}, 16)}
}

func (f *fakePlayer) Play() error {
	if f.panics {
		panic("device lost")
	}
	f.played <- struct{}{}
	return f.err
}

func zapObserved(core zapcore.Core) logger.Logger {
	return logger.Wrap(zap.New(core))
}

func waitPlayed(t *testing.T, f *fakePlayer) {
	t.Helper()
	select {
	case <-f.played:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for playback")
	}
}

func waitStats(t *testing.T, s *Sink, ok func(Stats) bool) Stats {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if st := s.Stats(); ok(st) {
			return st
		}
		time.Sleep(time.Millisecond)
	}
	st := s.Stats()
	t.Fatalf("stats never settled: %+v", st)
	return st
}

func TestSink_PlaysOncePerBouncingTick(t *testing.T) {
	p := newFakePlayer()
	s, err := NewSink(p, Options{Workers: 2})
	if err != nil {
		t.Fatalf("NewSink: %v", err)
	}
	defer s.Close(time.Second)

	s.Bounce(0)
	s.Bounce(2)
	waitPlayed(t, p)

	st := waitStats(t, s, func(st Stats) bool { return st.Played == 1 })
	if st.Dropped != 0 || st.Failed != 0 {
		t.Errorf("unexpected stats: %+v", st)
	}
	select {
	case <-p.played:
		t.Error("two bounces in one tick should play once")
	default:
	}
}

func TestSink_RateLimited(t *testing.T) {
	p := newFakePlayer()
	s, err := NewSink(p, Options{Workers: 2, MinInterval: 30 * time.Millisecond})
	if err != nil {
		t.Fatalf("NewSink: %v", err)
	}
	defer s.Close(time.Second)

	now := time.Unix(1000, 0)
	s.now = func() time.Time { return now }

	s.Bounce(1)
	waitPlayed(t, p)

	now = now.Add(10 * time.Millisecond)
	s.Bounce(1)
	if st := s.Stats(); st.Dropped != 1 {
		t.Errorf("bounce inside the interval should be dropped: %+v", st)
	}

	now = now.Add(30 * time.Millisecond)
	s.Bounce(1)
	waitPlayed(t, p)

	waitStats(t, s, func(st Stats) bool { return st.Played == 2 && st.Dropped == 1 })
}

func TestSink_PlayerError(t *testing.T) {
	p := newFakePlayer()
	p.err = errors.New("device busy")
	s, err := NewSink(p, Options{Workers: 1})
	if err != nil {
		t.Fatalf("NewSink: %v", err)
	}
	defer s.Close(time.Second)

	s.Bounce(1)
	waitPlayed(t, p)
	waitStats(t, s, func(st Stats) bool { return st.Failed == 1 && st.Played == 0 })
}

func TestSink_PanicRecovered(t *testing.T) {
	core, recorded := observer.New(zapcore.ErrorLevel)

	p := &fakePlayer{panics: true}
	s, err := NewSink(p, Options{Workers: 1, Logger: zapObserved(core)})
	if err != nil {
		t.Fatalf("NewSink: %v", err)
	}
	defer s.Close(time.Second)

	s.Bounce(1)
	waitStats(t, s, func(st Stats) bool { return st.Failed == 1 })

	deadline := time.Now().Add(time.Second)
	for recorded.Len() == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if recorded.FilterMessage("sound playback panicked").Len() != 1 {
		t.Errorf("expected panic to be logged, got %v", recorded.All())
	}
}

func TestSink_AfterClose(t *testing.T) {
	p := newFakePlayer()
	s, err := NewSink(p, Options{Workers: 1})
	if err != nil {
		t.Fatalf("NewSink: %v", err)
	}
	if err := s.Close(time.Second); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s.Bounce(1)
	if st := s.Stats(); st.Dropped != 1 {
		t.Errorf("bounce after close should be dropped: %+v", st)
	}
}

func TestNewSink_NilPlayer(t *testing.T) {
	s, err := NewSink(nil, Options{})
	if err != nil {
		t.Fatalf("NewSink: %v", err)
	}
	defer s.Close(time.Second)

	s.Bounce(1)
	waitStats(t, s, func(st Stats) bool { return st.Played == 1 })
}

func TestLoad_FallsBackToSilent(t *testing.T) {
	core, recorded := observer.New(zapcore.WarnLevel)

	p := Load(func() (Player, error) {
		return nil, errors.New("open bounce.wav: no such file")
	}, zapObserved(core))

	if _, ok := p.(Silent); !ok {
		t.Fatalf("expected Silent, got %T", p)
	}
	if recorded.Len() != 1 {
		t.Errorf("expected one warning, got %d", recorded.Len())
	}

	want := newFakePlayer()
	if got := Load(func() (Player, error) { return want, nil }, logger.NewNop()); got != want {
		t.Errorf("expected loaded player to be returned, got %T", got)
	}
}
