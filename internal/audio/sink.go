// Package audio plays the bounce sound off the game loop. Playback is
// fire-and-forget on a small non-blocking pool; bursts closer together than
// the configured interval are dropped rather than queued.
package audio

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"golang.org/x/time/rate"

	"pong/internal/logger"
)

// Player plays one instance of a sound.
type Player interface {
	Play() error
}

// Silent is the Player used when no sound could be loaded.
type Silent struct{}

func (Silent) Play() error { return nil }

type Options struct {
	Workers     int
	MinInterval time.Duration
	Logger      logger.Logger
}

type Stats struct {
	Played  int64
	Dropped int64
	Failed  int64
}

// Sink receives bounce counts from the match and schedules playback.
type Sink struct {
	player  Player
	pool    *ants.Pool
	limiter *rate.Limiter
	log     logger.Logger
	now     func() time.Time

	played  atomic.Int64
	dropped atomic.Int64
	failed  atomic.Int64
}

func NewSink(p Player, opts Options) (*Sink, error) {
	if p == nil {
		p = Silent{}
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	s := &Sink{
		player:  p,
		limiter: rate.NewLimiter(rate.Every(opts.MinInterval), 1),
		log:     log,
		now:     time.Now,
	}

	pool, err := ants.NewPool(
		workers,
		ants.WithNonblocking(true),
		ants.WithPreAlloc(true),
		ants.WithPanicHandler(func(v interface{}) {
			s.failed.Add(1)
			s.log.Error("sound playback panicked", logger.F("panic", fmt.Sprint(v)))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio pool: %w", err)
	}
	s.pool = pool
	return s, nil
}

// Bounce plays the bounce sound once for a tick that produced n collisions.
// Several collisions in one tick sound as one.
func (s *Sink) Bounce(n int) {
	if n <= 0 {
		return
	}
	if !s.limiter.AllowN(s.now(), 1) {
		s.dropped.Add(1)
		return
	}

	err := s.pool.Submit(func() {
		if err := s.player.Play(); err != nil {
			s.failed.Add(1)
			s.log.Debug("sound playback failed", logger.Err(err))
			return
		}
		s.played.Add(1)
	})
	if err != nil {
		// pool saturated or released
		s.dropped.Add(1)
	}
}

func (s *Sink) Stats() Stats {
	return Stats{
		Played:  s.played.Load(),
		Dropped: s.dropped.Load(),
		Failed:  s.failed.Load(),
	}
}

// Close waits up to timeout for in-flight playback and releases the pool.
func (s *Sink) Close(timeout time.Duration) error {
	if err := s.pool.ReleaseTimeout(timeout); err != nil {
		return fmt.Errorf("release audio pool: %w", err)
	}
	return nil
}

// Load returns the player produced by open, or Silent when it fails. A missing
// or broken sound file never stops the game.
func Load(open func() (Player, error), log logger.Logger) Player {
	p, err := open()
	if err != nil {
		log.Warn("bounce sound unavailable, playing silently", logger.Err(err))
		return Silent{}
	}
	return p
}
