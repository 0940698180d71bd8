package systems

import (
	"github.com/google/uuid"
	"github.com/mlange-42/ark-tools/resource"
	"github.com/mlange-42/ark/ecs"

	"pong/internal/controller/components"
	"pong/internal/logger"
	"pong/internal/match"
)

// MatchSystem advances the match by one frame and publishes the result.
// A Quit press requests termination of the app.
type MatchSystem struct {
	Logger logger.Logger

	game   ecs.Resource[components.Game]
	input  ecs.Resource[components.FrameInput]
	output ecs.Resource[components.FrameOutput]
	info   ecs.Resource[components.MatchInfo]
	term   ecs.Resource[resource.Termination]
}

func (s *MatchSystem) Initialize(w *ecs.World) {
	if s.Logger == nil {
		s.Logger = logger.NewNop()
	}
	s.game = ecs.NewResource[components.Game](w)
	s.input = ecs.NewResource[components.FrameInput](w)
	s.output = ecs.NewResource[components.FrameOutput](w)
	s.info = ecs.NewResource[components.MatchInfo](w)
	s.term = ecs.NewResource[resource.Termination](w)

	state := s.game.Get().State
	s.output.Get().Snapshot = state.Snapshot()
	s.Logger.Info("match ready",
		logger.F("session_id", s.info.Get().SessionID),
		logger.F("seed", state.Seed()),
	)
}

func (s *MatchSystem) Update(_ *ecs.World) {
	state := s.game.Get().State
	in := s.input.Get()
	info := s.info.Get()
	out := s.output.Get()

	res := match.Tick(state, in.DeltaMs, in.Events)
	info.Frames++
	out.Result = res
	out.Snapshot = state.Snapshot()

	if res.Quit {
		s.Logger.Info("quit requested", logger.F("phase", state.Phase), logger.F("match_id", info.MatchID))
		s.term.Get().Terminate = true
		return
	}

	if res.Scorer != match.NoPlayer {
		s.Logger.Info("point scored",
			logger.F("match_id", info.MatchID),
			logger.F("scorer", int(res.Scorer)),
			logger.F("p1", state.Score[0]),
			logger.F("p2", state.Score[1]),
		)
	}
	if !res.Transitioned() {
		return
	}

	if res.From == match.NotStarted && res.To == match.Playing {
		info.MatchID = uuid.NewString()
		info.Matches++
	}
	fields := []logger.Field{
		logger.F("match_id", info.MatchID),
		logger.F("from", res.From),
		logger.F("to", res.To),
		logger.F("frame", info.Frames),
	}
	if res.To == match.GameOver {
		fields = append(fields,
			logger.F("winner", int(state.Winner)),
			logger.F("p1", state.Score[0]),
			logger.F("p2", state.Score[1]),
		)
	}
	s.Logger.Info("phase changed", fields...)
}

func (s *MatchSystem) Finalize(_ *ecs.World) {
	info := s.info.Get()
	s.Logger.Info("session finished",
		logger.F("session_id", info.SessionID),
		logger.F("matches", info.Matches),
		logger.F("frames", info.Frames),
	)
}
