package blockfall

import (
	"math"
	"math/rand"

	"github.com/charmbracelet/log"
)

// Session is the mutable game data threaded through every state call.
type Session struct {
	Grid   Grid
	Active Piece
	Next   Kind

	Score     uint64
	Tier      int
	StartTier int

	// Lines is the cascade line counter consumed by the zero-line bonus.
	Lines int

	TotalLines int
	Pieces     int
	GameOver   bool

	timing Timing
	rng    *rand.Rand
	logger *log.Logger
}

func newSession(o options) *Session {
	s := &Session{
		StartTier: o.startTier,
		timing:    o.timing,
		rng:       rand.New(rand.NewSource(o.seed)),
		logger:    o.logger,
	}
	s.Reset()
	return s
}

// Reset starts a fresh game on the same generator.
func (s *Session) Reset() {
	s.Grid.Reset()
	s.Score = 0
	s.Tier = s.StartTier
	s.Lines = 0
	s.TotalLines = 0
	s.Pieces = 0
	s.GameOver = false
	s.Active = NewPiece(s.randomKind())
	s.Next = s.randomKind()
}

func (s *Session) randomKind() Kind {
	return Kind(s.rng.Intn(KindCount))
}

// SpawnNext promotes the preview piece and draws a new one.
func (s *Session) SpawnNext() {
	s.Active = NewPiece(s.Next)
	s.Next = s.randomKind()
}

// Timing returns the intervals the session runs with.
func (s *Session) Timing() Timing {
	return s.timing
}

// SpeedMultiplier is 1.2 raised to the tier.
func (s *Session) SpeedMultiplier() float64 {
	return math.Pow(1.2, float64(s.Tier))
}

// ScoreMultiplier returns the tier's point multiplier.
func (s *Session) ScoreMultiplier() uint64 {
	return TierMultiplier(s.Tier)
}

// AddScore adds points and raises the tier if the new score warrants it.
func (s *Session) AddScore(points uint64) {
	if points == 0 {
		return
	}
	s.Score += points
	if t := TierForScore(s.Score); t > s.Tier {
		s.logger.Debug("tier up", "from", s.Tier, "to", t, "score", s.Score)
		s.Tier = t
	}
}
