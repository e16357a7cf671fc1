package blockfall

import (
	"github.com/vovakirdan/blockfall/internal/core"
)

// play owns the inner gameplay machine. When the inner stack empties the
// game is over and play hands off to the score screen.
type play struct {
	base
	logic        *machine
	pausePending bool
}

func newPlay() *play {
	return &play{}
}

func (p *play) Enter(s *Session) {
	s.Reset()
	p.logic = newMachine(newFalling())
	p.logic.Start(s)
	s.logger.Debug("game started", "tier", s.Tier, "next", s.Next)
}

func (p *play) HandleInput(s *Session, ev core.InputEvent) {
	if ev.IsPress(core.KeyPause) {
		p.pausePending = true
		return
	}
	p.logic.HandleInput(s, ev)
}

func (p *play) Update(s *Session, dt float64) directive {
	if p.pausePending {
		p.pausePending = false
		return push(newPause())
	}
	if p.logic.Update(s, dt) {
		return hold()
	}
	s.GameOver = true
	s.logger.Debug("game over", "score", s.Score, "tier", s.Tier, "lines", s.TotalLines)
	return transition(newScoreScreen(s.Score, s.Tier, s.TotalLines))
}

// Resume forwards to the inner top so held keys lost during the pause do
// not keep the piece moving.
func (p *play) Resume(s *Session) {
	if top := p.logic.Top(); top != nil {
		top.Resume(s)
	}
}

func (p *play) BackgroundRender(s *Session, f *Frame) {
	f.drawSession(s)
	p.logic.Render(s, f)
}

func (p *play) Render(_ *Session, f *Frame) {
	f.Screen = ScreenPlay
}

type pause struct {
	base
	done bool
}

func newPause() *pause {
	return &pause{}
}

func (p *pause) HandleInput(_ *Session, ev core.InputEvent) {
	if ev.IsPress(core.KeyPause) || ev.IsPress(core.KeyCancel) {
		p.done = true
	}
}

func (p *pause) Update(_ *Session, _ float64) directive {
	if p.done {
		return pop()
	}
	return hold()
}

func (p *pause) Render(_ *Session, f *Frame) {
	f.Screen = ScreenPause
}

type scoreScreen struct {
	base
	score uint64
	tier  int
	lines int
	done  bool
}

func newScoreScreen(score uint64, tier, lines int) *scoreScreen {
	return &scoreScreen{score: score, tier: tier, lines: lines}
}

func (sc *scoreScreen) HandleInput(_ *Session, ev core.InputEvent) {
	if ev.IsPress(core.KeyConfirm) || ev.IsPress(core.KeyCancel) {
		sc.done = true
	}
}

func (sc *scoreScreen) Update(_ *Session, _ float64) directive {
	if sc.done {
		return transition(newMainMenu())
	}
	return hold()
}

func (sc *scoreScreen) Render(_ *Session, f *Frame) {
	f.Screen = ScreenScore
	f.Score = sc.score
	f.Tier = sc.tier
	f.Lines = sc.lines
	f.GameOver = true
}
