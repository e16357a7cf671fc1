package blockfall

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// ErrInvalidTiming is returned by New when a timing value cannot drive the
// simulation.
var ErrInvalidTiming = errors.New("blockfall: invalid timing")

// Timing holds the simulation intervals in seconds. Fall, FastFall and
// ChunkFall are divided by the session's speed multiplier.
type Timing struct {
	Fall            float64
	Control         float64
	FastFall        float64
	Blink           float64
	BlinkIterations int
	ChunkFall       float64
}

// DefaultTiming returns the stock intervals.
func DefaultTiming() Timing {
	return Timing{
		Fall:            0.33,
		Control:         0.1,
		FastFall:        0.03,
		Blink:           0.1,
		BlinkIterations: 5,
		ChunkFall:       0.03,
	}
}

// Validate checks that every interval is positive.
func (t Timing) Validate() error {
	intervals := []struct {
		name string
		v    float64
	}{
		{"fall", t.Fall},
		{"control", t.Control},
		{"fast fall", t.FastFall},
		{"blink", t.Blink},
		{"chunk fall", t.ChunkFall},
	}
	for _, iv := range intervals {
		if iv.v <= 0 {
			return fmt.Errorf("%w: %s interval %v", ErrInvalidTiming, iv.name, iv.v)
		}
	}
	if t.BlinkIterations <= 0 {
		return fmt.Errorf("%w: blink iterations %d", ErrInvalidTiming, t.BlinkIterations)
	}
	return nil
}

type options struct {
	timing    Timing
	seed      int64
	startTier int
	skipMenu  bool
	logger    *log.Logger
}

// Option configures a Game.
type Option func(*options)

// WithTiming overrides the default intervals.
func WithTiming(t Timing) Option {
	return func(o *options) { o.timing = t }
}

// WithSeed seeds the next-piece generator.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithStartTier sets the tier every session starts at.
func WithStartTier(tier int) Option {
	return func(o *options) { o.startTier = max(tier, 0) }
}

// WithSkipMenu starts straight into play instead of the main menu.
func WithSkipMenu() Option {
	return func(o *options) { o.skipMenu = true }
}

// WithLogger routes engine debug events to l.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

func defaultOptions() options {
	return options{
		timing: DefaultTiming(),
		seed:   1,
		logger: log.New(io.Discard),
	}
}
