// Package anim holds the moving-line state of the display test and the
// per-frame step that advances it and produces the segments to draw.
package anim

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/iburimskiy/display-test/internal/config"
)

var (
	ErrNoSpeeds     = errors.New("speed menu is empty")
	ErrInvalidSpeed = errors.New("speed must be positive")
	ErrUnknownSpeed = errors.New("speed is not in the menu")
)

// State is owned by the frame loop goroutine. It is not safe for concurrent use.
type State struct {
	position   Point
	lastUpdate float64

	AnimationEnabled    bool
	AntialiasingEnabled bool
	DisplayHorizontal   bool
	DisplayVertical     bool

	speeds []int
	speed  int
}

// New builds a state over the given speed menu, selecting its first entry.
func New(speeds []int) (*State, error) {
	if len(speeds) == 0 {
		return nil, ErrNoSpeeds
	}
	for _, s := range speeds {
		if s <= 0 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidSpeed, s)
		}
	}
	return &State{
		AnimationEnabled:  true,
		DisplayHorizontal: true,
		speeds:            slices.Clone(speeds),
		speed:             speeds[0],
	}, nil
}

// Default returns a state over the standard speed menu.
func Default() *State {
	s, err := New(config.SpeedOptions)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *State) Position() Point { return s.position }

func (s *State) LastUpdateTime() float64 { return s.lastUpdate }

func (s *State) Speed() int { return s.speed }

// Speeds returns a copy of the speed menu.
func (s *State) Speeds() []int { return slices.Clone(s.speeds) }

// SpeedIndex is the position of the active speed in the menu.
func (s *State) SpeedIndex() int { return slices.Index(s.speeds, s.speed) }

// SetSpeed selects v, which must be one of the menu entries.
func (s *State) SetSpeed(v int) error {
	if !slices.Contains(s.speeds, v) {
		return fmt.Errorf("%w: %d px/s", ErrUnknownSpeed, v)
	}
	s.speed = v
	return nil
}

// StepSpeed moves the selection delta entries along the menu, stopping at
// either end. It reports whether the selection changed.
func (s *State) StepSpeed(delta int) bool {
	i := s.SpeedIndex() + delta
	i = max(0, min(i, len(s.speeds)-1))
	if s.speeds[i] == s.speed {
		return false
	}
	s.speed = s.speeds[i]
	return true
}

// Advance runs one frame at time now (seconds, monotonic) over a canvas
// occupying screen in screen coordinates. The line moves by exactly one
// logical pixel on both axes once more than 1/speed seconds have passed since
// the last move. The returned segments are in screen coordinates.
func (s *State) Advance(now float64, screen Rect) []Segment {
	w, h := screen.Width(), screen.Height()
	if w <= 0 || h <= 0 {
		return nil
	}

	// A shrunk canvas can leave the committed position outside it.
	s.position = Point{X: wrap(s.position.X, w), Y: wrap(s.position.Y, h)}

	candidate := s.position
	if now-s.lastUpdate > 1/float64(s.speed) {
		candidate = Point{X: wrap(candidate.X+1, w), Y: wrap(candidate.Y+1, h)}
		s.lastUpdate = now
	}
	if s.AnimationEnabled {
		s.position = candidate
	}

	toScreen := RectTransform{From: RectFromSize(w, h), To: screen}
	var segments []Segment
	if s.DisplayHorizontal {
		segments = append(segments, toScreen.ApplySegment(Segment{
			From: Point{X: 0, Y: s.position.Y},
			To:   Point{X: w, Y: s.position.Y},
		}))
	}
	if s.DisplayVertical {
		segments = append(segments, toScreen.ApplySegment(Segment{
			From: Point{X: s.position.X, Y: 0},
			To:   Point{X: s.position.X, Y: h},
		}))
	}
	return segments
}

func wrap(v, size float64) float64 {
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	// Mod of a value just under size can round up to size.
	if v >= size {
		v = 0
	}
	return v
}
