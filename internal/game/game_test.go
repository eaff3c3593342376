package game

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/display-test/internal/anim"
	"github.com/iburimskiy/display-test/internal/config"
	"github.com/iburimskiy/display-test/internal/panel"
)

// fakeClock returns the queued times in order, repeating the last one.
type fakeClock struct {
	times []float64
	i     int
}

func (c *fakeClock) now() float64 {
	t := c.times[c.i]
	if c.i < len(c.times)-1 {
		c.i++
	}
	return t
}

func newTestGame(t *testing.T, times ...float64) (*Game, *anim.State) {
	t.Helper()
	s := anim.Default()
	clk := &fakeClock{times: times}
	g, err := New(s, nil, clk.now)
	require.NoError(t, err)
	return g, s
}

func TestNewRejectsNilState(t *testing.T) {
	_, err := New(nil, nil, nil)
	assert.Error(t, err)
}

func TestLayoutFollowsWindow(t *testing.T) {
	g, _ := newTestGame(t, 0)

	w, h := g.Layout(1024, 768)
	assert.Equal(t, 1024, w)
	assert.Equal(t, 768, h)
	assert.Equal(t, anim.Rect{
		Min: anim.Point{X: config.PanelWidth, Y: 0},
		Max: anim.Point{X: 1024, Y: 768},
	}, g.canvas())

	w, h = g.Layout(0, 0)
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)
}

func TestStepScenario(t *testing.T) {
	g, s := newTestGame(t, 0.06)
	s.DisplayVertical = true
	g.Layout(config.PanelWidth+800, 600)

	g.step()

	assert.Equal(t, anim.Point{X: 1, Y: 1}, s.Position())
	require.Len(t, g.segments, 2)
	left := float64(config.PanelWidth)
	assert.Equal(t, anim.Segment{From: anim.Point{X: left, Y: 1}, To: anim.Point{X: left + 800, Y: 1}}, g.segments[0])
	assert.Equal(t, anim.Segment{From: anim.Point{X: left + 1, Y: 0}, To: anim.Point{X: left + 1, Y: 600}}, g.segments[1])
}

func TestStepWithoutLines(t *testing.T) {
	g, s := newTestGame(t, 0.1, 0.2)
	s.DisplayHorizontal = false

	g.step()
	g.step()

	assert.Empty(t, g.segments)
	assert.Equal(t, anim.Point{X: 2, Y: 2}, s.Position())
}

func TestStepRecordsFrameStats(t *testing.T) {
	frame := 1.0 / 128
	g, _ := newTestGame(t, 1, 1+frame, 1+2*frame, 1+3*frame)

	for i := 0; i < 4; i++ {
		g.step()
	}

	assert.Equal(t, 128.0, g.stats.fps())
	var stats string
	for _, w := range g.panel.Widgets() {
		if w.ID == panel.IDStats {
			stats = w.Label
		}
	}
	assert.Equal(t, "128 fps, 18 px/s", stats)
}

func TestToggleAntialiasing(t *testing.T) {
	g, _ := newTestGame(t, 0)

	g.toggleAntialiasing(true)
	assert.True(t, g.antialias)
	g.toggleAntialiasing(false)
	assert.False(t, g.antialias)
}

func TestLineColor(t *testing.T) {
	assert.Equal(t, color.RGBA{A: 255}, lineColor(panel.Light))
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, lineColor(panel.Dark))
}

func TestMonotonicClock(t *testing.T) {
	clk := MonotonicClock()
	a := clk()
	b := clk()

	assert.GreaterOrEqual(t, a, 0.0)
	assert.GreaterOrEqual(t, b, a)
}
