package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	s := Default()

	assert.Equal(t, Point{}, s.Position())
	assert.Zero(t, s.LastUpdateTime())
	assert.True(t, s.AnimationEnabled)
	assert.False(t, s.AntialiasingEnabled)
	assert.True(t, s.DisplayHorizontal)
	assert.False(t, s.DisplayVertical)
	assert.Equal(t, 20, s.Speed())
	assert.Equal(t, []int{20, 30, 40, 50, 60, 90, 120, 150}, s.Speeds())
}

func TestNewRejectsBadMenus(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrNoSpeeds)

	_, err = New([]int{20, 0})
	assert.ErrorIs(t, err, ErrInvalidSpeed)
}

func TestSpeedsIsACopy(t *testing.T) {
	s := Default()
	menu := s.Speeds()
	menu[0] = 999

	assert.Equal(t, 20, s.Speeds()[0])
	assert.Error(t, s.SetSpeed(999))
}

func TestSetSpeed(t *testing.T) {
	s := Default()
	for _, v := range s.Speeds() {
		require.NoError(t, s.SetSpeed(v))
		assert.Equal(t, v, s.Speed())
	}

	err := s.SetSpeed(45)
	assert.ErrorIs(t, err, ErrUnknownSpeed)
	assert.Equal(t, 150, s.Speed())
}

func TestStepSpeedStopsAtEnds(t *testing.T) {
	s := Default()

	assert.False(t, s.StepSpeed(-1))
	assert.Equal(t, 20, s.Speed())

	assert.True(t, s.StepSpeed(1))
	assert.Equal(t, 30, s.Speed())

	assert.True(t, s.StepSpeed(100))
	assert.Equal(t, 150, s.Speed())
	assert.False(t, s.StepSpeed(1))
}

func TestAdvanceScenario(t *testing.T) {
	s := Default()
	s.DisplayVertical = true

	segments := s.Advance(0.06, RectFromSize(800, 600))

	assert.Equal(t, Point{X: 1, Y: 1}, s.Position())
	assert.Equal(t, 0.06, s.LastUpdateTime())
	require.Len(t, segments, 2)
	assert.Equal(t, Segment{From: Point{X: 0, Y: 1}, To: Point{X: 800, Y: 1}}, segments[0])
	assert.Equal(t, Segment{From: Point{X: 1, Y: 0}, To: Point{X: 1, Y: 600}}, segments[1])
}

func TestAdvanceMapsToCanvasRect(t *testing.T) {
	s := Default()
	s.DisplayVertical = true
	screen := Rect{Min: Point{X: 180, Y: 0}, Max: Point{X: 980, Y: 600}}

	segments := s.Advance(0.06, screen)

	require.Len(t, segments, 2)
	assert.Equal(t, Segment{From: Point{X: 180, Y: 1}, To: Point{X: 980, Y: 1}}, segments[0])
	assert.Equal(t, Segment{From: Point{X: 181, Y: 0}, To: Point{X: 181, Y: 600}}, segments[1])
}

func TestAdvanceOnePixelPerInterval(t *testing.T) {
	s := Default()
	require.NoError(t, s.SetSpeed(40))
	interval := 1.0/40 + 0.001

	for i := 1; i <= 30; i++ {
		s.Advance(float64(i)*interval, RectFromSize(800, 600))
		assert.Equal(t, Point{X: float64(i), Y: float64(i)}, s.Position(), "call %d", i)
	}
}

func TestAdvanceHoldsBelowInterval(t *testing.T) {
	s := Default()
	screen := RectFromSize(800, 600)

	for _, now := range []float64{0.01, 0.02, 0.03, 0.04, 0.049} {
		s.Advance(now, screen)
		assert.Equal(t, Point{}, s.Position())
		assert.Zero(t, s.LastUpdateTime())
	}

	s.Advance(0.051, screen)
	assert.Equal(t, Point{X: 1, Y: 1}, s.Position())
}

func TestAdvanceNoCatchUp(t *testing.T) {
	s := Default()

	s.Advance(10, RectFromSize(800, 600))

	assert.Equal(t, Point{X: 1, Y: 1}, s.Position())
}

func TestAdvanceWrapsWithinCanvas(t *testing.T) {
	sizes := []struct{ w, h float64 }{{1, 1}, {3, 7}, {800, 600}, {13.5, 2.25}}
	for _, sz := range sizes {
		s := Default()
		require.NoError(t, s.SetSpeed(150))
		screen := RectFromSize(sz.w, sz.h)
		for i := 1; i <= 500; i++ {
			s.Advance(float64(i), screen)
			p := s.Position()
			assert.True(t, p.X >= 0 && p.X < sz.w, "x=%v w=%v", p.X, sz.w)
			assert.True(t, p.Y >= 0 && p.Y < sz.h, "y=%v h=%v", p.Y, sz.h)
		}
	}
}

func TestAdvanceWrapExact(t *testing.T) {
	s := Default()
	screen := RectFromSize(3, 2)

	var got []Point
	for i := 1; i <= 4; i++ {
		s.Advance(float64(i), screen)
		got = append(got, s.Position())
	}

	assert.Equal(t, []Point{{1, 1}, {2, 0}, {0, 1}, {1, 0}}, got)
}

func TestAdvanceRewrapsAfterShrink(t *testing.T) {
	s := Default()
	for i := 1; i <= 50; i++ {
		s.Advance(float64(i), RectFromSize(800, 600))
	}
	require.Equal(t, Point{X: 50, Y: 50}, s.Position())

	s.Advance(50.001, RectFromSize(40, 30))

	assert.Equal(t, Point{X: 10, Y: 20}, s.Position())
}

func TestAdvanceFrozenWhenAnimationDisabled(t *testing.T) {
	s := Default()
	s.Advance(1, RectFromSize(800, 600))
	s.AnimationEnabled = false
	frozen := s.Position()

	for i := 2; i <= 100; i++ {
		s.Advance(float64(i)*0.37, RectFromSize(800, 600))
		assert.Equal(t, frozen, s.Position())
	}
	// Time bookkeeping keeps running while frozen.
	assert.InDelta(t, 37.0, s.LastUpdateTime(), 1e-9)

	s.AnimationEnabled = true
	s.Advance(100, RectFromSize(800, 600))
	assert.Equal(t, Point{X: frozen.X + 1, Y: frozen.Y + 1}, s.Position())
}

func TestAdvanceSegmentCount(t *testing.T) {
	tests := []struct {
		name       string
		horizontal bool
		vertical   bool
		want       int
	}{
		{"none", false, false, 0},
		{"horizontal", true, false, 1},
		{"vertical", false, true, 1},
		{"both", true, true, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			s.DisplayHorizontal = tt.horizontal
			s.DisplayVertical = tt.vertical

			assert.Len(t, s.Advance(0.5, RectFromSize(800, 600)), tt.want)
		})
	}
}

func TestAdvanceVerticalOnly(t *testing.T) {
	s := Default()
	s.DisplayHorizontal = false
	s.DisplayVertical = true

	segments := s.Advance(0.06, RectFromSize(800, 600))

	require.Len(t, segments, 1)
	assert.Equal(t, Segment{From: Point{X: 1, Y: 0}, To: Point{X: 1, Y: 600}}, segments[0])
}

func TestAdvanceEmptyCanvas(t *testing.T) {
	s := Default()

	assert.Nil(t, s.Advance(5, RectFromSize(0, 600)))
	assert.Equal(t, Point{}, s.Position())
	assert.Zero(t, s.LastUpdateTime())
}

func TestLastUpdateNeverDecreases(t *testing.T) {
	s := Default()
	screen := RectFromSize(800, 600)
	prev := s.LastUpdateTime()

	for _, now := range []float64{1, 0.5, 2, 1.9, 3, 0} {
		s.Advance(now, screen)
		assert.GreaterOrEqual(t, s.LastUpdateTime(), prev)
		prev = s.LastUpdateTime()
	}
}
