package game

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/iburimskiy/display-test/internal/anim"
	"github.com/iburimskiy/display-test/internal/config"
	"github.com/iburimskiy/display-test/internal/logger"
	"github.com/iburimskiy/display-test/internal/panel"
)

const component = "game"

// Clock returns monotonic seconds.
type Clock func() float64

// MonotonicClock counts seconds from its creation using the runtime's monotonic reading.
func MonotonicClock() Clock {
	start := time.Now()
	return func() float64 { return time.Since(start).Seconds() }
}

var shortcuts = map[ebiten.Key]panel.Key{
	ebiten.KeyT:         panel.KeyTheme,
	ebiten.KeyA:         panel.KeyAntialiasing,
	ebiten.KeySpace:     panel.KeyAnimation,
	ebiten.KeyH:         panel.KeyHorizontal,
	ebiten.KeyV:         panel.KeyVertical,
	ebiten.KeyArrowUp:   panel.KeySpeedUp,
	ebiten.KeyArrowDown: panel.KeySpeedDown,
}

type Game struct {
	state *anim.State
	panel *panel.Panel
	log   *logger.Logger
	clock Clock

	width, height int
	segments      []anim.Segment
	stats         *frameStats
	lastFrame     float64
	haveFrame     bool

	// renderer configuration, reset at the start of every Draw
	antialias bool

	face *text.GoTextFace
}

func New(state *anim.State, log *logger.Logger, clock Clock) (*Game, error) {
	if state == nil {
		return nil, errors.New("game: nil animation state")
	}
	if log == nil {
		log = logger.Nop()
	}
	if clock == nil {
		clock = MonotonicClock()
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("game: load font: %w", err)
	}
	return &Game{
		state:  state,
		panel:  panel.New(state, log),
		log:    log,
		clock:  clock,
		width:  config.WindowWidth,
		height: config.WindowHeight,
		stats:  newFrameStats(config.FrameRingSize),
		face:   &text.GoTextFace{Source: src, Size: 13},
	}, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.log.Info(component, "quit requested", nil)
		return ebiten.Termination
	}
	g.handleInput()
	g.step()
	return nil
}

func (g *Game) handleInput() {
	for k, action := range shortcuts {
		if inpututil.IsKeyJustPressed(k) {
			g.panel.HandleKey(action)
		}
	}

	mx, my := ebiten.CursorPosition()
	g.panel.Hover(float64(mx), float64(my))
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.panel.Click(float64(mx), float64(my))
	}
}

// step advances the line for this frame and stores the segments Draw will stroke.
func (g *Game) step() {
	now := g.clock()
	if g.haveFrame {
		g.stats.record(now - g.lastFrame)
	}
	g.lastFrame, g.haveFrame = now, true

	g.segments = g.state.Advance(now, g.canvas())
	g.panel.SetStats(formatStats(g.stats.fps(), g.state.Speed()))
}

// canvas is the area right of the panel, in screen coordinates.
func (g *Game) canvas() anim.Rect {
	return anim.Rect{
		Min: anim.Point{X: config.PanelWidth, Y: 0},
		Max: anim.Point{X: float64(max(g.width, config.PanelWidth)), Y: float64(g.height)},
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.toggleAntialiasing(g.state.AntialiasingEnabled)

	pal := paletteFor(g.panel.Theme())
	screen.Fill(pal.canvas)
	g.drawLines(screen)
	g.drawPanel(screen, pal)
}

// toggleAntialiasing sets edge feathering for every stroke drawn this frame.
func (g *Game) toggleAntialiasing(enabled bool) {
	g.antialias = enabled
}

// Layout keeps one screen pixel per logical pixel so the canvas follows the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = max(outsideWidth, 1), max(outsideHeight, 1)
	return g.width, g.height
}
