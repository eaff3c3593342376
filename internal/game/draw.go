package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/display-test/internal/anim"
	"github.com/iburimskiy/display-test/internal/config"
	"github.com/iburimskiy/display-test/internal/panel"
)

func (g *Game) drawLines(screen *ebiten.Image) {
	clr := lineColor(g.panel.Theme())
	for _, s := range g.segments {
		vector.StrokeLine(screen,
			float32(s.From.X), float32(s.From.Y), float32(s.To.X), float32(s.To.Y),
			config.LineThickness, clr, g.antialias)
	}
}

func (g *Game) drawPanel(screen *ebiten.Image, pal palette) {
	vector.DrawFilledRect(screen, 0, 0, config.PanelWidth, float32(g.height), pal.panel, false)
	vector.StrokeLine(screen, config.PanelWidth, 0, config.PanelWidth, float32(g.height), 1, pal.border, false)

	widgets := g.panel.Widgets()
	var comboBounds anim.Rect
	for _, w := range widgets {
		switch w.Kind {
		case panel.KindButton:
			g.drawButton(screen, pal, w)
		case panel.KindCheckbox:
			g.drawCheckbox(screen, pal, w)
		case panel.KindSeparator:
			y := float32((w.Bounds.Min.Y + w.Bounds.Max.Y) / 2)
			vector.StrokeLine(screen, float32(w.Bounds.Min.X), y, float32(w.Bounds.Max.X), y, 1, pal.border, false)
		case panel.KindLabel:
			g.drawText(screen, pal, w.Label, w.Bounds.Min.X, w.Bounds)
		case panel.KindCombo:
			g.drawCombo(screen, pal, w)
			comboBounds = w.Bounds
		case panel.KindOption:
			g.drawOption(screen, pal, w)
		}
	}

	if g.panel.ComboOpen() {
		n := float32(len(g.state.Speeds()))
		vector.StrokeRect(screen,
			float32(comboBounds.Min.X), float32(comboBounds.Max.Y),
			float32(comboBounds.Width()), n*config.RowHeight, 1, pal.border, false)
	}
}

func (g *Game) drawButton(screen *ebiten.Image, pal palette, w panel.Widget) {
	bg := pal.widget
	if w.Hovered {
		bg = pal.widgetHover
	}
	fillRect(screen, w.Bounds, bg)
	border := pal.border
	if w.Checked {
		border = pal.accent
	}
	strokeRect(screen, w.Bounds, border)

	tw, _ := text.Measure(w.Label, g.face, 0)
	g.drawText(screen, pal, w.Label, (w.Bounds.Min.X+w.Bounds.Max.X-tw)/2, w.Bounds)
}

func (g *Game) drawCheckbox(screen *ebiten.Image, pal palette, w panel.Widget) {
	cy := (w.Bounds.Min.Y + w.Bounds.Max.Y) / 2
	box := anim.Rect{
		Min: anim.Point{X: w.Bounds.Min.X, Y: cy - config.BoxSize/2},
		Max: anim.Point{X: w.Bounds.Min.X + config.BoxSize, Y: cy + config.BoxSize/2},
	}
	bg := pal.widget
	if w.Hovered {
		bg = pal.widgetHover
	}
	fillRect(screen, box, bg)
	strokeRect(screen, box, pal.border)
	if w.Checked {
		// Tick
		vector.StrokeLine(screen, float32(box.Min.X+2), float32(cy), float32(box.Min.X+5), float32(box.Max.Y-3), 2, pal.accent, true)
		vector.StrokeLine(screen, float32(box.Min.X+5), float32(box.Max.Y-3), float32(box.Max.X-2), float32(box.Min.Y+2), 2, pal.accent, true)
	}
	g.drawText(screen, pal, w.Label, box.Max.X+6, w.Bounds)
}

func (g *Game) drawCombo(screen *ebiten.Image, pal palette, w panel.Widget) {
	bg := pal.widget
	if w.Hovered || w.Checked {
		bg = pal.widgetHover
	}
	box := anim.Rect{Min: w.Bounds.Min, Max: anim.Point{X: w.Bounds.Max.X - 50, Y: w.Bounds.Max.Y - 2}}
	fillRect(screen, box, bg)
	strokeRect(screen, box, pal.border)
	g.drawText(screen, pal, w.Label, box.Min.X+4, box)

	// Arrow
	ax, ay := float32(box.Max.X-12), float32((box.Min.Y+box.Max.Y)/2)
	vector.StrokeLine(screen, ax-4, ay-2, ax, ay+2, 1, pal.text, true)
	vector.StrokeLine(screen, ax, ay+2, ax+4, ay-2, 1, pal.text, true)

	g.drawText(screen, pal, "Speed", box.Max.X+6, w.Bounds)
}

func (g *Game) drawOption(screen *ebiten.Image, pal palette, w panel.Widget) {
	bg := pal.panel
	if w.Hovered {
		bg = pal.widgetHover
	}
	fillRect(screen, w.Bounds, bg)
	clr := pal.text
	if w.Checked {
		clr = pal.accent
	}
	g.drawTextColor(screen, clr, w.Label, w.Bounds.Min.X+4, w.Bounds)
}

func (g *Game) drawText(screen *ebiten.Image, pal palette, s string, x float64, row anim.Rect) {
	g.drawTextColor(screen, pal.text, s, x, row)
}

func (g *Game) drawTextColor(screen *ebiten.Image, clr color.Color, s string, x float64, row anim.Rect) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, (row.Min.Y+row.Max.Y)/2)
	op.ColorScale.ScaleWithColor(clr)
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, g.face, op)
}

func fillRect(screen *ebiten.Image, r anim.Rect, clr color.Color) {
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Width()), float32(r.Height()), clr, false)
}

func strokeRect(screen *ebiten.Image, r anim.Rect, clr color.Color) {
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Width()), float32(r.Height()), 1, clr, false)
}
