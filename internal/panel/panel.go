// Package panel is the control side panel of the display test: it lays out
// the widgets, hit-tests clicks and key shortcuts, and writes the results into
// the shared animation state. Drawing is left to the caller.
package panel

import (
	"fmt"

	"github.com/iburimskiy/display-test/internal/anim"
	"github.com/iburimskiy/display-test/internal/config"
	"github.com/iburimskiy/display-test/internal/logger"
)

const component = "panel"

type Theme int

const (
	Light Theme = iota
	Dark
)

func (t Theme) String() string {
	if t == Dark {
		return "dark"
	}
	return "light"
}

type Kind int

const (
	KindButton Kind = iota
	KindCheckbox
	KindSeparator
	KindLabel
	KindCombo
	KindOption
)

type ID int

const (
	IDNone ID = iota
	IDLight
	IDDark
	IDAntialiasing
	IDAnimation
	IDHorizontal
	IDVertical
	IDPosition
	IDSpeed
	IDSpeedOption
	IDStats
)

// Widget is one laid-out element of the panel for the current frame.
type Widget struct {
	ID       ID
	Kind     Kind
	Label    string
	Bounds   anim.Rect
	Checked  bool // checkbox state, or the active theme button / speed entry
	Hovered  bool
	Value    int // speed of a KindOption entry
	Overlays bool
}

// Key is a panel shortcut, decoupled from the toolkit's key codes.
type Key int

const (
	KeyTheme Key = iota
	KeyAntialiasing
	KeyAnimation
	KeyHorizontal
	KeyVertical
	KeySpeedUp
	KeySpeedDown
)

type Panel struct {
	state *anim.State
	log   *logger.Logger

	theme     Theme
	comboOpen bool
	hover     anim.Point
	hovering  bool
	stats     string
}

func New(state *anim.State, log *logger.Logger) *Panel {
	if log == nil {
		log = logger.Nop()
	}
	return &Panel{state: state, log: log, theme: Light}
}

func (p *Panel) Theme() Theme { return p.theme }

func (p *Panel) SetTheme(t Theme) {
	if p.theme == t {
		return
	}
	p.theme = t
	p.log.Info(component, "theme changed", map[string]interface{}{"theme": t.String()})
}

func (p *Panel) ComboOpen() bool { return p.comboOpen }

// SetStats replaces the frame statistics line shown under the speed selector.
func (p *Panel) SetStats(s string) { p.stats = s }

// Hover records the cursor position used to highlight widgets. A cursor
// outside the panel clears it.
func (p *Panel) Hover(x, y float64) {
	p.hover = anim.Point{X: x, Y: y}
	p.hovering = x >= 0 && x < config.PanelWidth
}

// Widgets lays out the panel for the current state. Drop-down entries come
// last so they are drawn over the rows beneath the selector.
func (p *Panel) Widgets() []Widget {
	var out []Widget
	x0 := float64(config.PanelPadding)
	x1 := float64(config.PanelWidth - config.PanelPadding)
	y := float64(config.PanelPadding)

	row := func(h float64) anim.Rect {
		r := anim.Rect{Min: anim.Point{X: x0, Y: y}, Max: anim.Point{X: x1, Y: y + h}}
		y += h
		return r
	}
	full := float64(config.RowHeight)
	half := full / 2

	themeRow := row(full)
	mid := (themeRow.Min.X + themeRow.Max.X) / 2
	out = append(out,
		Widget{ID: IDLight, Kind: KindButton, Label: "Light", Checked: p.theme == Light,
			Bounds: anim.Rect{Min: themeRow.Min, Max: anim.Point{X: mid - 2, Y: themeRow.Max.Y - 2}}},
		Widget{ID: IDDark, Kind: KindButton, Label: "Dark", Checked: p.theme == Dark,
			Bounds: anim.Rect{Min: anim.Point{X: mid + 2, Y: themeRow.Min.Y}, Max: anim.Point{X: themeRow.Max.X, Y: themeRow.Max.Y - 2}}},
	)
	out = append(out, Widget{ID: IDAntialiasing, Kind: KindCheckbox, Label: "Anti-aliasing", Checked: p.state.AntialiasingEnabled, Bounds: row(full)})
	out = append(out, Widget{Kind: KindSeparator, Bounds: row(half)})
	out = append(out,
		Widget{ID: IDAnimation, Kind: KindCheckbox, Label: "Animation", Checked: p.state.AnimationEnabled, Bounds: row(full)},
		Widget{ID: IDHorizontal, Kind: KindCheckbox, Label: "Horizontal", Checked: p.state.DisplayHorizontal, Bounds: row(full)},
		Widget{ID: IDVertical, Kind: KindCheckbox, Label: "Vertical", Checked: p.state.DisplayVertical, Bounds: row(full)},
	)
	out = append(out, Widget{Kind: KindSeparator, Bounds: row(half)})

	pos := p.state.Position()
	out = append(out, Widget{ID: IDPosition, Kind: KindLabel, Label: fmt.Sprintf("x:%g y:%g", pos.X, pos.Y), Bounds: row(full)})

	combo := Widget{ID: IDSpeed, Kind: KindCombo, Label: speedLabel(p.state.Speed()), Checked: p.comboOpen, Bounds: row(full)}
	out = append(out, combo)
	if p.stats != "" {
		out = append(out, Widget{ID: IDStats, Kind: KindLabel, Label: p.stats, Bounds: row(full)})
	}

	if p.comboOpen {
		oy := combo.Bounds.Max.Y
		for _, s := range p.state.Speeds() {
			out = append(out, Widget{
				ID:       IDSpeedOption,
				Kind:     KindOption,
				Label:    speedLabel(s),
				Value:    s,
				Checked:  s == p.state.Speed(),
				Overlays: true,
				Bounds:   anim.Rect{Min: anim.Point{X: x0, Y: oy}, Max: anim.Point{X: x1, Y: oy + full}},
			})
			oy += full
		}
	}

	if p.hovering {
		// An open drop-down hides whatever it covers.
		covered := p.comboOpen && p.overDropDown(out)
		for i := range out {
			out[i].Hovered = out[i].Bounds.Contains(p.hover) && (out[i].Overlays || !covered)
		}
	}
	return out
}

func (p *Panel) overDropDown(ws []Widget) bool {
	for _, w := range ws {
		if w.Overlays && w.Bounds.Contains(p.hover) {
			return true
		}
	}
	return false
}

// Click applies a left click at (x, y) and reports whether a widget took it.
// While the speed drop-down is open any click closes it.
func (p *Panel) Click(x, y float64) bool {
	at := anim.Point{X: x, Y: y}
	ws := p.Widgets()

	if p.comboOpen {
		p.comboOpen = false
		for _, w := range ws {
			if w.Overlays && w.Bounds.Contains(at) {
				p.selectSpeed(w.Value)
				return true
			}
		}
		for _, w := range ws {
			if w.ID == IDSpeed && w.Bounds.Contains(at) {
				return true
			}
		}
		return x >= 0 && x < config.PanelWidth
	}

	for _, w := range ws {
		if !w.Bounds.Contains(at) {
			continue
		}
		switch w.ID {
		case IDLight:
			p.SetTheme(Light)
		case IDDark:
			p.SetTheme(Dark)
		case IDAntialiasing:
			p.toggle("antialiasing", &p.state.AntialiasingEnabled)
		case IDAnimation:
			p.toggle("animation", &p.state.AnimationEnabled)
		case IDHorizontal:
			p.toggle("horizontal", &p.state.DisplayHorizontal)
		case IDVertical:
			p.toggle("vertical", &p.state.DisplayVertical)
		case IDSpeed:
			p.comboOpen = true
		default:
			return false
		}
		return true
	}
	return false
}

// HandleKey applies a keyboard shortcut.
func (p *Panel) HandleKey(k Key) {
	switch k {
	case KeyTheme:
		if p.theme == Dark {
			p.SetTheme(Light)
		} else {
			p.SetTheme(Dark)
		}
	case KeyAntialiasing:
		p.toggle("antialiasing", &p.state.AntialiasingEnabled)
	case KeyAnimation:
		p.toggle("animation", &p.state.AnimationEnabled)
	case KeyHorizontal:
		p.toggle("horizontal", &p.state.DisplayHorizontal)
	case KeyVertical:
		p.toggle("vertical", &p.state.DisplayVertical)
	case KeySpeedUp:
		if p.state.StepSpeed(1) {
			p.logSpeed()
		}
	case KeySpeedDown:
		if p.state.StepSpeed(-1) {
			p.logSpeed()
		}
	}
}

func (p *Panel) toggle(name string, flag *bool) {
	*flag = !*flag
	p.log.Debug(component, "option toggled", map[string]interface{}{"option": name, "enabled": *flag})
}

func (p *Panel) selectSpeed(v int) {
	if v == p.state.Speed() {
		return
	}
	if err := p.state.SetSpeed(v); err != nil {
		p.log.Error(component, err, map[string]interface{}{"speed": v})
		return
	}
	p.logSpeed()
}

func (p *Panel) logSpeed() {
	p.log.Info(component, "speed changed", map[string]interface{}{"speed": p.state.Speed()})
}

func speedLabel(v int) string {
	return fmt.Sprintf("%d px/s", v)
}
