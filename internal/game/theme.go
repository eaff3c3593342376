package game

import (
	"image/color"

	"github.com/iburimskiy/display-test/internal/panel"
)

type palette struct {
	canvas      color.RGBA
	line        color.RGBA
	panel       color.RGBA
	border      color.RGBA
	text        color.RGBA
	widget      color.RGBA
	widgetHover color.RGBA
	accent      color.RGBA
}

var (
	lightPalette = palette{
		canvas:      color.RGBA{R: 248, G: 248, B: 248, A: 255},
		line:        color.RGBA{A: 255},
		panel:       color.RGBA{R: 230, G: 230, B: 230, A: 255},
		border:      color.RGBA{R: 160, G: 160, B: 160, A: 255},
		text:        color.RGBA{R: 40, G: 40, B: 40, A: 255},
		widget:      color.RGBA{R: 210, G: 210, B: 210, A: 255},
		widgetHover: color.RGBA{R: 190, G: 200, B: 215, A: 255},
		accent:      color.RGBA{R: 60, G: 110, B: 190, A: 255},
	}
	darkPalette = palette{
		canvas:      color.RGBA{R: 27, G: 27, B: 27, A: 255},
		line:        color.RGBA{R: 255, G: 255, B: 255, A: 255},
		panel:       color.RGBA{R: 40, G: 40, B: 40, A: 255},
		border:      color.RGBA{R: 90, G: 90, B: 90, A: 255},
		text:        color.RGBA{R: 210, G: 210, B: 210, A: 255},
		widget:      color.RGBA{R: 60, G: 60, B: 60, A: 255},
		widgetHover: color.RGBA{R: 75, G: 85, B: 100, A: 255},
		accent:      color.RGBA{R: 90, G: 150, B: 230, A: 255},
	}
)

func paletteFor(t panel.Theme) palette {
	if t == panel.Dark {
		return darkPalette
	}
	return lightPalette
}

// lineColor is white on the dark theme and black otherwise.
func lineColor(t panel.Theme) color.RGBA {
	return paletteFor(t).line
}
