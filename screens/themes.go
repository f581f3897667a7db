package screens

import (
	"github.com/parkhub/parkshots/layout"
	"github.com/parkhub/parkshots/palette"
	"github.com/parkhub/parkshots/widgets"
)

var galleryThemes = []Theme{
	{"Default Blue", layout.RGB(59, 130, 246)},
	{"Solarized", layout.RGB(181, 137, 0)},
	{"Dracula", layout.RGB(189, 147, 249)},
	{"Nord", layout.RGB(136, 192, 208)},
	{"Gruvbox", layout.RGB(214, 153, 33)},
	{"Catppuccin", layout.RGB(203, 166, 247)},
	{"Tokyo Night", layout.RGB(122, 162, 247)},
	{"One Dark", layout.RGB(97, 175, 239)},
	{"Rose Pine", layout.RGB(235, 188, 186)},
	{"Everforest", layout.RGB(167, 192, 128)},
}

const (
	galleryCols  = 5
	swatchDarken = 4
)

// Themes draws the colour theme gallery with the first theme active.
func Themes(pal *palette.Palette) *layout.Canvas {
	c := newScreen(pal)
	widgets.Navbar(c, pal, "ParkHub", widgets.SectionNone)
	c.Text(pt(Width/2-80, 72), "Farbthemen", pal.Text, layout.FontTitle)
	c.Text(pt(Width/2-140, 102), "Wählen Sie Ihr bevorzugtes Erscheinungsbild", pal.Muted, layout.FontSmall)

	for i, th := range galleryThemes {
		row, col := i/galleryCols, i%galleryCols
		x, y := 60+col*145, 145+row*170
		active := i == 0

		outline, name := pal.CardBorder, pal.Subtle
		if active {
			outline, name = pal.Primary, pal.Text
		}
		c.OutlinedRoundedRect(layout.Box(x, y, x+130, y+150), pal.Surface, 10, outline)
		c.RoundedRect(layout.Box(x+10, y+10, x+120, y+90), palette.Darken(th.Accent, swatchDarken), 6)
		c.Ellipse(layout.Box(x+50, y+35, x+80, y+65), th.Accent)
		c.Text(pt(x+10, y+100), th.Name, name, layout.FontSmall)
		if active {
			c.Text(pt(x+10, y+125), "Aktiv", pal.Primary, layout.FontTiny)
		}
	}
	return c
}
