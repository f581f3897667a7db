package screens

import (
	"fmt"

	"github.com/parkhub/parkshots/layout"
	"github.com/parkhub/parkshots/palette"
)

// modeStyle colours one half of the split comparison.
type modeStyle struct {
	heading, caption string

	frame, frameBorder layout.Color
	card, cardBorder   layout.Color
	title, entry, note layout.Color
	swatch             func(layout.Color) layout.Color
}

const (
	darkPanelLeft  = 30
	lightPanelLeft = Width/2 + 15
	panelWidth     = 355
)

func darkStyle(pal *palette.Palette) modeStyle {
	return modeStyle{
		heading:     "Dark Mode",
		caption:     "Automatische Erkennung",
		frame:       layout.RGB(15, 23, 42),
		frameBorder: pal.CardBorder,
		card:        pal.Surface,
		cardBorder:  pal.CardBorder,
		title:       pal.Text,
		entry:       pal.Subtle,
		note:        pal.Muted,
		swatch:      func(c layout.Color) layout.Color { return palette.Darken(c, 6) },
	}
}

func lightStyle() modeStyle {
	ink := layout.RGB(30, 41, 59)
	border := layout.RGB(229, 231, 235)
	return modeStyle{
		heading:     "Light Mode",
		caption:     "Systemeinstellung",
		frame:       layout.RGB(248, 250, 252),
		frameBorder: border,
		card:        layout.RGB(255, 255, 255),
		cardBorder:  border,
		title:       ink,
		entry:       ink,
		note:        layout.RGB(107, 114, 128),
		swatch:      palette.Lighten,
	}
}

// DarkMode draws the same dashboard excerpt twice, dark left and light right.
func DarkMode(pal *palette.Palette) *layout.Canvas {
	c := newScreen(pal)
	accents := []layout.Color{pal.Success, pal.Danger, pal.Primary, pal.Highlight}
	modePanel(c, darkPanelLeft, darkStyle(pal), accents)
	modePanel(c, lightPanelLeft, lightStyle(), accents)
	return c
}

// modePanel draws a framed panel whose left edge is at left. The heading and
// caption name the mode; everything between them is identical in both modes.
func modePanel(c *layout.Canvas, left int, st modeStyle, accents []layout.Color) {
	right := left + panelWidth
	cardL, cardR, textX := left+20, left+335, left+35

	c.OutlinedRoundedRect(layout.Box(left, 30, right, Height-30), st.frame, 12, st.frameBorder)
	c.Text(pt(cardL, 45), st.heading, st.title, layout.FontBold)

	c.OutlinedRoundedRect(layout.Box(cardL, 80, cardR, 140), st.card, 8, st.cardBorder)
	c.Text(pt(textX, 90), "Dashboard", st.title, layout.FontSmall)
	c.Text(pt(textX, 112), "18 von 24 belegt", st.note, layout.FontTiny)

	for i := 0; i < 3; i++ {
		y := 155 + i*50
		c.OutlinedRoundedRect(layout.Box(cardL, y, cardR, y+40), st.card, 8, st.cardBorder)
		c.Text(pt(textX, y+6), fmt.Sprintf("Buchung #%d", i+1), st.entry, layout.FontSmall)
		c.Text(pt(textX, y+24), fmt.Sprintf("Stellplatz P0%d", i+1), st.note, layout.FontTiny)
	}

	c.OutlinedRoundedRect(layout.Box(cardL, 320, cardR, 380), st.card, 8, st.cardBorder)
	for j, accent := range accents {
		x := left + 30 + j*80
		c.OutlinedRoundedRect(layout.Box(x, 330, x+65, 370), st.swatch(accent), 6, accent)
	}

	c.Text(pt(cardL, 400), st.caption, st.note, layout.FontTiny)
}
