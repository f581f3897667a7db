package screens

import (
	"github.com/parkhub/parkshots/layout"
	"github.com/parkhub/parkshots/palette"
)

// The progress fill is a fixed half of the track (step two of four).
const (
	progressLeft  = 100
	progressRight = 700
	progressFill  = 400
)

var onboardingSteps = []string{"Passwort", "Anwendungsfall", "Organisation", "Fertig"}

var useCases = []struct{ title, desc string }{
	{"Unternehmen", "Firmenparkplätze verwalten"},
	{"Wohnanlage", "Mieterparkplätze organisieren"},
	{"Familie", "Familienparkplätze teilen"},
}

// Onboarding draws the setup wizard on its use-case step.
func Onboarding(pal *palette.Palette) *layout.Canvas {
	c := newScreen(pal)
	c.Text(pt(Width/2-100, 30), "Ersteinrichtung", pal.Text, layout.FontLarge)

	c.RoundedRect(layout.Box(progressLeft, 80, progressRight, 90), pal.Surface, 5)
	c.RoundedRect(layout.Box(progressLeft, 80, progressFill, 90), pal.Primary, 5)
	for i, step := range onboardingSteps {
		x := 130 + i*160
		col := pal.Muted
		if i < 2 {
			col = pal.Primary
		}
		c.Ellipse(layout.Box(x, 96, x+20, 116), col)
		c.Text(pt(x-10, 122), step, col, layout.FontTiny)
	}

	c.OutlinedRoundedRect(layout.Box(100, 160, 700, 440), pal.Surface, 12, pal.CardBorder)
	c.Text(pt(130, 180), "Anwendungsfall wählen", pal.Text, layout.FontTitle)
	c.Text(pt(130, 215), "Wie möchten Sie ParkHub nutzen?", pal.Muted, layout.FontSmall)

	for i, uc := range useCases {
		y := 260 + i*55
		fill, outline, title := pal.Surface, pal.CardBorder, pal.Subtle
		if i == 0 {
			fill, outline, title = layout.RGB(30, 50, 80), pal.Primary, pal.Text
		}
		c.OutlinedRoundedRect(layout.Box(130, y, 670, y+45), fill, 8, outline)
		c.Text(pt(155, y+6), uc.title, title, layout.FontBold)
		c.Text(pt(155, y+26), uc.desc, pal.Muted, layout.FontTiny)
	}

	c.RoundedRect(layout.Box(550, 450, 700, 480), pal.Primary, 8)
	c.Text(pt(595, 455), "Weiter", pal.Text, layout.FontBold)
	return c
}
