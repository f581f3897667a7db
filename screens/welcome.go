package screens

import (
	"github.com/parkhub/parkshots/layout"
	"github.com/parkhub/parkshots/palette"
)

const (
	welcomeCols  = 5
	welcomeCardW = 130
	welcomeCardH = 70
	welcomeGap   = 12
	welcomeTop   = 160
)

var welcomeLanguages = []struct{ native, english string }{
	{"Deutsch", "German"},
	{"English", "English"},
	{"Español", "Spanish"},
	{"Français", "French"},
	{"Português", "Portuguese"},
	{"Türkçe", "Turkish"},
	{"Hindi", "Hindi"},
	{"Japanisch", "Japanese"},
	{"Chinesisch", "Chinese"},
	{"Arabisch", "Arabic"},
}

// welcomeGridLeft centres the language grid horizontally.
func welcomeGridLeft(canvasWidth int) int {
	return (canvasWidth - welcomeCols*welcomeCardW - (welcomeCols-1)*welcomeGap) / 2
}

// Welcome draws the language picker shown on first launch.
func Welcome(pal *palette.Palette) *layout.Canvas {
	c := newScreen(pal)
	c.Text(pt(Width/2-100, 60), "Willkommen", pal.Primary, layout.FontLarge)
	c.Text(pt(Width/2-140, 110), "Sprache wählen / Select your language", pal.Muted, layout.FontSmall)

	left := welcomeGridLeft(c.Width)
	for i, lang := range welcomeLanguages {
		row, col := i/welcomeCols, i%welcomeCols
		x := left + col*(welcomeCardW+welcomeGap)
		y := welcomeTop + row*(welcomeCardH+welcomeGap)
		c.OutlinedRoundedRect(layout.Box(x, y, x+welcomeCardW, y+welcomeCardH), pal.Surface, 10, pal.CardBorder)
		c.Text(pt(x+12, y+14), lang.native, pal.Text, layout.FontSmall)
		c.Text(pt(x+12, y+36), lang.english, pal.Muted, layout.FontTiny)
	}

	c.Text(pt(Width/2-80, 390), "Barrierefreiheit", pal.Muted, layout.FontTiny)
	c.Text(pt(Width/2-100, 460), "Open Source  |  MIT License  |  GitHub", pal.Footer, layout.FontTiny)
	return c
}
