// Package palette is the fixed registry of colours and font roles shared by
// every widget and screen.
package palette

import "github.com/parkhub/parkshots/layout"

// Palette maps semantic colour names to colours. A Palette is read-only once
// handed to the composers.
type Palette struct {
	Background  layout.Color
	Surface     layout.Color // cards, navbar
	SurfaceAlt  layout.Color // sidebar
	CardBorder  layout.Color
	Primary     layout.Color
	PrimaryDark layout.Color
	Text        layout.Color
	Muted       layout.Color
	Subtle      layout.Color
	Success     layout.Color
	Danger      layout.Color
	Warning     layout.Color
	Highlight   layout.Color
	Footer      layout.Color
	HeroMuted   layout.Color
	PhoneFrame  layout.Color
}

// Default returns the ParkHub dark palette.
func Default() Palette {
	return Palette{
		Background:  layout.RGB(15, 23, 42),
		Surface:     layout.RGB(30, 41, 59),
		SurfaceAlt:  layout.RGB(20, 30, 48),
		CardBorder:  layout.RGB(51, 65, 85),
		Primary:     layout.RGB(59, 130, 246),
		PrimaryDark: layout.RGB(29, 78, 216),
		Text:        layout.RGB(255, 255, 255),
		Muted:       layout.RGB(148, 163, 184),
		Subtle:      layout.RGB(203, 213, 225),
		Success:     layout.RGB(34, 197, 94),
		Danger:      layout.RGB(239, 68, 68),
		Warning:     layout.RGB(250, 204, 21),
		Highlight:   layout.RGB(168, 85, 247),
		Footer:      layout.RGB(71, 85, 105),
		HeroMuted:   layout.RGB(200, 220, 255),
		PhoneFrame:  layout.RGB(10, 15, 30),
	}
}

// Named exposes the palette slots by their theme-file names.
func (p *Palette) Named() map[string]*layout.Color {
	return map[string]*layout.Color{
		"background":   &p.Background,
		"surface":      &p.Surface,
		"surface-alt":  &p.SurfaceAlt,
		"card-border":  &p.CardBorder,
		"primary":      &p.Primary,
		"primary-dark": &p.PrimaryDark,
		"text":         &p.Text,
		"muted":        &p.Muted,
		"subtle":       &p.Subtle,
		"success":      &p.Success,
		"danger":       &p.Danger,
		"warning":      &p.Warning,
		"highlight":    &p.Highlight,
		"footer":       &p.Footer,
		"hero-muted":   &p.HeroMuted,
		"phone-frame":  &p.PhoneFrame,
	}
}

// FontSpec is the pixel size and weight bound to a font role.
type FontSpec struct {
	Size float64
	Bold bool
}

// Typography is the fixed role table.
var Typography = map[layout.FontRole]FontSpec{
	layout.FontLarge: {Size: 28, Bold: true},
	layout.FontTitle: {Size: 22, Bold: true},
	layout.FontBody:  {Size: 18},
	layout.FontBold:  {Size: 18, Bold: true},
	layout.FontSmall: {Size: 14},
	layout.FontTiny:  {Size: 11},
}

// Spec returns the font spec for role, defaulting to the body role.
func Spec(role layout.FontRole) FontSpec {
	if s, ok := Typography[role]; ok {
		return s
	}
	return Typography[layout.FontBody]
}

// Darken divides every channel by n. Alpha is kept.
func Darken(c layout.Color, n uint8) layout.Color {
	if n == 0 {
		return c
	}
	return layout.Color{R: c.R / n, G: c.G / n, B: c.B / n, A: c.A}
}

// Lighten moves every channel halfway towards white (c/2 + 128).
func Lighten(c layout.Color) layout.Color {
	return layout.Color{R: c.R/2 + 128, G: c.G/2 + 128, B: c.B/2 + 128, A: c.A}
}
