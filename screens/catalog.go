// Package screens composes the ParkHub documentation mockups. Every composer
// builds a fresh canvas from literal coordinates and literal mock data.
package screens

import (
	"github.com/parkhub/parkshots/layout"
	"github.com/parkhub/parkshots/palette"
)

// Full-screen mockup size.
const (
	Width  = 800
	Height = 500
)

// ComposeFunc builds one screen. The palette is only read.
type ComposeFunc func(pal *palette.Palette) *layout.Canvas

// Screen is one catalog entry.
type Screen struct {
	Name    string
	File    string
	Compose ComposeFunc
}

// Catalog returns the screens in generation order.
func Catalog() []Screen {
	return []Screen{
		{Name: "welcome", File: "welcome.png", Compose: Welcome},
		{Name: "login", File: "login.png", Compose: Login},
		{Name: "onboarding", File: "onboarding.png", Compose: Onboarding},
		{Name: "dashboard", File: "dashboard.png", Compose: Dashboard},
		{Name: "booking", File: "booking.png", Compose: Booking},
		{Name: "admin", File: "admin.png", Compose: Admin},
		{Name: "themes", File: "themes.png", Compose: Themes},
		{Name: "mobile", File: "mobile.png", Compose: Mobile},
		{Name: "dark-mode", File: "dark-mode.png", Compose: DarkMode},
	}
}

// Lookup finds a catalog entry by name.
func Lookup(name string) (Screen, bool) {
	for _, s := range Catalog() {
		if s.Name == name {
			return s, true
		}
	}
	return Screen{}, false
}

func newScreen(pal *palette.Palette) *layout.Canvas {
	return layout.NewCanvas(Width, Height, pal.Background)
}

func pt(x, y int) layout.Point { return layout.Point{X: x, Y: y} }
