package screens

import (
	"github.com/parkhub/parkshots/layout"
	"github.com/parkhub/parkshots/palette"
)

const loginHeroWidth = 380

// passwordMask is always eight bullets, independent of any real password.
const passwordMask = "••••••••"

// Login draws the split sign-in screen: hero panel left, credentials right.
func Login(pal *palette.Palette) *layout.Canvas {
	c := newScreen(pal)
	loginHero(c, pal)

	c.Text(pt(420, 100), "Anmeldung", pal.Text, layout.FontTitle)
	c.Text(pt(420, 135), "Melden Sie sich an", pal.Muted, layout.FontSmall)

	c.Text(pt(420, 180), "Benutzername", pal.Muted, layout.FontTiny)
	c.OutlinedRoundedRect(layout.Box(420, 200, 740, 236), pal.Surface, 8, pal.CardBorder)
	c.Text(pt(435, 210), "admin", pal.Subtle, layout.FontSmall)

	c.Text(pt(420, 260), "Passwort", pal.Muted, layout.FontTiny)
	c.OutlinedRoundedRect(layout.Box(420, 280, 740, 316), pal.Surface, 8, pal.CardBorder)
	c.Text(pt(435, 290), passwordMask, pal.Subtle, layout.FontSmall)

	c.RoundedRect(layout.Box(420, 340, 740, 376), pal.Primary, 8)
	c.Text(pt(545, 350), "Anmelden", pal.Text, layout.FontBold)
	return c
}

func loginHero(c *layout.Canvas, pal *palette.Palette) {
	c.Rect(layout.Box(0, 0, loginHeroWidth, c.Height), pal.Primary)
	c.Text(pt(40, 60), "PH", pal.Text, layout.FontLarge)
	c.Text(pt(90, 68), "ParkHub", pal.Text, layout.FontBold)
	c.Text(pt(40, 140), "Intelligentes", pal.Text, layout.FontLarge)
	c.Text(pt(40, 175), "Parkplatz-", pal.Text, layout.FontLarge)
	c.Text(pt(40, 210), "Management", pal.Text, layout.FontLarge)
	c.Text(pt(40, 260), "Einfach. Effizient. Open Source.", pal.HeroMuted, layout.FontSmall)

	glass := layout.RGBA(255, 255, 255, 30)
	badges := []struct {
		x0, x1       int
		value, label string
	}{
		{40, 170, "24/7", "Verfügbar"},
		{190, 340, "100%", "Open Source"},
	}
	for _, b := range badges {
		c.RoundedRect(layout.Box(b.x0, 320, b.x1, 380), glass, 12)
		c.Text(pt(b.x0+20, 335), b.value, pal.Text, layout.FontBold)
		c.Text(pt(b.x0+20, 358), b.label, pal.HeroMuted, layout.FontTiny)
	}
}
