package screens

import (
	"fmt"

	"github.com/parkhub/parkshots/layout"
	"github.com/parkhub/parkshots/palette"
)

// Phone frame size and its position on the mobile screen.
const (
	PhoneWidth  = 240
	PhoneHeight = 460
	phoneX      = 280
	phoneY      = 20

	phoneGridSize = 3
	phoneOccupied = 5
)

func phoneSlot(index int) ParkingSlot {
	state := SlotFree
	if index < phoneOccupied {
		state = SlotOccupied
	}
	return ParkingSlot{Index: index, State: state}
}

// Mobile draws the phone frame between two capability captions.
func Mobile(pal *palette.Palette) *layout.Canvas {
	c := newScreen(pal)
	c.Place(pt(phoneX, phoneY), phoneFrame(pal))

	c.Text(pt(60, 100), "PWA-fähig", pal.Text, layout.FontTitle)
	c.Text(pt(60, 135), "Installierbar auf", pal.Muted, layout.FontSmall)
	c.Text(pt(60, 158), "jedem Gerät", pal.Muted, layout.FontSmall)

	c.Text(pt(560, 100), "Responsive", pal.Text, layout.FontTitle)
	c.Text(pt(560, 135), "Optimiert für", pal.Muted, layout.FontSmall)
	c.Text(pt(560, 158), "alle Bildschirme", pal.Muted, layout.FontSmall)
	return c
}

// phoneFrame composes the handset on its own transparent canvas in local
// coordinates.
func phoneFrame(pal *palette.Palette) *layout.Canvas {
	p := layout.NewCanvas(PhoneWidth, PhoneHeight, layout.Color{})
	w, h := PhoneWidth, PhoneHeight

	p.OutlinedRoundedRect(layout.Box(0, 0, w, h), pal.PhoneFrame, 24, pal.CardBorder)
	p.Text(pt(15, 10), "9:41", pal.Text, layout.FontTiny)

	p.RoundedRect(layout.Box(8, 28, w-8, 68), pal.Surface, 10)
	p.RoundedRect(layout.Box(16, 35, 46, 60), pal.Primary, 6)
	p.Text(pt(20, 40), "PH", pal.Text, layout.FontSmall)
	p.Text(pt(54, 42), "ParkHub", pal.Text, layout.FontSmall)

	for i, tile := range []struct{ value, label string }{{"6", "Frei"}, {"18", "Belegt"}} {
		x := 20 + i*110
		p.OutlinedRoundedRect(layout.Box(x, 78, x+95, 128), pal.Surface, 8, pal.CardBorder)
		p.Text(pt(x+10, 84), tile.value, pal.Primary, layout.FontBold)
		p.Text(pt(x+10, 106), tile.label, pal.Muted, layout.FontTiny)
	}

	p.Text(pt(16, 140), "Stellplätze", pal.Text, layout.FontSmall)
	for r := 0; r < phoneGridSize; r++ {
		for col := 0; col < phoneGridSize; col++ {
			x, y := 16+col*72, 165+r*52
			slot := phoneSlot(r*phoneGridSize + col)
			fill, outline := slotColors(pal, slot.State)
			p.OutlinedRoundedRect(layout.Box(x, y, x+64, y+42), fill, 6, outline)
			p.Text(pt(x+18, y+14), fmt.Sprintf("P%d", slot.Index+1), outline, layout.FontTiny)
		}
	}

	p.RoundedRect(layout.Box(8, h-52, w-8, h-8), pal.Surface, 10)
	for i, item := range []string{"Home", "Buchen", "Profil"} {
		col := pal.Muted
		if i == 0 {
			col = pal.Primary
		}
		p.Text(pt(30+i*75, h-38), item, col, layout.FontTiny)
	}
	return p
}
