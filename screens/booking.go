package screens

import (
	"fmt"
	"slices"

	"github.com/parkhub/parkshots/layout"
	"github.com/parkhub/parkshots/palette"
	"github.com/parkhub/parkshots/widgets"
)

const (
	bookingRows = 3
	bookingCols = 8
)

// Literal membership lists; every other slot renders occupied.
var (
	bookingFree     = []int{2, 5, 9, 14, 18, 20}
	bookingSelected = []int{7}
)

// bookingSlot decides a tile's state: free list first, then the selection,
// which always wins over the default occupied state.
func bookingSlot(index int) ParkingSlot {
	state := SlotOccupied
	switch {
	case slices.Contains(bookingFree, index):
		state = SlotFree
	case slices.Contains(bookingSelected, index):
		state = SlotSelected
	}
	return ParkingSlot{Index: index, State: state}
}

// Booking draws the slot reservation screen for garage A.
func Booking(pal *palette.Palette) *layout.Canvas {
	c := newScreen(pal)
	widgets.Navbar(c, pal, "ParkHub", widgets.SectionBookings)
	widgets.Sidebar(c, pal, widgets.SectionBookings)

	c.Text(pt(220, 72), "Stellplatz buchen", pal.Text, layout.FontTitle)
	c.Text(pt(220, 102), "Wählen Sie einen freien Stellplatz", pal.Muted, layout.FontSmall)

	c.OutlinedRoundedRect(layout.Box(220, 135, 500, 175), pal.Surface, 8, pal.CardBorder)
	c.Text(pt(235, 147), "Datum:  08.02.2026", pal.Subtle, layout.FontSmall)
	c.OutlinedRoundedRect(layout.Box(515, 135, 700, 175), pal.Surface, 8, pal.CardBorder)
	c.Text(pt(530, 147), "08:00 - 18:00", pal.Subtle, layout.FontSmall)

	c.OutlinedRoundedRect(layout.Box(220, 190, 785, 440), pal.Surface, 10, pal.CardBorder)
	c.Text(pt(236, 200), "Parkplatz A - Tiefgarage", pal.Text, layout.FontBold)
	for r := 0; r < bookingRows; r++ {
		for col := 0; col < bookingCols; col++ {
			x, y := 240+col*65, 240+r*60
			slot := bookingSlot(r*bookingCols + col)
			fill, outline := slotColors(pal, slot.State)
			c.OutlinedRoundedRect(layout.Box(x, y, x+55, y+48), fill, 6, outline)
			c.Text(pt(x+12, y+16), fmt.Sprintf("A%02d", slot.Index+1), outline, layout.FontSmall)
		}
	}

	c.RoundedRect(layout.Box(240, 430, 500, 460), pal.Primary, 8)
	c.Text(pt(260, 435), fmt.Sprintf("A%02d buchen - Bestätigen", bookingSelected[0]+1), pal.Text, layout.FontSmall)
	return c
}
