package screens

import (
	"fmt"

	"github.com/parkhub/parkshots/layout"
	"github.com/parkhub/parkshots/palette"
	"github.com/parkhub/parkshots/widgets"
)

const (
	dashboardRows     = 4
	dashboardCols     = 6
	dashboardOccupied = 18
)

var recentBookings = []RecentBooking{
	{Holder: "Max M.", Slot: "P03", Status: BookingActive},
	{Holder: "Anna S.", Slot: "P12", Status: BookingActive},
	{Holder: "Tom K.", Slot: "P07", Status: BookingCompleted},
	{Holder: "Lisa R.", Slot: "P21", Status: BookingPlanned},
}

// dashboardSlot fills the first 18 slots in reading order.
func dashboardSlot(index int) ParkingSlot {
	state := SlotFree
	if index < dashboardOccupied {
		state = SlotOccupied
	}
	return ParkingSlot{Index: index, State: state}
}

// Dashboard draws the overview: stat cards, occupancy grid, recent bookings.
func Dashboard(pal *palette.Palette) *layout.Canvas {
	c := newScreen(pal)
	widgets.Navbar(c, pal, "ParkHub", widgets.SectionDashboard)
	widgets.Sidebar(c, pal, widgets.SectionDashboard)

	stats := []struct {
		label, value string
		color        layout.Color
	}{
		{"Stellplätze", "24", pal.Success},
		{"Belegt", "18", pal.Danger},
		{"Frei", "6", pal.Primary},
		{"Buchungen", "142", pal.Highlight},
	}
	for i, s := range stats {
		x := widgets.ContentLeft + i*145
		c.OutlinedRoundedRect(layout.Box(x, 72, x+132, 142), pal.Surface, 10, pal.CardBorder)
		c.Text(pt(x+12, 82), s.label, pal.Muted, layout.FontTiny)
		c.Text(pt(x+12, 102), s.value, s.color, layout.FontLarge)
	}

	c.OutlinedRoundedRect(layout.Box(220, 158, 560, 440), pal.Surface, 10, pal.CardBorder)
	c.Text(pt(236, 168), "Parkplatzbelegung", pal.Text, layout.FontBold)
	for r := 0; r < dashboardRows; r++ {
		for col := 0; col < dashboardCols; col++ {
			x, y := 240+col*50, 205+r*55
			slot := dashboardSlot(r*dashboardCols + col)
			label := fmt.Sprintf("P%02d", slot.Index+1)
			if slot.State == SlotOccupied {
				c.OutlinedRoundedRect(layout.Box(x, y, x+40, y+42), layout.RGBA(239, 68, 68, 100), 6, pal.Danger)
				c.Text(pt(x+10, y+14), label, pal.Text, layout.FontTiny)
				continue
			}
			c.OutlinedRoundedRect(layout.Box(x, y, x+40, y+42), layout.RGB(30, 60, 40), 6, pal.Success)
			c.Text(pt(x+10, y+14), label, pal.Success, layout.FontTiny)
		}
	}

	c.OutlinedRoundedRect(layout.Box(575, 158, 785, 440), pal.Surface, 10, pal.CardBorder)
	c.Text(pt(591, 168), "Letzte Buchungen", pal.Text, layout.FontBold)
	for i, b := range recentBookings {
		y := 200 + i*55
		c.Text(pt(591, y), b.Holder, pal.Text, layout.FontSmall)
		c.Text(pt(591, y+20), b.Slot, pal.Muted, layout.FontTiny)
		c.Text(pt(710, y+5), string(b.Status), b.Status.color(pal), layout.FontTiny)
	}
	return c
}
