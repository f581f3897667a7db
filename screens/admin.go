package screens

import (
	"github.com/parkhub/parkshots/layout"
	"github.com/parkhub/parkshots/palette"
	"github.com/parkhub/parkshots/widgets"
)

var adminTabs = []string{"Benutzer", "Stellplätze", "Berichte", "Branding", "System"}

var adminUsers = []User{
	{Name: "Max Mustermann", Email: "max@firma.de", Role: RoleUser, Status: UserActive},
	{Name: "Anna Schmidt", Email: "anna@firma.de", Role: RoleAdmin, Status: UserActive},
	{Name: "Tom Krause", Email: "tom@firma.de", Role: RoleUser, Status: UserInactive},
	{Name: "Lisa Richter", Email: "lisa@firma.de", Role: RoleUser, Status: UserActive},
	{Name: "Jan Weber", Email: "jan@firma.de", Role: RoleManager, Status: UserActive},
}

// Column x positions of the users table.
var adminColumns = [4]int{240, 380, 540, 660}

// Admin draws the administration area with the users tab open.
func Admin(pal *palette.Palette) *layout.Canvas {
	c := newScreen(pal)
	widgets.Navbar(c, pal, "ParkHub", widgets.SectionAdmin)
	widgets.Sidebar(c, pal, widgets.SectionAdmin)
	c.Text(pt(220, 72), "Administration", pal.Text, layout.FontTitle)

	x := 220
	for i, tab := range adminTabs {
		col := pal.Muted
		if i == 0 {
			c.RoundedRect(layout.Box(x, 108, x+90, 134), pal.Primary, 6)
			col = pal.Text
		}
		c.Text(pt(x+10, 112), tab, col, layout.FontSmall)
		x += 100
	}

	c.OutlinedRoundedRect(layout.Box(220, 150, 785, 440), pal.Surface, 10, pal.CardBorder)
	c.Text(pt(236, 160), "Benutzer (47)", pal.Text, layout.FontBold)
	for i, h := range []string{"Name", "E-Mail", "Rolle", "Status"} {
		c.Text(pt(adminColumns[i], 195), h, pal.Muted, layout.FontTiny)
	}
	c.Line(pt(236, 215), pt(770, 215), pal.CardBorder)

	for i, u := range adminUsers {
		y := 225 + i*38
		c.Text(pt(adminColumns[0], y), u.Name, pal.Text, layout.FontSmall)
		c.Text(pt(adminColumns[1], y), u.Email, pal.Muted, layout.FontSmall)
		c.Text(pt(adminColumns[2], y), string(u.Role), u.Role.color(pal), layout.FontSmall)
		c.Text(pt(adminColumns[3], y), string(u.Status), u.Status.color(pal), layout.FontSmall)
		if i < len(adminUsers)-1 {
			c.Line(pt(236, y+30), pt(770, y+30), pal.Surface)
		}
	}
	return c
}
