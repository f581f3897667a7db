// Package widgets holds the navigation chrome shared by the desktop screens.
package widgets

import (
	"github.com/parkhub/parkshots/layout"
	"github.com/parkhub/parkshots/palette"
)

// Section identifies a navigation destination. The zero value highlights nothing.
type Section int

const (
	SectionNone Section = iota
	SectionDashboard
	SectionBookings
	SectionVehicles
	SectionHomeOffice
	SectionProfile
	SectionAdmin
)

var sectionLabels = map[Section]string{
	SectionDashboard:  "Dashboard",
	SectionBookings:   "Buchungen",
	SectionVehicles:   "Fahrzeuge",
	SectionHomeOffice: "Homeoffice",
	SectionProfile:    "Profil",
	SectionAdmin:      "Admin",
}

// Label returns the German menu label.
func (s Section) Label() string { return sectionLabels[s] }

// Fixed chrome geometry.
const (
	NavbarHeight = 56
	SidebarWidth = 200
	// ContentLeft is the first free x coordinate right of the sidebar.
	ContentLeft = 220
)

const (
	navItemsX    = 300
	navItemsStep = 100
)

var navItems = []Section{SectionDashboard, SectionBookings, SectionProfile, SectionAdmin}

var sidebarEntries = []struct {
	section Section
	y       int
}{
	{SectionDashboard, 80},
	{SectionBookings, 115},
	{SectionVehicles, 150},
	{SectionHomeOffice, 185},
	{SectionProfile, 220},
	{SectionAdmin, 270},
}

// Navbar draws the top bar: logo mark, title and the navigation labels.
// The label of active is drawn in the primary colour, all others muted.
func Navbar(c *layout.Canvas, pal *palette.Palette, title string, active Section) {
	c.RoundedRect(layout.Box(0, 0, c.Width, NavbarHeight), pal.Surface, 12)
	c.RoundedRect(layout.Box(16, 10, 52, 46), pal.Primary, 8)
	c.Text(layout.Point{X: 22, Y: 14}, "PH", pal.Text, layout.FontBold)
	c.Text(layout.Point{X: 62, Y: 16}, title, pal.Text, layout.FontBold)

	x := navItemsX
	for _, item := range navItems {
		col := pal.Muted
		if item == active {
			col = pal.Primary
		}
		c.Text(layout.Point{X: x, Y: 18}, item.Label(), col, layout.FontSmall)
		x += navItemsStep
	}
}

// Sidebar draws the left panel below the navbar. The entry for active gets a
// filled primary highlight behind a white label.
func Sidebar(c *layout.Canvas, pal *palette.Palette, active Section) {
	c.RoundedRect(layout.Box(0, NavbarHeight, SidebarWidth, c.Height), pal.SurfaceAlt, 12)
	for _, entry := range sidebarEntries {
		at := layout.Point{X: 20, Y: entry.y}
		if entry.section == active {
			c.RoundedRect(layout.Box(8, entry.y-4, SidebarWidth-8, entry.y+26), pal.Primary, 8)
			c.Text(at, entry.section.Label(), pal.Text, layout.FontSmall)
			continue
		}
		c.Text(at, entry.section.Label(), pal.Muted, layout.FontSmall)
	}
}
