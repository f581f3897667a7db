package screens

import (
	"fmt"

	"github.com/parkhub/parkshots/layout"
	"github.com/parkhub/parkshots/palette"
)

// SlotState is the visual state of a parking slot tile.
type SlotState int

const (
	SlotFree SlotState = iota
	SlotOccupied
	SlotSelected
)

func (s SlotState) String() string {
	switch s {
	case SlotFree:
		return "free"
	case SlotOccupied:
		return "occupied"
	case SlotSelected:
		return "selected"
	default:
		return fmt.Sprintf("SlotState(%d)", int(s))
	}
}

// ParkingSlot is a numbered tile in an occupancy grid.
type ParkingSlot struct {
	Index int
	State SlotState
}

// slotColors is the tile styling shared by the booking map and the phone view.
func slotColors(pal *palette.Palette, state SlotState) (fill, outline layout.Color) {
	switch state {
	case SlotFree:
		return layout.RGB(20, 50, 30), pal.Success
	case SlotSelected:
		return layout.RGB(30, 50, 80), pal.Primary
	default:
		return layout.RGB(50, 30, 30), pal.Danger
	}
}

// BookingStatus as shown in booking lists.
type BookingStatus string

const (
	BookingActive    BookingStatus = "Aktiv"
	BookingCompleted BookingStatus = "Beendet"
	BookingPlanned   BookingStatus = "Geplant"
)

func (s BookingStatus) color(pal *palette.Palette) layout.Color {
	switch s {
	case BookingActive:
		return pal.Success
	case BookingCompleted:
		return pal.Muted
	default:
		return pal.Primary
	}
}

// RecentBooking is a row of the recent-bookings list.
type RecentBooking struct {
	Holder string
	Slot   string
	Status BookingStatus
}

// Role of an application user.
type Role string

const (
	RoleUser    Role = "Benutzer"
	RoleManager Role = "Manager"
	RoleAdmin   Role = "Admin"
)

func (r Role) color(pal *palette.Palette) layout.Color {
	switch r {
	case RoleAdmin:
		return pal.Highlight
	case RoleManager:
		return pal.Primary
	default:
		return pal.Muted
	}
}

// UserStatus of an account.
type UserStatus string

const (
	UserActive   UserStatus = "Aktiv"
	UserInactive UserStatus = "Inaktiv"
)

func (s UserStatus) color(pal *palette.Palette) layout.Color {
	if s == UserActive {
		return pal.Success
	}
	return pal.Danger
}

// User is a row of the admin users table.
type User struct {
	Name   string
	Email  string
	Role   Role
	Status UserStatus
}

// Theme is a selectable colour theme.
type Theme struct {
	Name   string
	Accent layout.Color
}
