package models

import (
	"fmt"
	"strings"
	"time"
)

// Property identifies a monitored ryokan.
type Property string

const (
	Miyakowasure Property = "miyakowasure"
	Miyamaso     Property = "miyamaso"
)

var propertyAliases = map[string]Property{
	"miyakowasure": Miyakowasure,
	"miyamaso":     Miyamaso,
	"takamiya":     Miyamaso,
}

// ParseProperty resolves a user-supplied property name, accepting aliases.
func ParseProperty(s string) (Property, bool) {
	p, ok := propertyAliases[strings.ToLower(strings.TrimSpace(s))]
	return p, ok
}

// AllProperties returns every supported property in declaration order.
func AllProperties() []Property {
	return []Property{Miyakowasure, Miyamaso}
}

func (p Property) DisplayName() string {
	switch p {
	case Miyakowasure:
		return "Natsuse Onsen Miyakowasure"
	case Miyamaso:
		return "Miyamaso Takamiya (Zao Onsen)"
	}
	return string(p)
}

// RoomInfo describes a bookable room type within a property's catalog.
type RoomInfo interface {
	RoomID() string
	DisplayName() string
	MaxGuests() int
	HasPrivateOnsen() bool
}

// RoomAvailability is one observed fact about a room on a date range.
// Zero PricePerPerson or SpotsLeft means the value could not be extracted.
type RoomAvailability struct {
	Property       Property
	Room           RoomInfo
	CheckIn        time.Time
	CheckOut       time.Time
	Available      bool
	PricePerPerson int
	SpotsLeft      int
}

const dateLayout = "2006-01-02"

// Key is the composite dedup key used by the notification state store.
func (a RoomAvailability) Key() string {
	return fmt.Sprintf("%s:%s:%s:%s",
		a.Property, a.Room.RoomID(),
		a.CheckIn.Format(dateLayout), a.CheckOut.Format(dateLayout))
}

// CheckResult aggregates one property's check cycle. When Err is set,
// RoomsChecked is empty.
type CheckResult struct {
	Property     Property
	CheckTime    time.Time
	RoomsChecked []RoomAvailability
	Err          string
}

// AvailableRooms filters to available rooms, order preserved.
func (r *CheckResult) AvailableRooms() []RoomAvailability {
	var out []RoomAvailability
	for _, room := range r.RoomsChecked {
		if room.Available {
			out = append(out, room)
		}
	}
	return out
}
