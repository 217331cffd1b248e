package notify

import (
	"fmt"
	"strings"

	"ryokan_check/models"
	"ryokan_check/properties"
)

// Subject builds the alert subject line, highlighting private-onsen
// rooms.
func Subject(a models.RoomAvailability) string {
	if a.Room.HasPrivateOnsen() {
		return fmt.Sprintf("%s: %s (Private Onsen!)", a.Property.DisplayName(), a.Room.DisplayName())
	}
	return fmt.Sprintf("%s: %s Available!", a.Property.DisplayName(), a.Room.DisplayName())
}

// Body formats the availability fact as a human-readable alert.
func Body(a models.RoomAvailability, prop *properties.PropertyConfig) string {
	priceStr := "Price TBD"
	if a.PricePerPerson > 0 {
		priceStr = fmt.Sprintf("%s/person", formatYen(a.PricePerPerson))
	}
	spotsStr := ""
	if a.SpotsLeft > 0 {
		spotsStr = fmt.Sprintf(" (%d left)", a.SpotsLeft)
	}
	onsenNote := ""
	if a.Room.HasPrivateOnsen() {
		onsenNote = "\nPrivate onsen bath in room!"
	}

	return fmt.Sprintf(
		"Room available at %s!%s\n\nRoom: %s\nDate: %s -> %s\nPrice: %s%s\n\nBook now: %s",
		a.Property.DisplayName(), onsenNote,
		a.Room.DisplayName(),
		a.CheckIn.Format("2006-01-02"), a.CheckOut.Format("2006-01-02"),
		priceStr, spotsStr,
		prop.BookingURL(a.Room, a.CheckIn),
	)
}

// formatYen renders 29700 as "29,700".
func formatYen(n int) string {
	s := fmt.Sprintf("%d", n)
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return strings.Join(parts, ",")
}
