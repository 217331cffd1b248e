package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"ryokan_check/models"
)

// printResults renders one status table per property check.
func printResults(w io.Writer, results []*models.CheckResult) {
	for _, result := range results {
		fmt.Fprintf(w, "%s\n", result.Property.DisplayName())

		if result.Err != "" {
			fmt.Fprintf(w, "  Error: %s\n\n", result.Err)
			continue
		}

		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ROOM\tSTATUS\tPRICE\tPRIVATE ONSEN")
		for _, room := range result.RoomsChecked {
			status := "Unavailable"
			if room.Available {
				status = "Available"
			}
			price := "-"
			if room.PricePerPerson > 0 {
				price = fmt.Sprintf("%d", room.PricePerPerson)
			}
			onsen := "no"
			if room.Room.HasPrivateOnsen() {
				onsen = "yes"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", room.Room.DisplayName(), status, price, onsen)
		}
		tw.Flush()
		fmt.Fprintln(w)
	}
}
