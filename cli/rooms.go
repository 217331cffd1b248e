package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"ryokan_check/models"
	"ryokan_check/properties"
)

func newRoomsCmd() *cobra.Command {
	var propStr string

	cmd := &cobra.Command{
		Use:   "rooms",
		Short: "List room types for a property",
		RunE: func(cmd *cobra.Command, args []string) error {
			props, err := parseProperties(propStr)
			if err != nil {
				return err
			}
			for _, p := range props {
				printCatalog(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&propStr, "property", "p", "all", "Property to list rooms for (miyakowasure, miyamaso, all)")
	return cmd
}

func printCatalog(w io.Writer, p models.Property) {
	pc, ok := properties.Get(p)
	if !ok {
		return
	}

	fmt.Fprintf(w, "%s\n", pc.DisplayName())
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tMAX GUESTS\tPRIVATE ONSEN")
	for _, room := range pc.Rooms() {
		onsen := "no"
		if room.HasPrivateOnsen() {
			onsen = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", room.RoomID(), room.DisplayName(), room.MaxGuests(), onsen)
	}
	tw.Flush()

	switch p {
	case models.Miyakowasure:
		fmt.Fprintln(w, "Use --room with: sakura, momiji, momiji-vip, momiji-twin, tsubaki, tsubaki-view")
	case models.Miyamaso:
		fmt.Fprintln(w, "Use --room with: hinakura, rian (both variants), rian-maisonette, rian-japanese")
	}
	fmt.Fprintln(w)
}
