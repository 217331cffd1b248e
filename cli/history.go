package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"ryokan_check/config"
	"ryokan_check/storage"
)

func newHistoryCmd() *cobra.Command {
	var (
		dbPath string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent check runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dbPath == "" {
				dbPath = config.New().DBPath
			}

			store, err := storage.NewHistoryStore(dbPath)
			if err != nil {
				return fmt.Errorf("open history database: %w", err)
			}
			defer store.Close()

			runs, err := store.RecentRuns(limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No check runs recorded yet.")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TIME\tPROPERTY\tCHECKED\tAVAILABLE\tERROR")
			for _, run := range runs {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n",
					run.CheckedAt.Format("2006-01-02 15:04"),
					run.Property, run.RoomsChecked, run.RoomsAvailable, run.Err)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "Path to the check history database")
	cmd.Flags().IntVar(&limit, "limit", 20, "Number of runs to show")
	return cmd
}
