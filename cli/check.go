package cli

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"ryokan_check/config"
	"ryokan_check/models"
	"ryokan_check/notify"
	"ryokan_check/properties"
	"ryokan_check/scheduler"
	"ryokan_check/scraper"
	"ryokan_check/state"
	"ryokan_check/storage"
)

func newCheckCmd() *cobra.Command {
	var (
		dateStr     string
		propStr     string
		roomStr     string
		nights      int
		guests      int
		intervalMin int
		ntfyTopic   string
		stateDir    string
		dbPath      string
		configPath  string
		headless    bool
		once        bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check room availability and poll until a room opens up",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.New()

			var fd *config.FileDefaults
			if configPath != "" {
				loaded, err := config.LoadFileDefaults(configPath)
				if err != nil {
					return err
				}
				fd = loaded
			}

			// Precedence: explicit flag > defaults file > environment.
			flags := cmd.Flags()
			if fd != nil {
				if dateStr == "" {
					dateStr = fd.Date
				}
				if !flags.Changed("property") && fd.Properties != "" {
					propStr = fd.Properties
				}
				if roomStr == "" {
					roomStr = fd.Rooms
				}
				if !flags.Changed("nights") && fd.Nights > 0 {
					nights = fd.Nights
				}
				if !flags.Changed("guests") && fd.Guests > 0 {
					guests = fd.Guests
				}
				if !flags.Changed("interval") && fd.IntervalMinutes > 0 {
					intervalMin = fd.IntervalMinutes
				}
				if ntfyTopic == "" {
					ntfyTopic = fd.NtfyTopic
				}
				if stateDir == "" {
					stateDir = fd.StateDir
				}
				if dbPath == "" {
					dbPath = fd.DBPath
				}
				if !flags.Changed("headless") && fd.Headless != nil {
					headless = *fd.Headless
				}
			}

			if dateStr == "" {
				return fmt.Errorf("check-in date is required (--date YYYY-MM-DD)")
			}
			checkIn, err := time.Parse("2006-01-02", dateStr)
			if err != nil {
				return fmt.Errorf("invalid date format %q, use YYYY-MM-DD", dateStr)
			}

			props, err := parseProperties(propStr)
			if err != nil {
				return err
			}

			cfg.CheckInDate = checkIn
			cfg.Nights = nights
			cfg.Guests = guests
			cfg.Interval = time.Duration(intervalMin) * time.Minute
			cfg.Properties = props
			cfg.Headless = headless
			if ntfyTopic != "" {
				cfg.NtfyTopic = ntfyTopic
			}
			if stateDir != "" {
				cfg.StateDir = stateDir
			}
			if dbPath != "" {
				cfg.DBPath = dbPath
			}

			if roomStr != "" {
				filter, err := parseRoomFilter(props, roomStr)
				if err != nil {
					return err
				}
				cfg.RoomFilter = filter
			}

			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("configuration error: %w", err)
			}

			home, _ := os.UserHomeDir()
			state.MigrateLegacy(cfg.StateDir, home)

			states := make(map[models.Property]*state.Store)
			for _, p := range cfg.Properties {
				st := state.NewStore(cfg.StateFileFor(p), state.DefaultCooldown)
				st.Load()
				states[p] = st
			}

			orch := scraper.NewOrchestrator(cfg)
			history, err := storage.NewHistoryStore(cfg.DBPath)
			if err != nil {
				log.Printf("Warning: check history disabled: %v", err)
			} else {
				defer history.Close()
				orch.SetHistory(history)
			}

			sched := scheduler.New(cfg, orch, states, buildNotifier(cfg))
			ctx := cmd.Context()

			if once {
				results := sched.RunOnce(ctx)
				printResults(cmd.OutOrStdout(), results)
				for _, r := range results {
					if r.Err != "" {
						return fmt.Errorf("check failed for %s: %s", r.Property, r.Err)
					}
				}
				return nil
			}
			return sched.Run(ctx)
		},
	}

	cmd.Flags().StringVarP(&dateStr, "date", "d", "", "Check-in date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&propStr, "property", "p", "all", "Property to check (miyakowasure, miyamaso, takamiya, all)")
	cmd.Flags().StringVarP(&roomStr, "room", "r", "", "Room filter (comma-separated, e.g. sakura,hinakura)")
	cmd.Flags().IntVarP(&nights, "nights", "n", 1, "Number of nights")
	cmd.Flags().IntVarP(&guests, "guests", "g", 2, "Number of guests")
	cmd.Flags().IntVarP(&intervalMin, "interval", "i", 30, "Check interval in minutes (minimum 15)")
	cmd.Flags().StringVar(&ntfyTopic, "ntfy-topic", "", "ntfy.sh topic for notifications (env NTFY_TOPIC)")
	cmd.Flags().StringVar(&stateDir, "state-dir", "", "Directory for notification state files")
	cmd.Flags().StringVar(&dbPath, "db", "", "Path to the check history database")
	cmd.Flags().StringVar(&configPath, "config", "", "Optional watch.yaml defaults file")
	cmd.Flags().BoolVar(&headless, "headless", true, "Run the browser headless")
	cmd.Flags().BoolVar(&once, "once", false, "Run a single check and exit")

	return cmd
}

func buildNotifier(cfg *config.Config) notify.Notifier {
	if cfg.NtfyTopic != "" {
		return notify.NewNtfy(cfg.NtfyServer, cfg.NtfyTopic)
	}
	if cfg.SMTP.Configured() {
		return notify.NewEmail(cfg.SMTP)
	}
	return nil
}

func parseProperties(s string) ([]models.Property, error) {
	if strings.EqualFold(strings.TrimSpace(s), "all") {
		return models.AllProperties(), nil
	}

	var props []models.Property
	for _, part := range strings.Split(s, ",") {
		p, ok := models.ParseProperty(part)
		if !ok {
			return nil, fmt.Errorf("unknown property %q (valid: miyakowasure, miyamaso, takamiya, all)", strings.TrimSpace(part))
		}
		if !containsProperty(props, p) {
			props = append(props, p)
		}
	}
	return props, nil
}

func containsProperty(props []models.Property, p models.Property) bool {
	for _, q := range props {
		if q == p {
			return true
		}
	}
	return false
}

// parseRoomFilter resolves the room filter per property. A name unknown
// to a property is an error when that property is the only one checked;
// with several properties the filter is simply skipped for the
// non-matching ones, since one filter string covers all catalogs.
func parseRoomFilter(props []models.Property, roomStr string) (map[models.Property][]models.RoomInfo, error) {
	filter := make(map[models.Property][]models.RoomInfo)

	for _, p := range props {
		pc, ok := properties.Get(p)
		if !ok {
			continue
		}

		var rooms []models.RoomInfo
		unknown := ""
		for _, part := range strings.Split(roomStr, ",") {
			resolved := pc.ParseRooms(part)
			if len(resolved) == 0 {
				unknown = strings.TrimSpace(part)
				break
			}
			for _, r := range resolved {
				if !containsRoom(rooms, r) {
					rooms = append(rooms, r)
				}
			}
		}

		if unknown != "" {
			if len(props) == 1 {
				var ids []string
				for _, r := range pc.Rooms() {
					ids = append(ids, r.RoomID())
				}
				return nil, fmt.Errorf("unknown room %q for %s (valid room IDs: %s)",
					unknown, p, strings.Join(ids, ", "))
			}
			continue
		}
		if len(rooms) > 0 {
			filter[p] = rooms
		}
	}
	return filter, nil
}

func containsRoom(rooms []models.RoomInfo, room models.RoomInfo) bool {
	for _, r := range rooms {
		if r.RoomID() == room.RoomID() {
			return true
		}
	}
	return false
}
