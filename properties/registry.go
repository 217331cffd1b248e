package properties

import (
	"strings"
	"time"

	"ryokan_check/models"
)

// Engine names the booking system behind a property. Each engine needs its
// own scraping strategy because the two sites render nothing alike.
type Engine string

const (
	EngineYadosys Engine = "yadosys"
	EngineBan     Engine = "489ban"
)

// PropertyConfig binds a property to its catalog, URLs and scraping
// strategy. One instance per property, built once at package init and
// never mutated.
type PropertyConfig struct {
	Property           models.Property
	Engine             Engine
	BaseURL            string
	PlanListURL        string
	BookingURLTemplate string
	StateFilename      string

	// Per-person nightly price sanity band. Parsed prices outside the
	// band are treated as noise.
	PriceMin int
	PriceMax int

	rooms      []Room
	aliases    map[string]Room
	expansions map[string][]Room
}

var registry = map[models.Property]*PropertyConfig{
	models.Miyakowasure: {
		Property:           models.Miyakowasure,
		Engine:             EngineYadosys,
		BaseURL:            "https://www3.yadosys.com/reserve/en",
		PlanListURL:        "https://www3.yadosys.com/reserve/en/plan/list/147/fgeggchbebhjhbeogefegpdn/all",
		BookingURLTemplate: "https://www3.yadosys.com/reserve/en/room/list/147/fgeggchbebhjhbeogefegpdn/{room_id}",
		StateFilename:      "miyakowasure-state.json",
		PriceMin:           10000,
		PriceMax:           100000,
		rooms:              miyakowasureRooms,
		aliases:            miyakowasureAliases,
	},
	models.Miyamaso: {
		Property:           models.Miyamaso,
		Engine:             EngineBan,
		BaseURL:            "https://reserve.489ban.net/client/zao-takamiya/4",
		PlanListURL:        "https://reserve.489ban.net/client/zao-takamiya/4/plan/availability/room#content",
		BookingURLTemplate: "https://reserve.489ban.net/client/zao-takamiya/4/plan/room/{room_id}/stay?date={date}&roomCount=1",
		StateFilename:      "miyamaso-state.json",
		PriceMin:           15000,
		PriceMax:           150000,
		rooms:              miyamasoRooms,
		aliases:            miyamasoAliases,
		expansions:         miyamasoExpansions,
	},
}

// Get returns the configuration for a property.
func Get(p models.Property) (*PropertyConfig, bool) {
	cfg, ok := registry[p]
	return cfg, ok
}

// DisplayName mirrors the property's display name for callers that only
// hold a config.
func (c *PropertyConfig) DisplayName() string {
	return c.Property.DisplayName()
}

// Rooms returns the full catalog in declaration order.
func (c *PropertyConfig) Rooms() []models.RoomInfo {
	out := make([]models.RoomInfo, len(c.rooms))
	for i, r := range c.rooms {
		out[i] = r
	}
	return out
}

// ParseRoom resolves a user-supplied room name against this property's
// alias table. Aliases never resolve across catalogs.
func (c *PropertyConfig) ParseRoom(s string) (models.RoomInfo, bool) {
	r, ok := c.aliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return nil, false
	}
	return r, true
}

// ParseRooms resolves a room name, expanding family aliases to every
// sibling variant ("rian" means either Rian Sansui room). Unknown names
// yield an empty slice.
func (c *PropertyConfig) ParseRooms(s string) []models.RoomInfo {
	key := strings.ToLower(strings.TrimSpace(s))
	if rooms, ok := c.expansions[key]; ok {
		out := make([]models.RoomInfo, len(rooms))
		for i, r := range rooms {
			out[i] = r
		}
		return out
	}
	if r, ok := c.aliases[key]; ok {
		return []models.RoomInfo{r}
	}
	return nil
}

// BookingURL substitutes the room ID and check-in date into the
// property's booking URL template. No network access.
func (c *PropertyConfig) BookingURL(room models.RoomInfo, checkIn time.Time) string {
	r := strings.NewReplacer(
		"{room_id}", room.RoomID(),
		"{date}", checkIn.Format("2006-01-02"),
	)
	return r.Replace(c.BookingURLTemplate)
}
