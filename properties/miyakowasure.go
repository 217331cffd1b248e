package properties

// Rooms at Miyakowasure (Yadosys booking engine). IDs are Yadosys room
// codes. Only shared onsen at this property.
var (
	TsubakiView = Room{
		ID:        "00008",
		Name:      "TSUBAKI-KAN (Room with a view)",
		Guests:    3,
		BasePrice: 29000,
	}
	MomijiVIP = Room{
		ID:        "00006",
		Name:      "MOMIJI-KAN VIP ROOM",
		Guests:    4,
		BasePrice: 30000,
	}
	MomijiTwin = Room{
		ID:        "00007",
		Name:      "MOMIJI-KAN Western twin bed",
		Guests:    2,
		BasePrice: 27000,
	}
	MomijiRiver = Room{
		ID:        "00005",
		Name:      "MOMIJI-KAN (river view)",
		Guests:    2,
		BasePrice: 27000,
	}
	SakuraRiver = Room{
		ID:        "00001",
		Name:      "SAKURA-KAN (river view)",
		Guests:    3,
		BasePrice: 25000,
	}
	TsubakiToilet = Room{
		ID:        "00002",
		Name:      "TSUBAKI-KAN (private toilet)",
		Guests:    2,
		BasePrice: 19500,
	}
)

var miyakowasureRooms = []Room{
	TsubakiView,
	MomijiVIP,
	MomijiTwin,
	MomijiRiver,
	SakuraRiver,
	TsubakiToilet,
}

var miyakowasureAliases = map[string]Room{
	"tsubaki-view":   TsubakiView,
	"tsubaki_view":   TsubakiView,
	"momiji-vip":     MomijiVIP,
	"momiji_vip":     MomijiVIP,
	"vip":            MomijiVIP,
	"momiji-twin":    MomijiTwin,
	"momiji_twin":    MomijiTwin,
	"twin":           MomijiTwin,
	"momiji-river":   MomijiRiver,
	"momiji_river":   MomijiRiver,
	"momiji":         MomijiRiver,
	"sakura-river":   SakuraRiver,
	"sakura_river":   SakuraRiver,
	"sakura":         SakuraRiver,
	"tsubaki-toilet": TsubakiToilet,
	"tsubaki_toilet": TsubakiToilet,
	"tsubaki":        TsubakiToilet,
}
