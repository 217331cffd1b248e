package properties

// Rooms at Miyamaso Takamiya (489ban.net booking engine). The hotel has
// nine room types but only these three have genuine natural hot spring
// water in their private baths, so only these are monitored.
var (
	// Detached villa, 110 m2, the only room in Zao Onsen with a real
	// in-room open-air onsen.
	Hinakura = Room{
		ID:           "25112",
		Name:         "HINAKURA Villa (Private Onsen Suite, 110m2)",
		JapaneseName: "離れ・雛蔵",
		Guests:       4,
		PrivateOnsen: true,
	}
	// Ken Okuyama designed suite, two variants of the same plan.
	RianMaisonette = Room{
		ID:           "25114",
		Name:         "Rian Sansui Maisonette (Private Onsen, 51m2)",
		JapaneseName: "離庵 山水 (メゾネット)",
		Guests:       4,
		PrivateOnsen: true,
	}
	RianJapanese = Room{
		ID:           "25113",
		Name:         "Rian Sansui Japanese (Private Onsen, 51m2)",
		JapaneseName: "離庵 山水 (和室)",
		Guests:       4,
		PrivateOnsen: true,
	}
)

var miyamasoRooms = []Room{
	Hinakura,
	RianMaisonette,
	RianJapanese,
}

// Bare "rian" resolves to the maisonette; ParseRooms expands the rian
// family to both variants since a caller wanting one usually wants either.
var miyamasoAliases = map[string]Room{
	"hinakura":        Hinakura,
	"hina":            Hinakura,
	"villa":           Hinakura,
	"rian":            RianMaisonette,
	"rian-sansui":     RianMaisonette,
	"rian_sansui":     RianMaisonette,
	"sansui":          RianMaisonette,
	"rian-maisonette": RianMaisonette,
	"rian_maisonette": RianMaisonette,
	"maisonette":      RianMaisonette,
	"rian-japanese":   RianJapanese,
	"rian_japanese":   RianJapanese,
	"rian-jp":         RianJapanese,
}

var miyamasoExpansions = map[string][]Room{
	"rian":        {RianMaisonette, RianJapanese},
	"rian-sansui": {RianMaisonette, RianJapanese},
	"rian_sansui": {RianMaisonette, RianJapanese},
	"sansui":      {RianMaisonette, RianJapanese},
}
