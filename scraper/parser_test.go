package scraper

import (
	"os"
	"path/filepath"
	"testing"

	"ryokan_check/properties"
)

func loadFixture(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join("testdata", name)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read fixture %s: %v", name, err)
	}
	return string(data)
}

func TestParseYadosys_Available(t *testing.T) {
	content := loadFixture(t, "yadosys_results.html")

	res := parseYadosys(content, properties.SakuraRiver, 10000, 100000)
	if !res.available {
		t.Fatalf("expected SAKURA-KAN to be available")
	}
	if res.price != 25300 {
		t.Fatalf("expected price 25300, got %d", res.price)
	}
	if res.spotsLeft != 2 {
		t.Fatalf("expected 2 spots left, got %d", res.spotsLeft)
	}

	res = parseYadosys(content, properties.MomijiTwin, 10000, 100000)
	if !res.available {
		t.Fatalf("expected MOMIJI twin to be available")
	}
	if res.price != 27500 {
		t.Fatalf("expected price 27500, got %d", res.price)
	}
}

func TestParseYadosys_SoldOutBeatsPrice(t *testing.T) {
	content := loadFixture(t, "yadosys_soldout.html")

	res := parseYadosys(content, properties.SakuraRiver, 10000, 100000)
	if res.available {
		t.Fatalf("sold-out marker must win over a listed price")
	}
	if res.price != 0 {
		t.Fatalf("expected no price for sold-out room, got %d", res.price)
	}
}

func TestParseYadosys_PriceImpliesAvailable(t *testing.T) {
	content := loadFixture(t, "yadosys_price_only.html")

	res := parseYadosys(content, properties.SakuraRiver, 10000, 100000)
	if !res.available {
		t.Fatalf("in-band price with no markers should imply availability")
	}
	if res.price != 29700 {
		t.Fatalf("expected the bathing tax to be skipped and 29700 extracted, got %d", res.price)
	}
}

func TestParseYadosys_RoomNotOnPage(t *testing.T) {
	content := loadFixture(t, "yadosys_results.html")

	res := parseYadosys(content, properties.TsubakiView, 10000, 100000)
	if res.available || res.price != 0 {
		t.Fatalf("room absent from page must parse as unavailable, got %+v", res)
	}
}

func TestParseBan_Available(t *testing.T) {
	content := loadFixture(t, "ban_room_available.html")

	res := parseBan(content, properties.Hinakura, 15000, 150000)
	if !res.available {
		t.Fatalf("expected Hinakura to be available")
	}
	if res.price != 38500 {
		t.Fatalf("expected price 38500, got %d", res.price)
	}
}

func TestParseBan_SoldOut(t *testing.T) {
	content := loadFixture(t, "ban_room_soldout.html")

	res := parseBan(content, properties.Hinakura, 15000, 150000)
	if res.available {
		t.Fatalf("sold-out page must parse as unavailable")
	}
	if res.price != 0 {
		t.Fatalf("expected no price for sold-out room, got %d", res.price)
	}
}

func TestParseBan_BookingControlWithoutPrice(t *testing.T) {
	content := loadFixture(t, "ban_room_control_only.html")

	res := parseBan(content, properties.RianMaisonette, 15000, 150000)
	if !res.available {
		t.Fatalf("a details link should mark the room available")
	}
	if res.price != 0 {
		t.Fatalf("expected no extractable price, got %d", res.price)
	}
}

func TestParseBan_RoomNotOnPage(t *testing.T) {
	content := loadFixture(t, "ban_room_available.html")

	res := parseBan(content, properties.RianJapanese, 15000, 150000)
	if res.available {
		t.Fatalf("a different room's page must not mark this room available")
	}
}

func TestExtractPrice_Band(t *testing.T) {
	content := "Cleaning fee ¥500 applies. Plan price 45,000円 per person."

	if got := extractPrice(content, "", 15000, 150000); got != 45000 {
		t.Fatalf("expected out-of-band fee skipped and 45000 extracted, got %d", got)
	}
	if got := extractPrice("no prices here", "", 15000, 150000); got != 0 {
		t.Fatalf("expected 0 for priceless content, got %d", got)
	}
}

func TestHasBookingControl(t *testing.T) {
	withButton := `<html><body><button>Book Now</button></body></html>`
	if !hasBookingControl(withButton) {
		t.Fatalf("expected button text to register as a booking control")
	}

	withInput := `<html><body><input type="submit" value="予約"></body></html>`
	if !hasBookingControl(withInput) {
		t.Fatalf("expected input value to register as a booking control")
	}

	// Marker words in prose must not count, only clickable elements.
	prose := `<html><body><p>Please reserve by phone.</p></body></html>`
	if hasBookingControl(prose) {
		t.Fatalf("prose mention of reserve must not register as a control")
	}
}
