package scraper

import (
	"context"
	"log"

	"github.com/playwright-community/playwright-go"

	"ryokan_check/config"
	"ryokan_check/models"
	"ryokan_check/properties"
)

// BanHandler checks Miyamaso via the 489ban.net booking engine, which
// only exposes per-room detail URLs: one page load per room.
type BanHandler struct {
	cfg  *config.Config
	prop *properties.PropertyConfig
}

func NewBanHandler(cfg *config.Config, prop *properties.PropertyConfig) *BanHandler {
	return &BanHandler{cfg: cfg, prop: prop}
}

func (h *BanHandler) Property() models.Property {
	return h.prop.Property
}

func (h *BanHandler) Check(ctx context.Context) ([]models.RoomAvailability, error) {
	browser := NewBrowser(h.cfg.Headless)
	if err := browser.Start(); err != nil {
		return nil, err
	}
	defer browser.Close()

	var results []models.RoomAvailability
	for _, room := range h.cfg.RoomsToCheck(h.prop.Property) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		results = append(results, h.checkRoom(browser, room))
	}
	return results, nil
}

// checkRoom loads one room's detail page. Navigation or render failures
// report the room as unavailable rather than aborting the other rooms.
func (h *BanHandler) checkRoom(browser *Browser, room models.RoomInfo) models.RoomAvailability {
	avail := models.RoomAvailability{
		Property: h.prop.Property,
		Room:     room,
		CheckIn:  h.cfg.CheckInDate,
		CheckOut: h.cfg.CheckOutDate(),
	}

	page, err := browser.NewPage()
	if err != nil {
		log.Printf("489ban: %s: %v", room.DisplayName(), err)
		return avail
	}
	defer page.Close()

	url := h.prop.BookingURL(room, h.cfg.CheckInDate)
	if _, err := page.Goto(url, playwright.PageGotoOptions{
		Timeout:   playwright.Float(pageLoadTimeoutMs),
		WaitUntil: playwright.WaitUntilStateNetworkidle,
	}); err != nil {
		log.Printf("489ban: %s: navigation failed: %v", room.DisplayName(), err)
		return avail
	}

	// The plan cards render client-side after networkidle.
	page.WaitForTimeout(3000)

	content, err := page.Content()
	if err != nil {
		log.Printf("489ban: %s: read page failed: %v", room.DisplayName(), err)
		return avail
	}

	res := parseBan(content, room, h.prop.PriceMin, h.prop.PriceMax)
	avail.Available = res.available
	avail.PricePerPerson = res.price
	return avail
}
