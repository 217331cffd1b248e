package scraper

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/playwright-community/playwright-go"

	"ryokan_check/config"
	"ryokan_check/models"
	"ryokan_check/properties"
)

// YadosysHandler checks Miyakowasure via the Yadosys booking engine: one
// search-form submission yields a shared results page that is parsed once
// per room.
type YadosysHandler struct {
	cfg  *config.Config
	prop *properties.PropertyConfig
}

func NewYadosysHandler(cfg *config.Config, prop *properties.PropertyConfig) *YadosysHandler {
	return &YadosysHandler{cfg: cfg, prop: prop}
}

func (h *YadosysHandler) Property() models.Property {
	return h.prop.Property
}

func (h *YadosysHandler) Check(ctx context.Context) ([]models.RoomAvailability, error) {
	browser := NewBrowser(h.cfg.Headless)
	if err := browser.Start(); err != nil {
		return nil, err
	}
	defer browser.Close()

	page, err := browser.NewPage()
	if err != nil {
		return nil, err
	}
	defer page.Close()

	if _, err := page.Goto(h.prop.PlanListURL, playwright.PageGotoOptions{
		Timeout:   playwright.Float(pageLoadTimeoutMs),
		WaitUntil: playwright.WaitUntilStateNetworkidle,
	}); err != nil {
		return nil, fmt.Errorf("navigate to %s: %w", h.prop.PlanListURL, err)
	}
	page.WaitForTimeout(2000)

	h.fillSearchForm(page)
	h.submitAndWait(page)

	content, err := page.Content()
	if err != nil {
		return nil, fmt.Errorf("read results page: %w", err)
	}

	var results []models.RoomAvailability
	for _, room := range h.cfg.RoomsToCheck(h.prop.Property) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res := parseYadosys(content, room, h.prop.PriceMin, h.prop.PriceMax)
		results = append(results, models.RoomAvailability{
			Property:       h.prop.Property,
			Room:           room,
			CheckIn:        h.cfg.CheckInDate,
			CheckOut:       h.cfg.CheckOutDate(),
			Available:      res.available,
			PricePerPerson: res.price,
			SpotsLeft:      res.spotsLeft,
		})
	}
	return results, nil
}

// fillSearchForm sets date, nights and guest counts. Yadosys form field
// names drift between skins, so every selector is best-effort.
func (h *YadosysHandler) fillSearchForm(page playwright.Page) {
	checkIn := h.cfg.CheckInDate

	selectFirst(page, `select[name*="year"], select[id*="year"]`, strconv.Itoa(checkIn.Year()))
	selectFirst(page, `select[name*="month"], select[id*="month"]`, strconv.Itoa(int(checkIn.Month())))
	selectFirst(page, `select[name*="day"], select[id*="day"]`, strconv.Itoa(checkIn.Day()))
	selectFirst(page, `select[name*="night"], select[name*="stay"]`, strconv.Itoa(h.cfg.Nights))

	// Guest fields can be selects or inputs depending on skin. All guests
	// go in the first (male) field, the second stays zero.
	fillGuestField(page, `select[name*="male"], input[name*="male"]`, strconv.Itoa(h.cfg.Guests))
	fillGuestField(page, `select[name*="female"], input[name*="female"]`, "0")
}

func (h *YadosysHandler) submitAndWait(page playwright.Page) {
	btn := page.Locator(
		`input[type="submit"], button[type="submit"], ` +
			`input[value*="Search"], input[value*="検索"], ` +
			`button:has-text("Search"), button:has-text("検索")`).First()

	if n, err := btn.Count(); err != nil || n == 0 {
		return
	}
	if err := btn.Click(); err != nil {
		log.Printf("Yadosys: search submit failed: %v", err)
		return
	}
	page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State: playwright.LoadStateNetworkidle,
	})
	page.WaitForTimeout(2000)
}

func selectFirst(page playwright.Page, selector, value string) {
	loc := page.Locator(selector).First()
	if n, err := loc.Count(); err != nil || n == 0 {
		return
	}
	loc.SelectOption(playwright.SelectOptionValues{
		Values: playwright.StringSlice(value),
	})
}

func fillGuestField(page playwright.Page, selector, value string) {
	loc := page.Locator(selector).First()
	if n, err := loc.Count(); err != nil || n == 0 {
		return
	}
	if tag, err := loc.Evaluate("el => el.tagName", nil); err == nil && tag == "SELECT" {
		loc.SelectOption(playwright.SelectOptionValues{
			Values: playwright.StringSlice(value),
		})
		return
	}
	loc.Fill(value)
}
