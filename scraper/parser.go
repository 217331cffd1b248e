package scraper

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"ryokan_check/models"
	"ryokan_check/properties"
)

// The booking sites have no API and no stable markup, so availability is
// inferred from layered textual heuristics. Precedence is fixed:
// unavailability markers beat positive markers, which beat the
// price-implied fallback. The fallback (a plausible price with no
// explicit marker) can misfire on pages showing unrelated prices; that is
// a known trade-off, kept because the sites often omit any textual
// availability signal.

type parseResult struct {
	available bool
	price     int
	spotsLeft int
}

// Marker sets are lowercase; ASCII comparisons happen against lowered
// content.
var (
	yadosysUnavailableMarkers = []string{"×", "満室", "sold out", "unavailable", "no vacancy", "完売", "予約できません"}
	yadosysAvailableMarkers   = []string{"○", "◎", "空室", "available", "vacancy"}

	banUnavailableMarkers = []string{"sold out", "no vacancy", "満室", "完売", "予約できません", "this plan is sold out"}
	banControlMarkers     = []string{"book now", "reserve", "reservations", "details", "予約", "詳細"}
)

var spotsPattern = regexp.MustCompile(`(?i)(\d+)\s*(?:rooms?|left|remaining|組|室)`)

// parseYadosys decides availability for one room on the shared Yadosys
// search-results page.
func parseYadosys(content string, room models.RoomInfo, priceMin, priceMax int) parseResult {
	name := room.DisplayName()
	lower := strings.ToLower(content)

	if !strings.Contains(lower, strings.ToLower(name)) && !strings.Contains(content, room.RoomID()) {
		return parseResult{}
	}

	for _, marker := range yadosysUnavailableMarkers {
		if markerNear(content, name, marker) {
			return parseResult{}
		}
	}

	var res parseResult
	for _, marker := range yadosysAvailableMarkers {
		if strings.Contains(lower, marker) {
			res.available = true
			break
		}
	}

	res.price = extractPrice(content, name, priceMin, priceMax)
	if !res.available && res.price > 0 {
		res.available = true
	}

	if m := spotsPattern.FindStringSubmatch(content); m != nil {
		res.spotsLeft, _ = strconv.Atoi(m[1])
	}

	return res
}

// parseBan decides availability from a 489ban room detail page. The page
// is per-room, so price patterns need no anchoring; spots-left is not
// shown by this engine.
func parseBan(content string, room models.RoomInfo, priceMin, priceMax int) parseResult {
	lower := strings.ToLower(content)

	present := strings.Contains(lower, strings.ToLower(room.DisplayName())) ||
		strings.Contains(content, room.RoomID())
	if r, ok := room.(properties.Room); ok && r.JapaneseName != "" {
		present = present || strings.Contains(content, r.JapaneseName)
	}
	if !present {
		return parseResult{}
	}

	for _, marker := range banUnavailableMarkers {
		if strings.Contains(lower, marker) {
			return parseResult{}
		}
	}

	var res parseResult
	if hasBookingControl(content) {
		res.available = true
	}

	res.price = extractPrice(content, "", priceMin, priceMax)
	if !res.available && res.price > 0 {
		res.available = true
	}

	return res
}

// markerNear matches marker and room name in either order within the same
// content window, across line breaks.
func markerNear(content, name, marker string) bool {
	qn := regexp.QuoteMeta(name)
	qm := regexp.QuoteMeta(marker)
	re, err := regexp.Compile(`(?is)` + qn + `.*?` + qm + `|` + qm + `.*?` + qn)
	if err != nil {
		return false
	}
	return re.MatchString(content)
}

// extractPrice tries anchored patterns near the room name first, then
// unanchored fallbacks. The first match inside the sanity band wins; an
// out-of-band value discards its pattern and the next one is tried.
func extractPrice(content, anchor string, min, max int) int {
	var patterns []string
	if anchor != "" {
		q := regexp.QuoteMeta(anchor)
		patterns = append(patterns,
			`(?is)`+q+`.*?[¥￥]([0-9,]+)`,
			`(?is)[¥￥]([0-9,]+).*?`+q,
		)
	}
	patterns = append(patterns,
		`[¥￥]([0-9,]+)`,
		`(?i)([0-9,]+)\s*JPY`,
		`([0-9,]+)\s*円`,
	)

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			continue
		}
		m := re.FindStringSubmatch(content)
		if m == nil {
			continue
		}
		price, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
		if err != nil {
			continue
		}
		if price >= min && price <= max {
			return price
		}
	}
	return 0
}

// hasBookingControl looks for a clickable book/details element, which the
// 489ban engine only renders for bookable plans.
func hasBookingControl(content string) bool {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return false
	}

	found := false
	doc.Find("a, button, input[type='submit'], input[type='button']").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.ToLower(strings.TrimSpace(sel.Text()))
		if text == "" {
			if v, ok := sel.Attr("value"); ok {
				text = strings.ToLower(strings.TrimSpace(v))
			}
		}
		for _, marker := range banControlMarkers {
			if strings.Contains(text, marker) {
				found = true
				return false
			}
		}
		return true
	})
	return found
}
