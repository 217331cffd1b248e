package scraper

import (
	"fmt"
	"sync"

	"github.com/playwright-community/playwright-go"
)

// pageLoadTimeoutMs bounds every navigation. Both booking engines are
// JavaScript-heavy and slow; anything past a minute is a failure.
const pageLoadTimeoutMs = 60000

// Browser owns one Playwright session. A session is scoped to a single
// property check: started at the beginning and closed (even on error)
// before the next property or cycle runs.
type Browser struct {
	headless bool

	mu      sync.Mutex
	pw      *playwright.Playwright
	browser playwright.Browser
	running bool
}

func NewBrowser(headless bool) *Browser {
	return &Browser{headless: headless}
}

func (b *Browser) Start() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.running {
		return nil
	}

	pw, err := playwright.Run()
	if err != nil {
		return fmt.Errorf("failed to start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(b.headless),
	})
	if err != nil {
		pw.Stop()
		return fmt.Errorf("failed to launch browser: %w", err)
	}

	b.pw = pw
	b.browser = browser
	b.running = true
	return nil
}

func (b *Browser) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.browser != nil {
		b.browser.Close()
		b.browser = nil
	}
	if b.pw != nil {
		b.pw.Stop()
		b.pw = nil
	}
	b.running = false
}

func (b *Browser) NewPage() (playwright.Page, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.running {
		return nil, fmt.Errorf("browser not started")
	}

	page, err := b.browser.NewPage()
	if err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}
	page.SetDefaultTimeout(pageLoadTimeoutMs)
	return page, nil
}
