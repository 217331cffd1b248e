package scraper

import (
	"context"
	"fmt"
	"log"
	"time"

	"ryokan_check/config"
	"ryokan_check/models"
	"ryokan_check/properties"
	"ryokan_check/storage"
)

// Orchestrator drives one check cycle: each configured property in
// sequence, never concurrently, to stay inside the sites' comfort zone.
type Orchestrator struct {
	cfg      *config.Config
	handlers map[models.Property]Handler
	history  *storage.HistoryStore
}

func NewOrchestrator(cfg *config.Config) *Orchestrator {
	handlers := make(map[models.Property]Handler)
	for _, p := range cfg.Properties {
		if prop, ok := properties.Get(p); ok {
			handlers[p] = NewHandler(cfg, prop)
		}
	}
	return &Orchestrator{cfg: cfg, handlers: handlers}
}

// SetHistory enables persistent run records.
func (o *Orchestrator) SetHistory(h *storage.HistoryStore) {
	o.history = h
}

// RunAll checks every configured property. A failing property yields a
// CheckResult carrying the error; the cycle continues with the rest.
// Cancellation is observed between properties.
func (o *Orchestrator) RunAll(ctx context.Context) []*models.CheckResult {
	var results []*models.CheckResult
	for _, p := range o.cfg.Properties {
		if ctx.Err() != nil {
			break
		}
		results = append(results, o.RunProperty(ctx, p))
	}
	return results
}

func (o *Orchestrator) RunProperty(ctx context.Context, p models.Property) *models.CheckResult {
	result := &models.CheckResult{
		Property:  p,
		CheckTime: time.Now(),
	}

	handler, ok := o.handlers[p]
	if !ok {
		result.Err = fmt.Sprintf("no handler for property %s", p)
		return result
	}

	rooms, err := handler.Check(ctx)
	if err != nil {
		result.Err = err.Error()
	} else {
		result.RoomsChecked = rooms
	}

	if o.history != nil {
		if err := o.history.RecordCheck(result); err != nil {
			log.Printf("Warning: failed to record check history: %v", err)
		}
	}

	return result
}
