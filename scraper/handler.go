package scraper

import (
	"context"

	"ryokan_check/config"
	"ryokan_check/models"
	"ryokan_check/properties"
)

// Handler checks availability for one property. Implementations are a
// closed set, one per booking engine.
type Handler interface {
	Property() models.Property
	Check(ctx context.Context) ([]models.RoomAvailability, error)
}

func NewHandler(cfg *config.Config, prop *properties.PropertyConfig) Handler {
	switch prop.Engine {
	case properties.EngineBan:
		return NewBanHandler(cfg, prop)
	default:
		return NewYadosysHandler(cfg, prop)
	}
}
