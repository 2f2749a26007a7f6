package bootstrap

import (
	"time"

	"petsitter-booking/internal/domain/pricing"
	"petsitter-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewBookingLocation,
		NewCatalog,
	),
)

func NewBookingLocation(cfg config.Config) *time.Location {
	return cfg.Booking.Location()
}

// NewCatalog loads BOOKING_CATALOG_PATH when set, the built-in price list otherwise.
func NewCatalog(cfg config.Config) (*pricing.Catalog, error) {
	if cfg.Booking.CatalogPath == "" {
		return pricing.DefaultCatalog()
	}
	return pricing.LoadCatalogFile(cfg.Booking.CatalogPath)
}
