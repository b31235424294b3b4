package bootstrap

import (
	"time"

	"kayak-console/internal/pkg/config"

	"go.uber.org/fx"
)

var BusinessModule = fx.Module("business",
	fx.Provide(
		NewBusinessLocation,
	),
)

// NewBusinessLocation loads the timezone every day boundary is computed in.
// Misconfiguration here would silently shift every grouping, so it is fatal.
func NewBusinessLocation(cfg config.Config) *time.Location {
	loc, err := time.LoadLocation(cfg.Business.TimeZone)
	if err != nil {
		panic("invalid BUSINESS_TIMEZONE: " + err.Error())
	}
	return loc
}
