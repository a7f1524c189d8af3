package column

import (
	"log/slog"
	"math/rand/v2"

	"github.com/thenoetrevino/tablero/internal/models"
)

// Option configures the column service
type Option func(*service)

// WithRand sets the source used to pick colors for new columns
func WithRand(rng *rand.Rand) Option {
	return func(s *service) {
		s.rng = rng
	}
}

// WithPalette restricts the colors new columns are drawn from
func WithPalette(palette []models.Color) Option {
	return func(s *service) {
		if len(palette) > 0 {
			s.palette = palette
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}
