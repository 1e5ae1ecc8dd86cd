// Package synthetic produces the deterministic sample rate history served when the
// rate store cannot answer.
package synthetic

import (
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Config controls generation. The same Config always yields the same Dataset.
type Config struct {
	ReferenceDate domain.Date
	Days          int
	Seed          uint64
	// Amplitude of the sinusoidal component, as a fraction of the base rate.
	Amplitude float64
	// Noise bound b of the uniform U(-b, b) component, as a fraction of the base rate.
	Noise      float64
	Currencies []string
	BaseRates  map[string]float64
}

const (
	DefaultDays = 366
	DefaultSeed = 20241127

	buyingFactor  = 0.98
	sellingFactor = 1.02
)

// DefaultReferenceDate is the last day of the default sample history.
var DefaultReferenceDate = domain.NewDate(2024, time.November, 27)

// DefaultConfig returns the stock sample configuration: eight currencies quoted in naira.
func DefaultConfig() Config {
	return Config{
		ReferenceDate: DefaultReferenceDate,
		Days:          DefaultDays,
		Seed:          DefaultSeed,
		Amplitude:     0.02,
		Noise:         0.02,
		Currencies:    []string{"USD", "EUR", "GBP", "JPY", "CNY", "CAD", "CHF", "AUD"},
		BaseRates: map[string]float64{
			"USD": 1650,
			"EUR": 1800,
			"GBP": 2100,
			"JPY": 11,
			"CNY": 230,
			"CAD": 1200,
			"CHF": 1850,
			"AUD": 1100,
		},
	}
}

// Generate builds the dataset. Day index i counts days before the reference date, and
// rate(i) = base * (1 + A*sin(i/10) + U(-b, b)). Buying and selling rates are 0.98 and
// 1.02 of that rate. All three are rounded to 2 decimal places.
func Generate(cfg Config) *Dataset {
	if cfg.Days < 1 {
		cfg.Days = 1
	}
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))

	currencies := make([]string, 0, len(cfg.Currencies))
	for _, c := range cfg.Currencies {
		if _, ok := cfg.BaseRates[c]; ok {
			currencies = append(currencies, strings.ToUpper(c))
		}
	}

	rows := make([]domain.RateObservation, 0, cfg.Days*len(currencies))
	for i := cfg.Days - 1; i >= 0; i-- {
		date := cfg.ReferenceDate.AddDays(-i)
		for _, code := range currencies {
			base := cfg.BaseRates[code]
			noise := (rng.Float64()*2 - 1) * cfg.Noise
			central := base * (1 + cfg.Amplitude*math.Sin(float64(i)/10) + noise)

			rows = append(rows, domain.RateObservation{
				Date:        date,
				Currency:    code,
				BuyingRate:  round2(central * buyingFactor),
				CentralRate: round2(central),
				SellingRate: round2(central * sellingFactor),
			})
		}
	}

	return NewDataset(rows)
}

func round2(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}
