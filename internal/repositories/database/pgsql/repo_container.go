package pgsql

import (
	portsrepo "github.com/SscSPs/fx_rates_app/internal/core/ports/repositories"
	"github.com/jmoiron/sqlx"
)

// NewRepositoryProvider builds the store-backed repositories over db.
func NewRepositoryProvider(db *sqlx.DB, ratesTable string) (portsrepo.RepositoryProvider, error) {
	rateRepo, err := NewSQLRateRepository(db, ratesTable)
	if err != nil {
		return portsrepo.RepositoryProvider{}, err
	}

	return portsrepo.RepositoryProvider{
		RateRepo: rateRepo,
	}, nil
}
