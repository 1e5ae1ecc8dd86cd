package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/fx_rates_app/internal/apperrors"
	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_rates_app/internal/core/ports/repositories"
	"github.com/SscSPs/fx_rates_app/internal/models"
	"github.com/SscSPs/fx_rates_app/internal/utils/mapping"
	"github.com/jmoiron/sqlx"
)

// DefaultRatesTable is the daily rates table read by the dashboard.
const DefaultRatesTable = "vault.fx_rates_daily"

// SQLRateRepository implements portsrepo.RateReader against the daily rates table.
// Every query is read-only and parameterized; only the validated table name is interpolated.
type SQLRateRepository struct {
	BaseRepository
	table string
}

var _ portsrepo.RateReader = (*SQLRateRepository)(nil)

// NewSQLRateRepository creates a SQLRateRepository. An empty table uses DefaultRatesTable.
func NewSQLRateRepository(db *sqlx.DB, table string) (*SQLRateRepository, error) {
	if table == "" {
		table = DefaultRatesTable
	}
	if err := ValidateTableName(table); err != nil {
		return nil, err
	}
	return &SQLRateRepository{
		BaseRepository: BaseRepository{DB: db},
		table:          table,
	}, nil
}

// q substitutes the table name for every %[1]s in query.
func (r *SQLRateRepository) q(query string) string {
	return fmt.Sprintf(query, r.table)
}

// LatestRates retrieves every currency's central rate at the most recent date.
func (r *SQLRateRepository) LatestRates(ctx context.Context) ([]domain.LatestRate, error) {
	query := r.q(`
		SELECT date, currency, central_rate AS rate
		FROM %[1]s
		WHERE date = (SELECT MAX(date) FROM %[1]s)
		ORDER BY currency`)

	var rows []models.FXRateAtDate
	if err := r.selectRebind(ctx, &rows, query); err != nil {
		return nil, apperrors.NewSourceError("failed to query latest rates", err)
	}
	return mapping.ToDomainLatestRates(rows), nil
}

// TrendRates retrieves the trailing window of several currencies.
func (r *SQLRateRepository) TrendRates(ctx context.Context, currencies []string, days int) ([]domain.RateObservation, error) {
	if len(currencies) == 0 {
		return []domain.RateObservation{}, nil
	}
	codes := make([]string, len(currencies))
	for i, c := range currencies {
		codes[i] = strings.ToUpper(c)
	}

	query := r.q(`
		SELECT date, currency, buying_rate, central_rate, selling_rate
		FROM %[1]s
		WHERE date >= (SELECT MAX(date) FROM %[1]s) - ?::integer
			AND currency IN (?)
		ORDER BY currency, date`)

	var rows []models.FXRateDaily
	if err := r.selectIn(ctx, &rows, query, days, codes); err != nil {
		return nil, apperrors.NewSourceError("failed to query trend rates", err)
	}
	return mapping.ToDomainRateObservations(rows), nil
}

// CurrencyRates retrieves the trailing window of one currency.
func (r *SQLRateRepository) CurrencyRates(ctx context.Context, currency string, days int) ([]domain.RateObservation, error) {
	query := r.q(`
		SELECT date, currency, buying_rate, central_rate, selling_rate
		FROM %[1]s
		WHERE date >= (SELECT MAX(date) FROM %[1]s) - ?::integer
			AND currency = ?
		ORDER BY date`)

	var rows []models.FXRateDaily
	if err := r.selectRebind(ctx, &rows, query, days, strings.ToUpper(currency)); err != nil {
		return nil, apperrors.NewSourceError("failed to query currency rates", err)
	}
	return mapping.ToDomainRateObservations(rows), nil
}

// AverageRates computes both trailing means for every currency in a single grouped query.
func (r *SQLRateRepository) AverageRates(ctx context.Context) ([]domain.AverageRate, error) {
	query := r.q(fmt.Sprintf(`
		WITH latest AS (SELECT MAX(date) AS max_date FROM %%[1]s)
		SELECT
			f.currency,
			AVG(f.central_rate) FILTER (WHERE f.date >= l.max_date - %d) AS monthly_avg,
			AVG(f.central_rate) FILTER (WHERE f.date >= l.max_date - %d) AS yearly_avg
		FROM %%[1]s f
		CROSS JOIN latest l
		GROUP BY f.currency
		ORDER BY f.currency`, domain.AveragesMonthlyDays, domain.AveragesYearlyDays))

	var rows []models.FXRateAverage
	if err := r.selectRebind(ctx, &rows, query); err != nil {
		return nil, apperrors.NewSourceError("failed to query average rates", err)
	}
	return mapping.ToDomainAverageRates(rows), nil
}

// RecordRates retrieves the all-time low and high of every currency, most recent date first on ties.
// The two queries run one after the other on the same pool; either failing fails the pair.
func (r *SQLRateRepository) RecordRates(ctx context.Context) (domain.Records, error) {
	lows, err := r.records(ctx, "ASC")
	if err != nil {
		return domain.Records{}, err
	}
	highs, err := r.records(ctx, "DESC")
	if err != nil {
		return domain.Records{}, err
	}
	return domain.Records{Lows: lows, Highs: highs}, nil
}

func (r *SQLRateRepository) records(ctx context.Context, direction string) ([]domain.RecordRate, error) {
	query := r.q(`
		SELECT DISTINCT ON (currency) currency, date, central_rate AS rate
		FROM %[1]s
		ORDER BY currency, central_rate ` + direction + `, date DESC`)

	var rows []models.FXRateAtDate
	if err := r.selectRebind(ctx, &rows, query); err != nil {
		return nil, apperrors.NewSourceError("failed to query record rates", err)
	}
	return mapping.ToDomainRecordRates(rows), nil
}

// Currencies retrieves the distinct currency codes.
func (r *SQLRateRepository) Currencies(ctx context.Context) ([]string, error) {
	query := r.q(`SELECT DISTINCT currency FROM %[1]s ORDER BY currency`)

	codes := []string{}
	if err := r.selectRebind(ctx, &codes, query); err != nil {
		return nil, apperrors.NewSourceError("failed to query currencies", err)
	}
	return codes, nil
}

// DateRange retrieves the first and last dates in the table.
func (r *SQLRateRepository) DateRange(ctx context.Context) (domain.DateRange, error) {
	query := r.q(`SELECT MIN(date) AS min_date, MAX(date) AS max_date FROM %[1]s`)

	var bounds models.FXDateBounds
	if err := r.DB.GetContext(ctx, &bounds, query); err != nil {
		return domain.DateRange{}, apperrors.NewSourceError("failed to query date range", err)
	}
	return mapping.ToDomainDateRange(bounds), nil
}

// HistoricalRates retrieves the snapshot at date, optionally for one currency.
func (r *SQLRateRepository) HistoricalRates(ctx context.Context, date domain.Date, currency string) ([]domain.HistoricalRate, error) {
	query := `
		SELECT date, currency, central_rate AS rate, buying_rate, selling_rate
		FROM %[1]s
		WHERE date = ?`
	args := []any{date}
	if currency != "" && currency != domain.AllCurrencies {
		query += ` AND currency = ?`
		args = append(args, strings.ToUpper(currency))
	}
	query += ` ORDER BY currency`

	var rows []models.FXRateSnapshot
	if err := r.selectRebind(ctx, &rows, r.q(query), args...); err != nil {
		return nil, apperrors.NewSourceError("failed to query historical rates", err)
	}
	return mapping.ToDomainHistoricalRates(rows), nil
}
