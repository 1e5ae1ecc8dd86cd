package pgsql

import (
	"context"
	"fmt"
	"regexp"

	"github.com/SscSPs/fx_rates_app/internal/apperrors"
	"github.com/jmoiron/sqlx"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	DB *sqlx.DB
}

// ValidateTableName accepts a bare or schema-qualified SQL identifier.
// Table names are interpolated into queries, so anything else is rejected.
func ValidateTableName(name string) error {
	if !identifierPattern.MatchString(name) {
		return apperrors.NewValidationError(fmt.Sprintf("invalid table name %q", name))
	}
	return nil
}

// selectIn runs a query containing "?" placeholders and slice arguments, expanding the
// slices with sqlx.In and rebinding to the driver's placeholder style.
func (r *BaseRepository) selectIn(ctx context.Context, dest any, query string, args ...any) error {
	expanded, expandedArgs, err := sqlx.In(query, args...)
	if err != nil {
		return fmt.Errorf("failed to expand query arguments: %w", err)
	}
	return r.DB.SelectContext(ctx, dest, r.DB.Rebind(expanded), expandedArgs...)
}

// selectRebind runs a query written with "?" placeholders.
func (r *BaseRepository) selectRebind(ctx context.Context, dest any, query string, args ...any) error {
	return r.DB.SelectContext(ctx, dest, r.DB.Rebind(query), args...)
}
