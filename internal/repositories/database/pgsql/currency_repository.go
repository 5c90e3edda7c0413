package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/currency_exchange/internal/apperrors"
	"github.com/SscSPs/currency_exchange/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_exchange/internal/core/ports/repositories"
	"github.com/SscSPs/currency_exchange/internal/models"
	"github.com/SscSPs/currency_exchange/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for currency data.
func newPgxCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyRepositoryWithTx {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryWithTx = (*PgxCurrencyRepository)(nil)

// SaveCurrency inserts a new currency. Currencies are never updated afterwards.
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) (*domain.Currency, error) {
	modelCurr := mapping.ToModelCurrency(currency)

	query := `
		INSERT INTO currencies (code, full_name, sign)
		VALUES ($1, $2, $3)
		RETURNING id;
	`

	err := r.Pool.QueryRow(ctx, query, modelCurr.Code, modelCurr.FullName, modelCurr.Sign).Scan(&modelCurr.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.NewDuplicateError(fmt.Sprintf("Currency with code '%s' already exists", modelCurr.Code), err)
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to save currency %s", modelCurr.Code), err)
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// FindCurrencyByCode retrieves a currency by its 3-letter code.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	query := `
		SELECT id, code, full_name, sign
		FROM currencies
		WHERE code = $1;
	`
	var modelCurr models.Currency
	err := r.Pool.QueryRow(ctx, query, currencyCode).Scan(
		&modelCurr.ID,
		&modelCurr.Code,
		&modelCurr.FullName,
		&modelCurr.Sign,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to find currency by code %s", currencyCode), err)
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// ListCurrencies retrieves all currencies.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	query := `
		SELECT id, code, full_name, sign
		FROM currencies
		ORDER BY id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query currencies", err)
	}
	defer rows.Close()

	modelCurrencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
		var currency models.Currency
		err := row.Scan(
			&currency.ID,
			&currency.Code,
			&currency.FullName,
			&currency.Sign,
		)
		return currency, err
	})

	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan currencies", err)
	}

	return mapping.ToDomainCurrencySlice(modelCurrencies), nil
}
