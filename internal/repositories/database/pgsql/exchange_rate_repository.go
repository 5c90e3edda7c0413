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
	"github.com/shopspring/decimal"
)

const selectExchangeRates = `
	SELECT
		er.id, er.rate,
		bc.id, bc.code, bc.full_name, bc.sign,
		tc.id, tc.code, tc.full_name, tc.sign
	FROM exchange_rates er
	JOIN currencies bc ON er.base_currency_id = bc.id
	JOIN currencies tc ON er.target_currency_id = tc.id
`

// PgxExchangeRateRepository implements the exchange rate store using pgxpool.
type PgxExchangeRateRepository struct {
	BaseRepository
}

// newPgxExchangeRateRepository creates a new PgxExchangeRateRepository.
func newPgxExchangeRateRepository(db *pgxpool.Pool) portsrepo.ExchangeRateRepositoryWithTx {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ExchangeRateRepositoryWithTx = (*PgxExchangeRateRepository)(nil)

func scanExchangeRate(row pgx.Row) (models.ExchangeRate, error) {
	var m models.ExchangeRate
	err := row.Scan(
		&m.ID, &m.Rate,
		&m.BaseCurrency.ID, &m.BaseCurrency.Code, &m.BaseCurrency.FullName, &m.BaseCurrency.Sign,
		&m.TargetCurrency.ID, &m.TargetCurrency.Code, &m.TargetCurrency.FullName, &m.TargetCurrency.Sign,
	)
	return m, err
}

// FindExchangeRate retrieves the rate stored for a 6-letter pair code.
func (r *PgxExchangeRateRepository) FindExchangeRate(ctx context.Context, pairCode string) (*domain.ExchangeRate, bool, error) {
	baseCode, targetCode, ok := domain.SplitPairCode(pairCode)
	if !ok {
		return nil, false, nil
	}

	query := selectExchangeRates + `WHERE bc.code = $1 AND tc.code = $2;`
	modelRate, err := scanExchangeRate(r.Pool.QueryRow(ctx, query, baseCode, targetCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, apperrors.NewAppError(500, "failed to find exchange rate "+pairCode, err)
	}

	domainRate := mapping.ToDomainExchangeRate(modelRate)
	return &domainRate, true, nil
}

// ListExchangeRates retrieves all stored rates.
func (r *PgxExchangeRateRepository) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	rows, err := r.Pool.Query(ctx, selectExchangeRates+`ORDER BY er.id;`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list exchange rates", err)
	}
	defer rows.Close()

	modelRates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ExchangeRate, error) {
		return scanExchangeRate(row)
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan exchange rates", err)
	}

	return mapping.ToDomainExchangeRateSlice(modelRates), nil
}

// SaveExchangeRate inserts a rate for an ordered pair that has none yet.
func (r *PgxExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) (*domain.ExchangeRate, error) {
	modelRate := mapping.ToModelExchangeRate(rate)

	query := `
		INSERT INTO exchange_rates (base_currency_id, target_currency_id, rate)
		VALUES ($1, $2, $3)
		RETURNING id;
	`
	err := r.Pool.QueryRow(ctx, query,
		modelRate.BaseCurrency.ID, modelRate.TargetCurrency.ID, modelRate.Rate,
	).Scan(&modelRate.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.NewDuplicateError(fmt.Sprintf("Exchange rate '%s' to '%s' already exists",
				modelRate.BaseCurrency.Code, modelRate.TargetCurrency.Code), err)
		}
		return nil, apperrors.NewAppError(500, "failed to save exchange rate", err)
	}

	domainRate := mapping.ToDomainExchangeRate(modelRate)
	return &domainRate, nil
}

// UpdateExchangeRate replaces the rate of an existing pair and returns the stored row.
func (r *PgxExchangeRateRepository) UpdateExchangeRate(ctx context.Context, baseCurrencyID, targetCurrencyID int64, rate decimal.Decimal) (*domain.ExchangeRate, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	tag, err := tx.Exec(ctx, `
		UPDATE exchange_rates
		SET rate = $1
		WHERE base_currency_id = $2 AND target_currency_id = $3;`,
		rate, baseCurrencyID, targetCurrencyID,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to update exchange rate", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperrors.NewNotFoundError("There is no exchange rate for the currency pair.")
	}

	query := selectExchangeRates + `WHERE bc.id = $1 AND tc.id = $2;`
	modelRate, err := scanExchangeRate(tx.QueryRow(ctx, query, baseCurrencyID, targetCurrencyID))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to read updated exchange rate", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	domainRate := mapping.ToDomainExchangeRate(modelRate)
	return &domainRate, nil
}
