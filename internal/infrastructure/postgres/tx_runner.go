package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vinces1leon/inmobiliaria-mye/internal/application/quotes"
	"github.com/vinces1leon/inmobiliaria-mye/internal/domain/repository"
)

var _ quotes.QuoteTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunQuote ejecuta fn en una transacción SERIALIZABLE. La asignación del
// correlativo lee el máximo número y escribe, así que dos emisiones
// concurrentes chocan (40001 o 23505 sobre el número único); en ese caso se
// reintenta UNA sola vez y fn recalcula el número desde cero.
func (r *TxRunner) RunQuote(ctx context.Context, fn func(quoteRepo repository.QuoteRepository) error) error {
	err := r.runQuoteOnce(ctx, fn)
	if err != nil && (isSerializationFailure(err) || isUniqueViolation(err)) {
		err = r.runQuoteOnce(ctx, fn)
	}
	return err
}

func (r *TxRunner) runQuoteOnce(ctx context.Context, fn func(quoteRepo repository.QuoteRepository) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewQuoteRepository(tx)); err != nil {
		return err
	}
	// El fallo de serialización puede aparecer recién en el commit.
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
