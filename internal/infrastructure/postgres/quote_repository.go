package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vinces1leon/inmobiliaria-mye/internal/domain/entity"
	"github.com/vinces1leon/inmobiliaria-mye/internal/domain/repository"
)

var _ repository.QuoteRepository = (*QuoteRepo)(nil)

// QuoteRepo implementación del puerto QuoteRepository sobre PostgreSQL (usable con pool o tx).
type QuoteRepo struct {
	q Querier
}

// NewQuoteRepository construye el adaptador de persistencia para cotizaciones. Pasar pool o tx (Querier).
func NewQuoteRepository(q Querier) *QuoteRepo {
	return &QuoteRepo{q: q}
}

const quoteColumns = `id, number, client_name, client_dni, client_address, client_district, client_phone, client_email, unit_id, discount_type, discount_value, down_payment, final_price, snapshot, notes, created_by, created_at, active`

// Create persiste una cotización finalizada. El número es único; una violación
// de unicidad se devuelve sin mapear para que el runner de transacciones pueda
// reintentar con un número fresco.
func (r *QuoteRepo) Create(quote *entity.Quote) error {
	query := `
		INSERT INTO quotes (` + quoteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(context.Background(), query,
		quote.ID, quote.Number, quote.ClientName, quote.ClientDNI, quote.ClientAddress,
		quote.ClientDistrict, quote.ClientPhone, quote.ClientEmail, quote.UnitID,
		quote.DiscountType, quote.DiscountValue, quote.DownPayment, quote.FinalPrice,
		quote.Snapshot, quote.Notes, quote.CreatedBy, quote.CreatedAt, quote.Active,
	)
	if err != nil {
		return fmt.Errorf("insert quote: %w", err)
	}
	return nil
}

// GetByID devuelve la cotización activa con ese ID, o nil si no existe o está inactiva.
func (r *QuoteRepo) GetByID(id string) (*entity.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE id = $1 AND active`
	var q entity.Quote
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&q.ID, &q.Number, &q.ClientName, &q.ClientDNI, &q.ClientAddress,
		&q.ClientDistrict, &q.ClientPhone, &q.ClientEmail, &q.UnitID,
		&q.DiscountType, &q.DiscountValue, &q.DownPayment, &q.FinalPrice,
		&q.Snapshot, &q.Notes, &q.CreatedBy, &q.CreatedAt, &q.Active,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quote: %w", err)
	}
	return &q, nil
}

// ListActive lista cotizaciones activas, más recientes primero.
func (r *QuoteRepo) ListActive(limit, offset int) ([]*entity.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE active ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Quote
	for rows.Next() {
		var q entity.Quote
		if err := rows.Scan(&q.ID, &q.Number, &q.ClientName, &q.ClientDNI, &q.ClientAddress,
			&q.ClientDistrict, &q.ClientPhone, &q.ClientEmail, &q.UnitID,
			&q.DiscountType, &q.DiscountValue, &q.DownPayment, &q.FinalPrice,
			&q.Snapshot, &q.Notes, &q.CreatedBy, &q.CreatedAt, &q.Active); err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		list = append(list, &q)
	}
	return list, rows.Err()
}

// LastAssignedNumber devuelve el número con mayor sufijo numérico ya asignado,
// o "" si no hay cotizaciones. Incluye inactivas: un número nunca se reusa.
func (r *QuoteRepo) LastAssignedNumber() (string, error) {
	query := `
		SELECT number FROM quotes
		ORDER BY (substring(number from '[0-9]+$'))::int DESC
		LIMIT 1`
	var number string
	err := r.q.QueryRow(context.Background(), query).Scan(&number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("last quote number: %w", err)
	}
	return number, nil
}

// Deactivate marca la cotización como inactiva (soft delete).
func (r *QuoteRepo) Deactivate(id string) error {
	_, err := r.q.Exec(context.Background(), `UPDATE quotes SET active = false WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate quote: %w", err)
	}
	return nil
}
