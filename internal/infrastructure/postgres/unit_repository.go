package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vinces1leon/inmobiliaria-mye/internal/domain"
	"github.com/vinces1leon/inmobiliaria-mye/internal/domain/entity"
	"github.com/vinces1leon/inmobiliaria-mye/internal/domain/repository"
)

var _ repository.UnitRepository = (*UnitRepo)(nil)

// UnitRepo implementación del puerto UnitRepository sobre PostgreSQL (usable con pool o tx).
type UnitRepo struct {
	q Querier
}

// NewUnitRepository construye el adaptador de persistencia para departamentos. Pasar pool o tx (Querier).
func NewUnitRepository(q Querier) *UnitRepo {
	return &UnitRepo{q: q}
}

const unitColumns = `id, code, name, description, base_price, area_m2, area_libre, bedrooms, bathrooms, floor, available, status, photo_key, created_at, updated_at`

// Create persiste un nuevo departamento. El código es único.
func (r *UnitRepo) Create(unit *entity.Unit) error {
	query := `
		INSERT INTO units (` + unitColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		unit.ID, unit.Code, unit.Name, unit.Description, unit.BasePrice,
		unit.AreaM2, unit.AreaLibre, unit.Bedrooms, unit.Bathrooms, unit.Floor,
		unit.Available, unit.Status, unit.PhotoKey, unit.CreatedAt, unit.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert unit: %w", err)
	}
	return nil
}

// GetByID obtiene un departamento por ID.
func (r *UnitRepo) GetByID(id string) (*entity.Unit, error) {
	query := `SELECT ` + unitColumns + ` FROM units WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get unit")
}

// GetByCode obtiene un departamento por código.
func (r *UnitRepo) GetByCode(code string) (*entity.Unit, error) {
	query := `SELECT ` + unitColumns + ` FROM units WHERE code = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, code), "get unit by code")
}

// List lista todos los departamentos ordenados por código.
func (r *UnitRepo) List(limit, offset int) ([]*entity.Unit, error) {
	query := `SELECT ` + unitColumns + ` FROM units ORDER BY code LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// ListAvailable lista solo los departamentos disponibles (selector de cotización).
func (r *UnitRepo) ListAvailable(limit, offset int) ([]*entity.Unit, error) {
	query := `SELECT ` + unitColumns + ` FROM units WHERE available ORDER BY code LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// Update actualiza un departamento existente. El código no se modifica.
func (r *UnitRepo) Update(unit *entity.Unit) error {
	query := `
		UPDATE units SET name = $2, description = $3, base_price = $4, area_m2 = $5, area_libre = $6,
			bedrooms = $7, bathrooms = $8, floor = $9, available = $10, status = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		unit.ID, unit.Name, unit.Description, unit.BasePrice, unit.AreaM2, unit.AreaLibre,
		unit.Bedrooms, unit.Bathrooms, unit.Floor, unit.Available, unit.Status, unit.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update unit: %w", err)
	}
	return nil
}

// Delete elimina el departamento; las cotizaciones asociadas caen en cascada (FK).
func (r *UnitRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM units WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete unit: %w", err)
	}
	return nil
}

// SetPhotoKey guarda la referencia de la foto subida al bucket.
func (r *UnitRepo) SetPhotoKey(id, photoKey string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE units SET photo_key = $2, updated_at = now() WHERE id = $1`,
		id, photoKey,
	)
	if err != nil {
		return fmt.Errorf("set unit photo: %w", err)
	}
	return nil
}

func (r *UnitRepo) scanOne(row pgx.Row, op string) (*entity.Unit, error) {
	var u entity.Unit
	err := row.Scan(
		&u.ID, &u.Code, &u.Name, &u.Description, &u.BasePrice, &u.AreaM2, &u.AreaLibre,
		&u.Bedrooms, &u.Bathrooms, &u.Floor, &u.Available, &u.Status, &u.PhotoKey,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}

func (r *UnitRepo) list(query string, limit, offset int) ([]*entity.Unit, error) {
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	defer rows.Close()
	var list []*entity.Unit
	for rows.Next() {
		var u entity.Unit
		if err := rows.Scan(&u.ID, &u.Code, &u.Name, &u.Description, &u.BasePrice, &u.AreaM2, &u.AreaLibre,
			&u.Bedrooms, &u.Bathrooms, &u.Floor, &u.Available, &u.Status, &u.PhotoKey,
			&u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan unit: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}
