package repository

import "github.com/vinces1leon/inmobiliaria-mye/internal/domain/entity"

// QuoteRepository define el puerto de persistencia para Quote (cotizaciones).
// Las cotizaciones inactivas (soft delete) quedan fuera de GetByID y ListActive:
// la ruta normal de lectura nunca las devuelve.
type QuoteRepository interface {
	Create(quote *entity.Quote) error
	// GetByID devuelve la cotización activa con ese ID, o nil si no existe o está inactiva.
	GetByID(id string) (*entity.Quote, error)
	// ListActive lista cotizaciones activas, más recientes primero.
	ListActive(limit, offset int) ([]*entity.Quote, error)
	// LastAssignedNumber devuelve el número con mayor sufijo numérico ya asignado
	// ("" si no hay ninguno). Incluye inactivas: un número asignado nunca se reusa.
	LastAssignedNumber() (string, error)
	// Deactivate marca la cotización como inactiva (soft delete).
	Deactivate(id string) error
}
