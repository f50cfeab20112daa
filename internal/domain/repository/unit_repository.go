package repository

import "github.com/vinces1leon/inmobiliaria-mye/internal/domain/entity"

// UnitRepository define el puerto de persistencia para Unit (departamentos).
type UnitRepository interface {
	Create(unit *entity.Unit) error
	GetByID(id string) (*entity.Unit, error)
	GetByCode(code string) (*entity.Unit, error)
	// List lista todos los departamentos ordenados por código.
	List(limit, offset int) ([]*entity.Unit, error)
	// ListAvailable lista solo los departamentos disponibles (para el selector de cotización).
	ListAvailable(limit, offset int) ([]*entity.Unit, error)
	Update(unit *entity.Unit) error
	// Delete elimina el departamento; las cotizaciones asociadas caen en cascada (FK).
	Delete(id string) error
	// SetPhotoKey guarda la referencia de la foto subida al bucket.
	SetPhotoKey(id, photoKey string) error
}
