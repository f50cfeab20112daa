package units

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vinces1leon/inmobiliaria-mye/internal/application/dto"
	"github.com/vinces1leon/inmobiliaria-mye/internal/domain"
	"github.com/vinces1leon/inmobiliaria-mye/internal/domain/entity"
	"github.com/vinces1leon/inmobiliaria-mye/internal/domain/repository"
)

// PhotoStorage puerto de almacenamiento de fotos (bucket de objetos).
type PhotoStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
}

// UseCase casos de uso CRUD del maestro de departamentos (solo admin) más la
// subida de foto.
type UseCase struct {
	repo    repository.UnitRepository
	storage PhotoStorage
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.UnitRepository, storage PhotoStorage) *UseCase {
	return &UseCase{repo: repo, storage: storage}
}

// Create crea un departamento. El código es único.
func (uc *UseCase) Create(in dto.CreateUnitRequest) (*dto.UnitResponse, error) {
	if in.Code == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.BasePrice.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByCode(in.Code)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	status := in.Status
	if status == "" {
		status = entity.UnitStatusDisponible
	}
	if !validStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	unit := &entity.Unit{
		ID:          uuid.New().String(),
		Code:        in.Code,
		Name:        in.Name,
		Description: in.Description,
		BasePrice:   in.BasePrice,
		AreaM2:      in.AreaM2,
		AreaLibre:   in.AreaLibre,
		Bedrooms:    in.Bedrooms,
		Bathrooms:   in.Bathrooms,
		Floor:       in.Floor,
		Available:   status == entity.UnitStatusDisponible,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(unit); err != nil {
		return nil, err
	}
	return toUnitResponse(unit), nil
}

// GetByID obtiene un departamento por ID.
func (uc *UseCase) GetByID(id string) (*dto.UnitResponse, error) {
	unit, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, domain.ErrNotFound
	}
	return toUnitResponse(unit), nil
}

// List lista departamentos ordenados por código. Con onlyAvailable lista solo
// los disponibles (selector del formulario de cotización).
func (uc *UseCase) List(page dto.PageRequest, onlyAvailable bool) (*dto.UnitListResponse, error) {
	page.DefaultPage()
	var (
		list []*entity.Unit
		err  error
	)
	if onlyAvailable {
		list, err = uc.repo.ListAvailable(page.Limit, page.Offset)
	} else {
		list, err = uc.repo.List(page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.UnitResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUnitResponse(u))
	}
	return &dto.UnitListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update actualiza un departamento; campos nil no se tocan. El código no se
// modifica una vez creado.
func (uc *UseCase) Update(id string, in dto.UpdateUnitRequest) (*dto.UnitResponse, error) {
	unit, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		unit.Name = *in.Name
	}
	if in.Description != nil {
		unit.Description = *in.Description
	}
	if in.BasePrice != nil {
		if !in.BasePrice.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		unit.BasePrice = *in.BasePrice
	}
	if in.AreaM2 != nil {
		unit.AreaM2 = *in.AreaM2
	}
	if in.AreaLibre != nil {
		unit.AreaLibre = *in.AreaLibre
	}
	if in.Bedrooms != nil {
		unit.Bedrooms = *in.Bedrooms
	}
	if in.Bathrooms != nil {
		unit.Bathrooms = *in.Bathrooms
	}
	if in.Floor != nil {
		unit.Floor = *in.Floor
	}
	if in.Status != nil {
		if !validStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		unit.Status = *in.Status
		unit.Available = *in.Status == entity.UnitStatusDisponible
	}
	if in.Available != nil {
		unit.Available = *in.Available
	}
	unit.UpdatedAt = time.Now()
	if err := uc.repo.Update(unit); err != nil {
		return nil, err
	}
	return toUnitResponse(unit), nil
}

// Delete elimina el departamento. Las cotizaciones asociadas caen en cascada.
func (uc *UseCase) Delete(id string) error {
	unit, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if unit == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// UploadPhoto sube la foto al bucket y guarda la referencia en el departamento.
func (uc *UseCase) UploadPhoto(ctx context.Context, id, filename string, data []byte, contentType string) (*dto.UnitResponse, error) {
	unit, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, domain.ErrNotFound
	}
	if len(data) == 0 {
		return nil, domain.ErrInvalidInput
	}
	ext := strings.ToLower(path.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png":
	default:
		return nil, fmt.Errorf("%w: formato de imagen no soportado %q", domain.ErrInvalidInput, ext)
	}
	key := fmt.Sprintf("units/%s/%s%s", unit.ID, uuid.New().String(), ext)
	if err := uc.storage.Upload(ctx, key, data, contentType); err != nil {
		return nil, fmt.Errorf("subir foto: %w", err)
	}
	if err := uc.repo.SetPhotoKey(unit.ID, key); err != nil {
		return nil, err
	}
	unit.PhotoKey = key
	return toUnitResponse(unit), nil
}

func validStatus(s string) bool {
	switch s {
	case entity.UnitStatusDisponible, entity.UnitStatusVendido, entity.UnitStatusReservado:
		return true
	}
	return false
}

func toUnitResponse(u *entity.Unit) *dto.UnitResponse {
	if u == nil {
		return nil
	}
	return &dto.UnitResponse{
		ID:          u.ID,
		Code:        u.Code,
		Name:        u.Name,
		Description: u.Description,
		BasePrice:   u.BasePrice,
		AreaM2:      u.AreaM2,
		AreaLibre:   u.AreaLibre,
		Bedrooms:    u.Bedrooms,
		Bathrooms:   u.Bathrooms,
		Floor:       u.Floor,
		Available:   u.Available,
		Status:      u.Status,
		PhotoKey:    u.PhotoKey,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
