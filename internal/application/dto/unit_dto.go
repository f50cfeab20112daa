package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateUnitRequest entrada para crear un departamento (solo admin).
type CreateUnitRequest struct {
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	BasePrice   decimal.Decimal `json:"base_price"`
	AreaM2      decimal.Decimal `json:"area_m2"`
	AreaLibre   decimal.Decimal `json:"area_libre"`
	Bedrooms    int             `json:"bedrooms"`
	Bathrooms   int             `json:"bathrooms"`
	Floor       string          `json:"floor"`
	Status      string          `json:"status"`
}

// UpdateUnitRequest entrada para actualizar un departamento; campos nil no se tocan.
type UpdateUnitRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	BasePrice   *decimal.Decimal `json:"base_price"`
	AreaM2      *decimal.Decimal `json:"area_m2"`
	AreaLibre   *decimal.Decimal `json:"area_libre"`
	Bedrooms    *int             `json:"bedrooms"`
	Bathrooms   *int             `json:"bathrooms"`
	Floor       *string          `json:"floor"`
	Available   *bool            `json:"available"`
	Status      *string          `json:"status"`
}

// UnitResponse salida de un departamento.
type UnitResponse struct {
	ID          string          `json:"id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	BasePrice   decimal.Decimal `json:"base_price"`
	AreaM2      decimal.Decimal `json:"area_m2"`
	AreaLibre   decimal.Decimal `json:"area_libre"`
	Bedrooms    int             `json:"bedrooms"`
	Bathrooms   int             `json:"bathrooms"`
	Floor       string          `json:"floor"`
	Available   bool            `json:"available"`
	Status      string          `json:"status"`
	PhotoKey    string          `json:"photo_key,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// UnitListResponse lista paginada de departamentos.
type UnitListResponse struct {
	Items []UnitResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
