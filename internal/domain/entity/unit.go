package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un departamento.
const (
	UnitStatusDisponible = "disponible"
	UnitStatusVendido    = "vendido"
	UnitStatusReservado  = "reservado"
)

// Unit representa un departamento en venta.
// BasePrice es el precio de lista sin ajuste; el markup fijo se aplica al cotizar.
type Unit struct {
	ID          string
	Code        string // código único, ej. "DPTO-101"
	Name        string
	Description string
	BasePrice   decimal.Decimal
	AreaM2      decimal.Decimal // área techada
	AreaLibre   decimal.Decimal // área libre
	Bedrooms    int
	Bathrooms   int
	Floor       string // etiqueta de piso, ej. "3°"
	Available   bool
	Status      string // disponible, vendido, reservado
	PhotoKey    string // object key en el bucket de fotos; vacío = sin foto
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
