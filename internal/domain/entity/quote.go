package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de descuento aceptados en una cotización.
const (
	DiscountPercent = "PORC"  // porcentaje sobre el precio ajustado
	DiscountAmount  = "MONTO" // monto fijo en soles
)

// NumberPrefix prefijo del número correlativo de cotización.
const NumberPrefix = "cotizacion_"

// Quote representa una cotización formal emitida a un cliente por un departamento.
// Number, FinalPrice y Snapshot se asignan una sola vez al finalizar y no cambian
// aunque el departamento se edite después.
type Quote struct {
	ID             string
	Number         string // "cotizacion_NN", único y monotónico
	ClientName     string
	ClientDNI      string // exactamente 8 dígitos
	ClientAddress  string
	ClientDistrict string
	ClientPhone    string
	ClientEmail    string // opcional
	UnitID         string
	DiscountType   string // PORC | MONTO
	DiscountValue  decimal.Decimal
	DownPayment    decimal.Decimal // cuota inicial, opcional
	FinalPrice     decimal.Decimal
	Snapshot       UnitSnapshot
	Notes          string
	CreatedBy      string // usuario que la emitió
	CreatedAt      time.Time
	Active         bool // false = eliminada (soft delete)
}

// Finalized indica si la cotización ya tiene número y snapshot asignados.
// Finalize sobre una cotización finalizada es un no-op.
func (q *Quote) Finalized() bool {
	return q.Number != "" && !q.Snapshot.IsZero()
}
