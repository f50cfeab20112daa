package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vinces1leon/inmobiliaria-mye/internal/domain/entity"
)

// CreateQuoteRequest entrada para emitir una cotización.
type CreateQuoteRequest struct {
	ClientName     string          `json:"client_name"`
	ClientDNI      string          `json:"client_dni"`
	ClientAddress  string          `json:"client_address"`
	ClientDistrict string          `json:"client_district"`
	ClientPhone    string          `json:"client_phone"`
	ClientEmail    string          `json:"client_email"`
	UnitID         string          `json:"unit_id"`
	DiscountType   string          `json:"discount_type"` // PORC | MONTO
	DiscountValue  decimal.Decimal `json:"discount_value"`
	DownPayment    decimal.Decimal `json:"down_payment"`
	Notes          string          `json:"notes"`
}

// QuoteResponse salida de una cotización finalizada.
type QuoteResponse struct {
	ID             string              `json:"id"`
	Number         string              `json:"number"`
	ClientName     string              `json:"client_name"`
	ClientDNI      string              `json:"client_dni"`
	ClientAddress  string              `json:"client_address"`
	ClientDistrict string              `json:"client_district"`
	ClientPhone    string              `json:"client_phone"`
	ClientEmail    string              `json:"client_email,omitempty"`
	UnitID         string              `json:"unit_id"`
	DiscountType   string              `json:"discount_type"`
	DiscountValue  decimal.Decimal     `json:"discount_value"`
	DownPayment    decimal.Decimal     `json:"down_payment"`
	FinalPrice     decimal.Decimal     `json:"final_price"`
	Snapshot       entity.UnitSnapshot `json:"snapshot"`
	Notes          string              `json:"notes,omitempty"`
	CreatedBy      string              `json:"created_by"`
	CreatedAt      time.Time           `json:"created_at"`
}

// QuoteListResponse lista paginada de cotizaciones activas.
type QuoteListResponse struct {
	Items []QuoteResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
