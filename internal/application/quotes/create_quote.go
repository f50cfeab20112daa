package quotes

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vinces1leon/inmobiliaria-mye/internal/application/dto"
	"github.com/vinces1leon/inmobiliaria-mye/internal/domain"
	"github.com/vinces1leon/inmobiliaria-mye/internal/domain/entity"
	"github.com/vinces1leon/inmobiliaria-mye/internal/domain/pricing"
	"github.com/vinces1leon/inmobiliaria-mye/internal/domain/repository"
)

// CreateQuoteUseCase emite una cotización: valida los datos del cliente,
// calcula el precio final, congela el snapshot del departamento y asigna el
// correlativo dentro de una transacción serializable.
type CreateQuoteUseCase struct {
	txRunner QuoteTxRunner
	unitRepo repository.UnitRepository
	business Business
}

// NewCreateQuoteUseCase construye el caso de uso.
func NewCreateQuoteUseCase(txRunner QuoteTxRunner, unitRepo repository.UnitRepository, business Business) *CreateQuoteUseCase {
	return &CreateQuoteUseCase{txRunner: txRunner, unitRepo: unitRepo, business: business}
}

// Create valida y emite la cotización. Los errores de formulario se devuelven
// como *dto.ValidationError sin tocar la base; una cotización mal formada
// nunca llega a tener número asignado.
func (uc *CreateQuoteUseCase) Create(ctx context.Context, userID string, in dto.CreateQuoteRequest) (*dto.QuoteResponse, error) {
	if fields := validateQuoteInput(in); len(fields) > 0 {
		return nil, &dto.ValidationError{Fields: fields}
	}

	unit, err := uc.unitRepo.GetByID(in.UnitID)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, domain.ErrNotFound
	}

	q := &entity.Quote{
		ID:             uuid.New().String(),
		ClientName:     in.ClientName,
		ClientDNI:      in.ClientDNI,
		ClientAddress:  in.ClientAddress,
		ClientDistrict: in.ClientDistrict,
		ClientPhone:    in.ClientPhone,
		ClientEmail:    in.ClientEmail,
		UnitID:         unit.ID,
		DiscountType:   in.DiscountType,
		DiscountValue:  in.DiscountValue,
		DownPayment:    in.DownPayment,
		Notes:          in.Notes,
		CreatedBy:      userID,
		CreatedAt:      time.Now(),
		Active:         true,
	}

	err = uc.txRunner.RunQuote(ctx, func(quoteRepo repository.QuoteRepository) error {
		// Cada intento parte de cero: si el intento anterior hizo rollback,
		// el número que calculó ya puede estar tomado por otra transacción.
		q.Number = ""
		q.Snapshot = entity.UnitSnapshot{}
		if err := uc.finalize(quoteRepo, q, unit); err != nil {
			return err
		}
		return quoteRepo.Create(q)
	})
	if err != nil {
		return nil, err
	}
	return toQuoteResponse(q), nil
}

// finalize asigna número, precio final y snapshot. Es idempotente: sobre una
// cotización ya finalizada no cambia nada.
func (uc *CreateQuoteUseCase) finalize(quoteRepo repository.QuoteRepository, q *entity.Quote, unit *entity.Unit) error {
	if q.Finalized() {
		return nil
	}
	// El precio final siempre sale del precio base vivo del departamento;
	// el snapshot es solo de presentación.
	q.FinalPrice = pricing.FinalPrice(unit.BasePrice, uc.business.Markup, pricing.Discount{
		Type:  q.DiscountType,
		Value: q.DiscountValue,
	})
	last, err := quoteRepo.LastAssignedNumber()
	if err != nil {
		return err
	}
	number, err := pricing.NextNumber(last)
	if err != nil {
		return err
	}
	q.Number = number
	q.Snapshot = pricing.Snapshot(unit, uc.business.Markup)
	return nil
}

func validateQuoteInput(in dto.CreateQuoteRequest) []dto.FieldError {
	var fields []dto.FieldError
	if in.ClientName == "" {
		fields = append(fields, dto.FieldError{Field: "client_name", Message: "el nombre del cliente es obligatorio"})
	}
	if !pricing.ValidDNI(in.ClientDNI) {
		fields = append(fields, dto.FieldError{Field: "client_dni", Message: "el DNI debe tener exactamente 8 dígitos"})
	}
	if in.ClientAddress == "" {
		fields = append(fields, dto.FieldError{Field: "client_address", Message: "la dirección es obligatoria"})
	}
	if in.ClientDistrict == "" {
		fields = append(fields, dto.FieldError{Field: "client_district", Message: "el distrito es obligatorio"})
	}
	if in.ClientPhone == "" {
		fields = append(fields, dto.FieldError{Field: "client_phone", Message: "el teléfono es obligatorio"})
	}
	if in.UnitID == "" {
		fields = append(fields, dto.FieldError{Field: "unit_id", Message: "debe seleccionar un departamento"})
	}
	switch in.DiscountType {
	case "", entity.DiscountPercent, entity.DiscountAmount:
	default:
		fields = append(fields, dto.FieldError{Field: "discount_type", Message: "tipo de descuento inválido (PORC o MONTO)"})
	}
	if in.DiscountValue.LessThan(decimal.Zero) {
		fields = append(fields, dto.FieldError{Field: "discount_value", Message: "el descuento no puede ser negativo"})
	}
	if in.DownPayment.LessThan(decimal.Zero) {
		fields = append(fields, dto.FieldError{Field: "down_payment", Message: "la cuota inicial no puede ser negativa"})
	}
	return fields
}
