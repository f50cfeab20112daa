package quotes

import (
	"github.com/vinces1leon/inmobiliaria-mye/internal/application/dto"
	"github.com/vinces1leon/inmobiliaria-mye/internal/domain"
	"github.com/vinces1leon/inmobiliaria-mye/internal/domain/entity"
	"github.com/vinces1leon/inmobiliaria-mye/internal/domain/repository"
)

// UseCase operaciones de lectura y baja de cotizaciones. Las inactivas
// (soft delete) son invisibles por todas estas rutas.
type UseCase struct {
	quoteRepo repository.QuoteRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(quoteRepo repository.QuoteRepository) *UseCase {
	return &UseCase{quoteRepo: quoteRepo}
}

// GetByID obtiene una cotización activa por ID.
func (uc *UseCase) GetByID(id string) (*dto.QuoteResponse, error) {
	q, err := uc.quoteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}
	return toQuoteResponse(q), nil
}

// List lista cotizaciones activas, más recientes primero.
func (uc *UseCase) List(page dto.PageRequest) (*dto.QuoteListResponse, error) {
	page.DefaultPage()
	list, err := uc.quoteRepo.ListActive(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.QuoteResponse, 0, len(list))
	for _, q := range list {
		items = append(items, *toQuoteResponse(q))
	}
	return &dto.QuoteListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// SoftDelete marca la cotización como inactiva. El número asignado no se
// libera: los correlativos nunca se reusan.
func (uc *UseCase) SoftDelete(id string) error {
	q, err := uc.quoteRepo.GetByID(id)
	if err != nil {
		return err
	}
	if q == nil {
		return domain.ErrNotFound
	}
	return uc.quoteRepo.Deactivate(id)
}

func toQuoteResponse(q *entity.Quote) *dto.QuoteResponse {
	if q == nil {
		return nil
	}
	return &dto.QuoteResponse{
		ID:             q.ID,
		Number:         q.Number,
		ClientName:     q.ClientName,
		ClientDNI:      q.ClientDNI,
		ClientAddress:  q.ClientAddress,
		ClientDistrict: q.ClientDistrict,
		ClientPhone:    q.ClientPhone,
		ClientEmail:    q.ClientEmail,
		UnitID:         q.UnitID,
		DiscountType:   q.DiscountType,
		DiscountValue:  q.DiscountValue,
		DownPayment:    q.DownPayment,
		FinalPrice:     q.FinalPrice,
		Snapshot:       q.Snapshot,
		Notes:          q.Notes,
		CreatedBy:      q.CreatedBy,
		CreatedAt:      q.CreatedAt,
	}
}
