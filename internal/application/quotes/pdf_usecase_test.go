package quotes

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinces1leon/inmobiliaria-mye/internal/domain"
	"github.com/vinces1leon/inmobiliaria-mye/internal/domain/entity"
)

type fakePDFGenerator struct {
	lastPhoto []byte
	calls     int
}

func (g *fakePDFGenerator) GenerateQuotePDF(_ context.Context, q *entity.Quote, photo []byte) ([]byte, error) {
	g.calls++
	g.lastPhoto = photo
	return []byte("%PDF-1.7 " + q.Number), nil
}

type fakePhotoFetcher struct {
	data map[string][]byte
	err  error
}

func (f *fakePhotoFetcher) Fetch(_ context.Context, key string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.data[key], nil
}

func buildPDFFixture(t *testing.T, withPhoto bool) (*PDFUseCase, *fakePDFGenerator, *fakeQuoteRepo, string) {
	t.Helper()
	unit := testUnit()
	if withPhoto {
		unit.PhotoKey = "units/unit-1/foto.jpg"
	}
	quoteRepo := newFakeQuoteRepo()
	unitRepo := newFakeUnitRepo(unit)
	createUC, _ := buildCreateUC(quoteRepo, unitRepo)

	resp, err := createUC.Create(context.Background(), "user-1", validRequest())
	require.NoError(t, err)

	gen := &fakePDFGenerator{}
	fetcher := &fakePhotoFetcher{data: map[string][]byte{"units/unit-1/foto.jpg": []byte("jpegdata")}}
	return NewPDFUseCase(quoteRepo, unitRepo, fetcher, gen), gen, quoteRepo, resp.ID
}

// Cotización sin foto: el PDF se genera igual, sin página de imagen.
func TestDownloadQuotePDF_SinFoto(t *testing.T) {
	uc, gen, _, quoteID := buildPDFFixture(t, false)

	pdf, filename, err := uc.DownloadQuotePDF(context.Background(), quoteID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(pdf), "%PDF"))
	assert.Nil(t, gen.lastPhoto, "sin PhotoKey no debe llegar foto al generador")
	assert.True(t, strings.HasPrefix(filename, "cotizacion_01_"), "filename fue %s", filename)
	assert.True(t, strings.HasSuffix(filename, ".pdf"))
}

// Con foto en el bucket, los bytes llegan al generador.
func TestDownloadQuotePDF_ConFoto(t *testing.T) {
	uc, gen, _, quoteID := buildPDFFixture(t, true)

	_, _, err := uc.DownloadQuotePDF(context.Background(), quoteID)
	require.NoError(t, err)
	assert.Equal(t, []byte("jpegdata"), gen.lastPhoto)
}

// Fallo al descargar la foto: se loguea y el PDF sale sin foto, nunca aborta.
func TestDownloadQuotePDF_FalloDeFotoNoEsFatal(t *testing.T) {
	uc, gen, _, quoteID := buildPDFFixture(t, true)
	uc.fetcher = &fakePhotoFetcher{err: errors.New("bucket caído")}

	pdf, _, err := uc.DownloadQuotePDF(context.Background(), quoteID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(pdf), "%PDF"))
	assert.Nil(t, gen.lastPhoto)
}

// Cotización inexistente o inactiva → ErrNotFound.
func TestDownloadQuotePDF_InactivaInvisible(t *testing.T) {
	uc, _, quoteRepo, quoteID := buildPDFFixture(t, false)
	require.NoError(t, quoteRepo.Deactivate(quoteID))

	_, _, err := uc.DownloadQuotePDF(context.Background(), quoteID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, _, err = uc.DownloadQuotePDF(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Descuento PORC del 100%: el precio final queda en cero sin clamping, pero la
// cotización está finalizada (número + snapshot) y el PDF debe generarse igual.
func TestDownloadQuotePDF_DescuentoTotalGeneraPDF(t *testing.T) {
	quoteRepo := newFakeQuoteRepo()
	unitRepo := newFakeUnitRepo(testUnit())
	createUC, _ := buildCreateUC(quoteRepo, unitRepo)

	req := validRequest()
	req.DiscountType = entity.DiscountPercent
	req.DiscountValue = decimal.NewFromInt(100)
	resp, err := createUC.Create(context.Background(), "user-1", req)
	require.NoError(t, err)
	require.True(t, resp.FinalPrice.IsZero(), "con 100%% de descuento el precio final es cero")

	uc := NewPDFUseCase(quoteRepo, unitRepo, &fakePhotoFetcher{}, &fakePDFGenerator{})
	pdf, filename, err := uc.DownloadQuotePDF(context.Background(), resp.ID)
	require.NoError(t, err, "cotización finalizada con precio cero debe generar PDF")
	assert.True(t, strings.HasPrefix(string(pdf), "%PDF"))
	assert.True(t, strings.HasPrefix(filename, "cotizacion_01_"))
}

// Cotización sin finalizar (sin número ni snapshot): error fatal ErrMissingPrice.
func TestDownloadQuotePDF_SinFinalizarEsFatal(t *testing.T) {
	quoteRepo := newFakeQuoteRepo()
	q := &entity.Quote{ID: "q-raw", UnitID: "unit-1", Active: true}
	quoteRepo.quotes[q.ID] = q
	quoteRepo.order = append(quoteRepo.order, q.ID)

	uc := NewPDFUseCase(quoteRepo, newFakeUnitRepo(testUnit()), &fakePhotoFetcher{}, &fakePDFGenerator{})
	_, _, err := uc.DownloadQuotePDF(context.Background(), q.ID)
	assert.ErrorIs(t, err, domain.ErrMissingPrice)
}
