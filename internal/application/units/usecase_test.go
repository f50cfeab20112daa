package units_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinces1leon/inmobiliaria-mye/internal/application/dto"
	"github.com/vinces1leon/inmobiliaria-mye/internal/application/units"
	"github.com/vinces1leon/inmobiliaria-mye/internal/domain"
	"github.com/vinces1leon/inmobiliaria-mye/internal/domain/entity"
)

type fakeUnitRepo struct {
	units map[string]*entity.Unit
}

func newFakeUnitRepo() *fakeUnitRepo {
	return &fakeUnitRepo{units: make(map[string]*entity.Unit)}
}

func (f *fakeUnitRepo) Create(u *entity.Unit) error {
	cp := *u
	f.units[u.ID] = &cp
	return nil
}
func (f *fakeUnitRepo) GetByID(id string) (*entity.Unit, error) {
	u, ok := f.units[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}
func (f *fakeUnitRepo) GetByCode(code string) (*entity.Unit, error) {
	for _, u := range f.units {
		if u.Code == code {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}
func (f *fakeUnitRepo) List(limit, offset int) ([]*entity.Unit, error) {
	var out []*entity.Unit
	for _, u := range f.units {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}
func (f *fakeUnitRepo) ListAvailable(limit, offset int) ([]*entity.Unit, error) {
	var out []*entity.Unit
	for _, u := range f.units {
		if u.Available {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}
func (f *fakeUnitRepo) Update(u *entity.Unit) error {
	cp := *u
	f.units[u.ID] = &cp
	return nil
}
func (f *fakeUnitRepo) Delete(id string) error { delete(f.units, id); return nil }
func (f *fakeUnitRepo) SetPhotoKey(id, photoKey string) error {
	if u, ok := f.units[id]; ok {
		u.PhotoKey = photoKey
	}
	return nil
}

type fakeStorage struct {
	uploads map[string][]byte
	lastCT  string
}

func (s *fakeStorage) Upload(_ context.Context, key string, data []byte, contentType string) error {
	if s.uploads == nil {
		s.uploads = make(map[string][]byte)
	}
	s.uploads[key] = data
	s.lastCT = contentType
	return nil
}

func createReq() dto.CreateUnitRequest {
	return dto.CreateUnitRequest{
		Code:      "DPTO-101",
		Name:      "Departamento 101",
		BasePrice: decimal.NewFromInt(500000),
		AreaM2:    decimal.NewFromFloat(85.5),
		Bedrooms:  3,
		Bathrooms: 2,
		Floor:     "Piso 1",
	}
}

func TestCreate_CodigoDuplicado(t *testing.T) {
	uc := units.NewUseCase(newFakeUnitRepo(), &fakeStorage{})

	first, err := uc.Create(createReq())
	require.NoError(t, err)
	assert.True(t, first.Available, "sin status explícito arranca disponible")
	assert.Equal(t, entity.UnitStatusDisponible, first.Status)

	_, err = uc.Create(createReq())
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreate_PrecioBaseInvalido(t *testing.T) {
	uc := units.NewUseCase(newFakeUnitRepo(), &fakeStorage{})
	in := createReq()
	in.BasePrice = decimal.Zero
	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Update con campos nil no toca lo existente; status vendido apaga Available.
func TestUpdate_CamposParciales(t *testing.T) {
	uc := units.NewUseCase(newFakeUnitRepo(), &fakeStorage{})
	created, err := uc.Create(createReq())
	require.NoError(t, err)

	vendido := entity.UnitStatusVendido
	updated, err := uc.Update(created.ID, dto.UpdateUnitRequest{Status: &vendido})
	require.NoError(t, err)
	assert.Equal(t, entity.UnitStatusVendido, updated.Status)
	assert.False(t, updated.Available)
	assert.Equal(t, "Departamento 101", updated.Name, "el nombre no debe cambiar")
	assert.True(t, updated.BasePrice.Equal(decimal.NewFromInt(500000)))
}

func TestUpdate_StatusInvalido(t *testing.T) {
	uc := units.NewUseCase(newFakeUnitRepo(), &fakeStorage{})
	created, err := uc.Create(createReq())
	require.NoError(t, err)

	otro := "alquilado"
	_, err = uc.Update(created.ID, dto.UpdateUnitRequest{Status: &otro})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUploadPhoto_GuardaReferencia(t *testing.T) {
	repo := newFakeUnitRepo()
	storage := &fakeStorage{}
	uc := units.NewUseCase(repo, storage)
	created, err := uc.Create(createReq())
	require.NoError(t, err)

	resp, err := uc.UploadPhoto(context.Background(), created.ID, "fachada.JPG", []byte("jpegdata"), "image/jpeg")
	require.NoError(t, err)
	require.NotEmpty(t, resp.PhotoKey)
	assert.Contains(t, resp.PhotoKey, "units/"+created.ID+"/")
	assert.Equal(t, []byte("jpegdata"), storage.uploads[resp.PhotoKey])

	// El repo quedó con la referencia
	again, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, resp.PhotoKey, again.PhotoKey)
}

func TestUploadPhoto_FormatoNoSoportado(t *testing.T) {
	uc := units.NewUseCase(newFakeUnitRepo(), &fakeStorage{})
	created, err := uc.Create(createReq())
	require.NoError(t, err)

	_, err = uc.UploadPhoto(context.Background(), created.ID, "plano.pdf", []byte("x"), "application/pdf")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListAvailable_SoloDisponibles(t *testing.T) {
	uc := units.NewUseCase(newFakeUnitRepo(), &fakeStorage{})
	_, err := uc.Create(createReq())
	require.NoError(t, err)

	in := createReq()
	in.Code = "DPTO-102"
	in.Status = entity.UnitStatusVendido
	_, err = uc.Create(in)
	require.NoError(t, err)

	all, err := uc.List(dto.PageRequest{}, false)
	require.NoError(t, err)
	assert.Len(t, all.Items, 2)

	avail, err := uc.List(dto.PageRequest{}, true)
	require.NoError(t, err)
	require.Len(t, avail.Items, 1)
	assert.Equal(t, "DPTO-101", avail.Items[0].Code)
}
