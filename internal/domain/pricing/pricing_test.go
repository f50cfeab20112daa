package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinces1leon/inmobiliaria-mye/internal/domain/entity"
	"github.com/vinces1leon/inmobiliaria-mye/internal/domain/pricing"
)

var markup = decimal.NewFromInt(50000)

// Precio base 500,000 + markup 50,000 = 550,000 ajustado; 10% -> 495,000.
func TestFinalPrice_DescuentoPorcentaje(t *testing.T) {
	got := pricing.FinalPrice(
		decimal.NewFromInt(500000), markup,
		pricing.Discount{Type: entity.DiscountPercent, Value: decimal.NewFromInt(10)},
	)
	assert.True(t, got.Equal(decimal.NewFromInt(495000)), "esperado 495000, calculado %s", got)
}

// Mismo ajustado 550,000; monto fijo 20,000 -> 530,000.
func TestFinalPrice_DescuentoMonto(t *testing.T) {
	got := pricing.FinalPrice(
		decimal.NewFromInt(500000), markup,
		pricing.Discount{Type: entity.DiscountAmount, Value: decimal.NewFromInt(20000)},
	)
	assert.True(t, got.Equal(decimal.NewFromInt(530000)), "esperado 530000, calculado %s", got)
}

// Sin tipo de descuento reconocido se cobra el precio ajustado completo.
func TestFinalPrice_SinDescuento(t *testing.T) {
	got := pricing.FinalPrice(decimal.NewFromInt(500000), markup, pricing.Discount{})
	assert.True(t, got.Equal(decimal.NewFromInt(550000)))
}

// El motor no hace clamping: un descuento mayor al precio deja el valor negativo.
func TestFinalPrice_SinClamping(t *testing.T) {
	got := pricing.FinalPrice(
		decimal.NewFromInt(1000), decimal.Zero,
		pricing.Discount{Type: entity.DiscountAmount, Value: decimal.NewFromInt(5000)},
	)
	assert.True(t, got.IsNegative())
}

func TestDiscountAmount(t *testing.T) {
	base := decimal.NewFromInt(500000)

	porc := pricing.DiscountAmount(base, markup, pricing.Discount{
		Type: entity.DiscountPercent, Value: decimal.NewFromInt(10),
	})
	assert.True(t, porc.Equal(decimal.NewFromInt(55000)), "10%% de 550000 = 55000, calculado %s", porc)

	monto := pricing.DiscountAmount(base, markup, pricing.Discount{
		Type: entity.DiscountAmount, Value: decimal.NewFromInt(20000),
	})
	assert.True(t, monto.Equal(decimal.NewFromInt(20000)))
}

// Precio final 530,000 - inicial 50,000 - separación 1,500 = 478,500.
func TestBalance(t *testing.T) {
	got := pricing.Balance(
		decimal.NewFromInt(530000),
		decimal.NewFromInt(50000),
		decimal.NewFromInt(1500),
	)
	assert.True(t, got.Equal(decimal.NewFromInt(478500)), "esperado 478500, calculado %s", got)
}

func TestNextNumber(t *testing.T) {
	tests := []struct {
		name string
		last string
		want string
	}{
		{"sin cotizaciones arranca en 1", "", "cotizacion_01"},
		{"incrementa el sufijo", "cotizacion_01", "cotizacion_02"},
		{"dos digitos", "cotizacion_41", "cotizacion_42"},
		{"pasa de 99 a 100 sin truncar", "cotizacion_99", "cotizacion_100"},
		{"mas de dos digitos se ensancha", "cotizacion_100", "cotizacion_101"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pricing.NextNumber(tt.last)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextNumber_Malformado(t *testing.T) {
	_, err := pricing.NextNumber("factura_07")
	assert.Error(t, err)

	_, err = pricing.NextNumber("cotizacion_xx")
	assert.Error(t, err)
}

// La secuencia generada desde cero es exactamente 1..N, sin saltos ni repetidos.
func TestNextNumber_SecuenciaCompleta(t *testing.T) {
	last := ""
	for i := 1; i <= 120; i++ {
		next, err := pricing.NextNumber(last)
		require.NoError(t, err)
		seq, err := pricing.NumberSeq(next)
		require.NoError(t, err)
		require.Equal(t, i, seq)
		last = next
	}
}

func TestShortNumber(t *testing.T) {
	assert.Equal(t, "07", pricing.ShortNumber("cotizacion_07"))
	assert.Equal(t, "07", pricing.ShortNumber("cotizacion_7"))
	assert.Equal(t, "104", pricing.ShortNumber("cotizacion_104"))
	// ilegible: se devuelve tal cual
	assert.Equal(t, "otra_cosa", pricing.ShortNumber("otra_cosa"))
}

func TestShortCode(t *testing.T) {
	assert.Equal(t, "101", pricing.ShortCode("DPTO-101"))
	assert.Equal(t, "302", pricing.ShortCode("depa_302"))
	assert.Equal(t, "A101", pricing.ShortCode("A101"))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "S/. 550,000.00", pricing.FormatMoney(decimal.NewFromInt(550000)))
	assert.Equal(t, "S/. 1,000,000.00", pricing.FormatMoney(decimal.NewFromInt(1000000)))
	assert.Equal(t, "S/. 950.50", pricing.FormatMoney(decimal.NewFromFloat(950.5)))
	assert.Equal(t, "S/. 0.00", pricing.FormatMoney(decimal.Zero))
}

func TestValidDNI(t *testing.T) {
	assert.False(t, pricing.ValidDNI("1234567"), "7 dígitos debe rechazarse")
	assert.True(t, pricing.ValidDNI("12345678"), "8 dígitos debe aceptarse")
	assert.False(t, pricing.ValidDNI("123456789"))
	assert.False(t, pricing.ValidDNI("1234567a"))
	assert.False(t, pricing.ValidDNI(""))
}

func TestSnapshot(t *testing.T) {
	unit := &entity.Unit{
		Code:      "DPTO-101",
		Name:      "Vista al Parque",
		BasePrice: decimal.NewFromInt(500000),
		AreaM2:    decimal.NewFromFloat(85.5),
		AreaLibre: decimal.NewFromFloat(12.25),
	}

	snap := pricing.Snapshot(unit, markup)

	assert.Equal(t, entity.SnapshotVersion, snap.Version)
	assert.Equal(t, "Vista al Parque", snap.Name)
	assert.Equal(t, "101", snap.Code)
	assert.Equal(t, "85.50 m²", snap.AreaM2)
	assert.Equal(t, "12.25 m²", snap.AreaLibre)
	// el precio de lista mostrado incluye el markup
	assert.Equal(t, "S/. 550,000.00", snap.ListPrice)
	assert.False(t, snap.IsZero())
}
