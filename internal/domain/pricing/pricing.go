// Package pricing implementa el motor de precios de cotizaciones: cálculo del
// precio final, correlativo de numeración y captura del snapshot de presentación.
// Son funciones puras; la persistencia ocurre en la capa de aplicación, dentro
// de una transacción serializable (el correlativo lee el máximo y escribe).
package pricing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vinces1leon/inmobiliaria-mye/internal/domain/entity"
)

// Discount especifica el descuento de una cotización.
type Discount struct {
	Type  string // entity.DiscountPercent | entity.DiscountAmount
	Value decimal.Decimal
}

// FinalPrice calcula el precio final: (base + markup) ajustado por el descuento.
// PORC multiplica por (1 - valor/100); MONTO resta el valor directamente.
// No hay clamping: si el resultado queda negativo es un problema de presentación,
// no del motor.
func FinalPrice(basePrice, markup decimal.Decimal, d Discount) decimal.Decimal {
	adjusted := basePrice.Add(markup)
	switch d.Type {
	case entity.DiscountPercent:
		factor := decimal.NewFromInt(1).Sub(d.Value.Div(decimal.NewFromInt(100)))
		return adjusted.Mul(factor)
	case entity.DiscountAmount:
		return adjusted.Sub(d.Value)
	default:
		return adjusted
	}
}

// DiscountAmount devuelve el monto descontado (para la línea de descuento del PDF).
func DiscountAmount(basePrice, markup decimal.Decimal, d Discount) decimal.Decimal {
	adjusted := basePrice.Add(markup)
	switch d.Type {
	case entity.DiscountPercent:
		return adjusted.Mul(d.Value).Div(decimal.NewFromInt(100))
	case entity.DiscountAmount:
		return d.Value
	default:
		return decimal.Zero
	}
}

// Balance calcula el saldo a financiar: precio final - cuota inicial - cuota de separación.
func Balance(finalPrice, downPayment, separationFee decimal.Decimal) decimal.Decimal {
	return finalPrice.Sub(downPayment).Sub(separationFee)
}

// NumberSeq extrae el sufijo numérico de un número de cotización ("cotizacion_07" -> 7).
func NumberSeq(number string) (int, error) {
	rest, ok := strings.CutPrefix(number, entity.NumberPrefix)
	if !ok {
		return 0, fmt.Errorf("número de cotización malformado: %q", number)
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, fmt.Errorf("sufijo no numérico en %q: %w", number, err)
	}
	return n, nil
}

// FormatNumber arma el número correlativo: "cotizacion_" + entero con mínimo
// dos dígitos (desde 100 simplemente se ensancha, sin truncar).
func FormatNumber(seq int) string {
	return fmt.Sprintf("%s%02d", entity.NumberPrefix, seq)
}

// NextNumber devuelve el siguiente correlativo a partir del mayor número ya
// asignado. Con last vacío (no hay cotizaciones) arranca en 1.
func NextNumber(last string) (string, error) {
	if last == "" {
		return FormatNumber(1), nil
	}
	seq, err := NumberSeq(last)
	if err != nil {
		return "", err
	}
	return FormatNumber(seq + 1), nil
}

// ShortNumber devuelve el número sin el prefijo, con mínimo dos dígitos
// ("cotizacion_7" -> "07"). Si el número es ilegible, lo devuelve tal cual.
func ShortNumber(number string) string {
	seq, err := NumberSeq(number)
	if err != nil {
		return number
	}
	return fmt.Sprintf("%02d", seq)
}

// ShortCode recorta el prefijo del código del departamento ("DPTO-101" -> "101").
func ShortCode(code string) string {
	if i := strings.LastIndexAny(code, "-_"); i >= 0 && i < len(code)-1 {
		return code[i+1:]
	}
	return code
}

// FormatMoney formatea un monto en soles con separador de miles y dos decimales:
// 550000 -> "S/. 550,000.00".
func FormatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")
	n := len(intPart)
	if n > 3 {
		buf := make([]byte, 0, n+n/3)
		for i := 0; i < n; i++ {
			if i > 0 && (n-i)%3 == 0 {
				buf = append(buf, ',')
			}
			buf = append(buf, intPart[i])
		}
		intPart = string(buf)
	}
	out := "S/. " + intPart + "." + fracPart
	if neg {
		out = "S/. -" + intPart + "." + fracPart
	}
	return out
}

// Snapshot captura la copia congelada de presentación del departamento.
// El precio de lista mostrado ya incluye el markup; es solo para mostrar,
// el precio final siempre se calcula desde el precio base vivo del departamento.
func Snapshot(unit *entity.Unit, markup decimal.Decimal) entity.UnitSnapshot {
	return entity.UnitSnapshot{
		Version:   entity.SnapshotVersion,
		Name:      unit.Name,
		Code:      ShortCode(unit.Code),
		AreaM2:    unit.AreaM2.StringFixed(2) + " m²",
		AreaLibre: unit.AreaLibre.StringFixed(2) + " m²",
		ListPrice: FormatMoney(unit.BasePrice.Add(markup)),
	}
}

// ValidDNI verifica que el DNI tenga exactamente 8 dígitos numéricos.
func ValidDNI(dni string) bool {
	if len(dni) != 8 {
		return false
	}
	for _, c := range dni {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
