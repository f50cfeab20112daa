// Package pdf implementa la generación del documento de cotización que el
// vendedor entrega al cliente.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  MEMBRETE: Inmobiliaria + "COTIZACIÓN DE DEPARTAMENTO"       │
//	│            N° 07 + fecha de emisión                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: nombre, DNI, dirección, distrito, teléfono, email  │
//	│           emisión / vencimiento                              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DEPARTAMENTO (desde el snapshot congelado)                  │
//	│  DESCUENTO (solo si aplica)                                  │
//	│  PRECIO FINAL                                                │
//	│  FORMA DE PAGO: precio / inicial / separación / saldo        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  NOTAS DEL PROCESO + CONTACTO                                │
//	└─────────────────────────────────────────────────────────────┘
//	┌─ página 2 (opcional) ────────────────────────────────────────┐
//	│  FOTO DEL DEPARTAMENTO (rotada 90°)                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"bytes"
	"context"
	"fmt"

	"github.com/disintegration/imaging"
	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	marotocfg "github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/vinces1leon/inmobiliaria-mye/internal/application/quotes"
	"github.com/vinces1leon/inmobiliaria-mye/internal/domain/entity"
	"github.com/vinces1leon/inmobiliaria-mye/internal/domain/pricing"
	"github.com/vinces1leon/inmobiliaria-mye/pkg/config"
)

var _ quotes.QuotePDFGenerator = (*QuoteGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 21, Green: 67, Blue: 96}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// QuoteGenerator implementa quotes.QuotePDFGenerator usando Maroto v2.
type QuoteGenerator struct {
	business config.BusinessConfig
}

// NewQuoteGenerator construye el generador con los datos de la inmobiliaria.
func NewQuoteGenerator(business config.BusinessConfig) *QuoteGenerator {
	return &QuoteGenerator{business: business}
}

// GenerateQuotePDF genera el PDF de la cotización y devuelve sus bytes.
// photo es la foto del departamento (nil si no hay); si no se puede decodificar
// se loguea y el documento sale sin la página de foto.
func (g *QuoteGenerator) GenerateQuotePDF(_ context.Context, q *entity.Quote, photo []byte) ([]byte, error) {
	cfg := marotocfg.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Cotización "+q.Number, true).
		WithAuthor(g.business.CompanyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRows(q)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.clientRows(q)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(unitRows(q.Snapshot)...)
	if q.DiscountValue.GreaterThan(decimal.Zero) {
		m.AddRows(discountRow(q))
	}
	m.AddRows(totalRow(q))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.paymentRows(q)...)
	m.AddRows(line.NewRow(4))
	m.AddRows(g.notesRows(q)...)

	if len(photo) > 0 {
		if photoRow, err := rotatedPhotoRow(photo); err != nil {
			log.Warn().Err(err).Str("quote", q.Number).Msg("pdf: foto ilegible, se omite la página")
		} else {
			m.AddPages(page.New().Add(
				row.New(8).Add(col.New(12).Add(
					text.New("FOTO DEL DEPARTAMENTO", props.Text{
						Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 1,
					}),
				)),
				photoRow,
			))
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRows: membrete con el nombre de la inmobiliaria, el título del
// documento y el número corto (cotizacion_07 -> N° 07).
func (g *QuoteGenerator) headerRows(q *entity.Quote) []core.Row {
	return []core.Row{
		row.New(20).Add(
			col.New(7).Add(
				text.New(g.business.CompanyName, props.Text{
					Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
				}),
				text.New(g.business.CompanyAddress, props.Text{
					Size: 8, Top: 10, Color: colorGray,
				}),
				text.New("Tel: "+g.business.CompanyPhone+"   |   "+g.business.CompanyEmail, props.Text{
					Size: 8, Top: 15, Color: colorGray,
				}),
			),
			col.New(5).Add(
				text.New("COTIZACIÓN DE DEPARTAMENTO", props.Text{
					Style: fontstyle.Bold, Size: 9, Align: align.Right,
					Color: colorPrimary, Top: 1,
				}),
				text.New("N° "+pricing.ShortNumber(q.Number), props.Text{
					Style: fontstyle.Bold, Size: 13, Align: align.Right, Top: 7,
				}),
				text.New("Fecha: "+q.CreatedAt.Format("02/01/2006"), props.Text{
					Size: 8, Align: align.Right, Top: 15, Color: colorGray,
				}),
			),
		),
	}
}

// clientRows: datos del cliente y vigencia de la cotización.
func (g *QuoteGenerator) clientRows(q *entity.Quote) []core.Row {
	expiry := q.CreatedAt.AddDate(0, 0, g.business.QuoteValidDays)
	return []core.Row{
		row.New(22).Add(
			col.New(7).Add(
				text.New("DATOS DEL CLIENTE", props.Text{
					Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
				}),
				text.New(q.ClientName, props.Text{
					Style: fontstyle.Bold, Size: 11, Top: 6,
				}),
				text.New("DNI: "+q.ClientDNI, props.Text{Size: 9, Top: 12}),
				text.New(fmt.Sprintf("%s, %s",
					nonEmpty(q.ClientAddress, "—"),
					nonEmpty(q.ClientDistrict, "—"),
				), props.Text{Size: 9, Top: 17, Color: colorGray}),
			),
			col.New(5).Add(
				text.New("Tel: "+nonEmpty(q.ClientPhone, "—"), props.Text{
					Size: 9, Align: align.Right, Top: 6,
				}),
				text.New("Email: "+nonEmpty(q.ClientEmail, "—"), props.Text{
					Size: 9, Align: align.Right, Top: 11,
				}),
				text.New("Válida hasta: "+expiry.Format("02/01/2006"), props.Text{
					Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 17, Color: colorPrimary,
				}),
			),
		),
	}
}

// unitRows: resumen del departamento tomado exclusivamente del snapshot
// congelado al emitir; nunca se recalcula desde el maestro vivo.
func unitRows(snap entity.UnitSnapshot) []core.Row {
	item := func(label, value string) core.Row {
		return row.New(6).Add(
			col.New(4).Add(text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 1,
			})),
			col.New(8).Add(text.New(nonEmpty(value, "—"), props.Text{
				Size: 9, Top: 1,
			})),
		)
	}
	return []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New("DEPARTAMENTO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
			}),
		)),
		item("Proyecto / unidad:", snap.Name),
		item("N° de departamento:", snap.Code),
		item("Área techada:", snap.AreaM2),
		item("Área libre:", snap.AreaLibre),
		item("Precio de lista:", snap.ListPrice),
	}
}

// discountRow: solo se agrega cuando hay descuento. PORC muestra el porcentaje
// y el monto equivalente; MONTO solo el monto.
func discountRow(q *entity.Quote) core.Row {
	label := "Descuento:"
	if q.DiscountType == entity.DiscountPercent {
		label = fmt.Sprintf("Descuento (%s%%):", q.DiscountValue.StringFixed(0))
	}
	return row.New(6).Add(
		col.New(4).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Top: 1,
		})),
		col.New(8).Add(text.New("- "+pricing.FormatMoney(discountAmount(q)), props.Text{
			Size: 9, Top: 1,
		})),
	)
}

// totalRow: el precio final siempre está presente (sin él la generación ni
// siquiera llega acá).
func totalRow(q *entity.Quote) core.Row {
	return row.New(10).Add(
		col.New(4).Add(text.New("PRECIO FINAL:", props.Text{
			Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 2,
		})),
		col.New(8).Add(text.New(pricing.FormatMoney(q.FinalPrice), props.Text{
			Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 2,
		})),
	)
}

// paymentRows: desglose de la forma de pago.
func (g *QuoteGenerator) paymentRows(q *entity.Quote) []core.Row {
	fee := decimal.NewFromInt(g.business.SeparationFee)
	balance := pricing.Balance(q.FinalPrice, q.DownPayment, fee)

	item := func(label, value string, bold bool) core.Row {
		style := fontstyle.Normal
		if bold {
			style = fontstyle.Bold
		}
		return row.New(6).Add(
			col.New(6).Add(text.New(label, props.Text{Size: 9, Top: 1})),
			col.New(6).Add(text.New(value, props.Text{
				Style: style, Size: 9, Align: align.Right, Top: 1,
			})),
		)
	}
	return []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New("FORMA DE PAGO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
			}),
		)),
		item("Precio de venta:", pricing.FormatMoney(q.FinalPrice), false),
		item("Cuota inicial:", pricing.FormatMoney(q.DownPayment), false),
		item("Cuota de separación:", pricing.FormatMoney(fee), false),
		item("Saldo a financiar:", pricing.FormatMoney(balance), true),
	}
}

// notesRows: notas del proceso de compra, observaciones de la cotización y
// bloque de contacto.
func (g *QuoteGenerator) notesRows(q *entity.Quote) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("NOTAS", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
		row.New(16).Add(col.New(12).Add(
			text.New(
				"La separación del departamento se realiza con el pago de la cuota de separación "+
					"y tiene carácter de reserva. Los precios están expresados en soles e incluyen "+
					"el IGV. Esta cotización no constituye compromiso de venta y está sujeta a "+
					"disponibilidad de la unidad.",
				props.Text{Size: 8, Color: colorGray, Top: 1},
			),
		)),
	}
	if q.Notes != "" {
		rows = append(rows, row.New(10).Add(col.New(12).Add(
			text.New("Observaciones: "+q.Notes, props.Text{Size: 8, Top: 1}),
		)))
	}
	rows = append(rows, row.New(12).Add(col.New(12).Add(
		text.New("Atención y consultas:", props.Text{
			Style: fontstyle.Bold, Size: 8, Top: 2,
		}),
		text.New(fmt.Sprintf("%s   |   Tel: %s   |   %s",
			g.business.CompanyName, g.business.CompanyPhone, g.business.CompanyEmail,
		), props.Text{Size: 8, Top: 7, Color: colorGray}),
	)))
	return rows
}

// rotatedPhotoRow decodifica la foto, la rota 90° (las fotos llegan en
// vertical desde el celular del vendedor) y la arma como fila de imagen.
func rotatedPhotoRow(photo []byte) (core.Row, error) {
	img, err := imaging.Decode(bytes.NewReader(photo))
	if err != nil {
		return nil, fmt.Errorf("decodificar foto: %w", err)
	}
	rotated := imaging.Rotate90(img)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, rotated, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return nil, fmt.Errorf("re-encodear foto: %w", err)
	}

	return row.New(180).Add(col.New(12).Add(
		image.NewFromBytes(buf.Bytes(), extension.Jpeg, props.Rect{
			Center:  true,
			Percent: 95,
		}),
	)), nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// discountAmount reconstruye el monto descontado a partir del precio final:
// para PORC, final = lista*(1 - v/100), así que monto = final*v/(100-v).
func discountAmount(q *entity.Quote) decimal.Decimal {
	switch q.DiscountType {
	case entity.DiscountPercent:
		den := decimal.NewFromInt(100).Sub(q.DiscountValue)
		if den.IsZero() {
			return decimal.Zero
		}
		return q.FinalPrice.Mul(q.DiscountValue).Div(den)
	case entity.DiscountAmount:
		return q.DiscountValue
	}
	return decimal.Zero
}
