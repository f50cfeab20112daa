package entity

// SnapshotVersion versión vigente del value object UnitSnapshot.
// Si el esquema de Unit cambia de forma, las cotizaciones viejas siguen
// siendo renderizables porque el snapshot guarda su propia versión.
const SnapshotVersion = 1

// UnitSnapshot es la copia congelada de los campos de presentación del
// departamento, capturada una sola vez al finalizar la cotización.
// Es solo para mostrar: el precio final NUNCA se recalcula desde aquí.
type UnitSnapshot struct {
	Version   int    `json:"version"`
	Name      string `json:"name"`
	Code      string `json:"code"`       // código corto, sin prefijo
	AreaM2    string `json:"area_m2"`    // formateada, ej. "85.50 m²"
	AreaLibre string `json:"area_libre"` // formateada
	ListPrice string `json:"list_price"` // precio base + markup, formateado
}

// IsZero indica si el snapshot aún no fue capturado.
func (s UnitSnapshot) IsZero() bool {
	return s.Version == 0
}
