package entity

// Estados derivados del stock frente al mínimo. Solo presentación, nunca se persisten.
const (
	StockStatusOK  = "ok"
	StockStatusLow = "low_stock"
	StockStatusOut = "out_of_stock"
)

// Item representa un artículo del catálogo con su stock actual.
// Quantity solo se modifica vía el servicio de movimientos (o una edición explícita de admin).
type Item struct {
	Code     string // código único del artículo
	Name     string
	Category string
	Quantity int // existencias actuales, siempre >= 0
	MinLevel int // umbral de reposición
	MaxLevel int // capacidad indicativa; las entradas no se validan contra él
}

// StockStatus clasifica el stock actual: agotado, bajo mínimo u ok.
func (i *Item) StockStatus() string {
	switch {
	case i.Quantity == 0:
		return StockStatusOut
	case i.Quantity < i.MinLevel:
		return StockStatusLow
	default:
		return StockStatusOK
	}
}
