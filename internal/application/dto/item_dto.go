package dto

// CreateItemRequest entrada para registrar un artículo en el catálogo.
type CreateItemRequest struct {
	Code     string `json:"code" validate:"required,min=1,max=50"`
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Category string `json:"category"`
	Quantity int    `json:"quantity" validate:"min=0"`
	MinLevel int    `json:"min_level" validate:"min=0"`
	MaxLevel int    `json:"max_level" validate:"min=0"`
}

// UpdateItemRequest entrada para editar un artículo. Campos nil no se tocan.
// Quantity editable solo por admin; las correcciones normales van por movimientos.
type UpdateItemRequest struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
	Quantity *int    `json:"quantity"`
	MinLevel *int    `json:"min_level"`
	MaxLevel *int    `json:"max_level"`
}

// ItemResponse salida de un artículo con su clasificación de stock derivada.
type ItemResponse struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
	MinLevel int    `json:"min_level"`
	MaxLevel int    `json:"max_level"`
	Status   string `json:"status"` // ok | low_stock | out_of_stock
}

// ItemListResponse listado del catálogo.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Total int            `json:"total"`
}
