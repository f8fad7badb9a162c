package dto

// ProductDTO producto con su tablero de columnas y la sugerencia de ubicación.
type ProductDTO struct {
	ID           string         `json:"id"`
	Code         string         `json:"code"`
	Name         string         `json:"name"`
	Color        string         `json:"color"`
	ColorSuffix  string         `json:"color_suffix"`
	ColorName    string         `json:"color_name"`
	Material     string         `json:"material,omitempty"`
	Floor        int            `json:"floor"`
	Columns      []ColumnDTO    `json:"columns"`
	TotalBoxes   int            `json:"total_boxes"`
	Category     string         `json:"category"`
	Suggestion   *SuggestionDTO `json:"suggestion"` // null = sin espacio, usar la gordura
	OverflowOpen int            `json:"overflow_open"`
}

// ProductDetailDTO producto más sus entradas pendientes en la gordura.
type ProductDetailDTO struct {
	ProductDTO
	Waiting []OverflowEntryDTO `json:"waiting"`
}

// ProductSearchResponse respuesta de GET /api/products/search.
type ProductSearchResponse struct {
	Count    int          `json:"count"`
	Products []ProductDTO `json:"products"`
}
