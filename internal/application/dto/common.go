package dto

// PageRequest paginación de la tabla: índice base 0 y tamaño de página.
// Cero en PageSize significa "usar el tamaño por defecto".
type PageRequest struct {
	Page     int `query:"page" json:"page"`
	PageSize int `query:"page_size" json:"page_size"`
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Page      int   `json:"page"`
	PageSize  int   `json:"page_size"`
	Total     int   `json:"total"`
	PageCount int   `json:"page_count"`
	PageSizes []int `json:"page_sizes"` // tamaños ofrecidos por el selector
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
