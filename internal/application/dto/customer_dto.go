package dto

import "github.com/shopspring/decimal"

// SegmentDTO trozo de texto resaltado; Kind es "plain" o "matched".
type SegmentDTO struct {
	Text string `json:"text"`
	Kind string `json:"kind"`
}

// TransactionDTO fila de la sub-tabla de transacciones.
type TransactionDTO struct {
	ID     int64           `json:"id"`
	Date   string          `json:"date"` // YYYY-MM-DD
	Amount decimal.Decimal `json:"amount"`
	// Segmentos del monto en texto según la consulta activa (solo en listados).
	AmountSegments []SegmentDTO `json:"amount_segments,omitempty"`
}

// CustomerDTO cliente enriquecido con sus transacciones.
type CustomerDTO struct {
	ID           int64            `json:"id"`
	Name         string           `json:"name"`
	NameSegments []SegmentDTO     `json:"name_segments,omitempty"`
	Transactions []TransactionDTO `json:"transactions"`
}

// SearchRequest parámetros de GET /api/customers.
type SearchRequest struct {
	Query string `query:"q"`
	PageRequest
}

// CustomerPageDTO respuesta paginada de la tabla filtrada.
type CustomerPageDTO struct {
	Query string        `json:"query"`
	Items []CustomerDTO `json:"items"`
	PageResponse
}

// ChartPointDTO punto de la serie fecha vs monto. Amount va como número para el eje Y.
type ChartPointDTO struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// ChartDTO datos del diálogo de gráfica de un cliente.
type ChartDTO struct {
	CustomerID int64           `json:"customer_id"`
	Name       string          `json:"name"`
	Title      string          `json:"title"`
	Points     []ChartPointDTO `json:"points"`
}

// DatasetDTO resumen del dataset cargado (respuesta de reload).
type DatasetDTO struct {
	Version      uint64 `json:"version"`
	Customers    int    `json:"customers"`
	Transactions int    `json:"transactions"`
	Orphans      int    `json:"orphans"`
}
