package dto

// SessionDTO estado de la sesión interactiva.
type SessionDTO struct {
	SessionID          string `json:"session_id"`
	Query              string `json:"query"`
	SelectedCustomerID *int64 `json:"selected_customer_id"`
	Page               int    `json:"page"`
	PageSize           int    `json:"page_size"`
}

// SetQueryRequest cuerpo de PUT /api/session/query.
type SetQueryRequest struct {
	Query string `json:"query"`
}

// SelectCustomerRequest cuerpo de PUT /api/session/selection.
type SelectCustomerRequest struct {
	CustomerID int64 `json:"customer_id"`
}
