package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout formato de fecha de las transacciones (día calendario).
const DateLayout = "2006-01-02"

// Transaction representa un movimiento monetario fechado de un cliente.
// CustomerID es la llave foránea hacia Customer.ID; no se valida su existencia.
type Transaction struct {
	ID         int64
	CustomerID int64
	Date       time.Time
	Amount     decimal.Decimal
}

// DateLabel devuelve la fecha en formato YYYY-MM-DD.
func (t Transaction) DateLabel() string {
	return t.Date.Format(DateLayout)
}

// AmountText representación textual del monto usada para búsqueda y resaltado.
// Sin ceros decimales sobrantes: 50 → "50", 12.50 → "12.5".
func (t Transaction) AmountText() string {
	return t.Amount.String()
}
