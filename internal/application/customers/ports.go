package customers

import (
	"context"

	"github.com/jhoicas/visor-clientes/internal/domain/entity"
)

// StatementPDFGenerator puerto de salida para el extracto imprimible de un cliente.
type StatementPDFGenerator interface {
	GenerateStatementPDF(ctx context.Context, customer entity.EnrichedCustomer) ([]byte, error)
}
