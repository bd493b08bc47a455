package repository

import (
	"context"

	"github.com/jhoicas/visor-clientes/internal/domain/entity"
)

// TransactionRepository puerto de lectura de transacciones. El orden devuelto es el orden de origen.
type TransactionRepository interface {
	List(ctx context.Context) ([]entity.Transaction, error)
}
