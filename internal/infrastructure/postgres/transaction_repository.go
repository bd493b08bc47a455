package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/visor-clientes/internal/domain/entity"
	"github.com/jhoicas/visor-clientes/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación de TransactionRepository (usable con pool o tx).
// customer_id no tiene FK: las huérfanas se leen y el visor decide qué hacer con ellas.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// List devuelve las transacciones en el orden de origen.
func (r *TransactionRepo) List(ctx context.Context) ([]entity.Transaction, error) {
	query := `
		SELECT id, customer_id, tx_date, amount
		FROM transactions ORDER BY position, id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	var list []entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		if err := rows.Scan(&t.ID, &t.CustomerID, &t.Date, &t.Amount); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}
