package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/visor-clientes/internal/domain"
	"github.com/jhoicas/visor-clientes/internal/domain/entity"
)

// TxRunner ejecuta la carga del dataset dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// ReplaceDataset borra ambas tablas y copia las listas conservando su orden (columna position).
// Todo o nada: ante cualquier error se hace Rollback.
func (r *TxRunner) ReplaceDataset(ctx context.Context, customers []entity.Customer, transactions []entity.Transaction) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `TRUNCATE transactions, customers`); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	customerRows := make([][]any, 0, len(customers))
	for i, c := range customers {
		customerRows = append(customerRows, []any{c.ID, c.Name, i})
	}
	if _, err := tx.CopyFrom(ctx, pgx.Identifier{"customers"},
		[]string{"id", "name", "position"}, pgx.CopyFromRows(customerRows)); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: id de cliente duplicado", domain.ErrInvalidInput)
		}
		return fmt.Errorf("copy customers: %w", err)
	}

	txRows := make([][]any, 0, len(transactions))
	for i, t := range transactions {
		txRows = append(txRows, []any{t.ID, t.CustomerID, t.Date, t.Amount, i})
	}
	if _, err := tx.CopyFrom(ctx, pgx.Identifier{"transactions"},
		[]string{"id", "customer_id", "tx_date", "amount", "position"}, pgx.CopyFromRows(txRows)); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: id de transacción duplicado", domain.ErrInvalidInput)
		}
		return fmt.Errorf("copy transactions: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
