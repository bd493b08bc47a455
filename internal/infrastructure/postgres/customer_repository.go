package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/visor-clientes/internal/domain/entity"
	"github.com/jhoicas/visor-clientes/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// List devuelve los clientes en el orden de origen (columna position).
func (r *CustomerRepo) List(ctx context.Context) ([]entity.Customer, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name FROM customers ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
