package repository

import (
	"context"

	"github.com/jhoicas/visor-clientes/internal/domain/entity"
)

// CustomerRepository puerto de lectura de clientes. El orden devuelto es el orden de origen.
type CustomerRepository interface {
	List(ctx context.Context) ([]entity.Customer, error)
}
