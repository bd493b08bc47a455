package viewer

import (
	"strings"

	"github.com/jhoicas/visor-clientes/internal/domain/entity"
)

// Filter conserva los clientes cuyo nombre contiene la consulta (sin distinguir mayúsculas)
// o que tienen al menos una transacción cuyo monto en texto contiene la consulta.
// Consulta vacía: devuelve la secuencia completa. El resultado siempre es una subsecuencia de la entrada.
func Filter(customers []entity.EnrichedCustomer, query string) []entity.EnrichedCustomer {
	if query == "" {
		out := make([]entity.EnrichedCustomer, len(customers))
		copy(out, customers)
		return out
	}
	q := strings.ToLower(query)
	out := make([]entity.EnrichedCustomer, 0, len(customers))
	for _, c := range customers {
		if Matches(c, q) {
			out = append(out, c)
		}
	}
	return out
}

// Matches indica si el cliente cumple la consulta ya pasada a minúsculas.
func Matches(c entity.EnrichedCustomer, lowerQuery string) bool {
	if strings.Contains(strings.ToLower(c.Name), lowerQuery) {
		return true
	}
	for _, tx := range c.Transactions {
		// La consulta se compara como texto, sin parseo numérico.
		if strings.Contains(tx.AmountText(), lowerQuery) {
			return true
		}
	}
	return false
}
