// Package viewer contiene la lógica pura del visor: join clientes ↔ transacciones,
// filtro por texto, resaltado literal y paginación. Sin estado ni E/S.
package viewer

import "github.com/jhoicas/visor-clientes/internal/domain/entity"

// Enrich asocia a cada cliente la subsecuencia de transacciones cuya llave foránea
// coincide con su ID. Respeta el orden de clientes y el orden relativo de las transacciones.
// Las transacciones sin cliente se descartan; un cliente sin transacciones recibe una lista vacía.
func Enrich(customers []entity.Customer, transactions []entity.Transaction) []entity.EnrichedCustomer {
	byCustomer := make(map[int64][]entity.Transaction, len(customers))
	for _, tx := range transactions {
		byCustomer[tx.CustomerID] = append(byCustomer[tx.CustomerID], tx)
	}

	out := make([]entity.EnrichedCustomer, 0, len(customers))
	for _, c := range customers {
		// IDs repetidos comparten la misma lista, igual que un filtro por llave foránea.
		src := byCustomer[c.ID]
		txs := make([]entity.Transaction, len(src))
		copy(txs, src)
		out = append(out, entity.EnrichedCustomer{Customer: c, Transactions: txs})
	}
	return out
}

// Orphans devuelve las transacciones cuya llave foránea no apunta a ningún cliente, en orden de origen.
func Orphans(customers []entity.Customer, transactions []entity.Transaction) []entity.Transaction {
	known := make(map[int64]struct{}, len(customers))
	for _, c := range customers {
		known[c.ID] = struct{}{}
	}
	var orphans []entity.Transaction
	for _, tx := range transactions {
		if _, ok := known[tx.CustomerID]; !ok {
			orphans = append(orphans, tx)
		}
	}
	return orphans
}
