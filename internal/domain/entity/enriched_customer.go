package entity

// EnrichedCustomer cliente con la lista derivada de sus transacciones, en el orden de origen.
// Se recalcula cada vez que cambian las listas de origen; nunca se persiste.
type EnrichedCustomer struct {
	Customer
	Transactions []Transaction
}
