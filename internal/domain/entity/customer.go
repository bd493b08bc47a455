package entity

// Customer representa un cliente del visor. Es el ancla del join con transacciones.
type Customer struct {
	ID   int64
	Name string
}
