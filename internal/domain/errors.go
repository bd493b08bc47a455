package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrNoSelection     = errors.New("no hay cliente seleccionado")
	ErrSessionNotFound = errors.New("sesión no encontrada")
)
