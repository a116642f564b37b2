package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidResult     = errors.New("la operación dejaría un resultado inválido")
	ErrInsufficientStock = errors.New("stock insuficiente")
)
