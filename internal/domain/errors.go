package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("producto no encontrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrQuoteNotFound  = errors.New("cotización no encontrada")
	ErrSnapshotBroken = errors.New("snapshot del carrito ilegible")
)
