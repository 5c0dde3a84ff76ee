package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidArgument   = errors.New("argumento inválido")
	ErrNotFound          = errors.New("artículo no encontrado")
	ErrDuplicate         = errors.New("el código ya existe en el inventario")
	ErrUnsupportedFormat = errors.New("formato de archivo no soportado")
)
