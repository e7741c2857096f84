// Package ident genera identificadores únicos para las entidades de la clínica.
package ident

import "github.com/google/uuid"

// NewID devuelve un token aleatorio de 128 bits en forma canónica (UUID v4).
// Sin estado externo y sin garantía de orden; la probabilidad de colisión es
// despreciable. Los IDs compuestos fecha_hora_mascota quedaron deprecados:
// colisionaban cuando dos citas compartían mascota y timestamp.
func NewID() string {
	return uuid.NewString()
}
