package pets

import (
	"context"
	"errors"
)

// ErrOwnerNotFound indica que el client_id de la mascota no existe en el
// almacén (violación de clave foránea).
var ErrOwnerNotFound = errors.New("pets: owner client not found")

type Repository interface {
	Insert(ctx context.Context, p *Pet) error
	ListByClient(ctx context.Context, clientID string) ([]*Pet, error)
}
