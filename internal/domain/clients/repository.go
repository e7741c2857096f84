package clients

import (
	"context"
	"errors"
)

// ErrDuplicate indica colisión de id o de email con una fila existente.
var ErrDuplicate = errors.New("clients: duplicate id or email")

type Repository interface {
	Insert(ctx context.Context, c *Client) error
	// Delete borra el cliente y, por cascada del almacén, sus mascotas y las
	// citas de éstas. Devuelve si existía una fila que borrar.
	Delete(ctx context.Context, id string) (bool, error)
	// List carga todos los clientes sin sus mascotas (éstas se cargan por
	// cliente con pets.Repository.ListByClient).
	List(ctx context.Context) ([]*Client, error)
}
