package appointments

import (
	"context"
	"errors"
)

// ErrPetNotFound indica que el pet_id de la cita no existe en el almacén.
var ErrPetNotFound = errors.New("appointments: pet not found")

// Record es la fila tal cual viaja por la frontera del almacén: fechas en
// texto YYYY-MM-DD, hora "HH:MM". La conversión a tipos vivos ocurre en
// FromRecord.
type Record struct {
	ID     string
	Date   string
	Time   string
	Reason string
	Staff  string
	PetID  string
}

type Repository interface {
	Insert(ctx context.Context, a *Appointment) error
	List(ctx context.Context) ([]Record, error)
}
