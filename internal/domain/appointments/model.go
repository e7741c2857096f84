package appointments

import (
	"time"

	"clinica-vet/internal/domain/pets"
	"clinica-vet/internal/platform/dates"
)

// Appointment representa una cita programada. El id es un token opaco
// generado, nunca un compuesto fecha_hora_mascota (los ids compuestos
// colisionaban con dos citas de la misma mascota en el mismo instante).
// Una cita no se actualiza nunca; desaparece cuando desaparece su mascota.
type Appointment struct {
	id    string
	petID string

	Date   time.Time
	Time   string // "HH:MM", hora local de la clínica, sin zona
	Reason string
	Staff  string

	pet *pets.Pet
}

// New construye una cita ligada a una mascota viva. El petID persistido se
// deriva de la mascota; el puntero es solo relación de consulta para la UI,
// nunca de propiedad.
func New(id string, date time.Time, hhmm, reason, staff string, pet *pets.Pet) *Appointment {
	return &Appointment{
		id:     id,
		petID:  pet.ID(),
		Date:   date,
		Time:   hhmm,
		Reason: reason,
		Staff:  staff,
		pet:    pet,
	}
}

// FromRecord rehidrata una cita cargada del almacén, resuelta contra la
// mascota viva correspondiente. Fechas mal guardadas caen en ParseOrToday.
func FromRecord(rec Record, pet *pets.Pet) *Appointment {
	return &Appointment{
		id:     rec.ID,
		petID:  rec.PetID,
		Date:   dates.ParseOrToday(rec.Date),
		Time:   rec.Time,
		Reason: rec.Reason,
		Staff:  rec.Staff,
		pet:    pet,
	}
}

func (a *Appointment) ID() string    { return a.id }
func (a *Appointment) PetID() string { return a.petID }

// Pet devuelve la mascota resuelta en memoria (puede ser nil si la cita se
// cargó sin poder resolver su mascota).
func (a *Appointment) Pet() *pets.Pet { return a.pet }
