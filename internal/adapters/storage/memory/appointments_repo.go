package memory

import (
	"context"

	"clinica-vet/internal/domain/appointments"
	"clinica-vet/internal/platform/dates"
)

type AppointmentsRepo struct {
	s *Store
}

func (r *AppointmentsRepo) Insert(ctx context.Context, a *appointments.Appointment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !r.s.hasPet(a.PetID()) {
		return appointments.ErrPetNotFound
	}
	r.s.appts = append(r.s.appts, appointments.Record{
		ID:     a.ID(),
		Date:   dates.Format(a.Date),
		Time:   a.Time,
		Reason: a.Reason,
		Staff:  a.Staff,
		PetID:  a.PetID(),
	})
	return nil
}

func (r *AppointmentsRepo) List(ctx context.Context) ([]appointments.Record, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]appointments.Record, 0, len(r.s.appts))
	out = append(out, r.s.appts...)
	return out, nil
}
