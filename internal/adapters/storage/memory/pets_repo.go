package memory

import (
	"context"

	"clinica-vet/internal/domain/pets"
	"clinica-vet/internal/platform/dates"
)

type PetsRepo struct {
	s *Store
}

func (r *PetsRepo) Insert(ctx context.Context, p *pets.Pet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !r.s.hasClient(p.ClientID()) {
		return pets.ErrOwnerNotFound
	}
	r.s.pets = append(r.s.pets, petRow{
		id:        p.ID(),
		name:      p.Name,
		species:   p.Species,
		breed:     p.Breed,
		birthDate: dates.Format(p.BirthDate),
		clientID:  p.ClientID(),
	})
	return nil
}

func (r *PetsRepo) ListByClient(ctx context.Context, clientID string) ([]*pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*pets.Pet, 0)
	for _, row := range r.s.pets {
		if row.clientID != clientID {
			continue
		}
		out = append(out, pets.New(row.id, row.clientID, row.name, row.species, row.breed, dates.ParseOrToday(row.birthDate)))
	}
	return out, nil
}
