package memory

import (
	"context"

	"clinica-vet/internal/domain/clients"
)

type ClientsRepo struct {
	s *Store
}

func (r *ClientsRepo) Insert(ctx context.Context, c *clients.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, row := range r.s.clients {
		if row.id == c.ID() || row.email == c.Email {
			return clients.ErrDuplicate
		}
	}
	r.s.clients = append(r.s.clients, clientRow{
		id:    c.ID(),
		name:  c.Name,
		email: c.Email,
		phone: c.Phone,
	})
	return nil
}

func (r *ClientsRepo) Delete(ctx context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	found := false
	kept := r.s.clients[:0]
	for _, row := range r.s.clients {
		if row.id == id {
			found = true
			continue
		}
		kept = append(kept, row)
	}
	r.s.clients = kept
	if !found {
		return false, nil
	}

	// cascada: fuera las mascotas del cliente y las citas de esas mascotas
	deadPets := map[string]bool{}
	keptPets := r.s.pets[:0]
	for _, p := range r.s.pets {
		if p.clientID == id {
			deadPets[p.id] = true
			continue
		}
		keptPets = append(keptPets, p)
	}
	r.s.pets = keptPets

	keptAppts := r.s.appts[:0]
	for _, a := range r.s.appts {
		if deadPets[a.PetID] {
			continue
		}
		keptAppts = append(keptAppts, a)
	}
	r.s.appts = keptAppts

	return true, nil
}

func (r *ClientsRepo) List(ctx context.Context) ([]*clients.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*clients.Client, 0, len(r.s.clients))
	for _, row := range r.s.clients {
		out = append(out, clients.New(row.id, row.name, row.phone, row.email))
	}
	return out, nil
}
