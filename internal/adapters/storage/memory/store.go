// Package memory implementa el almacén en memoria para dev y tests. Replica
// a mano las reglas que en sqlite/postgres impone el esquema: unicidad de
// email, claves foráneas y borrado en cascada.
package memory

import (
	"sync"

	"clinica-vet/internal/domain/appointments"
)

// Store guarda las tres "tablas" como filas planas, en orden de inserción,
// con las fechas ya serializadas a texto igual que en la frontera durable.
type Store struct {
	mu      sync.RWMutex
	clients []clientRow
	pets    []petRow
	appts   []appointments.Record
}

type clientRow struct {
	id    string
	name  string
	email string
	phone string
}

type petRow struct {
	id        string
	name      string
	species   string
	breed     string
	birthDate string
	clientID  string
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Clients() *ClientsRepo {
	return &ClientsRepo{s: s}
}

func (s *Store) Pets() *PetsRepo {
	return &PetsRepo{s: s}
}

func (s *Store) Appointments() *AppointmentsRepo {
	return &AppointmentsRepo{s: s}
}

func (s *Store) hasClient(id string) bool {
	for _, c := range s.clients {
		if c.id == id {
			return true
		}
	}
	return false
}

func (s *Store) hasPet(id string) bool {
	for _, p := range s.pets {
		if p.id == id {
			return true
		}
	}
	return false
}
