// Package registry es el punto único de coordinación de la clínica: carga el
// almacén durable a memoria al arrancar, expone las operaciones CRUD y
// mantiene memoria y almacén consistentes tras cada mutación. Las búsquedas
// se sirven solo desde memoria.
package registry

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"clinica-vet/internal/domain/appointments"
	"clinica-vet/internal/domain/clients"
	"clinica-vet/internal/domain/pets"
	"clinica-vet/internal/platform/ident"
	"clinica-vet/internal/platform/logger"
)

var (
	// ErrNotReady salta si se invoca una operación antes de Initialize.
	ErrNotReady = errors.New("registry: not initialized")
	// ErrDuplicateEmail indica que ya hay un cliente con ese email en memoria.
	ErrDuplicateEmail = errors.New("registry: email already registered")
	// ErrClientNotFound indica que el email no resuelve a ningún cliente.
	ErrClientNotFound = errors.New("registry: client not found")
	// ErrNilPet indica una cita sin mascota.
	ErrNilPet = errors.New("registry: appointment requires a pet")
)

// Service orquesta el modelo en memoria contra los repositorios durables.
// Se construye explícitamente y se inyecta donde haga falta; no hay instancia
// global, así los tests levantan registros independientes contra almacenes
// independientes.
type Service struct {
	mu sync.RWMutex

	clientsRepo clients.Repository
	petsRepo    pets.Repository
	apptsRepo   appointments.Repository
	log         logger.Logger

	ready   bool
	clients []*clients.Client
	appts   []*appointments.Appointment
}

func New(cr clients.Repository, pr pets.Repository, ar appointments.Repository, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		clientsRepo: cr,
		petsRepo:    pr,
		apptsRepo:   ar,
		log:         log,
	}
}

// Initialize hace la carga completa: clientes con sus mascotas anidadas y
// después las citas resueltas contra esas mascotas. Idempotente: una segunda
// llamada sobre un registro ya listo no recarga nada.
func (s *Service) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ready {
		return nil
	}

	loaded, err := s.clientsRepo.List(ctx)
	if err != nil {
		return err
	}
	for _, c := range loaded {
		ps, err := s.petsRepo.ListByClient(ctx, c.ID())
		if err != nil {
			return err
		}
		for _, p := range ps {
			c.AddPet(p)
		}
	}
	s.clients = loaded

	if err := s.reloadAppointments(ctx); err != nil {
		return err
	}

	s.ready = true
	s.log.Info("datos cargados", map[string]any{
		"clients":      len(s.clients),
		"appointments": len(s.appts),
	})
	return nil
}

// reloadAppointments recarga el conjunto completo de citas desde el almacén,
// resolviendo cada una contra las mascotas vivas. Se usa en la carga inicial
// y tras borrar un cliente, para purgar citas huérfanas (las citas no cuelgan
// del cliente en memoria). Llamar con el lock cogido.
func (s *Service) reloadAppointments(ctx context.Context) error {
	recs, err := s.apptsRepo.List(ctx)
	if err != nil {
		return err
	}

	appts := make([]*appointments.Appointment, 0, len(recs))
	for _, rec := range recs {
		p := s.findPetByID(rec.PetID)
		if p == nil {
			// fila huérfana: con las cascadas activas no debería ocurrir
			s.log.Warn("cita sin mascota, descartada", map[string]any{"appointment_id": rec.ID, "pet_id": rec.PetID})
			continue
		}
		appts = append(appts, appointments.FromRecord(rec, p))
	}
	s.appts = appts
	return nil
}

// RegisterClient da de alta un cliente: chequeo de duplicado en memoria
// primero, id nuevo, persistir y solo entonces añadir a memoria. Un fallo del
// almacén (email duplicado que se coló, error de I/O) se reporta y no es
// fatal.
func (s *Service) RegisterClient(ctx context.Context, name, phone, email string) (*clients.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return nil, ErrNotReady
	}
	if s.findClient(email) != nil {
		return nil, ErrDuplicateEmail
	}

	c := clients.New(ident.NewID(), name, phone, email)
	if err := s.clientsRepo.Insert(ctx, c); err != nil {
		s.log.Warn("alta de cliente fallida", map[string]any{"email": email, "err": err.Error()})
		return nil, err
	}
	s.clients = append(s.clients, c)
	return c, nil
}

// FindClient busca por email con comparación case-insensitive. Lectura solo
// de memoria; nil si no hay cliente (o si el registro no está listo).
func (s *Service) FindClient(email string) *clients.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.ready {
		return nil
	}
	return s.findClient(email)
}

func (s *Service) findClient(email string) *clients.Client {
	for _, c := range s.clients {
		if strings.EqualFold(c.Email, email) {
			return c
		}
	}
	return nil
}

// DeleteClient borra el cliente del almacén (cascada a mascotas y citas), lo
// quita de memoria y recarga el conjunto de citas completo para que memoria y
// almacén cuenten lo mismo. false si el cliente no existe.
func (s *Service) DeleteClient(ctx context.Context, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return false, ErrNotReady
	}
	c := s.findClient(email)
	if c == nil {
		return false, nil
	}

	deleted, err := s.clientsRepo.Delete(ctx, c.ID())
	if err != nil {
		s.log.Error("borrado de cliente fallido", map[string]any{"email": email, "err": err.Error()})
		return false, err
	}
	if !deleted {
		// en memoria sí estaba: deja la memoria como esté y repórtalo
		s.log.Warn("cliente en memoria sin fila durable", map[string]any{"email": email})
		return false, nil
	}

	kept := s.clients[:0]
	for _, other := range s.clients {
		if other != c {
			kept = append(kept, other)
		}
	}
	s.clients = kept

	if err := s.reloadAppointments(ctx); err != nil {
		return true, err
	}
	return true, nil
}

// RegisterPet da de alta una mascota para un cliente existente, resuelto por
// email. La inserción del cliente y la de la mascota son pasos independientes
// (no hay transacción que los abarque); si esta falla, el cliente ya quedó
// persistido.
func (s *Service) RegisterPet(ctx context.Context, clientEmail, name, species, breed string, birthDate time.Time) (*pets.Pet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return nil, ErrNotReady
	}
	c := s.findClient(clientEmail)
	if c == nil {
		return nil, ErrClientNotFound
	}

	p := pets.New(ident.NewID(), c.ID(), name, species, breed, birthDate)
	if err := s.petsRepo.Insert(ctx, p); err != nil {
		s.log.Warn("alta de mascota fallida", map[string]any{"client": clientEmail, "pet": name, "err": err.Error()})
		return nil, err
	}
	c.AddPet(p)
	return p, nil
}

// FindPetByID recorre las mascotas de todos los clientes. O(total mascotas).
func (s *Service) FindPetByID(petID string) *pets.Pet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.ready {
		return nil
	}
	return s.findPetByID(petID)
}

func (s *Service) findPetByID(petID string) *pets.Pet {
	for _, c := range s.clients {
		for _, p := range c.Pets() {
			if p.ID() == petID {
				return p
			}
		}
	}
	return nil
}

// FindPetOfClient resuelve al cliente por email y busca entre sus mascotas
// por nombre, case-insensitive.
func (s *Service) FindPetOfClient(clientEmail, petName string) *pets.Pet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.ready {
		return nil
	}
	return s.findPetOfClient(clientEmail, petName)
}

func (s *Service) findPetOfClient(clientEmail, petName string) *pets.Pet {
	c := s.findClient(clientEmail)
	if c == nil {
		return nil
	}
	for _, p := range c.Pets() {
		if strings.EqualFold(p.Name, petName) {
			return p
		}
	}
	return nil
}

// CreateAppointment programa una cita para una mascota viva. El doble booking
// (misma mascota, misma fecha y hora) está permitido: es decisión de producto,
// no un defecto de esta capa. La cita se añade a memoria solo después de que
// la persistencia tenga éxito, para no dejar citas fantasma.
func (s *Service) CreateAppointment(ctx context.Context, date time.Time, hhmm, reason, staff string, pet *pets.Pet) (*appointments.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return nil, ErrNotReady
	}
	if pet == nil {
		return nil, ErrNilPet
	}

	a := appointments.New(ident.NewID(), date, hhmm, reason, staff, pet)
	if err := s.apptsRepo.Insert(ctx, a); err != nil {
		s.log.Warn("registro de cita fallido", map[string]any{"pet_id": pet.ID(), "err": err.Error()})
		return nil, err
	}
	s.appts = append(s.appts, a)
	return a, nil
}

// --- Historial médico ---
// Las entradas mutan solo memoria: el esquema durable no tiene tabla de
// historial. Hueco documentado del diseño, no una omisión accidental.

func (s *Service) AddVaccination(clientEmail, petName, vaccine string, date time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.resolvePet(clientEmail, petName)
	if p == nil {
		return false
	}
	p.AddVaccination(vaccine, date)
	return true
}

func (s *Service) RecordWeight(clientEmail, petName string, kilos float64, date time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.resolvePet(clientEmail, petName)
	if p == nil {
		return false
	}
	p.RecordWeight(kilos, date)
	return true
}

func (s *Service) AddObservation(clientEmail, petName, note string, date time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.resolvePet(clientEmail, petName)
	if p == nil {
		return false
	}
	p.AddObservation(note, date)
	return true
}

func (s *Service) AddTreatment(clientEmail, petName, note string, date time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.resolvePet(clientEmail, petName)
	if p == nil {
		return false
	}
	p.AddTreatment(note, date)
	return true
}

func (s *Service) resolvePet(clientEmail, petName string) *pets.Pet {
	if !s.ready {
		return nil
	}
	return s.findPetOfClient(clientEmail, petName)
}

// --- Accesores para la capa de UI ---

// Clients devuelve una copia de la lista de clientes (los punteros son los
// objetos vivos; la UI puede leerlos).
func (s *Service) Clients() []*clients.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*clients.Client, len(s.clients))
	copy(out, s.clients)
	return out
}

// Appointments devuelve una copia de la lista de citas en memoria.
func (s *Service) Appointments() []*appointments.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*appointments.Appointment, len(s.appts))
	copy(out, s.appts)
	return out
}

// AppointmentsForPet filtra las citas de una mascota concreta.
func (s *Service) AppointmentsForPet(petID string) []*appointments.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*appointments.Appointment, 0)
	for _, a := range s.appts {
		if a.PetID() == petID {
			out = append(out, a)
		}
	}
	return out
}
