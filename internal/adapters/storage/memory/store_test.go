package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"clinica-vet/internal/domain/appointments"
	"clinica-vet/internal/domain/clients"
	"clinica-vet/internal/domain/pets"
)

func TestInsertClientDuplicate(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	if err := s.Clients().Insert(ctx, clients.New("c1", "Ana", "611", "ana@test.com")); err != nil {
		t.Fatalf("insert: %v", err)
	}
	err := s.Clients().Insert(ctx, clients.New("c2", "Otra", "622", "ana@test.com"))
	if !errors.Is(err, clients.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestInsertPetRequiresOwner(t *testing.T) {
	s := NewStore()
	p := pets.New("p1", "missing", "Toby", "Perro", "Labrador", time.Now())
	if err := s.Pets().Insert(context.Background(), p); !errors.Is(err, pets.ErrOwnerNotFound) {
		t.Fatalf("expected ErrOwnerNotFound, got %v", err)
	}
}

func TestDeleteClientCascades(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	if err := s.Clients().Insert(ctx, clients.New("c1", "Ana", "611", "ana@test.com")); err != nil {
		t.Fatalf("insert client: %v", err)
	}
	p := pets.New("p1", "c1", "Toby", "Perro", "Labrador", time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC))
	if err := s.Pets().Insert(ctx, p); err != nil {
		t.Fatalf("insert pet: %v", err)
	}
	a := appointments.New("a1", time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), "10:00", "Revisión", "Dr. Rufino", p)
	if err := s.Appointments().Insert(ctx, a); err != nil {
		t.Fatalf("insert appointment: %v", err)
	}

	deleted, err := s.Clients().Delete(ctx, "c1")
	if err != nil || !deleted {
		t.Fatalf("delete: deleted=%v err=%v", deleted, err)
	}

	ps, _ := s.Pets().ListByClient(ctx, "c1")
	if len(ps) != 0 {
		t.Fatalf("cascade left %d pets", len(ps))
	}
	recs, _ := s.Appointments().List(ctx)
	if len(recs) != 0 {
		t.Fatalf("cascade left %d appointments", len(recs))
	}
}

func TestDeleteUnknownClient(t *testing.T) {
	s := NewStore()
	deleted, err := s.Clients().Delete(context.Background(), "nope")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted {
		t.Fatal("expected no deletion")
	}
}
