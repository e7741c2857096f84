package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"clinica-vet/internal/domain/appointments"
	"clinica-vet/internal/domain/clients"
	"clinica-vet/internal/domain/pets"
	"clinica-vet/internal/platform/dates"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := Migrate(context.Background(), db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func mustInsertClient(t *testing.T, db *sql.DB, id, name, phone, email string) *clients.Client {
	t.Helper()
	c := clients.New(id, name, phone, email)
	if err := NewClientsRepo(db).Insert(context.Background(), c); err != nil {
		t.Fatalf("insert client: %v", err)
	}
	return c
}

func TestMigrateIdempotent(t *testing.T) {
	db := setupTestDB(t)
	if err := Migrate(context.Background(), db); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
}

func TestInsertClientDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClientsRepo(db)
	ctx := context.Background()

	mustInsertClient(t, db, "c1", "Ana Garcia", "611111111", "ana@test.com")

	dup := clients.New("c2", "Otra Ana", "622222222", "ana@test.com")
	err := repo.Insert(ctx, dup)
	if !errors.Is(err, clients.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 client, got %d", len(got))
	}
}

func TestInsertClientDuplicateID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClientsRepo(db)

	mustInsertClient(t, db, "c1", "Ana Garcia", "611111111", "ana@test.com")

	dup := clients.New("c1", "Carlos Lopez", "633333333", "carlos@test.com")
	if err := repo.Insert(context.Background(), dup); !errors.Is(err, clients.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestListClientsRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	mustInsertClient(t, db, "c1", "Ana Garcia", "611111111", "ana@test.com")

	got, err := NewClientsRepo(db).List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 client, got %d", len(got))
	}
	c := got[0]
	if c.ID() != "c1" || c.Name != "Ana Garcia" || c.Phone != "611111111" || c.Email != "ana@test.com" {
		t.Fatalf("round trip mismatch: %+v", c)
	}
}

func TestInsertPetUnknownClient(t *testing.T) {
	db := setupTestDB(t)

	p := pets.New("p1", "no-such-client", "Toby", "Perro", "Labrador", time.Now())
	err := NewPetsRepo(db).Insert(context.Background(), p)
	if !errors.Is(err, pets.ErrOwnerNotFound) {
		t.Fatalf("expected ErrOwnerNotFound, got %v", err)
	}
}

func TestPetsRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	mustInsertClient(t, db, "c1", "Ana Garcia", "611111111", "ana@test.com")

	born := time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC)
	p := pets.New("p1", "c1", "Toby", "Perro", "Labrador", born)
	if err := NewPetsRepo(db).Insert(ctx, p); err != nil {
		t.Fatalf("insert pet: %v", err)
	}

	got, err := NewPetsRepo(db).ListByClient(ctx, "c1")
	if err != nil {
		t.Fatalf("list pets: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 pet, got %d", len(got))
	}
	loaded := got[0]
	if loaded.ID() != "p1" || loaded.ClientID() != "c1" {
		t.Fatalf("identity mismatch: %+v", loaded)
	}
	if loaded.Name != "Toby" || loaded.Species != "Perro" || loaded.Breed != "Labrador" {
		t.Fatalf("field mismatch: %+v", loaded)
	}
	if !loaded.BirthDate.Equal(born) {
		t.Fatalf("birth date mismatch: %v != %v", loaded.BirthDate, born)
	}
}

func TestMalformedBirthDateFallsBackToToday(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	mustInsertClient(t, db, "c1", "Ana Garcia", "611111111", "ana@test.com")

	// fila con fecha corrupta, insertada a pelo
	if _, err := db.ExecContext(ctx, `
		INSERT INTO pets (id, name, species, breed, birth_date, client_id)
		VALUES ('p1', 'Toby', 'Perro', 'Labrador', 'not-a-date', 'c1')
	`); err != nil {
		t.Fatalf("raw insert: %v", err)
	}

	got, err := NewPetsRepo(db).ListByClient(ctx, "c1")
	if err != nil {
		t.Fatalf("list pets: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("malformed date must not drop the row, got %d pets", len(got))
	}
	if !got[0].BirthDate.Equal(dates.Today()) {
		t.Fatalf("expected today fallback, got %v", got[0].BirthDate)
	}
}

func TestInsertAppointmentUnknownPet(t *testing.T) {
	db := setupTestDB(t)
	mustInsertClient(t, db, "c1", "Ana Garcia", "611111111", "ana@test.com")

	ghost := pets.New("nope", "c1", "Fantasma", "Gato", "Siames", time.Now())
	a := appointments.New("a1", time.Now(), "10:00", "Revisión", "Dr. Rufino", ghost)
	if err := NewAppointmentsRepo(db).Insert(context.Background(), a); !errors.Is(err, appointments.ErrPetNotFound) {
		t.Fatalf("expected ErrPetNotFound, got %v", err)
	}
}

func TestAppointmentsRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	mustInsertClient(t, db, "c1", "Ana Garcia", "611111111", "ana@test.com")

	p := pets.New("p1", "c1", "Toby", "Perro", "Labrador", time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC))
	if err := NewPetsRepo(db).Insert(ctx, p); err != nil {
		t.Fatalf("insert pet: %v", err)
	}

	when := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	a := appointments.New("a1", when, "10:00", "Revisión", "Dr. Rufino", p)
	if err := NewAppointmentsRepo(db).Insert(ctx, a); err != nil {
		t.Fatalf("insert appointment: %v", err)
	}

	recs, err := NewAppointmentsRepo(db).List(ctx)
	if err != nil {
		t.Fatalf("list appointments: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 appointment, got %d", len(recs))
	}
	rec := recs[0]
	if rec.ID != "a1" || rec.Date != "2026-01-10" || rec.Time != "10:00" || rec.Reason != "Revisión" || rec.Staff != "Dr. Rufino" || rec.PetID != "p1" {
		t.Fatalf("round trip mismatch: %+v", rec)
	}
}

func TestDeleteClientCascades(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	mustInsertClient(t, db, "c1", "Ana Garcia", "611111111", "ana@test.com")

	p := pets.New("p1", "c1", "Toby", "Perro", "Labrador", time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC))
	if err := NewPetsRepo(db).Insert(ctx, p); err != nil {
		t.Fatalf("insert pet: %v", err)
	}
	a := appointments.New("a1", time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), "10:00", "Revisión", "Dr. Rufino", p)
	if err := NewAppointmentsRepo(db).Insert(ctx, a); err != nil {
		t.Fatalf("insert appointment: %v", err)
	}

	deleted, err := NewClientsRepo(db).Delete(ctx, "c1")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !deleted {
		t.Fatal("expected a deleted row")
	}

	ps, err := NewPetsRepo(db).ListByClient(ctx, "c1")
	if err != nil {
		t.Fatalf("list pets: %v", err)
	}
	if len(ps) != 0 {
		t.Fatalf("cascade left %d pets", len(ps))
	}
	recs, err := NewAppointmentsRepo(db).List(ctx)
	if err != nil {
		t.Fatalf("list appointments: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("cascade left %d appointments", len(recs))
	}

	// borrar de nuevo: ya no hay fila
	deleted, err = NewClientsRepo(db).Delete(ctx, "c1")
	if err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if deleted {
		t.Fatal("expected no row on second delete")
	}
}
