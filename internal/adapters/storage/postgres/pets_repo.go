package postgres

import (
	"context"
	"database/sql"

	"clinica-vet/internal/domain/pets"
	"clinica-vet/internal/platform/dates"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Insert(ctx context.Context, p *pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (id, name, species, breed, birth_date, client_id)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		p.ID(),
		p.Name,
		p.Species,
		p.Breed,
		dates.Format(p.BirthDate),
		p.ClientID(),
	)
	if isForeignKeyViolation(err) {
		return pets.ErrOwnerNotFound
	}
	return err
}

func (r *PetsRepo) ListByClient(ctx context.Context, clientID string) ([]*pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, species, breed, birth_date
		FROM pets
		WHERE client_id = $1
		ORDER BY name ASC
	`, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*pets.Pet, 0)
	for rows.Next() {
		var id, name, species, breed, birthDate string
		if err := rows.Scan(&id, &name, &species, &breed, &birthDate); err != nil {
			return nil, err
		}
		out = append(out, pets.New(id, clientID, name, species, breed, dates.ParseOrToday(birthDate)))
	}
	return out, rows.Err()
}
