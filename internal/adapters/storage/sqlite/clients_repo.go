package sqlite

import (
	"context"
	"database/sql"

	"clinica-vet/internal/domain/clients"
)

type ClientsRepo struct {
	db *sql.DB
}

func NewClientsRepo(db *sql.DB) *ClientsRepo {
	return &ClientsRepo{db: db}
}

func (r *ClientsRepo) Insert(ctx context.Context, c *clients.Client) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO clients (id, name, email, phone)
		VALUES (?, ?, ?, ?)
	`,
		c.ID(),
		c.Name,
		c.Email,
		c.Phone,
	)
	if isConstraint(err) {
		// id o email ya existen (UNIQUE sobre email, PK sobre id)
		return clients.ErrDuplicate
	}
	return err
}

func (r *ClientsRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *ClientsRepo) List(ctx context.Context) ([]*clients.Client, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, email, phone
		FROM clients
		ORDER BY rowid ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*clients.Client, 0)
	for rows.Next() {
		var id, name, email, phone string
		if err := rows.Scan(&id, &name, &email, &phone); err != nil {
			return nil, err
		}
		out = append(out, clients.New(id, name, phone, email))
	}
	return out, rows.Err()
}
