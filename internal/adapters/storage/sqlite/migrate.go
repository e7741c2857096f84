package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// schema refleja el modelo de datos: tres tablas relacionadas, ids de texto
// opacos, fechas como texto YYYY-MM-DD en la frontera. Las cascadas hacen el
// trabajo de integridad: borrar un cliente arrastra mascotas y citas.
const schema = `
CREATE TABLE IF NOT EXISTS clients (
	id    TEXT PRIMARY KEY,
	name  TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	phone TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS pets (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	species    TEXT NOT NULL DEFAULT '',
	breed      TEXT NOT NULL DEFAULT '',
	birth_date TEXT NOT NULL DEFAULT '',
	client_id  TEXT NOT NULL REFERENCES clients(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS appointments (
	id     TEXT PRIMARY KEY,
	date   TEXT NOT NULL,
	time   TEXT NOT NULL,
	reason TEXT NOT NULL DEFAULT '',
	staff  TEXT NOT NULL DEFAULT '',
	pet_id TEXT NOT NULL REFERENCES pets(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_pets_client_id      ON pets(client_id);
CREATE INDEX IF NOT EXISTS idx_appointments_pet_id ON appointments(pet_id);
`

// Migrate crea el esquema si no existe. Idempotente.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}
