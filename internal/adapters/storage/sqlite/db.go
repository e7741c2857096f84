// Package sqlite implementa el almacén durable por defecto: un fichero
// SQLite relacional con claves foráneas y borrado en cascada.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	sqlite3 "modernc.org/sqlite"
)

// Open abre (o crea) el fichero de base de datos con el driver puro Go.
// Acepta también ":memory:" para tests.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	// SQLite no soporta escritores concurrentes; una sola conexión también
	// garantiza que los PRAGMA aplican a todas las operaciones.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys=ON;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	return db, nil
}

// sqliteCode extrae el código de resultado de un error del driver
// (extendido cuando está disponible); 0 si no es un error de SQLite.
func sqliteCode(err error) int {
	var se *sqlite3.Error
	if errors.As(err, &se) {
		return se.Code()
	}
	return 0
}

// isConstraint detecta la clase SQLITE_CONSTRAINT (código primario 19);
// cubre UNIQUE, PRIMARY KEY y FOREIGN KEY. Qué restricción concreta falló
// lo decide cada repo según el statement que ejecutó.
func isConstraint(err error) bool {
	return sqliteCode(err)&0xff == 19
}
