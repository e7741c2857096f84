package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"strings"
	"time"

	"clinica-vet/internal/adapters/storage/postgres"
	"clinica-vet/internal/adapters/storage/sqlite"
	"clinica-vet/internal/domain/registry"
	"clinica-vet/internal/platform/logger"
)

// La única configuración del núcleo es la ubicación del almacén durable:
// DB_DSN con URL postgres usa el adaptador pgx; cualquier otra cosa se trata
// como ruta de fichero SQLite. Por defecto, clinica_vet.db en el directorio
// de trabajo.
const defaultDBPath = "clinica_vet.db"

func main() {
	lg := logger.NewFromEnv()

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = defaultDBPath
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var (
		db  *sql.DB
		err error
	)
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		db, err = postgres.Open(dsn)
		if err != nil {
			log.Fatalf("open postgres: %v", err)
		}
		if err := postgres.Migrate(ctx, db); err != nil {
			log.Fatalf("migrate: %v", err)
		}
		defer db.Close()

		reg := registry.New(postgres.NewClientsRepo(db), postgres.NewPetsRepo(db), postgres.NewAppointmentsRepo(db), lg)
		run(ctx, reg)
		return
	}

	db, err = sqlite.Open(dsn)
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}
	if err := sqlite.Migrate(ctx, db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	defer db.Close()

	reg := registry.New(sqlite.NewClientsRepo(db), sqlite.NewPetsRepo(db), sqlite.NewAppointmentsRepo(db), lg)
	run(ctx, reg)
}

// run inicializa el registro y deja constancia del estado cargado. La capa
// de UI (colaborador externo) es quien llama al registro a partir de aquí.
func run(ctx context.Context, reg *registry.Service) {
	if err := reg.Initialize(ctx); err != nil {
		log.Fatalf("initialize: %v", err)
	}

	total := 0
	for _, c := range reg.Clients() {
		total += len(c.Pets())
	}
	log.Printf("clinica lista: %d clientes, %d mascotas, %d citas", len(reg.Clients()), total, len(reg.Appointments()))
}
