package postgres

import (
	"context"
	"database/sql"

	"clinica-vet/internal/domain/appointments"
	"clinica-vet/internal/platform/dates"
)

type AppointmentsRepo struct {
	db *sql.DB
}

func NewAppointmentsRepo(db *sql.DB) *AppointmentsRepo {
	return &AppointmentsRepo{db: db}
}

func (r *AppointmentsRepo) Insert(ctx context.Context, a *appointments.Appointment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO appointments (id, date, time, reason, staff, pet_id)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		a.ID(),
		dates.Format(a.Date),
		a.Time,
		a.Reason,
		a.Staff,
		a.PetID(),
	)
	if isForeignKeyViolation(err) {
		return appointments.ErrPetNotFound
	}
	return err
}

func (r *AppointmentsRepo) List(ctx context.Context) ([]appointments.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, date, time, reason, staff, pet_id
		FROM appointments
		ORDER BY date ASC, time ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]appointments.Record, 0)
	for rows.Next() {
		var rec appointments.Record
		if err := rows.Scan(&rec.ID, &rec.Date, &rec.Time, &rec.Reason, &rec.Staff, &rec.PetID); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
