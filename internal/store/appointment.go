package store

import (
	"context"
	"fmt"
	"strings"

	"cleaning-booking-api/internal/model"
)

const appointmentCols = `id, name, email, phone, service_type, preferred_date,
	preferred_time, details, created_at`

func scanAppointment(row interface{ Scan(...any) error }) (*model.Appointment, error) {
	a := &model.Appointment{}
	err := row.Scan(&a.ID, &a.Name, &a.Email, &a.Phone, &a.ServiceType,
		&a.PreferredDate, &a.PreferredTime, &a.Details, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Store) CreateAppointment(ctx context.Context, a *model.Appointment) (*model.Appointment, error) {
	return scanAppointment(s.pool.QueryRow(ctx,
		`INSERT INTO appointments (name, email, phone, service_type, preferred_date, preferred_time, details)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)
		 RETURNING `+appointmentCols,
		a.Name, a.Email, a.Phone, a.ServiceType, a.PreferredDate, a.PreferredTime, a.Details,
	))
}

// ListAppointments returns every booking request, newest first.
func (s *Store) ListAppointments(ctx context.Context) ([]model.Appointment, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+appointmentCols+`
		 FROM appointments
		 ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

func (s *Store) GetAppointment(ctx context.Context, id int) (*model.Appointment, error) {
	return scanAppointment(s.pool.QueryRow(ctx,
		`SELECT `+appointmentCols+` FROM appointments WHERE id = $1`, id,
	))
}

// UpdateAppointment applies only the fields present in the patch and returns
// the updated row. With an empty patch it returns the row unchanged.
func (s *Store) UpdateAppointment(ctx context.Context, id int, p *model.AppointmentPatch) (*model.Appointment, error) {
	sets := []string{}
	args := []any{}
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if p.Name != nil {
		add("name", *p.Name)
	}
	if p.Email != nil {
		add("email", *p.Email)
	}
	if p.Phone != nil {
		add("phone", *p.Phone)
	}
	if p.ServiceType != nil {
		add("service_type", *p.ServiceType)
	}
	if p.PreferredDate != nil {
		add("preferred_date", *p.PreferredDate)
	}
	if p.PreferredTime != nil {
		add("preferred_time", *p.PreferredTime)
	}
	if p.Details != nil {
		add("details", *p.Details)
	}

	if len(sets) == 0 {
		return s.GetAppointment(ctx, id)
	}

	args = append(args, id)
	q := fmt.Sprintf(
		`UPDATE appointments SET %s WHERE id = $%d RETURNING `+appointmentCols,
		strings.Join(sets, ", "), len(args),
	)
	return scanAppointment(s.pool.QueryRow(ctx, q, args...))
}

// DeleteAppointment reports whether a row was actually removed.
func (s *Store) DeleteAppointment(ctx context.Context, id int) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
