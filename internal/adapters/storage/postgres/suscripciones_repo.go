package postgres

import (
	"context"
	"database/sql"
	"strings"

	"gallos-breeding-api/internal/domain/suscripciones"
)

type SuscripcionesRepo struct {
	db *sql.DB
}

func NewSuscripcionesRepo(db *sql.DB) *SuscripcionesRepo {
	return &SuscripcionesRepo{db: db}
}

const suscripcionColumns = `
	id, user_id,
	plan_type, plan_name, precio,
	gallos_maximo, topes_por_gallo, peleas_por_gallo, vacunas_por_gallo,
	status, fecha_inicio, fecha_fin,
	created_at, updated_at`

func (r *SuscripcionesRepo) Create(ctx context.Context, s suscripciones.Suscripcion) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO suscripciones (`+suscripcionColumns+`
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
	`,
		s.ID,
		s.UserID,
		s.PlanType,
		s.PlanName,
		s.Precio,
		s.GallosMaximo,
		s.TopesPorGallo,
		s.PeleasPorGallo,
		s.VacunasPorGallo,
		s.Status,
		s.FechaInicio,
		toNullTime(s.FechaFin),
		s.CreatedAt,
		s.UpdatedAt,
	)
	return err
}

func (r *SuscripcionesRepo) Update(ctx context.Context, s suscripciones.Suscripcion) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE suscripciones
		SET
			plan_type = $2,
			plan_name = $3,
			precio = $4,
			gallos_maximo = $5,
			topes_por_gallo = $6,
			peleas_por_gallo = $7,
			vacunas_por_gallo = $8,
			status = $9,
			fecha_inicio = $10,
			fecha_fin = $11,
			updated_at = $12
		WHERE id = $1
	`,
		s.ID,
		s.PlanType,
		s.PlanName,
		s.Precio,
		s.GallosMaximo,
		s.TopesPorGallo,
		s.PeleasPorGallo,
		s.VacunasPorGallo,
		s.Status,
		s.FechaInicio,
		toNullTime(s.FechaFin),
		s.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SuscripcionesRepo) GetByID(ctx context.Context, id string) (suscripciones.Suscripcion, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return suscripciones.Suscripcion{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+suscripcionColumns+`
		FROM suscripciones
		WHERE id = $1
	`, id)

	s, err := scanSuscripcion(row)
	if err == sql.ErrNoRows {
		return suscripciones.Suscripcion{}, ErrNotFound
	}
	return s, err
}

func (r *SuscripcionesRepo) ListByUser(ctx context.Context, userID string) ([]suscripciones.Suscripcion, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+suscripcionColumns+`
		FROM suscripciones
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]suscripciones.Suscripcion, 0)
	for rows.Next() {
		s, err := scanSuscripcion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SuscripcionesRepo) GetActivaByUser(ctx context.Context, userID string) (suscripciones.Suscripcion, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+suscripcionColumns+`
		FROM suscripciones
		WHERE user_id = $1 AND status = 'active'
		ORDER BY created_at DESC
		LIMIT 1
	`, userID)

	s, err := scanSuscripcion(row)
	if err == sql.ErrNoRows {
		return suscripciones.Suscripcion{}, ErrNotFound
	}
	return s, err
}

func scanSuscripcion(row rowScanner) (suscripciones.Suscripcion, error) {
	var s suscripciones.Suscripcion
	var fin sql.NullTime

	err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.PlanType,
		&s.PlanName,
		&s.Precio,
		&s.GallosMaximo,
		&s.TopesPorGallo,
		&s.PeleasPorGallo,
		&s.VacunasPorGallo,
		&s.Status,
		&s.FechaInicio,
		&fin,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return suscripciones.Suscripcion{}, err
	}

	s.FechaFin = fromNullTime(fin)
	return s, nil
}
