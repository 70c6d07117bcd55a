package postgres

import (
	"context"
	"database/sql"
	"strings"

	"gallos-breeding-api/internal/domain/vacunas"
)

type VacunasRepo struct {
	db *sql.DB
}

func NewVacunasRepo(db *sql.DB) *VacunasRepo {
	return &VacunasRepo{db: db}
}

const vacunaColumns = `
	id, gallo_id, user_id,
	tipo_vacuna, laboratorio, fecha_aplicacion, proxima_dosis,
	veterinario_nombre, clinica, dosis, notas,
	created_at, updated_at`

func (r *VacunasRepo) Create(ctx context.Context, v vacunas.Vacuna) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO vacunas (`+vacunaColumns+`
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
	`,
		v.ID,
		v.GalloID,
		v.UserID,
		v.TipoVacuna,
		v.Laboratorio,
		v.FechaAplicacion,
		toNullTime(v.ProximaDosis),
		v.VeterinarioNombre,
		v.Clinica,
		v.Dosis,
		v.Notas,
		v.CreatedAt,
		v.UpdatedAt,
	)
	return err
}

func (r *VacunasRepo) Update(ctx context.Context, v vacunas.Vacuna) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE vacunas
		SET
			tipo_vacuna = $2,
			laboratorio = $3,
			fecha_aplicacion = $4,
			proxima_dosis = $5,
			veterinario_nombre = $6,
			clinica = $7,
			dosis = $8,
			notas = $9,
			updated_at = $10
		WHERE id = $1
	`,
		v.ID,
		v.TipoVacuna,
		v.Laboratorio,
		v.FechaAplicacion,
		toNullTime(v.ProximaDosis),
		v.VeterinarioNombre,
		v.Clinica,
		v.Dosis,
		v.Notas,
		v.UpdatedAt,
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

func (r *VacunasRepo) GetByID(ctx context.Context, id string) (vacunas.Vacuna, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return vacunas.Vacuna{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+vacunaColumns+`
		FROM vacunas
		WHERE id = $1
	`, id)

	v, err := scanVacuna(row)
	if err == sql.ErrNoRows {
		return vacunas.Vacuna{}, ErrNotFound
	}
	return v, err
}

func (r *VacunasRepo) ListByGallo(ctx context.Context, galloID string) ([]vacunas.Vacuna, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+vacunaColumns+`
		FROM vacunas
		WHERE gallo_id = $1
		ORDER BY fecha_aplicacion DESC
	`, galloID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]vacunas.Vacuna, 0)
	for rows.Next() {
		v, err := scanVacuna(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *VacunasRepo) CountByGallo(ctx context.Context, galloID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM vacunas WHERE gallo_id = $1`, galloID).Scan(&n)
	return n, err
}

func (r *VacunasRepo) ListProximasByUser(ctx context.Context, userID string) ([]vacunas.ProximaRow, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			v.id, v.gallo_id, v.user_id,
			v.tipo_vacuna, v.laboratorio, v.fecha_aplicacion, v.proxima_dosis,
			v.veterinario_nombre, v.clinica, v.dosis, v.notas,
			v.created_at, v.updated_at,
			g.nombre
		FROM vacunas v
		JOIN gallos g ON g.id = v.gallo_id
		WHERE v.user_id = $1 AND v.proxima_dosis IS NOT NULL
		ORDER BY v.proxima_dosis ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]vacunas.ProximaRow, 0)
	for rows.Next() {
		var v vacunas.Vacuna
		var proxima sql.NullTime
		var galloNombre string
		if err := rows.Scan(
			&v.ID,
			&v.GalloID,
			&v.UserID,
			&v.TipoVacuna,
			&v.Laboratorio,
			&v.FechaAplicacion,
			&proxima,
			&v.VeterinarioNombre,
			&v.Clinica,
			&v.Dosis,
			&v.Notas,
			&v.CreatedAt,
			&v.UpdatedAt,
			&galloNombre,
		); err != nil {
			return nil, err
		}
		v.ProximaDosis = fromNullTime(proxima)
		out = append(out, vacunas.ProximaRow{Vacuna: v, GalloNombre: galloNombre})
	}
	return out, rows.Err()
}

func scanVacuna(row rowScanner) (vacunas.Vacuna, error) {
	var v vacunas.Vacuna
	var proxima sql.NullTime

	err := row.Scan(
		&v.ID,
		&v.GalloID,
		&v.UserID,
		&v.TipoVacuna,
		&v.Laboratorio,
		&v.FechaAplicacion,
		&proxima,
		&v.VeterinarioNombre,
		&v.Clinica,
		&v.Dosis,
		&v.Notas,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		return vacunas.Vacuna{}, err
	}

	v.ProximaDosis = fromNullTime(proxima)
	return v, nil
}
