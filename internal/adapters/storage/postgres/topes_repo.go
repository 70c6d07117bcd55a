package postgres

import (
	"context"
	"database/sql"
	"strings"

	"gallos-breeding-api/internal/domain/topes"
)

type TopesRepo struct {
	db *sql.DB
}

func NewTopesRepo(db *sql.DB) *TopesRepo {
	return &TopesRepo{db: db}
}

const topeColumns = `
	id, gallo_id, user_id,
	titulo, descripcion, fecha_tope, ubicacion, duracion_minutos,
	tipo_entrenamiento, des_sparring, tipo_resultado, tipo_condicion_fisica,
	peso_post_tope, fecha_proximo, observaciones, video_url,
	created_at, updated_at`

func (r *TopesRepo) Create(ctx context.Context, t topes.Tope) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO topes (`+topeColumns+`
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
	`,
		t.ID,
		t.GalloID,
		t.UserID,
		t.Titulo,
		t.Descripcion,
		t.FechaTope,
		t.Ubicacion,
		toNullInt(t.DuracionMinutos),
		t.TipoEntrenamiento,
		t.DesSparring,
		t.TipoResultado,
		t.TipoCondicionFisica,
		t.PesoPostTope,
		toNullTime(t.FechaProximo),
		t.Observaciones,
		t.VideoURL,
		t.CreatedAt,
		t.UpdatedAt,
	)
	return err
}

func (r *TopesRepo) Update(ctx context.Context, t topes.Tope) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE topes
		SET
			titulo = $2,
			descripcion = $3,
			fecha_tope = $4,
			ubicacion = $5,
			duracion_minutos = $6,
			tipo_entrenamiento = $7,
			des_sparring = $8,
			tipo_resultado = $9,
			tipo_condicion_fisica = $10,
			peso_post_tope = $11,
			fecha_proximo = $12,
			observaciones = $13,
			video_url = $14,
			updated_at = $15
		WHERE id = $1
	`,
		t.ID,
		t.Titulo,
		t.Descripcion,
		t.FechaTope,
		t.Ubicacion,
		toNullInt(t.DuracionMinutos),
		t.TipoEntrenamiento,
		t.DesSparring,
		t.TipoResultado,
		t.TipoCondicionFisica,
		t.PesoPostTope,
		toNullTime(t.FechaProximo),
		t.Observaciones,
		t.VideoURL,
		t.UpdatedAt,
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

func (r *TopesRepo) GetByID(ctx context.Context, id string) (topes.Tope, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return topes.Tope{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+topeColumns+`
		FROM topes
		WHERE id = $1
	`, id)

	t, err := scanTope(row)
	if err == sql.ErrNoRows {
		return topes.Tope{}, ErrNotFound
	}
	return t, err
}

func (r *TopesRepo) ListByGallo(ctx context.Context, galloID string) ([]topes.Tope, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+topeColumns+`
		FROM topes
		WHERE gallo_id = $1
		ORDER BY fecha_tope DESC
	`, galloID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]topes.Tope, 0)
	for rows.Next() {
		t, err := scanTope(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *TopesRepo) CountByGallo(ctx context.Context, galloID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM topes WHERE gallo_id = $1`, galloID).Scan(&n)
	return n, err
}

func scanTope(row rowScanner) (topes.Tope, error) {
	var t topes.Tope
	var duracion sql.NullInt64
	var proximo sql.NullTime

	err := row.Scan(
		&t.ID,
		&t.GalloID,
		&t.UserID,
		&t.Titulo,
		&t.Descripcion,
		&t.FechaTope,
		&t.Ubicacion,
		&duracion,
		&t.TipoEntrenamiento,
		&t.DesSparring,
		&t.TipoResultado,
		&t.TipoCondicionFisica,
		&t.PesoPostTope,
		&proximo,
		&t.Observaciones,
		&t.VideoURL,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return topes.Tope{}, err
	}

	if duracion.Valid {
		d := int(duracion.Int64)
		t.DuracionMinutos = &d
	}
	t.FechaProximo = fromNullTime(proximo)

	return t, nil
}
