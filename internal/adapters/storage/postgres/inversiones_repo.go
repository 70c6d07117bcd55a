package postgres

import (
	"context"
	"database/sql"
	"strings"

	"gallos-breeding-api/internal/domain/inversiones"
)

type InversionesRepo struct {
	db *sql.DB
}

func NewInversionesRepo(db *sql.DB) *InversionesRepo {
	return &InversionesRepo{db: db}
}

const inversionColumns = `
	id, user_id, anio, mes, tipo_gasto, costo, fecha_registro, updated_at`

func (r *InversionesRepo) Create(ctx context.Context, inv inversiones.Inversion) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO inversiones (`+inversionColumns+`
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		inv.ID,
		inv.UserID,
		inv.Anio,
		inv.Mes,
		inv.TipoGasto,
		inv.Costo,
		inv.FechaRegistro,
		inv.UpdatedAt,
	)
	return err
}

func (r *InversionesRepo) Update(ctx context.Context, inv inversiones.Inversion) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE inversiones
		SET
			anio = $2,
			mes = $3,
			tipo_gasto = $4,
			costo = $5,
			updated_at = $6
		WHERE id = $1
	`,
		inv.ID,
		inv.Anio,
		inv.Mes,
		inv.TipoGasto,
		inv.Costo,
		inv.UpdatedAt,
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

func (r *InversionesRepo) GetByID(ctx context.Context, id string) (inversiones.Inversion, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return inversiones.Inversion{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+inversionColumns+`
		FROM inversiones
		WHERE id = $1
	`, id)

	var inv inversiones.Inversion
	err := row.Scan(
		&inv.ID,
		&inv.UserID,
		&inv.Anio,
		&inv.Mes,
		&inv.TipoGasto,
		&inv.Costo,
		&inv.FechaRegistro,
		&inv.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return inversiones.Inversion{}, ErrNotFound
	}
	return inv, err
}

func (r *InversionesRepo) ListByUser(ctx context.Context, userID string) ([]inversiones.Inversion, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+inversionColumns+`
		FROM inversiones
		WHERE user_id = $1
		ORDER BY anio DESC, mes DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]inversiones.Inversion, 0)
	for rows.Next() {
		var inv inversiones.Inversion
		if err := rows.Scan(
			&inv.ID,
			&inv.UserID,
			&inv.Anio,
			&inv.Mes,
			&inv.TipoGasto,
			&inv.Costo,
			&inv.FechaRegistro,
			&inv.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}
