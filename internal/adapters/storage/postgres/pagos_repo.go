package postgres

import (
	"context"
	"database/sql"
	"strings"

	"gallos-breeding-api/internal/domain/pagos"
)

type PagosRepo struct {
	db *sql.DB
}

func NewPagosRepo(db *sql.DB) *PagosRepo {
	return &PagosRepo{db: db}
}

const pagoColumns = `
	id, user_id,
	plan_codigo, monto, metodo_pago, estado,
	referencia_yape, comprobante_url,
	fecha_pago_usuario, fecha_verificacion,
	verificado_por, notas_admin, intentos,
	created_at, updated_at`

func (r *PagosRepo) Create(ctx context.Context, p pagos.Pago) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pagos (`+pagoColumns+`
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
	`,
		p.ID,
		p.UserID,
		p.PlanCodigo,
		p.Monto,
		p.MetodoPago,
		p.Estado,
		p.ReferenciaYape,
		p.ComprobanteURL,
		toNullTime(p.FechaPagoUsuario),
		toNullTime(p.FechaVerificacion),
		p.VerificadoPor,
		p.NotasAdmin,
		p.Intentos,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

func (r *PagosRepo) Update(ctx context.Context, p pagos.Pago) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pagos
		SET
			estado = $2,
			referencia_yape = $3,
			comprobante_url = $4,
			fecha_pago_usuario = $5,
			fecha_verificacion = $6,
			verificado_por = $7,
			notas_admin = $8,
			intentos = $9,
			updated_at = $10
		WHERE id = $1
	`,
		p.ID,
		p.Estado,
		p.ReferenciaYape,
		p.ComprobanteURL,
		toNullTime(p.FechaPagoUsuario),
		toNullTime(p.FechaVerificacion),
		p.VerificadoPor,
		p.NotasAdmin,
		p.Intentos,
		p.UpdatedAt,
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

func (r *PagosRepo) GetByID(ctx context.Context, id string) (pagos.Pago, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pagos.Pago{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+pagoColumns+`
		FROM pagos
		WHERE id = $1
	`, id)

	p, err := scanPago(row)
	if err == sql.ErrNoRows {
		return pagos.Pago{}, ErrNotFound
	}
	return p, err
}

func (r *PagosRepo) ListByUser(ctx context.Context, userID string) ([]pagos.Pago, error) {
	return r.list(ctx, `WHERE user_id = $1 ORDER BY created_at DESC`, userID)
}

func (r *PagosRepo) ListByEstado(ctx context.Context, estado pagos.EstadoPago) ([]pagos.Pago, error) {
	return r.list(ctx, `WHERE estado = $1 ORDER BY created_at ASC`, string(estado))
}

func (r *PagosRepo) list(ctx context.Context, tail string, arg any) ([]pagos.Pago, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+pagoColumns+` FROM pagos `+tail, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pagos.Pago, 0)
	for rows.Next() {
		p, err := scanPago(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanPago(row rowScanner) (pagos.Pago, error) {
	var p pagos.Pago
	var fechaPago, fechaVerif sql.NullTime

	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.PlanCodigo,
		&p.Monto,
		&p.MetodoPago,
		&p.Estado,
		&p.ReferenciaYape,
		&p.ComprobanteURL,
		&fechaPago,
		&fechaVerif,
		&p.VerificadoPor,
		&p.NotasAdmin,
		&p.Intentos,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return pagos.Pago{}, err
	}

	p.FechaPagoUsuario = fromNullTime(fechaPago)
	p.FechaVerificacion = fromNullTime(fechaVerif)

	return p, nil
}
