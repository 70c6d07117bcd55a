package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"gallos-breeding-api/internal/domain/gallos"
)

type GallosRepo struct {
	db *sql.DB
}

func NewGallosRepo(db *sql.DB) *GallosRepo {
	return &GallosRepo{db: db}
}

const galloColumns = `
	id, user_id,
	nombre, codigo_identificacion, raza_id,
	fecha_nacimiento, peso, altura, color, estado, procedencia, notas,
	color_plumaje, color_placa, ubicacion_placa, color_patas,
	criador, propietario_actual, observaciones, numero_registro,
	padre_id, madre_id, tipo_registro, foto_principal_url,
	created_at, updated_at`

func (r *GallosRepo) Create(ctx context.Context, g gallos.Gallo) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO gallos (`+galloColumns+`
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25,$26)
	`,
		g.ID,
		g.UserID,
		g.Nombre,
		g.CodigoIdentificacion,
		toNullString(g.RazaID),
		toNullTime(g.FechaNacimiento),
		toNullFloat(g.Peso),
		toNullInt(g.Altura),
		g.Color,
		g.Estado,
		g.Procedencia,
		g.Notas,
		g.ColorPlumaje,
		g.ColorPlaca,
		g.UbicacionPlaca,
		g.ColorPatas,
		g.Criador,
		g.PropietarioActual,
		g.Observaciones,
		g.NumeroRegistro,
		toNullString(g.PadreID),
		toNullString(g.MadreID),
		g.TipoRegistro,
		g.FotoPrincipalURL,
		g.CreatedAt,
		g.UpdatedAt,
	)
	if err != nil && isUniqueViolation(err) {
		return gallos.ErrCodigoDuplicado
	}
	return err
}

func (r *GallosRepo) Update(ctx context.Context, g gallos.Gallo) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE gallos
		SET
			nombre = $2,
			codigo_identificacion = $3,
			raza_id = $4,
			fecha_nacimiento = $5,
			peso = $6,
			altura = $7,
			color = $8,
			estado = $9,
			procedencia = $10,
			notas = $11,
			color_plumaje = $12,
			color_placa = $13,
			ubicacion_placa = $14,
			color_patas = $15,
			criador = $16,
			propietario_actual = $17,
			observaciones = $18,
			numero_registro = $19,
			padre_id = $20,
			madre_id = $21,
			foto_principal_url = $22,
			updated_at = $23
		WHERE id = $1
	`,
		g.ID,
		g.Nombre,
		g.CodigoIdentificacion,
		toNullString(g.RazaID),
		toNullTime(g.FechaNacimiento),
		toNullFloat(g.Peso),
		toNullInt(g.Altura),
		g.Color,
		g.Estado,
		g.Procedencia,
		g.Notas,
		g.ColorPlumaje,
		g.ColorPlaca,
		g.UbicacionPlaca,
		g.ColorPatas,
		g.Criador,
		g.PropietarioActual,
		g.Observaciones,
		g.NumeroRegistro,
		toNullString(g.PadreID),
		toNullString(g.MadreID),
		g.FotoPrincipalURL,
		g.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return gallos.ErrCodigoDuplicado
		}
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GallosRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM gallos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GallosRepo) GetByID(ctx context.Context, id string) (gallos.Gallo, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return gallos.Gallo{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+galloColumns+`
		FROM gallos
		WHERE id = $1
	`, id)

	g, err := scanGallo(row)
	if err == sql.ErrNoRows {
		return gallos.Gallo{}, ErrNotFound
	}
	return g, err
}

// Columnas de ordenamiento ya validadas por el dominio; el mapa evita
// interpolar entrada del usuario en el ORDER BY.
var orderColumns = map[string]string{
	"created_at": "created_at",
	"nombre":     "nombre",
	"codigo":     "codigo_identificacion",
	"peso":       "peso",
}

func (r *GallosRepo) Search(ctx context.Context, userID string, params gallos.SearchParams) ([]gallos.Gallo, int, error) {
	where := []string{"user_id = $1"}
	args := []any{userID}

	if params.Search != "" {
		args = append(args, "%"+strings.ToLower(params.Search)+"%")
		where = append(where, fmt.Sprintf("(LOWER(nombre) LIKE $%d OR LOWER(codigo_identificacion) LIKE $%d)", len(args), len(args)))
	}
	if params.RazaID != "" {
		args = append(args, params.RazaID)
		where = append(where, fmt.Sprintf("raza_id = $%d", len(args)))
	}
	if params.Estado != "" {
		args = append(args, params.Estado)
		where = append(where, fmt.Sprintf("estado = $%d", len(args)))
	}
	if params.TienePadres != nil {
		if *params.TienePadres {
			where = append(where, "(padre_id IS NOT NULL OR madre_id IS NOT NULL)")
		} else {
			where = append(where, "padre_id IS NULL AND madre_id IS NULL")
		}
	}

	cond := strings.Join(where, " AND ")

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM gallos WHERE "+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	col, ok := orderColumns[params.SortBy]
	if !ok {
		col = "created_at"
	}
	dir := "DESC"
	if params.SortOrder == "asc" {
		dir = "ASC"
	}

	args = append(args, params.Limit, params.Offset())
	query := fmt.Sprintf(`
		SELECT %s
		FROM gallos
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, galloColumns, cond, col, dir, len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]gallos.Gallo, 0)
	for rows.Next() {
		g, err := scanGallo(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, g)
	}
	return out, total, rows.Err()
}

func (r *GallosRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM gallos WHERE user_id = $1`, userID).Scan(&n)
	return n, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGallo(row rowScanner) (gallos.Gallo, error) {
	var g gallos.Gallo
	var razaID, padreID, madreID sql.NullString
	var fechaNac sql.NullTime
	var peso sql.NullFloat64
	var altura sql.NullInt64

	err := row.Scan(
		&g.ID,
		&g.UserID,
		&g.Nombre,
		&g.CodigoIdentificacion,
		&razaID,
		&fechaNac,
		&peso,
		&altura,
		&g.Color,
		&g.Estado,
		&g.Procedencia,
		&g.Notas,
		&g.ColorPlumaje,
		&g.ColorPlaca,
		&g.UbicacionPlaca,
		&g.ColorPatas,
		&g.Criador,
		&g.PropietarioActual,
		&g.Observaciones,
		&g.NumeroRegistro,
		&padreID,
		&madreID,
		&g.TipoRegistro,
		&g.FotoPrincipalURL,
		&g.CreatedAt,
		&g.UpdatedAt,
	)
	if err != nil {
		return gallos.Gallo{}, err
	}

	g.RazaID = fromNullString(razaID)
	g.FechaNacimiento = fromNullTime(fechaNac)
	if peso.Valid {
		p := peso.Float64
		g.Peso = &p
	}
	if altura.Valid {
		a := int(altura.Int64)
		g.Altura = &a
	}
	g.PadreID = fromNullString(padreID)
	g.MadreID = fromNullString(madreID)

	return g, nil
}
