package gallos

import (
	"net/url"
	"strconv"
	"strings"

	"gallos-breeding-api/internal/validation"
)

// Columnas por las que se permite ordenar. Cualquier otra cae al default.
var sortableColumns = map[string]bool{
	"created_at": true,
	"nombre":     true,
	"codigo":     true,
	"peso":       true,
}

// SearchParams son los parámetros de listado/búsqueda de gallos.
type SearchParams struct {
	Page  int `json:"page" validate:"gte=1"`
	Limit int `json:"limit" validate:"gte=1,lte=100"`

	Search string `json:"search" validate:"omitempty,min=2"`
	RazaID string `json:"raza_id"`
	Estado string `json:"estado"`

	TienePadres *bool `json:"tiene_padres"`

	SortBy    string `json:"sort_by"`
	SortOrder string `json:"sort_order" validate:"oneof=asc desc"`

	IncludeGenealogy bool `json:"include_genealogy"`
}

func defaultSearchParams() SearchParams {
	return SearchParams{
		Page:      1,
		Limit:     20,
		SortBy:    "created_at",
		SortOrder: "desc",
	}
}

// ParseSearchParams arma los parámetros desde la query string. Los campos
// ausentes toman default; los presentes se validan (page >= 1, limit 1..100,
// search de al menos 2 caracteres, sort_order asc|desc).
func ParseSearchParams(q url.Values) (SearchParams, validation.Violations) {
	p := defaultSearchParams()
	var v validation.Violations

	if raw := strings.TrimSpace(q.Get("page")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			v.Add("page", validation.KindInvalidFormat, "debe ser un entero")
		} else {
			p.Page = n
		}
	}
	if raw := strings.TrimSpace(q.Get("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			v.Add("limit", validation.KindInvalidFormat, "debe ser un entero")
		} else {
			p.Limit = n
		}
	}

	p.Search = strings.TrimSpace(q.Get("search"))
	p.RazaID = strings.TrimSpace(q.Get("raza_id"))
	p.Estado = strings.ToLower(strings.TrimSpace(q.Get("estado")))

	if raw := strings.TrimSpace(q.Get("tiene_padres")); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			v.Add("tiene_padres", validation.KindInvalidFormat, "debe ser true o false")
		} else {
			p.TienePadres = &b
		}
	}

	if raw := strings.TrimSpace(q.Get("sort_by")); raw != "" {
		if sortableColumns[raw] {
			p.SortBy = raw
		}
	}
	if raw := strings.ToLower(strings.TrimSpace(q.Get("sort_order"))); raw != "" {
		p.SortOrder = raw
	}

	if raw := strings.TrimSpace(q.Get("include_genealogy")); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err == nil {
			p.IncludeGenealogy = b
		}
	}

	v.Merge(validation.Struct(p))

	if p.Estado != "" && !estadoValido(p.Estado) {
		v.InvalidEnum("estado", p.Estado, EstadosValidos())
	}

	return p, v
}

// Offset para paginación SQL.
func (p SearchParams) Offset() int {
	return (p.Page - 1) * p.Limit
}
