package pagos

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("pago not found")
	ErrInvalidTransition = errors.New("transición de estado no permitida")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Create registra un pago en estado pendiente.
func (s *Service) Create(ctx context.Context, userID string, req CreateRequest) (Pago, error) {
	if strings.TrimSpace(userID) == "" {
		return Pago{}, ErrInvalidInput
	}

	normalized, violations := req.Validate()
	if len(violations) > 0 {
		return Pago{}, violations
	}

	now := s.now()
	p := Pago{
		ID:             uuid.NewString(),
		UserID:         userID,
		PlanCodigo:     normalized.PlanCodigo,
		Monto:          normalized.Monto,
		MetodoPago:     MetodoPago(normalized.MetodoPago),
		Estado:         PagoPendiente,
		ReferenciaYape: normalized.ReferenciaYape,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pago{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id, userID string) (Pago, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pago{}, err
	}
	if p.UserID != userID {
		return Pago{}, ErrNotFound
	}
	return p, nil
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]Pago, error) {
	return s.repo.ListByUser(ctx, userID)
}

// ListPorVerificar devuelve los pagos en espera de revisión de un admin.
func (s *Service) ListPorVerificar(ctx context.Context) ([]Pago, error) {
	return s.repo.ListByEstado(ctx, PagoVerificando)
}

// AttachComprobante adjunta el comprobante subido por el dueño del pago y
// lo pasa a verificando. Se permite re-subir mientras siga en verificando;
// cada subida cuenta como un intento.
func (s *Service) AttachComprobante(ctx context.Context, id, userID string, req ComprobanteRequest) (Pago, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pago{}, err
	}
	if p.UserID != userID {
		return Pago{}, ErrNotFound
	}
	if p.Estado != PagoPendiente && p.Estado != PagoVerificando {
		return Pago{}, ErrInvalidTransition
	}

	normalized, violations := req.Validate()
	if len(violations) > 0 {
		return Pago{}, violations
	}

	now := s.now()
	p.Estado = PagoVerificando
	p.ComprobanteURL = normalized.ComprobanteURL
	if normalized.ReferenciaYape != "" {
		p.ReferenciaYape = normalized.ReferenciaYape
	}
	p.FechaPagoUsuario = &now
	p.Intentos++
	p.UpdatedAt = now

	if err := s.repo.Update(ctx, p); err != nil {
		return Pago{}, err
	}
	return p, nil
}

// Verificar resuelve un pago en verificando: lo aprueba o lo rechaza,
// dejando constancia de quién lo revisó.
func (s *Service) Verificar(ctx context.Context, id, adminID string, req VerificacionRequest) (Pago, error) {
	if strings.TrimSpace(adminID) == "" {
		return Pago{}, ErrInvalidInput
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pago{}, err
	}
	if p.Estado != PagoVerificando {
		return Pago{}, ErrInvalidTransition
	}

	normalized, violations := req.Validate()
	if len(violations) > 0 {
		return Pago{}, violations
	}

	now := s.now()
	if normalized.Aprobado {
		p.Estado = PagoAprobado
	} else {
		p.Estado = PagoRechazado
	}
	p.FechaVerificacion = &now
	p.VerificadoPor = adminID
	p.NotasAdmin = normalized.NotasAdmin
	p.UpdatedAt = now

	if err := s.repo.Update(ctx, p); err != nil {
		return Pago{}, err
	}
	return p, nil
}
