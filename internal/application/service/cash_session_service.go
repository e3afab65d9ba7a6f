package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/margubmurshed/fun-hour-entertainment-server/internal/domain/entity"
	"github.com/margubmurshed/fun-hour-entertainment-server/internal/domain/repository"
	"github.com/margubmurshed/fun-hour-entertainment-server/pkg/apperror"
	"github.com/margubmurshed/fun-hour-entertainment-server/pkg/pagination"
)

// CashSessionService handles register shifts: opening, the single close
// transition, and lookups.
type CashSessionService struct {
	sessionRepo repository.CashSessionRepository
}

// NewCashSessionService creates a new cash session service.
func NewCashSessionService(sessionRepo repository.CashSessionRepository) *CashSessionService {
	return &CashSessionService{sessionRepo: sessionRepo}
}

// Open starts a new register shift. A cashier can have at most one open
// session at a time; a second open attempt is rejected.
func (s *CashSessionService) Open(ctx context.Context, session *entity.CashSession) error {
	existing, err := s.sessionRepo.GetOpenByEmail(ctx, session.CashierEmail)
	if err != nil {
		return err
	}
	if existing != nil {
		return apperror.NewConflictError("Cashier already has an open session")
	}

	if session.OpeningCashTime == 0 {
		session.OpeningCashTime = time.Now().UnixMilli()
	}
	session.ClosingCashAmount = nil
	session.ClosingCashTime = nil

	return s.sessionRepo.Create(ctx, session)
}

// Close records the declared closing cash count. A session is closed
// exactly once; closing an already closed session is rejected.
func (s *CashSessionService) Close(ctx context.Context, id uuid.UUID, closingCashAmount float64) (*entity.CashSession, error) {
	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.NewNotFoundError("Cash session")
	}
	if !session.IsOpen() {
		return nil, apperror.NewConflictError("Cash session is already closed")
	}

	closedAt := time.Now().UnixMilli()
	session.ClosingCashAmount = &closingCashAmount
	session.ClosingCashTime = &closedAt

	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Get returns one session by ID.
func (s *CashSessionService) Get(ctx context.Context, id uuid.UUID) (*entity.CashSession, error) {
	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.NewNotFoundError("Cash session")
	}
	return session, nil
}

// GetOpenByEmail returns the cashier's open session. Having no open
// register is the normal state between shifts, not an error: the result
// is simply nil and clients treat it as "closed".
func (s *CashSessionService) GetOpenByEmail(ctx context.Context, email string) (*entity.CashSession, error) {
	return s.sessionRepo.GetOpenByEmail(ctx, email)
}

// List returns sessions, newest first, paginated.
func (s *CashSessionService) List(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.CashSession], error) {
	sessions, total, err := s.sessionRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(sessions, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}
