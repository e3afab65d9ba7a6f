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

// ReceiptService handles receipt creation and lookups.
type ReceiptService struct {
	receiptRepo repository.ReceiptRepository
	sessionRepo repository.CashSessionRepository
}

// NewReceiptService creates a new receipt service.
func NewReceiptService(receiptRepo repository.ReceiptRepository, sessionRepo repository.CashSessionRepository) *ReceiptService {
	return &ReceiptService{receiptRepo: receiptRepo, sessionRepo: sessionRepo}
}

// Create stores a new receipt. The serial is assigned here as the number
// of receipts already in the session plus one. Receipts are never deleted,
// so serials stay 1-based and gapless. A zero CreatedAt is filled with the
// current time in millisecond epoch.
func (s *ReceiptService) Create(ctx context.Context, receipt *entity.Receipt) error {
	session, err := s.sessionRepo.GetByID(ctx, receipt.CashSessionID)
	if err != nil {
		return err
	}
	if session == nil {
		return apperror.NewNotFoundError("Cash session")
	}

	count, err := s.receiptRepo.CountBySession(ctx, receipt.CashSessionID)
	if err != nil {
		return err
	}
	receipt.Serial = int(count) + 1

	if receipt.CreatedAt == 0 {
		receipt.CreatedAt = time.Now().UnixMilli()
	}

	return s.receiptRepo.Create(ctx, receipt)
}

// Get returns one receipt by ID.
func (s *ReceiptService) Get(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	receipt, err := s.receiptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, apperror.NewNotFoundError("Receipt")
	}
	return receipt, nil
}

// List returns receipts, newest first, paginated.
func (s *ReceiptService) List(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Receipt], error) {
	receipts, total, err := s.receiptRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(receipts, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// ListBySession returns a session's receipts in serial order.
func (s *ReceiptService) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]entity.Receipt, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.NewNotFoundError("Cash session")
	}
	return s.receiptRepo.ListBySession(ctx, sessionID)
}
