package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/margubmurshed/fun-hour-entertainment-server/internal/domain/entity"
	"github.com/margubmurshed/fun-hour-entertainment-server/pkg/pagination"
)

// ReceiptRepository defines receipt data access. Receipts are append-only:
// there is no update or delete.
type ReceiptRepository interface {
	Create(ctx context.Context, receipt *entity.Receipt) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error)
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Receipt, int64, error)
	// ListBySession returns a session's receipts in insertion (serial) order.
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]entity.Receipt, error)
	CountBySession(ctx context.Context, sessionID uuid.UUID) (int64, error)
}
