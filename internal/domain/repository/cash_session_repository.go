package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/margubmurshed/fun-hour-entertainment-server/internal/domain/entity"
	"github.com/margubmurshed/fun-hour-entertainment-server/pkg/pagination"
)

// CashSessionRepository defines cash session data access. Sessions are
// created once and updated exactly once, when the register is closed.
type CashSessionRepository interface {
	Create(ctx context.Context, session *entity.CashSession) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.CashSession, error)
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.CashSession, int64, error)
	// GetOpenByEmail returns the cashier's session with no closing amount,
	// or nil when the cashier has no open register.
	GetOpenByEmail(ctx context.Context, email string) (*entity.CashSession, error)
	Update(ctx context.Context, session *entity.CashSession) error
}
