package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/margubmurshed/fun-hour-entertainment-server/internal/domain/entity"
	"github.com/margubmurshed/fun-hour-entertainment-server/pkg/apperror"
	"github.com/margubmurshed/fun-hour-entertainment-server/pkg/pagination"
	"github.com/stretchr/testify/assert"
)

// In-memory repositories for exercising service logic without a database.

type fakeReceiptRepo struct {
	receipts []entity.Receipt
}

func (r *fakeReceiptRepo) Create(ctx context.Context, receipt *entity.Receipt) error {
	if receipt.ID == uuid.Nil {
		receipt.ID = uuid.New()
	}
	r.receipts = append(r.receipts, *receipt)
	return nil
}

func (r *fakeReceiptRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	for i := range r.receipts {
		if r.receipts[i].ID == id {
			return &r.receipts[i], nil
		}
	}
	return nil, nil
}

func (r *fakeReceiptRepo) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Receipt, int64, error) {
	return r.receipts, int64(len(r.receipts)), nil
}

func (r *fakeReceiptRepo) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]entity.Receipt, error) {
	var out []entity.Receipt
	for _, rec := range r.receipts {
		if rec.CashSessionID == sessionID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeReceiptRepo) CountBySession(ctx context.Context, sessionID uuid.UUID) (int64, error) {
	var n int64
	for _, rec := range r.receipts {
		if rec.CashSessionID == sessionID {
			n++
		}
	}
	return n, nil
}

type fakeSessionRepo struct {
	sessions []entity.CashSession
}

func (r *fakeSessionRepo) Create(ctx context.Context, session *entity.CashSession) error {
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	r.sessions = append(r.sessions, *session)
	return nil
}

func (r *fakeSessionRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.CashSession, error) {
	for i := range r.sessions {
		if r.sessions[i].ID == id {
			return &r.sessions[i], nil
		}
	}
	return nil, nil
}

func (r *fakeSessionRepo) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.CashSession, int64, error) {
	return r.sessions, int64(len(r.sessions)), nil
}

func (r *fakeSessionRepo) GetOpenByEmail(ctx context.Context, email string) (*entity.CashSession, error) {
	for i := range r.sessions {
		if r.sessions[i].CashierEmail == email && r.sessions[i].IsOpen() {
			return &r.sessions[i], nil
		}
	}
	return nil, nil
}

func (r *fakeSessionRepo) Update(ctx context.Context, session *entity.CashSession) error {
	for i := range r.sessions {
		if r.sessions[i].ID == session.ID {
			r.sessions[i] = *session
			return nil
		}
	}
	return nil
}

func TestReceiptService_Create_AssignsSequentialSerials(t *testing.T) {
	sessionRepo := &fakeSessionRepo{}
	receiptRepo := &fakeReceiptRepo{}
	session := &entity.CashSession{CashierName: "Sara", CashierEmail: "sara@funhour.sa", OpeningCashAmount: 100, OpeningCashTime: 1700000000000}
	assert.NoError(t, sessionRepo.Create(context.Background(), session))

	svc := NewReceiptService(receiptRepo, sessionRepo)

	for want := 1; want <= 3; want++ {
		receipt := &entity.Receipt{
			CashSessionID: session.ID,
			Total:         10,
			PaymentType:   entity.PaymentTypeCash,
		}
		err := svc.Create(context.Background(), receipt)
		assert.NoError(t, err)
		assert.Equal(t, want, receipt.Serial)
	}
}

func TestReceiptService_Create_SerialsIndependentPerSession(t *testing.T) {
	sessionRepo := &fakeSessionRepo{}
	receiptRepo := &fakeReceiptRepo{}
	a := &entity.CashSession{CashierEmail: "a@funhour.sa", OpeningCashTime: 1}
	b := &entity.CashSession{CashierEmail: "b@funhour.sa", OpeningCashTime: 1}
	assert.NoError(t, sessionRepo.Create(context.Background(), a))
	assert.NoError(t, sessionRepo.Create(context.Background(), b))

	svc := NewReceiptService(receiptRepo, sessionRepo)

	r1 := &entity.Receipt{CashSessionID: a.ID}
	r2 := &entity.Receipt{CashSessionID: b.ID}
	r3 := &entity.Receipt{CashSessionID: a.ID}
	assert.NoError(t, svc.Create(context.Background(), r1))
	assert.NoError(t, svc.Create(context.Background(), r2))
	assert.NoError(t, svc.Create(context.Background(), r3))

	assert.Equal(t, 1, r1.Serial)
	assert.Equal(t, 1, r2.Serial)
	assert.Equal(t, 2, r3.Serial)
}

func TestReceiptService_Create_UnknownSession(t *testing.T) {
	svc := NewReceiptService(&fakeReceiptRepo{}, &fakeSessionRepo{})

	err := svc.Create(context.Background(), &entity.Receipt{CashSessionID: uuid.New()})

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
}

func TestReceiptService_Create_DefaultsCreatedAt(t *testing.T) {
	sessionRepo := &fakeSessionRepo{}
	session := &entity.CashSession{CashierEmail: "sara@funhour.sa", OpeningCashTime: 1}
	assert.NoError(t, sessionRepo.Create(context.Background(), session))
	svc := NewReceiptService(&fakeReceiptRepo{}, sessionRepo)

	receipt := &entity.Receipt{CashSessionID: session.ID}
	assert.NoError(t, svc.Create(context.Background(), receipt))
	assert.Greater(t, receipt.CreatedAt, int64(1700000000000))
}

func TestCashSessionService_Open_RejectsSecondOpenSession(t *testing.T) {
	sessionRepo := &fakeSessionRepo{}
	svc := NewCashSessionService(sessionRepo)

	first := &entity.CashSession{CashierEmail: "sara@funhour.sa", OpeningCashAmount: 100}
	assert.NoError(t, svc.Open(context.Background(), first))

	second := &entity.CashSession{CashierEmail: "sara@funhour.sa", OpeningCashAmount: 50}
	err := svc.Open(context.Background(), second)

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusConflict, appErr.Code)
}

func TestCashSessionService_Close_OnceOnly(t *testing.T) {
	sessionRepo := &fakeSessionRepo{}
	svc := NewCashSessionService(sessionRepo)

	session := &entity.CashSession{CashierEmail: "sara@funhour.sa", OpeningCashAmount: 100}
	assert.NoError(t, svc.Open(context.Background(), session))

	closed, err := svc.Close(context.Background(), session.ID, 250)
	assert.NoError(t, err)
	assert.NotNil(t, closed.ClosingCashAmount)
	assert.Equal(t, 250.0, *closed.ClosingCashAmount)
	assert.NotNil(t, closed.ClosingCashTime)
	assert.False(t, closed.IsOpen())

	_, err = svc.Close(context.Background(), session.ID, 300)
	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusConflict, appErr.Code)
}

func TestCashSessionService_GetOpenByEmail_NoneOpen(t *testing.T) {
	sessionRepo := &fakeSessionRepo{}
	svc := NewCashSessionService(sessionRepo)

	opened := &entity.CashSession{CashierEmail: "sara@funhour.sa", OpeningCashAmount: 100}
	assert.NoError(t, svc.Open(context.Background(), opened))
	_, err := svc.Close(context.Background(), opened.ID, 120)
	assert.NoError(t, err)

	// A cashier with no open register gets nil, not an error.
	session, err := svc.GetOpenByEmail(context.Background(), "sara@funhour.sa")
	assert.NoError(t, err)
	assert.Nil(t, session)
}

func TestCashSessionService_Open_AllowedAfterClose(t *testing.T) {
	sessionRepo := &fakeSessionRepo{}
	svc := NewCashSessionService(sessionRepo)

	first := &entity.CashSession{CashierEmail: "sara@funhour.sa", OpeningCashAmount: 100}
	assert.NoError(t, svc.Open(context.Background(), first))
	_, err := svc.Close(context.Background(), first.ID, 120)
	assert.NoError(t, err)

	second := &entity.CashSession{CashierEmail: "sara@funhour.sa", OpeningCashAmount: 120}
	assert.NoError(t, svc.Open(context.Background(), second))
}
