package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/margubmurshed/fun-hour-entertainment-server/internal/application/service"
	"github.com/margubmurshed/fun-hour-entertainment-server/internal/domain/entity"
	"github.com/margubmurshed/fun-hour-entertainment-server/internal/presentation/http/dto/request"
	"github.com/margubmurshed/fun-hour-entertainment-server/internal/presentation/http/dto/response"
	"github.com/margubmurshed/fun-hour-entertainment-server/pkg/pagination"
)

// CashSessionHandler handles cash session HTTP requests.
type CashSessionHandler struct {
	sessionService *service.CashSessionService
	receiptService *service.ReceiptService
}

// NewCashSessionHandler creates a new cash session handler.
func NewCashSessionHandler(sessionService *service.CashSessionService, receiptService *service.ReceiptService) *CashSessionHandler {
	return &CashSessionHandler{sessionService: sessionService, receiptService: receiptService}
}

// Open starts a new register shift.
func (h *CashSessionHandler) Open(c *gin.Context) {
	var req request.OpenCashSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	session := &entity.CashSession{
		CashierName:       req.CashierName,
		CashierEmail:      req.CashierEmail,
		OpeningCashAmount: req.OpeningCashAmount,
		OpeningCashTime:   int64(req.OpeningCashTime),
	}

	if err := h.sessionService.Open(c.Request.Context(), session); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Cash session opened", session)
}

// Close records the closing cash count, once.
func (h *CashSessionHandler) Close(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ID format")
		return
	}

	var req request.CloseCashSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	session, err := h.sessionService.Close(c.Request.Context(), id, req.ClosingCashAmount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cash session closed", session)
}

// Get returns one session.
func (h *CashSessionHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ID format")
		return
	}

	session, err := h.sessionService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cash session retrieved", session)
}

// GetOpen returns the caller's open session, looked up by cashier email.
func (h *CashSessionHandler) GetOpen(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		response.BadRequest(c, "email query parameter is required")
		return
	}

	session, err := h.sessionService.GetOpenByEmail(c.Request.Context(), email)
	if err != nil {
		response.Error(c, err)
		return
	}
	if session == nil {
		// No open register is the resting state, not a missing resource.
		response.OK(c, "No open cash session", nil)
		return
	}

	response.OK(c, "Open cash session retrieved", session)
}

// List returns sessions, newest first.
func (h *CashSessionHandler) List(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}
	params.Validate()

	result, err := h.sessionService.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Cash sessions retrieved", result)
}

// ListReceipts returns a session's receipts in serial order.
func (h *CashSessionHandler) ListReceipts(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ID format")
		return
	}

	receipts, err := h.receiptService.ListBySession(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Session receipts retrieved", receipts)
}

// Summary returns the aggregated per-item groupings and payment totals
// for a session's receipts.
func (h *CashSessionHandler) Summary(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ID format")
		return
	}

	receipts, err := h.receiptService.ListBySession(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Session summary computed", service.SummarizeReceipts(receipts))
}
