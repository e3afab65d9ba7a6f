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

// ReceiptHandler handles receipt HTTP requests.
type ReceiptHandler struct {
	receiptService *service.ReceiptService
}

// NewReceiptHandler creates a new receipt handler.
func NewReceiptHandler(receiptService *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// Create records a new sale.
func (h *ReceiptHandler) Create(c *gin.Context) {
	var req request.CreateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	sessionID, err := uuid.Parse(req.CashSessionID)
	if err != nil {
		response.BadRequest(c, "Invalid cash session ID format")
		return
	}

	// Products must carry an explicit quantity; aggregation never guesses
	// a default.
	for _, p := range req.Products {
		if p.Quantity < 1 {
			response.BadRequest(c, "Product line items require quantity >= 1")
			return
		}
	}

	receipt := &entity.Receipt{
		CashSessionID: sessionID,
		CustomerName:  req.CustomerName,
		MobileNumber:  req.MobileNumber,
		Services:      toLineItems(req.Services),
		Products:      toLineItems(req.Products),
		Total:         req.Total,
		VAT:           req.VAT,
		PaymentType:   req.PaymentType,
		CreatedAt:     int64(req.CreatedAt),
	}

	if err := h.receiptService.Create(c.Request.Context(), receipt); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Receipt created successfully", receipt)
}

// Get returns one receipt.
func (h *ReceiptHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ID format")
		return
	}

	receipt, err := h.receiptService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt retrieved", receipt)
}

// List returns receipts, newest first.
func (h *ReceiptHandler) List(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}
	params.Validate()

	result, err := h.receiptService.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Receipts retrieved", result)
}

func toLineItems(items []request.LineItemRequest) []entity.LineItem {
	if items == nil {
		return nil
	}
	out := make([]entity.LineItem, len(items))
	for i, item := range items {
		out[i] = entity.LineItem{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		}
	}
	return out
}
