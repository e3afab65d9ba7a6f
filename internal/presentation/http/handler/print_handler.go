package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/margubmurshed/fun-hour-entertainment-server/internal/application/compose"
	"github.com/margubmurshed/fun-hour-entertainment-server/internal/application/service"
	"github.com/margubmurshed/fun-hour-entertainment-server/internal/presentation/http/dto/request"
	"github.com/margubmurshed/fun-hour-entertainment-server/internal/presentation/http/dto/response"
	"github.com/margubmurshed/fun-hour-entertainment-server/pkg/printer"
)

// PrintHandler handles print job HTTP requests.
type PrintHandler struct {
	printerService *service.PrinterService
}

// NewPrintHandler creates a new print handler.
func NewPrintHandler(printerService *service.PrinterService) *PrintHandler {
	return &PrintHandler{printerService: printerService}
}

// GetStatus returns the current printer connection status.
func (h *PrintHandler) GetStatus(c *gin.Context) {
	response.OK(c, "Printer status retrieved", h.printerService.GetStatus())
}

// TestPrint sends a test page to the printer.
func (h *PrintHandler) TestPrint(c *gin.Context) {
	if err := h.printerService.TestPrint(); err != nil {
		printError(c, err)
		return
	}
	response.OK(c, "Test page sent to printer", nil)
}

// PrintReceipt renders a stored receipt and sends it to the printer.
func (h *PrintHandler) PrintReceipt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ID format")
		return
	}

	if err := h.printerService.PrintReceipt(c.Request.Context(), id); err != nil {
		printError(c, err)
		return
	}

	response.OK(c, "Receipt sent to printer", nil)
}

// PrintSessionReport renders the reconciliation report for a closed
// session and sends it to the printer.
func (h *PrintHandler) PrintSessionReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ID format")
		return
	}

	// The body is optional; without it the stored cashier fields are used.
	var req request.PrintSessionReportRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "Invalid request: "+err.Error())
			return
		}
	}

	if err := h.printerService.PrintSessionReport(c.Request.Context(), id, req.CashierName, req.CashierEmail); err != nil {
		printError(c, err)
		return
	}

	response.OK(c, "Session report sent to printer", nil)
}

// printError maps printing failures onto the status codes clients act on:
// a busy device is retryable, an unreachable or failing device is a bad
// gateway, and a rendering failure is an internal fault.
func printError(c *gin.Context, err error) {
	var renderErr *compose.BlockRenderError
	switch {
	case errors.Is(err, printer.ErrDeviceBusy):
		c.Header("Retry-After", "2")
		response.ErrorWithCode(c, http.StatusServiceUnavailable, "Printer is busy, try again shortly")
	case errors.Is(err, printer.ErrConnectFailed), errors.Is(err, printer.ErrWriteFailed):
		response.ErrorWithCode(c, http.StatusBadGateway, "Printer unreachable: "+err.Error())
	case errors.As(err, &renderErr):
		response.InternalServerError(c, "Failed to render document: "+renderErr.Error())
	default:
		response.Error(c, err)
	}
}
