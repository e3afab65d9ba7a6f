package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/margubmurshed/fun-hour-entertainment-server/internal/application/compose"
	"github.com/margubmurshed/fun-hour-entertainment-server/internal/domain/repository"
	"github.com/margubmurshed/fun-hour-entertainment-server/pkg/apperror"
	"github.com/margubmurshed/fun-hour-entertainment-server/pkg/printer"
)

// PrinterStatus reports the connection state of the configured device.
type PrinterStatus struct {
	Connected bool   `json:"connected"`
	Address   string `json:"address"`
}

// PrinterService composes documents and streams them to the thermal
// printer. Composition happens fully before the first byte is sent, so a
// rendering failure never leaves a half-printed document in the tray.
type PrinterService struct {
	receiptRepo repository.ReceiptRepository
	sessionRepo repository.CashSessionRepository
	composer    *compose.Composer
	device      printer.Printer
	address     string
	charWidth   int
}

// NewPrinterService creates a new printer service.
func NewPrinterService(
	receiptRepo repository.ReceiptRepository,
	sessionRepo repository.CashSessionRepository,
	composer *compose.Composer,
	device printer.Printer,
	address string,
	charWidth int,
) *PrinterService {
	return &PrinterService{
		receiptRepo: receiptRepo,
		sessionRepo: sessionRepo,
		composer:    composer,
		device:      device,
		address:     address,
		charWidth:   charWidth,
	}
}

// GetStatus probes the device.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Connected: s.device.IsConnected(),
		Address:   s.address,
	}
}

// TestPrint sends a short diagnostic page so the operator can verify the
// paper path and cutter without creating a receipt.
func (s *PrinterService) TestPrint() error {
	doc := printer.NewDocument(s.charWidth)
	doc.SetAlign(printer.AlignCenter)
	doc.Text("PRINTER TEST")
	doc.LineFeed()
	doc.Text(time.Now().Format("2006-01-02 15:04:05"))
	doc.LineFeed()
	doc.Separator('-')
	doc.FeedLines(2)
	doc.Cut()
	return s.device.Print(doc.Bytes())
}

// PrintReceipt renders one stored receipt and sends it to the device.
func (s *PrinterService) PrintReceipt(ctx context.Context, id uuid.UUID) error {
	receipt, err := s.receiptRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if receipt == nil {
		return apperror.NewNotFoundError("Receipt")
	}

	blocks, err := s.composer.ComposeReceipt(receipt)
	if err != nil {
		return err
	}
	return s.device.Print(printer.Encode(blocks, s.charWidth))
}

// PrintSessionReport renders the end-of-shift reconciliation report for a
// closed session and sends it to the device. Requests for a session that
// is still open are rejected: the variance cannot be computed before the
// closing cash count exists.
func (s *PrinterService) PrintSessionReport(ctx context.Context, sessionID uuid.UUID, cashierName, cashierEmail string) error {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return err
	}
	if session == nil {
		return apperror.NewNotFoundError("Cash session")
	}
	if session.IsOpen() {
		return apperror.NewUnprocessableError("Cash session must be closed before its report can be printed")
	}

	receipts, err := s.receiptRepo.ListBySession(ctx, sessionID)
	if err != nil {
		return err
	}
	summary := SummarizeReceipts(receipts)

	blocks, err := s.composer.ComposeSessionReport(session, summary, time.Now(), cashierName, cashierEmail)
	if err != nil {
		return err
	}
	return s.device.Print(printer.Encode(blocks, s.charWidth))
}
