package printer

import (
	"errors"
	"fmt"
	"net"
	"sync"
	"time"
)

var (
	// ErrConnectFailed is returned when the device cannot be reached.
	ErrConnectFailed = errors.New("printer: connect failed")
	// ErrWriteFailed is returned when streaming to the device fails
	// mid-document. The whole job must be retried from scratch.
	ErrWriteFailed = errors.New("printer: write failed")
	// ErrDeviceBusy is returned when a job is already in flight. The
	// device protocol is stateful (open, stream, cut, close) and cannot
	// interleave two documents.
	ErrDeviceBusy = errors.New("printer: device busy")
)

// Printer is the interface for sending raw ESC/POS data to a thermal printer.
type Printer interface {
	// Print sends raw ESC/POS bytes to the printer.
	Print(data []byte) error
	// Close releases the printer connection/handle.
	Close() error
	// IsConnected returns true if the printer connection is active.
	IsConnected() bool
}

// --- Network Printer (dials TCP, e.g. 192.168.8.37:9100) ---

type networkPrinter struct {
	address string
	timeout time.Duration
	mu      sync.Mutex
}

// NewNetworkPrinter creates a printer that connects via TCP.
// Address should include port, e.g. "192.168.8.37:9100".
func NewNetworkPrinter(address string) Printer {
	return &networkPrinter{
		address: address,
		timeout: 5 * time.Second,
	}
}

// Print dials the device, streams the full document and closes the
// connection on every exit path. Jobs are serialized per device: a job
// arriving while another is in flight fails fast with ErrDeviceBusy.
func (p *networkPrinter) Print(data []byte) error {
	if !p.mu.TryLock() {
		return fmt.Errorf("%w: %s", ErrDeviceBusy, p.address)
	}
	defer p.mu.Unlock()

	conn, err := net.DialTimeout("tcp", p.address, p.timeout)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrConnectFailed, p.address, err)
	}
	defer conn.Close()

	_ = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))

	if _, err := conn.Write(data); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteFailed, p.address, err)
	}
	return nil
}

func (p *networkPrinter) Close() error {
	return nil // network printer opens/closes per print job
}

// IsConnected probes the device. The device accepts one connection at a
// time, so while a job is streaming the probe does not dial a second one;
// an in-flight job already proves the device is reachable.
func (p *networkPrinter) IsConnected() bool {
	if !p.mu.TryLock() {
		return true
	}
	defer p.mu.Unlock()

	conn, err := net.DialTimeout("tcp", p.address, 2*time.Second)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// --- Null Printer (no-op, used when no printer is configured) ---

type nullPrinter struct{}

// NewNullPrinter creates a no-op printer for environments without hardware.
func NewNullPrinter() Printer {
	return &nullPrinter{}
}

func (p *nullPrinter) Print(data []byte) error {
	return nil
}

func (p *nullPrinter) Close() error {
	return nil
}

func (p *nullPrinter) IsConnected() bool {
	return false
}

// NewPrinterFromConfig creates the appropriate Printer based on type.
//
//	printerType: "network" or "none"
//	address: TCP address for network printers (e.g. "192.168.8.37:9100")
func NewPrinterFromConfig(printerType, address string) (Printer, error) {
	switch printerType {
	case "network":
		if address == "" {
			return nil, fmt.Errorf("printer: address is required for network printer type")
		}
		return NewNetworkPrinter(address), nil
	case "none", "":
		return NewNullPrinter(), nil
	default:
		return nil, fmt.Errorf("printer: unknown printer type %q (use network or none)", printerType)
	}
}
