package printer

import (
	"io"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNetworkPrinterSendsBytes(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	assert.NoError(t, err)
	defer ln.Close()

	received := make(chan []byte, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		data, _ := io.ReadAll(conn)
		received <- data
	}()

	p := NewNetworkPrinter(ln.Addr().String())
	payload := []byte{ESC, '@', 'o', 'k', LF}
	assert.NoError(t, p.Print(payload))
	assert.NoError(t, p.Close())

	assert.Equal(t, payload, <-received)
}

func TestNetworkPrinterConnectFailed(t *testing.T) {
	// Reserve a port, then close it so nothing is listening.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	assert.NoError(t, err)
	addr := ln.Addr().String()
	ln.Close()

	p := NewNetworkPrinter(addr)
	err = p.Print([]byte{ESC, '@'})
	assert.ErrorIs(t, err, ErrConnectFailed)
}

func TestNetworkPrinterBusy(t *testing.T) {
	p := NewNetworkPrinter("127.0.0.1:9100").(*networkPrinter)
	p.mu.Lock()
	defer p.mu.Unlock()

	err := p.Print([]byte{ESC, '@'})
	assert.ErrorIs(t, err, ErrDeviceBusy)
}

func TestNetworkPrinterStatusDuringJob(t *testing.T) {
	// Nothing is listening at this address; only the in-flight job makes
	// the probe report connected, without opening a second connection.
	p := NewNetworkPrinter("127.0.0.1:1").(*networkPrinter)

	assert.False(t, p.IsConnected())

	p.mu.Lock()
	defer p.mu.Unlock()
	assert.True(t, p.IsConnected())
}

func TestNullPrinter(t *testing.T) {
	p := NewNullPrinter()
	assert.NoError(t, p.Print([]byte{ESC, '@'}))
	assert.NoError(t, p.Close())
	assert.False(t, p.IsConnected())
}

func TestNewPrinterFromConfig(t *testing.T) {
	p, err := NewPrinterFromConfig("none", "")
	assert.NoError(t, err)
	assert.NotNil(t, p)

	_, err = NewPrinterFromConfig("network", "")
	assert.Error(t, err)

	p, err = NewPrinterFromConfig("network", "192.168.8.37:9100")
	assert.NoError(t, err)
	assert.NotNil(t, p)

	_, err = NewPrinterFromConfig("usb", "/dev/usb/lp0")
	assert.Error(t, err)
}
