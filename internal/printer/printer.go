package printer

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/samcodingcoach/toko2025/domain"
	"github.com/samcodingcoach/toko2025/internal/prefs"
)

// ErrNoDefaultPrinter means no printer has been paired and saved yet.
var ErrNoDefaultPrinter = errors.New("no default printer configured")

// Device is a printer the transport can reach.
type Device struct {
	Name    string
	Address string
}

// Transport delivers raw ESC/POS payloads to a device. Implementations
// exist per link type (Bluetooth on device builds, raw TCP for networked
// printers, an in-memory one in tests).
type Transport interface {
	ListDevices(ctx context.Context) ([]Device, error)
	Print(ctx context.Context, address string, payload []byte) error
}

// Service resolves the saved default printer and prints receipts to it.
type Service struct {
	transport Transport
	prefs     *prefs.Store
	log       logrus.FieldLogger
}

// NewService wires a printing service over the given transport.
func NewService(t Transport, store *prefs.Store, log logrus.FieldLogger) *Service {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Service{transport: t, prefs: store, log: log}
}

// Devices lists what the transport can currently see.
func (s *Service) Devices(ctx context.Context) ([]Device, error) {
	return s.transport.ListDevices(ctx)
}

// SetDefault saves the device as the register's printer.
func (s *Service) SetDefault(d Device) error {
	return s.prefs.SetDefaultPrinter(d.Name + "|" + d.Address)
}

// Default reads the saved printer back. The stored form is "Name|Address".
func (s *Service) Default() (Device, error) {
	raw := s.prefs.DefaultPrinter()
	if raw == "" {
		return Device{}, ErrNoDefaultPrinter
	}
	name, addr, found := strings.Cut(raw, "|")
	if !found || addr == "" {
		return Device{}, fmt.Errorf("malformed printer setting %q", raw)
	}
	return Device{Name: name, Address: addr}, nil
}

// PrintReceipt renders the receipt and sends it to the default printer.
func (s *Service) PrintReceipt(ctx context.Context, st domain.Struk) error {
	dev, err := s.Default()
	if err != nil {
		return err
	}
	payload, err := Render(st)
	if err != nil {
		return err
	}
	if err := s.transport.Print(ctx, dev.Address, payload); err != nil {
		return fmt.Errorf("print to %s: %w", dev.Name, err)
	}
	s.log.WithFields(logrus.Fields{"printer": dev.Name, "faktur": st.Faktur}).Info("receipt printed")
	return nil
}

// NetTransport prints to networked ESC/POS printers over raw TCP port 9100.
type NetTransport struct {
	Timeout time.Duration
}

// ListDevices is empty for the network transport; addresses are entered by
// hand, not discovered.
func (NetTransport) ListDevices(context.Context) ([]Device, error) {
	return nil, nil
}

// Print dials the printer and writes the payload.
func (t NetTransport) Print(ctx context.Context, address string, payload []byte) error {
	timeout := t.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if !strings.Contains(address, ":") {
		address += ":9100"
	}
	d := net.Dialer{Timeout: timeout}
	conn, err := d.DialContext(ctx, "tcp", address)
	if err != nil {
		return err
	}
	defer conn.Close()
	if err := conn.SetWriteDeadline(time.Now().Add(timeout)); err != nil {
		return err
	}
	_, err = conn.Write(payload)
	return err
}
