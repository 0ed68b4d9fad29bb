package printer

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	"github.com/samcodingcoach/toko2025/domain"
	"github.com/samcodingcoach/toko2025/internal/database"
	"github.com/samcodingcoach/toko2025/internal/migrations"
	"github.com/samcodingcoach/toko2025/internal/prefs"
)

func sampleStruk() domain.Struk {
	ts := time.Date(2025, 8, 31, 14, 30, 0, 0, time.Local)
	return domain.Struk{
		BusinessName: "Toko Berkah",
		Address:      "Jl. Merdeka 12",
		WhatsApp:     "0812000111",
		SaleID:       101,
		Faktur:       "F0101",
		Date:         &ts,
		Payment:      "Cash",
		GrandTotal:   50000,
		CashPaid:     60000,
		Change:       10000,
		Cashier:      "Siti",
		Items: []domain.StrukItem{
			{Name: "Indomie Goreng", Quantity: 2, UnitSymbol: "pcs", UnitPrice: 3500, Subtotal: 7000},
		},
	}
}

func TestRenderCarriesControlSequences(t *testing.T) {
	payload, err := Render(sampleStruk())
	require.NoError(t, err)

	for name, seq := range map[string][]byte{
		"center align": alignCenter,
		"left align":   alignLeft,
		"emphasis on":  emphasisOn,
		"double size":  sizeDouble,
		"normal size":  sizeNormal,
		"feed":         feedTwo,
		"cut":          cutPaper,
	} {
		require.True(t, bytes.Contains(payload, seq), "payload missing %s sequence", name)
	}
}

func TestRenderDrawerOnlyForCash(t *testing.T) {
	cash, err := Render(sampleStruk())
	require.NoError(t, err)
	require.True(t, bytes.Contains(cash, openDrawer))

	st := sampleStruk()
	st.Payment = "QRIS"
	st.CashPaid = 0
	st.Change = 0
	noncash, err := Render(st)
	require.NoError(t, err)
	require.False(t, bytes.Contains(noncash, openDrawer), "drawer must stay shut for non-cash")
}

func TestRenderLineContent(t *testing.T) {
	payload, err := Render(sampleStruk())
	require.NoError(t, err)
	text := string(payload)

	require.Contains(t, text, "Toko Berkah")
	require.Contains(t, text, "Faktur : F0101")
	require.Contains(t, text, "Indomie Goreng")
	require.Contains(t, text, "50.000")
	require.Contains(t, text, "Terima Kasih")
}

func TestSplitAlignsRightEdge(t *testing.T) {
	line := split("Total", "50.000")
	require.Len(t, line, lineWidth)
	require.True(t, strings.HasSuffix(line, "50.000"))
	require.True(t, strings.HasPrefix(line, "Total"))

	// an overlong left side gives way instead of pushing the amount off paper
	long := split(strings.Repeat("x", 40), "50.000")
	require.Len(t, long, lineWidth)
	require.True(t, strings.HasSuffix(long, "50.000"))
}

func TestSplitTruncatesByRunesNotBytes(t *testing.T) {
	name := strings.Repeat("é", 40)
	line := split(name, "50.000")
	require.Equal(t, lineWidth, len([]rune(line)))
	require.True(t, utf8.ValidString(line), "truncation must not split a rune")
	require.True(t, strings.HasSuffix(line, "50.000"))
}

func TestRupiahGrouping(t *testing.T) {
	require.Equal(t, "0", rupiah(0))
	require.Equal(t, "500", rupiah(500))
	require.Equal(t, "3.500", rupiah(3500))
	require.Equal(t, "1.250.000", rupiah(1250000))
}

type memTransport struct {
	printed map[string][]byte
}

func (m *memTransport) ListDevices(context.Context) ([]Device, error) {
	return []Device{{Name: "RPP02N", Address: "86:67:7A:12:34:56"}}, nil
}

func (m *memTransport) Print(_ context.Context, address string, payload []byte) error {
	if m.printed == nil {
		m.printed = map[string][]byte{}
	}
	m.printed[address] = payload
	return nil
}

func TestServicePrintsToSavedDefault(t *testing.T) {
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, migrations.Run(db))
	store := prefs.New(db)

	tr := &memTransport{}
	svc := NewService(tr, store, nil)

	err = svc.PrintReceipt(context.Background(), sampleStruk())
	require.ErrorIs(t, err, ErrNoDefaultPrinter)

	require.NoError(t, svc.SetDefault(Device{Name: "RPP02N", Address: "86:67:7A:12:34:56"}))
	dev, err := svc.Default()
	require.NoError(t, err)
	require.Equal(t, "RPP02N", dev.Name)

	require.NoError(t, svc.PrintReceipt(context.Background(), sampleStruk()))
	require.NotEmpty(t, tr.printed["86:67:7A:12:34:56"])
}
