// Package printer renders receipts as ESC/POS byte streams and hands them
// to a thermal printer over a pluggable transport.
package printer

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/samcodingcoach/toko2025/domain"
)

// lineWidth is the column count of the 58mm thermal paper.
const lineWidth = 32

// ESC/POS command bytes the printer firmware understands.
var (
	alignCenter = []byte{0x1B, 0x61, 0x01}
	alignLeft   = []byte{0x1B, 0x61, 0x00}
	emphasisOn  = []byte{0x1B, 0x21, 0x08}
	emphasisOff = []byte{0x1B, 0x21, 0x00}
	sizeDouble  = []byte{0x1D, 0x21, 0x11}
	sizeNormal  = []byte{0x1D, 0x21, 0x00}
	feedTwo     = []byte{0x1B, 0x64, 0x02}
	cutPaper    = []byte{0x1D, 0x56, 0x42, 0x00}
	openDrawer  = []byte{0x1B, 0x70, 0x00, 0x19, 0xFA}
)

// Render lays a receipt out for the printer. Text goes out as code page 437,
// with unmappable runes replaced rather than failing the print.
func Render(st domain.Struk) ([]byte, error) {
	var buf bytes.Buffer
	enc := encoding.ReplaceUnsupported(charmap.CodePage437.NewEncoder())

	text := func(s string) error {
		b, err := enc.Bytes([]byte(s + "\n"))
		if err != nil {
			return fmt.Errorf("encode receipt line: %w", err)
		}
		buf.Write(b)
		return nil
	}
	sep := strings.Repeat("-", lineWidth)

	buf.Write(alignCenter)
	buf.Write(sizeDouble)
	buf.Write(emphasisOn)
	if err := text(st.BusinessName); err != nil {
		return nil, err
	}
	buf.Write(sizeNormal)
	buf.Write(emphasisOff)
	if st.Address != "" {
		if err := text(st.Address); err != nil {
			return nil, err
		}
	}
	if st.WhatsApp != "" {
		if err := text("WA: " + st.WhatsApp); err != nil {
			return nil, err
		}
	}

	buf.Write(alignLeft)
	lines := []string{
		sep,
		"Faktur : " + st.Faktur,
		"Kasir  : " + st.Cashier,
	}
	if st.Date != nil {
		lines = append(lines, "Tanggal: "+st.Date.Format("02-01-2006 15:04"))
	}
	if st.MemberName != "" {
		lines = append(lines, "Member : "+st.MemberName)
	}
	lines = append(lines, sep)
	for _, l := range lines {
		if err := text(l); err != nil {
			return nil, err
		}
	}

	for _, it := range st.Items {
		if err := text(truncate(it.Name, lineWidth)); err != nil {
			return nil, err
		}
		qty := fmt.Sprintf(" %d %s x %s", it.Quantity, it.UnitSymbol, rupiah(it.UnitPrice))
		if err := text(split(qty, rupiah(it.Subtotal))); err != nil {
			return nil, err
		}
	}
	if err := text(sep); err != nil {
		return nil, err
	}

	if err := text(split("Subtotal", rupiah(st.GrandTotal+st.Discount-st.OtherFees))); err != nil {
		return nil, err
	}
	if st.Discount > 0 {
		if err := text(split("Potongan", "-"+rupiah(st.Discount))); err != nil {
			return nil, err
		}
	}
	if st.OtherFees > 0 {
		if err := text(split("Biaya Lain", rupiah(st.OtherFees))); err != nil {
			return nil, err
		}
	}
	buf.Write(emphasisOn)
	if err := text(split("TOTAL", rupiah(st.GrandTotal))); err != nil {
		return nil, err
	}
	buf.Write(emphasisOff)

	if err := text(split(st.Payment, "")); err != nil {
		return nil, err
	}
	if st.CashPaid > 0 {
		if err := text(split("Tunai", rupiah(st.CashPaid))); err != nil {
			return nil, err
		}
		if err := text(split("Kembali", rupiah(st.Change))); err != nil {
			return nil, err
		}
	}
	if st.DebtStatus != "" {
		if err := text(split("Status", st.DebtStatus)); err != nil {
			return nil, err
		}
	}

	buf.Write(alignCenter)
	if err := text(sep); err != nil {
		return nil, err
	}
	if err := text("Terima Kasih"); err != nil {
		return nil, err
	}

	buf.Write(feedTwo)
	buf.Write(cutPaper)
	if st.CashPaid > 0 {
		buf.Write(openDrawer)
	}
	return buf.Bytes(), nil
}

// split lays left and right on one line with the right edge at the paper
// edge. The left side gives way when the line would overflow. Columns are
// counted in runes so a multi-byte name cannot skew the layout, since CP437
// prints every encoded rune one column wide.
func split(left, right string) string {
	pad := lineWidth - utf8.RuneCountInString(right)
	if pad < 0 {
		pad = 0
	}
	left = truncate(left, pad)
	return left + strings.Repeat(" ", pad-utf8.RuneCountInString(left)) + right
}

// truncate cuts s to at most n columns without splitting a rune.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// rupiah formats an amount the Indonesian way, dots for thousands and no
// decimals.
func rupiah(v float64) string {
	n := int64(v)
	neg := n < 0
	if neg {
		n = -n
	}
	s := fmt.Sprintf("%d", n)
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ".")
	if neg {
		out = "-" + out
	}
	return out
}
