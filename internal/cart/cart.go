// Package cart owns the sale-in-progress: one open sale per cashier,
// tracked by a local pointer and mirrored on the server.
package cart

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/samcodingcoach/toko2025/domain"
	"github.com/samcodingcoach/toko2025/internal/api"
	"github.com/samcodingcoach/toko2025/internal/prefs"
)

var (
	// ErrNoActiveSale means the operation needs an open sale and none exists.
	ErrNoActiveSale = errors.New("no active sale")
	// ErrMemberRequired means debt was requested for a walk-in customer.
	ErrMemberRequired = errors.New("debt requires a registered member")
)

// Manager drives the active sale for one device.
type Manager struct {
	client *api.Client
	prefs  *prefs.Store
	log    logrus.FieldLogger
}

// NewManager wires the sale manager over the API client and preferences.
func NewManager(client *api.Client, store *prefs.Store, log logrus.FieldLogger) *Manager {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Manager{client: client, prefs: store, log: log}
}

// EnsureSale returns the cashier's open sale, creating one when none exists.
// A stored pointer the server no longer recognizes is discarded and
// replaced, so a wiped backend cannot strand the register.
func (m *Manager) EnsureSale(ctx context.Context, userID int64) (int64, string, error) {
	saleID, faktur := m.prefs.ActiveSale(userID)
	if saleID > 0 {
		if _, err := m.client.FetchCart(ctx, saleID); err == nil {
			return saleID, faktur, nil
		} else if !isServerError(err) {
			return 0, "", err
		}
		m.log.WithField("id_penjualan", saleID).Warn("stale sale pointer, recreating")
		if err := m.prefs.ClearActiveSale(userID); err != nil {
			return 0, "", err
		}
	}
	return m.createSale(ctx, userID)
}

func (m *Manager) createSale(ctx context.Context, userID int64) (int64, string, error) {
	faktur := ""
	if lf, err := m.client.LastFaktur(ctx); err == nil && lf.NextSuggested != "" {
		faktur = lf.NextSuggested
	} else {
		faktur = fallbackFaktur()
	}

	created, err := m.client.CreateSale(ctx, userID, faktur)
	if err != nil && isServerError(err) {
		// invoice collision with another register; retry under a unique one
		faktur = fallbackFaktur()
		created, err = m.client.CreateSale(ctx, userID, faktur)
	}
	if err != nil {
		return 0, "", err
	}
	if created.Faktur != "" {
		faktur = created.Faktur
	}
	if err := m.prefs.SetActiveSale(userID, created.ID, faktur); err != nil {
		return 0, "", err
	}
	m.log.WithFields(logrus.Fields{"id_penjualan": created.ID, "faktur": faktur}).Info("sale opened")
	return created.ID, faktur, nil
}

// fallbackFaktur builds a locally unique invoice number for when the server
// cannot suggest one.
func fallbackFaktur() string {
	return fmt.Sprintf("INV%s%s", time.Now().Format("20060102150405"), uuid.NewString()[:8])
}

// AddItem adds qty of the product to the cashier's sale, opening one when
// needed. qty is a delta; the server merges repeats of the same product into
// one line.
func (m *Manager) AddItem(ctx context.Context, userID int64, p domain.Product, qty float64) (domain.CartLineResult, error) {
	saleID, _, err := m.EnsureSale(ctx, userID)
	if err != nil {
		return domain.CartLineResult{}, err
	}
	return m.client.UpsertCartLine(ctx, api.CartLineRequest{
		SaleID:    saleID,
		ProductID: p.ID,
		Quantity:  qty,
		UnitPrice: decimal.NewFromInt(p.Price),
		Discount:  decimal.Zero,
	})
}

// AdjustItem changes an existing line's quantity by delta. Negative deltas
// shrink the line; the server rejects adjustments below zero.
func (m *Manager) AdjustItem(ctx context.Context, userID, productID int64, delta float64, unitPrice decimal.Decimal) (domain.CartLineResult, error) {
	saleID, _ := m.prefs.ActiveSale(userID)
	if saleID == 0 {
		return domain.CartLineResult{}, ErrNoActiveSale
	}
	return m.client.UpsertCartLine(ctx, api.CartLineRequest{
		SaleID:    saleID,
		ProductID: productID,
		Quantity:  delta,
		UnitPrice: unitPrice,
		Discount:  decimal.Zero,
	})
}

// RemoveItem drops the product's line from the active sale.
func (m *Manager) RemoveItem(ctx context.Context, userID, productID int64) error {
	saleID, _ := m.prefs.ActiveSale(userID)
	if saleID == 0 {
		return ErrNoActiveSale
	}
	return m.client.DeleteCartLine(ctx, saleID, productID)
}

// Cart loads the active sale's lines and summary. Without an open sale it
// returns an empty cart rather than an error.
func (m *Manager) Cart(ctx context.Context, userID int64) (domain.Cart, error) {
	// the load right after a debt settlement skips the sale view once
	if m.prefs.TakeDebtCheckout() {
		return domain.Cart{}, nil
	}
	saleID, _ := m.prefs.ActiveSale(userID)
	if saleID == 0 {
		return domain.Cart{}, nil
	}
	c, err := m.client.FetchCart(ctx, saleID)
	if err != nil {
		return domain.Cart{}, err
	}
	if c.SaleID == "" {
		c.SaleID = strconv.FormatInt(saleID, 10)
	}
	return c, nil
}

// Discard abandons the active sale on the server and clears the local
// pointer.
func (m *Manager) Discard(ctx context.Context, userID int64) error {
	saleID, _ := m.prefs.ActiveSale(userID)
	if saleID == 0 {
		return ErrNoActiveSale
	}
	if err := m.client.DiscardSale(ctx, saleID); err != nil {
		return err
	}
	return m.prefs.ClearActiveSale(userID)
}

// AttachMember looks a member up by phone and binds them to the active sale,
// which also applies member pricing server-side.
func (m *Manager) AttachMember(ctx context.Context, userID int64, phone string) (domain.MemberSearch, error) {
	saleID, _ := m.prefs.ActiveSale(userID)
	if saleID == 0 {
		return domain.MemberSearch{}, ErrNoActiveSale
	}
	return m.client.SearchMember(ctx, phone, saleID)
}

// SaveDebt records the active sale as unpaid debt against the member and
// closes it locally. Member ids below 2 are walk-in placeholders and are
// refused before any network call.
func (m *Manager) SaveDebt(ctx context.Context, userID, memberID, paymentID int64, discount, grandTotal decimal.Decimal) (domain.DebtResult, error) {
	if memberID < 2 {
		return domain.DebtResult{}, ErrMemberRequired
	}
	saleID, _ := m.prefs.ActiveSale(userID)
	if saleID == 0 {
		return domain.DebtResult{}, ErrNoActiveSale
	}
	res, err := m.client.SaveDebt(ctx, api.DebtRequest{
		SaleID:     saleID,
		MemberID:   memberID,
		PaymentID:  paymentID,
		Discount:   discount,
		GrandTotal: grandTotal,
	})
	if err != nil {
		return res, err
	}
	if err := m.prefs.ClearActiveSale(userID); err != nil {
		return res, err
	}
	m.log.WithFields(logrus.Fields{"id_penjualan": saleID, "id_member": memberID}).Info("sale saved as debt")
	return res, nil
}

func isServerError(err error) bool {
	var se *api.ServerError
	return errors.As(err, &se)
}
