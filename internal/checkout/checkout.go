// Package checkout finalizes a sale: cash, QRIS, or bank transfer, plus the
// pay-off path for saved member debt.
package checkout

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/samcodingcoach/toko2025/domain"
	"github.com/samcodingcoach/toko2025/internal/api"
	"github.com/samcodingcoach/toko2025/internal/compress"
	"github.com/samcodingcoach/toko2025/internal/prefs"
)

var validate = validator.New()

// transferDetails gates the bank-transfer path: both fields are shown on
// the evidence record and must be present before anything is uploaded.
type transferDetails struct {
	Owner string `validate:"required,min=2"`
	Bank  string `validate:"required"`
}

var (
	// ErrNoActiveSale means checkout was started without an open sale.
	ErrNoActiveSale = errors.New("no active sale to check out")
	// ErrEmptySale means the sale has no lines or a zero total.
	ErrEmptySale = errors.New("sale total is zero")
	// ErrInsufficientCash means the tendered amount does not cover the total.
	ErrInsufficientCash = errors.New("tendered cash below grand total")
	// ErrDiscountTooLarge means the discount exceeds the cart total.
	ErrDiscountTooLarge = errors.New("discount exceeds total")
)

// Result is the outcome of a finished checkout. DebtWarning is set when the
// sale itself succeeded but marking an old debt as paid did not; the sale is
// never rolled back for that.
type Result struct {
	Checkout    domain.CheckoutResult
	DebtWarning string
}

// Machine walks one sale through payment. It is single-use: build it with
// Begin, set amounts, then call exactly one of the Pay methods (or StartQris).
type Machine struct {
	client *api.Client
	prefs  *prefs.Store
	log    logrus.FieldLogger

	userID   int64
	saleID   int64
	faktur   string
	total    decimal.Decimal
	discount decimal.Decimal
	tendered decimal.Decimal

	// debtSaleID is set when this checkout pays off a previously saved debt.
	debtSaleID int64
}

// Begin loads the cashier's active sale and its server-computed total. When
// a debt payment was marked in preferences, the machine targets the debt
// sale instead and will settle the debt after payment.
func Begin(ctx context.Context, client *api.Client, store *prefs.Store, log logrus.FieldLogger, userID int64) (*Machine, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	m := &Machine{client: client, prefs: store, log: log, userID: userID}

	faktur, debtSaleID, isDebt := store.TakeDebtPayment()
	if isDebt {
		m.saleID = debtSaleID
		m.faktur = faktur
		m.debtSaleID = debtSaleID
	} else {
		m.saleID, m.faktur = store.ActiveSale(userID)
	}
	if m.saleID == 0 {
		return nil, ErrNoActiveSale
	}

	c, err := client.FetchCart(ctx, m.saleID)
	if err != nil {
		// keep the marker so a retry still targets the debt sale
		if isDebt {
			if merr := store.MarkDebtPayment(faktur, debtSaleID); merr != nil {
				return nil, merr
			}
		}
		return nil, err
	}
	m.total = decimal.NewFromFloat(c.Summary.TotalAmount)
	return m, nil
}

// SaleID reports the sale being paid.
func (m *Machine) SaleID() int64 { return m.saleID }

// Faktur reports the invoice number being paid.
func (m *Machine) Faktur() string { return m.faktur }

// Total reports the cart total before discount.
func (m *Machine) Total() decimal.Decimal { return m.total }

// SetDiscount applies a whole-sale discount. It may not be negative or
// exceed the total.
func (m *Machine) SetDiscount(d decimal.Decimal) error {
	if d.IsNegative() || d.GreaterThan(m.total) {
		return ErrDiscountTooLarge
	}
	m.discount = d
	return nil
}

// GrandTotal is the amount the customer owes.
func (m *Machine) GrandTotal() decimal.Decimal {
	return m.total.Sub(m.discount)
}

// SetTendered records the cash handed over.
func (m *Machine) SetTendered(amount decimal.Decimal) {
	m.tendered = amount
}

// Change is tendered minus grand total, floored at zero.
func (m *Machine) Change() decimal.Decimal {
	ch := m.tendered.Sub(m.GrandTotal())
	if ch.IsNegative() {
		return decimal.Zero
	}
	return ch
}

// CanPayCash reports whether the tendered amount covers a non-zero total.
func (m *Machine) CanPayCash() bool {
	g := m.GrandTotal()
	return g.IsPositive() && m.tendered.GreaterThanOrEqual(g)
}

// PayCash finalizes the sale as a cash payment.
func (m *Machine) PayCash(ctx context.Context) (Result, error) {
	if !m.GrandTotal().IsPositive() {
		return Result{}, ErrEmptySale
	}
	if !m.CanPayCash() {
		return Result{}, ErrInsufficientCash
	}
	return m.submit(ctx, domain.PaymentCash, m.tendered, m.Change())
}

// PayTransfer compresses and uploads the transfer evidence photo, then
// finalizes the sale as a bank transfer. Owner and bank are checked and the
// photo re-encoded before any network call; cash fields are posted as zero.
func (m *Machine) PayTransfer(ctx context.Context, owner, bank string, photo []byte) (Result, error) {
	if !m.GrandTotal().IsPositive() {
		return Result{}, ErrEmptySale
	}
	if err := validate.Struct(transferDetails{Owner: owner, Bank: bank}); err != nil {
		return Result{}, err
	}
	ev, err := compress.Compress(photo)
	if err != nil {
		return Result{}, err
	}
	if _, err := m.client.UploadTransferEvidence(ctx, m.saleID, owner, bank, ev.FileName, ev.Data); err != nil {
		return Result{}, err
	}
	return m.submit(ctx, domain.PaymentBankTransfer, decimal.Zero, decimal.Zero)
}

// completeQris finalizes the sale after the gateway confirms settlement.
func (m *Machine) completeQris(ctx context.Context) (Result, error) {
	return m.submit(ctx, domain.PaymentQris, decimal.Zero, decimal.Zero)
}

func (m *Machine) submit(ctx context.Context, paymentID int64, cash, change decimal.Decimal) (Result, error) {
	out, err := m.client.SubmitCheckout(ctx, api.CheckoutRequest{
		SaleID:     m.saleID,
		PaymentID:  paymentID,
		Discount:   m.discount,
		GrandTotal: m.GrandTotal(),
		CashPaid:   cash,
		Change:     change,
	})
	if err != nil {
		return Result{}, err
	}

	res := Result{Checkout: out}
	if m.debtSaleID > 0 {
		if _, err := m.client.PayDebt(ctx, m.debtSaleID); err != nil {
			m.log.WithError(err).WithField("id_penjualan", m.debtSaleID).Warn("debt settle failed after payment")
			res.DebtWarning = "payment recorded but the debt could not be marked paid: " + err.Error()
		}
		// the next cart load shows history instead of a sale
		if err := m.prefs.MarkDebtCheckout(); err != nil {
			return res, err
		}
	} else {
		if err := m.prefs.ClearActiveSale(m.userID); err != nil {
			return res, err
		}
	}

	m.log.WithFields(logrus.Fields{
		"id_penjualan":  m.saleID,
		"id_pembayaran": paymentID,
		"grand_total":   m.GrandTotal().String(),
	}).Info("checkout complete")
	return res, nil
}
