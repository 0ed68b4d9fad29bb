package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/samcodingcoach/toko2025/domain"
)

// CreateSale opens a new sale for the cashier under the given invoice number.
func (c *Client) CreateSale(ctx context.Context, userID int64, faktur string) (domain.SaleCreated, error) {
	v := url.Values{}
	v.Set("id_user", strconv.FormatInt(userID, 10))
	v.Set("faktur", faktur)
	return form[domain.SaleCreated](ctx, c, http.MethodPost, "/api/penjualan", v)
}

// LastFaktur asks the server for the most recent invoice number and its
// suggested successor.
func (c *Client) LastFaktur(ctx context.Context) (domain.LastFaktur, error) {
	return request[domain.LastFaktur](ctx, c, http.MethodGet, "/api/penjualan/last-faktur", nil, "")
}

// CartLineRequest is one add-or-merge of a product into a sale. Quantity is
// delta semantics server-side, never an absolute overwrite.
type CartLineRequest struct {
	SaleID    int64
	ProductID int64
	Quantity  float64
	UnitPrice decimal.Decimal
	Discount  decimal.Decimal
}

// UpsertCartLine adds quantity of a product to the sale. The server merges
// into an existing line when the product is already present.
func (c *Client) UpsertCartLine(ctx context.Context, r CartLineRequest) (domain.CartLineResult, error) {
	v := url.Values{}
	v.Set("id_penjualan", strconv.FormatInt(r.SaleID, 10))
	v.Set("id_barang", strconv.FormatInt(r.ProductID, 10))
	v.Set("jumlah_jual", strconv.FormatFloat(r.Quantity, 'f', -1, 64))
	v.Set("harga_jual", r.UnitPrice.String())
	v.Set("diskon", r.Discount.String())
	return form[domain.CartLineResult](ctx, c, http.MethodPost, "/api/penjualan/detail", v)
}

// DeleteCartLine removes a product's line from the sale entirely.
func (c *Client) DeleteCartLine(ctx context.Context, saleID, productID int64) error {
	v := url.Values{}
	v.Set("id_penjualan", strconv.FormatInt(saleID, 10))
	v.Set("id_barang", strconv.FormatInt(productID, 10))
	_, err := form[struct{}](ctx, c, http.MethodDelete, "/api/penjualan/detail", v)
	return err
}

// FetchCart loads the sale's lines and server-computed summary. The server
// answers success with an empty item list for a sale with no lines; a
// missing sale id is a ServerError, which callers use to detect stale
// pointers.
func (c *Client) FetchCart(ctx context.Context, saleID int64) (domain.Cart, error) {
	path := fmt.Sprintf("/api/penjualan/cart/%d", saleID)
	return request[domain.Cart](ctx, c, http.MethodGet, path, nil, "")
}

// DiscardSale deletes an unfinished sale and its lines.
func (c *Client) DiscardSale(ctx context.Context, saleID int64) error {
	path := fmt.Sprintf("/api/penjualan/%d", saleID)
	_, err := request[struct{}](ctx, c, http.MethodDelete, path, nil, "")
	return err
}

// CheckoutRequest finalizes a sale. Cash fields must be zero for non-cash
// payments; Active stays 0 so a QRIS sale is not marked paid before
// settlement confirms.
type CheckoutRequest struct {
	SaleID     int64
	PaymentID  int64
	Discount   decimal.Decimal
	GrandTotal decimal.Decimal
	CashPaid   decimal.Decimal
	Change     decimal.Decimal
}

// SubmitCheckout posts the finalized totals for a sale.
func (c *Client) SubmitCheckout(ctx context.Context, r CheckoutRequest) (domain.CheckoutResult, error) {
	v := url.Values{}
	v.Set("id_penjualan", strconv.FormatInt(r.SaleID, 10))
	v.Set("id_pembayaran", strconv.FormatInt(r.PaymentID, 10))
	v.Set("potongan", r.Discount.String())
	v.Set("grand_total", r.GrandTotal.String())
	v.Set("aktif", "0")
	v.Set("biaya_lain", "0")
	v.Set("cash_bayar", r.CashPaid.String())
	v.Set("kembalian", r.Change.String())
	return form[domain.CheckoutResult](ctx, c, http.MethodPost, "/api/penjualan/simpan_checkout", v)
}

// DebtRequest saves a sale as unpaid member debt.
type DebtRequest struct {
	SaleID     int64
	MemberID   int64
	PaymentID  int64
	Discount   decimal.Decimal
	GrandTotal decimal.Decimal
}

// SaveDebt records the sale against the member instead of taking payment.
// This endpoint answers with a flat body, not the envelope.
func (c *Client) SaveDebt(ctx context.Context, r DebtRequest) (domain.DebtResult, error) {
	v := url.Values{}
	v.Set("id_penjualan", strconv.FormatInt(r.SaleID, 10))
	v.Set("id_member", strconv.FormatInt(r.MemberID, 10))
	v.Set("biaya_lain", "0")
	v.Set("potongan", r.Discount.String())
	v.Set("id_pembayaran", strconv.FormatInt(r.PaymentID, 10))
	v.Set("aktif", "2")
	v.Set("grand_total", r.GrandTotal.String())

	var out domain.DebtResult
	err := c.requestInto(ctx, http.MethodPost, "/api/penjualan/simpan_hutang",
		strings.NewReader(v.Encode()), "application/x-www-form-urlencoded", &out)
	if err != nil {
		return domain.DebtResult{}, err
	}
	if !out.Success {
		return out, &ServerError{Status: http.StatusOK, Message: out.Message}
	}
	return out, nil
}

// PayDebt marks a previously saved debt sale as paid off.
func (c *Client) PayDebt(ctx context.Context, saleID int64) (domain.DebtResult, error) {
	v := url.Values{}
	v.Set("id_penjualan", strconv.FormatInt(saleID, 10))

	var out domain.DebtResult
	err := c.requestInto(ctx, http.MethodPost, "/api/penjualan/bayar_hutang",
		strings.NewReader(v.Encode()), "application/x-www-form-urlencoded", &out)
	if err != nil {
		return domain.DebtResult{}, err
	}
	if !out.Success {
		return out, &ServerError{Status: http.StatusOK, Message: out.Message}
	}
	return out, nil
}
