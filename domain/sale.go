package domain

// SaleCreated is the payload returned by POST /api/penjualan.
type SaleCreated struct {
	ID     int64  `json:"id_penjualan"`
	Faktur string `json:"faktur"`
	UserID string `json:"id_user"`
}

// LastFaktur carries the server's suggestion for the next invoice number.
type LastFaktur struct {
	Last          string `json:"last_faktur"`
	NextSuggested string `json:"next_suggested"`
}

// CartLineResult is returned by POST /api/penjualan/detail. Action reports
// whether the server inserted a new line or updated an existing one.
type CartLineResult struct {
	ID           int64   `json:"id"`
	SaleID       int64   `json:"id_penjualan"`
	ProductID    int64   `json:"id_barang"`
	Quantity     float64 `json:"jumlah_jual"`
	UnitPrice    float64 `json:"harga_jual"`
	Discount     float64 `json:"diskon"`
	Subtotal     float64 `json:"subtotal"`
	QtyBefore    float64 `json:"jumlah_jual_sebelum"`
	QtyRequested float64 `json:"jumlah_jual_baru"`
	QtyAfter     float64 `json:"jumlah_jual_sesudah"`
}

// CartItem is one line of the active sale as the server reports it. The
// client never computes these values itself.
type CartItem struct {
	ID        int64   `json:"id_detail_penjualan"`
	SaleID    int64   `json:"id_penjualan"`
	ProductID int64   `json:"id_barang"`
	Name      string  `json:"nama_barang"`
	Image1    string  `json:"gambar1"`
	Image2    string  `json:"gambar2"`
	Quantity  float64 `json:"jumlah_jual"`
	UnitPrice float64 `json:"harga_jual"`
	Discount  float64 `json:"diskon"`
	Subtotal  float64 `json:"subtotal"`
	Brand     string  `json:"nama_merk"`
}

// CartSummary is the server-computed running total of the active sale.
type CartSummary struct {
	TotalItems    int64   `json:"total_items"`
	TotalQty      float64 `json:"total_qty"`
	TotalAmount   float64 `json:"total_amount"`
	TotalDiscount float64 `json:"total_diskon"`
}

// Cart is the full sale-in-progress view. SaleID arrives as a string on
// this endpoint.
type Cart struct {
	SaleID  string      `json:"id_penjualan"`
	Items   []CartItem  `json:"items"`
	Summary CartSummary `json:"summary"`
}

// CheckoutResult is the payload of POST /api/penjualan/simpan_checkout.
type CheckoutResult struct {
	SaleID        int64   `json:"id_penjualan"`
	Faktur        string  `json:"faktur"`
	GrandTotal    float64 `json:"grand_total"`
	PaymentID     int64   `json:"id_pembayaran"`
	PaymentMethod string  `json:"payment_method"`
}

// DebtResult is shared by simpan_hutang and bayar_hutang, which report only
// the affected row count.
type DebtResult struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	AffectedRows int64  `json:"affectedRows"`
}
