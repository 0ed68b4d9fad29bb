package domain

// HistorySummary heads the transaction history listing.
type HistorySummary struct {
	Count      int64 `json:"count"`
	GrandTotal int64 `json:"grand_total"`
}

// HistoryItem is one finished (or debt) transaction.
type HistoryItem struct {
	SaleID       int64  `json:"id_penjualan"`
	Faktur       string `json:"faktur"`
	Date         string `json:"tanggal"`
	MemberName   string `json:"nama_member"`
	OpeningCash  int64  `json:"uang_awal"`
	Payment      string `json:"nama_pembayaran"`
	GrandTotal   int64  `json:"grand_total"`
	Debt         int64  `json:"hutang"`
	QrisStatus   *int64 `json:"qris_status"`
	Active       int64  `json:"aktif"`
	UserID       int64  `json:"id_user"`
	Time         string `json:"jam"`
}

// IsDebt reports whether this sale was saved unpaid against a member.
func (h HistoryItem) IsDebt() bool { return h.Debt == 1 }

// HistoryList is the response of GET /api/history. It carries the summary
// beside the envelope fields rather than inside data.
type HistoryList struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Summary HistorySummary `json:"summary"`
	Data    []HistoryItem  `json:"data"`
}

// HistoryCartItem is one line of a past transaction.
type HistoryCartItem struct {
	Name      string  `json:"nama_barang"`
	Image1    string  `json:"gambar1"`
	Brand     string  `json:"nama_merk"`
	Quantity  float64 `json:"jumlah_jual"`
	UnitPrice float64 `json:"harga_jual"`
	Discount  float64 `json:"diskon"`
	Subtotal  float64 `json:"subtotal"`
}

// HistoryCart is the payload of GET /api/history/cart/{faktur}.
type HistoryCart struct {
	Faktur  string            `json:"faktur"`
	Debt    int64             `json:"hutang"`
	Items   []HistoryCartItem `json:"items"`
	Summary CartSummary       `json:"summary"`
}
