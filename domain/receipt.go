package domain

import "time"

// StrukItem is one printed receipt line.
type StrukItem struct {
	ProductID  int64   `json:"id_barang"`
	Name       string  `json:"nama_barang"`
	Quantity   int64   `json:"jumlah_jual"`
	UnitSymbol string  `json:"simbol"`
	UnitPrice  float64 `json:"harga_jual"`
	Subtotal   float64 `json:"subtotal"`
	SaleID     int64   `json:"id_penjualan"`
}

// Struk is the receipt payload of GET /api/struk/penjualan/{id}.
type Struk struct {
	BusinessName string      `json:"nama_usaha"`
	Address      string      `json:"alamat"`
	WhatsApp     string      `json:"whatsapp"`
	SaleID       int64       `json:"id_penjualan"`
	Faktur       string      `json:"faktur"`
	Date         *time.Time  `json:"tanggal"`
	MemberName   string      `json:"nama_member"`
	Payment      string      `json:"nama_pembayaran"`
	OtherFees    float64     `json:"biaya_lain"`
	Discount     float64     `json:"potongan"`
	GrandTotal   float64     `json:"grand_total"`
	CashPaid     float64     `json:"cash_bayar"`
	Change       float64     `json:"kembalian"`
	DebtStatus   string      `json:"hutang"`
	Cashier      string      `json:"kasir"`
	Items        []StrukItem `json:"items"`
}

// BusinessProfile is the header data shown on receipts and the account page.
type BusinessProfile struct {
	Name    string `json:"nama_usaha"`
	Address string `json:"alamat"`
	Photo   string `json:"foto_usaha"`
	Expiry  string `json:"tgl_exp"`
}
