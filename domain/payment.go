package domain

// Payment method ids as the backend assigns them.
const (
	PaymentCash         int64 = 1
	PaymentQris         int64 = 2
	PaymentBankTransfer int64 = 3
)

// PaymentMethod is one row of GET /api/pembayaran.
type PaymentMethod struct {
	ID     int64   `json:"id_pembayaran"`
	Name   string  `json:"nama_pembayaran"`
	Number string  `json:"nomor_pembayaran"`
	Fee    float64 `json:"biaya_pembayaran"`
	Active int64   `json:"aktif"`
}

// QrisAction is a follow-up link returned by the payment gateway, typically
// the generate-qr-code image URL.
type QrisAction struct {
	Name   string `json:"name"`
	Method string `json:"method"`
	URL    string `json:"url"`
}

// QrisCode is the payload of POST /api/pembayaran/create-qris. Amount and
// SaleID come back as strings from the gateway.
type QrisCode struct {
	Faktur            string       `json:"faktur"`
	OrderID           string       `json:"order_id"`
	TransactionID     string       `json:"transaction_id"`
	TransactionStatus string       `json:"transaction_status"`
	QRString          string       `json:"qr_string"`
	GrossAmount       string       `json:"gross_amount"`
	SaleID            string       `json:"id_penjualan"`
	Actions           []QrisAction `json:"actions"`
}

// QrisStatus is the payload of GET /api/pembayaran/status/{order_id}, the
// gateway transaction state relayed by the backend.
type QrisStatus struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	PaymentStatus     string `json:"payment_status"`
	GrossAmount       string `json:"gross_amount"`
	PaymentType       string `json:"payment_type"`
	TransactionTime   string `json:"transaction_time"`
	FraudStatus       string `json:"fraud_status"`
	StatusCode        string `json:"status_code"`
	StatusMessage     string `json:"status_message"`
}

// TransferEvidence is the payload of POST /api/pembayaran/transfer_bank
// after the evidence photo upload succeeds.
type TransferEvidence struct {
	ID           int64  `json:"id_transfer"`
	SaleID       int64  `json:"id_penjualan"`
	AccountOwner string `json:"nama_pemilik"`
	Bank         string `json:"nama_bank"`
	ImagePath    string `json:"url_image"`
	ImageURL     string `json:"full_image_url"`
}
