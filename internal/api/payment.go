package api

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/samcodingcoach/toko2025/domain"
)

// PaymentMethods lists the configured payment methods.
func (c *Client) PaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	return request[[]domain.PaymentMethod](ctx, c, http.MethodGet, "/api/pembayaran", nil, "")
}

// CreateQris asks the gateway for a QRIS code covering the sale's grand
// total. The returned order id drives the status poll.
func (c *Client) CreateQris(ctx context.Context, faktur string, gross decimal.Decimal, saleID int64) (domain.QrisCode, error) {
	v := url.Values{}
	v.Set("faktur", faktur)
	v.Set("gross_amount", gross.String())
	v.Set("id_penjualan", strconv.FormatInt(saleID, 10))
	return form[domain.QrisCode](ctx, c, http.MethodPost, "/api/pembayaran/create-qris", v)
}

// QrisStatus fetches the gateway transaction state for an order.
func (c *Client) QrisStatus(ctx context.Context, orderID string) (domain.QrisStatus, error) {
	path := "/api/pembayaran/status/" + url.PathEscape(orderID)
	return request[domain.QrisStatus](ctx, c, http.MethodGet, path, nil, "")
}

// UploadTransferEvidence posts the compressed evidence photo for a bank
// transfer payment. The file part must be named url_image, that is the
// field the backend's upload middleware reads.
func (c *Client) UploadTransferEvidence(ctx context.Context, saleID int64, owner, bank, fileName string, image []byte) (domain.TransferEvidence, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("id_penjualan", strconv.FormatInt(saleID, 10)); err != nil {
		return domain.TransferEvidence{}, err
	}
	if err := w.WriteField("nama_pemilik", owner); err != nil {
		return domain.TransferEvidence{}, err
	}
	if err := w.WriteField("nama_bank", bank); err != nil {
		return domain.TransferEvidence{}, err
	}
	part, err := w.CreateFormFile("url_image", fileName)
	if err != nil {
		return domain.TransferEvidence{}, err
	}
	if _, err := part.Write(image); err != nil {
		return domain.TransferEvidence{}, err
	}
	if err := w.Close(); err != nil {
		return domain.TransferEvidence{}, err
	}
	return request[domain.TransferEvidence](ctx, c, http.MethodPost, "/api/pembayaran/transfer_bank", &buf, w.FormDataContentType())
}
