package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/samcodingcoach/toko2025/domain"
)

// Struk fetches the printable receipt for a finished sale.
func (c *Client) Struk(ctx context.Context, saleID int64) (domain.Struk, error) {
	path := fmt.Sprintf("/api/struk/penjualan/%d", saleID)
	rows, err := request[[]domain.Struk](ctx, c, http.MethodGet, path, nil, "")
	if err != nil {
		return domain.Struk{}, err
	}
	if len(rows) == 0 {
		return domain.Struk{}, &ServerError{Status: http.StatusNotFound, Message: "receipt not found"}
	}
	return rows[0], nil
}
