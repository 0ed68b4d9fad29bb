package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/samcodingcoach/toko2025/domain"
)

// History lists finished transactions for a cashier from startDate
// (YYYY-MM-DD) onward. The summary rides beside the envelope fields on this
// endpoint, so it decodes as a whole.
func (c *Client) History(ctx context.Context, startDate string, userID int64) (domain.HistoryList, error) {
	path := fmt.Sprintf("/api/history?start_date=%s&id_user=%d", url.QueryEscape(startDate), userID)
	var out domain.HistoryList
	if err := c.requestInto(ctx, http.MethodGet, path, nil, "", &out); err != nil {
		return domain.HistoryList{}, err
	}
	if !out.Success {
		return out, &ServerError{Status: http.StatusOK, Message: out.Message}
	}
	return out, nil
}

// HistoryCart loads the line items of a past transaction by invoice number.
func (c *Client) HistoryCart(ctx context.Context, faktur string) (domain.HistoryCart, error) {
	path := "/api/history/cart/" + url.PathEscape(faktur)
	return request[domain.HistoryCart](ctx, c, http.MethodGet, path, nil, "")
}
