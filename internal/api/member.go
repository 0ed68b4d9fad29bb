package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/samcodingcoach/toko2025/domain"
)

// SearchMember looks a member up by phone number and attaches them to the
// active sale so member pricing is applied server-side.
func (c *Client) SearchMember(ctx context.Context, phone string, saleID int64) (domain.MemberSearch, error) {
	v := url.Values{}
	v.Set("hp", phone)
	v.Set("id_penjualan", strconv.FormatInt(saleID, 10))
	return form[domain.MemberSearch](ctx, c, http.MethodPost, "/api/member/search", v)
}
