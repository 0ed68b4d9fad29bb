package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/samcodingcoach/toko2025/domain"
)

// Categories fetches the full category list.
func (c *Client) Categories(ctx context.Context) ([]domain.Category, error) {
	return request[[]domain.Category](ctx, c, http.MethodGet, "/api/kategori", nil, "")
}

// Brands fetches the full brand list, inactive rows included.
func (c *Client) Brands(ctx context.Context) ([]domain.Brand, error) {
	return request[[]domain.Brand](ctx, c, http.MethodGet, "/api/merk", nil, "")
}

// Products fetches the sellable product list.
func (c *Client) Products(ctx context.Context) ([]domain.Product, error) {
	return request[[]domain.Product](ctx, c, http.MethodGet, "/api/barang/display", nil, "")
}

// Product fetches one product by id. The endpoint answers with a
// single-element list.
func (c *Client) Product(ctx context.Context, productID int64) (domain.Product, error) {
	path := fmt.Sprintf("/api/barang?id_barang=%d", productID)
	rows, err := request[[]domain.Product](ctx, c, http.MethodGet, path, nil, "")
	if err != nil {
		return domain.Product{}, err
	}
	if len(rows) == 0 {
		return domain.Product{}, &ServerError{Status: http.StatusNotFound, Message: "product not found"}
	}
	return rows[0], nil
}

// SimilarProducts lists products sharing a category, for the related-items
// rail on the product page.
func (c *Client) SimilarProducts(ctx context.Context, categoryID int64) ([]domain.Product, error) {
	path := "/api/barang/sekategori?id_kategori=" + url.QueryEscape(fmt.Sprint(categoryID))
	return request[[]domain.Product](ctx, c, http.MethodGet, path, nil, "")
}

// SearchProducts filters the live product list by name or barcode, case
// insensitive. It backs both the search box and the barcode-scan flow, so
// the term is matched as a substring against nama_barang, barcode1, and
// barcode2. A blank term returns the full list.
func (c *Client) SearchProducts(ctx context.Context, term string) ([]domain.Product, error) {
	rows, err := c.Products(ctx)
	if err != nil {
		return nil, err
	}
	term = strings.TrimSpace(strings.ToLower(term))
	if term == "" {
		return rows, nil
	}
	var out []domain.Product
	for _, p := range rows {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Barcode1), term) ||
			(p.Barcode2 != "" && strings.Contains(strings.ToLower(p.Barcode2), term)) {
			out = append(out, p)
		}
	}
	return out, nil
}
