package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/samcodingcoach/toko2025/domain"
)

func fixtureServer(t *testing.T, register func(chi.Router)) *Client {
	t.Helper()
	r := chi.NewRouter()
	register(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, srv.Client(), nil)
}

func TestEnvelopeDecoding(t *testing.T) {
	c := fixtureServer(t, func(r chi.Router) {
		r.Get("/api/kategori", func(w http.ResponseWriter, _ *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"message": "ok",
				"data": []domain.Category{
					{ID: 1, Name: "Minuman", ProductCount: 4},
				},
			})
		})
	})

	rows, err := c.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Minuman", rows[0].Name)
}

func TestServerErrorCarriesBackendMessage(t *testing.T) {
	c := fixtureServer(t, func(r chi.Router) {
		r.Post("/api/sesi_kasir/login", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]any{
				"success": false,
				"message": "username atau password salah",
			})
		})
	})

	_, err := c.Login(context.Background(), "kasir1", "wrong")
	var se *ServerError
	require.ErrorAs(t, err, &se)
	require.Equal(t, http.StatusUnauthorized, se.Status)
	require.Equal(t, "username atau password salah", se.Message)
}

func TestSuccessFalseOn200IsStillAnError(t *testing.T) {
	c := fixtureServer(t, func(r chi.Router) {
		r.Get("/api/merk", func(w http.ResponseWriter, _ *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{
				"success": false,
				"message": "data merk kosong",
			})
		})
	})

	_, err := c.Brands(context.Background())
	var se *ServerError
	require.ErrorAs(t, err, &se)
	require.Equal(t, "data merk kosong", se.Message)
}

func TestUnreachableServer(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", &http.Client{}, nil)
	err := c.Ping(context.Background())
	require.ErrorIs(t, err, ErrUnreachable)
}

func TestCheckoutFormIsZeroedForNonCash(t *testing.T) {
	var posted map[string]string
	c := fixtureServer(t, func(r chi.Router) {
		r.Post("/api/penjualan/simpan_checkout", func(w http.ResponseWriter, req *http.Request) {
			_ = req.ParseForm()
			posted = map[string]string{}
			for k := range req.PostForm {
				posted[k] = req.PostFormValue(k)
			}
			json.NewEncoder(w).Encode(map[string]any{"success": true, "data": domain.CheckoutResult{}})
		})
	})

	_, err := c.SubmitCheckout(context.Background(), CheckoutRequest{
		SaleID:    101,
		PaymentID: domain.PaymentQris,
	})
	require.NoError(t, err)
	require.Equal(t, "101", posted["id_penjualan"])
	require.Equal(t, "2", posted["id_pembayaran"])
	require.Equal(t, "0", posted["aktif"])
	require.Equal(t, "0", posted["biaya_lain"])
	require.Equal(t, "0", posted["cash_bayar"])
	require.Equal(t, "0", posted["kembalian"])
}

func TestTransferUploadIsMultipart(t *testing.T) {
	c := fixtureServer(t, func(r chi.Router) {
		r.Post("/api/pembayaran/transfer_bank", func(w http.ResponseWriter, req *http.Request) {
			require.NoError(t, req.ParseMultipartForm(4<<20))
			require.Equal(t, "101", req.PostFormValue("id_penjualan"))
			require.Equal(t, "Budi", req.PostFormValue("nama_pemilik"))
			require.Equal(t, "BCA", req.PostFormValue("nama_bank"))
			file, header, err := req.FormFile("url_image")
			require.NoError(t, err)
			defer file.Close()
			require.Equal(t, "transfer_1_abcd1234.jpg", header.Filename)
			json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"data":    domain.TransferEvidence{ID: 7, SaleID: 101},
			})
		})
	})

	ev, err := c.UploadTransferEvidence(context.Background(), 101, "Budi", "BCA",
		"transfer_1_abcd1234.jpg", []byte{0xFF, 0xD8, 0xFF})
	require.NoError(t, err)
	require.Equal(t, int64(7), ev.ID)
}

func TestSearchProductsMatchesNameAndBarcodes(t *testing.T) {
	c := fixtureServer(t, func(r chi.Router) {
		r.Get("/api/barang/display", func(w http.ResponseWriter, _ *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"data": []domain.Product{
					{ID: 1, Name: "Indomie Goreng", Barcode1: "8998866200578"},
					{ID: 2, Name: "Kopi Kapal Api", Barcode1: "8991002101123", Barcode2: "KKA-01"},
					{ID: 3, Name: "Teh Botol", Barcode1: "8996001600146"},
				},
			})
		})
	})
	ctx := context.Background()

	// case-insensitive name substring
	rows, err := c.SearchProducts(ctx, "indomie")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, int64(1), rows[0].ID)

	// barcode1 exact scan
	rows, err = c.SearchProducts(ctx, "8996001600146")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, int64(3), rows[0].ID)

	// barcode2 matches only where present
	rows, err = c.SearchProducts(ctx, "kka")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, int64(2), rows[0].ID)

	// blank term returns the full list
	rows, err = c.SearchProducts(ctx, "   ")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	rows, err = c.SearchProducts(ctx, "tidak ada")
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestHistoryDecodesSummaryBesideEnvelope(t *testing.T) {
	c := fixtureServer(t, func(r chi.Router) {
		r.Get("/api/history", func(w http.ResponseWriter, req *http.Request) {
			require.Equal(t, "2025-08-01", req.URL.Query().Get("start_date"))
			require.Equal(t, "3", req.URL.Query().Get("id_user"))
			json.NewEncoder(w).Encode(domain.HistoryList{
				Success: true,
				Summary: domain.HistorySummary{Count: 2, GrandTotal: 80000},
				Data: []domain.HistoryItem{
					{Faktur: "F0100", GrandTotal: 50000},
					{Faktur: "F0101", GrandTotal: 30000, Debt: 1},
				},
			})
		})
	})

	list, err := c.History(context.Background(), "2025-08-01", 3)
	require.NoError(t, err)
	require.Equal(t, int64(2), list.Summary.Count)
	require.True(t, list.Data[1].IsDebt())
}
