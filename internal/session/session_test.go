package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/samcodingcoach/toko2025/domain"
	"github.com/samcodingcoach/toko2025/internal/api"
	"github.com/samcodingcoach/toko2025/internal/database"
	"github.com/samcodingcoach/toko2025/internal/migrations"
	"github.com/samcodingcoach/toko2025/internal/prefs"
)

type authBackend struct {
	loginHits atomic.Int64
	failClose bool
}

func (b *authBackend) router() http.Handler {
	r := chi.NewRouter()
	r.Post("/api/sesi_kasir/login", func(w http.ResponseWriter, req *http.Request) {
		b.loginHits.Add(1)
		var in domain.LoginRequest
		_ = json.NewDecoder(req.Body).Decode(&in)
		if in.Password != "rahasia123" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "username atau password salah"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": domain.UserSession{
				UserID:    3,
				Username:  in.Username,
				FullName:  "Siti Rahma",
				SessionID: "S-77",
			},
		})
	})
	r.Get("/api/sesi_kasir/off/{id}", func(w http.ResponseWriter, _ *http.Request) {
		if b.failClose {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "sesi tidak ditemukan"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	})
	return r
}

func testManager(t *testing.T, backend *authBackend) (*Manager, *prefs.Store) {
	t.Helper()
	srv := httptest.NewServer(backend.router())
	t.Cleanup(srv.Close)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, migrations.Run(db))

	store := prefs.New(db)
	client := api.NewClient(srv.URL, srv.Client(), nil)
	return NewManager(client, store, nil), store
}

func TestLoginStoresIdentity(t *testing.T) {
	m, store := testManager(t, &authBackend{})

	u, err := m.Login(context.Background(), "kasir1", "rahasia123")
	require.NoError(t, err)
	require.Equal(t, int64(3), u.UserID)

	saved := store.Session()
	require.Equal(t, "kasir1", saved.Username)
	require.Equal(t, "S-77", saved.SessionID)

	cur, err := m.Current()
	require.NoError(t, err)
	require.Equal(t, saved, cur)
}

func TestLoginValidatesBeforeNetwork(t *testing.T) {
	backend := &authBackend{}
	m, _ := testManager(t, backend)

	_, err := m.Login(context.Background(), "", "")
	require.Error(t, err)
	_, err = m.Login(context.Background(), "ab", "x")
	require.Error(t, err)
	require.Zero(t, backend.loginHits.Load(), "empty credentials must not reach the server")
}

func TestLoginFailureLeavesNoIdentity(t *testing.T) {
	m, store := testManager(t, &authBackend{})

	_, err := m.Login(context.Background(), "kasir1", "salah1234")
	require.Error(t, err)
	require.Zero(t, store.Session().UserID)

	_, err = m.Current()
	require.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestLogoutClearsEvenWhenServerFails(t *testing.T) {
	m, store := testManager(t, &authBackend{failClose: true})

	_, err := m.Login(context.Background(), "kasir1", "rahasia123")
	require.NoError(t, err)

	require.NoError(t, m.Logout(context.Background()))
	require.Zero(t, store.Session().UserID)
}
