// Package session handles cashier login, logout, and the stored identity.
package session

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/samcodingcoach/toko2025/domain"
	"github.com/samcodingcoach/toko2025/internal/api"
	"github.com/samcodingcoach/toko2025/internal/prefs"
)

// ErrNotLoggedIn means an operation needed a cashier identity and none is
// stored.
var ErrNotLoggedIn = errors.New("not logged in")

type credentials struct {
	Username string `validate:"required,min=3"`
	Password string `validate:"required,min=4"`
}

// Manager logs cashiers in against the server and keeps the identity in
// preferences.
type Manager struct {
	client   *api.Client
	prefs    *prefs.Store
	validate *validator.Validate
	log      logrus.FieldLogger
}

// NewManager wires the session manager.
func NewManager(client *api.Client, store *prefs.Store, log logrus.FieldLogger) *Manager {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Manager{
		client:   client,
		prefs:    store,
		validate: validator.New(),
		log:      log,
	}
}

// Login authenticates the cashier and stores the session identity locally.
// Credentials are checked before any network call.
func (m *Manager) Login(ctx context.Context, username, password string) (domain.UserSession, error) {
	if err := m.validate.Struct(credentials{Username: username, Password: password}); err != nil {
		return domain.UserSession{}, err
	}
	u, err := m.client.Login(ctx, username, password)
	if err != nil {
		return domain.UserSession{}, err
	}
	if err := m.prefs.SaveSession(u); err != nil {
		return domain.UserSession{}, err
	}
	m.log.WithField("username", u.Username).Info("cashier logged in")
	return u, nil
}

// Current returns the stored identity.
func (m *Manager) Current() (domain.UserSession, error) {
	u := m.prefs.Session()
	if u.UserID == 0 {
		return domain.UserSession{}, ErrNotLoggedIn
	}
	return u, nil
}

// Logout closes the register session server-side and clears the local
// identity. The local side is cleared even when the server call fails, so
// an offline device can still log out.
func (m *Manager) Logout(ctx context.Context) error {
	u := m.prefs.Session()
	if u.UserID == 0 {
		return ErrNotLoggedIn
	}
	if err := m.client.CloseSession(ctx, u.UserID); err != nil {
		m.log.WithError(err).Warn("server session close failed")
	}
	return m.prefs.ClearSession()
}

// Profile fetches the shop identity for the account page and receipts.
func (m *Manager) Profile(ctx context.Context) (domain.BusinessProfile, error) {
	return m.client.BusinessProfile(ctx)
}
