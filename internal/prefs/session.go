package prefs

import (
	"github.com/samcodingcoach/toko2025/domain"
)

// Session identity keys match the original client so a migrated database
// keeps its login.
const (
	keyUserID    = "user_id"
	keyUsername  = "username"
	keyFullName  = "nama_lengkap"
	keySessionID = "id_sesi"
	keyEmail     = "email"
	keyPhone     = "hp"
	keyLoggedIn  = "is_logged_in"
)

// SaveSession persists the logged-in cashier identity.
func (s *Store) SaveSession(u domain.UserSession) error {
	if err := s.SetInt(keyUserID, u.UserID); err != nil {
		return err
	}
	for key, value := range map[string]string{
		keyUsername:  u.Username,
		keyFullName:  u.FullName,
		keySessionID: u.SessionID,
		keyEmail:     u.Email,
		keyPhone:     u.Phone,
	} {
		if err := s.Set(key, value); err != nil {
			return err
		}
	}
	return s.SetBool(keyLoggedIn, true)
}

// Session returns the stored identity. A zero UserID means nobody is
// logged in.
func (s *Store) Session() domain.UserSession {
	if !s.GetBool(keyLoggedIn, false) {
		return domain.UserSession{}
	}
	return domain.UserSession{
		UserID:    s.GetInt(keyUserID, 0),
		Username:  s.Get(keyUsername, ""),
		FullName:  s.Get(keyFullName, ""),
		SessionID: s.Get(keySessionID, ""),
		Email:     s.Get(keyEmail, ""),
		Phone:     s.Get(keyPhone, ""),
	}
}

// ClearSession removes the stored identity on logout or session close.
func (s *Store) ClearSession() error {
	for _, key := range []string{keyUserID, keyUsername, keyFullName, keySessionID, keyEmail, keyPhone} {
		if err := s.Delete(key); err != nil {
			return err
		}
	}
	return s.SetBool(keyLoggedIn, false)
}
