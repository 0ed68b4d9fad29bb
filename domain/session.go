package domain

// LoginRequest is the JSON body of POST /api/sesi_kasir/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserSession identifies the logged-in cashier and their register session.
type UserSession struct {
	UserID    int64  `json:"id_user"`
	Username  string `json:"username"`
	FullName  string `json:"nama_lengkap"`
	SessionID string `json:"id_sesi"`
	Email     string `json:"email"`
	Phone     string `json:"hp"`
}
