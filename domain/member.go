package domain

// Member is the subject of a lookup by phone number. Ids below 2 are
// reserved (walk-in customer) and cannot hold debt.
type Member struct {
	ID   int64  `json:"id_member"`
	Name string `json:"nama_member"`
}

// SaleUpdate reports whether the member lookup also re-priced the active
// sale server-side.
type SaleUpdate struct {
	Success      bool   `json:"success"`
	SaleID       string `json:"id_penjualan"`
	AffectedRows int64  `json:"affected_rows"`
}

// MemberSearch is the payload of POST /api/member/search.
type MemberSearch struct {
	Phone       string     `json:"hp"`
	MemberFound bool       `json:"member_found"`
	Member      Member     `json:"member"`
	SaleUpdate  SaleUpdate `json:"penjualan_update"`
}
