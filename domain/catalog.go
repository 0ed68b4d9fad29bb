package domain

import "time"

// Category is a reference row synced once from the server and kept in the
// local cache for filter menus.
type Category struct {
	ID           int64  `db:"id_kategori" json:"id_kategori"`
	Name         string `db:"nama_kategori" json:"nama_kategori"`
	ProductCount int64  `db:"jumlah" json:"jumlah"`
}

// Brand mirrors the merk table. Active is 1/0 as the server sends it; rows
// arriving without the flag are normalized to active during sync.
type Brand struct {
	ID           int64  `db:"id_merk" json:"id_merk"`
	Name         string `db:"nama_merk" json:"nama_merk"`
	Active       int64  `db:"aktif" json:"aktif"`
	ProductCount int64  `db:"jumlah" json:"jumlah"`
}

// SyncStatus tracks per-table cache initialization. A table counts as
// populated once Initialized is set; a forced refresh clears it first.
type SyncStatus struct {
	ID          int64     `db:"id"`
	TableName   string    `db:"table_name"`
	LastSync    time.Time `db:"last_sync"`
	Initialized bool      `db:"is_initialized"`
}

// Product listing rows are never cached locally; they always come live from
// the server.
type Product struct {
	ID          int64  `json:"id_barang"`
	BrandID     int64  `json:"id_merk"`
	CategoryID  int64  `json:"id_kategori"`
	Barcode1    string `json:"barcode1"`
	Barcode2    string `json:"barcode2"`
	Name        string `json:"nama_barang"`
	Image1      string `json:"gambar1"`
	Image2      string `json:"gambar2"`
	Price       int64  `json:"harga_jual"`
	MemberPrice int64  `json:"harga_jual_member"`
	Stock       int64  `json:"stok_aktif"`
	Category    string `json:"nama_kategori"`
	Brand       string `json:"nama_merk"`
	Unit        string `json:"nama_satuan"`
	UnitSymbol  string `json:"simbol"`
}
