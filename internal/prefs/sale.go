package prefs

import "fmt"

// The active-sale pointer is the one piece of cross-screen shared state:
// at most one (id, faktur) pair per user. Setting it overwrites any
// previous pointer for that user.

func activeSaleKey(userID int64) string {
	return fmt.Sprintf("active_penjualan_id_%d", userID)
}

func activeFakturKey(userID int64) string {
	return fmt.Sprintf("active_faktur_%d", userID)
}

// ActiveSale returns the stored pointer for the user. Zero id means none.
func (s *Store) ActiveSale(userID int64) (int64, string) {
	return s.GetInt(activeSaleKey(userID), 0), s.Get(activeFakturKey(userID), "")
}

// SetActiveSale stores the pointer, replacing any existing one.
func (s *Store) SetActiveSale(userID, saleID int64, faktur string) error {
	if err := s.SetInt(activeSaleKey(userID), saleID); err != nil {
		return err
	}
	return s.Set(activeFakturKey(userID), faktur)
}

// ClearActiveSale removes the pointer after a confirmed server-side
// success (checkout, explicit discard, or debt save).
func (s *Store) ClearActiveSale(userID int64) error {
	if err := s.Delete(activeSaleKey(userID)); err != nil {
		return err
	}
	return s.Delete(activeFakturKey(userID))
}
