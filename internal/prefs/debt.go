package prefs

// One-shot markers used by the history screen to route an old debt sale
// back through checkout. Take* helpers read and clear in one step so the
// marker cannot leak into a later, unrelated transaction.

const (
	keyDebtPaymentMode = "debt_payment_mode"
	keyDebtFaktur      = "debt_faktur"
	keyDebtSaleID      = "debt_id_penjualan"
	keyWasDebtPayment  = "was_debt_payment_navigation"
)

// MarkDebtPayment records that the next cart load should re-point the
// active sale at the given unpaid sale.
func (s *Store) MarkDebtPayment(faktur string, saleID int64) error {
	if err := s.SetBool(keyDebtPaymentMode, true); err != nil {
		return err
	}
	if err := s.Set(keyDebtFaktur, faktur); err != nil {
		return err
	}
	return s.SetInt(keyDebtSaleID, saleID)
}

// TakeDebtPayment consumes the marker set by MarkDebtPayment.
func (s *Store) TakeDebtPayment() (faktur string, saleID int64, ok bool) {
	if !s.GetBool(keyDebtPaymentMode, false) {
		return "", 0, false
	}
	faktur = s.Get(keyDebtFaktur, "")
	saleID = s.GetInt(keyDebtSaleID, 0)
	for _, key := range []string{keyDebtPaymentMode, keyDebtFaktur, keyDebtSaleID} {
		_ = s.Delete(key)
	}
	return faktur, saleID, saleID > 0
}

// MarkDebtCheckout flags the checkout that follows as a debt settlement.
func (s *Store) MarkDebtCheckout() error {
	return s.SetBool(keyWasDebtPayment, true)
}

// TakeDebtCheckout consumes the debt-settlement flag.
func (s *Store) TakeDebtCheckout() bool {
	was := s.GetBool(keyWasDebtPayment, false)
	if was {
		_ = s.Delete(keyWasDebtPayment)
	}
	return was
}
