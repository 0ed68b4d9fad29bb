package checkout

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samcodingcoach/toko2025/domain"
)

func TestClassifyQris(t *testing.T) {
	cases := []struct {
		name string
		st   domain.QrisStatus
		want QrisState
	}{
		{"settled and paid", domain.QrisStatus{TransactionStatus: "settlement", PaymentStatus: "paid"}, QrisSettled},
		{"settled but unpaid", domain.QrisStatus{TransactionStatus: "settlement", PaymentStatus: "unpaid"}, QrisPending},
		{"gateway failure", domain.QrisStatus{TransactionStatus: "failure"}, QrisFailed},
		{"gateway expire", domain.QrisStatus{TransactionStatus: "expire"}, QrisFailed},
		{"still pending", domain.QrisStatus{TransactionStatus: "pending"}, QrisPending},
		{"unknown status", domain.QrisStatus{TransactionStatus: "weird"}, QrisPending},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, classifyQris(tc.st))
		})
	}
}

func TestQrisSettlementCompletesCheckout(t *testing.T) {
	backend := &payBackend{
		total:      50000,
		qrisStatus: domain.QrisStatus{TransactionStatus: "settlement", PaymentStatus: "paid"},
	}
	m, store := testMachine(t, backend)

	s, err := m.StartQris(context.Background(), QrisOptions{
		PollInterval: 10 * time.Millisecond,
		Timeout:      5 * time.Second,
	})
	require.NoError(t, err)
	require.Equal(t, "ORDER-1", s.Code().OrderID)

	select {
	case <-s.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("session never settled")
	}

	out := s.Outcome()
	require.Equal(t, QrisSettled, out.State)
	require.NoError(t, out.Err)
	require.NotNil(t, out.Result)

	form := backend.lastCheckout()
	require.Equal(t, "2", form.Get("id_pembayaran"))
	require.Equal(t, "0", form.Get("cash_bayar"))
	require.Equal(t, "0", form.Get("kembalian"))

	gotID, _ := store.ActiveSale(3)
	require.Zero(t, gotID)
}

func TestQrisGatewayFailureEndsSession(t *testing.T) {
	backend := &payBackend{
		total:      50000,
		qrisStatus: domain.QrisStatus{TransactionStatus: "expire"},
	}
	m, _ := testMachine(t, backend)

	s, err := m.StartQris(context.Background(), QrisOptions{
		PollInterval: 10 * time.Millisecond,
		Timeout:      5 * time.Second,
	})
	require.NoError(t, err)

	select {
	case <-s.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("session never finished")
	}

	require.Equal(t, QrisFailed, s.Outcome().State)
	require.Nil(t, backend.lastCheckout(), "a failed session must not submit the checkout")
}

func TestQrisCancelIsTerminal(t *testing.T) {
	backend := &payBackend{
		total:      50000,
		qrisStatus: domain.QrisStatus{TransactionStatus: "pending"},
	}
	m, _ := testMachine(t, backend)

	s, err := m.StartQris(context.Background(), QrisOptions{
		PollInterval: time.Hour,
		Timeout:      time.Hour,
	})
	require.NoError(t, err)

	s.Cancel()
	select {
	case <-s.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("cancel did not end the session")
	}

	require.Equal(t, QrisCancelled, s.Outcome().State)
	require.Nil(t, backend.lastCheckout())
}

func TestQrisWindowExpires(t *testing.T) {
	backend := &payBackend{
		total:      50000,
		qrisStatus: domain.QrisStatus{TransactionStatus: "pending"},
	}
	m, _ := testMachine(t, backend)

	s, err := m.StartQris(context.Background(), QrisOptions{
		PollInterval: time.Hour,
		Timeout:      50 * time.Millisecond,
	})
	require.NoError(t, err)

	select {
	case <-s.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("window never expired")
	}

	require.Equal(t, QrisExpired, s.Outcome().State)
}

func TestQrisCountdownTicks(t *testing.T) {
	backend := &payBackend{
		total:      50000,
		qrisStatus: domain.QrisStatus{TransactionStatus: "pending"},
	}
	m, _ := testMachine(t, backend)

	ticks := make(chan int, 16)
	s, err := m.StartQris(context.Background(), QrisOptions{
		PollInterval: time.Hour,
		Timeout:      3 * time.Second,
		OnTick:       func(left int) { ticks <- left },
	})
	require.NoError(t, err)
	defer s.Cancel()

	require.Equal(t, 3, s.Remaining())
	select {
	case left := <-ticks:
		require.Equal(t, 2, left)
	case <-time.After(2 * time.Second):
		t.Fatal("no countdown tick arrived")
	}
}
