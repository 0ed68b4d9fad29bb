package checkout

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/samcodingcoach/toko2025/domain"
)

// QrisState is where a QRIS session ended up. Exactly one terminal state is
// ever reached per session.
type QrisState int

const (
	QrisPending QrisState = iota
	QrisSettled
	QrisFailed
	QrisExpired
	QrisCancelled
)

func (s QrisState) String() string {
	switch s {
	case QrisPending:
		return "pending"
	case QrisSettled:
		return "settled"
	case QrisFailed:
		return "failed"
	case QrisExpired:
		return "expired"
	case QrisCancelled:
		return "cancelled"
	}
	return "unknown"
}

// classifyQris maps the gateway's transaction state to a session state.
// Anything that is not settled-and-paid or explicitly dead stays pending.
func classifyQris(st domain.QrisStatus) QrisState {
	switch st.TransactionStatus {
	case "settlement":
		if st.PaymentStatus == "paid" {
			return QrisSettled
		}
		return QrisPending
	case "failure", "expire":
		return QrisFailed
	default:
		return QrisPending
	}
}

// QrisOutcome is the final word of a QRIS session. Result is set only when
// the payment settled and the checkout submit succeeded.
type QrisOutcome struct {
	State  QrisState
	Status domain.QrisStatus
	Result *Result
	Err    error
}

// QrisOptions tune the session. Zero values take the production defaults:
// a 5 second poll and a 5 minute window.
type QrisOptions struct {
	PollInterval time.Duration
	Timeout      time.Duration
	// OnTick fires once per second with the seconds left in the window.
	OnTick func(secondsLeft int)
	// OnFinish fires exactly once with the terminal outcome.
	OnFinish func(QrisOutcome)
}

// QrisSession owns the QR code for one payment attempt and the goroutine
// that watches it. All timers and the poll run in one select loop, so a
// terminal state can never be reached twice.
type QrisSession struct {
	code    domain.QrisCode
	machine *Machine
	log     logrus.FieldLogger
	opts    QrisOptions

	cancel context.CancelFunc
	done   chan struct{}

	mu        sync.Mutex
	remaining int
	outcome   QrisOutcome
}

// StartQris requests a QR code for the grand total and begins watching for
// settlement. The session polls the gateway every 5 seconds inside a 5
// minute window; on settlement it submits the checkout itself.
func (m *Machine) StartQris(ctx context.Context, opts QrisOptions) (*QrisSession, error) {
	if !m.GrandTotal().IsPositive() {
		return nil, ErrEmptySale
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = 5 * time.Second
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Minute
	}

	code, err := m.client.CreateQris(ctx, m.faktur, m.GrandTotal(), m.saleID)
	if err != nil {
		return nil, err
	}

	runCtx, cancel := context.WithCancel(ctx)
	s := &QrisSession{
		code:      code,
		machine:   m,
		log:       m.log.WithField("order_id", code.OrderID),
		opts:      opts,
		cancel:    cancel,
		done:      make(chan struct{}),
		remaining: int(opts.Timeout / time.Second),
	}
	go s.run(runCtx)
	return s, nil
}

// Code is the QR payload handed to the customer.
func (s *QrisSession) Code() domain.QrisCode { return s.code }

// Remaining reports the seconds left in the payment window.
func (s *QrisSession) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remaining
}

// Cancel abandons the session. The gateway record is left to expire on its
// own; the backend has no cancel endpoint.
func (s *QrisSession) Cancel() { s.cancel() }

// Done closes when the session reaches its terminal state.
func (s *QrisSession) Done() <-chan struct{} { return s.done }

// Outcome is valid after Done closes.
func (s *QrisSession) Outcome() QrisOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outcome
}

func (s *QrisSession) run(ctx context.Context) {
	countdown := time.NewTicker(time.Second)
	defer countdown.Stop()
	poll := time.NewTicker(s.opts.PollInterval)
	defer poll.Stop()
	deadline := time.NewTimer(s.opts.Timeout)
	defer deadline.Stop()

	for {
		select {
		case <-ctx.Done():
			s.finish(QrisOutcome{State: QrisCancelled, Err: ctx.Err()})
			return
		case <-deadline.C:
			s.finish(QrisOutcome{State: QrisExpired})
			return
		case <-countdown.C:
			s.mu.Lock()
			if s.remaining > 0 {
				s.remaining--
			}
			left := s.remaining
			s.mu.Unlock()
			if s.opts.OnTick != nil {
				s.opts.OnTick(left)
			}
			if left <= 0 {
				s.finish(QrisOutcome{State: QrisExpired})
				return
			}
		case <-poll.C:
			st, err := s.machine.client.QrisStatus(ctx, s.code.OrderID)
			if err != nil {
				s.log.WithError(err).Warn("status poll failed")
				continue
			}
			switch classifyQris(st) {
			case QrisSettled:
				out := QrisOutcome{State: QrisSettled, Status: st}
				res, err := s.machine.completeQris(ctx)
				if err != nil {
					out.Err = err
				} else {
					out.Result = &res
				}
				s.finish(out)
				return
			case QrisFailed:
				s.finish(QrisOutcome{State: QrisFailed, Status: st})
				return
			}
		}
	}
}

// finish records the terminal outcome. It runs only from the loop goroutine,
// once.
func (s *QrisSession) finish(out QrisOutcome) {
	s.mu.Lock()
	s.outcome = out
	s.mu.Unlock()
	s.log.WithField("state", out.State.String()).Info("qris session finished")
	if s.opts.OnFinish != nil {
		s.opts.OnFinish(out)
	}
	close(s.done)
}
