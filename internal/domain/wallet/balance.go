package wallet

import "errors"

var (
	ErrInvalidPoints       = errors.New("points must be positive")
	ErrInsufficientBalance = errors.New("points exceed the available balance")
	ErrBalanceUnknown      = errors.New("balance has not been fetched yet")
)

// BalanceMirror is the client-side view of a server-owned points balance.
// The upstream ledger is the sole authority; the mirror exists so a send
// operation can be validated and reflected immediately, and it is marked
// provisional until the next authoritative fetch confirms it.
type BalanceMirror struct {
	points      int64
	known       bool
	provisional bool
}

func NewBalanceMirror() *BalanceMirror {
	return &BalanceMirror{}
}

func (m *BalanceMirror) Points() int64     { return m.points }
func (m *BalanceMirror) Known() bool       { return m.known }
func (m *BalanceMirror) Provisional() bool { return m.provisional }

// Confirm replaces the mirror with an authoritative balance.
func (m *BalanceMirror) Confirm(points int64) {
	m.points = points
	m.known = true
	m.provisional = false
}

// ValidateDebit checks a prospective send against the mirrored balance.
// Each failure is a distinct error so callers can surface precise messages.
func (m *BalanceMirror) ValidateDebit(points int64) error {
	if points <= 0 {
		return ErrInvalidPoints
	}
	if !m.known {
		return ErrBalanceUnknown
	}
	if points > m.points {
		return ErrInsufficientBalance
	}
	return nil
}

// ApplyDebit optimistically subtracts a confirmed-sent amount. The result is
// provisional until the reconciling fetch lands.
func (m *BalanceMirror) ApplyDebit(points int64) error {
	if err := m.ValidateDebit(points); err != nil {
		return err
	}
	m.points -= points
	m.provisional = true
	return nil
}
