package payment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Domenick1991/tripmate/internal/domain"
	"github.com/google/uuid"
)

const (
	MethodCard       = "card"
	MethodUPI        = "upi"
	MethodWallet     = "wallet"
	MethodNetBanking = "netbanking"
)

type Charge struct {
	Method   string  `json:"method"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type Receipt struct {
	TransactionID string               `json:"transactionId"`
	Status        domain.PaymentStatus `json:"status"`
	Amount        float64              `json:"amount"`
	Currency      string               `json:"currency"`
	ProcessedAt   time.Time            `json:"processedAt"`
}

type Gateway interface {
	Charge(ctx context.Context, charge Charge) (Receipt, error)
}

// Simulator approves every well-formed charge after a fixed delay. No money moves.
type Simulator struct {
	latency time.Duration
	now     func() time.Time
	newID   func() string
}

func NewSimulator(latency time.Duration) *Simulator {
	return &Simulator{
		latency: latency,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

func (s *Simulator) Charge(ctx context.Context, charge Charge) (Receipt, error) {
	if charge.Amount <= 0 {
		return Receipt{}, fmt.Errorf("amount %.2f: %w", charge.Amount, domain.ErrPaymentDeclined)
	}
	if !supported(charge.Method) {
		return Receipt{}, fmt.Errorf("method %q: %w", charge.Method, domain.ErrPaymentDeclined)
	}

	if s.latency > 0 {
		timer := time.NewTimer(s.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Receipt{}, ctx.Err()
		case <-timer.C:
		}
	}

	return Receipt{
		TransactionID: "TXN-" + strings.ToUpper(s.newID()[:8]),
		Status:        domain.PaymentStatusCompleted,
		Amount:        charge.Amount,
		Currency:      charge.Currency,
		ProcessedAt:   s.now(),
	}, nil
}

func supported(method string) bool {
	switch strings.ToLower(method) {
	case MethodCard, MethodUPI, MethodWallet, MethodNetBanking:
		return true
	}
	return false
}

var _ Gateway = (*Simulator)(nil)
