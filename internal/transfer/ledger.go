package transfer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Ledger is an in-memory Transfer implementation used for tests and local
// runs. It records every executed instruction and refuses duplicates for the
// same (will, beneficiary) pair.
type Ledger struct {
	mu       sync.Mutex
	receipts map[string]*Receipt
	nowFunc  func() time.Time
}

func NewLedger() *Ledger {
	return &Ledger{
		receipts: make(map[string]*Receipt),
		nowFunc:  time.Now,
	}
}

func ledgerKey(willID, beneficiary string) string {
	return willID + "/" + beneficiary
}

func (l *Ledger) Transfer(ctx context.Context, willID, beneficiary string, percentage float64) (*Receipt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := ledgerKey(willID, beneficiary)
	if _, ok := l.receipts[key]; ok {
		return nil, fmt.Errorf("transfer already executed for will %s beneficiary %s", willID, beneficiary)
	}

	r := &Receipt{
		WillID:       willID,
		Beneficiary:  beneficiary,
		Percentage:   percentage,
		Confirmation: uuid.New().String(),
		ExecutedAt:   l.nowFunc(),
	}
	l.receipts[key] = r
	return r, nil
}

// Receipts returns a snapshot of all executed transfers.
func (l *Ledger) Receipts() []*Receipt {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]*Receipt, 0, len(l.receipts))
	for _, r := range l.receipts {
		out = append(out, r)
	}
	return out
}
