// Package transfer abstracts the capability that actually moves assets when
// an expired will is claimed. The engine calls it exactly once per committed
// claim; the chain/ledger behind it is out of scope.
package transfer

import (
	"context"
	"time"
)

// Receipt confirms a completed transfer instruction.
type Receipt struct {
	WillID       string
	Beneficiary  string
	Percentage   float64
	Confirmation string
	ExecutedAt   time.Time
}

// Transfer instructs the asset collaborator to move the beneficiary's
// entitled percentage of the will's assets.
type Transfer interface {
	Transfer(ctx context.Context, willID, beneficiary string, percentage float64) (*Receipt, error)
}
