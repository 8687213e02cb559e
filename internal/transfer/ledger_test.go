package transfer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLedger_Transfer(t *testing.T) {
	l := NewLedger()

	r, err := l.Transfer(context.Background(), "w1", "0xbeef", 60)
	require.NoError(t, err)
	require.Equal(t, "w1", r.WillID)
	require.Equal(t, 60.0, r.Percentage)
	require.NotEmpty(t, r.Confirmation)
	require.Len(t, l.Receipts(), 1)
}

func TestLedger_DuplicatePairRejected(t *testing.T) {
	l := NewLedger()

	_, err := l.Transfer(context.Background(), "w1", "0xbeef", 60)
	require.NoError(t, err)

	_, err = l.Transfer(context.Background(), "w1", "0xbeef", 60)
	require.Error(t, err)

	// Different beneficiary on the same will is fine.
	_, err = l.Transfer(context.Background(), "w1", "0xcafe", 30)
	require.NoError(t, err)
	require.Len(t, l.Receipts(), 2)
}
