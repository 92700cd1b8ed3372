package redemption

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priyansh563/studybot/store"
)

type fakeNotifier struct {
	sent    []int64
	failFor map[int64]error
}

func (f *fakeNotifier) Notify(_ context.Context, tgID int64, _ string) error {
	if err, ok := f.failFor[tgID]; ok {
		return err
	}
	f.sent = append(f.sent, tgID)
	return nil
}

func TestSubmitRecordsAndNotifiesAllAdmins(t *testing.T) {
	s := store.NewMemoryStore()
	n := &fakeNotifier{}
	q := NewQueue(s, n, []int64{100, 200})

	ref, err := q.Submit(context.Background(), 42, "Asha", "TXN123")
	require.NoError(t, err)
	assert.NotEmpty(t, ref)

	reqs := s.Redemptions()
	require.Len(t, reqs, 1)
	assert.Equal(t, int64(42), reqs[0].TelegramID)
	assert.Equal(t, "TXN123", reqs[0].TxnID)
	assert.Equal(t, "manual-upi", reqs[0].Plan)
	assert.Equal(t, ref, reqs[0].Ref)

	assert.Equal(t, []int64{100, 200}, n.sent)
}

func TestSubmitSwallowsNotifyFailures(t *testing.T) {
	s := store.NewMemoryStore()
	n := &fakeNotifier{failFor: map[int64]error{100: errors.New("blocked")}}
	q := NewQueue(s, n, []int64{100, 200})

	_, err := q.Submit(context.Background(), 42, "Asha", "TXN123")
	require.NoError(t, err)

	assert.Equal(t, []int64{200}, n.sent, "remaining admins still notified")
	assert.Len(t, s.Redemptions(), 1)
}

func TestSubmitAllowsRepeatedClaims(t *testing.T) {
	s := store.NewMemoryStore()
	q := NewQueue(s, &fakeNotifier{}, nil)

	_, err := q.Submit(context.Background(), 42, "Asha", "TXN1")
	require.NoError(t, err)
	_, err = q.Submit(context.Background(), 42, "Asha", "TXN2")
	require.NoError(t, err)

	assert.Len(t, s.Redemptions(), 2)
}
