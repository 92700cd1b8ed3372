// Package redemption records manual payment claims and tells the admins.
// Activation stays a separate step: an admin verifies the transaction out
// of band and grants premium explicitly.
package redemption

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/priyansh563/studybot/internal/messages"
	"github.com/priyansh563/studybot/types"
)

// Notifier delivers a text to one admin. Implemented by the bot transport.
type Notifier interface {
	Notify(ctx context.Context, tgID int64, text string) error
}

type Queue struct {
	store    types.RedemptionStore
	notifier Notifier
	admins   []int64
}

func NewQueue(store types.RedemptionStore, notifier Notifier, admins []int64) *Queue {
	return &Queue{
		store:    store,
		notifier: notifier,
		admins:   admins,
	}
}

// Submit appends the claim and fans the notice out to every admin.
// Notification is best effort: one unreachable admin never fails the
// submission or blocks the others.
func (q *Queue) Submit(ctx context.Context, tgID int64, name, txnID string) (string, error) {
	ref := uuid.New().String()
	_, err := q.store.AddRedemption(types.RedemptionRequest{
		Ref:        ref,
		TelegramID: tgID,
		TxnID:      txnID,
		Plan:       "manual-upi",
	})
	if err != nil {
		return "", err
	}

	notice := messages.RedeemAdminNotice(name, tgID, txnID, ref)
	for _, admin := range q.admins {
		if err := q.notifier.Notify(ctx, admin, notice); err != nil {
			log.Printf("Failed to notify admin %d about redemption %s: %v", admin, ref, err)
		}
	}
	return ref, nil
}
