package handlers

import (
	"context"
	"log"

	"github.com/priyansh563/studybot/internal/catalog"
	"github.com/priyansh563/studybot/internal/messages"
	"github.com/priyansh563/studybot/internal/nav"
)

// sendRange delivers the requested slice of a chapter's items one by one.
// Premium status is re-checked here, not reused from the page render,
// since the subscription may have expired (or been granted) since the list
// was shown. Each item gets its own outcome: a locked item produces a refusal,
// a transport failure produces a notice, and neither stops the rest of the
// batch.
func (bh *Handlers) sendRange(ctx context.Context, chatID, userID int64, a nav.SendRange) {
	items, err := bh.catalog.ListItems(a.Grade, a.Category, a.Subject, a.Chapter)
	if err != nil {
		log.Printf("Error listing items for sendrange: %v", err)
		if err := bh.sender.SendMessage(ctx, chatID, messages.ErrorDefault()); err != nil {
			log.Printf("Error reporting sendrange failure: %v", err)
		}
		return
	}

	premiumUser := bh.checkPremium(userID)

	for _, item := range catalog.Range(items, a.Start, a.Count) {
		if !catalog.Unlocked(item, premiumUser) {
			if err := bh.sender.SendMessage(ctx, chatID, messages.ItemLocked(item.Title)); err != nil {
				log.Printf("Error sending lock notice for %q: %v", item.Title, err)
			}
			continue
		}

		bh.sender.UploadAction(ctx, chatID)
		if err := bh.sender.SendDocument(ctx, chatID, item.FileID, messages.DocumentCaption(item)); err != nil {
			log.Printf("Error sending document %q: %v", item.Title, err)
			if err := bh.sender.SendMessage(ctx, chatID, messages.ItemSendFailed(item.Title)); err != nil {
				log.Printf("Error reporting failed delivery of %q: %v", item.Title, err)
			}
		}
	}
}
