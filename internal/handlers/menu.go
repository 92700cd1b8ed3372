package handlers

import (
	"strings"

	"github.com/go-telegram/bot/models"

	"github.com/priyansh563/studybot/internal/catalog"
	"github.com/priyansh563/studybot/internal/messages"
	"github.com/priyansh563/studybot/internal/nav"
	"github.com/priyansh563/studybot/internal/pricing"
)

func pad(s string) string { return " " + s + " " }

func button(text string, action nav.Action) models.InlineKeyboardButton {
	return models.InlineKeyboardButton{
		Text:         pad(text),
		CallbackData: action.Encode(),
	}
}

func (bh *Handlers) homeView() (string, models.InlineKeyboardMarkup) {
	rows := make([][]models.InlineKeyboardButton, 0, len(catalog.Grades)+1)
	for _, grade := range catalog.Grades {
		rows = append(rows, []models.InlineKeyboardButton{
			button("Class "+grade, nav.Class{Grade: grade}),
		})
	}
	rows = append(rows, []models.InlineKeyboardButton{
		button(messages.BtnBuyPremium(), nav.Buy{}),
	})
	return messages.HomeTitle(), models.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func (bh *Handlers) categoriesView(grade string) (string, models.InlineKeyboardMarkup) {
	rows := make([][]models.InlineKeyboardButton, 0, len(catalog.Categories)+1)
	for _, category := range catalog.Categories {
		rows = append(rows, []models.InlineKeyboardButton{
			button(category, nav.Category{Grade: grade, Category: category}),
		})
	}
	rows = append(rows, []models.InlineKeyboardButton{
		button(messages.BtnBack(), nav.Home{}),
	})
	return messages.CategoriesTitle(grade), models.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func (bh *Handlers) subjectsView(grade, category string) (string, models.InlineKeyboardMarkup, error) {
	subjects, err := bh.catalog.ListSubjects(grade, category)
	if err != nil {
		return "", models.InlineKeyboardMarkup{}, err
	}
	subjects = catalog.OrFallback(subjects, catalog.FallbackSubjects)

	rows := make([][]models.InlineKeyboardButton, 0, len(subjects)+1)
	for _, subject := range subjects {
		rows = append(rows, []models.InlineKeyboardButton{
			button(subject, nav.Subject{Grade: grade, Category: category, Subject: subject}),
		})
	}
	rows = append(rows, []models.InlineKeyboardButton{
		button(messages.BtnBack(), nav.Class{Grade: grade}),
	})
	return messages.SubjectsTitle(grade, category), models.InlineKeyboardMarkup{InlineKeyboard: rows}, nil
}

func (bh *Handlers) chaptersView(grade, category, subject string) (string, models.InlineKeyboardMarkup, error) {
	chapters, err := bh.catalog.ListChapters(grade, category, subject)
	if err != nil {
		return "", models.InlineKeyboardMarkup{}, err
	}
	chapters = catalog.OrFallback(chapters, catalog.FallbackChapters)

	rows := make([][]models.InlineKeyboardButton, 0, len(chapters)+1)
	for _, chapter := range chapters {
		rows = append(rows, []models.InlineKeyboardButton{
			button(chapter, nav.Chapter{Grade: grade, Category: category, Subject: subject, Chapter: chapter}),
		})
	}
	rows = append(rows, []models.InlineKeyboardButton{
		button(messages.BtnBack(), nav.Category{Grade: grade, Category: category}),
	})
	return messages.ChaptersTitle(grade, category, subject), models.InlineKeyboardMarkup{InlineKeyboard: rows}, nil
}

// itemsView renders one page of the item list. The lock marks reflect the
// caller's premium state at render time; delivery re-checks it anyway.
func (bh *Handlers) itemsView(userID int64, grade, category, subject, chapter string, page int) (string, models.InlineKeyboardMarkup, error) {
	items, err := bh.catalog.ListItems(grade, category, subject, chapter)
	if err != nil {
		return "", models.InlineKeyboardMarkup{}, err
	}
	premiumUser := bh.checkPremium(userID)

	if page < 0 {
		page = 0
	}
	visible, hasPrev, hasNext := catalog.Page(items, page)
	start := page * catalog.PageSize

	var text strings.Builder
	text.WriteString(messages.ItemsHeader(grade, category, subject, chapter))

	rows := make([][]models.InlineKeyboardButton, 0, 4)

	if len(visible) == 0 {
		text.WriteString(messages.NoItems())
		rows = append(rows, []models.InlineKeyboardButton{
			button(messages.BtnBack(), nav.Subject{Grade: grade, Category: category, Subject: subject}),
		})
		return text.String(), models.InlineKeyboardMarkup{InlineKeyboard: rows}, nil
	}

	for i, item := range visible {
		text.WriteString(messages.ItemLine(start+i+1, item.Title, catalog.Unlocked(item, premiumUser)))
	}

	navRow := make([]models.InlineKeyboardButton, 0, 2)
	if hasPrev {
		navRow = append(navRow, button(messages.BtnPrev(), nav.Page{Grade: grade, Category: category, Subject: subject, Chapter: chapter, Index: page - 1}))
	}
	if hasNext {
		navRow = append(navRow, button(messages.BtnNext(), nav.Page{Grade: grade, Category: category, Subject: subject, Chapter: chapter, Index: page + 1}))
	}
	if len(navRow) > 0 {
		rows = append(rows, navRow)
	}

	rows = append(rows, []models.InlineKeyboardButton{
		button(messages.BtnSendRange(start+1, start+len(visible)), nav.SendRange{Grade: grade, Category: category, Subject: subject, Chapter: chapter, Start: start, Count: len(visible)}),
	})
	rows = append(rows, []models.InlineKeyboardButton{
		button(messages.BtnBack(), nav.Subject{Grade: grade, Category: category, Subject: subject}),
	})
	if !premiumUser {
		rows = append(rows, []models.InlineKeyboardButton{
			button(messages.BtnBuyPremium(), nav.Buy{}),
		})
	}

	return text.String(), models.InlineKeyboardMarkup{InlineKeyboard: rows}, nil
}

func (bh *Handlers) buyView() (string, models.InlineKeyboardMarkup) {
	if !bh.provider.PlanSelection() {
		rows := [][]models.InlineKeyboardButton{
			{button(messages.BtnBack(), nav.Home{})},
		}
		return bh.provider.BuyText(), models.InlineKeyboardMarkup{InlineKeyboard: rows}
	}

	plans := pricing.All()
	rows := make([][]models.InlineKeyboardButton, 0, len(plans)+2)
	for _, p := range plans {
		rows = append(rows, []models.InlineKeyboardButton{
			button(p.Label, nav.Plan{Key: p.Key}),
		})
	}
	rows = append(rows, []models.InlineKeyboardButton{
		button(messages.BtnRedeem(), nav.Redeem{}),
	})
	rows = append(rows, []models.InlineKeyboardButton{
		button(messages.BtnBack(), nav.Home{}),
	})
	return bh.provider.BuyText(), models.InlineKeyboardMarkup{InlineKeyboard: rows}
}
