package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priyansh563/studybot/internal/catalog"
	"github.com/priyansh563/studybot/internal/config"
	"github.com/priyansh563/studybot/internal/payment"
	"github.com/priyansh563/studybot/store"
)

func TestItemsViewEmptyChapter(t *testing.T) {
	s := store.NewMemoryStore()
	require.NoError(t, s.CreateUser(1, "Asha"))
	h := newTestHandlers(s, &fakeTransport{})

	text, keyboard, err := h.itemsView(1, "9", "PYQ", "Maths", "Chapter 1", 0)
	require.NoError(t, err)

	assert.Contains(t, text, "No items yet.")
	require.Len(t, keyboard.InlineKeyboard, 1, "empty page offers only the back button")
	require.Len(t, keyboard.InlineKeyboard[0], 1)
	assert.Equal(t, "sub|9|PYQ|Maths", keyboard.InlineKeyboard[0][0].CallbackData)
}

func TestItemsViewAnnotatesLocks(t *testing.T) {
	s := store.NewMemoryStore()
	require.NoError(t, s.CreateUser(1, "Asha"))
	seedChapter(t, s, 2, map[int]bool{2: true})
	h := newTestHandlers(s, &fakeTransport{})

	text, _, err := h.itemsView(1, "9", "PYQ", "Maths", "Chapter 1", 0)
	require.NoError(t, err)

	assert.Contains(t, text, "1. Item 1 🔓")
	assert.Contains(t, text, "2. Item 2 🔒 Premium")
}

func TestItemsViewPagination(t *testing.T) {
	s := store.NewMemoryStore()
	require.NoError(t, s.CreateUser(1, "Asha"))
	seedChapter(t, s, catalog.PageSize+1, nil)
	h := newTestHandlers(s, &fakeTransport{})

	_, keyboard, err := h.itemsView(1, "9", "PYQ", "Maths", "Chapter 1", 0)
	require.NoError(t, err)

	navRow := keyboard.InlineKeyboard[0]
	require.Len(t, navRow, 1, "first page has next only")
	assert.Equal(t, "page|9|PYQ|Maths|Chapter 1|1", navRow[0].CallbackData)

	text, keyboard, err := h.itemsView(1, "9", "PYQ", "Maths", "Chapter 1", 1)
	require.NoError(t, err)

	assert.Contains(t, text, "9. Item 9")
	navRow = keyboard.InlineKeyboard[0]
	require.Len(t, navRow, 1, "last page has prev only")
	assert.Equal(t, "page|9|PYQ|Maths|Chapter 1|0", navRow[0].CallbackData)

	var sendRange string
	for _, row := range keyboard.InlineKeyboard {
		for _, btn := range row {
			if len(btn.CallbackData) > 9 && btn.CallbackData[:9] == "sendrange" {
				sendRange = btn.CallbackData
			}
		}
	}
	assert.Equal(t, "sendrange|9|PYQ|Maths|Chapter 1|8|1", sendRange)
}

func TestSubjectsViewFallback(t *testing.T) {
	s := store.NewMemoryStore()
	h := newTestHandlers(s, &fakeTransport{})

	_, keyboard, err := h.subjectsView("9", "PYQ")
	require.NoError(t, err)

	// Seven canonical subjects plus the back row.
	require.Len(t, keyboard.InlineKeyboard, len(catalog.FallbackSubjects)+1)
	assert.Equal(t, "sub|9|PYQ|Maths", keyboard.InlineKeyboard[0][0].CallbackData)
}

func TestSubjectsViewUsesCatalog(t *testing.T) {
	s := store.NewMemoryStore()
	seedChapter(t, s, 1, nil)
	h := newTestHandlers(s, &fakeTransport{})

	_, keyboard, err := h.subjectsView("9", "PYQ")
	require.NoError(t, err)

	require.Len(t, keyboard.InlineKeyboard, 2)
	assert.Equal(t, "sub|9|PYQ|Maths", keyboard.InlineKeyboard[0][0].CallbackData)
}

func TestChaptersViewFallback(t *testing.T) {
	s := store.NewMemoryStore()
	h := newTestHandlers(s, &fakeTransport{})

	_, keyboard, err := h.chaptersView("9", "PYQ", "Maths")
	require.NoError(t, err)

	require.Len(t, keyboard.InlineKeyboard, len(catalog.FallbackChapters)+1)
	assert.Equal(t, "chap|9|PYQ|Maths|Chapter 1", keyboard.InlineKeyboard[0][0].CallbackData)
}

func TestBuyViewManualProvider(t *testing.T) {
	s := store.NewMemoryStore()
	h := newTestHandlers(s, &fakeTransport{})

	text, keyboard := h.buyView()

	assert.Contains(t, text, "Premium Plans")
	assert.Contains(t, text, "test@upi")
	require.Len(t, keyboard.InlineKeyboard, 1, "manual flow has no plan buttons")
}

func TestBuyViewGatewayProvider(t *testing.T) {
	s := store.NewMemoryStore()
	h := NewHandlers(s, s, s, nil, payment.Gateway{Name: "Razorpay"}, &config.Config{}, &fakeTransport{})

	text, keyboard := h.buyView()

	assert.Equal(t, "Choose Premium plan:", text)
	require.Len(t, keyboard.InlineKeyboard, 5, "three plans, redeem, back")
	assert.Equal(t, "plan|1m", keyboard.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "plan|12m", keyboard.InlineKeyboard[2][0].CallbackData)
	assert.Equal(t, "redeem", keyboard.InlineKeyboard[3][0].CallbackData)
}

func TestHomeViewListsGrades(t *testing.T) {
	s := store.NewMemoryStore()
	h := newTestHandlers(s, &fakeTransport{})

	_, keyboard := h.homeView()

	require.Len(t, keyboard.InlineKeyboard, len(catalog.Grades)+1)
	assert.Equal(t, "class|9", keyboard.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "buy", keyboard.InlineKeyboard[len(catalog.Grades)][0].CallbackData)
}
