package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/priyansh563/studybot/types"
)

func makeItems(n int) []types.ContentItem {
	items := make([]types.ContentItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, types.ContentItem{ID: int64(i + 1), Title: fmt.Sprintf("Item %d", i+1)})
	}
	return items
}

func TestPageExactFit(t *testing.T) {
	items := makeItems(PageSize)

	visible, hasPrev, hasNext := Page(items, 0)

	assert.Len(t, visible, PageSize)
	assert.False(t, hasPrev)
	assert.False(t, hasNext)
}

func TestPageOverflowByOne(t *testing.T) {
	items := makeItems(PageSize + 1)

	visible, hasPrev, hasNext := Page(items, 0)
	assert.Len(t, visible, PageSize)
	assert.False(t, hasPrev)
	assert.True(t, hasNext)

	visible, hasPrev, hasNext = Page(items, 1)
	assert.Len(t, visible, 1)
	assert.Equal(t, int64(PageSize+1), visible[0].ID)
	assert.True(t, hasPrev)
	assert.False(t, hasNext)
}

func TestPageOutOfRange(t *testing.T) {
	items := makeItems(3)

	visible, hasPrev, hasNext := Page(items, 5)

	assert.Empty(t, visible)
	assert.True(t, hasPrev)
	assert.False(t, hasNext)
}

func TestPageEmptyList(t *testing.T) {
	visible, hasPrev, hasNext := Page(nil, 0)

	assert.Empty(t, visible)
	assert.False(t, hasPrev)
	assert.False(t, hasNext)
}

func TestRangeClamps(t *testing.T) {
	items := makeItems(10)

	assert.Len(t, Range(items, 8, 8), 2)
	assert.Len(t, Range(items, 0, 8), 8)
	assert.Empty(t, Range(items, 20, 8))
	assert.Empty(t, Range(items, -1, 8))
	assert.Empty(t, Range(items, 0, 0))
}

func TestUnlocked(t *testing.T) {
	free := types.ContentItem{Premium: false}
	paid := types.ContentItem{Premium: true}

	assert.True(t, Unlocked(free, false))
	assert.True(t, Unlocked(free, true))
	assert.False(t, Unlocked(paid, false))
	assert.True(t, Unlocked(paid, true))
}

func TestOrFallback(t *testing.T) {
	assert.Equal(t, FallbackSubjects, OrFallback(nil, FallbackSubjects))
	assert.Equal(t, []string{"Maths"}, OrFallback([]string{"Maths"}, FallbackSubjects))
}
