package catalog

import "github.com/priyansh563/studybot/types"

// PageSize is the number of items shown per list page.
const PageSize = 8

// Page slices items for the given zero-based page. An out-of-range page
// yields an empty slice, never an error, so a stale button click after a
// deletion still renders.
func Page(items []types.ContentItem, page int) (visible []types.ContentItem, hasPrev, hasNext bool) {
	if page < 0 {
		page = 0
	}
	start := page * PageSize
	end := start + PageSize
	if start >= len(items) {
		return nil, start > 0, false
	}
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], start > 0, start+PageSize < len(items)
}

// Range clamps [start, start+count) to the item list.
func Range(items []types.ContentItem, start, count int) []types.ContentItem {
	if start < 0 || count <= 0 || start >= len(items) {
		return nil
	}
	end := start + count
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
