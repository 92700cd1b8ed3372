package catalog

import "github.com/priyansh563/studybot/types"

// Unlocked reports whether the user may receive the item. Premium items
// are still listed for everyone; this gate decides marking and, separately,
// actual delivery.
func Unlocked(item types.ContentItem, premiumUser bool) bool {
	return premiumUser || !item.Premium
}
