package premium

import "time"

// Month is the fixed subscription month used for expiry math. Plans are
// sold in 30-day blocks, not calendar months.
const Month = 30 * 24 * time.Hour

// NextExpiry computes the expiry after granting months of premium.
// Extensions are additive: an unexpired subscription is extended from its
// current expiry, so renewing early never loses time. An expired or absent
// expiry starts fresh from now.
func NextExpiry(now time.Time, current *time.Time, months int) time.Time {
	start := now
	if current != nil && current.After(now) {
		start = *current
	}
	return start.Add(time.Duration(months) * Month)
}

// Active reports whether a user with the given stored flag and expiry is
// premium at the given instant. Without an expiry the stored flag is the
// only truth; with one, the flag is just a cache of this comparison.
func Active(now time.Time, flag bool, expiry *time.Time) bool {
	if expiry == nil {
		return flag
	}
	return expiry.After(now)
}
