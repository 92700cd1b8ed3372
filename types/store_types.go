package types

import "time"

type UserStore interface {
	// CreateUser registers the user on first contact. Existing rows are
	// left untouched (the stored name is never updated).
	CreateUser(tgID int64, name string) error
	GetUser(tgID int64) (*User, error)

	// CheckPremium reports whether the user is premium right now. It may
	// write: a stored expiry that disagrees with the premium flag is
	// reconciled in place (lazy expiration).
	CheckPremium(tgID int64) (bool, error)

	// GrantPremium extends the subscription by months*30 days, counting
	// from the current expiry when it is still in the future, otherwise
	// from now. Returns the new expiry.
	GrantPremium(tgID int64, months int) (time.Time, error)
}

type CatalogStore interface {
	AddItem(item ContentItem) (int64, error)
	ListSubjects(grade, category string) ([]string, error)
	ListChapters(grade, category, subject string) ([]string, error)
	ListItems(grade, category, subject, chapter string) ([]ContentItem, error)
}

type RedemptionStore interface {
	AddRedemption(req RedemptionRequest) (int64, error)
}

type StatsStore interface {
	GetStats() (*Stats, error)
}
