package types

import "time"

type User struct {
	ID            int64
	TelegramID    int64
	Name          string
	IsPremium     bool
	PremiumExpiry *time.Time
	JoinedAt      time.Time
}

type ContentItem struct {
	ID        int64
	Grade     string
	Category  string
	Subject   string
	Chapter   string
	Title     string
	FileID    string
	Premium   bool
	CreatedAt time.Time
}

type RedemptionRequest struct {
	ID         int64
	Ref        string
	TelegramID int64
	TxnID      string
	Plan       string
	CreatedAt  time.Time
}

// Quiz is persisted but has no behavior yet; only the schema and counts
// are wired up.
type Quiz struct {
	ID           int64
	Grade        string
	Subject      string
	Chapter      string
	Question     string
	Options      [4]string
	CorrectIndex int
	Premium      bool
	CreatedAt    time.Time
}

type Stats struct {
	Users       int64
	PremiumNow  int64
	Items       int64
	Redemptions int64
	Quizzes     int64
}
