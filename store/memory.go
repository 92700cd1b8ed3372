package store

import (
	"sort"
	"sync"
	"time"

	"github.com/priyansh563/studybot/internal/premium"
	"github.com/priyansh563/studybot/types"
)

// MemoryStore keeps everything in process memory behind one mutex. It
// backs tests and mirrors the Postgres store's semantics, including the
// lazy premium downgrade in CheckPremium.
type MemoryStore struct {
	mu          sync.Mutex
	users       map[int64]*types.User
	items       []types.ContentItem
	redemptions []types.RedemptionRequest
	nextID      int64

	// Now is the clock; tests override it.
	Now func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users: make(map[int64]*types.User),
		Now:   time.Now,
	}
}

func (s *MemoryStore) CreateUser(tgID int64, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[tgID]; ok {
		return nil
	}
	s.nextID++
	s.users[tgID] = &types.User{
		ID:         s.nextID,
		TelegramID: tgID,
		Name:       name,
		JoinedAt:   s.Now(),
	}
	return nil
}

func (s *MemoryStore) GetUser(tgID int64) (*types.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[tgID]
	if !ok {
		return nil, ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (s *MemoryStore) CheckPremium(tgID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[tgID]
	if !ok {
		return false, nil
	}
	active := premium.Active(s.Now(), u.IsPremium, u.PremiumExpiry)
	if u.PremiumExpiry != nil && active != u.IsPremium {
		u.IsPremium = active
	}
	return active, nil
}

func (s *MemoryStore) GrantPremium(tgID int64, months int) (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[tgID]
	if !ok {
		return time.Time{}, ErrUserNotFound
	}
	newExpiry := premium.NextExpiry(s.Now(), u.PremiumExpiry, months)
	u.IsPremium = true
	u.PremiumExpiry = &newExpiry
	return newExpiry, nil
}

func (s *MemoryStore) AddItem(item types.ContentItem) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	item.ID = s.nextID
	if item.CreatedAt.IsZero() {
		item.CreatedAt = s.Now()
	}
	s.items = append(s.items, item)
	return item.ID, nil
}

func (s *MemoryStore) ListSubjects(grade, category string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := map[string]bool{}
	var out []string
	for _, it := range s.items {
		if it.Grade == grade && it.Category == category && !seen[it.Subject] {
			seen[it.Subject] = true
			out = append(out, it.Subject)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (s *MemoryStore) ListChapters(grade, category, subject string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := map[string]bool{}
	var out []string
	for _, it := range s.items {
		if it.Grade == grade && it.Category == category && it.Subject == subject && !seen[it.Chapter] {
			seen[it.Chapter] = true
			out = append(out, it.Chapter)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (s *MemoryStore) ListItems(grade, category, subject, chapter string) ([]types.ContentItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []types.ContentItem
	for _, it := range s.items {
		if it.Grade == grade && it.Category == category && it.Subject == subject && it.Chapter == chapter {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *MemoryStore) AddRedemption(req types.RedemptionRequest) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	req.ID = s.nextID
	if req.CreatedAt.IsZero() {
		req.CreatedAt = s.Now()
	}
	s.redemptions = append(s.redemptions, req)
	return req.ID, nil
}

func (s *MemoryStore) Redemptions() []types.RedemptionRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.RedemptionRequest, len(s.redemptions))
	copy(out, s.redemptions)
	return out
}

func (s *MemoryStore) GetStats() (*types.Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := &types.Stats{
		Users:       int64(len(s.users)),
		Items:       int64(len(s.items)),
		Redemptions: int64(len(s.redemptions)),
	}
	now := s.Now()
	for _, u := range s.users {
		if u.PremiumExpiry != nil && u.PremiumExpiry.After(now) {
			st.PremiumNow++
		}
	}
	return st, nil
}
