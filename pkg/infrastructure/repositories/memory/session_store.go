package memory

import (
	"sync"

	"github.com/vsinha/pos/pkg/domain/entities"
	"github.com/vsinha/pos/pkg/domain/repositories"
)

// SessionStore keeps the bearer token and cached accounts for one process
type SessionStore struct {
	mu       sync.RWMutex
	token    string
	accounts []entities.Account
}

// NewSessionStore creates an empty session
func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// Verify interface compliance
var _ repositories.SessionStore = (*SessionStore)(nil)

func (s *SessionStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *SessionStore) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Clear drops the token. Cached accounts survive so they can be offered at the next login.
func (s *SessionStore) Clear() {
	s.SetToken("")
}

func (s *SessionStore) CachedAccounts() []entities.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()

	accounts := make([]entities.Account, len(s.accounts))
	copy(accounts, s.accounts)
	return accounts
}

// CacheAccount inserts the account or overlays its non-empty fields on the cached one
func (s *SessionStore) CacheAccount(account entities.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.accounts {
		if s.accounts[i].ID != account.ID {
			continue
		}
		existing := &s.accounts[i]
		if account.Username != "" {
			existing.Username = account.Username
		}
		if account.Name != "" {
			existing.Name = account.Name
		}
		if account.Email != "" {
			existing.Email = account.Email
		}
		if account.Role != "" {
			existing.Role = account.Role
		}
		return
	}
	s.accounts = append(s.accounts, account)
}

func (s *SessionStore) RemoveAccount(id entities.RecordID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.accounts[:0]
	for _, a := range s.accounts {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	s.accounts = kept
}
