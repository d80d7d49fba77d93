package repositories

import "github.com/vsinha/pos/pkg/domain/entities"

// SessionStore holds the bearer token and the accounts that have signed in on
// this device. It is passed to whatever needs it rather than read from a global.
type SessionStore interface {
	Token() string
	SetToken(token string)
	Clear()

	CachedAccounts() []entities.Account
	// CacheAccount inserts or replaces an account by ID.
	CacheAccount(account entities.Account)
	RemoveAccount(id entities.RecordID)
}
