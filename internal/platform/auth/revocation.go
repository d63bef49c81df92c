package auth

import (
	"sync"
	"time"
)

type revocationEntry struct {
	ExpiresAt time.Time
	AccountID string
}

// RevocationList tracks signed-out session tokens in memory until
// they would have expired anyway. Safe for concurrent use.
type RevocationList struct {
	mu          sync.RWMutex
	entries     map[string]revocationEntry // JTI -> entry
	accountJTIs map[string][]string        // accountID -> []JTI
	done        chan struct{}
}

// NewRevocationList creates a list and starts a background goroutine
// that drops expired entries every 5 minutes.
func NewRevocationList() *RevocationList {
	l := &RevocationList{
		entries:     make(map[string]revocationEntry),
		accountJTIs: make(map[string][]string),
		done:        make(chan struct{}),
	}
	go l.cleanupLoop()
	return l
}

// Revoke records a session token's JTI. Once the token's natural
// expiry passes the entry is dropped; an expired token is rejected by
// signature validation regardless.
func (l *RevocationList) Revoke(jti, accountID string, expiresAt time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries[jti] = revocationEntry{ExpiresAt: expiresAt, AccountID: accountID}
	if accountID != "" {
		l.accountJTIs[accountID] = append(l.accountJTIs[accountID], jti)
	}
}

// Track remembers which account a freshly issued JTI belongs to so a
// later RevokeAllForAccount can find it. The token stays valid.
func (l *RevocationList) Track(jti, accountID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.accountJTIs[accountID] = append(l.accountJTIs[accountID], jti)
}

func (l *RevocationList) IsRevoked(jti string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	_, ok := l.entries[jti]
	return ok
}

// RevokeAllForAccount invalidates every tracked session for an
// account. A password reset calls this so old sessions stop working.
// Sessions issued before this process started are not tracked and
// cannot be invalidated here.
func (l *RevocationList) RevokeAllForAccount(accountID string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	jtis := l.accountJTIs[accountID]
	until := time.Now().Add(24 * time.Hour)
	for _, jti := range jtis {
		l.entries[jti] = revocationEntry{ExpiresAt: until, AccountID: accountID}
	}
	return len(jtis)
}

// Close stops the cleanup goroutine. Safe to call more than once.
func (l *RevocationList) Close() {
	select {
	case <-l.done:
	default:
		close(l.done)
	}
}

func (l *RevocationList) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-l.done:
			return
		case <-ticker.C:
			l.cleanup()
		}
	}
}

func (l *RevocationList) cleanup() {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	for jti, entry := range l.entries {
		if now.After(entry.ExpiresAt) {
			delete(l.entries, jti)

			if entry.AccountID != "" {
				jtis := l.accountJTIs[entry.AccountID]
				for i, id := range jtis {
					if id == jti {
						l.accountJTIs[entry.AccountID] = append(jtis[:i], jtis[i+1:]...)
						break
					}
				}
				if len(l.accountJTIs[entry.AccountID]) == 0 {
					delete(l.accountJTIs, entry.AccountID)
				}
			}
		}
	}
}
