package auth

import (
	"sync"
	"time"

	"github.com/go-webauthn/webauthn/webauthn"
)

// ChallengeStore keeps the WebAuthn session data issued between the begin and
// finish halves of a ceremony. It is an explicit process-scoped object handed
// to the service at construction, with entries expiring after a TTL.
type ChallengeStore struct {
	mu      sync.Mutex
	entries map[string]challengeEntry
	ttl     time.Duration

	wg       sync.WaitGroup
	stopChan chan struct{}
	stopOnce sync.Once
}

type challengeEntry struct {
	session *webauthn.SessionData
	expires time.Time
}

// NewChallengeStore creates a challenge store whose entries expire after ttl.
func NewChallengeStore(ttl time.Duration) *ChallengeStore {
	return &ChallengeStore{
		entries:  make(map[string]challengeEntry),
		ttl:      ttl,
		stopChan: make(chan struct{}),
	}
}

// Put stores the pending session data for an email, replacing any previous
// challenge for the same email.
func (c *ChallengeStore) Put(email string, session *webauthn.SessionData) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[email] = challengeEntry{session: session, expires: time.Now().Add(c.ttl)}
}

// Take removes and returns the pending session data for an email. The second
// return is false when no live challenge exists.
func (c *ChallengeStore) Take(email string) (*webauthn.SessionData, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[email]
	if !ok {
		return nil, false
	}
	delete(c.entries, email)
	if time.Now().After(entry.expires) {
		return nil, false
	}
	return entry.session, true
}

// StartSweeper launches a background worker that drops expired challenges.
func (c *ChallengeStore) StartSweeper(interval time.Duration) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.sweep()
			case <-c.stopChan:
				return
			}
		}
	}()
}

// StopSweeper stops the background worker.
func (c *ChallengeStore) StopSweeper() {
	c.stopOnce.Do(func() { close(c.stopChan) })
	c.wg.Wait()
}

func (c *ChallengeStore) sweep() {
	now := time.Now()
	c.mu.Lock()
	defer c.mu.Unlock()
	for email, entry := range c.entries {
		if now.After(entry.expires) {
			delete(c.entries, email)
		}
	}
}
