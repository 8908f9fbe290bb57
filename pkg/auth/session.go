package auth

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
	bolt "go.etcd.io/bbolt"

	"github.com/adfharrison1/stock-tracker/pkg/domain"
)

const sessionsBucket = "sessions"

// Session is an opaque server-side token bound to a user. Tokens are UUIDs;
// there is nothing to decode client-side, and deleting the record revokes the
// session immediately.
type Session struct {
	Token   string    `msgpack:"token"`
	Email   string    `msgpack:"email"`
	Expires time.Time `msgpack:"expires"`
}

// SessionStore persists sessions in bbolt with a TTL sweep.
type SessionStore struct {
	db  *bolt.DB
	ttl time.Duration

	wg       sync.WaitGroup
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewSessionStore creates the store and its bucket.
func NewSessionStore(db *bolt.DB, ttl time.Duration) (*SessionStore, error) {
	err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(sessionsBucket))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create sessions bucket: %w", err)
	}
	return &SessionStore{db: db, ttl: ttl, stopChan: make(chan struct{})}, nil
}

// Create issues a fresh session token for a user.
func (s *SessionStore) Create(email string) (*Session, error) {
	session := &Session{
		Token:   uuid.NewString(),
		Email:   email,
		Expires: time.Now().Add(s.ttl),
	}
	data, err := msgpack.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("failed to encode session: %w", err)
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(sessionsBucket)).Put([]byte(session.Token), data)
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

// Validate returns the session for a token if it exists and has not expired.
func (s *SessionStore) Validate(token string) (*Session, error) {
	var session *Session
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket([]byte(sessionsBucket)).Get([]byte(token))
		if data == nil {
			return domain.NotFoundf("Session not found.")
		}
		session = &Session{}
		return msgpack.Unmarshal(data, session)
	})
	if err != nil {
		return nil, err
	}
	if time.Now().After(session.Expires) {
		// Expired but not yet swept
		return nil, domain.NotFoundf("Session not found.")
	}
	return session, nil
}

// Delete revokes a session. Deleting an unknown token is a no-op.
func (s *SessionStore) Delete(token string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(sessionsBucket)).Delete([]byte(token))
	})
}

// StartSweeper launches a background worker that removes expired sessions.
func (s *SessionStore) StartSweeper(interval time.Duration) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := s.sweep(); err != nil {
					log.Printf("WARN: Session sweep failed: %v", err)
				}
			case <-s.stopChan:
				return
			}
		}
	}()
}

// StopSweeper stops the background worker.
func (s *SessionStore) StopSweeper() {
	s.stopOnce.Do(func() { close(s.stopChan) })
	s.wg.Wait()
}

func (s *SessionStore) sweep() error {
	now := time.Now()
	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(sessionsBucket))
		var expired [][]byte
		err := bucket.ForEach(func(k, v []byte) error {
			var session Session
			if err := msgpack.Unmarshal(v, &session); err != nil {
				expired = append(expired, append([]byte(nil), k...))
				return nil
			}
			if now.After(session.Expires) {
				expired = append(expired, append([]byte(nil), k...))
			}
			return nil
		})
		if err != nil {
			return err
		}
		for _, key := range expired {
			if err := bucket.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
}
