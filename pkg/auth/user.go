// Package auth implements passwordless authentication: WebAuthn registration
// and sign-in (delegated to github.com/go-webauthn/webauthn), user records and
// opaque session tokens persisted in bbolt, and explicit process-scoped
// challenge state instead of package-level globals.
package auth

import (
	"fmt"

	"github.com/go-webauthn/webauthn/webauthn"
	"github.com/vmihailenco/msgpack/v5"
	bolt "go.etcd.io/bbolt"

	"github.com/adfharrison1/stock-tracker/pkg/domain"
)

const usersBucket = "users"

// User is an account identified by email, holding the WebAuthn credentials
// registered for it.
type User struct {
	Email       string                `json:"email" msgpack:"email"`
	Name        string                `json:"name" msgpack:"name"`
	Credentials []webauthn.Credential `json:"-" msgpack:"credentials"`
}

// WebAuthnID implements webauthn.User.
func (u *User) WebAuthnID() []byte { return []byte(u.Email) }

// WebAuthnName implements webauthn.User.
func (u *User) WebAuthnName() string { return u.Email }

// WebAuthnDisplayName implements webauthn.User.
func (u *User) WebAuthnDisplayName() string { return u.Name }

// WebAuthnCredentials implements webauthn.User.
func (u *User) WebAuthnCredentials() []webauthn.Credential { return u.Credentials }

// WebAuthnIcon implements webauthn.User.
func (u *User) WebAuthnIcon() string { return "" }

// UserStore persists users in their own bbolt bucket, beside the stocks.
type UserStore struct {
	db *bolt.DB
}

// NewUserStore creates the store and its bucket.
func NewUserStore(db *bolt.DB) (*UserStore, error) {
	err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(usersBucket))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create users bucket: %w", err)
	}
	return &UserStore{db: db}, nil
}

// Get fetches a user by email.
func (s *UserStore) Get(email string) (*User, error) {
	var user *User
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket([]byte(usersBucket)).Get([]byte(email))
		if data == nil {
			return domain.NotFoundf("User %s not found.", email)
		}
		user = &User{}
		return msgpack.Unmarshal(data, user)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Put creates or overwrites a user record.
func (s *UserStore) Put(user *User) error {
	data, err := msgpack.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user %s: %w", user.Email, err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(usersBucket)).Put([]byte(user.Email), data)
	})
}
