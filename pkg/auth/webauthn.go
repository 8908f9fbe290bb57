package auth

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-webauthn/webauthn/protocol"
	"github.com/go-webauthn/webauthn/webauthn"

	"github.com/adfharrison1/stock-tracker/pkg/domain"
)

// Config carries the relying-party settings for WebAuthn ceremonies.
type Config struct {
	RPDisplayName string
	RPID          string
	RPOrigins     []string
}

// Service runs the WebAuthn registration and sign-in ceremonies. Protocol
// correctness is delegated entirely to the webauthn library; this type only
// wires it to the user, challenge and session stores.
type Service struct {
	webAuthn   *webauthn.WebAuthn
	users      *UserStore
	challenges *ChallengeStore
	sessions   *SessionStore
}

// NewService creates the auth service.
func NewService(cfg Config, users *UserStore, challenges *ChallengeStore, sessions *SessionStore) (*Service, error) {
	webAuthn, err := webauthn.New(&webauthn.Config{
		RPDisplayName: cfg.RPDisplayName,
		RPID:          cfg.RPID,
		RPOrigins:     cfg.RPOrigins,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to configure webauthn: %w", err)
	}
	return &Service{
		webAuthn:   webAuthn,
		users:      users,
		challenges: challenges,
		sessions:   sessions,
	}, nil
}

// Sessions exposes the session store for middleware validation.
func (s *Service) Sessions() *SessionStore { return s.sessions }

// BeginRegistration starts a registration ceremony for an email. A user that
// already owns credentials cannot be re-registered.
func (s *Service) BeginRegistration(email, name string) (*protocol.CredentialCreation, error) {
	user, err := s.users.Get(email)
	if err != nil {
		if !domain.IsNotFound(err) {
			return nil, err
		}
		user = &User{Email: email, Name: name}
	}
	if len(user.Credentials) > 0 {
		return nil, domain.BadRequestf("User %s is already registered.", email)
	}
	user.Name = name

	creation, session, err := s.webAuthn.BeginRegistration(user)
	if err != nil {
		return nil, fmt.Errorf("failed to begin registration: %w", err)
	}

	if err := s.users.Put(user); err != nil {
		return nil, err
	}
	s.challenges.Put(email, session)
	return creation, nil
}

// FinishRegistration completes the ceremony with the authenticator response
// carried in the request body and stores the new credential.
func (s *Service) FinishRegistration(email string, r *http.Request) error {
	user, err := s.users.Get(email)
	if err != nil {
		return err
	}
	session, ok := s.challenges.Take(email)
	if !ok {
		return domain.BadRequestf("No pending registration challenge for %s.", email)
	}

	credential, err := s.webAuthn.FinishRegistration(user, *session, r)
	if err != nil {
		return domain.BadRequestf("Registration failed: %v", err)
	}

	user.Credentials = append(user.Credentials, *credential)
	if err := s.users.Put(user); err != nil {
		return err
	}
	log.Printf("INFO: Registered credential for user %s", email)
	return nil
}

// BeginLogin starts a sign-in ceremony for a registered user.
func (s *Service) BeginLogin(email string) (*protocol.CredentialAssertion, error) {
	user, err := s.users.Get(email)
	if err != nil {
		return nil, err
	}
	if len(user.Credentials) == 0 {
		return nil, domain.NotFoundf("User %s has no registered credentials.", email)
	}

	assertion, session, err := s.webAuthn.BeginLogin(user)
	if err != nil {
		return nil, fmt.Errorf("failed to begin login: %w", err)
	}
	s.challenges.Put(email, session)
	return assertion, nil
}

// FinishLogin completes the sign-in ceremony and issues a session token.
func (s *Service) FinishLogin(email string, r *http.Request) (*Session, error) {
	user, err := s.users.Get(email)
	if err != nil {
		return nil, err
	}
	session, ok := s.challenges.Take(email)
	if !ok {
		return nil, domain.BadRequestf("No pending sign-in challenge for %s.", email)
	}

	if _, err := s.webAuthn.FinishLogin(user, *session, r); err != nil {
		return nil, domain.BadRequestf("Sign-in failed: %v", err)
	}

	authSession, err := s.sessions.Create(email)
	if err != nil {
		return nil, err
	}
	log.Printf("INFO: User %s signed in", email)
	return authSession, nil
}
