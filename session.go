package freelance

import (
	"errors"
	"fmt"
	"log"
)

// ErrIncorrectPassword is returned by Login when the username exists and the
// password does not match.
var ErrIncorrectPassword = errors.New("incorrect password")

// ErrNotLoggedIn is returned by operations that need an active session.
var ErrNotLoggedIn = errors.New("not logged in")

// Session resolves who the current user is and keeps that user's book in
// memory, synchronized with the store.
//
// There is no expiry and no token: the session is re-established from the
// current-user marker until an explicit logout.
type Session struct {
	store Store
	user  string
	book  *Book
}

// NewSession creates a session over the given store, with nobody logged in.
func NewSession(store Store) *Session {
	return &Session{store: store, book: NewBook()}
}

// User returns the logged-in username, or "" when logged out.
func (s *Session) User() string { return s.user }

// Book returns the current user's in-memory collections. Mutations must go
// through Mutate so they are persisted.
func (s *Session) Book() *Book { return s.book }

// Login authenticates against the user registry. An unknown username is
// registered with the given password and logged in (open registration);
// created reports when that happened. A known username must match its
// password exactly or the login fails with ErrIncorrectPassword.
//
// On success the current-user marker is written and the user's data blob
// replaces the in-memory collections.
func (s *Session) Login(username, password string) (created bool, err error) {
	registry := s.loadRegistry()
	stored, known := registry[username]
	switch {
	case !known:
		registry[username] = password
		data, err := EncodeRegistry(registry)
		if err != nil {
			return false, err
		}
		if err := s.store.Set(KeyUsers, data); err != nil {
			return false, fmt.Errorf("registering %q: %w", username, err)
		}
		created = true
	case stored != password:
		return false, ErrIncorrectPassword
	}

	if err := s.store.Set(KeyCurrentUser, []byte(username)); err != nil {
		return created, fmt.Errorf("logging in %q: %w", username, err)
	}
	s.user = username
	s.book = s.loadBook(username)
	return created, nil
}

// Resume re-establishes the session from the current-user marker, without
// credentials. It reports false when nobody is logged in.
func (s *Session) Resume() (bool, error) {
	value, found, err := s.store.Get(KeyCurrentUser)
	if err != nil {
		return false, fmt.Errorf("resuming session: %w", err)
	}
	if !found || len(value) == 0 {
		return false, nil
	}
	s.user = string(value)
	s.book = s.loadBook(s.user)
	return true, nil
}

// Logout clears the current-user marker and the in-memory collections. The
// stored data blob is left untouched.
func (s *Session) Logout() error {
	if err := s.store.Delete(KeyCurrentUser); err != nil {
		return fmt.Errorf("logging out: %w", err)
	}
	s.user = ""
	s.book = NewBook()
	return nil
}

// Save rewrites the current user's whole data blob to the store.
func (s *Session) Save() error {
	if s.user == "" {
		return ErrNotLoggedIn
	}
	data, err := EncodeBook(s.book)
	if err != nil {
		return err
	}
	if err := s.store.Set(UserDataKey(s.user), data); err != nil {
		return fmt.Errorf("saving data for %q: %w", s.user, err)
	}
	return nil
}

// Mutate applies one mutation to the book and persists the result. When the
// write fails, the in-memory book is restored to its pre-mutation state and
// the error is returned, so the caller can surface it.
func (s *Session) Mutate(fn func(*Book) error) error {
	if s.user == "" {
		return ErrNotLoggedIn
	}
	snapshot := s.book.clone()
	if err := fn(s.book); err != nil {
		s.book = snapshot
		return err
	}
	if err := s.Save(); err != nil {
		s.book = snapshot
		return fmt.Errorf("%w (change discarded)", err)
	}
	return nil
}

// loadRegistry reads the user registry, substituting an empty one for a
// missing or malformed value.
func (s *Session) loadRegistry() Registry {
	value, found, err := s.store.Get(KeyUsers)
	if err != nil || !found {
		if err != nil {
			log.Printf("warning: cannot read user registry, starting empty: %v", err)
		}
		return make(Registry)
	}
	registry, err := DecodeRegistry(value)
	if err != nil {
		log.Printf("warning: malformed user registry, starting empty: %v", err)
		return make(Registry)
	}
	return registry
}

// loadBook reads a user's data blob, substituting an empty book for a
// missing or malformed value. Never a fatal error: the most permissive
// default wins.
func (s *Session) loadBook(username string) *Book {
	value, found, err := s.store.Get(UserDataKey(username))
	if err != nil || !found {
		if err != nil {
			log.Printf("warning: cannot read data for %q, starting empty: %v", username, err)
		}
		return NewBook()
	}
	book, err := DecodeBook(value)
	if err != nil {
		log.Printf("warning: malformed data for %q, starting empty: %v", username, err)
		return NewBook()
	}
	return book
}
