package user

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mayatech/storefront/core/claims"
	"github.com/mayatech/storefront/core/ids"
	"github.com/mayatech/storefront/core/order"
	"github.com/mayatech/storefront/storage"
)

// The one credential pair that yields the admin role at registration.
const (
	adminEmail    = "admin@mayatech.com"
	adminPassword = "admin"
)

const tokenPrefix = "mock-token-"

var (
	ErrEmailTaken      = errors.New("user with this email already exists")
	ErrAuthFailed      = errors.New("invalid email or password")
	ErrNotLoggedIn     = errors.New("no user is logged in")
	ErrAlreadyEnrolled = errors.New("already enrolled in this course")
)

// Store is the mock auth and order-history backend. Register and
// Authenticate carry an artificial latency standing in for a network round
// trip; everything else is a synchronous storage write.
type Store struct {
	storage storage.Store
	ids     *ids.Generator
	latency time.Duration

	mu      sync.Mutex
	current *User
	token   string
}

func NewStore(sto storage.Store, gen *ids.Generator, latency time.Duration) *Store {
	return &Store{storage: sto, ids: gen, latency: latency}
}

// Load restores the current-user snapshot and token from a previous session.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var u User
	err := s.storage.Get(storage.KeyCurrentUser, &u)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading current user: %w", err)
	}

	var tok string
	if err := s.storage.Get(storage.KeyAuthToken, &tok); err != nil && !errors.Is(err, storage.ErrKeyNotFound) {
		return fmt.Errorf("loading auth token: %w", err)
	}

	s.current, s.token = &u, tok
	return nil
}

func (s *Store) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return nil
	}
	select {
	case <-time.After(s.latency):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) users() ([]record, error) {
	var recs []record
	err := s.storage.Get(storage.KeyUsers, &recs)
	if err != nil && !errors.Is(err, storage.ErrKeyNotFound) {
		return nil, fmt.Errorf("loading users: %w", err)
	}
	return recs, nil
}

func (s *Store) saveUsers(recs []record) error {
	if err := s.storage.Set(storage.KeyUsers, recs); err != nil {
		return fmt.Errorf("persisting users: %w", err)
	}
	return nil
}

func (s *Store) setCurrent(u User, token string) error {
	s.current, s.token = &u, token
	if err := s.storage.Set(storage.KeyCurrentUser, u); err != nil {
		return fmt.Errorf("persisting current user: %w", err)
	}
	if err := s.storage.Set(storage.KeyAuthToken, token); err != nil {
		return fmt.Errorf("persisting auth token: %w", err)
	}
	return nil
}

// Register creates a user and logs it in. The admin role is granted only for
// the fixed credential pair; everyone else registers as a plain user.
func (s *Store) Register(ctx context.Context, email, password, name string) (User, string, error) {
	if err := s.wait(ctx); err != nil {
		return User{}, "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	recs, err := s.users()
	if err != nil {
		return User{}, "", err
	}

	for _, rec := range recs {
		if rec.Email == email {
			return User{}, "", ErrEmailTaken
		}
	}

	role := claims.RoleUser
	if email == adminEmail && password == adminPassword {
		role = claims.RoleAdmin
	}

	u := User{
		ID:                s.ids.Next(ids.PrefixUser),
		Email:             email,
		Name:              name,
		Role:              role,
		EnrolledCourseIDs: []string{},
		Orders:            []order.Order{},
	}

	if err := s.saveUsers(append(recs, record{User: u, Password: password})); err != nil {
		return User{}, "", err
	}

	token := tokenPrefix + u.ID
	if err := s.setCurrent(u, token); err != nil {
		return User{}, "", err
	}
	return u, token, nil
}

// Authenticate matches email and password exactly against the users list and
// returns the user with the password stripped.
func (s *Store) Authenticate(ctx context.Context, email, password string) (User, string, error) {
	if err := s.wait(ctx); err != nil {
		return User{}, "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	recs, err := s.users()
	if err != nil {
		return User{}, "", err
	}

	for _, rec := range recs {
		if rec.Email == email && rec.Password == password {
			token := tokenPrefix + rec.ID
			if err := s.setCurrent(rec.User, token); err != nil {
				return User{}, "", err
			}
			return rec.User, token, nil
		}
	}
	return User{}, "", ErrAuthFailed
}

func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current, s.token = nil, ""
	if err := s.storage.Delete(storage.KeyCurrentUser); err != nil {
		return fmt.Errorf("clearing current user: %w", err)
	}
	if err := s.storage.Delete(storage.KeyAuthToken); err != nil {
		return fmt.Errorf("clearing auth token: %w", err)
	}
	return nil
}

func (s *Store) Current() (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return User{}, ErrNotLoggedIn
	}
	return *s.current, nil
}

// ByID returns a user from the backing list, password stripped.
func (s *Store) ByID(id string) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs, err := s.users()
	if err != nil {
		return User{}, err
	}
	for _, rec := range recs {
		if rec.ID == id {
			return rec.User, nil
		}
	}
	return User{}, ErrNotLoggedIn
}

// mutateCurrent applies fn to the session copy and the backing record, then
// persists both.
func (s *Store) mutateCurrent(fn func(*User)) (User, error) {
	if s.current == nil {
		return User{}, ErrNotLoggedIn
	}

	fn(s.current)

	recs, err := s.users()
	if err != nil {
		return User{}, err
	}
	for i := range recs {
		if recs[i].ID == s.current.ID {
			recs[i].User = *s.current
			break
		}
	}
	if err := s.saveUsers(recs); err != nil {
		return User{}, err
	}

	if err := s.storage.Set(storage.KeyCurrentUser, *s.current); err != nil {
		return User{}, fmt.Errorf("persisting current user: %w", err)
	}
	return *s.current, nil
}

// EnrollInCourse is idempotent: enrolling twice leaves a single occurrence
// and reports ErrAlreadyEnrolled as an informational signal.
func (s *Store) EnrollInCourse(courseID string) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return User{}, ErrNotLoggedIn
	}
	for _, id := range s.current.EnrolledCourseIDs {
		if id == courseID {
			return *s.current, ErrAlreadyEnrolled
		}
	}

	return s.mutateCurrent(func(u *User) {
		u.EnrolledCourseIDs = append(u.EnrolledCourseIDs, courseID)
	})
}

// AddOrder appends an order to the current user's history.
func (s *Store) AddOrder(ord order.Order) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.mutateCurrent(func(u *User) {
		u.Orders = append(u.Orders, ord)
	})
}

// NextOrderID hands out order identifiers from the shared generator.
func (s *Store) NextOrderID() string {
	return s.ids.Next(ids.PrefixOrder)
}
