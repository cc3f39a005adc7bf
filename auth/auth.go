// Package auth implements the local account collaborator: signup,
// signin and the current-user lookup consumed by the app shell. The
// chat core does not depend on it.
package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"campuschat/storage"
)

// currentUserStateKey is the local_state blob holding the signed-in user id.
const currentUserStateKey = "auth.current_user"

var (
	// ErrInvalidCredentials is returned for a wrong email or password.
	ErrInvalidCredentials = errors.New("auth: invalid email or password")
	// ErrEmailTaken is returned when signing up an existing email.
	ErrEmailTaken = errors.New("auth: email already registered")
)

// User is an account record without credential material.
type User struct {
	ID       string
	Name     string
	Username string
	Email    string
	Campus   string
	Phone    string
}

// NewUser carries the signup form fields.
type NewUser struct {
	Name     string
	Email    string
	Username string
	Password string
	Campus   string
	Phone    string
}

// Service provides account operations over the local store.
type Service struct {
	store *storage.Store
}

// NewService creates an account service.
func NewService(store *storage.Store) *Service {
	return &Service{store: store}
}

// Signup registers a new account and signs it in.
func (s *Service) Signup(newUser NewUser) (*User, error) {
	name := strings.TrimSpace(newUser.Name)
	email := strings.ToLower(strings.TrimSpace(newUser.Email))
	username := strings.TrimSpace(newUser.Username)

	if name == "" || email == "" || username == "" {
		return nil, errors.New("auth: name, email and username are required")
	}
	if len(newUser.Password) < 8 {
		return nil, errors.New("auth: password must be at least 8 characters")
	}

	if _, err := s.store.GetAccountByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newUser.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := storage.Account{
		UserID:       uuid.NewString(),
		Name:         name,
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Campus:       strings.TrimSpace(newUser.Campus),
		Phone:        strings.TrimSpace(newUser.Phone),
	}
	if err := s.store.SaveAccount(account); err != nil {
		return nil, err
	}

	if err := s.store.PutState(currentUserStateKey, account.UserID); err != nil {
		return nil, err
	}

	return accountToUser(&account), nil
}

// Signin verifies credentials and marks the account as current.
func (s *Service) Signin(email, password string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	account, err := s.store.GetAccountByEmail(email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := s.store.TouchLastLogin(account.UserID); err != nil {
		return nil, err
	}
	if err := s.store.PutState(currentUserStateKey, account.UserID); err != nil {
		return nil, err
	}

	return accountToUser(account), nil
}

// Signout forgets the current user.
func (s *Service) Signout() error {
	return s.store.DeleteState(currentUserStateKey)
}

// CurrentUser returns the signed-in user record, or absent.
func (s *Service) CurrentUser() (*User, bool) {
	var userID string
	if err := s.store.GetState(currentUserStateKey, &userID); err != nil {
		return nil, false
	}

	account, err := s.store.GetAccountByID(userID)
	if err != nil {
		return nil, false
	}

	return accountToUser(account), true
}

func accountToUser(account *storage.Account) *User {
	return &User{
		ID:       account.UserID,
		Name:     account.Name,
		Username: account.Username,
		Email:    account.Email,
		Campus:   account.Campus,
		Phone:    account.Phone,
	}
}
