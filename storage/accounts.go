package storage

import (
	"database/sql"
	"errors"
	"fmt"
)

// Account is the SQLite representation of a locally registered user.
type Account struct {
	UserID       string
	Name         string
	Username     string
	Email        string
	PasswordHash string
	Campus       string
	Phone        string
	CreatedAt    int64
	LastLoginAt  *int64
}

// SaveAccount inserts a new account row.
func (s *Store) SaveAccount(account Account) error {
	if account.UserID == "" {
		return errors.New("user_id is required")
	}
	if account.Email == "" {
		return errors.New("email is required")
	}
	if account.Username == "" {
		return errors.New("username is required")
	}
	if account.PasswordHash == "" {
		return errors.New("password_hash is required")
	}
	if account.CreatedAt == 0 {
		account.CreatedAt = nowUnixMilli()
	}

	_, err := s.db.Exec(
		`INSERT INTO accounts (
			user_id,
			name,
			username,
			email,
			password_hash,
			campus,
			phone,
			created_at,
			last_login_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		account.UserID,
		account.Name,
		account.Username,
		account.Email,
		account.PasswordHash,
		account.Campus,
		account.Phone,
		account.CreatedAt,
		nullInt64(account.LastLoginAt),
	)
	if err != nil {
		return fmt.Errorf("insert account %q: %w", account.Email, err)
	}

	return nil
}

// GetAccountByEmail fetches one account by email.
func (s *Store) GetAccountByEmail(email string) (*Account, error) {
	if email == "" {
		return nil, errors.New("email is required")
	}

	row := s.db.QueryRow(
		`SELECT
			user_id,
			name,
			username,
			email,
			password_hash,
			campus,
			phone,
			created_at,
			last_login_at
		FROM accounts
		WHERE email = ?`,
		email,
	)

	var (
		account     Account
		lastLoginAt sql.NullInt64
	)
	if err := row.Scan(
		&account.UserID,
		&account.Name,
		&account.Username,
		&account.Email,
		&account.PasswordHash,
		&account.Campus,
		&account.Phone,
		&account.CreatedAt,
		&lastLoginAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get account %q: %w", email, err)
	}
	account.LastLoginAt = int64Ptr(lastLoginAt)

	return &account, nil
}

// GetAccountByID fetches one account by user ID.
func (s *Store) GetAccountByID(userID string) (*Account, error) {
	if userID == "" {
		return nil, errors.New("user_id is required")
	}

	row := s.db.QueryRow(
		`SELECT
			user_id,
			name,
			username,
			email,
			password_hash,
			campus,
			phone,
			created_at,
			last_login_at
		FROM accounts
		WHERE user_id = ?`,
		userID,
	)

	var (
		account     Account
		lastLoginAt sql.NullInt64
	)
	if err := row.Scan(
		&account.UserID,
		&account.Name,
		&account.Username,
		&account.Email,
		&account.PasswordHash,
		&account.Campus,
		&account.Phone,
		&account.CreatedAt,
		&lastLoginAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get account %q: %w", userID, err)
	}
	account.LastLoginAt = int64Ptr(lastLoginAt)

	return &account, nil
}

// TouchLastLogin records a successful sign-in time for an account.
func (s *Store) TouchLastLogin(userID string) error {
	if userID == "" {
		return errors.New("user_id is required")
	}

	res, err := s.db.Exec(
		`UPDATE accounts SET last_login_at = ? WHERE user_id = ?`,
		nowUnixMilli(),
		userID,
	)
	if err != nil {
		return fmt.Errorf("touch last login for %q: %w", userID, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected for touch last login %q: %w", userID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
