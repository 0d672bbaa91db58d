// Package service holds the account flows sitting between the HTTP
// handlers and the store: registration and credential verification.
package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/novareservas/reservation-api/internal/auth"
	"github.com/novareservas/reservation-api/internal/httperr"
	"github.com/novareservas/reservation-api/internal/models"
)

type AccountService struct {
	db     *gorm.DB
	tokens *auth.TokenService
}

func NewAccountService(db *gorm.DB, tokens *auth.TokenService) *AccountService {
	return &AccountService{db: db, tokens: tokens}
}

// Register creates a client account with a hashed password. The email
// pre-check is advisory; the unique index on clients.email is the
// authoritative guard, so a check-then-insert race still fails cleanly
// with ErrDuplicateEmail instead of producing two rows.
func (s *AccountService) Register(
	ctx context.Context,
	name string,
	email string,
	password string,
) (uint, error) {

	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	switch {
	case name == "":
		return 0, httperr.Validation("name is required")
	case email == "":
		return 0, httperr.Validation("email is required")
	case password == "":
		return 0, httperr.Validation("password is required")
	}

	var count int64
	if err := s.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return 0, httperr.Store(err)
	}
	if count > 0 {
		return 0, httperr.ErrDuplicateEmail
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return 0, err
	}

	client := models.Client{
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
	}

	if err := s.db.WithContext(ctx).Create(&client).Error; err != nil {
		if isUniqueViolation(err) {
			return 0, httperr.ErrDuplicateEmail
		}
		return 0, httperr.Store(err)
	}

	return client.ID, nil
}

// Authenticate verifies the credentials and returns a bearer token
// bound to the client's id and email. Unknown email and wrong password
// stay distinguishable; surfacing policy lives in the error mapping.
func (s *AccountService) Authenticate(
	ctx context.Context,
	email string,
	password string,
) (string, error) {

	email = strings.ToLower(strings.TrimSpace(email))

	var client models.Client
	if err := s.db.WithContext(ctx).
		Where("email = ?", email).
		First(&client).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", httperr.ErrClientNotFound
		}
		return "", httperr.Store(err)
	}

	if !auth.VerifyPassword(password, client.PasswordHash) {
		return "", httperr.ErrInvalidCredentials
	}

	return s.tokens.Issue(auth.Identity{
		ClientID: client.ID,
		Email:    client.Email,
	})
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// glebarez/sqlite surfaces constraint failures as plain errors.
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
