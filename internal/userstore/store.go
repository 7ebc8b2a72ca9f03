// Package userstore exposes account lookups and account creation to the rest
// of gatepass, keeping password hashing behind the store boundary.
package userstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gatepass/internal/common"
	"github.com/dmitrijs2005/gatepass/internal/models"
	"github.com/dmitrijs2005/gatepass/internal/repositories/accounts"
)

// PasswordHasher derives the stored credential from a plaintext password.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// NewAccount is the attribute set accepted by CreateUser. Password is
// plaintext and is hashed before it reaches the repository.
type NewAccount struct {
	UserName    string
	Email       string
	Password    string
	Role        models.Role
	IsStaff     bool
	IsSuperuser bool
	IsApproved  bool
}

type Store struct {
	repo   accounts.Repository
	hasher PasswordHasher
}

func New(repo accounts.Repository, hasher PasswordHasher) *Store {
	return &Store{repo: repo, hasher: hasher}
}

// ExistsByUsername reports whether an account with exactly this username exists.
func (s *Store) ExistsByUsername(ctx context.Context, userName string) (bool, error) {
	_, err := s.repo.GetByUsername(ctx, userName)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("lookup by username: %w", err)
	}
	return true, nil
}

// ExistsByRole reports whether any account holds role.
func (s *Store) ExistsByRole(ctx context.Context, role models.Role) (bool, error) {
	ok, err := s.repo.ExistsByRole(ctx, role)
	if err != nil {
		return false, fmt.Errorf("lookup by role: %w", err)
	}
	return ok, nil
}

// CreateUser validates na, hashes its password and persists the account.
func (s *Store) CreateUser(ctx context.Context, na NewAccount) (*models.Account, error) {
	if strings.TrimSpace(na.UserName) == "" {
		return nil, fmt.Errorf("%w: username is required", common.ErrorValidation)
	}
	if !na.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", common.ErrorValidation, na.Role)
	}

	hash, err := s.hasher.Hash(na.Password)
	if err != nil {
		return nil, err
	}

	a, err := s.repo.Create(ctx, &models.Account{
		UserName:     na.UserName,
		Email:        na.Email,
		PasswordHash: hash,
		Role:         na.Role,
		IsStaff:      na.IsStaff,
		IsSuperuser:  na.IsSuperuser,
		IsApproved:   na.IsApproved,
	})
	if err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}
	return a, nil
}
