// Package accounts persists user accounts.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/gatepass/internal/models"
)

// Repository is the account record store.
//
// GetByUsername returns common.ErrorNotFound when no account matches.
// Create returns common.ErrorAlreadyExists when a unique constraint rejects
// the record (duplicate username or a second privileged account).
type Repository interface {
	Create(ctx context.Context, account *models.Account) (*models.Account, error)
	GetByUsername(ctx context.Context, userName string) (*models.Account, error)
	ExistsByRole(ctx context.Context, role models.Role) (bool, error)
}
