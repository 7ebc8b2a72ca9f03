package accounts

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/gatepass/internal/common"
	"github.com/dmitrijs2005/gatepass/internal/models"
	"github.com/google/uuid"
)

// InMemoryRepository keeps accounts in a map and enforces the same unique
// constraints as the PostgreSQL schema.
type InMemoryRepository struct {
	mu       sync.RWMutex
	accounts map[string]models.Account
}

func NewInMemoryRepository(seed ...models.Account) *InMemoryRepository {
	r := &InMemoryRepository{accounts: make(map[string]models.Account, len(seed))}
	for _, a := range seed {
		if a.ID == "" {
			a.ID = uuid.NewString()
		}
		r.accounts[a.UserName] = a
	}
	return r
}

func (r *InMemoryRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[account.UserName]; ok {
		return nil, fmt.Errorf("%w: users_username_key", common.ErrorAlreadyExists)
	}
	if account.Role == models.RoleSuperAdmin && r.hasRole(models.RoleSuperAdmin) {
		return nil, fmt.Errorf("%w: users_single_superadmin", common.ErrorAlreadyExists)
	}

	account.ID = uuid.NewString()
	account.CreatedAt = time.Now().UTC()
	r.accounts[account.UserName] = *account

	return account, nil
}

func (r *InMemoryRepository) GetByUsername(ctx context.Context, userName string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.accounts[userName]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &a, nil
}

func (r *InMemoryRepository) ExistsByRole(ctx context.Context, role models.Role) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.hasRole(role), nil
}

// Len returns the number of stored accounts.
func (r *InMemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.accounts)
}

func (r *InMemoryRepository) hasRole(role models.Role) bool {
	for _, a := range r.accounts {
		if a.Role == role {
			return true
		}
	}
	return false
}
