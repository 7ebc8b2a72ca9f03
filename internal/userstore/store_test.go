package userstore

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/gatepass/internal/common"
	"github.com/dmitrijs2005/gatepass/internal/models"
	"github.com/dmitrijs2005/gatepass/internal/passwords"
	"github.com/dmitrijs2005/gatepass/internal/repositories/accounts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

type failingRepo struct {
	getErr    error
	existsErr error
	createErr error
}

func (f *failingRepo) Create(context.Context, *models.Account) (*models.Account, error) {
	return nil, f.createErr
}
func (f *failingRepo) GetByUsername(context.Context, string) (*models.Account, error) {
	return nil, f.getErr
}
func (f *failingRepo) ExistsByRole(context.Context, models.Role) (bool, error) {
	return false, f.existsErr
}

func newStore(repo accounts.Repository) *Store {
	return New(repo, passwords.NewHasher(bcrypt.MinCost))
}

func TestExistsByUsername(t *testing.T) {
	s := newStore(accounts.NewInMemoryRepository(models.Account{UserName: "admin", Role: models.RoleStudent}))

	ok, err := s.ExistsByUsername(context.Background(), "admin")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.ExistsByUsername(context.Background(), "Admin")
	require.NoError(t, err)
	assert.False(t, ok, "lookup is exact")
}

func TestExistsByUsername_RepoError(t *testing.T) {
	s := newStore(&failingRepo{getErr: errBoom{}})

	_, err := s.ExistsByUsername(context.Background(), "admin")
	require.ErrorIs(t, err, errBoom{})
	assert.Contains(t, err.Error(), "lookup by username")
}

func TestExistsByRole(t *testing.T) {
	s := newStore(accounts.NewInMemoryRepository(models.Account{UserName: "root", Role: models.RoleSuperAdmin}))

	ok, err := s.ExistsByRole(context.Background(), models.RoleSuperAdmin)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = newStore(&failingRepo{existsErr: errBoom{}}).ExistsByRole(context.Background(), models.RoleSuperAdmin)
	require.ErrorIs(t, err, errBoom{})
}

func TestCreateUser_HashesPassword(t *testing.T) {
	repo := accounts.NewInMemoryRepository()
	s := newStore(repo)

	a, err := s.CreateUser(context.Background(), NewAccount{
		UserName:    "admin",
		Email:       "admin@hostel.com",
		Password:    "admin123",
		Role:        models.RoleSuperAdmin,
		IsStaff:     true,
		IsSuperuser: true,
		IsApproved:  true,
	})
	require.NoError(t, err)

	stored, err := repo.GetByUsername(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, a.ID, stored.ID)
	assert.NotEqual(t, "admin123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("admin123")))
	assert.Equal(t, models.RoleSuperAdmin, stored.Role)
	assert.True(t, stored.IsStaff && stored.IsSuperuser && stored.IsApproved)
}

func TestCreateUser_Validation(t *testing.T) {
	s := newStore(accounts.NewInMemoryRepository())

	_, err := s.CreateUser(context.Background(), NewAccount{UserName: " ", Password: "x", Role: models.RoleSuperAdmin})
	require.ErrorIs(t, err, common.ErrorValidation)

	_, err = s.CreateUser(context.Background(), NewAccount{UserName: "a", Password: "x", Role: "root"})
	require.ErrorIs(t, err, common.ErrorValidation)
}

func TestCreateUser_RepoError(t *testing.T) {
	s := newStore(&failingRepo{createErr: common.ErrorAlreadyExists})

	_, err := s.CreateUser(context.Background(), NewAccount{UserName: "a", Password: "x", Role: models.RoleStudent})
	require.True(t, errors.Is(err, common.ErrorAlreadyExists))
	assert.Contains(t, err.Error(), "create account")
}
