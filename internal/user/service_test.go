package user

import (
	"context"
	"errors"
	"testing"

	"dealership_backend/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockUserRepository is a testify mock of Repository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, credential *Credential) error {
	args := m.Called(ctx, credential)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*User)
	return u, args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*User)
	return u, args.Error(1)
}

func (m *MockUserRepository) FindCredentialByEmail(ctx context.Context, email string) (*Credential, error) {
	args := m.Called(ctx, email)
	c, _ := args.Get(0).(*Credential)
	return c, args.Error(1)
}

func TestService_CreateAdminHashesPassword(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo, zap.NewNop())

	var stored *Credential
	repo.On("Create", mock.Anything, mock.AnythingOfType("*user.Credential")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*Credential) }).
		Return(nil)

	u, err := svc.CreateAdmin(context.Background(), " Ada ", "ada@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "Ada", u.Name)
	assert.Equal(t, common.RoleAdmin, u.Role)

	require.NotNil(t, stored)
	assert.NotEqual(t, "s3cret-pass", stored.PasswordHash)
	ok, err := stored.ComparePassword("s3cret-pass")
	require.NoError(t, err)
	assert.True(t, ok)
	repo.AssertExpectations(t)
}

func TestService_CreateAdminPassesThroughConflict(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo, zap.NewNop())
	repo.On("Create", mock.Anything, mock.Anything).Return(common.ErrConflict.WithDetails("dup"))

	_, err := svc.CreateAdmin(context.Background(), "Ada", "ada@example.com", "s3cret-pass")
	assert.ErrorIs(t, err, common.ErrConflict)
}

func TestService_CreateAdminWrapsStoreErrors(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo, zap.NewNop())
	boom := errors.New("disk full")
	repo.On("Create", mock.Anything, mock.Anything).Return(boom)

	_, err := svc.CreateAdmin(context.Background(), "Ada", "ada@example.com", "s3cret-pass")
	assert.ErrorIs(t, err, boom)
}

func TestService_CreateAdminRequiresName(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo, zap.NewNop())

	_, err := svc.CreateAdmin(context.Background(), "   ", "ada@example.com", "s3cret-pass")
	assert.ErrorIs(t, err, common.ErrBadRequest)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_GetUserByIDRejectsMalformedID(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo, zap.NewNop())

	_, err := svc.GetUserByID(context.Background(), "not-an-id")
	assert.ErrorIs(t, err, common.ErrNotFound)
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}
