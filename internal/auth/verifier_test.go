package auth

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"dealership_backend/internal/common"
	"dealership_backend/internal/platform/crypto"
	"dealership_backend/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type MockCredentialSource struct {
	mock.Mock
}

func (m *MockCredentialSource) Credentials(ctx context.Context) (user.CredentialReader, error) {
	args := m.Called(ctx)
	r, _ := args.Get(0).(user.CredentialReader)
	return r, args.Error(1)
}

type MockCredentialReader struct {
	mock.Mock
}

func (m *MockCredentialReader) FindCredentialByEmail(ctx context.Context, email string) (*user.Credential, error) {
	args := m.Called(ctx, email)
	c, _ := args.Get(0).(*user.Credential)
	return c, args.Error(1)
}

type panickingReader struct{}

func (panickingReader) FindCredentialByEmail(context.Context, string) (*user.Credential, error) {
	panic("driver exploded")
}

const adminID = "65a1f0c2e4b0a1b2c3d4e5f6"

func storedAdmin(t *testing.T, password string) *user.Credential {
	t.Helper()
	hash, err := crypto.HashPassword(password)
	require.NoError(t, err)
	cred := &user.Credential{PasswordHash: hash}
	cred.ID = adminID
	cred.Name = "Ada Admin"
	cred.Email = "ada@example.com"
	cred.Role = common.RoleAdmin
	return cred
}

func newObservedVerifier(source CredentialSource) (*Verifier, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.InfoLevel)
	return NewVerifier(source, zap.New(core)), logs
}

func sourceWith(reader user.CredentialReader) *MockCredentialSource {
	source := new(MockCredentialSource)
	source.On("Credentials", mock.Anything).Return(reader, nil)
	return source
}

func TestVerify_Success(t *testing.T) {
	reader := new(MockCredentialReader)
	reader.On("FindCredentialByEmail", mock.Anything, "ada@example.com").Return(storedAdmin(t, "correct-horse"), nil)
	v, logs := newObservedVerifier(sourceWith(reader))

	result := v.Verify(context.Background(), "  ADA@Example.com ", "correct-horse")

	id, ok := result.Identity()
	require.True(t, ok)
	assert.True(t, result.IsAuthenticated())
	assert.Equal(t, Identity{ID: adminID, Name: "Ada Admin", Email: "ada@example.com"}, id)
	assert.Zero(t, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
	reader.AssertExpectations(t)
}

func TestVerify_IdentityCarriesOnlyPublicFields(t *testing.T) {
	reader := new(MockCredentialReader)
	reader.On("FindCredentialByEmail", mock.Anything, mock.Anything).Return(storedAdmin(t, "correct-horse"), nil)
	v, _ := newObservedVerifier(sourceWith(reader))

	id, ok := v.Verify(context.Background(), "ada@example.com", "correct-horse").Identity()
	require.True(t, ok)

	raw, err := json.Marshal(id)
	require.NoError(t, err)
	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.ElementsMatch(t, []string{"id", "name", "email"}, keys(fields))
}

func TestVerify_UnknownAndWrongPasswordAreIndistinguishable(t *testing.T) {
	reader := new(MockCredentialReader)
	reader.On("FindCredentialByEmail", mock.Anything, "ghost@example.com").Return(nil, common.ErrNotFound.WithDetails("User not found."))
	reader.On("FindCredentialByEmail", mock.Anything, "ada@example.com").Return(storedAdmin(t, "correct-horse"), nil)
	v, logs := newObservedVerifier(sourceWith(reader))

	unknown := v.Verify(context.Background(), "ghost@example.com", "whatever-pass")
	wrong := v.Verify(context.Background(), "ada@example.com", "wrong-horse")

	assert.False(t, unknown.IsAuthenticated())
	assert.False(t, wrong.IsAuthenticated())
	assert.Equal(t, unknown, wrong)
	assert.Equal(t, Unauthenticated(), wrong)
	assert.Zero(t, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}

func TestVerify_UnknownAccountStillComparesHash(t *testing.T) {
	reader := new(MockCredentialReader)
	reader.On("FindCredentialByEmail", mock.Anything, "ghost@example.com").Return(nil, common.ErrNotFound)
	v, _ := newObservedVerifier(sourceWith(reader))

	var compared []string
	v.compare = func(hash, password string) (bool, error) {
		compared = append(compared, password)
		ok, err := crypto.ComparePassword(hash, password)
		require.NoError(t, err, "dummy hash must be a usable bcrypt hash")
		return ok, err
	}

	result := v.Verify(context.Background(), "ghost@example.com", "whatever-pass")

	assert.False(t, result.IsAuthenticated())
	assert.Equal(t, []string{"whatever-pass"}, compared)
}

func TestVerify_ConnectionFaultIsLogged(t *testing.T) {
	source := new(MockCredentialSource)
	source.On("Credentials", mock.Anything).Return(nil, errors.New("dial tcp 10.0.0.5:5432: connection refused"))
	v, logs := newObservedVerifier(source)

	result := v.Verify(context.Background(), "ada@example.com", "correct-horse")

	assert.Equal(t, Unauthenticated(), result)
	errorsLogged := logs.FilterLevelExact(zapcore.ErrorLevel).All()
	require.Len(t, errorsLogged, 1)
	assert.Equal(t, "Credential store unavailable", errorsLogged[0].Message)
	assert.Contains(t, errorsLogged[0].ContextMap()["error"], "connection refused")
}

func TestVerify_LookupFaultIsLogged(t *testing.T) {
	reader := new(MockCredentialReader)
	reader.On("FindCredentialByEmail", mock.Anything, mock.Anything).Return(nil, errors.New("query timeout"))
	v, logs := newObservedVerifier(sourceWith(reader))

	result := v.Verify(context.Background(), "ada@example.com", "correct-horse")

	assert.False(t, result.IsAuthenticated())
	assert.Equal(t, 1, logs.FilterMessage("Credential lookup failed").Len())
}

func TestVerify_MalformedHashIsLogged(t *testing.T) {
	cred := storedAdmin(t, "correct-horse")
	cred.PasswordHash = "not-a-bcrypt-hash"
	reader := new(MockCredentialReader)
	reader.On("FindCredentialByEmail", mock.Anything, mock.Anything).Return(cred, nil)
	v, logs := newObservedVerifier(sourceWith(reader))

	result := v.Verify(context.Background(), "ada@example.com", "correct-horse")

	assert.False(t, result.IsAuthenticated())
	assert.Equal(t, 1, logs.FilterMessage("Stored password hash is unusable").Len())
}

func TestVerify_PanicIsRecovered(t *testing.T) {
	v, logs := newObservedVerifier(sourceWith(panickingReader{}))

	var result Result
	require.NotPanics(t, func() {
		result = v.Verify(context.Background(), "ada@example.com", "correct-horse")
	})
	assert.False(t, result.IsAuthenticated())
	assert.Equal(t, 1, logs.FilterMessage("Credential verification panicked").Len())
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
