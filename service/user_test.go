package service

import (
	"errors"
	"net/http/httptest"
	"testing"

	"pagegen/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserStore struct {
	users     map[string]*model.User
	createErr error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*model.User)}
}

func (f *fakeUserStore) Create(user *model.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserStore) GetByEmail(email string) (*model.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserStore) EmailTaken(email string) (bool, error) {
	_, ok := f.users[email]
	return ok, nil
}

func newUserService(store UserStore) *UserService {
	return NewUserService(store, NewTokenService("test-secret"))
}

func TestRegisterHashesPassword(t *testing.T) {
	store := newFakeUserStore()
	svc := newUserService(store)

	id, err := svc.Register("Alice", "alice@example.com", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	stored := store.users["alice@example.com"]
	require.NotNil(t, stored)
	assert.Equal(t, id, stored.ID)
	assert.NotEqual(t, "hunter22", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("hunter22")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := newFakeUserStore()
	svc := newUserService(store)

	_, err := svc.Register("Alice", "alice@example.com", "hunter22")
	require.NoError(t, err)

	_, err = svc.Register("Imposter", "alice@example.com", "other-pass")
	require.ErrorIs(t, err, ErrEmailTaken)
	assert.Len(t, store.users, 1)
	assert.Equal(t, "Alice", store.users["alice@example.com"].Name)
}

func TestRegisterRejectsMalformedEmail(t *testing.T) {
	svc := newUserService(newFakeUserStore())

	_, err := svc.Register("Bob", "not-an-email", "hunter22")
	require.ErrorIs(t, err, ErrInvalidEmail)
}

func TestLoginIssuesTokenWithUserId(t *testing.T) {
	store := newFakeUserStore()
	tokens := NewTokenService("test-secret")
	svc := NewUserService(store, tokens)

	id, err := svc.Register("Alice", "alice@example.com", "hunter22")
	require.NoError(t, err)

	result, err := svc.Login("alice@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, id, result.UserID)
	require.NotEmpty(t, result.AccessToken)

	// the session payload must carry the stored user's id
	r := httptest.NewRequest("GET", "/api/auth/session", nil)
	r.Header.Set("Authorization", "Bearer "+result.AccessToken)
	details, err := tokens.ExtractTokenMetadata(r)
	require.NoError(t, err)
	assert.Equal(t, id, details.UserID)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	store := newFakeUserStore()
	svc := newUserService(store)

	_, err := svc.Register("Alice", "alice@example.com", "hunter22")
	require.NoError(t, err)

	_, wrongPass := svc.Login("alice@example.com", "wrong")
	_, unknown := svc.Login("nobody@example.com", "hunter22")

	require.ErrorIs(t, wrongPass, ErrInvalidCredentials)
	require.ErrorIs(t, unknown, ErrInvalidCredentials)
	assert.Equal(t, wrongPass.Error(), unknown.Error())
}

func TestRegisterStoreFailure(t *testing.T) {
	store := newFakeUserStore()
	store.createErr = errors.New("connection reset")
	svc := newUserService(store)

	_, err := svc.Register("Alice", "alice@example.com", "hunter22")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmailTaken)
}
