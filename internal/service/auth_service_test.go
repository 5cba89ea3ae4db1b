package service

import (
	"context"
	"testing"
	"time"

	"fittrack/fitness-tracker/internal/domain"
	"fittrack/fitness-tracker/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeUserRepo struct {
	byEmail map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) (primitive.ObjectID, error) {
	if _, exists := f.byEmail[user.Email]; exists {
		return primitive.NilObjectID, repository.ErrDuplicate
	}
	user.ID = primitive.NewObjectID()
	stored := *user
	f.byEmail[user.Email] = &stored
	return user.ID, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	u := *user
	return &u, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			user := *u
			return &user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), "test-secret", time.Hour)

	user, err := svc.Register(context.Background(), "Jamie", "jamie@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.False(t, user.ID.IsZero())
	assert.Empty(t, user.PasswordHash)

	token, loggedIn, err := svc.Login(context.Background(), "jamie@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.Empty(t, loggedIn.PasswordHash)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), "test-secret", time.Hour)

	_, err := svc.Register(context.Background(), "Jamie", "jamie@example.com", "s3cret-pass")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "Other", "jamie@example.com", "another-pass")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestAuthService_LoginFailures(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), "test-secret", time.Hour)

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)

	_, err = svc.Register(context.Background(), "Jamie", "jamie@example.com", "s3cret-pass")
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), "jamie@example.com", "wrong-pass")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}
