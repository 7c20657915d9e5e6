package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/google/uuid"

	"library-backend/internal/config"
	"library-backend/internal/domains/identity/model"
	"library-backend/internal/shared/authz"
	"library-backend/pkg/jwt"
)

type fakeUserRepository struct {
	byEmail map[string]*model.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{byEmail: make(map[string]*model.User)}
}

func (r *fakeUserRepository) Create(_ context.Context, user *model.User) error {
	if _, ok := r.byEmail[user.Email]; ok {
		return model.ErrEmailAlreadyExists
	}
	user.ID = uuid.New()
	cp := *user
	r.byEmail[user.Email] = &cp
	return nil
}

func (r *fakeUserRepository) GetByEmail(_ context.Context, email string) (*model.User, error) {
	if u, ok := r.byEmail[email]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, model.ErrUserNotFound
}

func (r *fakeUserRepository) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, model.ErrUserNotFound
}

func (r *fakeUserRepository) SeedDefaults(_ context.Context, users []*model.User) error {
	for _, u := range users {
		if _, ok := r.byEmail[u.Email]; ok {
			continue
		}
		u.ID = uuid.New()
		cp := *u
		r.byEmail[u.Email] = &cp
	}
	return nil
}

var testSeed = config.SeedConfig{
	AdminEmail:    "admin@example.com",
	AdminPassword: "Password123!",
	UserEmail:     "user@example.com",
	UserPassword:  "Password1!",
}

func newTestService(repo *fakeUserRepository) ServiceInterface {
	return NewIdentityService(repo, jwt.NewManager("test-secret", 60), testSeed)
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := newFakeUserRepository()
	svc := newTestService(repo)

	resp, err := svc.Register(context.Background(), model.RegisterRequest{
		Email:    "reader@example.com",
		Password: "BooksAreGreat1",
	})

	require.NoError(t, err)
	assert.Equal(t, authz.RoleUser, resp.Role)

	stored := repo.byEmail["reader@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "BooksAreGreat1", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("BooksAreGreat1")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepository()
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), model.RegisterRequest{
		Email:    "reader@example.com",
		Password: "BooksAreGreat1",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), model.RegisterRequest{
		Email:    "reader@example.com",
		Password: "AnotherPass99",
	})
	assert.ErrorIs(t, err, model.ErrEmailAlreadyExists)
}

func TestRegisterValidation(t *testing.T) {
	svc := newTestService(newFakeUserRepository())

	_, err := svc.Register(context.Background(), model.RegisterRequest{
		Email:    "not-an-email",
		Password: "BooksAreGreat1",
	})
	assert.Error(t, err)

	_, err = svc.Register(context.Background(), model.RegisterRequest{
		Email:    "reader@example.com",
		Password: "short",
	})
	assert.Error(t, err)
}

func TestLoginReturnsValidToken(t *testing.T) {
	repo := newFakeUserRepository()
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), model.RegisterRequest{
		Email:    "reader@example.com",
		Password: "BooksAreGreat1",
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), model.LoginRequest{
		Email:    "reader@example.com",
		Password: "BooksAreGreat1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	claims, err := jwt.NewManager("test-secret", 60).ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "reader@example.com", claims.Email)
	assert.Equal(t, string(authz.RoleUser), claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepository()
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), model.RegisterRequest{
		Email:    "reader@example.com",
		Password: "BooksAreGreat1",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), model.LoginRequest{
		Email:    "reader@example.com",
		Password: "WrongPassword1",
	})
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestService(newFakeUserRepository())

	_, err := svc.Login(context.Background(), model.LoginRequest{
		Email:    "ghost@example.com",
		Password: "Whatever123",
	})

	// Unknown email and wrong password must be indistinguishable.
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestSeedIsIdempotent(t *testing.T) {
	repo := newFakeUserRepository()
	svc := newTestService(repo)

	require.NoError(t, svc.Seed(context.Background()))
	adminID := repo.byEmail[testSeed.AdminEmail].ID

	require.NoError(t, svc.Seed(context.Background()))

	assert.Len(t, repo.byEmail, 2)
	assert.Equal(t, adminID, repo.byEmail[testSeed.AdminEmail].ID, "reseeding must not replace accounts")
	assert.Equal(t, authz.RoleAdmin, repo.byEmail[testSeed.AdminEmail].Role)
	assert.Equal(t, authz.RoleUser, repo.byEmail[testSeed.UserEmail].Role)
}

func TestSeededAccountsCanLogIn(t *testing.T) {
	repo := newFakeUserRepository()
	svc := newTestService(repo)
	require.NoError(t, svc.Seed(context.Background()))

	resp, err := svc.Login(context.Background(), model.LoginRequest{
		Email:    testSeed.AdminEmail,
		Password: testSeed.AdminPassword,
	})
	require.NoError(t, err)
	assert.Equal(t, authz.RoleAdmin, resp.User.Role)
}
