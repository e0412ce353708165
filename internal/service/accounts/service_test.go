package accounts

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RSV-ReservationService/internal/domain"
	userRepo "github.com/m04kA/RSV-ReservationService/internal/infra/storage/user"
	"github.com/m04kA/RSV-ReservationService/internal/infra/tokenstore"
	"github.com/m04kA/RSV-ReservationService/internal/service/accounts/models"
)

type fakeUserRepo struct {
	users  map[int64]*domain.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*domain.User{}, nextID: 1}
}

func (f *fakeUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return nil, userRepo.ErrDuplicateEmail
		}
	}
	created := *u
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	f.nextID++
	f.users[created.ID] = &created
	return &created, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, userRepo.ErrUserNotFound
}

func (f *fakeUserRepo) MarkVerified(_ context.Context, id int64) error {
	u, ok := f.users[id]
	if !ok {
		return userRepo.ErrUserNotFound
	}
	u.Verified = true
	return nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id int64, hash string) error {
	u, ok := f.users[id]
	if !ok {
		return userRepo.ErrUserNotFound
	}
	now := time.Now()
	u.PasswordHash = hash
	u.PasswordChangedAt = &now
	return nil
}

func (f *fakeUserRepo) UpdateEmail(_ context.Context, id int64, email string) error {
	u, ok := f.users[id]
	if !ok {
		return userRepo.ErrUserNotFound
	}
	for otherID, other := range f.users {
		if otherID != id && other.Email == email {
			return userRepo.ErrDuplicateEmail
		}
	}
	u.Email = email
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return userRepo.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

type fakeTokenStore struct {
	tokens map[string]int64
	nextID int
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: map[string]int64{}}
}

func (f *fakeTokenStore) Issue(_ context.Context, purpose tokenstore.Purpose, userID int64) (string, error) {
	f.nextID++
	token := fmt.Sprintf("%s-%d", purpose, f.nextID)
	f.tokens[string(purpose)+":"+token] = userID
	return token, nil
}

func (f *fakeTokenStore) Consume(_ context.Context, purpose tokenstore.Purpose, token string) (int64, error) {
	key := string(purpose) + ":" + token
	userID, ok := f.tokens[key]
	if !ok {
		return 0, tokenstore.ErrTokenNotFound
	}
	delete(f.tokens, key)
	return userID, nil
}

type fakeMailer struct {
	verifications map[string]string // email -> token
	resets        map[string]string
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{verifications: map[string]string{}, resets: map[string]string{}}
}

func (f *fakeMailer) SendVerification(to, token string) error {
	f.verifications[to] = token
	return nil
}

func (f *fakeMailer) SendPasswordReset(to, token string) error {
	f.resets[to] = token
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	svc    *Service
	repo   *fakeUserRepo
	mailer *fakeMailer
}

func newFixture() *fixture {
	repo := newFakeUserRepo()
	mailer := newFakeMailer()
	svc := NewService(repo, newFakeTokenStore(), mailer, "test-secret", time.Hour, nopLogger{})
	return &fixture{svc: svc, repo: repo, mailer: mailer}
}

func TestSignupVerifyLogin(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()

	user, err := fx.svc.Signup(ctx, &models.SignupRequest{
		Email:    "owner@example.com",
		Password: "correct horse",
		Role:     "owner",
	})
	require.NoError(t, err)
	assert.False(t, user.Verified)

	// login before verification is refused
	_, err = fx.svc.Login(ctx, &models.LoginRequest{Email: "owner@example.com", Password: "correct horse"})
	assert.ErrorIs(t, err, ErrNotVerified)

	token, ok := fx.mailer.verifications["owner@example.com"]
	require.True(t, ok)
	require.NoError(t, fx.svc.VerifyEmail(ctx, token))

	resp, err := fx.svc.Login(ctx, &models.LoginRequest{Email: "owner@example.com", Password: "correct horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "owner", resp.User.Role)

	// the issued JWT authenticates back to the same account
	authed, err := fx.svc.Authenticate(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, authed.ID)
}

func TestSignup_Validation(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()

	_, err := fx.svc.Signup(ctx, &models.SignupRequest{Email: "a@b.c", Password: "longenough", Role: "superuser"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = fx.svc.Signup(ctx, &models.SignupRequest{Email: "a@b.c", Password: "short", Role: "admin"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()

	req := &models.SignupRequest{Email: "dup@example.com", Password: "correct horse", Role: "admin"}
	_, err := fx.svc.Signup(ctx, req)
	require.NoError(t, err)

	_, err = fx.svc.Signup(ctx, req)
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestVerifyEmail_InvalidToken(t *testing.T) {
	fx := newFixture()
	assert.ErrorIs(t, fx.svc.VerifyEmail(context.Background(), "nope"), ErrInvalidToken)
}

func TestLogin_WrongPassword(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()

	_, err := fx.svc.Signup(ctx, &models.SignupRequest{Email: "x@example.com", Password: "correct horse", Role: "admin"})
	require.NoError(t, err)

	_, err = fx.svc.Login(ctx, &models.LoginRequest{Email: "x@example.com", Password: "wrong horse"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = fx.svc.Login(ctx, &models.LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestForgotPassword_UnknownEmailIsSilent(t *testing.T) {
	fx := newFixture()
	assert.NoError(t, fx.svc.ForgotPassword(context.Background(), "ghost@example.com"))
	assert.Empty(t, fx.mailer.resets)
}

func TestPasswordResetFlow(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()

	user, err := fx.svc.Signup(ctx, &models.SignupRequest{Email: "r@example.com", Password: "old password", Role: "admin"})
	require.NoError(t, err)
	require.NoError(t, fx.svc.VerifyEmail(ctx, fx.mailer.verifications["r@example.com"]))

	// keep a token issued before the password change
	oldLogin, err := fx.svc.Login(ctx, &models.LoginRequest{Email: "r@example.com", Password: "old password"})
	require.NoError(t, err)

	require.NoError(t, fx.svc.ForgotPassword(ctx, "r@example.com"))
	resetToken, ok := fx.mailer.resets["r@example.com"]
	require.True(t, ok)

	// JWT issued-at has second precision; the change must land strictly
	// after it for the old token to be rejected
	time.Sleep(1100 * time.Millisecond)

	require.NoError(t, fx.svc.ResetPassword(ctx, &models.ResetPasswordRequest{
		Token:    resetToken,
		Password: "new password",
	}))

	// reset tokens are single use
	err = fx.svc.ResetPassword(ctx, &models.ResetPasswordRequest{Token: resetToken, Password: "new password"})
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = fx.svc.Login(ctx, &models.LoginRequest{Email: "r@example.com", Password: "old password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	resp, err := fx.svc.Login(ctx, &models.LoginRequest{Email: "r@example.com", Password: "new password"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, resp.User.ID)

	// tokens issued before the change stop authenticating
	_, err = fx.svc.Authenticate(ctx, oldLogin.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGet(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()

	user, err := fx.svc.Signup(ctx, &models.SignupRequest{Email: "g@example.com", Password: "correct horse", Role: "admin"})
	require.NoError(t, err)

	got, err := fx.svc.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "g@example.com", got.Email)

	_, err = fx.svc.Get(ctx, 999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdatePassword(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()

	user, err := fx.svc.Signup(ctx, &models.SignupRequest{Email: "p@example.com", Password: "old password", Role: "admin"})
	require.NoError(t, err)
	require.NoError(t, fx.svc.VerifyEmail(ctx, fx.mailer.verifications["p@example.com"]))

	err = fx.svc.UpdatePassword(ctx, user.ID, &models.UpdatePasswordRequest{
		CurrentPassword: "wrong password",
		NewPassword:     "new password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	err = fx.svc.UpdatePassword(ctx, user.ID, &models.UpdatePasswordRequest{
		CurrentPassword: "old password",
		NewPassword:     "short",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	require.NoError(t, fx.svc.UpdatePassword(ctx, user.ID, &models.UpdatePasswordRequest{
		CurrentPassword: "old password",
		NewPassword:     "new password",
	}))

	_, err = fx.svc.Login(ctx, &models.LoginRequest{Email: "p@example.com", Password: "old password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = fx.svc.Login(ctx, &models.LoginRequest{Email: "p@example.com", Password: "new password"})
	assert.NoError(t, err)
}

func TestUpdateAccount(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()

	user, err := fx.svc.Signup(ctx, &models.SignupRequest{Email: "before@example.com", Password: "correct horse", Role: "admin"})
	require.NoError(t, err)
	_, err = fx.svc.Signup(ctx, &models.SignupRequest{Email: "taken@example.com", Password: "correct horse", Role: "admin"})
	require.NoError(t, err)

	newEmail := "after@example.com"
	updated, err := fx.svc.UpdateAccount(ctx, user.ID, &models.UpdateAccountRequest{Email: &newEmail})
	require.NoError(t, err)
	assert.Equal(t, "after@example.com", updated.Email)

	taken := "taken@example.com"
	_, err = fx.svc.UpdateAccount(ctx, user.ID, &models.UpdateAccountRequest{Email: &taken})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestDeleteAccount(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()

	user, err := fx.svc.Signup(ctx, &models.SignupRequest{Email: "d@example.com", Password: "correct horse", Role: "admin"})
	require.NoError(t, err)

	require.NoError(t, fx.svc.DeleteAccount(ctx, user.ID))

	_, err = fx.svc.Get(ctx, user.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	assert.ErrorIs(t, fx.svc.DeleteAccount(ctx, user.ID), ErrUserNotFound)
}

func TestAuthenticate_RejectsGarbage(t *testing.T) {
	fx := newFixture()
	_, err := fx.svc.Authenticate(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
