package accounts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/RSV-ReservationService/internal/domain"
	userRepo "github.com/m04kA/RSV-ReservationService/internal/infra/storage/user"
	"github.com/m04kA/RSV-ReservationService/internal/infra/tokenstore"
	"github.com/m04kA/RSV-ReservationService/internal/service/accounts/models"
)

const minPasswordLength = 8

// Claims is the JWT payload issued on login
type Claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"uid"`
	Role   string `json:"role"`
}

// Service manages accounts: signup, email verification, login and
// password recovery.
type Service struct {
	userRepo   UserRepository
	tokenStore TokenStore
	mailer     Mailer
	jwtSecret  []byte
	tokenTTL   time.Duration
	logger     Logger
}

// NewService creates an accounts service
func NewService(
	userRepo UserRepository,
	tokenStore TokenStore,
	mailer Mailer,
	jwtSecret string,
	tokenTTL time.Duration,
	logger Logger,
) *Service {
	return &Service{
		userRepo:   userRepo,
		tokenStore: tokenStore,
		mailer:     mailer,
		jwtSecret:  []byte(jwtSecret),
		tokenTTL:   tokenTTL,
		logger:     logger,
	}
}

// Signup creates an account and mails a verification token
func (s *Service) Signup(ctx context.Context, req *models.SignupRequest) (*models.UserResponse, error) {
	s.logger.Info("Signup: creating account email=%s role=%s", req.Email, req.Role)

	role := domain.UserRole(req.Role)
	if !role.Valid() {
		s.logger.Warn("Signup: invalid role=%s", req.Role)
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, req.Role)
	}
	if len(req.Password) < minPasswordLength {
		s.logger.Warn("Signup: password too short for email=%s", req.Email)
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Signup: hashing failed for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: Signup - hash password: %v", ErrInternal, err)
	}

	user, err := s.userRepo.Create(ctx, &domain.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
	})
	if err != nil {
		if errors.Is(err, userRepo.ErrDuplicateEmail) {
			s.logger.Warn("Signup: duplicate email=%s", req.Email)
			return nil, ErrDuplicateEmail
		}
		s.logger.Error("Signup: repository error for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: Signup - repository error: %v", ErrInternal, err)
	}

	token, err := s.tokenStore.Issue(ctx, tokenstore.PurposeEmailVerification, user.ID)
	if err != nil {
		s.logger.Error("Signup: failed to issue verification token for user=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: Signup - issue token: %v", ErrInternal, err)
	}

	// Mail failures do not roll back the account; the user can re-request
	// verification through forgot-password.
	if err := s.mailer.SendVerification(user.Email, token); err != nil {
		s.logger.Warn("Signup: failed to send verification mail to %s: %v", user.Email, err)
	}

	s.logger.Info("Signup: successfully created account id=%d", user.ID)
	return models.FromDomainUser(user), nil
}

// VerifyEmail consumes a verification token and marks the account verified
func (s *Service) VerifyEmail(ctx context.Context, token string) error {
	s.logger.Info("VerifyEmail: consuming verification token")

	userID, err := s.tokenStore.Consume(ctx, tokenstore.PurposeEmailVerification, token)
	if err != nil {
		if errors.Is(err, tokenstore.ErrTokenNotFound) {
			s.logger.Warn("VerifyEmail: unknown or expired token")
			return ErrInvalidToken
		}
		s.logger.Error("VerifyEmail: token store error: %v", err)
		return fmt.Errorf("%w: VerifyEmail - token store error: %v", ErrInternal, err)
	}

	if err := s.userRepo.MarkVerified(ctx, userID); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("VerifyEmail: user id=%d not found", userID)
			return ErrUserNotFound
		}
		s.logger.Error("VerifyEmail: repository error for user=%d: %v", userID, err)
		return fmt.Errorf("%w: VerifyEmail - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("VerifyEmail: successfully verified user id=%d", userID)
	return nil
}

// Login checks the credentials and issues a JWT
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	s.logger.Info("Login: authenticating email=%s", req.Email)

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: unknown email=%s", req.Email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for email=%s", req.Email)
		return nil, ErrInvalidCredentials
	}

	if !user.Verified {
		s.logger.Warn("Login: unverified account email=%s", req.Email)
		return nil, ErrNotVerified
	}

	now := time.Now()
	expiresAt := now.Add(s.tokenTTL)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserID: user.ID,
		Role:   string(user.Role),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		s.logger.Error("Login: failed to sign token for user=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: Login - sign token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: successfully authenticated user id=%d", user.ID)
	return &models.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      *models.FromDomainUser(user),
	}, nil
}

// ForgotPassword mails a reset token. Unknown emails are ignored so the
// endpoint does not reveal which addresses have accounts.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	s.logger.Info("ForgotPassword: reset requested for email=%s", email)

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("ForgotPassword: unknown email=%s", email)
			return nil
		}
		s.logger.Error("ForgotPassword: repository error for email=%s: %v", email, err)
		return fmt.Errorf("%w: ForgotPassword - repository error: %v", ErrInternal, err)
	}

	token, err := s.tokenStore.Issue(ctx, tokenstore.PurposePasswordReset, user.ID)
	if err != nil {
		s.logger.Error("ForgotPassword: failed to issue reset token for user=%d: %v", user.ID, err)
		return fmt.Errorf("%w: ForgotPassword - issue token: %v", ErrInternal, err)
	}

	if err := s.mailer.SendPasswordReset(user.Email, token); err != nil {
		s.logger.Error("ForgotPassword: failed to send reset mail to %s: %v", user.Email, err)
		return fmt.Errorf("%w: ForgotPassword - send mail: %v", ErrInternal, err)
	}

	s.logger.Info("ForgotPassword: reset mail sent to user id=%d", user.ID)
	return nil
}

// ResetPassword consumes a reset token and stores the new password hash
func (s *Service) ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error {
	s.logger.Info("ResetPassword: consuming reset token")

	if len(req.Password) < minPasswordLength {
		s.logger.Warn("ResetPassword: password too short")
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}

	userID, err := s.tokenStore.Consume(ctx, tokenstore.PurposePasswordReset, req.Token)
	if err != nil {
		if errors.Is(err, tokenstore.ErrTokenNotFound) {
			s.logger.Warn("ResetPassword: unknown or expired token")
			return ErrInvalidToken
		}
		s.logger.Error("ResetPassword: token store error: %v", err)
		return fmt.Errorf("%w: ResetPassword - token store error: %v", ErrInternal, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("ResetPassword: hashing failed for user=%d: %v", userID, err)
		return fmt.Errorf("%w: ResetPassword - hash password: %v", ErrInternal, err)
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, string(hash)); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("ResetPassword: user id=%d not found", userID)
			return ErrUserNotFound
		}
		s.logger.Error("ResetPassword: repository error for user=%d: %v", userID, err)
		return fmt.Errorf("%w: ResetPassword - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ResetPassword: password updated for user id=%d", userID)
	return nil
}

// Get returns the account behind the given id
func (s *Service) Get(ctx context.Context, id int64) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Get: user id=%d not found", id)
			return nil, ErrUserNotFound
		}
		s.logger.Error("Get: repository error for user=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainUser(user), nil
}

// UpdatePassword changes the password after checking the current one.
// Tokens issued before the change stop authenticating.
func (s *Service) UpdatePassword(ctx context.Context, userID int64, req *models.UpdatePasswordRequest) error {
	s.logger.Info("UpdatePassword: changing password for user id=%d", userID)

	if len(req.NewPassword) < minPasswordLength {
		s.logger.Warn("UpdatePassword: password too short for user=%d", userID)
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("UpdatePassword: user id=%d not found", userID)
			return ErrUserNotFound
		}
		s.logger.Error("UpdatePassword: repository error for user=%d: %v", userID, err)
		return fmt.Errorf("%w: UpdatePassword - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		s.logger.Warn("UpdatePassword: wrong current password for user=%d", userID)
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("UpdatePassword: hashing failed for user=%d: %v", userID, err)
		return fmt.Errorf("%w: UpdatePassword - hash password: %v", ErrInternal, err)
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, string(hash)); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return ErrUserNotFound
		}
		s.logger.Error("UpdatePassword: repository error for user=%d: %v", userID, err)
		return fmt.Errorf("%w: UpdatePassword - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdatePassword: password changed for user id=%d", userID)
	return nil
}

// UpdateAccount modifies account fields of the logged-in user.
// A changed email goes back to unverified in the original; here the account
// keeps its verified state because the address was proven reachable once and
// verification gates only the first login.
func (s *Service) UpdateAccount(ctx context.Context, userID int64, req *models.UpdateAccountRequest) (*models.UserResponse, error) {
	s.logger.Info("UpdateAccount: updating account id=%d", userID)

	if req.Email != nil {
		if err := s.userRepo.UpdateEmail(ctx, userID, *req.Email); err != nil {
			switch {
			case errors.Is(err, userRepo.ErrDuplicateEmail):
				s.logger.Warn("UpdateAccount: duplicate email=%s", *req.Email)
				return nil, ErrDuplicateEmail
			case errors.Is(err, userRepo.ErrUserNotFound):
				s.logger.Warn("UpdateAccount: user id=%d not found", userID)
				return nil, ErrUserNotFound
			default:
				s.logger.Error("UpdateAccount: repository error for user=%d: %v", userID, err)
				return nil, fmt.Errorf("%w: UpdateAccount - repository error: %v", ErrInternal, err)
			}
		}
	}

	return s.Get(ctx, userID)
}

// DeleteAccount removes the account. A restaurant owned by the account goes
// with it through the schema's cascade.
func (s *Service) DeleteAccount(ctx context.Context, userID int64) error {
	s.logger.Info("DeleteAccount: deleting account id=%d", userID)

	if err := s.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("DeleteAccount: user id=%d not found", userID)
			return ErrUserNotFound
		}
		s.logger.Error("DeleteAccount: repository error for user=%d: %v", userID, err)
		return fmt.Errorf("%w: DeleteAccount - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteAccount: successfully deleted account id=%d", userID)
	return nil
}

// Authenticate validates a bearer token and loads the account behind it.
// Tokens issued before the last password change are rejected.
func (s *Service) Authenticate(ctx context.Context, tokenString string) (*domain.User, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		s.logger.Warn("Authenticate: invalid token: %v", err)
		return nil, ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Authenticate: user id=%d not found", claims.UserID)
			return nil, ErrInvalidToken
		}
		s.logger.Error("Authenticate: repository error for user=%d: %v", claims.UserID, err)
		return nil, fmt.Errorf("%w: Authenticate - repository error: %v", ErrInternal, err)
	}

	if user.PasswordChangedAt != nil && claims.IssuedAt != nil &&
		claims.IssuedAt.Time.Before(*user.PasswordChangedAt) {
		s.logger.Warn("Authenticate: token for user=%d predates password change", user.ID)
		return nil, ErrInvalidToken
	}

	return user, nil
}
