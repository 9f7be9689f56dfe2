package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/trackmyhomeschool/homeschool/domain"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	stateRepo   domain.StateRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	otpSvc      domain.OTPService
	sessionTTL  time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	stateRepo domain.StateRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	otpSvc domain.OTPService,
	sessionTTL time.Duration,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		stateRepo:   stateRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		otpSvc:      otpSvc,
		sessionTTL:  sessionTTL,
	}
}

// Login implements domain.AuthService. The identifier may be an email or a
// username. Unknown identity and wrong password return the same error so the
// response never reveals whether an account exists.
func (s *AuthServiceImpl) Login(ctx context.Context, emailOrUsername, password string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByEmailOrUsername(ctx, emailOrUsername)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokenSvc.Generate(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	return &domain.AuthResult{
		User:      user,
		Token:     token,
		ExpiresIn: int64(s.sessionTTL.Seconds()),
	}, nil
}

// CurrentUser implements domain.AuthService. The trial and premium flags are
// recomputed from stored timestamps on every call.
func (s *AuthServiceImpl) CurrentUser(ctx context.Context, userID uint) (*domain.Profile, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &domain.Profile{
		ID:                 user.ID,
		Email:              user.Email,
		FirstName:          user.FirstName,
		LastName:           user.LastName,
		Username:           user.Username,
		StateID:            user.StateID,
		MinCreditsRequired: user.MinCreditsRequired,
		HoursPerCredit:     user.HoursPerCredit,
		ProfilePicture:     user.ProfilePicture,
		IsTrial:            user.IsTrial(now),
		IsPremium:          user.IsPremium(now),
	}, nil
}

// RequestRegistrationCode implements domain.AuthService
func (s *AuthServiceImpl) RequestRegistrationCode(ctx context.Context, email string) error {
	if !strings.Contains(email, "@") {
		return domain.ErrInvalidEmail
	}

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	return s.otpSvc.Issue(ctx, email, "Your OTP Code")
}

// CompleteRegistration implements domain.AuthService. The one-time code must
// match before anything else; the state's requirement fields are copied onto
// the new user so later reference edits do not retroactively change it.
func (s *AuthServiceImpl) CompleteRegistration(ctx context.Context, reg domain.Registration) (*domain.User, error) {
	if err := s.otpSvc.Verify(ctx, reg.Email, reg.Code); err != nil {
		return nil, domain.ErrCodeInvalidOrExpired
	}

	if _, err := s.userRepo.FindByEmailOrUsername(ctx, reg.Email); err == nil {
		return nil, domain.ErrEmailOrUsernameTaken
	}
	if _, err := s.userRepo.FindByEmailOrUsername(ctx, reg.Username); err == nil {
		return nil, domain.ErrEmailOrUsernameTaken
	}

	state, err := s.stateRepo.FindByID(ctx, reg.StateID)
	if err != nil {
		return nil, err
	}

	hash, err := s.passwordSvc.Hash(reg.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		FirstName:          reg.FirstName,
		LastName:           reg.LastName,
		Email:              reg.Email,
		Username:           reg.Username,
		PasswordHash:       hash,
		Role:               "user",
		StateID:            state.ID,
		MinCreditsRequired: state.MinCreditsRequired,
		HoursPerCredit:     state.HoursPerCredit,
	}

	// A concurrent registration for the same identity loses here via the
	// unique indexes, surfacing as ErrEmailOrUsernameTaken.
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	// Purge all outstanding codes for this email, not just the consumed one.
	if err := s.otpSvc.Consume(ctx, reg.Email); err != nil {
		return nil, fmt.Errorf("failed to clean up codes: %w", err)
	}

	return user, nil
}

// RequestPasswordReset implements domain.AuthService. Unlike registration,
// this reveals whether the email has an account; the reset UI depends on it.
func (s *AuthServiceImpl) RequestPasswordReset(ctx context.Context, email string) error {
	if !strings.Contains(email, "@") {
		return domain.ErrInvalidEmail
	}

	if _, err := s.userRepo.FindByEmail(ctx, email); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrEmailNotFound
		}
		return err
	}

	return s.otpSvc.Issue(ctx, email, "Your Password Reset OTP Code")
}

// VerifyResetCode implements domain.AuthService. The code is single-use and
// consumed here, not on the subsequent password change.
func (s *AuthServiceImpl) VerifyResetCode(ctx context.Context, email, code string) error {
	if err := s.otpSvc.Verify(ctx, email, code); err != nil {
		return domain.ErrCodeInvalidOrExpired
	}
	return s.otpSvc.Consume(ctx, email)
}

// ResetPassword implements domain.AuthService
func (s *AuthServiceImpl) ResetPassword(ctx context.Context, email, newPassword string) error {
	if err := s.passwordSvc.CheckPolicy(newPassword); err != nil {
		return err
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	hash, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.userRepo.UpdatePassword(ctx, user.ID, hash)
}

// FindAccountEmail implements domain.AuthService
func (s *AuthServiceImpl) FindAccountEmail(ctx context.Context, identifier string) (string, error) {
	user, err := s.userRepo.FindByEmailOrUsername(ctx, strings.TrimSpace(identifier))
	if err != nil {
		return "", err
	}
	return user.Email, nil
}
