package services

import (
	"context"
	"time"

	"github.com/trackmyhomeschool/homeschool/domain"
)

// AdminServiceImpl implements domain.AdminService. The admin principal is a
// configured username with a bcrypt-hashed secret; a successful login issues
// a normal session token carrying the admin role.
type AdminServiceImpl struct {
	userRepo     domain.UserRepository
	passwordSvc  domain.PasswordService
	tokenSvc     domain.TokenService
	username     string
	passwordHash string
	sessionTTL   time.Duration
}

// NewAdminService creates a new admin service
func NewAdminService(
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	username, passwordHash string,
	sessionTTL time.Duration,
) domain.AdminService {
	return &AdminServiceImpl{
		userRepo:     userRepo,
		passwordSvc:  passwordSvc,
		tokenSvc:     tokenSvc,
		username:     username,
		passwordHash: passwordHash,
		sessionTTL:   sessionTTL,
	}
}

// Login implements domain.AdminService. Same undifferentiated failure as
// user login: wrong username and wrong password are indistinguishable.
func (s *AdminServiceImpl) Login(ctx context.Context, username, password string) (*domain.AuthResult, error) {
	if s.username == "" || s.passwordHash == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if username != s.username || !s.passwordSvc.Verify(s.passwordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokenSvc.Generate(0, "admin")
	if err != nil {
		return nil, err
	}

	return &domain.AuthResult{
		Token:     token,
		ExpiresIn: int64(s.sessionTTL.Seconds()),
	}, nil
}

// ListUsers implements domain.AdminService
func (s *AdminServiceImpl) ListUsers(ctx context.Context) ([]domain.AdminUserRow, error) {
	return s.userRepo.ListWithStudentCounts(ctx)
}

// DeleteUser implements domain.AdminService. Dependents go in dependency
// order: daily logs, then students, then the user.
func (s *AdminServiceImpl) DeleteUser(ctx context.Context, userID uint) error {
	return s.userRepo.PurgeWithDependents(ctx, userID)
}
