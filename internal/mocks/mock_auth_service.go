package mocks

import (
	"context"
	"time"

	"github.com/trackmyhomeschool/homeschool/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	LoginFunc                   func(ctx context.Context, emailOrUsername, password string) (*domain.AuthResult, error)
	CurrentUserFunc             func(ctx context.Context, userID uint) (*domain.Profile, error)
	RequestRegistrationCodeFunc func(ctx context.Context, email string) error
	CompleteRegistrationFunc    func(ctx context.Context, reg domain.Registration) (*domain.User, error)
	RequestPasswordResetFunc    func(ctx context.Context, email string) error
	VerifyResetCodeFunc         func(ctx context.Context, email, code string) error
	ResetPasswordFunc           func(ctx context.Context, email, newPassword string) error
	FindAccountEmailFunc        func(ctx context.Context, identifier string) (string, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

func (m *MockAuthService) Login(ctx context.Context, emailOrUsername, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, emailOrUsername, password)
	}
	return nil, domain.ErrInvalidCredentials
}

func (m *MockAuthService) CurrentUser(ctx context.Context, userID uint) (*domain.Profile, error) {
	if m.CurrentUserFunc != nil {
		return m.CurrentUserFunc(ctx, userID)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockAuthService) RequestRegistrationCode(ctx context.Context, email string) error {
	if m.RequestRegistrationCodeFunc != nil {
		return m.RequestRegistrationCodeFunc(ctx, email)
	}
	return nil
}

func (m *MockAuthService) CompleteRegistration(ctx context.Context, reg domain.Registration) (*domain.User, error) {
	if m.CompleteRegistrationFunc != nil {
		return m.CompleteRegistrationFunc(ctx, reg)
	}
	return &domain.User{ID: 1, Email: reg.Email, Username: reg.Username}, nil
}

func (m *MockAuthService) RequestPasswordReset(ctx context.Context, email string) error {
	if m.RequestPasswordResetFunc != nil {
		return m.RequestPasswordResetFunc(ctx, email)
	}
	return nil
}

func (m *MockAuthService) VerifyResetCode(ctx context.Context, email, code string) error {
	if m.VerifyResetCodeFunc != nil {
		return m.VerifyResetCodeFunc(ctx, email, code)
	}
	return nil
}

func (m *MockAuthService) ResetPassword(ctx context.Context, email, newPassword string) error {
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, email, newPassword)
	}
	return nil
}

func (m *MockAuthService) FindAccountEmail(ctx context.Context, identifier string) (string, error) {
	if m.FindAccountEmailFunc != nil {
		return m.FindAccountEmailFunc(ctx, identifier)
	}
	return "", domain.ErrUserNotFound
}

// MockAdminService implements domain.AdminService interface for testing
type MockAdminService struct {
	LoginFunc      func(ctx context.Context, username, password string) (*domain.AuthResult, error)
	ListUsersFunc  func(ctx context.Context) ([]domain.AdminUserRow, error)
	DeleteUserFunc func(ctx context.Context, userID uint) error
}

// NewMockAdminService creates a new MockAdminService with default behaviors
func NewMockAdminService() *MockAdminService {
	return &MockAdminService{}
}

func (m *MockAdminService) Login(ctx context.Context, username, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, username, password)
	}
	return nil, domain.ErrInvalidCredentials
}

func (m *MockAdminService) ListUsers(ctx context.Context) ([]domain.AdminUserRow, error) {
	if m.ListUsersFunc != nil {
		return m.ListUsersFunc(ctx)
	}
	return nil, nil
}

func (m *MockAdminService) DeleteUser(ctx context.Context, userID uint) error {
	if m.DeleteUserFunc != nil {
		return m.DeleteUserFunc(ctx, userID)
	}
	return nil
}

// MockStudentService implements domain.StudentService interface for testing
type MockStudentService struct {
	CreateFunc    func(ctx context.Context, userID uint, student *domain.Student) error
	ListFunc      func(ctx context.Context, userID uint) ([]domain.Student, error)
	GetFunc       func(ctx context.Context, userID, studentID uint) (*domain.Student, error)
	DeleteFunc    func(ctx context.Context, userID, studentID uint) error
	AddLogFunc    func(ctx context.Context, userID uint, log *domain.DailyLog) error
	LogForDayFunc func(ctx context.Context, userID, studentID uint, day time.Time) (*domain.DailyLog, error)
}

// NewMockStudentService creates a new MockStudentService with default behaviors
func NewMockStudentService() *MockStudentService {
	return &MockStudentService{}
}

func (m *MockStudentService) Create(ctx context.Context, userID uint, student *domain.Student) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, userID, student)
	}
	student.ID = 1
	student.UserID = userID
	return nil
}

func (m *MockStudentService) List(ctx context.Context, userID uint) ([]domain.Student, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockStudentService) Get(ctx context.Context, userID, studentID uint) (*domain.Student, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, userID, studentID)
	}
	return nil, domain.ErrStudentNotFound
}

func (m *MockStudentService) Delete(ctx context.Context, userID, studentID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, studentID)
	}
	return nil
}

func (m *MockStudentService) AddLog(ctx context.Context, userID uint, entry *domain.DailyLog) error {
	if m.AddLogFunc != nil {
		return m.AddLogFunc(ctx, userID, entry)
	}
	return nil
}

func (m *MockStudentService) LogForDay(ctx context.Context, userID, studentID uint, day time.Time) (*domain.DailyLog, error) {
	if m.LogForDayFunc != nil {
		return m.LogForDayFunc(ctx, userID, studentID, day)
	}
	return nil, domain.ErrLogNotFound
}

// Compile-time interface compliance verification
var (
	_ domain.AuthService    = (*MockAuthService)(nil)
	_ domain.AdminService   = (*MockAdminService)(nil)
	_ domain.StudentService = (*MockStudentService)(nil)
)
