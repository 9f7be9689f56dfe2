package mocks

import (
	"context"

	"github.com/trackmyhomeschool/homeschool/domain"
)

// MockUserRepository implements domain.UserRepository interface for testing
type MockUserRepository struct {
	CreateFunc                func(ctx context.Context, user *domain.User) error
	FindByEmailFunc           func(ctx context.Context, email string) (*domain.User, error)
	FindByEmailOrUsernameFunc func(ctx context.Context, identifier string) (*domain.User, error)
	FindByIDFunc              func(ctx context.Context, id uint) (*domain.User, error)
	UpdatePasswordFunc        func(ctx context.Context, userID uint, passwordHash string) error
	ListWithStudentCountsFunc func(ctx context.Context) ([]domain.AdminUserRow, error)
	PurgeWithDependentsFunc   func(ctx context.Context, userID uint) error
}

// NewMockUserRepository creates a new MockUserRepository with default behaviors
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

// Create creates a new user
func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	// Default behavior: success
	return nil
}

// FindByEmail finds a user by email
func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// FindByEmailOrUsername finds a user by email or username
func (m *MockUserRepository) FindByEmailOrUsername(ctx context.Context, identifier string) (*domain.User, error) {
	if m.FindByEmailOrUsernameFunc != nil {
		return m.FindByEmailOrUsernameFunc(ctx, identifier)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// FindByID finds a user by ID
func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// UpdatePassword updates a user's password hash
func (m *MockUserRepository) UpdatePassword(ctx context.Context, userID uint, passwordHash string) error {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, userID, passwordHash)
	}
	// Default behavior: success
	return nil
}

// ListWithStudentCounts lists users with dependent counts
func (m *MockUserRepository) ListWithStudentCounts(ctx context.Context) ([]domain.AdminUserRow, error) {
	if m.ListWithStudentCountsFunc != nil {
		return m.ListWithStudentCountsFunc(ctx)
	}
	// Default behavior: empty listing
	return nil, nil
}

// PurgeWithDependents deletes a user and all dependent records
func (m *MockUserRepository) PurgeWithDependents(ctx context.Context, userID uint) error {
	if m.PurgeWithDependentsFunc != nil {
		return m.PurgeWithDependentsFunc(ctx, userID)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.UserRepository = (*MockUserRepository)(nil)
