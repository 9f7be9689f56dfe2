package mocks

import (
	"context"

	"github.com/trackmyhomeschool/homeschool/domain"
)

// MockCodeRepository implements domain.CodeRepository interface for testing
type MockCodeRepository struct {
	PutFunc    func(ctx context.Context, email, code string) error
	FindFunc   func(ctx context.Context, email string) (string, error)
	DeleteFunc func(ctx context.Context, email string) error
}

// NewMockCodeRepository creates a new MockCodeRepository with default behaviors
func NewMockCodeRepository() *MockCodeRepository {
	return &MockCodeRepository{}
}

// Put stores a code for an email
func (m *MockCodeRepository) Put(ctx context.Context, email, code string) error {
	if m.PutFunc != nil {
		return m.PutFunc(ctx, email, code)
	}
	// Default behavior: success
	return nil
}

// Find returns the live code for an email
func (m *MockCodeRepository) Find(ctx context.Context, email string) (string, error) {
	if m.FindFunc != nil {
		return m.FindFunc(ctx, email)
	}
	// Default behavior: no live code
	return "", domain.ErrCodeInvalidOrExpired
}

// Delete removes the live code for an email
func (m *MockCodeRepository) Delete(ctx context.Context, email string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, email)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.CodeRepository = (*MockCodeRepository)(nil)
