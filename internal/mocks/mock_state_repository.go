package mocks

import (
	"context"

	"github.com/trackmyhomeschool/homeschool/domain"
)

// MockStateRepository implements domain.StateRepository interface for testing
type MockStateRepository struct {
	FindByIDFunc func(ctx context.Context, id uint) (*domain.StateRequirement, error)
	ListFunc     func(ctx context.Context) ([]domain.StateRequirement, error)
}

// NewMockStateRepository creates a new MockStateRepository with default behaviors
func NewMockStateRepository() *MockStateRepository {
	return &MockStateRepository{}
}

// FindByID finds a state requirement by ID
func (m *MockStateRepository) FindByID(ctx context.Context, id uint) (*domain.StateRequirement, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: a fixed reference row
	return &domain.StateRequirement{
		ID:                 id,
		Name:               "Ohio",
		MinCreditsRequired: 20,
		HoursPerCredit:     120,
	}, nil
}

// List returns all state requirements
func (m *MockStateRepository) List(ctx context.Context) ([]domain.StateRequirement, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

// Compile-time interface compliance verification
var _ domain.StateRepository = (*MockStateRepository)(nil)
