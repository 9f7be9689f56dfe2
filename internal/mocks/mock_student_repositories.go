package mocks

import (
	"context"
	"time"

	"github.com/trackmyhomeschool/homeschool/domain"
)

// MockStudentRepository implements domain.StudentRepository interface for testing
type MockStudentRepository struct {
	CreateFunc     func(ctx context.Context, student *domain.Student) error
	FindByIDFunc   func(ctx context.Context, id uint) (*domain.Student, error)
	ListByUserFunc func(ctx context.Context, userID uint) ([]domain.Student, error)
	DeleteFunc     func(ctx context.Context, id uint) error
}

// NewMockStudentRepository creates a new MockStudentRepository with default behaviors
func NewMockStudentRepository() *MockStudentRepository {
	return &MockStudentRepository{}
}

// Create creates a student record
func (m *MockStudentRepository) Create(ctx context.Context, student *domain.Student) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, student)
	}
	// Default behavior: success
	return nil
}

// FindByID finds a student by ID
func (m *MockStudentRepository) FindByID(ctx context.Context, id uint) (*domain.Student, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrStudentNotFound
}

// ListByUser lists students owned by a user
func (m *MockStudentRepository) ListByUser(ctx context.Context, userID uint) ([]domain.Student, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

// Delete removes a student record
func (m *MockStudentRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}

// MockDailyLogRepository implements domain.DailyLogRepository interface for testing
type MockDailyLogRepository struct {
	CreateFunc               func(ctx context.Context, log *domain.DailyLog) error
	FindByStudentAndDateFunc func(ctx context.Context, studentID uint, day time.Time) (*domain.DailyLog, error)
	DeleteByStudentFunc      func(ctx context.Context, studentID uint) error
	DeleteOlderThanFunc      func(ctx context.Context, cutoff time.Time) (int64, error)
}

// NewMockDailyLogRepository creates a new MockDailyLogRepository with default behaviors
func NewMockDailyLogRepository() *MockDailyLogRepository {
	return &MockDailyLogRepository{}
}

// Create creates a daily log entry
func (m *MockDailyLogRepository) Create(ctx context.Context, entry *domain.DailyLog) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, entry)
	}
	// Default behavior: success
	return nil
}

// FindByStudentAndDate finds a log by student and calendar day
func (m *MockDailyLogRepository) FindByStudentAndDate(ctx context.Context, studentID uint, day time.Time) (*domain.DailyLog, error) {
	if m.FindByStudentAndDateFunc != nil {
		return m.FindByStudentAndDateFunc(ctx, studentID, day)
	}
	// Default behavior: not found
	return nil, domain.ErrLogNotFound
}

// DeleteByStudent removes all logs for a student
func (m *MockDailyLogRepository) DeleteByStudent(ctx context.Context, studentID uint) error {
	if m.DeleteByStudentFunc != nil {
		return m.DeleteByStudentFunc(ctx, studentID)
	}
	// Default behavior: success
	return nil
}

// DeleteOlderThan removes logs older than cutoff
func (m *MockDailyLogRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	if m.DeleteOlderThanFunc != nil {
		return m.DeleteOlderThanFunc(ctx, cutoff)
	}
	// Default behavior: nothing purged
	return 0, nil
}

// Compile-time interface compliance verification
var (
	_ domain.StudentRepository  = (*MockStudentRepository)(nil)
	_ domain.DailyLogRepository = (*MockDailyLogRepository)(nil)
)
