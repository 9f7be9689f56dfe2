package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/trackmyhomeschool/homeschool/domain"
)

// DailyLogRepositoryImpl implements domain.DailyLogRepository using GORM
type DailyLogRepositoryImpl struct {
	db *gorm.DB
}

// DBDailyLog represents the database model for DailyLog
type DBDailyLog struct {
	ID              uint   `gorm:"primaryKey"`
	StudentID       uint   `gorm:"index"`
	Subject         string `gorm:"size:128"`
	DurationMinutes int
	Notes           string
	LogDate         time.Time `gorm:"index"`
	CreatedAt       time.Time
}

// TableName returns the table name for GORM
func (DBDailyLog) TableName() string {
	return "daily_logs"
}

// NewDailyLogRepository creates a new daily log repository
func NewDailyLogRepository(db *gorm.DB) domain.DailyLogRepository {
	return &DailyLogRepositoryImpl{db: db}
}

// Create implements domain.DailyLogRepository
func (r *DailyLogRepositoryImpl) Create(ctx context.Context, entry *domain.DailyLog) error {
	dbLog := &DBDailyLog{
		StudentID:       entry.StudentID,
		Subject:         entry.Subject,
		DurationMinutes: entry.DurationMinutes,
		Notes:           entry.Notes,
		LogDate:         entry.LogDate,
	}
	if err := r.db.WithContext(ctx).Create(dbLog).Error; err != nil {
		return err
	}
	entry.ID = dbLog.ID
	entry.CreatedAt = dbLog.CreatedAt
	return nil
}

// FindByStudentAndDate implements domain.DailyLogRepository. Matches any log
// dated within the calendar day containing the given instant.
func (r *DailyLogRepositoryImpl) FindByStudentAndDate(ctx context.Context, studentID uint, day time.Time) (*domain.DailyLog, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24 * time.Hour)

	var dbLog DBDailyLog
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND log_date >= ? AND log_date < ?", studentID, start, end).
		Order("log_date DESC").
		First(&dbLog).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLogNotFound
		}
		return nil, err
	}

	return &domain.DailyLog{
		ID:              dbLog.ID,
		StudentID:       dbLog.StudentID,
		Subject:         dbLog.Subject,
		DurationMinutes: dbLog.DurationMinutes,
		Notes:           dbLog.Notes,
		LogDate:         dbLog.LogDate,
		CreatedAt:       dbLog.CreatedAt,
	}, nil
}

// DeleteByStudent implements domain.DailyLogRepository
func (r *DailyLogRepositoryImpl) DeleteByStudent(ctx context.Context, studentID uint) error {
	return r.db.WithContext(ctx).Where("student_id = ?", studentID).Delete(&DBDailyLog{}).Error
}

// DeleteOlderThan implements domain.DailyLogRepository
func (r *DailyLogRepositoryImpl) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("log_date < ?", cutoff).Delete(&DBDailyLog{})
	return result.RowsAffected, result.Error
}
