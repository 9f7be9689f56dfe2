package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/trackmyhomeschool/homeschool/domain"
)

// StudentRepositoryImpl implements domain.StudentRepository using GORM
type StudentRepositoryImpl struct {
	db *gorm.DB
}

// DBStudent represents the database model for Student
type DBStudent struct {
	ID             uint   `gorm:"primaryKey"`
	UserID         uint   `gorm:"index"`
	FirstName      string `gorm:"size:128"`
	LastName       string `gorm:"size:128"`
	Grade          string `gorm:"size:32"`
	ProfilePicture string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName returns the table name for GORM
func (DBStudent) TableName() string {
	return "students"
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *gorm.DB) domain.StudentRepository {
	return &StudentRepositoryImpl{db: db}
}

// Create implements domain.StudentRepository
func (r *StudentRepositoryImpl) Create(ctx context.Context, student *domain.Student) error {
	dbStudent := &DBStudent{
		UserID:         student.UserID,
		FirstName:      student.FirstName,
		LastName:       student.LastName,
		Grade:          student.Grade,
		ProfilePicture: student.ProfilePicture,
	}
	if err := r.db.WithContext(ctx).Create(dbStudent).Error; err != nil {
		return err
	}
	student.ID = dbStudent.ID
	student.CreatedAt = dbStudent.CreatedAt
	return nil
}

// FindByID implements domain.StudentRepository
func (r *StudentRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Student, error) {
	var dbStudent DBStudent
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbStudent).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrStudentNotFound
		}
		return nil, err
	}
	return dbStudentToDomain(&dbStudent), nil
}

// ListByUser implements domain.StudentRepository
func (r *StudentRepositoryImpl) ListByUser(ctx context.Context, userID uint) ([]domain.Student, error) {
	var dbStudents []DBStudent
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&dbStudents).Error
	if err != nil {
		return nil, err
	}

	students := make([]domain.Student, 0, len(dbStudents))
	for i := range dbStudents {
		students = append(students, *dbStudentToDomain(&dbStudents[i]))
	}
	return students, nil
}

// Delete implements domain.StudentRepository
func (r *StudentRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&DBStudent{}).Error
}

func dbStudentToDomain(s *DBStudent) *domain.Student {
	return &domain.Student{
		ID:             s.ID,
		UserID:         s.UserID,
		FirstName:      s.FirstName,
		LastName:       s.LastName,
		Grade:          s.Grade,
		ProfilePicture: s.ProfilePicture,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}
