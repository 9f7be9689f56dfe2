package services

import (
	"context"
	"log"
	"time"

	"github.com/trackmyhomeschool/homeschool/domain"
)

// StudentServiceImpl implements domain.StudentService. Every operation is
// scoped to the owning user; a student belonging to someone else reads as
// not found.
type StudentServiceImpl struct {
	studentRepo domain.StudentRepository
	logRepo     domain.DailyLogRepository
}

// NewStudentService creates a new student service
func NewStudentService(studentRepo domain.StudentRepository, logRepo domain.DailyLogRepository) domain.StudentService {
	return &StudentServiceImpl{
		studentRepo: studentRepo,
		logRepo:     logRepo,
	}
}

// Create implements domain.StudentService
func (s *StudentServiceImpl) Create(ctx context.Context, userID uint, student *domain.Student) error {
	student.UserID = userID
	return s.studentRepo.Create(ctx, student)
}

// List implements domain.StudentService
func (s *StudentServiceImpl) List(ctx context.Context, userID uint) ([]domain.Student, error) {
	return s.studentRepo.ListByUser(ctx, userID)
}

// Get implements domain.StudentService
func (s *StudentServiceImpl) Get(ctx context.Context, userID, studentID uint) (*domain.Student, error) {
	student, err := s.studentRepo.FindByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student.UserID != userID {
		return nil, domain.ErrStudentNotFound
	}
	return student, nil
}

// Delete implements domain.StudentService. The student's logs go first so no
// orphaned log rows survive the student.
func (s *StudentServiceImpl) Delete(ctx context.Context, userID, studentID uint) error {
	if _, err := s.Get(ctx, userID, studentID); err != nil {
		return err
	}
	if err := s.logRepo.DeleteByStudent(ctx, studentID); err != nil {
		return err
	}
	return s.studentRepo.Delete(ctx, studentID)
}

// AddLog implements domain.StudentService
func (s *StudentServiceImpl) AddLog(ctx context.Context, userID uint, entry *domain.DailyLog) error {
	if _, err := s.Get(ctx, userID, entry.StudentID); err != nil {
		return err
	}
	if entry.LogDate.IsZero() {
		entry.LogDate = time.Now()
	}
	return s.logRepo.Create(ctx, entry)
}

// LogForDay implements domain.StudentService
func (s *StudentServiceImpl) LogForDay(ctx context.Context, userID, studentID uint, day time.Time) (*domain.DailyLog, error) {
	if _, err := s.Get(ctx, userID, studentID); err != nil {
		return nil, err
	}
	return s.logRepo.FindByStudentAndDate(ctx, studentID, day)
}

// StartLogRetention runs a background sweep that purges daily logs older
// than maxAge, once per interval and once immediately. Returns a stop func.
func StartLogRetention(logRepo domain.DailyLogRepository, maxAge, interval time.Duration) func() {
	done := make(chan struct{})
	ticker := time.NewTicker(interval)

	sweep := func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		purged, err := logRepo.DeleteOlderThan(ctx, time.Now().Add(-maxAge))
		if err != nil {
			log.Printf("log retention sweep failed: %v", err)
			return
		}
		if purged > 0 {
			log.Printf("log retention: purged %d aged daily logs", purged)
		}
	}

	go func() {
		sweep()
		for {
			select {
			case <-ticker.C:
				sweep()
			case <-done:
				ticker.Stop()
				return
			}
		}
	}()

	return func() { close(done) }
}
