package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/trackmyhomeschool/homeschool/domain"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags)
type DBUser struct {
	ID                 uint       `gorm:"primaryKey"`
	FirstName          string     `gorm:"size:128"`
	LastName           string     `gorm:"size:128"`
	Email              string     `gorm:"uniqueIndex;size:255"`
	Username           string     `gorm:"uniqueIndex;size:128"`
	PasswordHash       string     `gorm:"column:password"`
	Role               string     `gorm:"size:64"`
	StateID            uint       `gorm:"index"`
	MinCreditsRequired float64
	HoursPerCredit     float64
	ProfilePicture     string
	IsSubscribed       bool
	SubscriptionEndsAt *time.Time
	TrialEndsAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository. A uniqueness violation on the
// email or username index surfaces as ErrEmailOrUsernameTaken so concurrent
// registrations for the same identity lose cleanly.
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrEmailOrUsernameTaken
		}
		return err
	}
	user.ID = dbUser.ID
	user.CreatedAt = dbUser.CreatedAt
	return nil
}

// FindByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByEmailOrUsername implements domain.UserRepository. Login identifiers
// may be either field.
func (r *UserRepositoryImpl) FindByEmailOrUsername(ctx context.Context, identifier string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).
		Where("email = ? OR username = ?", identifier, identifier).
		First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// UpdatePassword implements domain.UserRepository
func (r *UserRepositoryImpl) UpdatePassword(ctx context.Context, userID uint, passwordHash string) error {
	result := r.db.WithContext(ctx).Model(&DBUser{}).
		Where("id = ?", userID).
		Update("password", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

type adminUserRow struct {
	DBUser
	StudentCount int64
}

// ListWithStudentCounts implements domain.UserRepository with a single
// aggregation query rather than one count query per user.
func (r *UserRepositoryImpl) ListWithStudentCounts(ctx context.Context) ([]domain.AdminUserRow, error) {
	var rows []adminUserRow
	err := r.db.WithContext(ctx).Model(&DBUser{}).
		Select("users.*, COUNT(students.id) AS student_count").
		Joins("LEFT JOIN students ON students.user_id = users.id").
		Group("users.id").
		Order("users.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]domain.AdminUserRow, 0, len(rows))
	for i := range rows {
		result = append(result, domain.AdminUserRow{
			User:         *r.dbToDomain(&rows[i].DBUser),
			StudentCount: rows[i].StudentCount,
		})
	}
	return result, nil
}

// PurgeWithDependents implements domain.UserRepository. Grandchild daily logs
// go first, then students, then the user, all in one transaction so a failed
// delete never leaves orphaned references.
func (r *UserRepositoryImpl) PurgeWithDependents(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		studentIDs := tx.Model(&DBStudent{}).Select("id").Where("user_id = ?", userID)

		if err := tx.Where("student_id IN (?)", studentIDs).Delete(&DBDailyLog{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&DBStudent{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", userID).Delete(&DBUser{}).Error
	})
}

func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:                 user.ID,
		FirstName:          user.FirstName,
		LastName:           user.LastName,
		Email:              user.Email,
		Username:           user.Username,
		PasswordHash:       user.PasswordHash,
		Role:               user.Role,
		StateID:            user.StateID,
		MinCreditsRequired: user.MinCreditsRequired,
		HoursPerCredit:     user.HoursPerCredit,
		ProfilePicture:     user.ProfilePicture,
		IsSubscribed:       user.IsSubscribed,
		SubscriptionEndsAt: user.SubscriptionEndsAt,
		TrialEndsAt:        user.TrialEndsAt,
	}
}

func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:                 dbUser.ID,
		FirstName:          dbUser.FirstName,
		LastName:           dbUser.LastName,
		Email:              dbUser.Email,
		Username:           dbUser.Username,
		PasswordHash:       dbUser.PasswordHash,
		Role:               dbUser.Role,
		StateID:            dbUser.StateID,
		MinCreditsRequired: dbUser.MinCreditsRequired,
		HoursPerCredit:     dbUser.HoursPerCredit,
		ProfilePicture:     dbUser.ProfilePicture,
		IsSubscribed:       dbUser.IsSubscribed,
		SubscriptionEndsAt: dbUser.SubscriptionEndsAt,
		TrialEndsAt:        dbUser.TrialEndsAt,
		CreatedAt:          dbUser.CreatedAt,
		UpdatedAt:          dbUser.UpdatedAt,
	}
}
