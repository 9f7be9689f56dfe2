package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/trackmyhomeschool/homeschool/domain"
)

// StateRepositoryImpl implements domain.StateRepository using GORM. The
// table is reference data; this repository never writes outside seeding.
type StateRepositoryImpl struct {
	db *gorm.DB
}

// DBStateRequirement represents the database model for StateRequirement
type DBStateRequirement struct {
	ID                 uint   `gorm:"primaryKey"`
	Name               string `gorm:"uniqueIndex;size:64"`
	MinCreditsRequired float64
	HoursPerCredit     float64
}

// TableName returns the table name for GORM
func (DBStateRequirement) TableName() string {
	return "state_requirements"
}

// NewStateRepository creates a new state repository
func NewStateRepository(db *gorm.DB) domain.StateRepository {
	return &StateRepositoryImpl{db: db}
}

// FindByID implements domain.StateRepository
func (r *StateRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.StateRequirement, error) {
	var dbState DBStateRequirement
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbState).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidState
		}
		return nil, err
	}
	return &domain.StateRequirement{
		ID:                 dbState.ID,
		Name:               dbState.Name,
		MinCreditsRequired: dbState.MinCreditsRequired,
		HoursPerCredit:     dbState.HoursPerCredit,
	}, nil
}

// List implements domain.StateRepository
func (r *StateRepositoryImpl) List(ctx context.Context) ([]domain.StateRequirement, error) {
	var dbStates []DBStateRequirement
	if err := r.db.WithContext(ctx).Order("name").Find(&dbStates).Error; err != nil {
		return nil, err
	}

	states := make([]domain.StateRequirement, 0, len(dbStates))
	for _, s := range dbStates {
		states = append(states, domain.StateRequirement{
			ID:                 s.ID,
			Name:               s.Name,
			MinCreditsRequired: s.MinCreditsRequired,
			HoursPerCredit:     s.HoursPerCredit,
		})
	}
	return states, nil
}

// SeedStates inserts the built-in reference rows, leaving existing rows
// untouched so user-facing denormalized copies stay historically accurate.
func SeedStates(db *gorm.DB) error {
	seed := []DBStateRequirement{
		{Name: "Alabama", MinCreditsRequired: 24, HoursPerCredit: 140},
		{Name: "Florida", MinCreditsRequired: 24, HoursPerCredit: 135},
		{Name: "Georgia", MinCreditsRequired: 23, HoursPerCredit: 150},
		{Name: "North Carolina", MinCreditsRequired: 22, HoursPerCredit: 135},
		{Name: "Ohio", MinCreditsRequired: 20, HoursPerCredit: 120},
		{Name: "Pennsylvania", MinCreditsRequired: 21, HoursPerCredit: 120},
		{Name: "Tennessee", MinCreditsRequired: 22, HoursPerCredit: 120},
		{Name: "Texas", MinCreditsRequired: 26, HoursPerCredit: 150},
	}

	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error
}
