package domain

import (
	"context"
	"time"
)

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByEmailOrUsername(ctx context.Context, identifier string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	UpdatePassword(ctx context.Context, userID uint, passwordHash string) error
	ListWithStudentCounts(ctx context.Context) ([]AdminUserRow, error)
	PurgeWithDependents(ctx context.Context, userID uint) error
}

// StateRepository defines read access to the state-requirements reference table
type StateRepository interface {
	FindByID(ctx context.Context, id uint) (*StateRequirement, error)
	List(ctx context.Context) ([]StateRequirement, error)
}

// StudentRepository defines student data access operations
type StudentRepository interface {
	Create(ctx context.Context, student *Student) error
	FindByID(ctx context.Context, id uint) (*Student, error)
	ListByUser(ctx context.Context, userID uint) ([]Student, error)
	Delete(ctx context.Context, id uint) error
}

// DailyLogRepository defines daily log data access operations
type DailyLogRepository interface {
	Create(ctx context.Context, log *DailyLog) error
	FindByStudentAndDate(ctx context.Context, studentID uint, day time.Time) (*DailyLog, error)
	DeleteByStudent(ctx context.Context, studentID uint) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// CodeRepository defines the one-time-code store. A single code is live per
// email at a time; issuing a new one replaces any prior code.
type CodeRepository interface {
	Put(ctx context.Context, email, code string) error
	Find(ctx context.Context, email string) (string, error)
	Delete(ctx context.Context, email string) error
}

// AuthService defines the authentication and account lifecycle
type AuthService interface {
	Login(ctx context.Context, emailOrUsername, password string) (*AuthResult, error)
	CurrentUser(ctx context.Context, userID uint) (*Profile, error)
	RequestRegistrationCode(ctx context.Context, email string) error
	CompleteRegistration(ctx context.Context, reg Registration) (*User, error)
	RequestPasswordReset(ctx context.Context, email string) error
	VerifyResetCode(ctx context.Context, email, code string) error
	ResetPassword(ctx context.Context, email, newPassword string) error
	FindAccountEmail(ctx context.Context, identifier string) (string, error)
}

// OTPService defines one-time-code issuance and verification
type OTPService interface {
	Issue(ctx context.Context, email, subject string) error
	Verify(ctx context.Context, email, code string) error
	Consume(ctx context.Context, email string) error
}

// AdminService defines administrative operations
type AdminService interface {
	Login(ctx context.Context, username, password string) (*AuthResult, error)
	ListUsers(ctx context.Context) ([]AdminUserRow, error)
	DeleteUser(ctx context.Context, userID uint) error
}

// StudentService defines student record operations scoped to an owner
type StudentService interface {
	Create(ctx context.Context, userID uint, student *Student) error
	List(ctx context.Context, userID uint) ([]Student, error)
	Get(ctx context.Context, userID, studentID uint) (*Student, error)
	Delete(ctx context.Context, userID, studentID uint) error
	AddLog(ctx context.Context, userID uint, log *DailyLog) error
	LogForDay(ctx context.Context, userID, studentID uint, day time.Time) (*DailyLog, error)
}

// PasswordService defines password hashing and policy checks
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
	CheckPolicy(password string) error
}

// TokenService defines session token operations
type TokenService interface {
	Generate(userID uint, role string) (string, error)
	Validate(token string) (*TokenClaims, error)
}

// MailService defines outbound email delivery
type MailService interface {
	Send(ctx context.Context, to, subject, html string) error
}
