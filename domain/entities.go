package domain

import "time"

// User represents a homeschooling parent account. MinCreditsRequired and
// HoursPerCredit are copied from the referenced StateRequirement at
// registration time; later edits to the reference table must not change them.
type User struct {
	ID                 uint
	FirstName          string
	LastName           string
	Email              string
	Username           string
	PasswordHash       string
	Role               string
	StateID            uint
	MinCreditsRequired float64
	HoursPerCredit     float64
	ProfilePicture     string
	IsSubscribed       bool
	SubscriptionEndsAt *time.Time
	TrialEndsAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsTrial reports whether the account's trial is still running at now.
func (u *User) IsTrial(now time.Time) bool {
	return u.TrialEndsAt != nil && u.TrialEndsAt.After(now)
}

// IsPremium reports whether the account has an active paid subscription at now.
// A subscribed account with no end timestamp never expires.
func (u *User) IsPremium(now time.Time) bool {
	if !u.IsSubscribed {
		return false
	}
	return u.SubscriptionEndsAt == nil || u.SubscriptionEndsAt.After(now)
}

// Profile is the public-safe projection of a User returned to clients.
type Profile struct {
	ID                 uint    `json:"id"`
	Email              string  `json:"email"`
	FirstName          string  `json:"firstName"`
	LastName           string  `json:"lastName"`
	Username           string  `json:"username"`
	StateID            uint    `json:"state"`
	MinCreditsRequired float64 `json:"minCreditsRequired"`
	HoursPerCredit     float64 `json:"hoursPerCredit"`
	ProfilePicture     string  `json:"profilePicture"`
	IsTrial            bool    `json:"isTrial"`
	IsPremium          bool    `json:"isPremium"`
}

// StateRequirement is a reference region with its schooling policy numbers.
// Read-only from the auth service's perspective.
type StateRequirement struct {
	ID                 uint
	Name               string
	MinCreditsRequired float64
	HoursPerCredit     float64
}

// Student is a child record owned by a User.
type Student struct {
	ID             uint
	UserID         uint
	FirstName      string
	LastName       string
	Grade          string
	ProfilePicture string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// DailyLog is a single day's schooling entry for a Student.
type DailyLog struct {
	ID              uint
	StudentID       uint
	Subject         string
	DurationMinutes int
	Notes           string
	LogDate         time.Time
	CreatedAt       time.Time
}

// AuthResult is the outcome of a successful login: the signed session token
// plus the projection the client renders immediately.
type AuthResult struct {
	User      *User
	Token     string
	ExpiresIn int64
}

// TokenClaims are the decoded contents of a session token.
type TokenClaims struct {
	UserID    uint   `json:"user_id"`
	Role      string `json:"role"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// AdminUserRow is one row of the admin user listing, annotated with the
// number of dependent student records.
type AdminUserRow struct {
	User         User
	StudentCount int64
}

// Registration carries the fields submitted with the registration OTP.
type Registration struct {
	FirstName string
	LastName  string
	Email     string
	Username  string
	Password  string
	StateID   uint
	Code      string
}
