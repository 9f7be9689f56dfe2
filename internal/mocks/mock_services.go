package mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/trackmyhomeschool/homeschool/domain"
)

// MockPasswordService implements domain.PasswordService interface for testing
type MockPasswordService struct {
	HashFunc        func(password string) (string, error)
	VerifyFunc      func(hashedPassword, password string) bool
	CheckPolicyFunc func(password string) error
}

// NewMockPasswordService creates a new MockPasswordService with default behaviors
func NewMockPasswordService() *MockPasswordService {
	return &MockPasswordService{}
}

// Hash hashes a password
func (m *MockPasswordService) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	// Default behavior: deterministic fake hash
	return "hashed_" + password, nil
}

// Verify checks a password against a hash
func (m *MockPasswordService) Verify(hashedPassword, password string) bool {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(hashedPassword, password)
	}
	// Default behavior: matches the fake hash format
	return hashedPassword == "hashed_"+password
}

// CheckPolicy validates a password against the policy
func (m *MockPasswordService) CheckPolicy(password string) error {
	if m.CheckPolicyFunc != nil {
		return m.CheckPolicyFunc(password)
	}
	// Default behavior: accepted
	return nil
}

// MockTokenService implements domain.TokenService interface for testing
type MockTokenService struct {
	GenerateFunc func(userID uint, role string) (string, error)
	ValidateFunc func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// Generate mints a session token
func (m *MockTokenService) Generate(userID uint, role string) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, role)
	}
	// Default behavior: deterministic fake token
	return fmt.Sprintf("token_user_%d_%s", userID, role), nil
}

// Validate decodes a session token
func (m *MockTokenService) Validate(token string) (*domain.TokenClaims, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(token)
	}
	if token == "" {
		return nil, domain.ErrTokenInvalid
	}
	now := time.Now().Unix()
	return &domain.TokenClaims{
		UserID:    1,
		Role:      "user",
		IssuedAt:  now,
		ExpiresAt: now + 7*24*3600,
	}, nil
}

// MockMailService implements domain.MailService interface for testing
type MockMailService struct {
	SendFunc func(ctx context.Context, to, subject, html string) error

	// Sent records every delivery attempt for assertion
	Sent []SentMail
}

// SentMail is one recorded delivery
type SentMail struct {
	To      string
	Subject string
	HTML    string
}

// NewMockMailService creates a new MockMailService with default behaviors
func NewMockMailService() *MockMailService {
	return &MockMailService{}
}

// Send records and optionally delegates a delivery
func (m *MockMailService) Send(ctx context.Context, to, subject, html string) error {
	m.Sent = append(m.Sent, SentMail{To: to, Subject: subject, HTML: html})
	if m.SendFunc != nil {
		return m.SendFunc(ctx, to, subject, html)
	}
	// Default behavior: delivered
	return nil
}

// MockOTPService implements domain.OTPService interface for testing
type MockOTPService struct {
	IssueFunc   func(ctx context.Context, email, subject string) error
	VerifyFunc  func(ctx context.Context, email, code string) error
	ConsumeFunc func(ctx context.Context, email string) error
}

// NewMockOTPService creates a new MockOTPService with default behaviors
func NewMockOTPService() *MockOTPService {
	return &MockOTPService{}
}

// Issue generates and delivers a code
func (m *MockOTPService) Issue(ctx context.Context, email, subject string) error {
	if m.IssueFunc != nil {
		return m.IssueFunc(ctx, email, subject)
	}
	// Default behavior: success
	return nil
}

// Verify checks a code against the live one
func (m *MockOTPService) Verify(ctx context.Context, email, code string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, email, code)
	}
	// Default behavior: valid
	return nil
}

// Consume purges the live code
func (m *MockOTPService) Consume(ctx context.Context, email string) error {
	if m.ConsumeFunc != nil {
		return m.ConsumeFunc(ctx, email)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var (
	_ domain.PasswordService = (*MockPasswordService)(nil)
	_ domain.TokenService    = (*MockTokenService)(nil)
	_ domain.MailService     = (*MockMailService)(nil)
	_ domain.OTPService      = (*MockOTPService)(nil)
)
