package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/trackmyhomeschool/homeschool/domain"
)

const specialChars = `!@#$%^&*(),.?":{}|<>`

// PasswordServiceImpl implements domain.PasswordService
type PasswordServiceImpl struct {
	cost int
}

// NewPasswordService creates a new password service
func NewPasswordService() domain.PasswordService {
	return &PasswordServiceImpl{
		cost: bcrypt.DefaultCost,
	}
}

// Hash implements domain.PasswordService
func (p *PasswordServiceImpl) Hash(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// Verify implements domain.PasswordService
func (p *PasswordServiceImpl) Verify(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}

// CheckPolicy implements domain.PasswordService. A password must be at least
// six characters and contain an uppercase letter, a lowercase letter, and one
// of the accepted special characters.
func (p *PasswordServiceImpl) CheckPolicy(password string) error {
	if len(password) < 6 {
		return domain.ErrWeakPassword
	}

	var hasUpper, hasLower, hasSpecial bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case strings.ContainsRune(specialChars, r):
			hasSpecial = true
		}
	}

	if !hasUpper || !hasLower || !hasSpecial {
		return domain.ErrWeakPassword
	}
	return nil
}
