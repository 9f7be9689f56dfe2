package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/trackmyhomeschool/homeschool/domain"
)

// OTPServiceImpl implements domain.OTPService
type OTPServiceImpl struct {
	codeRepo domain.CodeRepository
	mailSvc  domain.MailService
	config   OTPConfig
}

type OTPConfig struct {
	TTL    time.Duration
	Length int
}

// NewOTPService creates a new OTP service
func NewOTPService(codeRepo domain.CodeRepository, mailSvc domain.MailService, config OTPConfig) domain.OTPService {
	return &OTPServiceImpl{
		codeRepo: codeRepo,
		mailSvc:  mailSvc,
		config:   config,
	}
}

// Issue implements domain.OTPService. The code is persisted before the email
// goes out and stays persisted if delivery fails: a user who obtained the
// code through another channel can still complete the flow.
func (s *OTPServiceImpl) Issue(ctx context.Context, email, subject string) error {
	code, err := s.generateCode()
	if err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}

	// Replaces any outstanding code for this email.
	if err := s.codeRepo.Put(ctx, email, code); err != nil {
		return fmt.Errorf("failed to store code: %w", err)
	}

	body := fmt.Sprintf(
		"<p>Hi there,</p><p>Your OTP is: <strong>%s</strong></p><p>This code will expire in %d minutes.</p><br/><p>Thanks,<br/>Track My Homeschool Team</p>",
		code, int(s.config.TTL.Minutes()),
	)
	if err := s.mailSvc.Send(ctx, email, subject, body); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrDeliveryFailed, err)
	}

	return nil
}

// Verify implements domain.OTPService. Any live code matching the email and
// code pair verifies; the code is left in place for the caller to consume.
func (s *OTPServiceImpl) Verify(ctx context.Context, email, code string) error {
	stored, err := s.codeRepo.Find(ctx, email)
	if err != nil {
		return err
	}
	if stored != code {
		return domain.ErrCodeInvalidOrExpired
	}
	return nil
}

// Consume implements domain.OTPService, purging every outstanding code for
// the email.
func (s *OTPServiceImpl) Consume(ctx context.Context, email string) error {
	return s.codeRepo.Delete(ctx, email)
}

// generateCode draws a uniformly random code in [100000, 999999] for the
// configured six-digit length, or zero-padded digits otherwise.
func (s *OTPServiceImpl) generateCode() (string, error) {
	if s.config.Length == 6 {
		n, err := rand.Int(rand.Reader, big.NewInt(900000))
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d", n.Int64()+100000), nil
	}

	max := big.NewInt(1)
	for i := 0; i < s.config.Length; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", s.config.Length, n), nil
}
