package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/trackmyhomeschool/homeschool/domain"
	"github.com/trackmyhomeschool/homeschool/internal/mocks"
)

func newAuthServiceForTest(
	userRepo *mocks.MockUserRepository,
	stateRepo *mocks.MockStateRepository,
	passwordSvc *mocks.MockPasswordService,
	tokenSvc *mocks.MockTokenService,
	otpSvc *mocks.MockOTPService,
) domain.AuthService {
	return NewAuthService(userRepo, stateRepo, passwordSvc, tokenSvc, otpSvc, 7*24*time.Hour)
}

func validUser() *domain.User {
	return &domain.User{
		ID:                 7,
		FirstName:          "Jane",
		LastName:           "Doe",
		Email:              "jane@example.com",
		Username:           "janedoe",
		PasswordHash:       "hashed_Secret1!",
		Role:               "user",
		StateID:            3,
		MinCreditsRequired: 20,
		HoursPerCredit:     120,
	}
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name          string
		identifier    string
		password      string
		setupMocks    func(*mocks.MockUserRepository, *mocks.MockPasswordService)
		expectedError error
	}{
		{
			name:       "successful login by email",
			identifier: "jane@example.com",
			password:   "Secret1!",
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService) {
				userRepo.FindByEmailOrUsernameFunc = func(ctx context.Context, identifier string) (*domain.User, error) {
					return validUser(), nil
				}
			},
			expectedError: nil,
		},
		{
			name:       "successful login by username",
			identifier: "janedoe",
			password:   "Secret1!",
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService) {
				userRepo.FindByEmailOrUsernameFunc = func(ctx context.Context, identifier string) (*domain.User, error) {
					if identifier != "janedoe" {
						t.Errorf("expected lookup by %q, got %q", "janedoe", identifier)
					}
					return validUser(), nil
				}
			},
			expectedError: nil,
		},
		{
			name:       "unknown identifier",
			identifier: "nobody@example.com",
			password:   "Secret1!",
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService) {
				// default FindByEmailOrUsername returns ErrUserNotFound
			},
			expectedError: domain.ErrInvalidCredentials,
		},
		{
			name:       "wrong password",
			identifier: "jane@example.com",
			password:   "wrong",
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService) {
				userRepo.FindByEmailOrUsernameFunc = func(ctx context.Context, identifier string) (*domain.User, error) {
					return validUser(), nil
				}
			},
			expectedError: domain.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			passwordSvc := mocks.NewMockPasswordService()
			tt.setupMocks(userRepo, passwordSvc)

			svc := newAuthServiceForTest(userRepo, mocks.NewMockStateRepository(), passwordSvc, mocks.NewMockTokenService(), mocks.NewMockOTPService())

			result, err := svc.Login(context.Background(), tt.identifier, tt.password)

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
				if result != nil {
					t.Error("expected nil result on failure")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Token == "" {
				t.Error("expected a session token")
			}
			if result.User == nil || result.User.ID != 7 {
				t.Error("expected the authenticated user in the result")
			}
			if result.ExpiresIn != int64((7 * 24 * time.Hour).Seconds()) {
				t.Errorf("expected 7-day expiry, got %d seconds", result.ExpiresIn)
			}
		})
	}
}

func TestAuthService_LoginFailuresAreIndistinguishable(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	users := map[string]*domain.User{"jane@example.com": validUser()}
	userRepo.FindByEmailOrUsernameFunc = func(ctx context.Context, identifier string) (*domain.User, error) {
		if u, ok := users[identifier]; ok {
			return u, nil
		}
		return nil, domain.ErrUserNotFound
	}

	svc := newAuthServiceForTest(userRepo, mocks.NewMockStateRepository(), mocks.NewMockPasswordService(), mocks.NewMockTokenService(), mocks.NewMockOTPService())

	_, errNoUser := svc.Login(context.Background(), "ghost@example.com", "Secret1!")
	_, errBadPass := svc.Login(context.Background(), "jane@example.com", "wrong")

	if !errors.Is(errNoUser, domain.ErrInvalidCredentials) || !errors.Is(errBadPass, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for both, got %v and %v", errNoUser, errBadPass)
	}
	if errNoUser.Error() != errBadPass.Error() {
		t.Error("missing-user and wrong-password must be indistinguishable")
	}
}

func TestAuthService_RequestRegistrationCode(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		setupMocks    func(*mocks.MockUserRepository, *mocks.MockOTPService)
		expectedError error
	}{
		{
			name:  "issues code for new email",
			email: "new@example.com",
			setupMocks: func(userRepo *mocks.MockUserRepository, otpSvc *mocks.MockOTPService) {
			},
			expectedError: nil,
		},
		{
			name:  "rejects email without at sign",
			email: "not-an-email",
			setupMocks: func(userRepo *mocks.MockUserRepository, otpSvc *mocks.MockOTPService) {
				otpSvc.IssueFunc = func(ctx context.Context, email, subject string) error {
					t.Error("no code should be issued for an invalid email")
					return nil
				}
			},
			expectedError: domain.ErrInvalidEmail,
		},
		{
			name:  "rejects already registered email",
			email: "jane@example.com",
			setupMocks: func(userRepo *mocks.MockUserRepository, otpSvc *mocks.MockOTPService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return validUser(), nil
				}
			},
			expectedError: domain.ErrEmailTaken,
		},
		{
			name:  "surfaces delivery failure",
			email: "new@example.com",
			setupMocks: func(userRepo *mocks.MockUserRepository, otpSvc *mocks.MockOTPService) {
				otpSvc.IssueFunc = func(ctx context.Context, email, subject string) error {
					return domain.ErrDeliveryFailed
				}
			},
			expectedError: domain.ErrDeliveryFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			otpSvc := mocks.NewMockOTPService()
			tt.setupMocks(userRepo, otpSvc)

			svc := newAuthServiceForTest(userRepo, mocks.NewMockStateRepository(), mocks.NewMockPasswordService(), mocks.NewMockTokenService(), otpSvc)

			err := svc.RequestRegistrationCode(context.Background(), tt.email)
			if !errors.Is(err, tt.expectedError) {
				t.Fatalf("expected error %v, got %v", tt.expectedError, err)
			}
		})
	}
}

func TestAuthService_CompleteRegistration(t *testing.T) {
	registration := domain.Registration{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "new@example.com",
		Username:  "janedoe",
		Password:  "Secret1!",
		StateID:   3,
		Code:      "123456",
	}

	tests := []struct {
		name          string
		setupMocks    func(*mocks.MockUserRepository, *mocks.MockStateRepository, *mocks.MockOTPService)
		expectedError error
		validateUser  func(t *testing.T, user *domain.User)
	}{
		{
			name: "successful registration denormalizes state fields",
			setupMocks: func(userRepo *mocks.MockUserRepository, stateRepo *mocks.MockStateRepository, otpSvc *mocks.MockOTPService) {
				stateRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.StateRequirement, error) {
					return &domain.StateRequirement{ID: 3, Name: "Ohio", MinCreditsRequired: 20, HoursPerCredit: 120}, nil
				}
				userRepo.CreateFunc = func(ctx context.Context, user *domain.User) error {
					user.ID = 11
					return nil
				}
			},
			validateUser: func(t *testing.T, user *domain.User) {
				if user.MinCreditsRequired != 20 || user.HoursPerCredit != 120 {
					t.Errorf("expected denormalized fields (20, 120), got (%v, %v)", user.MinCreditsRequired, user.HoursPerCredit)
				}
				if user.StateID != 3 {
					t.Errorf("expected state id 3, got %d", user.StateID)
				}
				if user.PasswordHash == "Secret1!" {
					t.Error("password stored in plaintext")
				}
				if user.Role != "user" {
					t.Errorf("expected role user, got %q", user.Role)
				}
			},
		},
		{
			name: "wrong code",
			setupMocks: func(userRepo *mocks.MockUserRepository, stateRepo *mocks.MockStateRepository, otpSvc *mocks.MockOTPService) {
				otpSvc.VerifyFunc = func(ctx context.Context, email, code string) error {
					return domain.ErrCodeInvalidOrExpired
				}
			},
			expectedError: domain.ErrCodeInvalidOrExpired,
		},
		{
			name: "email already taken",
			setupMocks: func(userRepo *mocks.MockUserRepository, stateRepo *mocks.MockStateRepository, otpSvc *mocks.MockOTPService) {
				userRepo.FindByEmailOrUsernameFunc = func(ctx context.Context, identifier string) (*domain.User, error) {
					if identifier == "new@example.com" {
						return validUser(), nil
					}
					return nil, domain.ErrUserNotFound
				}
			},
			expectedError: domain.ErrEmailOrUsernameTaken,
		},
		{
			name: "username already taken",
			setupMocks: func(userRepo *mocks.MockUserRepository, stateRepo *mocks.MockStateRepository, otpSvc *mocks.MockOTPService) {
				userRepo.FindByEmailOrUsernameFunc = func(ctx context.Context, identifier string) (*domain.User, error) {
					if identifier == "janedoe" {
						return validUser(), nil
					}
					return nil, domain.ErrUserNotFound
				}
			},
			expectedError: domain.ErrEmailOrUsernameTaken,
		},
		{
			name: "unknown state",
			setupMocks: func(userRepo *mocks.MockUserRepository, stateRepo *mocks.MockStateRepository, otpSvc *mocks.MockOTPService) {
				stateRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.StateRequirement, error) {
					return nil, domain.ErrInvalidState
				}
			},
			expectedError: domain.ErrInvalidState,
		},
		{
			name: "concurrent registration loses via unique index",
			setupMocks: func(userRepo *mocks.MockUserRepository, stateRepo *mocks.MockStateRepository, otpSvc *mocks.MockOTPService) {
				userRepo.CreateFunc = func(ctx context.Context, user *domain.User) error {
					return domain.ErrEmailOrUsernameTaken
				}
			},
			expectedError: domain.ErrEmailOrUsernameTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			stateRepo := mocks.NewMockStateRepository()
			otpSvc := mocks.NewMockOTPService()
			tt.setupMocks(userRepo, stateRepo, otpSvc)

			svc := newAuthServiceForTest(userRepo, stateRepo, mocks.NewMockPasswordService(), mocks.NewMockTokenService(), otpSvc)

			user, err := svc.CompleteRegistration(context.Background(), registration)

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
				if user != nil {
					t.Error("expected nil user on failure")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validateUser != nil {
				tt.validateUser(t, user)
			}
		})
	}
}

func TestAuthService_CompleteRegistrationPurgesCodes(t *testing.T) {
	otpSvc := mocks.NewMockOTPService()
	consumed := ""
	otpSvc.ConsumeFunc = func(ctx context.Context, email string) error {
		consumed = email
		return nil
	}

	svc := newAuthServiceForTest(mocks.NewMockUserRepository(), mocks.NewMockStateRepository(), mocks.NewMockPasswordService(), mocks.NewMockTokenService(), otpSvc)

	_, err := svc.CompleteRegistration(context.Background(), domain.Registration{
		FirstName: "Jane", LastName: "Doe",
		Email: "new@example.com", Username: "janedoe",
		Password: "Secret1!", StateID: 3, Code: "123456",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if consumed != "new@example.com" {
		t.Errorf("expected codes purged for new@example.com, got %q", consumed)
	}
}

func TestAuthService_RequestPasswordReset(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		setupMocks    func(*mocks.MockUserRepository, *mocks.MockOTPService)
		expectedError error
	}{
		{
			name:  "issues code for registered email",
			email: "jane@example.com",
			setupMocks: func(userRepo *mocks.MockUserRepository, otpSvc *mocks.MockOTPService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return validUser(), nil
				}
			},
		},
		{
			name:  "reveals unknown email",
			email: "ghost@example.com",
			setupMocks: func(userRepo *mocks.MockUserRepository, otpSvc *mocks.MockOTPService) {
			},
			expectedError: domain.ErrEmailNotFound,
		},
		{
			name:  "rejects malformed email",
			email: "ghost",
			setupMocks: func(userRepo *mocks.MockUserRepository, otpSvc *mocks.MockOTPService) {
			},
			expectedError: domain.ErrInvalidEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			otpSvc := mocks.NewMockOTPService()
			tt.setupMocks(userRepo, otpSvc)

			svc := newAuthServiceForTest(userRepo, mocks.NewMockStateRepository(), mocks.NewMockPasswordService(), mocks.NewMockTokenService(), otpSvc)

			err := svc.RequestPasswordReset(context.Background(), tt.email)
			if !errors.Is(err, tt.expectedError) {
				t.Fatalf("expected error %v, got %v", tt.expectedError, err)
			}
		})
	}
}

func TestAuthService_VerifyResetCodeConsumesCode(t *testing.T) {
	otpSvc := mocks.NewMockOTPService()
	consumed := false
	otpSvc.ConsumeFunc = func(ctx context.Context, email string) error {
		consumed = true
		return nil
	}

	svc := newAuthServiceForTest(mocks.NewMockUserRepository(), mocks.NewMockStateRepository(), mocks.NewMockPasswordService(), mocks.NewMockTokenService(), otpSvc)

	if err := svc.VerifyResetCode(context.Background(), "jane@example.com", "123456"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !consumed {
		t.Error("expected the code to be consumed on verification")
	}
}

func TestAuthService_ResetPassword(t *testing.T) {
	tests := []struct {
		name          string
		newPassword   string
		setupMocks    func(*mocks.MockUserRepository, *mocks.MockPasswordService)
		expectedError error
	}{
		{
			name:        "successful reset",
			newPassword: "Abc1!23",
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return validUser(), nil
				}
			},
		},
		{
			name:        "policy rejected before any lookup",
			newPassword: "abc123",
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService) {
				passwordSvc.CheckPolicyFunc = func(password string) error {
					return domain.ErrWeakPassword
				}
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					t.Error("no lookup expected when the policy fails")
					return nil, domain.ErrUserNotFound
				}
			},
			expectedError: domain.ErrWeakPassword,
		},
		{
			name:        "unknown account",
			newPassword: "Abc1!23",
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService) {
			},
			expectedError: domain.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			passwordSvc := mocks.NewMockPasswordService()
			tt.setupMocks(userRepo, passwordSvc)

			svc := newAuthServiceForTest(userRepo, mocks.NewMockStateRepository(), passwordSvc, mocks.NewMockTokenService(), mocks.NewMockOTPService())

			err := svc.ResetPassword(context.Background(), "jane@example.com", tt.newPassword)
			if !errors.Is(err, tt.expectedError) {
				t.Fatalf("expected error %v, got %v", tt.expectedError, err)
			}
		})
	}
}

func TestAuthService_FindAccountEmail(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	userRepo.FindByEmailOrUsernameFunc = func(ctx context.Context, identifier string) (*domain.User, error) {
		if identifier == "janedoe" {
			return validUser(), nil
		}
		return nil, domain.ErrUserNotFound
	}

	svc := newAuthServiceForTest(userRepo, mocks.NewMockStateRepository(), mocks.NewMockPasswordService(), mocks.NewMockTokenService(), mocks.NewMockOTPService())

	// Surrounding whitespace in the submitted identifier is trimmed.
	email, err := svc.FindAccountEmail(context.Background(), "  janedoe ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if email != "jane@example.com" {
		t.Errorf("expected jane@example.com, got %q", email)
	}

	_, err = svc.FindAccountEmail(context.Background(), "ghost")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_CurrentUser(t *testing.T) {
	future := time.Now().Add(48 * time.Hour)

	userRepo := mocks.NewMockUserRepository()
	userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
		u := validUser()
		u.TrialEndsAt = &future
		u.IsSubscribed = true
		return u, nil
	}

	svc := newAuthServiceForTest(userRepo, mocks.NewMockStateRepository(), mocks.NewMockPasswordService(), mocks.NewMockTokenService(), mocks.NewMockOTPService())

	profile, err := svc.CurrentUser(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !profile.IsTrial {
		t.Error("expected isTrial true")
	}
	if !profile.IsPremium {
		t.Error("expected isPremium true")
	}
	if profile.MinCreditsRequired != 20 || profile.HoursPerCredit != 120 {
		t.Error("expected the denormalized requirement fields in the profile")
	}
}
