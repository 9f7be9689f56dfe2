package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trackmyhomeschool/homeschool/domain"
)

// CookieSettings carries the session cookie attributes shared by login and
// logout.
type CookieSettings struct {
	Name   string
	Domain string
	Secure bool
	MaxAge int
}

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc domain.AuthService
	cookie  CookieSettings
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService, cookie CookieSettings) *AuthHandlers {
	return &AuthHandlers{
		authSvc: authSvc,
		cookie:  cookie,
	}
}

// LoginRequest represents login request
type LoginRequest struct {
	EmailOrUsername string `json:"emailOrUsername" binding:"required"`
	Password        string `json:"password" binding:"required"`
}

// SendOTPRequest represents a code issuance request
type SendOTPRequest struct {
	Email string `json:"email" binding:"required"`
}

// RegisterRequest represents the OTP-gated registration request
type RegisterRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required,min=6"`
	State     uint   `json:"state" binding:"required"`
	OTP       string `json:"otp" binding:"required"`
}

// FindEmailRequest represents a reverse account lookup request
type FindEmailRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail" binding:"required"`
}

// VerifyResetOTPRequest represents a reset code verification request
type VerifyResetOTPRequest struct {
	Email string `json:"email" binding:"required"`
	OTP   string `json:"otp" binding:"required"`
}

// ResetPasswordRequest represents the final password reset request
type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// Login handles user login and sets the session cookie
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "emailOrUsername and password are required"})
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.EmailOrUsername, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
			return
		}
		log.Printf("login failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Login failed"})
		return
	}

	h.setSessionCookie(c, result.Token, h.cookie.MaxAge)

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user": gin.H{
			"id":       result.User.ID,
			"name":     result.User.FirstName + " " + result.User.LastName,
			"email":    result.User.Email,
			"username": result.User.Username,
			"state":    result.User.StateID,
		},
	})
}

// Logout clears the session cookie. The token itself stays valid until its
// expiry; there is no server-side revocation.
func (h *AuthHandlers) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Me returns the current user's profile with derived trial/premium flags
func (h *AuthHandlers) Me(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	profile, err := h.authSvc.CurrentUser(c.Request.Context(), userID.(uint))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		log.Printf("profile lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// SendOTP issues a registration code to an unregistered email
func (h *AuthHandlers) SendOTP(c *gin.Context) {
	var req SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "email is required"})
		return
	}

	err := h.authSvc.RequestRegistrationCode(c.Request.Context(), req.Email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidEmail):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email"})
		case errors.Is(err, domain.ErrEmailTaken):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email already registered"})
		case errors.Is(err, domain.ErrDeliveryFailed):
			log.Printf("otp delivery failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to send OTP"})
		default:
			log.Printf("otp issuance failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to send OTP"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OTP sent successfully"})
}

// Register completes an OTP-verified registration
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	_, err := h.authSvc.CompleteRegistration(c.Request.Context(), domain.Registration{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Username:  req.Username,
		Password:  req.Password,
		StateID:   req.State,
		Code:      req.OTP,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCodeInvalidOrExpired):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or expired OTP"})
		case errors.Is(err, domain.ErrEmailOrUsernameTaken):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email or username already exists"})
		case errors.Is(err, domain.ErrInvalidState):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Selected state is invalid"})
		default:
			log.Printf("registration failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Registration failed"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

// FindEmail resolves a username or email to the account's email address
func (h *AuthHandlers) FindEmail(c *gin.Context) {
	var req FindEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username or email is required."})
		return
	}

	email, err := h.authSvc.FindAccountEmail(c.Request.Context(), req.UsernameOrEmail)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
			return
		}
		log.Printf("account lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error looking up user."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"email": email})
}

// SendResetOTP issues a password reset code to a registered email
func (h *AuthHandlers) SendResetOTP(c *gin.Context) {
	var req SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "email is required"})
		return
	}

	err := h.authSvc.RequestPasswordReset(c.Request.Context(), req.Email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidEmail):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email"})
		case errors.Is(err, domain.ErrEmailNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email not found."})
		default:
			log.Printf("reset otp failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to send OTP"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OTP sent successfully"})
}

// VerifyResetOTP verifies and consumes a password reset code
func (h *AuthHandlers) VerifyResetOTP(c *gin.Context) {
	var req VerifyResetOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and OTP are required."})
		return
	}

	if err := h.authSvc.VerifyResetCode(c.Request.Context(), req.Email, req.OTP); err != nil {
		if errors.Is(err, domain.ErrCodeInvalidOrExpired) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or expired OTP."})
			return
		}
		log.Printf("reset otp verification failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to verify OTP."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OTP verified."})
}

// ResetPassword sets a new password after a verified reset code
func (h *AuthHandlers) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and new password are required."})
		return
	}

	err := h.authSvc.ResetPassword(c.Request.Context(), req.Email, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrWeakPassword):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Password does not meet security requirements."})
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
		default:
			log.Printf("password reset failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to reset password."})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset successful."})
}

func (h *AuthHandlers) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, token, maxAge, "/", h.cookie.Domain, h.cookie.Secure, true)
}
