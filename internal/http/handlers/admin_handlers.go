package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/trackmyhomeschool/homeschool/domain"
)

// AdminHandlers handles administrative HTTP requests
type AdminHandlers struct {
	adminSvc domain.AdminService
	cookie   CookieSettings
}

// NewAdminHandlers creates new admin handlers
func NewAdminHandlers(adminSvc domain.AdminService, cookie CookieSettings) *AdminHandlers {
	return &AdminHandlers{
		adminSvc: adminSvc,
		cookie:   cookie,
	}
}

// AdminLoginRequest represents an admin login request
type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login validates the admin principal and issues an admin session cookie
func (h *AdminHandlers) Login(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "username and password are required"})
		return
	}

	result, err := h.adminSvc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		log.Printf("admin login failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Login failed"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, result.Token, h.cookie.MaxAge, "/", h.cookie.Domain, h.cookie.Secure, true)

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListUsers returns every user annotated with its student count
func (h *AdminHandlers) ListUsers(c *gin.Context) {
	rows, err := h.adminSvc.ListUsers(c.Request.Context())
	if err != nil {
		log.Printf("admin user listing failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch users"})
		return
	}

	out := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		out = append(out, gin.H{
			"id":           row.User.ID,
			"firstName":    row.User.FirstName,
			"lastName":     row.User.LastName,
			"email":        row.User.Email,
			"username":     row.User.Username,
			"state":        row.User.StateID,
			"isSubscribed": row.User.IsSubscribed,
			"createdAt":    row.User.CreatedAt,
			"studentCount": row.StudentCount,
		})
	}

	c.JSON(http.StatusOK, out)
}

// DeleteUser removes a user and cascades to students and daily logs
func (h *AdminHandlers) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id"})
		return
	}

	if err := h.adminSvc.DeleteUser(c.Request.Context(), uint(id)); err != nil {
		log.Printf("admin user delete failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User and all associated students and logs deleted"})
}
