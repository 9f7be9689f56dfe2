package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/trackmyhomeschool/homeschool/domain"
)

// StudentHandlers handles student record HTTP requests
type StudentHandlers struct {
	studentSvc domain.StudentService
}

// NewStudentHandlers creates new student handlers
func NewStudentHandlers(studentSvc domain.StudentService) *StudentHandlers {
	return &StudentHandlers{studentSvc: studentSvc}
}

// CreateStudentRequest represents a student creation request
type CreateStudentRequest struct {
	FirstName      string `json:"firstName" binding:"required"`
	LastName       string `json:"lastName" binding:"required"`
	Grade          string `json:"grade"`
	ProfilePicture string `json:"profilePicture"`
}

// AddLogRequest represents a daily log entry request
type AddLogRequest struct {
	Subject         string `json:"subject" binding:"required"`
	DurationMinutes int    `json:"durationMinutes" binding:"required,min=1"`
	Notes           string `json:"notes"`
}

// Create adds a student owned by the authenticated user
func (h *StudentHandlers) Create(c *gin.Context) {
	var req CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	student := &domain.Student{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Grade:          req.Grade,
		ProfilePicture: req.ProfilePicture,
	}
	if err := h.studentSvc.Create(c.Request.Context(), currentUserID(c), student); err != nil {
		log.Printf("student create failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create student"})
		return
	}

	c.JSON(http.StatusCreated, studentJSON(student))
}

// List returns the authenticated user's students
func (h *StudentHandlers) List(c *gin.Context) {
	students, err := h.studentSvc.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		log.Printf("student listing failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch students"})
		return
	}

	out := make([]gin.H, 0, len(students))
	for i := range students {
		out = append(out, studentJSON(&students[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get returns one student by id
func (h *StudentHandlers) Get(c *gin.Context) {
	studentID, ok := pathID(c)
	if !ok {
		return
	}

	student, err := h.studentSvc.Get(c.Request.Context(), currentUserID(c), studentID)
	if err != nil {
		if errors.Is(err, domain.ErrStudentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Student not found"})
			return
		}
		log.Printf("student lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch student"})
		return
	}

	c.JSON(http.StatusOK, studentJSON(student))
}

// Delete removes a student and that student's daily logs
func (h *StudentHandlers) Delete(c *gin.Context) {
	studentID, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.studentSvc.Delete(c.Request.Context(), currentUserID(c), studentID); err != nil {
		if errors.Is(err, domain.ErrStudentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Student not found"})
			return
		}
		log.Printf("student delete failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete student"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Student and associated logs deleted"})
}

// AddLog records a daily log entry for a student
func (h *StudentHandlers) AddLog(c *gin.Context) {
	studentID, ok := pathID(c)
	if !ok {
		return
	}

	var req AddLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	entry := &domain.DailyLog{
		StudentID:       studentID,
		Subject:         req.Subject,
		DurationMinutes: req.DurationMinutes,
		Notes:           req.Notes,
	}
	if err := h.studentSvc.AddLog(c.Request.Context(), currentUserID(c), entry); err != nil {
		if errors.Is(err, domain.ErrStudentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Student not found"})
			return
		}
		log.Printf("daily log create failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to record log"})
		return
	}

	c.JSON(http.StatusCreated, logJSON(entry))
}

// TodayLog returns the student's log entry for the current day
func (h *StudentHandlers) TodayLog(c *gin.Context) {
	studentID, ok := pathID(c)
	if !ok {
		return
	}

	entry, err := h.studentSvc.LogForDay(c.Request.Context(), currentUserID(c), studentID, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrStudentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Student not found"})
		case errors.Is(err, domain.ErrLogNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "No log for today"})
		default:
			log.Printf("daily log lookup failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch log"})
		}
		return
	}

	c.JSON(http.StatusOK, logJSON(entry))
}

func currentUserID(c *gin.Context) uint {
	userID, _ := c.Get("user_id")
	id, _ := userID.(uint)
	return id
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

func studentJSON(s *domain.Student) gin.H {
	return gin.H{
		"id":             s.ID,
		"firstName":      s.FirstName,
		"lastName":       s.LastName,
		"grade":          s.Grade,
		"profilePicture": s.ProfilePicture,
		"createdAt":      s.CreatedAt,
	}
}

func logJSON(l *domain.DailyLog) gin.H {
	return gin.H{
		"id":              l.ID,
		"studentId":       l.StudentID,
		"subject":         l.Subject,
		"durationMinutes": l.DurationMinutes,
		"notes":           l.Notes,
		"logDate":         l.LogDate,
	}
}
