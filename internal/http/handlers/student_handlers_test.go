package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/trackmyhomeschool/homeschool/domain"
	"github.com/trackmyhomeschool/homeschool/internal/mocks"
)

func setupStudentRouter(studentSvc domain.StudentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewStudentHandlers(studentSvc)

	r := gin.New()
	// Stand-in for the session middleware.
	r.Use(func(c *gin.Context) {
		c.Set("user_id", uint(7))
	})
	students := r.Group("/api/students")
	{
		students.POST("", h.Create)
		students.GET("", h.List)
		students.GET("/:id", h.Get)
		students.DELETE("/:id", h.Delete)
		students.POST("/:id/logs", h.AddLog)
		students.GET("/:id/logs/today", h.TodayLog)
	}
	return r
}

func TestStudentCreateHandler(t *testing.T) {
	studentSvc := mocks.NewMockStudentService()
	var gotUserID uint
	studentSvc.CreateFunc = func(ctx context.Context, userID uint, student *domain.Student) error {
		gotUserID = userID
		student.ID = 5
		return nil
	}
	r := setupStudentRouter(studentSvc)

	w := postJSON(r, "/api/students", gin.H{"firstName": "Sam", "lastName": "Doe", "grade": "8"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(7), gotUserID)
	assert.Contains(t, w.Body.String(), `"id":5`)
	assert.Contains(t, w.Body.String(), `"grade":"8"`)
}

func TestStudentCreateHandlerValidation(t *testing.T) {
	studentSvc := mocks.NewMockStudentService()
	studentSvc.CreateFunc = func(ctx context.Context, userID uint, student *domain.Student) error {
		t.Error("no create expected for an invalid payload")
		return nil
	}
	r := setupStudentRouter(studentSvc)

	w := postJSON(r, "/api/students", gin.H{"firstName": "Sam"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStudentListHandler(t *testing.T) {
	studentSvc := mocks.NewMockStudentService()
	studentSvc.ListFunc = func(ctx context.Context, userID uint) ([]domain.Student, error) {
		return []domain.Student{
			{ID: 5, UserID: userID, FirstName: "Sam", LastName: "Doe"},
			{ID: 6, UserID: userID, FirstName: "Alex", LastName: "Doe"},
		}, nil
	}
	r := setupStudentRouter(studentSvc)

	req := httptest.NewRequest(http.MethodGet, "/api/students", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"firstName":"Sam"`)
	assert.Contains(t, w.Body.String(), `"firstName":"Alex"`)
}

func TestStudentGetHandler(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		serviceErr     error
		expectedStatus int
	}{
		{"found", "/api/students/5", nil, http.StatusOK},
		{"not found", "/api/students/5", domain.ErrStudentNotFound, http.StatusNotFound},
		{"bad id", "/api/students/abc", nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			studentSvc := mocks.NewMockStudentService()
			studentSvc.GetFunc = func(ctx context.Context, userID, studentID uint) (*domain.Student, error) {
				if tt.serviceErr != nil {
					return nil, tt.serviceErr
				}
				return &domain.Student{ID: studentID, UserID: userID, FirstName: "Sam"}, nil
			}
			r := setupStudentRouter(studentSvc)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestStudentDeleteHandler(t *testing.T) {
	studentSvc := mocks.NewMockStudentService()
	deleted := uint(0)
	studentSvc.DeleteFunc = func(ctx context.Context, userID, studentID uint) error {
		deleted = studentID
		return nil
	}
	r := setupStudentRouter(studentSvc)

	req := httptest.NewRequest(http.MethodDelete, "/api/students/5", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(5), deleted)
}

func TestStudentAddLogHandler(t *testing.T) {
	studentSvc := mocks.NewMockStudentService()
	var got *domain.DailyLog
	studentSvc.AddLogFunc = func(ctx context.Context, userID uint, entry *domain.DailyLog) error {
		got = entry
		entry.ID = 9
		return nil
	}
	r := setupStudentRouter(studentSvc)

	w := postJSON(r, "/api/students/5/logs", gin.H{"subject": "Math", "durationMinutes": 45, "notes": "fractions"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(5), got.StudentID)
	assert.Equal(t, "Math", got.Subject)
	assert.Equal(t, 45, got.DurationMinutes)
	assert.Contains(t, w.Body.String(), `"id":9`)
}

func TestStudentAddLogHandlerForeignStudent(t *testing.T) {
	studentSvc := mocks.NewMockStudentService()
	studentSvc.AddLogFunc = func(ctx context.Context, userID uint, entry *domain.DailyLog) error {
		return domain.ErrStudentNotFound
	}
	r := setupStudentRouter(studentSvc)

	w := postJSON(r, "/api/students/5/logs", gin.H{"subject": "Math", "durationMinutes": 45})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStudentTodayLogHandler(t *testing.T) {
	studentSvc := mocks.NewMockStudentService()
	studentSvc.LogForDayFunc = func(ctx context.Context, userID, studentID uint, day time.Time) (*domain.DailyLog, error) {
		assert.WithinDuration(t, time.Now(), day, time.Minute)
		return &domain.DailyLog{ID: 9, StudentID: studentID, Subject: "Math", DurationMinutes: 45, LogDate: day}, nil
	}
	r := setupStudentRouter(studentSvc)

	req := httptest.NewRequest(http.MethodGet, "/api/students/5/logs/today", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"subject":"Math"`)
}

func TestStudentTodayLogHandlerNoEntry(t *testing.T) {
	studentSvc := mocks.NewMockStudentService()
	studentSvc.LogForDayFunc = func(ctx context.Context, userID, studentID uint, day time.Time) (*domain.DailyLog, error) {
		return nil, domain.ErrLogNotFound
	}
	r := setupStudentRouter(studentSvc)

	req := httptest.NewRequest(http.MethodGet, "/api/students/5/logs/today", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "No log for today")
}
