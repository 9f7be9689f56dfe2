package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/trackmyhomeschool/homeschool/internal/http/handlers"
	"github.com/trackmyhomeschool/homeschool/internal/http/middleware"
)

func BuildRouter(ah *handlers.AuthHandlers, sh *handlers.StudentHandlers, adh *handlers.AdminHandlers, sth *handlers.StateHandlers, sessionMW *middleware.AuthMW, cb middleware.CasbinMiddleware) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	r.GET("/api/states", sth.List)

	auth := r.Group("/api/auth")
	auth.POST("/login", ah.Login)
	auth.POST("/logout", ah.Logout)
	auth.POST("/send-otp", ah.SendOTP)
	auth.POST("/register", ah.Register)
	auth.POST("/find-email", ah.FindEmail)
	auth.POST("/send-reset-otp", ah.SendResetOTP)
	auth.POST("/verify-reset-otp", ah.VerifyResetOTP)
	auth.POST("/reset-password", ah.ResetPassword)

	me := r.Group("/api/auth").Use(sessionMW.WithSession(), cb.Enforce())
	me.GET("/me", ah.Me)

	students := r.Group("/api/students").Use(sessionMW.WithSession(), cb.Enforce())
	students.POST("", sh.Create)
	students.GET("", sh.List)
	students.GET("/:id", sh.Get)
	students.DELETE("/:id", sh.Delete)
	students.POST("/:id/logs", sh.AddLog)
	students.GET("/:id/logs/today", sh.TodayLog)

	r.POST("/api/admin/login", adh.Login)

	admin := r.Group("/api/admin").Use(sessionMW.WithSession(), cb.Enforce())
	admin.GET("/users", adh.ListUsers)
	admin.DELETE("/users/:id", adh.DeleteUser)

	return r
}
