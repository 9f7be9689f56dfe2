package app

import (
	"context"
	"log"
	"net/http"

	"github.com/trackmyhomeschool/homeschool/internal/config"
	httpx "github.com/trackmyhomeschool/homeschool/internal/http"
	"github.com/trackmyhomeschool/homeschool/internal/http/handlers"
	"github.com/trackmyhomeschool/homeschool/internal/http/middleware"
	"github.com/trackmyhomeschool/homeschool/internal/infrastructure/auth"
	"github.com/trackmyhomeschool/homeschool/internal/infrastructure/database"
	"github.com/trackmyhomeschool/homeschool/internal/services"

	"github.com/gin-gonic/gin"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	container, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer container.Close()

	if err := database.AutoMigrate(container.DB); err != nil {
		return err
	}
	if err := container.RedisClient.Ping(context.Background()).Err(); err != nil {
		return err
	}

	cas, err := auth.NewCasbinService(container.DB, cfg.CasbinModelPath)
	if err != nil {
		return err
	}

	cookie := handlers.CookieSettings{
		Name:   cfg.CookieName,
		Domain: cfg.CookieDomain,
		Secure: cfg.CookieSecure,
		MaxAge: int(cfg.SessionTTL.Seconds()),
	}
	authH := handlers.NewAuthHandlers(container.AuthSvc, cookie)
	studentH := handlers.NewStudentHandlers(container.StudentSvc)
	adminH := handlers.NewAdminHandlers(container.AdminSvc, cookie)
	stateH := handlers.NewStateHandlers(container.StateRepo)

	sessionMW := middleware.NewAuthMW(container.TokenSvc, cfg.CookieName)
	casbinMW := middleware.NewCasbinMW(cas.E)

	r := httpx.BuildRouter(authH, studentH, adminH, stateH, sessionMW, casbinMW)

	policies, _ := cas.E.GetPolicy()
	if len(policies) == 0 {
		cas.E.AddPolicy("role_admin", "/api/admin/*", "(GET|POST|PUT|DELETE)")
		cas.E.AddPolicy("role_user", "/api/auth/me", "GET")
		cas.E.AddPolicy("role_user", "/api/students", "(GET|POST)")
		cas.E.AddPolicy("role_user", "/api/students/*", "(GET|POST|DELETE)")
		_ = cas.E.SavePolicy()
		log.Println("casbin: seeded default policies")
	}

	stopRetention := services.StartLogRetention(container.DailyLogRepo, cfg.LogMaxAge, cfg.SweepInterval)
	defer stopRetention()

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
