package app

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/trackmyhomeschool/homeschool/domain"
	"github.com/trackmyhomeschool/homeschool/internal/config"
	"github.com/trackmyhomeschool/homeschool/internal/infrastructure/auth"
	"github.com/trackmyhomeschool/homeschool/internal/infrastructure/database"
	"github.com/trackmyhomeschool/homeschool/internal/infrastructure/notifications"
	"github.com/trackmyhomeschool/homeschool/internal/infrastructure/repositories"
	"github.com/trackmyhomeschool/homeschool/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config

	DB          *gorm.DB
	RedisClient *redis.Client

	UserRepo     domain.UserRepository
	StateRepo    domain.StateRepository
	StudentRepo  domain.StudentRepository
	DailyLogRepo domain.DailyLogRepository
	CodeRepo     domain.CodeRepository

	PasswordSvc domain.PasswordService
	TokenSvc    domain.TokenService
	MailSvc     domain.MailService
	OTPSvc      domain.OTPService
	AuthSvc     domain.AuthService
	AdminSvc    domain.AdminService
	StudentSvc  domain.StudentService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	container := &Container{Config: cfg}

	if err := container.initDatabase(); err != nil {
		return nil, err
	}
	container.initRedis()
	container.initRepositories()
	container.initServices()

	return container, nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.DSN)
	if err != nil {
		return err
	}
	c.DB = db
	return nil
}

func (c *Container) initRedis() {
	c.RedisClient = database.NewRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB).Client
}

func (c *Container) initRepositories() {
	c.UserRepo = repositories.NewUserRepository(c.DB)
	c.StateRepo = repositories.NewStateRepository(c.DB)
	c.StudentRepo = repositories.NewStudentRepository(c.DB)
	c.DailyLogRepo = repositories.NewDailyLogRepository(c.DB)
	c.CodeRepo = repositories.NewCodeRepository(c.RedisClient, c.Config.OTPTTL)
}

func (c *Container) initServices() {
	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(c.Config.JWTSecret, c.Config.JWTIssuer, c.Config.SessionTTL)
	c.MailSvc = notifications.NewResendService(c.Config.ResendAPIKey, c.Config.MailFrom)

	c.OTPSvc = services.NewOTPService(c.CodeRepo, c.MailSvc, services.OTPConfig{
		TTL:    c.Config.OTPTTL,
		Length: c.Config.OTPLength,
	})

	c.AuthSvc = services.NewAuthService(
		c.UserRepo,
		c.StateRepo,
		c.PasswordSvc,
		c.TokenSvc,
		c.OTPSvc,
		c.Config.SessionTTL,
	)

	c.AdminSvc = services.NewAdminService(
		c.UserRepo,
		c.PasswordSvc,
		c.TokenSvc,
		c.Config.AdminUsername,
		c.Config.AdminPasswordHash,
		c.Config.SessionTTL,
	)

	c.StudentSvc = services.NewStudentService(c.StudentRepo, c.DailyLogRepo)
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
