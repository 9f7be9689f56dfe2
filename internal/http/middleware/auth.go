package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/trackmyhomeschool/homeschool/domain"
)

// AuthMW wraps the token service and cookie name for the session gate
type AuthMW struct {
	tokenSvc   domain.TokenService
	cookieName string
}

// NewAuthMW creates new auth middleware wrapper
func NewAuthMW(tokenSvc domain.TokenService, cookieName string) *AuthMW {
	return &AuthMW{
		tokenSvc:   tokenSvc,
		cookieName: cookieName,
	}
}

// WithSession returns the session verification middleware
func (mw *AuthMW) WithSession() gin.HandlerFunc {
	return SessionMiddleware(mw.tokenSvc, mw.cookieName)
}
