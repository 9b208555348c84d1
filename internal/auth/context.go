package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/deepak92201/Portfolio/internal/auth/domain"
)

const CtxPrincipal = "auth_principal"

// SetPrincipal stores the verified caller on the gin context.
func SetPrincipal(c *gin.Context, p *domain.Principal) {
	c.Set(CtxPrincipal, p)
}

// PrincipalFrom returns the caller set by the role guard, if any.
func PrincipalFrom(c *gin.Context) (*domain.Principal, bool) {
	v, ok := c.Get(CtxPrincipal)
	if !ok {
		return nil, false
	}
	p, ok := v.(*domain.Principal)
	return p, ok
}
