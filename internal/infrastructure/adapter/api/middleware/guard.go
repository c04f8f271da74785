package middleware

import (
	"net/http"
	"net/url"

	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/entity"
	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/usecase/guard"
	"github.com/amirhossein-jamali/cardpay-admin/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// Access is the per-route part of a guard requirement
type Access struct {
	WantsAuth    bool
	AllowedRoles []entity.Role
}

// Public is for views meant only for signed-out visitors
var Public = Access{}

// Authenticated admits any signed-in role
var Authenticated = Access{WantsAuth: true}

// Roles admits the listed roles only
func Roles(roles ...entity.Role) Access {
	return Access{WantsAuth: true, AllowedRoles: roles}
}

// Resolve runs the session resolver for the caller and remembers the result
func Resolve(c *gin.Context, factory usecase.SessionResolverFactory) entity.Resolution {
	res := factory(SessionStore(c)).Resolve(c.Request.Context())
	c.Set(resolutionKey, res)
	return res
}

// Guard resolves the caller and lets the request through only when the
// decision is to render
func Guard(factory usecase.SessionResolverFactory, access Access) gin.HandlerFunc {
	return func(c *gin.Context) {
		res := Resolve(c, factory)
		decision := guard.Decide(guard.Requirement{
			WantsAuth:    access.WantsAuth,
			AllowedRoles: access.AllowedRoles,
			Location:     c.Request.URL.Path,
		}, res)

		if decision.Kind == guard.Render {
			c.Next()
			return
		}
		Apply(c, decision)
	}
}

// Apply writes a non-render decision to the response
func Apply(c *gin.Context, decision guard.Decision) {
	switch decision.Kind {
	case guard.Loading:
		c.AbortWithStatusJSON(http.StatusAccepted, dto.StatusResponse{Status: guard.Loading.String()})
	case guard.RedirectToLogin:
		location := decision.Location
		if decision.From != "" {
			location += "?" + url.Values{"from": {decision.From}}.Encode()
		}
		c.Redirect(http.StatusFound, location)
		c.Abort()
	case guard.RedirectToRoleHome:
		c.Redirect(http.StatusFound, decision.Location)
		c.Abort()
	}
}
