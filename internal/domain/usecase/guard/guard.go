package guard

import (
	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/entity"
)

// Kind is what the guard decided to do with a navigation
type Kind int

const (
	// Loading means the session is still resolving
	Loading Kind = iota
	Render
	RedirectToLogin
	RedirectToRoleHome
)

func (k Kind) String() string {
	switch k {
	case Render:
		return "render"
	case RedirectToLogin:
		return "redirect_to_login"
	case RedirectToRoleHome:
		return "redirect_to_role_home"
	default:
		return "loading"
	}
}

// Requirement describes who may see a view
type Requirement struct {
	// WantsAuth is false for views like the login page
	WantsAuth bool
	// AllowedRoles empty means any authenticated role
	AllowedRoles []entity.Role
	// Location is the requested path
	Location string
}

// Decision is the outcome of a guarded navigation.
// Location is set for redirects; From carries the requested path on a login redirect.
type Decision struct {
	Kind     Kind
	Location string
	From     string
}

// Decide applies the access rules to one navigation. It has no side effects.
func Decide(req Requirement, res entity.Resolution) Decision {
	if res.State == entity.ResolutionPending {
		return Decision{Kind: Loading}
	}

	authenticated := res.IsAuthenticated()

	if req.WantsAuth {
		if !authenticated {
			return Decision{Kind: RedirectToLogin, Location: entity.LoginPath, From: req.Location}
		}
		if len(req.AllowedRoles) > 0 && !res.Role().In(req.AllowedRoles) {
			return toRoleHome(res.Role())
		}
		return Decision{Kind: Render}
	}

	if authenticated {
		return toRoleHome(res.Role())
	}
	return Decision{Kind: Render}
}

// Index resolves the root path: the role home when signed in, otherwise the login page
func Index(res entity.Resolution) Decision {
	if res.State == entity.ResolutionPending {
		return Decision{Kind: Loading}
	}
	if res.IsAuthenticated() {
		return toRoleHome(res.Role())
	}
	return Decision{Kind: RedirectToLogin, Location: entity.LoginPath}
}

func toRoleHome(role entity.Role) Decision {
	return Decision{Kind: RedirectToRoleHome, Location: entity.RoleHome(role)}
}
