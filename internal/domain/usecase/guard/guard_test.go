package guard

import (
	"testing"

	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func authenticatedAs(role entity.Role) entity.Resolution {
	return entity.Authenticated(&entity.Session{IsAuthenticated: true, Role: role, ID: 1, Name: "Test"})
}

func TestDecide(t *testing.T) {
	adminOnly := []entity.Role{entity.RoleAdmin}

	testCases := []struct {
		name     string
		req      Requirement
		res      entity.Resolution
		expected Decision
	}{
		{
			name:     "Pending resolution is loading",
			req:      Requirement{WantsAuth: true, AllowedRoles: adminOnly, Location: "/dashboard"},
			res:      entity.Resolution{},
			expected: Decision{Kind: Loading},
		},
		{
			name:     "Unauthenticated actor on dashboard goes to login",
			req:      Requirement{WantsAuth: true, AllowedRoles: adminOnly, Location: "/dashboard"},
			res:      entity.Unauthenticated(),
			expected: Decision{Kind: RedirectToLogin, Location: "/login", From: "/dashboard"},
		},
		{
			name:     "Student on admin dashboard goes to student home",
			req:      Requirement{WantsAuth: true, AllowedRoles: adminOnly, Location: "/dashboard"},
			res:      authenticatedAs(entity.RoleStudent),
			expected: Decision{Kind: RedirectToRoleHome, Location: "/student-dashboard"},
		},
		{
			name:     "Admin on login page goes to dashboard",
			req:      Requirement{WantsAuth: false, Location: "/login"},
			res:      authenticatedAs(entity.RoleAdmin),
			expected: Decision{Kind: RedirectToRoleHome, Location: "/dashboard"},
		},
		{
			name:     "Anonymous actor on login page renders",
			req:      Requirement{WantsAuth: false, Location: "/login"},
			res:      entity.Unauthenticated(),
			expected: Decision{Kind: Render},
		},
		{
			name:     "Admin on admin page renders",
			req:      Requirement{WantsAuth: true, AllowedRoles: adminOnly, Location: "/users"},
			res:      authenticatedAs(entity.RoleAdmin),
			expected: Decision{Kind: Render},
		},
		{
			name:     "Any role passes when no roles are listed",
			req:      Requirement{WantsAuth: true, Location: "/logout"},
			res:      authenticatedAs(entity.RoleStudent),
			expected: Decision{Kind: Render},
		},
		{
			name:     "Unknown role falls through to logs",
			req:      Requirement{WantsAuth: true, AllowedRoles: adminOnly, Location: "/dashboard"},
			res:      authenticatedAs(entity.Role("auditor")),
			expected: Decision{Kind: RedirectToRoleHome, Location: "/logs"},
		},
		{
			name:     "Authenticated state without a session is anonymous",
			req:      Requirement{WantsAuth: true, Location: "/logs"},
			res:      entity.Resolution{State: entity.ResolutionAuthenticated},
			expected: Decision{Kind: RedirectToLogin, Location: "/login", From: "/logs"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			first := Decide(tc.req, tc.res)
			second := Decide(tc.req, tc.res)

			assert.Equal(t, tc.expected, first)
			assert.Equal(t, first, second, "guard must give the same decision for unchanged state")
		})
	}
}

func TestIndex(t *testing.T) {
	assert.Equal(t, Decision{Kind: Loading}, Index(entity.Resolution{}))
	assert.Equal(t, Decision{Kind: RedirectToLogin, Location: "/login"}, Index(entity.Unauthenticated()))
	assert.Equal(t, Decision{Kind: RedirectToRoleHome, Location: "/logs"}, Index(authenticatedAs(entity.RoleUser)))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "loading", Loading.String())
	assert.Equal(t, "render", Render.String())
	assert.Equal(t, "redirect_to_login", RedirectToLogin.String())
	assert.Equal(t, "redirect_to_role_home", RedirectToRoleHome.String())
}
