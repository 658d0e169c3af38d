package auth

import "mygpt/internal/model"

// Redirect destinations decided from identity presence and role.
const (
	PathLogin     = "/login"
	PathDashboard = "/dashboard"
	PathAdmin     = "/admin"
	PathUser      = "/user"
)

// RedirectTarget decides where a request should land. It is a pure
// function of identity presence and profile role: no identity goes to the
// login page, admins go to the admin area, everyone else (including a
// missing or unknown role) goes to the standard user area.
func RedirectTarget(identity *model.Identity, profile *model.Profile) string {
	if identity == nil {
		return PathLogin
	}
	if profile != nil && profile.Role == model.RoleAdmin {
		return PathAdmin
	}
	return PathUser
}
