package session

import "github.com/claims-copilot/backend/internal/models"

// NavEntry is one dashboard navigation item together with the roles
// allowed to reach it.
type NavEntry struct {
	Label string        `json:"label"`
	Path  string        `json:"path"`
	Roles []models.Role `json:"-"`
}

// navTable is the single source of truth for route access. Both the
// guard middleware and the navigation endpoint read it, so what is
// shown and what is enforced cannot drift apart.
var navTable = []NavEntry{
	{Label: "Case Workspace", Path: "/workspace", Roles: []models.Role{models.RoleAgent, models.RoleManager}},
	{Label: "Policy Explorer", Path: "/policy-explorer", Roles: []models.Role{models.RoleAgent, models.RoleManager}},
	{Label: "Policy Drift", Path: "/policy-drift", Roles: []models.Role{models.RoleAgent, models.RoleManager}},
	{Label: "What-If Checker", Path: "/what-if", Roles: []models.Role{models.RoleAgent, models.RoleManager}},
	{Label: "Analytics", Path: "/analytics", Roles: []models.Role{models.RoleManager}},
}

// NavForRole returns the navigation entries visible to the role, in
// table order.
func NavForRole(role models.Role) []NavEntry {
	var out []NavEntry
	for _, e := range navTable {
		if roleAllowed(e.Roles, role) {
			out = append(out, e)
		}
	}
	return out
}

// Allowed reports whether the role may access the dashboard path.
// Unknown paths are allowed; the router's own 404 handles them.
func Allowed(role models.Role, path string) bool {
	for _, e := range navTable {
		if e.Path == path {
			return roleAllowed(e.Roles, role)
		}
	}
	return true
}

func roleAllowed(roles []models.Role, role models.Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
