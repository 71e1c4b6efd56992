package models

// Group is a named bundle of permissions attached to users by role.
type Group struct {
	ID          int64    `json:"id" db:"id"`
	Name        string   `json:"name" db:"name"`
	Permissions []string `json:"permissions,omitempty"` // Relation, no db tag
}

// HasPermission reports whether the group carries the given permission string.
func (g *Group) HasPermission(permission string) bool {
	for _, p := range g.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}
