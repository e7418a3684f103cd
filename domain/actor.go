package domain

const (
	RoleUser      = "user"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"
)

// Actor is the verified identity forwarded by the identity provider. A nil
// or empty Actor is an anonymous caller.
type Actor struct {
	ID   string `json:"id" yaml:"id"`
	Role string `json:"role" yaml:"role"`
}

func (a *Actor) IsAuthenticated() bool {
	return a != nil && a.ID != ""
}

func (a *Actor) CanModerate() bool {
	return a.IsAuthenticated() && (a.Role == RoleAdmin || a.Role == RoleModerator)
}

func (a *Actor) UserID() string {
	if a == nil {
		return ""
	}
	return a.ID
}
