package models

// Role is the access level of a (repository, user) grant.
type Role string

const (
	RoleOwner     Role = "Owner"
	RoleReadWrite Role = "ReadWrite"
	RoleReadOnly  Role = "ReadOnly"
)

// Collaborator is an access grant on a repository. A repository has exactly
// one Owner; the Owner's grant can be neither revoked nor downgraded.
type Collaborator struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// CanModify reports whether the grant itself may be changed or removed.
// The Owner grant is immutable through this mechanism.
func (c Collaborator) CanModify() bool {
	return c.Role != RoleOwner
}

// Initials derives the avatar initials from the collaborator's display name:
// the first letter of each space-separated word.
func (c Collaborator) Initials() string {
	initials := make([]rune, 0, 2)
	inWord := false
	for _, r := range c.Name {
		if r == ' ' {
			inWord = false
			continue
		}
		if !inWord {
			initials = append(initials, r)
			inWord = true
		}
	}
	return string(initials)
}
