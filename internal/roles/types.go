package roles

// Well-known role names issued by the identity collaborator.
const (
	RoleMember     = "member"
	RoleCreator    = "creator"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super-admin"
)

// Privileges are the flags a role can carry. Unknown roles resolve to the
// zero value, i.e. plain member privileges.
type Privileges struct {
	// ManageAnyProject permits delete/restore on projects the actor does
	// not own. Comment moderation is deliberately NOT a role privilege:
	// only the comment's author or the project's author may touch a
	// comment, whatever the role.
	ManageAnyProject bool `yaml:"manage_any_project" json:"manage_any_project"`
}

// RoleSet is the on-disk shape of the embedded roles file.
type RoleSet struct {
	Roles map[string]Privileges `yaml:"roles"`
}
