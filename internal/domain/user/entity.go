package user

type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleHR         Role = "HR"
	RoleManager    Role = "MANAGER"
	RoleTrainer    Role = "TRAINER"
	RoleEmployee   Role = "EMPLOYEE"
	RoleIntern     Role = "INTERN"
)

// User is a signed-in account. EmployeeID holds the employee code for
// accounts bound to an employee record.
type User struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	PasswordHash string  `json:"-"`
	Role         Role    `json:"role"`
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	EmployeeID   *string `json:"employeeId,omitempty"`
}

// HasRole reports whether u holds any of roles.
func (u *User) HasRole(roles ...Role) bool {
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}

// Role groups used by route gates.
var (
	PeopleManagers  = []Role{RoleSuperAdmin, RoleHR, RoleManager}
	FacultyManagers = []Role{RoleSuperAdmin, RoleHR, RoleTrainer}
	LeaveApprovers  = []Role{RoleSuperAdmin, RoleHR, RoleManager}
)
