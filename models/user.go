package models

// Role decides which portal surface a logged-in user lands on.
type Role string

const (
	RoleStudent    Role = "student"
	RoleStaff      Role = "staff"
	RoleSuperAdmin Role = "superadmin"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleStudent, RoleStaff, RoleSuperAdmin:
		return Role(s), true
	default:
		return "", false
	}
}

// Credentials is the login payload forwarded to the collaborator backend.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the sign-up payload forwarded to the collaborator backend.
type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// AuthResult is what the collaborator backend returns on a successful
// credential exchange. StaffID is the identifier used for role-scoped
// routing.
type AuthResult struct {
	Message  string `json:"message"`
	StaffID  string `json:"staff_id"`
	UserName string `json:"user_name"`
	Role     Role   `json:"role"`
}

// Session identifies the logged-in user for the duration of a request. It is
// built once by the auth middleware and passed explicitly; nothing reads
// identity from ambient state.
type Session struct {
	StaffID  string
	UserName string
	Role     Role
}

// StaffInfo is one entry of the super-admin staff listing.
type StaffInfo struct {
	StaffID string `json:"staff_id"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	College string `json:"college,omitempty"`
}

// Assignment pairs a staff member with a project for the super-admin
// assignment workflow.
type Assignment struct {
	StaffID      string `json:"staff_id"`
	ProductID    int    `json:"product_id"`
	AcademicYear string `json:"academic_year,omitempty"`
	Batch        int    `json:"batch,omitempty"`
}
