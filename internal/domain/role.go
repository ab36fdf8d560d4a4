package domain

type Role string

const (
	RoleStudentOrganizer Role = "ROLE_STUDENT_ORGANIZER"
	RoleEventCoordinator Role = "ROLE_EVENT_COORDINATOR"
	RoleStudentWelfare   Role = "ROLE_STUDENT_WELFARE"
	RoleHOD              Role = "ROLE_HOD"
	RoleAdmin            Role = "ROLE_ADMIN"
	RoleFaculty          Role = "ROLE_FACULTY"
)

// ParseRole maps a stored role string onto the closed role set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleStudentOrganizer, RoleEventCoordinator, RoleStudentWelfare,
		RoleHOD, RoleAdmin, RoleFaculty:
		return Role(s), nil
	}
	return "", ErrUnknownRole
}

// DisplayName is the fallback human-readable name for a role, used when
// no faculty master record resolves the actor to a real name.
func (r Role) DisplayName() string {
	switch r {
	case RoleEventCoordinator:
		return "Faculty Coordinator"
	case RoleStudentWelfare:
		return "Student Welfare"
	case RoleHOD:
		return "Head of Department"
	case RoleAdmin:
		return "Administrator"
	case RoleFaculty:
		return "Faculty"
	case RoleStudentOrganizer:
		return "Student Organizer"
	}
	return "Unknown"
}
