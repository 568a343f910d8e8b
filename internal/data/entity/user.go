package entity

type UserRole string

const (
	RoleSeeker   UserRole = "seeker"
	RoleProvider UserRole = "provider"
	RoleAdmin    UserRole = "admin"
)

func ParseRole(s string) (UserRole, bool) {
	switch UserRole(s) {
	case RoleSeeker, RoleProvider, RoleAdmin:
		return UserRole(s), true
	default:
		return "", false
	}
}

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
	VerificationRejected VerificationStatus = "rejected"
)

type User struct {
	Base
	Username     string             `db:"username"`
	Email        string             `db:"email"`
	PasswordHash string             `db:"password"`
	Phone        *string            `db:"phone"`
	Role         UserRole           `db:"role"`
	Verification VerificationStatus `db:"verification_status"`
	IsActive     bool               `db:"is_active"`
}

// IsVerifiedProvider reports whether a user may publish services or
// properties. Seekers are approved at registration; providers go through
// the admin verification queue first.
func (u *User) IsVerifiedProvider() bool {
	return u.Role == RoleProvider && u.Verification == VerificationApproved
}
