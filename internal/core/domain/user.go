package domain

import "slices"

// Role is the closed set of access levels a user can hold. Any value
// outside these constants behaves like a plain consultant: it never
// grants elevated access.
type Role string

const (
	RoleConsultant   Role = "consultant"
	RolePracticeLead Role = "practice_lead"
	RoleAdmin        Role = "admin"
)

// User models an authenticated actor in the system. Users are loaded
// once at startup from the credential store and are immutable afterwards.
type User struct {
	Username      string   `json:"username"`
	Email         string   `json:"email"`
	Role          Role     `json:"role"`
	PracticeAreas []string `json:"practice_areas"`
	FullName      string   `json:"full_name"`
	PasswordHash  string   `json:"-"`
}

// CanManage reports whether the user may mutate rosters of capabilities
// in the given practice area. Admins manage any area; everyone else must
// hold the area in their assigned practice areas.
func (u *User) CanManage(practiceArea string) bool {
	if u.Role == RoleAdmin {
		return true
	}
	return slices.Contains(u.PracticeAreas, practiceArea)
}
