package domain

import (
	"errors"
	"slices"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidToken = errors.New("invalid token")
var ErrUserNotFound = errors.New("user not found")
var ErrCapabilityNotFound = errors.New("capability not found")
var ErrForbidden = errors.New("insufficient permissions")
var ErrAlreadyRegistered = errors.New("consultant is already registered for this capability")
var ErrNotRegistered = errors.New("consultant is not registered for this capability")

// Capability is a named consulting skill offering. The catalog of
// capabilities is fixed at startup; only the consultant roster mutates.
type Capability struct {
	Name              string   `json:"-"`
	Description       string   `json:"description"`
	PracticeArea      string   `json:"practice_area"`
	SkillLevels       []string `json:"skill_levels"`
	Certifications    []string `json:"certifications"`
	IndustryVerticals []string `json:"industry_verticals"`
	Capacity          int      `json:"capacity"`
	Consultants       []string `json:"consultants"`
}

// HasConsultant reports whether the email is already on the roster.
func (c *Capability) HasConsultant(email string) bool {
	return slices.Contains(c.Consultants, email)
}

// Clone returns a copy whose roster slice is independent of the original.
func (c *Capability) Clone() *Capability {
	clone := *c
	clone.SkillLevels = slices.Clone(c.SkillLevels)
	clone.Certifications = slices.Clone(c.Certifications)
	clone.IndustryVerticals = slices.Clone(c.IndustryVerticals)
	clone.Consultants = slices.Clone(c.Consultants)
	return &clone
}
