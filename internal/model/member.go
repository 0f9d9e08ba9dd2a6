package model

import (
	"slices"
	"strings"
	"time"
)

// Role is a member's access level
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleMember Role = "MEMBER"
)

// Crew positions a member can be qualified for and assigned to
const (
	PositionProducer     = "PRODUCER"
	PositionAsstProducer = "ASST_PROD"
	PositionDirector     = "DIRECTOR"
	PositionAsstDirector = "ASST_DIRECTOR"
	PositionTechnicalDir = "TECHNICAL_DIR"
	PositionGraphics     = "GRAPHICS"
	PositionBugOperator  = "BUG_OP"
	PositionReplayEVS    = "REPLAY_EVS"
	PositionEIC          = "EIC"
	PositionVideo        = "VIDEO"
	PositionAudio        = "AUDIO"
	PositionCamera       = "CAMERA"
	PositionUtility      = "UTILITY"
	PositionTechManager  = "TECH_MANAGER"
	PositionTOC          = "TOC"
	PositionObserver     = "OBSERVER"
)

var positions = []string{
	PositionProducer, PositionAsstProducer, PositionDirector, PositionAsstDirector,
	PositionTechnicalDir, PositionGraphics, PositionBugOperator, PositionReplayEVS,
	PositionEIC, PositionVideo, PositionAudio, PositionCamera, PositionUtility,
	PositionTechManager, PositionTOC, PositionObserver,
}

// Positions returns every known crew position in display order.
func Positions() []string {
	return slices.Clone(positions)
}

// IsPosition reports whether p names a known crew position.
func IsPosition(p string) bool {
	return slices.Contains(positions, p)
}

// Member is a crew member account
type Member struct {
	ID                 uint      `json:"id" gorm:"primaryKey"`
	FirstName          string    `json:"firstName" gorm:"size:50;not null"`
	LastName           string    `json:"lastName" gorm:"size:50;not null"`
	Email              string    `json:"email" gorm:"size:255;uniqueIndex;not null"`
	PhoneNumber        string    `json:"phoneNumber" gorm:"size:12"`
	Role               Role      `json:"role" gorm:"size:20;not null"`
	QualifiedPositions []string  `json:"qualifiedPositions" gorm:"serializer:json"`
	PasswordHash       string    `json:"-" gorm:"not null"` // Never expose password hash
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// FullName joins first and last name
func (m *Member) FullName() string {
	return strings.TrimSpace(m.FirstName + " " + m.LastName)
}

// IsAdmin returns true if the member has the admin role
func (m *Member) IsAdmin() bool {
	return m.Role == RoleAdmin
}

// IsQualified reports whether the member may work the given position
func (m *Member) IsQualified(position string) bool {
	return slices.Contains(m.QualifiedPositions, position)
}

// CreateMemberRequest is the body for adding a crew member
type CreateMemberRequest struct {
	FirstName          string   `json:"firstName" validate:"required,max=50"`
	LastName           string   `json:"lastName" validate:"required,max=50"`
	Email              string   `json:"email" validate:"required,email,max=255"`
	PhoneNumber        string   `json:"phoneNumber" validate:"required,phone"`
	Password           string   `json:"password" validate:"required,min=8,max=72"`
	Role               Role     `json:"role" validate:"required,oneof=ADMIN MEMBER"`
	QualifiedPositions []string `json:"qualifiedPositions" validate:"dive,position"`
}

// Normalize trims and sanitizes free text fields
func (r *CreateMemberRequest) Normalize() {
	r.FirstName = Sanitize(r.FirstName)
	r.LastName = Sanitize(r.LastName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.PhoneNumber = strings.TrimSpace(r.PhoneNumber)
	r.Role = Role(strings.ToUpper(strings.TrimSpace(string(r.Role))))
}

// UpdateMemberRequest carries partial member changes
type UpdateMemberRequest struct {
	FirstName          *string  `json:"firstName,omitempty" validate:"omitempty,min=1,max=50"`
	LastName           *string  `json:"lastName,omitempty" validate:"omitempty,min=1,max=50"`
	PhoneNumber        *string  `json:"phoneNumber,omitempty" validate:"omitempty,phone"`
	Role               *Role    `json:"role,omitempty" validate:"omitempty,oneof=ADMIN MEMBER"`
	QualifiedPositions []string `json:"qualifiedPositions,omitempty" validate:"omitempty,dive,position"`
}

// Normalize trims and sanitizes free text fields
func (r *UpdateMemberRequest) Normalize() {
	sanitizePtr(r.FirstName)
	sanitizePtr(r.LastName)
	if r.PhoneNumber != nil {
		*r.PhoneNumber = strings.TrimSpace(*r.PhoneNumber)
	}
	if r.Role != nil {
		*r.Role = Role(strings.ToUpper(strings.TrimSpace(string(*r.Role))))
	}
}

// Apply copies the set fields onto m
func (r *UpdateMemberRequest) Apply(m *Member) {
	if r.FirstName != nil {
		m.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		m.LastName = *r.LastName
	}
	if r.PhoneNumber != nil {
		m.PhoneNumber = *r.PhoneNumber
	}
	if r.Role != nil {
		m.Role = *r.Role
	}
	if r.QualifiedPositions != nil {
		m.QualifiedPositions = r.QualifiedPositions
	}
}

// LoginRequest is the body for POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse returns the signed token and the member it was issued to
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Member    *Member   `json:"member"`
}
