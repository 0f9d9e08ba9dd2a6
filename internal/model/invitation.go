package model

import (
	"strings"
	"time"
)

// Invitation is a pending sign-up link sent to a prospective crew member
type Invitation struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"size:255;index;not null"`
	Token     string    `json:"token" gorm:"size:64;uniqueIndex;not null"`
	CreatedAt time.Time `json:"createdAt"`
}

// InviteRequest is the body for POST /api/invite
type InviteRequest struct {
	Emails []string `json:"emails" validate:"required,min=1,max=50,dive,required,email"`
}

// Normalize lowercases and trims every address and drops repeats
func (r *InviteRequest) Normalize() {
	seen := make(map[string]bool, len(r.Emails))
	out := r.Emails[:0]
	for _, e := range r.Emails {
		e = strings.ToLower(strings.TrimSpace(e))
		if seen[e] {
			continue
		}
		seen[e] = true
		out = append(out, e)
	}
	r.Emails = out
}
