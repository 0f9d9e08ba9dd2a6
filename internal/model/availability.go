package model

import "time"

// Availability records whether a member can work a game. A member submits
// at most one per game.
type Availability struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	MemberID  uint      `json:"userId" gorm:"not null;uniqueIndex:idx_availability_member_game" validate:"required"`
	GameID    uint      `json:"gameId" gorm:"not null;uniqueIndex:idx_availability_member_game;index" validate:"required"`
	Available bool      `json:"available"`
	Comment   string    `json:"comment,omitempty" gorm:"size:500" validate:"max=500"`
	Member    *Member   `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Game      *Game     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"createdAt"`
}

// Normalize sanitizes free text fields
func (a *Availability) Normalize() {
	a.Comment = Sanitize(a.Comment)
}
