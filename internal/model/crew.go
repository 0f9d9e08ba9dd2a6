package model

import "time"

// CrewSchedule is the roster for one game. Its assignments are removed
// together with it.
type CrewSchedule struct {
	ID              uint             `json:"id" gorm:"primaryKey"`
	GameID          uint             `json:"gameId" gorm:"not null;index"`
	Game            *Game            `json:"game,omitempty" gorm:"-"`
	CrewAssignments []CrewAssignment `json:"crewAssignments" gorm:"foreignKey:CrewScheduleID;constraint:OnDelete:CASCADE" validate:"dive"`
	CreatedAt       time.Time        `json:"-"`
	UpdatedAt       time.Time        `json:"-"`
}

// AddCrewAssignment appends a to the schedule
func (c *CrewSchedule) AddCrewAssignment(a CrewAssignment) {
	a.CrewScheduleID = c.ID
	c.CrewAssignments = append(c.CrewAssignments, a)
}

// Normalize sanitizes every assignment
func (c *CrewSchedule) Normalize() {
	for i := range c.CrewAssignments {
		c.CrewAssignments[i].Normalize()
	}
}

// CrewAssignment places a member (or an open slot when MemberID is nil) into
// a position with a report time and location.
type CrewAssignment struct {
	ID             uint    `json:"id" gorm:"primaryKey"`
	CrewScheduleID uint    `json:"crewScheduleId" gorm:"not null;index"`
	MemberID       *uint   `json:"memberId" gorm:"index"`
	Member         *Member `json:"member,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Position       string  `json:"position" gorm:"size:20;not null" validate:"required,position"`
	ReportTime     string  `json:"reportTime" gorm:"size:5" validate:"omitempty,datetime=15:04"`
	ReportLocation string  `json:"reportLocation" gorm:"size:100" validate:"max=100"`
}

// Normalize sanitizes free text fields
func (a *CrewAssignment) Normalize() {
	a.ReportLocation = Sanitize(a.ReportLocation)
}

// CrewedUserRequest is one element of the array body the crew frontend posts
// when building a game's crew.
type CrewedUserRequest struct {
	CrewedUserID   *uint  `json:"crewedUserId,omitempty"`
	UserID         *uint  `json:"userId"`
	GameID         *uint  `json:"gameId,omitempty"`
	Position       string `json:"position" validate:"required,position"`
	ReportTime     string `json:"reportTime,omitempty" validate:"omitempty,datetime=15:04"`
	ReportLocation string `json:"reportLocation,omitempty" validate:"max=100"`
}

// ToAssignment converts the request into an unsaved CrewAssignment
func (r CrewedUserRequest) ToAssignment() CrewAssignment {
	a := CrewAssignment{
		MemberID:       r.UserID,
		Position:       r.Position,
		ReportTime:     r.ReportTime,
		ReportLocation: r.ReportLocation,
	}
	a.Normalize()
	return a
}

// CrewedMember is one row of a game's crew list
type CrewedMember struct {
	CrewedUserID   uint   `json:"crewedUserId"`
	UserID         *uint  `json:"userId"`
	FullName       string `json:"fullName"`
	Position       string `json:"position"`
	ReportTime     string `json:"reportTime"`
	ReportLocation string `json:"reportLocation"`
}

// CrewList is the crew of a game flattened across its crew schedules
type CrewList struct {
	GameID        uint           `json:"gameId"`
	GameDate      string         `json:"gameDate"`
	GameStart     string         `json:"gameStart,omitempty"`
	Venue         string         `json:"venue"`
	Opponent      string         `json:"opponent"`
	CrewedMembers []CrewedMember `json:"crewedMembers"`
}
