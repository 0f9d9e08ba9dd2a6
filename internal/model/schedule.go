package model

import "time"

// Date and clock layouts used on the wire and in storage
const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// GameSchedule is a season of games for one sport. It owns its games:
// removing the schedule removes every game and, through them, their crews.
type GameSchedule struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:100"`
	Sport     string    `json:"sport" gorm:"size:50"`
	Season    string    `json:"season" gorm:"size:20"`
	StartDate string    `json:"startDate,omitempty" gorm:"size:10" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string    `json:"endDate,omitempty" gorm:"size:10" validate:"omitempty,datetime=2006-01-02"`
	Games     []Game    `json:"games" gorm:"foreignKey:ScheduleID;constraint:OnDelete:CASCADE" validate:"dive"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// AddGame appends g to the schedule's game list
func (s *GameSchedule) AddGame(g Game) {
	g.ScheduleID = s.ID
	s.Games = append(s.Games, g)
}

// Normalize sanitizes the schedule and its games
func (s *GameSchedule) Normalize() {
	s.Name = Sanitize(s.Name)
	s.Sport = Sanitize(s.Sport)
	s.Season = Sanitize(s.Season)
	for i := range s.Games {
		s.Games[i].Normalize()
	}
}

// Game is a single broadcast event belonging to one schedule
type Game struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	ScheduleID    uint           `json:"scheduleId" gorm:"not null;index"`
	GameDate      string         `json:"gameDate" gorm:"size:10" validate:"omitempty,datetime=2006-01-02"`
	GameStart     string         `json:"gameStart,omitempty" gorm:"size:5" validate:"omitempty,datetime=15:04"`
	Venue         string         `json:"venue" gorm:"size:100" validate:"max=100"`
	Opponent      string         `json:"opponent" gorm:"size:100" validate:"max=100"`
	IsFinalized   bool           `json:"isFinalized"`
	CrewSchedules []CrewSchedule `json:"-" gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time      `json:"-"`
	UpdatedAt     time.Time      `json:"-"`
}

// Normalize sanitizes free text fields
func (g *Game) Normalize() {
	g.Venue = Sanitize(g.Venue)
	g.Opponent = Sanitize(g.Opponent)
}

// UpdateGameRequest carries partial game changes
type UpdateGameRequest struct {
	GameDate    *string `json:"gameDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	GameStart   *string `json:"gameStart,omitempty" validate:"omitempty,datetime=15:04"`
	Venue       *string `json:"venue,omitempty" validate:"omitempty,max=100"`
	Opponent    *string `json:"opponent,omitempty" validate:"omitempty,max=100"`
	IsFinalized *bool   `json:"isFinalized,omitempty"`
}

// Normalize sanitizes free text fields
func (r *UpdateGameRequest) Normalize() {
	sanitizePtr(r.Venue)
	sanitizePtr(r.Opponent)
}

// Apply copies the set fields onto g
func (r *UpdateGameRequest) Apply(g *Game) {
	if r.GameDate != nil {
		g.GameDate = *r.GameDate
	}
	if r.GameStart != nil {
		g.GameStart = *r.GameStart
	}
	if r.Venue != nil {
		g.Venue = *r.Venue
	}
	if r.Opponent != nil {
		g.Opponent = *r.Opponent
	}
	if r.IsFinalized != nil {
		g.IsFinalized = *r.IsFinalized
	}
}
