package model

import "time"

// Template is a reusable crew layout that can be stamped onto a game
type Template struct {
	ID          uint               `json:"id" gorm:"primaryKey"`
	Name        string             `json:"name" gorm:"size:100;not null" validate:"required,max=100"`
	Description string             `json:"description,omitempty" gorm:"size:500" validate:"max=500"`
	Positions   []TemplatePosition `json:"positions" gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE" validate:"dive"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// TemplatePosition is one slot in a template
type TemplatePosition struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	TemplateID     uint   `json:"-" gorm:"not null;index"`
	Position       string `json:"position" gorm:"size:20;not null" validate:"required,position"`
	ReportTime     string `json:"reportTime,omitempty" gorm:"size:5" validate:"omitempty,datetime=15:04"`
	ReportLocation string `json:"reportLocation,omitempty" gorm:"size:100" validate:"max=100"`
}

// Normalize sanitizes free text fields
func (t *Template) Normalize() {
	t.Name = Sanitize(t.Name)
	t.Description = Sanitize(t.Description)
	for i := range t.Positions {
		t.Positions[i].ReportLocation = Sanitize(t.Positions[i].ReportLocation)
	}
}

// Assignments expands the template into open crew slots
func (t *Template) Assignments() []CrewAssignment {
	out := make([]CrewAssignment, 0, len(t.Positions))
	for _, p := range t.Positions {
		out = append(out, CrewAssignment{
			Position:       p.Position,
			ReportTime:     p.ReportTime,
			ReportLocation: p.ReportLocation,
		})
	}
	return out
}
