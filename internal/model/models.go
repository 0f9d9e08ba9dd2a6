package model

// All lists every persisted model in migration order
func All() []any {
	return []any{
		&Member{},
		&GameSchedule{},
		&Game{},
		&CrewSchedule{},
		&CrewAssignment{},
		&Template{},
		&TemplatePosition{},
		&Availability{},
		&Invitation{},
	}
}
