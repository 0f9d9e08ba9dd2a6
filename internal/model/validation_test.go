package model

import (
	"testing"
)

// ============================================================================
// CreateMemberRequest
// ============================================================================

func validMemberRequest() CreateMemberRequest {
	return CreateMemberRequest{
		FirstName:          "Kevin",
		LastName:           "Doan",
		Email:              "kd@gmail.com",
		PhoneNumber:        "817-555-0101",
		Password:           "password",
		Role:               RoleMember,
		QualifiedPositions: []string{PositionDirector, PositionCamera},
	}
}

func TestCreateMemberRequest_Validate_Valid(t *testing.T) {
	t.Parallel()

	req := validMemberRequest()
	if errs := Validate(&req); len(errs) > 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestCreateMemberRequest_Validate_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*CreateMemberRequest)
		field  string
	}{
		{"missing first name", func(r *CreateMemberRequest) { r.FirstName = "" }, "firstName"},
		{"bad email", func(r *CreateMemberRequest) { r.Email = "not-an-email" }, "email"},
		{"bad phone", func(r *CreateMemberRequest) { r.PhoneNumber = "8175550101" }, "phoneNumber"},
		{"short password", func(r *CreateMemberRequest) { r.Password = "short" }, "password"},
		{"unknown role", func(r *CreateMemberRequest) { r.Role = "OWNER" }, "role"},
		{"unknown position", func(r *CreateMemberRequest) { r.QualifiedPositions = []string{"JUGGLER"} }, "qualifiedPositions[0]"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := validMemberRequest()
			tt.mutate(&req)

			errs := Validate(&req)
			if len(errs) != 1 {
				t.Fatalf("expected 1 error, got %v", errs)
			}
			if errs[0].Field != tt.field {
				t.Errorf("expected field %q, got %q", tt.field, errs[0].Field)
			}
		})
	}
}

func TestCreateMemberRequest_Normalize(t *testing.T) {
	t.Parallel()

	req := CreateMemberRequest{
		FirstName: "  <b>Kevin</b> ",
		Email:     " KD@Gmail.com ",
		Role:      "admin",
	}
	req.Normalize()

	if req.FirstName != "Kevin" {
		t.Errorf("expected markup stripped, got %q", req.FirstName)
	}
	if req.Email != "kd@gmail.com" {
		t.Errorf("expected lowercased email, got %q", req.Email)
	}
	if req.Role != RoleAdmin {
		t.Errorf("expected ADMIN, got %q", req.Role)
	}
}

// ============================================================================
// Schedules and games
// ============================================================================

func TestGameSchedule_Validate_NestedGamePaths(t *testing.T) {
	t.Parallel()

	s := GameSchedule{
		Name:      "Baseball",
		StartDate: "2024-09-01",
		Games: []Game{
			{GameDate: "2024-10-10", GameStart: "18:00"},
			{GameDate: "10/11/2024"},
		},
	}

	errs := Validate(&s)
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %v", errs)
	}
	if errs[0].Field != "games[1].gameDate" {
		t.Errorf("expected nested path, got %q", errs[0].Field)
	}
}

func TestGameSchedule_Validate_NoRequiredFields(t *testing.T) {
	t.Parallel()

	if errs := Validate(&GameSchedule{}); len(errs) > 0 {
		t.Errorf("an empty schedule should be accepted, got %v", errs)
	}
}

func TestValidateEach_PrefixesIndex(t *testing.T) {
	t.Parallel()

	games := []Game{
		{GameDate: "2024-10-10"},
		{GameDate: "2024-10-17", GameStart: "7pm"},
	}

	errs := ValidateEach(games)
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %v", errs)
	}
	if errs[0].Field != "[1].gameStart" {
		t.Errorf("unexpected field %q", errs[0].Field)
	}
}

func TestGameSchedule_AddGame_SetsScheduleID(t *testing.T) {
	t.Parallel()

	s := GameSchedule{ID: 4}
	s.AddGame(Game{Opponent: "Baylor"})

	if len(s.Games) != 1 || s.Games[0].ScheduleID != 4 {
		t.Errorf("expected game bound to schedule 4, got %+v", s.Games)
	}
}

func TestUpdateGameRequest_Apply(t *testing.T) {
	t.Parallel()

	venue := "Amon G. Carter"
	final := true
	g := Game{Venue: "TBD", Opponent: "Baylor"}
	(&UpdateGameRequest{Venue: &venue, IsFinalized: &final}).Apply(&g)

	if g.Venue != venue || !g.IsFinalized || g.Opponent != "Baylor" {
		t.Errorf("unexpected game after apply: %+v", g)
	}
}

// ============================================================================
// Crew and templates
// ============================================================================

func TestCrewAssignment_Validate_Position(t *testing.T) {
	t.Parallel()

	cs := CrewSchedule{CrewAssignments: []CrewAssignment{
		{Position: PositionDirector, ReportTime: "12:00"},
		{Position: "", ReportTime: "12:00"},
	}}

	errs := Validate(&cs)
	if len(errs) != 1 || errs[0].Field != "crewAssignments[1].position" {
		t.Errorf("expected missing position error, got %v", errs)
	}
}

func TestCrewedUserRequest_ToAssignment(t *testing.T) {
	t.Parallel()

	id := uint(3)
	a := CrewedUserRequest{UserID: &id, Position: PositionCamera, ReportLocation: " FIELD "}.ToAssignment()

	if a.MemberID == nil || *a.MemberID != 3 {
		t.Errorf("expected member 3, got %v", a.MemberID)
	}
	if a.ReportLocation != "FIELD" {
		t.Errorf("expected trimmed location, got %q", a.ReportLocation)
	}
}

func TestTemplate_Assignments_OpenSlots(t *testing.T) {
	t.Parallel()

	tpl := Template{Positions: []TemplatePosition{
		{Position: PositionProducer, ReportTime: "10:00"},
		{Position: PositionAudio, ReportLocation: "TRUCK"},
	}}

	got := tpl.Assignments()
	if len(got) != 2 {
		t.Fatalf("expected 2 assignments, got %d", len(got))
	}
	for _, a := range got {
		if a.MemberID != nil {
			t.Errorf("template slots should be unfilled, got %v", *a.MemberID)
		}
	}
	if got[1].ReportLocation != "TRUCK" {
		t.Errorf("unexpected location %q", got[1].ReportLocation)
	}
}

func TestInviteRequest_NormalizeAndValidate(t *testing.T) {
	t.Parallel()

	req := InviteRequest{Emails: []string{" A@test.edu", "a@test.edu", "b@test.edu"}}
	req.Normalize()

	if len(req.Emails) != 2 || req.Emails[0] != "a@test.edu" {
		t.Errorf("expected deduplicated lowercase emails, got %v", req.Emails)
	}
	if errs := Validate(&req); len(errs) > 0 {
		t.Errorf("expected valid request, got %v", errs)
	}

	bad := InviteRequest{Emails: []string{"nope"}}
	if errs := Validate(&bad); len(errs) != 1 || errs[0].Field != "emails[0]" {
		t.Errorf("expected emails[0] error, got %v", errs)
	}
}

func TestSanitize_StripsMarkupKeepsText(t *testing.T) {
	t.Parallel()

	if got := Sanitize(`<script>alert(1)</script>Texas A&M`); got != "Texas A&M" {
		t.Errorf("unexpected sanitized text %q", got)
	}
}

func TestSanitize_EncodedMarkupIsStripped(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"encoded script", "&lt;script&gt;alert(1)&lt;/script&gt;", ""},
		{"encoded img handler", "&lt;img src=x onerror=alert(1)&gt;Amon G. Carter", "Amon G. Carter"},
		{"double encoded", "&amp;lt;b&amp;gt;Baylor&amp;lt;/b&amp;gt;", "Baylor"},
		{"plain ampersand", "Texas A&amp;M", "Texas A&M"},
		{"comparison", "score 3 < 5", "score 3 < 5"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Sanitize(tt.in); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestGame_Normalize_StripsEncodedMarkup(t *testing.T) {
	t.Parallel()

	g := Game{Venue: "&lt;img src=x onerror=alert(1)&gt;"}
	g.Normalize()

	if g.Venue != "" {
		t.Errorf("expected encoded markup removed from venue, got %q", g.Venue)
	}
}
