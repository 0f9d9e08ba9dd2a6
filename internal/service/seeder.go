package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/frogcrew/api/internal/model"
)

// SeederService loads a small demo crew, two schedules and a crewed game into
// an empty database
type SeederService struct {
	tx        Transactor
	members   MemberRepository
	schedules ScheduleRepository
	crews     CrewScheduleRepository
	templates TemplateRepository
	password  string
	cost      int
}

// SeederServiceConfig holds dependencies for the seeder
type SeederServiceConfig struct {
	Tx         Transactor
	Members    MemberRepository
	Schedules  ScheduleRepository
	Crews      CrewScheduleRepository
	Templates  TemplateRepository
	Password   string
	BcryptCost int
}

// SeedResult contains the results of a seeding operation
type SeedResult struct {
	Skipped  bool  `json:"skipped"`
	Created  int   `json:"created"`
	Duration int64 `json:"duration_ms"`
}

// NewSeederService creates a new seeder service
func NewSeederService(cfg SeederServiceConfig) *SeederService {
	cost := cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &SeederService{
		tx:        cfg.Tx,
		members:   cfg.Members,
		schedules: cfg.Schedules,
		crews:     cfg.Crews,
		templates: cfg.Templates,
		password:  cfg.Password,
		cost:      cost,
	}
}

var seedMembers = []model.Member{
	{FirstName: "Kevin", LastName: "Doan", Email: "kd@gmail.com", PhoneNumber: "123-456-7890", Role: model.RoleAdmin,
		QualifiedPositions: []string{model.PositionDirector, model.PositionProducer}},
	{FirstName: "Andrew", LastName: "Potts", Email: "ap@gmail.com", PhoneNumber: "987-654-3210", Role: model.RoleAdmin,
		QualifiedPositions: []string{model.PositionCamera, model.PositionVideo}},
	{FirstName: "Kevin", LastName: "Hart", Email: "kh@gmail.com", PhoneNumber: "222-255-5555", Role: model.RoleMember,
		QualifiedPositions: []string{model.PositionCamera, model.PositionUtility}},
	{FirstName: "Dwayne", LastName: "Johnson", Email: "dj@gmail.com", PhoneNumber: "135-792-4680", Role: model.RoleMember,
		QualifiedPositions: []string{model.PositionProducer, model.PositionObserver}},
}

// Seed inserts the demo data unless members already exist. Everything is
// written in one transaction.
func (s *SeederService) Seed(ctx context.Context) (*SeedResult, error) {
	start := time.Now()
	result := &SeedResult{}

	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		n, err := s.members.Count(ctx)
		if err != nil {
			return err
		}
		if n > 0 {
			result.Skipped = true
			return nil
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(s.password), s.cost)
		if err != nil {
			return fmt.Errorf("hashing seed password: %w", err)
		}

		members := make([]*model.Member, 0, len(seedMembers))
		for _, m := range seedMembers {
			m := m
			m.QualifiedPositions = append([]string(nil), m.QualifiedPositions...)
			m.PasswordHash = string(hash)
			if err := s.members.Create(ctx, &m); err != nil {
				return fmt.Errorf("seeding member %s: %w", m.Email, err)
			}
			members = append(members, &m)
			result.Created++
		}

		baseball := &model.GameSchedule{Name: "TCU Baseball", Sport: "Baseball", Season: "2024-2025"}
		baseball.AddGame(model.Game{GameDate: "2024-10-10", Venue: "Amon G. Carter", Opponent: "Texas Longhorn"})
		baseball.AddGame(model.Game{GameDate: "2022-01-10", Venue: "Amon G. Carter", Opponent: "Baylor", IsFinalized: true})
		football := &model.GameSchedule{Name: "TCU Football", Sport: "Football", Season: "2023-2024"}
		for _, sch := range []*model.GameSchedule{baseball, football} {
			if err := s.schedules.Create(ctx, sch); err != nil {
				return fmt.Errorf("seeding schedule %s: %w", sch.Name, err)
			}
			result.Created += 1 + len(sch.Games)
		}

		crew := &model.CrewSchedule{GameID: baseball.Games[0].ID}
		crew.AddCrewAssignment(model.CrewAssignment{
			MemberID: &members[0].ID, Position: model.PositionDirector, ReportTime: "12:00", ReportLocation: "CONTROL ROOM",
		})
		crew.AddCrewAssignment(model.CrewAssignment{
			MemberID: &members[1].ID, Position: model.PositionCamera, ReportTime: "10:00", ReportLocation: "FIELD",
		})
		if err := s.crews.Create(ctx, crew); err != nil {
			return fmt.Errorf("seeding crew schedule: %w", err)
		}
		result.Created += 1 + len(crew.CrewAssignments)

		tpl := &model.Template{
			Name:        "Standard broadcast",
			Description: "Default crew for a televised home game",
			Positions: []model.TemplatePosition{
				{Position: model.PositionProducer, ReportTime: "10:00", ReportLocation: "CONTROL ROOM"},
				{Position: model.PositionDirector, ReportTime: "12:00", ReportLocation: "CONTROL ROOM"},
				{Position: model.PositionCamera, ReportTime: "10:00", ReportLocation: "FIELD"},
				{Position: model.PositionAudio, ReportTime: "11:00", ReportLocation: "CONTROL ROOM"},
			},
		}
		if err := s.templates.Create(ctx, tpl); err != nil {
			return fmt.Errorf("seeding template: %w", err)
		}
		result.Created++
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.Duration = time.Since(start).Milliseconds()
	if result.Skipped {
		slog.InfoContext(ctx, "seed skipped, members already present")
	} else {
		slog.InfoContext(ctx, "seeded demo data", slog.Int("records", result.Created))
	}
	return result, nil
}
