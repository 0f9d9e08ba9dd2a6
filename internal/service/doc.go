// Package service implements the business logic layer for the FrogCrew API.
//
// Services sit between the HTTP handlers and the repositories. Every public
// method runs its repository calls inside one database transaction, so a
// request either commits as a whole or leaves no trace.
//
// # Service Pattern
//
//   - Constructors take their repositories (or a config struct when there are many)
//   - Each service declares the narrow repository interface it needs
//   - Missing records come back from repositories as nil, nil and are turned
//     into sentinel errors here
//
// # Error Handling
//
// Sentinel errors live in errors.go. Not-found errors carry the missing id and
// stay matchable with errors.Is:
//
//	_, err := crews.CreateCrewSchedule(ctx, 999, cs)
//	errors.Is(err, ErrGameNotFound) // true
//	err.Error()                     // "game not found with ID: 999"
//
// # Events
//
// GameScheduleService and CrewScheduleService publish to an EventPublisher
// once their transaction has committed. EventHub fans those events out to
// subscribed streams without blocking the caller.
//
// # Example Usage
//
//	games := NewGameScheduleService(db, scheduleRepo, gameRepo)
//	schedule, err := games.AddGamesToSchedule(ctx, scheduleID, []model.Game{
//	    {GameDate: "2024-10-10", Opponent: "Baylor"},
//	})
package service
