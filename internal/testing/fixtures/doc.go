// Package fixtures provides test data factories for the FrogCrew API.
//
// Factory methods insert entities with sensible defaults directly through
// gorm, bypassing services, and return the stored models:
//
//	f := fixtures.New(tdb.DB)
//	director := f.CreateMember(t, fixtures.WithPositions(model.PositionDirector))
//	schedule := f.CreateSchedule(t)
//	game := f.CreateGame(t, schedule)
//	f.CreateCrewSchedule(t, game, director)
//
// Emails and names carry a random suffix so fixtures never collide on
// unique indexes within one database.
package fixtures
