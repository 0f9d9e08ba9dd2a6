// Package repository implements the data access layer for the FrogCrew API.
//
// Each repository wraps a *database.DB and handles one aggregate: schedules
// with their games, crew schedules with their assignments, templates with
// their positions, members, availability and invitations.
//
// # Repository Pattern
//
//   - Constructor function (NewXxxRepository) accepts the database
//   - Every method takes a context and obtains its handle with db.Conn(ctx),
//     so it joins the request transaction when one is open
//   - GetByID methods return nil, nil when the row does not exist
//   - Errors pass through database.Translate, so callers can test for
//     database.ErrNotFound and database.ErrDuplicate with errors.Is
//
// # Cascades
//
// Deleting a parent removes its children explicitly inside one transaction,
// in addition to the ON DELETE CASCADE foreign keys created by migration:
//
//	schedule -> games -> crew schedules -> crew assignments
//	                  -> availability
//	member   -> crew assignments, availability
//	template -> template positions
package repository
