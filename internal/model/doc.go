// Package model defines the persisted entities and request types of the
// FrogCrew API.
//
// # Domain Entities
//
//   - Member: a crew member account with role and qualified positions
//   - GameSchedule: a season of games for one sport
//   - Game: one broadcast, owned by a schedule
//   - CrewSchedule: the roster for a game, holding CrewAssignments
//   - Template: a reusable list of positions stamped onto games
//   - Availability: a member's yes/no for a game
//   - Invitation: a pending sign-up link
//
// Ownership runs schedule -> game -> crew schedule -> assignment. Each link
// carries ON DELETE CASCADE so removing a parent removes its children.
//
// # JSON Serialization
//
// Entities are written to clients as-is, with camelCase field names:
//
//	{"id": 1, "gameDate": "2024-10-10", "venue": "Amon G. Carter", "isFinalized": false}
//
// Dates use DateLayout (2006-01-02) and report/start times use ClockLayout (15:04).
//
// # Validation
//
// Request structs and entities carry `validate` tags checked by Validate, which
// returns []FieldError keyed by JSON field path. Free text passes through
// Sanitize, which strips any markup before storage.
//
// # Error Types
//
// RFC 9457 Problem Details are defined in errors.go.
package model
