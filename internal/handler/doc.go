// Package handler provides the gin HTTP handlers and router for the FrogCrew API.
//
// Each handler struct wraps one service and serves the endpoints of one area:
// game schedules, crew schedules, templates, members, availability,
// invitations and login.
//
// # Handler Pattern
//
//   - Constructor function (NewXxxHandler) takes the service it serves
//   - Path ids are parsed with pathID, which answers 400 on bad input
//   - Bodies go through bind: decode, Normalize, then model.Validate
//   - Service errors are mapped by MapServiceError to RFC 9457 Problem Details
//
// # Response Format
//
// Successful responses carry the entity itself with status 200, creates
// included. Deletes answer {"message": "..."}.
//
//   - WriteJSON: Raw JSON response
//   - WriteMessage: Delete confirmation
//   - WriteError: RFC 9457 Problem Details error response
//
// # Authentication
//
// The broadcast calendar routes are public. Everything else sits behind
// middleware.Auth, and member, template and invitation writes additionally
// behind middleware.AdminOnly. NewRouter wires the groups.
package handler
