// Package jobs implements background job processing for the FrogCrew API.
//
// Jobs run on their own ticker, independently of HTTP request handling, and
// log failures rather than stopping the process.
//
//   - InvitationExpiry: removes sign-up invitations past their lifetime
package jobs
