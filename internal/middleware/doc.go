// Package middleware provides gin middleware for the FrogCrew API.
//
// # Available Middleware
//
//   - RequestID: assigns or propagates X-Request-ID
//   - Auth: validates a bearer token and stores its claims
//   - AdminOnly: restricts a route to ADMIN members (after Auth)
//   - RateLimit: x/time/rate token buckets per member or client IP
//   - Metrics: Prometheus request counters and latency histograms
//
// Request logging, panic recovery, tracing and CORS come from gin-contrib/zap,
// otelgin and gin-contrib/cors and are wired in the handler package's router.
//
// # Context Values
//
// Values are stored on the request context so services and loggers see them:
//
//   - GetRequestID(ctx): unique request identifier
//   - GetClaims(ctx): validated token claims, or nil
//   - GetMemberID(ctx): authenticated member id, or 0
package middleware
