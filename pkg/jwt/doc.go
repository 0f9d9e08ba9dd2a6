// Package jwt issues and validates the access tokens used by the FrogCrew API.
//
// Tokens are HS256 JWTs built with github.com/golang-jwt/jwt/v5. Besides the
// registered claims they carry the member id, email and role:
//
//	svc, err := jwt.NewService(jwt.Config{
//	    Secret:         os.Getenv("JWT_SECRET"),
//	    Issuer:         "frogcrew",
//	    ExpirationMins: 120,
//	})
//	token, expiresAt, err := svc.Sign(jwt.Claims{MemberID: m.ID, Email: m.Email, Role: jwt.RoleAdmin})
//
//	claims, err := svc.Validate(token)
//	if errors.Is(err, jwt.ErrTokenExpired) { ... }
//
// Validation pins the algorithm to HS256 and checks issuer and expiry.
package jwt
