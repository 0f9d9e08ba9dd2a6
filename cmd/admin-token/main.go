package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/frogcrew/api/pkg/jwt"
)

func main() {
	// Flags for customization
	secret := flag.String("secret", os.Getenv("JWT_SECRET"), "HMAC signing secret (default: $JWT_SECRET)")
	memberID := flag.Uint("member", 1, "Member ID for the token")
	email := flag.String("email", "kd@gmail.com", "Email for the token")
	role := flag.String("role", jwt.RoleAdmin, "Role claim (ADMIN or MEMBER)")
	issuer := flag.String("issuer", "frogcrew", "JWT issuer")
	expMins := flag.Int("exp", 60*24*7, "Token expiration in minutes (default: 7 days)")
	outputJSON := flag.Bool("json", false, "Output as JSON")

	flag.Parse()

	if *role != jwt.RoleAdmin && *role != jwt.RoleMember {
		fmt.Fprintf(os.Stderr, "Error: -role must be %s or %s\n", jwt.RoleAdmin, jwt.RoleMember)
		os.Exit(2)
	}

	jwtService, err := jwt.NewService(jwt.Config{
		Secret:         *secret,
		Issuer:         *issuer,
		ExpirationMins: *expMins,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating JWT service: %v\n", err)
		fmt.Fprintf(os.Stderr, "\nPass -secret or export JWT_SECRET to match the server.\n")
		os.Exit(1)
	}

	token, expiresAt, err := jwtService.Sign(jwt.Claims{
		MemberID: *memberID,
		Email:    *email,
		Role:     *role,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error signing token: %v\n", err)
		os.Exit(1)
	}

	if *outputJSON {
		output := map[string]any{
			"token":      token,
			"token_type": "Bearer",
			"expires_at": expiresAt,
			"member_id":  *memberID,
			"email":      *email,
			"role":       *role,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(output)
		return
	}

	fmt.Println("Token Generated")
	fmt.Println("===============")
	fmt.Printf("Member ID: %d\n", *memberID)
	fmt.Printf("Email:     %s\n", *email)
	fmt.Printf("Role:      %s\n", *role)
	fmt.Printf("Expires:   %s\n", expiresAt.Format("2006-01-02T15:04:05Z07:00"))
	fmt.Println()
	fmt.Println("Token:")
	fmt.Println(token)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  curl -H 'Authorization: Bearer %s' http://localhost:8080/api/crewMember\n", token)
}
