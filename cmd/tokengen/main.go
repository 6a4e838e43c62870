package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/noah-isme/contract-capacity-api/internal/models"
	"github.com/noah-isme/contract-capacity-api/internal/service"
	"github.com/noah-isme/contract-capacity-api/pkg/config"
)

// tokengen mints an access token signed with the configured secret, for
// operators and local testing against the API.
func main() {
	var (
		userID   string
		email    string
		fullName string
		role     string
		expiry   time.Duration
	)

	flag.StringVar(&userID, "user", "", "User ID placed in the token (random when empty)")
	flag.StringVar(&email, "email", "", "E-mail claim")
	flag.StringVar(&fullName, "name", "", "Full name claim")
	flag.StringVar(&role, "role", string(models.RoleCoordinator), "Role: ADMIN, COORDINATOR or VIEWER")
	flag.DurationVar(&expiry, "expiry", 0, "Token lifetime (defaults to JWT_EXPIRATION)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if expiry <= 0 {
		expiry = cfg.JWT.Expiration
	}

	auth := service.NewAuthService(nil, service.AuthConfig{
		AccessTokenSecret: cfg.JWT.Secret,
		AccessTokenExpiry: expiry,
		Issuer:            cfg.JWT.Issuer,
	})

	token, expiresAt, err := auth.IssueToken(userID, email, fullName, models.UserRole(strings.ToUpper(role)))
	if err != nil {
		log.Fatalf("failed to issue token: %v", err)
	}

	fmt.Println(token)
	log.Printf("expires at %s", expiresAt.Format(time.RFC3339))
}
