package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/campuslms/rewards-api/internal/token"
)

// Development helper: mints a bearer token without going through login.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Fatal("Error loading .env file")
	}

	userID := flag.String("user", "", "User ID for the token (random if omitted)")
	roleID := flag.String("role", "", "Role ID for the token (random if omitted)")
	tenantID := flag.String("tenant", "", "Tenant ID for the token")
	superAdmin := flag.Bool("super", false, "Mark the identity as super admin")
	expirationHours := flag.Int("exp", 24, "Token expiration in hours")
	flag.Parse()

	if *tenantID == "" {
		log.Fatal("Tenant ID is required")
	}
	if *userID == "" {
		*userID = uuid.NewString()
	}
	if *roleID == "" {
		*roleID = uuid.NewString()
	}

	secret := os.Getenv("JWT_SECRET_KEY")
	if secret == "" {
		log.Fatal("JWT_SECRET_KEY is not set")
	}

	manager := token.NewManager(secret, time.Duration(*expirationHours)*time.Hour)
	signed, err := manager.Issue(&token.Claims{
		UserID:     *userID,
		RoleID:     *roleID,
		TenantID:   *tenantID,
		SuperAdmin: *superAdmin,
	})
	if err != nil {
		log.Fatalf("Failed to generate token: %v", err)
	}

	fmt.Println(signed)
}
