// Command issue_token prints an access token signed with the configured
// JWT secret. It is meant for local development and smoke tests.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"learnhub/internal/config"
	"learnhub/internal/domain"
	"learnhub/internal/service"
	"learnhub/internal/util"
)

func main() {
	userID := flag.String("user", "", "user id to embed (defaults to a new ULID)")
	roleFlag := flag.String("role", string(domain.RoleStudent), "student, instructor or admin")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	role, err := domain.ParseRole(*roleFlag)
	if err != nil {
		log.Fatalf("Invalid role: %v", err)
	}
	if *userID == "" {
		*userID = util.NewULID()
	}

	authService, err := service.NewAuthService(cfg.JWT)
	if err != nil {
		log.Fatalf("Failed to create auth service: %v", err)
	}

	token, err := authService.CreateJWT(context.Background(), *userID, role, cfg.JWT.AccessTokenTTL)
	if err != nil {
		log.Fatalf("Failed to create token: %v", err)
	}
	fmt.Println(token)
}
