// Command issue-token prints a signed access token for the given identity.
// Identity provisioning lives outside this service; the command is meant for
// local development and for bootstrapping integrations.
//
// Usage:
//
//	issue-token --name="박관리" --role=manager [--sub=<uuid>] [--ttl=12h]
//
// Requires AUTH_JWT_SECRET (and optionally AUTH_JWT_ISSUER) to be set.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/worktrack-backend/internal/auth"
	"github.com/heartmarshall/worktrack-backend/internal/domain"
)

func main() {
	sub := flag.String("sub", "", "actor id (UUID); random when empty")
	name := flag.String("name", "", "actor display name")
	role := flag.String("role", "member", "actor role: member, manager or admin")
	ttl := flag.Duration("ttl", 12*time.Hour, "token lifetime")
	flag.Parse()

	if *name == "" {
		fmt.Fprintln(os.Stderr, "Usage: issue-token --name=NAME --role=member|manager|admin [--sub=UUID] [--ttl=12h]")
		os.Exit(1)
	}

	secret := os.Getenv("AUTH_JWT_SECRET")
	if len(secret) < 32 {
		log.Fatal("AUTH_JWT_SECRET environment variable must be at least 32 characters")
	}
	issuer := os.Getenv("AUTH_JWT_ISSUER")
	if issuer == "" {
		issuer = "worktrack"
	}

	id := uuid.New()
	if *sub != "" {
		parsed, err := uuid.Parse(*sub)
		if err != nil {
			log.Fatalf("parse --sub: %v", err)
		}
		id = parsed
	}

	actor := domain.Actor{ID: id, Name: *name, Role: domain.Role(*role)}
	token, err := auth.NewJWTManager(secret, issuer, *ttl).GenerateAccessToken(actor)
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}

	fmt.Println(token)
}
