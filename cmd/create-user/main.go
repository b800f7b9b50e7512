// Command create-user seeds a user account. Accounts are read-only at
// runtime; this replaces the source system's migration-based seeding.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/cityhousing/housing-units-api/internal/core/domain"
	"github.com/cityhousing/housing-units-api/internal/infrastructure/config"
	mongodb "github.com/cityhousing/housing-units-api/internal/infrastructure/db/mongo"
)

func main() {
	email := flag.String("email", "", "user email (required)")
	password := flag.String("password", "", "user password (required)")
	group := flag.String("group", domain.GroupCustomer, "user group: admin or customer")
	inactive := flag.Bool("inactive", false, "create the account disabled")
	flag.Parse()

	if *email == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}
	if !domain.SupportedGroup(*group) {
		fmt.Fprintf(os.Stderr, "unsupported group %q\n", *group)
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load configuration: %v\n", err)
		os.Exit(1)
	}

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "mongo connect: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash password: %v\n", err)
		os.Exit(1)
	}

	repo := mongodb.NewUserRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "ensure indexes: %v\n", err)
		os.Exit(1)
	}

	user := &domain.User{
		UUID:         uuid.NewString(),
		Email:        *email,
		PasswordHash: string(hash),
		IsActive:     !*inactive,
		UserGroup:    *group,
	}
	if err := repo.Create(ctx, user); err != nil {
		fmt.Fprintf(os.Stderr, "create user: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("created user %s (%s)\n", user.Email, user.UserGroup)
}
