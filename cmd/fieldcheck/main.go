package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/fieldcheck/pkg/config"
	"github.com/dmitrymomot/fieldcheck/pkg/logger"
)

type runIDKey struct{}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	l := logger.New(append(cfg.LoggerOptions(),
		logger.WithAttr(logger.Component("cli")),
		logger.WithContextValue("run_id", runIDKey{}),
	)...)
	ctx := context.WithValue(context.Background(), runIDKey{}, uuid.NewString())

	user := User{
		ID:        uuid.NewString(),
		Username:  "JohnDoe",
		Password:  "Password123",
		Age:       25,
		Gender:    "Male",
		Status:    "Active",
		Referrer:  "jane",
		Homepage:  "https://example.com/johndoe",
		RenewsAt:  time.Now().AddDate(1, 0, 0),
		Color:     Green,
		Overdraft: 0,
	}

	valid := run(ctx, l, cfg.Mode, user)
	fmt.Printf("Is user valid? %t\n", valid)
	if !valid {
		os.Exit(1)
	}
}
