package main

import (
	"Food-Waste-Tracker/cmd/config"
	migration "Food-Waste-Tracker/cmd/database/migrate"
	"Food-Waste-Tracker/cmd/database/seed"
	"Food-Waste-Tracker/internal/utils"
	"context"
	"os"
	_ "time/tzdata"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	if err := utils.LoadConfig(); err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	command := "serve"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("error migrating database: %v", err)
	}

	switch command {
	case "migrate":
		return
	case "seed":
		now, _, err := config.Clock(utils.Settings().Timezone)
		if err != nil {
			log.Fatalf("error loading timezone: %v", err)
		}
		if _, err := seed.Seed(context.Background(), db, now()); err != nil {
			log.Fatalf("error seeding database: %v", err)
		}
	case "serve":
		serve(db)
	default:
		log.Fatalf("unknown command %q, expected serve, migrate or seed", command)
	}
}
