package main

import (
	"fmt"
	"log"

	"cardstudio/internal/config"
	"cardstudio/internal/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := database.OpenPostgres(cfg.DB)
	if err != nil {
		log.Fatalf("connect db: %v", err)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	fmt.Println("database schema migrated")
}
