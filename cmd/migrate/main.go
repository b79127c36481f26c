package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/url"
	"os"

	"github.com/dayvsonmarques/web-cardapio-sub001/internal/config"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	path := flag.String("path", "migrations", "path to migration files")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("Usage: migrate [-path dir] up|down|drop")
		os.Exit(1)
	}

	run(flag.Arg(0), *path)
}

func run(command, path string) {
	// Only the database section is needed; the tool must run without the
	// full application environment.
	var pg config.PostgresConfig
	if err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   &pg,
		Lookuper: envconfig.PrefixLookuper("POSTGRES_", envconfig.OsLookuper()),
	}); err != nil {
		log.Fatalf("Failed to load database configuration: %v", err)
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		url.QueryEscape(pg.User),
		url.QueryEscape(pg.Password),
		pg.Host,
		pg.Port,
		pg.DBName,
		pg.SSLMode,
	)

	m, err := migrate.New("file://"+path, dsn)
	if err != nil {
		log.Fatalf("Failed to initialize migrations: %v", err)
	}
	defer m.Close()

	switch command {
	case "up":
		err = m.Up()
	case "down":
		err = m.Steps(-1)
	case "drop":
		err = m.Drop()
	default:
		log.Fatalf("Unknown command: %s", command)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Printf("Migration %s completed", command)
}
