package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
)

// waitdb blocks until the database accepts connections, polling every
// two seconds. Run it before the api process in container setups.
func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		host := getEnv("DB_HOST", "db")
		port := getEnv("DB_PORT", "5432")
		user := getEnv("DB_USER", "postgres")
		password := getEnv("DB_PASSWORD", "postgres")
		name := getEnv("DB_NAME", "postgres")
		dsn = fmt.Sprintf("postgres://%s:%s@%s:%s/%s", user, password, host, port, name)
	}

	for {
		if err := ping(dsn); err == nil {
			log.Println("database is ready")
			return
		} else {
			log.Printf("database not ready: %v, retrying in 2s", err)
		}
		time.Sleep(2 * time.Second)
	}
}

func ping(dsn string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)
	return conn.Ping(ctx)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
