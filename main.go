package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"prms/backend/api"
	"prms/backend/database"
	"prms/backend/logging"
	"prms/backend/security"
	"prms/backend/services"
	"prms/backend/store"
)

func main() {
	// Parse command line flags
	dbPath := flag.String("db", "./prms.db", "Path to the snapshot database")
	resetDB := flag.Bool("reset-db", false, "Delete the stored snapshot and reseed on next boot")
	noExit := flag.Bool("no-exit", false, "Don't exit after database reset")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found; relying on existing environment")
	}

	logger := logging.New()

	// Use an encryption key from environment; empty disables at-rest
	// encryption of the snapshot blob.
	cipher := security.NewCipher(os.Getenv("ENCRYPTION_KEY"))
	if cipher == nil {
		logger.Warn("ENCRYPTION_KEY not set, storing snapshots unencrypted")
	}

	path := *dbPath
	if os.Getenv("TEST_DB") == "1" {
		path = ":memory:"
	}

	db, err := database.Open(path, cipher)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if *resetDB || os.Getenv("RESET_DB") == "true" {
		logger.Info("resetting stored snapshot")
		if err := db.Reset(); err != nil {
			log.Fatal(err)
		}
		if !*noExit {
			logger.Info("reset completed, exiting")
			return
		}
	}

	st, err := store.New(db, logger)
	if err != nil {
		log.Fatal(err)
	}

	tokens := services.NewTokenManager(jwtSecret(logger), "prms-backend", tokenTTL())

	stopCheckpoints := services.StartCheckpointScheduler(db, logger, time.Hour)
	defer close(stopCheckpoints)

	srv := &http.Server{
		Handler:      api.NewServer(st, tokens, logger).Handler(),
		Addr:         ":" + port(),
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	logger.Infof("PRMS backend listening on %s", srv.Addr)
	log.Fatal(srv.ListenAndServe())
}

func port() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return "8080"
}

func jwtSecret(logger *logrus.Logger) string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		logger.Warn("JWT_SECRET not set, using a default key. This is NOT secure for production!")
		secret = "default-key-for-development-only"
	}
	return secret
}

func tokenTTL() time.Duration {
	minutes := os.Getenv("JWT_TTL_MINUTES")
	if minutes == "" {
		return time.Hour
	}
	d, err := time.ParseDuration(minutes + "m")
	if err != nil || d <= 0 {
		return time.Hour
	}
	return d
}
