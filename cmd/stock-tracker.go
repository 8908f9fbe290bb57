package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adfharrison1/stock-tracker/pkg/api"
	"github.com/adfharrison1/stock-tracker/pkg/auth"
	"github.com/adfharrison1/stock-tracker/pkg/config"
	"github.com/adfharrison1/stock-tracker/pkg/fetch"
	"github.com/adfharrison1/stock-tracker/pkg/repository"
	"github.com/adfharrison1/stock-tracker/pkg/server"
	"github.com/adfharrison1/stock-tracker/pkg/store"
)

func main() {
	// Command line flags
	var (
		configFile = flag.String("config", "", "Path to YAML config file")
		port       = flag.String("port", "", "Server port (overrides config)")
		dataDir    = flag.String("data-dir", "", "Data directory for storage (overrides config)")
		dataFile   = flag.String("data-file", "", "Database file name (overrides config)")
		showHelp   = flag.Bool("help", false, "Show help message")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nstock-tracker is a REST backend for tracking stocks and their ratings.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                                  # Start with defaults\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -config stock-tracker.yaml       # Load config from file\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -port 9090 -data-dir /var/data   # Override listener and storage\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nSafety Note:\n")
		fmt.Fprintf(os.Stderr, "  Without an auth section in the config, write endpoints are open.\n")
		fmt.Fprintf(os.Stderr, "  Configure auth.rpId and auth.rpOrigins for production use.\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	cfg := config.Default()
	if *configFile != "" {
		loaded, err := config.Load(*configFile)
		if err != nil {
			log.Fatalf("ERROR: %v", err)
		}
		cfg = loaded
		log.Printf("INFO: Loaded config from %s", *configFile)
	}
	if *port != "" {
		cfg.Server.Port = *port
	}
	if *dataDir != "" {
		cfg.Storage.DataDir = *dataDir
	}
	if *dataFile != "" {
		cfg.Storage.FileName = *dataFile
	}

	st, err := store.Open(
		store.WithDataDir(cfg.Storage.DataDir),
		store.WithFileName(cfg.Storage.FileName),
	)
	if err != nil {
		log.Fatalf("ERROR: Failed to open store: %v", err)
	}
	defer st.Close()

	repo := repository.New(st)
	pipeline := fetch.NewPipeline(repo, fetch.NewMorningstarClient(cfg.Fetch.BaseURL, cfg.Fetch.Timeout.Std()))

	var authService *auth.Service
	if cfg.AuthEnabled() {
		users, err := auth.NewUserStore(st.DB())
		if err != nil {
			log.Fatalf("ERROR: Failed to open user store: %v", err)
		}
		sessions, err := auth.NewSessionStore(st.DB(), cfg.Auth.SessionTTL.Std())
		if err != nil {
			log.Fatalf("ERROR: Failed to open session store: %v", err)
		}
		challenges := auth.NewChallengeStore(cfg.Auth.ChallengeTTL.Std())

		authService, err = auth.NewService(auth.Config{
			RPDisplayName: cfg.Auth.RPDisplayName,
			RPID:          cfg.Auth.RPID,
			RPOrigins:     cfg.Auth.RPOrigins,
		}, users, challenges, sessions)
		if err != nil {
			log.Fatalf("ERROR: Failed to configure auth: %v", err)
		}

		challenges.StartSweeper(time.Minute)
		sessions.StartSweeper(time.Minute)
		defer challenges.StopSweeper()
		defer sessions.StopSweeper()

		log.Printf("INFO: Auth enabled for relying party %s", cfg.Auth.RPID)
	} else {
		log.Printf("WARN: Auth disabled - write endpoints are open")
	}

	handler := api.NewHandler(repo, pipeline, authService)
	srv := server.NewServer(handler)

	httpServer := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: srv.Router(),
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting stock-tracker server on :%s", cfg.Server.Port)
		log.Printf("API endpoints available at http://localhost:%s/api", cfg.Server.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
