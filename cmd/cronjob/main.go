package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"rentacar-backend/internal/config"
	"rentacar-backend/internal/jobs"
	"rentacar-backend/internal/logger"
	"rentacar-backend/internal/repository"
	fsrepo "rentacar-backend/internal/repository/firestore"
	"rentacar-backend/internal/repository/memory"
	"rentacar-backend/internal/scheduler"
	"rentacar-backend/internal/storage"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'backup-rentals', 'mark-overdue', 'all-nightly')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting cronjob runner...", "log_level", cfg.Log.Level)

	ctx := context.Background()

	// Initialize document store
	var rentalRepo repository.RentalRepository
	switch cfg.Store.Type {
	case "firestore":
		store, err := fsrepo.NewStore(ctx, cfg.Store.ProjectID, cfg.Store.CredentialsFile)
		if err != nil {
			logger.Error("Failed to initialize Firestore", "error", err)
			log.Fatalf("Failed to initialize Firestore: %v", err)
		}
		defer store.Close()
		rentalRepo = store.RentalRepository
	default:
		rentalRepo = memory.NewStore().RentalRepository
	}

	// Initialize blob storage
	var blobStore storage.BlobStore
	if cfg.Storage.Type == "" || cfg.Storage.Type == "mock" {
		blobStore, err = storage.NewMockBlobStore(cfg.Storage.BaseURL, cfg.Storage.LocalDir)
	} else {
		blobStore, err = storage.NewS3BlobStore(ctx, cfg.Storage)
	}
	if err != nil {
		logger.Error("Failed to initialize blob storage", "error", err)
		log.Fatalf("Failed to initialize blob storage: %v", err)
	}

	jobRunner := jobs.NewJobRunner(rentalRepo, blobStore, cfg)

	// Run-once mode for manual execution
	if *runOnce != "" {
		switch *runOnce {
		case "backup-rentals":
			jobRunner.BackupRentals()
		case "mark-overdue":
			jobRunner.MarkOverdueRentals()
		case "all-nightly":
			jobRunner.RunAllNightlyJobs()
		default:
			log.Fatalf("Unknown job: %s", *runOnce)
		}
		logger.Info("Job run complete", "job", *runOnce)
		return
	}

	// Scheduled mode
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()

	// Wait for shutdown signal
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	sched.Stop()
}
