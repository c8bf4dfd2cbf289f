package main

import (
	"context"
	"flag"
	"log"
	"net/http"

	httpapi "rentacar-backend/internal/api/http"
	"rentacar-backend/internal/config"
	"rentacar-backend/internal/jobs"
	"rentacar-backend/internal/logger"
	"rentacar-backend/internal/report"
	"rentacar-backend/internal/repository"
	fsrepo "rentacar-backend/internal/repository/firestore"
	"rentacar-backend/internal/repository/memory"
	"rentacar-backend/internal/scheduler"
	"rentacar-backend/internal/service"
	"rentacar-backend/internal/storage"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting rent-a-car backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())

	ctx := context.Background()

	// Initialize document store
	var rentalRepo repository.RentalRepository
	var vehicleRepo repository.VehicleRepository
	switch cfg.Store.Type {
	case "firestore":
		logger.Info("Using Firestore document store", "project", cfg.Store.ProjectID)
		store, err := fsrepo.NewStore(ctx, cfg.Store.ProjectID, cfg.Store.CredentialsFile)
		if err != nil {
			logger.Error("Failed to initialize Firestore", "error", err)
			log.Fatalf("Failed to initialize Firestore: %v", err)
		}
		defer store.Close()
		rentalRepo = store.RentalRepository
		vehicleRepo = store.VehicleRepository
	default:
		logger.Info("Using in-memory document store")
		store := memory.NewStore()
		rentalRepo = store.RentalRepository
		vehicleRepo = store.VehicleRepository
	}

	// Initialize blob storage
	var blobStore storage.BlobStore
	var mockStore *storage.MockBlobStore
	if cfg.Storage.Type == "" || cfg.Storage.Type == "mock" {
		logger.Info("Using mock blob storage (local filesystem)", "dir", cfg.Storage.LocalDir)
		mockStore, err = storage.NewMockBlobStore(cfg.Storage.BaseURL, cfg.Storage.LocalDir)
		if err != nil {
			logger.Error("Failed to initialize mock storage", "error", err)
			log.Fatalf("Failed to initialize mock storage: %v", err)
		}
		blobStore = mockStore
	} else {
		logger.Info("Using S3 blob storage", "bucket", cfg.Storage.Bucket, "endpoint", cfg.Storage.Endpoint)
		blobStore, err = storage.NewS3BlobStore(ctx, cfg.Storage)
		if err != nil {
			logger.Error("Failed to initialize S3 storage", "error", err)
			log.Fatalf("Failed to initialize S3 storage: %v", err)
		}
	}

	// Initialize report engine
	assembler := report.NewAssembler(cfg.Report.Company, report.StaticTerms{})
	renderer := report.NewRenderer()
	surfaces, err := report.NewFileSurfaceProvider(cfg.Report.OutputDir)
	if err != nil {
		logger.Error("Failed to initialize output surface provider", "error", err)
		log.Fatalf("Failed to initialize output surface provider: %v", err)
	}
	presenter := report.NewPresenter(surfaces)

	// Initialize services
	emailService := service.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.SMTP.From,
	)
	rentalService := service.NewRentalService(rentalRepo, vehicleRepo)
	vehicleService := service.NewVehicleService(vehicleRepo)

	// Directory reports read from the live subscription snapshot.
	rentalFeed := service.NewRentalFeed(ctx, rentalRepo)
	defer rentalFeed.Close()
	reportService := service.NewReportService(rentalRepo, rentalFeed, assembler, renderer, presenter, blobStore, emailService)

	// Start scheduler
	if cfg.Scheduler.Enabled {
		jobRunner := jobs.NewJobRunner(rentalRepo, blobStore, cfg)
		sched := scheduler.NewScheduler(jobRunner)
		sched.Start()
		defer sched.Stop()
	}

	// Wire HTTP API
	rentalHandler := httpapi.NewRentalHandler(rentalService)
	vehicleHandler := httpapi.NewVehicleHandler(vehicleService)
	reportHandler := httpapi.NewReportHandler(reportService)
	var fileHandler *httpapi.FileHandler
	if mockStore != nil {
		fileHandler = httpapi.NewFileHandler(mockStore)
	}
	router := httpapi.NewRouter(rentalHandler, vehicleHandler, reportHandler, fileHandler)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server failed", "error", err)
		log.Fatalf("HTTP server failed: %v", err)
	}
}
