package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/logger"
	"rentacar-backend/internal/report"
	"rentacar-backend/internal/repository"
	"rentacar-backend/internal/storage"
)

type reportService struct {
	rentalRepo repository.RentalRepository
	feed       *RentalFeed
	assembler  *report.Assembler
	renderer   *report.Renderer
	presenter  *report.Presenter
	blobStore  storage.BlobStore
	emailSvc   EmailService
}

// NewReportService wires the report pipeline. feed may be nil, in which
// case directory reports query the store directly.
func NewReportService(
	rentalRepo repository.RentalRepository,
	feed *RentalFeed,
	assembler *report.Assembler,
	renderer *report.Renderer,
	presenter *report.Presenter,
	blobStore storage.BlobStore,
	emailSvc EmailService,
) ReportService {
	return &reportService{
		rentalRepo: rentalRepo,
		feed:       feed,
		assembler:  assembler,
		renderer:   renderer,
		presenter:  presenter,
		blobStore:  blobStore,
		emailSvc:   emailSvc,
	}
}

func (s *reportService) GenerateAgreement(ctx context.Context, rentalID string) ([]byte, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, fmt.Errorf("failed to load rental %s: %w", rentalID, err)
	}

	tree := s.assembler.AssembleAgreement(*rental)
	return s.renderer.Render(tree)
}

// GenerateDirectory renders the all-clients report over the live feed
// snapshot when one is wired, otherwise over a fresh store query. A
// store failure is treated as "no data": the report still renders,
// over an empty list.
func (s *reportService) GenerateDirectory(ctx context.Context) ([]byte, error) {
	var rentals []domain.Rental
	if s.feed != nil {
		rentals = s.feed.Current()
	} else {
		var err error
		rentals, err = s.rentalRepo.List(ctx)
		if err != nil {
			logger.Warn("Store unavailable, rendering empty directory report", "error", err)
			rentals = []domain.Rental{}
		}
	}

	tree := s.assembler.AssembleDirectory(rentals)
	return s.renderer.Render(tree)
}

func (s *reportService) PresentAgreement(ctx context.Context, rentalID string) error {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return fmt.Errorf("failed to load rental %s: %w", rentalID, err)
	}

	tree := s.assembler.AssembleAgreement(*rental)
	output, err := s.renderer.Render(tree)
	if err != nil {
		return err
	}
	return s.presenter.Present(ctx, agreementFileName(*rental), output)
}

func (s *reportService) PresentDirectory(ctx context.Context) error {
	output, err := s.GenerateDirectory(ctx)
	if err != nil {
		return err
	}
	name := fmt.Sprintf("all-clients-%s.html", time.Now().Format("2006-01-02"))
	return s.presenter.Present(ctx, name, output)
}

func (s *reportService) PublishAgreement(ctx context.Context, rentalID, recipientEmail string) (string, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return "", fmt.Errorf("failed to load rental %s: %w", rentalID, err)
	}

	tree := s.assembler.AssembleAgreement(*rental)
	output, err := s.renderer.Render(tree)
	if err != nil {
		return "", err
	}

	result, err := s.blobStore.Upload(ctx, &storage.UploadRequest{
		Key:         "reports/" + agreementFileName(*rental),
		Reader:      bytes.NewReader(output),
		ContentType: "text/html; charset=utf-8",
		Size:        int64(len(output)),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload agreement: %w", err)
	}

	if recipientEmail != "" {
		if err := s.emailSvc.SendAgreementReady(ctx, recipientEmail, rental.Client.FullName, result.URL); err != nil {
			logger.Warn("Agreement uploaded but email failed", "rental_id", rentalID, "error", err)
		}
	}

	return result.URL, nil
}

func agreementFileName(r domain.Rental) string {
	number := report.DisplayNumber(r)
	sanitized := strings.Map(func(c rune) rune {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
			return c
		default:
			return '-'
		}
	}, number)
	return fmt.Sprintf("agreement-%s.html", sanitized)
}
