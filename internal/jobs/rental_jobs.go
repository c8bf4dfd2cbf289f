package jobs

import (
	"context"
	"time"

	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/logger"
)

// MarkOverdueRentals flags rentals whose return date has passed while
// payment is still pending. The sweep only touches payment status;
// agreements already generated are unaffected.
func (jr *JobRunner) MarkOverdueRentals() {
	jr.runWithRecovery("MarkOverdueRentals", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		rentals, err := jr.rentalRepo.List(ctx)
		if err != nil {
			logger.Error("Overdue sweep skipped, store unavailable", "error", err)
			return
		}

		today := time.Now().UTC().Format("2006-01-02")
		marked := 0
		for _, rental := range rentals {
			if rental.PaymentStatus != domain.PaymentStatusPending {
				continue
			}
			if rental.ReturnDate == "" || rental.ReturnDate >= today {
				continue
			}

			// Outside the paid/pending pair; renders with the neutral
			// badge in directory reports.
			rental.PaymentStatus = domain.PaymentStatus("overdue")
			rental.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
			if err := jr.rentalRepo.Update(ctx, &rental); err != nil {
				logger.Error("Failed to mark rental overdue", "rental_id", rental.ID, "error", err)
				continue
			}
			marked++
		}

		logger.Info("Overdue sweep finished", "checked", len(rentals), "marked", marked)
	})
}
