package jobs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"rentacar-backend/internal/logger"
	"rentacar-backend/internal/storage"
)

// BackupRentals serializes every rental to the blob store under
// bookings/<id>.json, mirroring what the booking client writes, so the
// object store always holds a current copy of the collection.
func (jr *JobRunner) BackupRentals() {
	jr.runWithRecovery("BackupRentals", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		rentals, err := jr.rentalRepo.List(ctx)
		if err != nil {
			logger.Error("Backup skipped, store unavailable", "error", err)
			return
		}

		backed := 0
		for _, rental := range rentals {
			data, err := json.Marshal(rental)
			if err != nil {
				logger.Error("Failed to serialize rental", "rental_id", rental.ID, "error", err)
				continue
			}

			_, err = jr.blobStore.Upload(ctx, &storage.UploadRequest{
				Key:         fmt.Sprintf("bookings/%s.json", rental.ID),
				Reader:      bytes.NewReader(data),
				ContentType: "application/json",
				Size:        int64(len(data)),
			})
			if err != nil {
				logger.Error("Failed to back up rental", "rental_id", rental.ID, "error", err)
				continue
			}
			backed++
		}

		logger.Info("Rental backup finished", "total", len(rentals), "backed_up", backed)
	})
}
