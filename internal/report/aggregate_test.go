package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rentacar-backend/internal/domain"
)

func rentalFor(cnic, name string, amount float64) domain.Rental {
	return domain.Rental{
		Client:      domain.Client{CNIC: cnic, FullName: name},
		TotalAmount: amount,
	}
}

func TestAggregateByClient(t *testing.T) {
	t.Run("GroupsByCNIC", func(t *testing.T) {
		rentals := []domain.Rental{
			rentalFor("12345-1", "Ali Khan", 1000),
			rentalFor("67890-2", "Sara Ahmed", 800),
			rentalFor("12345-1", "Ali Khan", 500),
		}

		summaries := AggregateByClient(rentals)

		assert.Len(t, summaries, 2)
		assert.Equal(t, "12345-1", summaries[0].Client.CNIC)
		assert.Len(t, summaries[0].Rentals, 2)
		assert.Equal(t, float64(1500), summaries[0].TotalSpent)
		assert.Equal(t, "67890-2", summaries[1].Client.CNIC)
		assert.Equal(t, float64(800), summaries[1].TotalSpent)
	})

	t.Run("FirstOccurrenceOrder", func(t *testing.T) {
		rentals := []domain.Rental{
			rentalFor("c", "C", 1),
			rentalFor("a", "A", 1),
			rentalFor("b", "B", 1),
			rentalFor("a", "A", 1),
		}

		summaries := AggregateByClient(rentals)

		cnics := make([]string, 0, len(summaries))
		for _, s := range summaries {
			cnics = append(cnics, s.Client.CNIC)
		}
		assert.Equal(t, []string{"c", "a", "b"}, cnics)
	})

	t.Run("LastSpellingWins", func(t *testing.T) {
		rentals := []domain.Rental{
			rentalFor("12345-1", "M. Ali", 100),
			rentalFor("12345-1", "Muhammad Ali", 200),
		}

		summaries := AggregateByClient(rentals)

		assert.Len(t, summaries, 1)
		assert.Equal(t, "Muhammad Ali", summaries[0].Client.FullName)
		// History keeps the per-rental snapshots untouched.
		assert.Equal(t, "M. Ali", summaries[0].Rentals[0].Client.FullName)
	})

	t.Run("InputNotMutated", func(t *testing.T) {
		rentals := []domain.Rental{
			rentalFor("12345-1", "Ali Khan", 1000),
			rentalFor("12345-1", "Ali K.", 500),
		}
		before := make([]domain.Rental, len(rentals))
		copy(before, rentals)

		AggregateByClient(rentals)

		assert.Equal(t, before, rentals)
	})

	t.Run("Empty", func(t *testing.T) {
		summaries := AggregateByClient(nil)
		assert.Empty(t, summaries)
	})
}
