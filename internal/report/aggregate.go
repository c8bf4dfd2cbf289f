// Package report implements the document aggregation and rendering
// engine: it groups raw rentals into per-client summaries, assembles a
// structured document tree for a single agreement or a client
// directory, and renders the tree to a print-ready page.
package report

import (
	"rentacar-backend/internal/domain"
)

// AggregateByClient groups rentals by client CNIC into one summary per
// distinct CNIC, in first-occurrence order. Each summary accumulates
// rental history in input order and a running TotalSpent; the displayed
// client snapshot is overwritten by every rental processed, so the most
// recent spelling wins. The input slice and its records are never
// mutated.
func AggregateByClient(rentals []domain.Rental) []domain.ClientSummary {
	keys := make([]string, 0, len(rentals))
	byCNIC := make(map[string]*domain.ClientSummary, len(rentals))

	for _, r := range rentals {
		cnic := r.Client.CNIC
		summary, ok := byCNIC[cnic]
		if !ok {
			summary = &domain.ClientSummary{}
			byCNIC[cnic] = summary
			keys = append(keys, cnic)
		}
		summary.Client = r.Client
		summary.Rentals = append(summary.Rentals, r)
		summary.TotalSpent += r.TotalAmount
	}

	summaries := make([]domain.ClientSummary, 0, len(keys))
	for _, cnic := range keys {
		summaries = append(summaries, *byCNIC[cnic])
	}
	return summaries
}
