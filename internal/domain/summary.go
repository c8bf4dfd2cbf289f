package domain

// ClientSummary is a derived view produced fresh for each directory
// report and discarded after rendering. It is keyed by client CNIC and
// is never persisted.
type ClientSummary struct {
	// Client is the representative snapshot for display. During
	// aggregation the most recently processed rental wins, so updated
	// phone numbers and name spellings show up in the report.
	Client     Client   `json:"client"`
	Rentals    []Rental `json:"rentals"`
	TotalSpent float64  `json:"total_spent"`
}
