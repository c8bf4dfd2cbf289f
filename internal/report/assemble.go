package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/format"
)

// TermsProvider supplies the fixed legal terms block. Clauses are
// reproduced verbatim, in a right-to-left script.
type TermsProvider interface {
	Title() string
	Clauses() []string
}

// Assembler builds document trees from rental records. Assembly is
// side-effect free and never fails: missing optional data degrades to
// an omitted section or a placeholder.
type Assembler struct {
	company domain.CompanyInfo
	terms   TermsProvider
	now     func() time.Time
}

func NewAssembler(company domain.CompanyInfo, terms TermsProvider) *Assembler {
	return &Assembler{
		company: company,
		terms:   terms,
		now:     time.Now,
	}
}

// sectionRule pairs an inclusion predicate with a section builder.
// Rules are evaluated in declaration order, which makes the section
// order of an agreement a single visible list.
type sectionRule struct {
	include func(domain.Rental) bool
	build   func(domain.Rental) Section
}

func always(domain.Rental) bool { return true }

func (a *Assembler) agreementRules() []sectionRule {
	return []sectionRule{
		{always, a.buildHeader},
		{always, buildVehicle},
		{always, buildParties},
		{always, buildTimeline},
		{always, buildCondition},
		{always, buildPayment},
		{hasClientDocuments, buildGallery},
		{func(r domain.Rental) bool { return r.HasDamageReport() }, buildDamage},
		{always, a.buildTerms},
		{always, buildSignatures},
	}
}

// AssembleAgreement builds the single-rental agreement document.
func (a *Assembler) AssembleAgreement(rental domain.Rental) *DocumentTree {
	tree := &DocumentTree{
		Kind:  DocumentKindAgreement,
		Title: fmt.Sprintf("Rental Agreement - %s", DisplayNumber(rental)),
	}
	for _, rule := range a.agreementRules() {
		if rule.include(rental) {
			tree.Sections = append(tree.Sections, rule.build(rental))
		}
	}
	return tree
}

// AssembleDirectory builds the all-clients directory report. Header
// statistics are computed over the original rental list, not the
// derived summaries, so revenue is independent of any per-summary
// accumulation.
func (a *Assembler) AssembleDirectory(rentals []domain.Rental) *DocumentTree {
	summaries := AggregateByClient(rentals)

	var revenue float64
	for _, r := range rentals {
		revenue += r.TotalAmount
	}

	cards := make([]ClientCard, 0, len(summaries))
	for _, s := range summaries {
		cards = append(cards, buildClientCard(s))
	}

	return &DocumentTree{
		Kind:  DocumentKindDirectory,
		Title: fmt.Sprintf("All Clients - %s", a.company.Name),
		Sections: []Section{
			DirectoryHeaderSection{
				Company:     a.company,
				ReportTitle: "All Clients Report",
				GeneratedOn: a.now().Format("Monday, January 2, 2006"),
			},
			StatsSection{
				ClientCount: len(summaries),
				RentalCount: len(rentals),
				Revenue:     format.Currency(revenue),
			},
			ClientCardsSection{Cards: cards},
		},
	}
}

// DisplayNumber returns the identifier printed on the agreement:
// the explicit agreement number when present, otherwise the uppercased
// store id.
func DisplayNumber(r domain.Rental) string {
	if r.AgreementNumber != "" {
		return r.AgreementNumber
	}
	return strings.ToUpper(r.ID)
}

func (a *Assembler) buildHeader(r domain.Rental) Section {
	return HeaderSection{
		Company:       a.company,
		Badge:         "AGREEMENT",
		DisplayNumber: DisplayNumber(r),
		IssueDate:     format.Date(r.CreatedAt),
	}
}

func buildVehicle(r domain.Rental) Section {
	v := r.Vehicle
	carNumber := v.CarNumber
	if carNumber == "" {
		carNumber = "N/A"
	}
	glyph := ""
	if v.Image == "" && v.Brand != "" {
		glyph = strings.ToUpper(string([]rune(v.Brand)[0]))
	}
	return VehicleSection{
		Title:     fmt.Sprintf("%s %s | %s", v.Brand, v.Model, v.Year),
		CarNumber: carNumber,
		Detail:    fmt.Sprintf("Type: %s • Color: %s", v.Type, v.Color),
		Image:     v.Image,
		Glyph:     glyph,
	}
}

func buildParties(r domain.Rental) Section {
	return PartiesSection{
		ClientTitle: "Client Information",
		ClientRows: []LabeledValue{
			{"Full Name", r.Client.FullName},
			{"CNIC No", r.Client.CNIC},
			{"Phone", r.Client.Phone},
			{"Address", r.Client.Address},
		},
		WitnessTitle: "Witness Details",
		WitnessRows: []LabeledValue{
			{"Full Name", r.Witness.Name},
			{"CNIC No", r.Witness.CNIC},
			{"Phone", r.Witness.Phone},
			{"Address", r.Witness.Address},
		},
	}
}

// buildTimeline formats the delivery and return timestamps
// independently, so a missing delivery time never blocks the return
// side.
func buildTimeline(r domain.Rental) Section {
	return TimelineSection{
		Delivery: TimelineEntry{
			Label: "Delivery (Check Out)",
			Value: joinDateTime(format.Date(r.DeliveryDate), format.Time(r.DeliveryTime)),
		},
		Return: TimelineEntry{
			Label: "Return (Check In)",
			Value: joinDateTime(format.Date(r.ReturnDate), format.Time(r.ReturnTime)),
		},
	}
}

func joinDateTime(date, clock string) string {
	switch {
	case date == "":
		return clock
	case clock == "":
		return date
	default:
		return date + " • " + clock
	}
}

func buildCondition(r domain.Rental) Section {
	var accessories []string
	for _, key := range sortedTrueKeys(r.Accessories) {
		accessories = append(accessories, format.SpaceCamelCase(key))
	}

	fuel, odometer := "N/A", "N/A"
	if c := r.VehicleCondition; c != nil {
		if c.FuelLevel != "" {
			fuel = c.FuelLevel
		}
		reading := c.OdometerReading
		if reading == "" {
			reading = c.Mileage
		}
		if reading != "" {
			odometer = reading + " KM"
		}
	}
	return ConditionSection{
		Accessories: accessories,
		FuelLevel:   fuel,
		Odometer:    odometer,
	}
}

// sortedTrueKeys returns the checklist keys whose value is true, in
// sorted order so the section is deterministic across runs.
func sortedTrueKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k, v := range m {
		if v {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

func buildPayment(r domain.Rental) Section {
	return PaymentSection{
		Rows: []PaymentRow{
			{Label: fmt.Sprintf("Total Amount (%s)", r.RentType), Value: format.Currency(r.TotalAmount)},
			{Label: "Advance Payment", Value: format.Currency(r.AdvancePayment), Deduction: true},
			{Label: "BALANCE DUE", Value: format.Currency(r.Balance), Highlight: true},
		},
	}
}

func hasClientDocuments(r domain.Rental) bool {
	return len(clientDocuments(r.Client, false)) > 0
}

// clientDocuments collects the present document images in fixed order:
// photo, CNIC front, CNIC back, driving license. Absent entries are
// skipped, never rendered as empty slots.
func clientDocuments(c domain.Client, short bool) []GalleryEntry {
	photoLabel, licenseLabel := "Client Photo", "Driving License"
	if short {
		photoLabel, licenseLabel = "Photo", "License"
	}
	var entries []GalleryEntry
	if c.Photo != "" {
		entries = append(entries, GalleryEntry{Label: photoLabel, Src: c.Photo})
	}
	if c.CNICFrontImage != "" {
		entries = append(entries, GalleryEntry{Label: "CNIC Front", Src: c.CNICFrontImage})
	}
	if c.CNICBackImage != "" {
		entries = append(entries, GalleryEntry{Label: "CNIC Back", Src: c.CNICBackImage})
	}
	if c.DrivingLicenseImage != "" {
		entries = append(entries, GalleryEntry{Label: licenseLabel, Src: c.DrivingLicenseImage})
	}
	return entries
}

func buildGallery(r domain.Rental) Section {
	return GallerySection{Entries: clientDocuments(r.Client, false)}
}

func buildDamage(r domain.Rental) Section {
	d := r.DentsScratches
	section := DamageSection{Notes: d.Notes}
	section.Images = append(section.Images, d.Images...)
	return section
}

func (a *Assembler) buildTerms(domain.Rental) Section {
	return TermsSection{
		Title:   a.terms.Title(),
		Clauses: a.terms.Clauses(),
	}
}

func buildSignatures(r domain.Rental) Section {
	return SignaturesSection{
		Slots: []SignatureSlot{
			{Title: "Client Signature", Image: r.ClientSignature},
			{Title: "Authorized Signature", Image: r.OwnerSignature},
		},
	}
}

func buildClientCard(s domain.ClientSummary) ClientCard {
	card := ClientCard{
		Name:        s.Client.FullName,
		CNIC:        s.Client.CNIC,
		Phone:       s.Client.Phone,
		Address:     s.Client.Address,
		RentalCount: len(s.Rentals),
		TotalSpent:  format.Currency(s.TotalSpent),
		Documents:   clientDocuments(s.Client, true),
	}
	for _, r := range s.Rentals {
		card.History = append(card.History, HistoryRow{
			Vehicle:    strings.TrimSpace(r.Vehicle.Brand + " " + r.Vehicle.Model),
			Plate:      r.Vehicle.CarNumber,
			Period:     joinPeriod(format.Date(r.DeliveryDate), format.Date(r.ReturnDate)),
			Amount:     format.Currency(r.TotalAmount),
			Status:     string(r.PaymentStatus),
			BadgeClass: badgeClass(r.PaymentStatus),
		})
	}
	return card
}

func joinPeriod(from, to string) string {
	switch {
	case from == "":
		return to
	case to == "":
		return from
	default:
		return from + " – " + to
	}
}

// badgeClass maps a payment status to its visual class. Unrecognized
// statuses still render, with the neutral default.
func badgeClass(status domain.PaymentStatus) string {
	switch status {
	case domain.PaymentStatusPaid:
		return "badge-paid"
	case domain.PaymentStatusPending:
		return "badge-pending"
	default:
		return "badge-neutral"
	}
}
