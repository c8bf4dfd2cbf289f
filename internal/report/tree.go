package report

import "rentacar-backend/internal/domain"

type DocumentKind string

const (
	DocumentKindAgreement DocumentKind = "agreement"
	DocumentKindDirectory DocumentKind = "directory"
)

type SectionKind string

const (
	SectionHeader          SectionKind = "header"
	SectionVehicle         SectionKind = "vehicle"
	SectionParties         SectionKind = "parties"
	SectionTimeline        SectionKind = "timeline"
	SectionCondition       SectionKind = "condition"
	SectionPayment         SectionKind = "payment"
	SectionGallery         SectionKind = "gallery"
	SectionDamage          SectionKind = "damage"
	SectionTerms           SectionKind = "terms"
	SectionSignatures      SectionKind = "signatures"
	SectionDirectoryHeader SectionKind = "directory_header"
	SectionStats           SectionKind = "stats"
	SectionClientCards     SectionKind = "client_cards"
)

// Section is one node of an assembled document tree. The concrete type
// carries the display data; Kind tags the variant so the renderer and
// tests can dispatch without reflection.
type Section interface {
	SectionKind() SectionKind
}

// DocumentTree is the assembled, render-ready document: an ordered list
// of sections for one report kind. Assembly is pure, so two calls over
// the same rental produce structurally identical trees.
type DocumentTree struct {
	Kind     DocumentKind
	Title    string
	Sections []Section
}

type LabeledValue struct {
	Label string
	Value string
}

type HeaderSection struct {
	Company       domain.CompanyInfo
	Badge         string
	DisplayNumber string
	IssueDate     string
}

func (HeaderSection) SectionKind() SectionKind { return SectionHeader }

type VehicleSection struct {
	Title     string
	CarNumber string
	Detail    string
	Image     string
	// Glyph is the single-letter placeholder shown when no vehicle
	// image exists, derived from the brand's first character.
	Glyph string
}

func (VehicleSection) SectionKind() SectionKind { return SectionVehicle }

type PartiesSection struct {
	ClientTitle  string
	ClientRows   []LabeledValue
	WitnessTitle string
	WitnessRows  []LabeledValue
}

func (PartiesSection) SectionKind() SectionKind { return SectionParties }

type TimelineEntry struct {
	Label string
	Value string
}

type TimelineSection struct {
	Delivery TimelineEntry
	Return   TimelineEntry
}

func (TimelineSection) SectionKind() SectionKind { return SectionTimeline }

type ConditionSection struct {
	// Accessories holds only checklist entries whose value was true,
	// with identifiers expanded to spaced words. Empty means the rental
	// carried no accessories object and renders as "None".
	Accessories []string
	FuelLevel   string
	Odometer    string
}

func (ConditionSection) SectionKind() SectionKind { return SectionCondition }

type PaymentRow struct {
	Label     string
	Value     string
	Deduction bool
	Highlight bool
}

type PaymentSection struct {
	Rows []PaymentRow
}

func (PaymentSection) SectionKind() SectionKind { return SectionPayment }

type GalleryEntry struct {
	Label string
	Src   string
}

type GallerySection struct {
	Entries []GalleryEntry
}

func (GallerySection) SectionKind() SectionKind { return SectionGallery }

type DamageSection struct {
	Notes  string
	Images []string
}

func (DamageSection) SectionKind() SectionKind { return SectionDamage }

type TermsSection struct {
	Title   string
	Clauses []string
}

func (TermsSection) SectionKind() SectionKind { return SectionTerms }

type SignatureSlot struct {
	Title string
	// Image is empty when the document was not signed digitally; the
	// renderer then emits a marked line for physical signing.
	Image string
}

type SignaturesSection struct {
	Slots []SignatureSlot
}

func (SignaturesSection) SectionKind() SectionKind { return SectionSignatures }

type DirectoryHeaderSection struct {
	Company     domain.CompanyInfo
	ReportTitle string
	GeneratedOn string
}

func (DirectoryHeaderSection) SectionKind() SectionKind { return SectionDirectoryHeader }

type StatsSection struct {
	ClientCount int
	RentalCount int
	Revenue     string
}

func (StatsSection) SectionKind() SectionKind { return SectionStats }

type HistoryRow struct {
	Vehicle    string
	Plate      string
	Period     string
	Amount     string
	Status     string
	BadgeClass string
}

type ClientCard struct {
	Name        string
	CNIC        string
	Phone       string
	Address     string
	RentalCount int
	TotalSpent  string
	Documents   []GalleryEntry
	History     []HistoryRow
}

type ClientCardsSection struct {
	Cards []ClientCard
}

func (ClientCardsSection) SectionKind() SectionKind { return SectionClientCards }
