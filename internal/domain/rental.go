package domain

type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusOther   PaymentStatus = "other"
)

// Client holds the renter's identity and document image references.
// CNIC is the de-facto client identity: there is no separate client
// collection, so reports group rentals by this field.
type Client struct {
	FullName            string `json:"full_name" firestore:"fullName"`
	CNIC                string `json:"cnic" firestore:"cnic"`
	Phone               string `json:"phone" firestore:"phone"`
	Address             string `json:"address" firestore:"address"`
	Photo               string `json:"photo,omitempty" firestore:"photo,omitempty"`
	CNICFrontImage      string `json:"cnic_front_image,omitempty" firestore:"cnicFrontImage,omitempty"`
	CNICBackImage       string `json:"cnic_back_image,omitempty" firestore:"cnicBackImage,omitempty"`
	DrivingLicenseImage string `json:"driving_license_image,omitempty" firestore:"drivingLicenseImage,omitempty"`
}

type Witness struct {
	Name    string `json:"name" firestore:"name"`
	CNIC    string `json:"cnic" firestore:"cnic"`
	Phone   string `json:"phone" firestore:"phone"`
	Address string `json:"address" firestore:"address"`
}

// VehicleSnapshot is a denormalized copy of the vehicle captured at
// booking time. Agreements always render from the snapshot, so later
// edits to the vehicle collection never alter historical rentals.
type VehicleSnapshot struct {
	Brand     string `json:"brand" firestore:"brand"`
	Model     string `json:"model" firestore:"model"`
	Year      string `json:"year" firestore:"year"`
	CarNumber string `json:"car_number" firestore:"carNumber"`
	Type      string `json:"type" firestore:"type"`
	Color     string `json:"color" firestore:"color"`
	Image     string `json:"image,omitempty" firestore:"image,omitempty"`
}

type VehicleCondition struct {
	FuelLevel       string `json:"fuel_level,omitempty" firestore:"fuelLevel,omitempty"`
	OdometerReading string `json:"odometer_reading,omitempty" firestore:"odometerReading,omitempty"`
	// Deprecated: older documents stored the odometer value under
	// "mileage". Normalize folds it into OdometerReading on read; the
	// field is never written back.
	Mileage string `json:"mileage,omitempty" firestore:"mileage,omitempty"`
}

type DamageReport struct {
	Notes  string   `json:"notes,omitempty" firestore:"notes,omitempty"`
	Images []string `json:"images,omitempty" firestore:"images,omitempty"`
}

type Rental struct {
	ID              string `json:"id" firestore:"-"`
	AgreementNumber string `json:"agreement_number,omitempty" firestore:"agreementNumber,omitempty"`

	Client  Client  `json:"client" firestore:"client"`
	Witness Witness `json:"witness" firestore:"witness"`

	Vehicle VehicleSnapshot `json:"vehicle" firestore:"vehicle"`

	DeliveryDate string `json:"delivery_date" firestore:"deliveryDate"`
	DeliveryTime string `json:"delivery_time" firestore:"deliveryTime"`
	ReturnDate   string `json:"return_date" firestore:"returnDate"`
	ReturnTime   string `json:"return_time" firestore:"returnTime"`

	TotalAmount    float64       `json:"total_amount" firestore:"totalAmount"`
	AdvancePayment float64       `json:"advance_payment" firestore:"advancePayment"`
	Balance        float64       `json:"balance" firestore:"balance"`
	RentType       string        `json:"rent_type" firestore:"rentType"`
	PaymentStatus  PaymentStatus `json:"payment_status" firestore:"paymentStatus"`

	Accessories      map[string]bool   `json:"accessories,omitempty" firestore:"accessories,omitempty"`
	VehicleCondition *VehicleCondition `json:"vehicle_condition,omitempty" firestore:"vehicleCondition,omitempty"`
	DentsScratches   *DamageReport     `json:"dents_scratches,omitempty" firestore:"dentsScratches,omitempty"`

	ClientSignature string `json:"client_signature,omitempty" firestore:"clientSignature,omitempty"`
	OwnerSignature  string `json:"owner_signature,omitempty" firestore:"ownerSignature,omitempty"`

	CreatedAt string `json:"created_at" firestore:"createdAt"`
	UpdatedAt string `json:"updated_at" firestore:"updatedAt"`
}

// Normalize reconciles deprecated aliases on a freshly decoded rental.
func (r *Rental) Normalize() {
	if r.VehicleCondition != nil {
		if r.VehicleCondition.OdometerReading == "" && r.VehicleCondition.Mileage != "" {
			r.VehicleCondition.OdometerReading = r.VehicleCondition.Mileage
		}
		r.VehicleCondition.Mileage = ""
	}
}

// HasDamageReport reports whether the rental carries anything worth a
// damage section: free-text notes or at least one image.
func (r *Rental) HasDamageReport() bool {
	if r.DentsScratches == nil {
		return false
	}
	return r.DentsScratches.Notes != "" || len(r.DentsScratches.Images) > 0
}
