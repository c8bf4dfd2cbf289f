package domain

type VehicleStatus string

const (
	VehicleStatusAvailable   VehicleStatus = "available"
	VehicleStatusRented      VehicleStatus = "rented"
	VehicleStatusMaintenance VehicleStatus = "maintenance"
)

// Vehicle is the live fleet entry. Booking copies it into a
// VehicleSnapshot on the rental; reports never read this collection.
type Vehicle struct {
	ID        string        `json:"id" firestore:"-"`
	Brand     string        `json:"brand" firestore:"brand"`
	Model     string        `json:"model" firestore:"model"`
	Year      string        `json:"year" firestore:"year"`
	CarNumber string        `json:"car_number" firestore:"carNumber"`
	Type      string        `json:"type" firestore:"type"`
	Color     string        `json:"color" firestore:"color"`
	Image     string        `json:"image,omitempty" firestore:"image,omitempty"`
	Status    VehicleStatus `json:"status" firestore:"status"`
	CreatedAt string        `json:"created_at" firestore:"createdAt"`
	UpdatedAt string        `json:"updated_at" firestore:"updatedAt"`
}

// Snapshot returns the denormalized copy stored on a rental.
func (v *Vehicle) Snapshot() VehicleSnapshot {
	return VehicleSnapshot{
		Brand:     v.Brand,
		Model:     v.Model,
		Year:      v.Year,
		CarNumber: v.CarNumber,
		Type:      v.Type,
		Color:     v.Color,
		Image:     v.Image,
	}
}
