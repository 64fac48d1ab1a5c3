package models

import "time"

// Payment statuses.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
	PaymentRefunded  = "refunded"
)

// Payment is the money record attached to a booking. PlatformFee and
// GuideEarnings are fixed at creation time and never recomputed.
type Payment struct {
	ID            string  `bson:"id" json:"id"`
	BookingID     string  `bson:"booking_id" json:"booking_id"`
	GuideID       string  `bson:"guide_id" json:"guide_id"`
	TouristID     string  `bson:"tourist_id" json:"tourist_id"`
	Amount        float64 `bson:"amount" json:"amount"`
	PlatformFee   float64 `bson:"platform_fee" json:"platform_fee"`
	GuideEarnings float64 `bson:"guide_earnings" json:"guide_earnings"`
	Status        string  `bson:"status" json:"status"`
	TransactionID string  `bson:"transaction_id,omitempty" json:"transaction_id,omitempty"`
	// Denormalized for the admin payment screens.
	TouristName  string    `bson:"tourist_name,omitempty" json:"tourist_name,omitempty"`
	GuideName    string    `bson:"guide_name,omitempty" json:"guide_name,omitempty"`
	PackageTitle string    `bson:"package_title,omitempty" json:"package_title,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// RevenueSummary aggregates completed payments for the admin dashboard.
// TotalRevenue == TotalFees + TotalGuideEarnings holds for any input set
// whose fee split was set consistently at creation.
type RevenueSummary struct {
	TotalRevenue       float64 `json:"total_revenue"`
	TotalFees          float64 `json:"total_fees"`
	TotalGuideEarnings float64 `json:"total_guide_earnings"`
	CompletedCount     int     `json:"completed_count"`
}
