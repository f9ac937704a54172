package models

import "time"

// BookingDraft is an in-progress, not-yet-submitted booking request.
type BookingDraft struct {
	SpaceID       string `json:"spaceId"`
	StartDate     string `json:"startDate"` // "YYYY-MM-DD"
	EndDate       string `json:"endDate"`   // "YYYY-MM-DD"
	StartTime     string `json:"startTime"` // one of the space's availability labels
	DurationHours int    `json:"duration"`  // 1..8
	GuestCount    int    `json:"guests"`    // 1..space capacity
}

// Quote is the computed price breakdown for a draft booking.
// ServiceFee is displayed to the user but not included in Total.
type Quote struct {
	Subtotal   float64 `json:"subtotal"`
	ServiceFee float64 `json:"serviceFee"`
	Tax        float64 `json:"tax"`
	Total      float64 `json:"total"`
}

// Booking represents a confirmed booking record.
type Booking struct {
	ID            string    `bson:"id" json:"id"` // generated UUID
	SpaceID       string    `bson:"space_id" json:"space_id"`
	UserID        string    `bson:"user_id" json:"user_id"`
	StartDate     string    `bson:"start_date" json:"start_date"`
	EndDate       string    `bson:"end_date" json:"end_date"`
	StartTime     string    `bson:"start_time" json:"start_time"`
	DurationHours int       `bson:"duration" json:"duration"`
	GuestCount    int       `bson:"guests" json:"guests"`
	Quote         Quote     `bson:"quote" json:"quote"`
	Status        string    `bson:"status" json:"status"` // e.g., "Confirmed"
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}

// BookingSummary is what the confirmation view renders after a submit.
type BookingSummary struct {
	Booking Booking `json:"booking"`
	Space   Space   `json:"space"`
}
