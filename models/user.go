package models

import "time"

// Role is the set of account roles. Dispatch on it with exhaustive switches.
type Role string

const (
	RoleRenter Role = "renter"
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
)

// ValidRole reports whether r is a known role.
func ValidRole(r Role) bool {
	switch r {
	case RoleRenter, RoleOwner, RoleAdmin:
		return true
	}
	return false
}

// User is an account profile.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	Role         Role      `bson:"role" json:"role"`
	Name         string    `bson:"name" json:"name"`
	Avatar       string    `bson:"avatar" json:"avatar"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// PendingListing is an owner-created listing awaiting admin review.
type PendingListing struct {
	ID        string    `bson:"id" json:"id"`
	OwnerID   string    `bson:"owner_id" json:"owner_id"`
	Space     Space     `bson:"space" json:"space"`
	Status    string    `bson:"status" json:"status"` // "pending", "approved", "rejected"
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

const (
	ListingStatusPending  = "pending"
	ListingStatusApproved = "approved"
	ListingStatusRejected = "rejected"
)
