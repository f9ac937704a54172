// File: utils/constants.go
package utils

import "time"

// BookingKeyPrefix is the prefix used for persisted booking records.
const BookingKeyPrefix = "booking:"

// ListingKeyPrefix is the prefix used for owner-created listing records.
const ListingKeyPrefix = "listing:"

// LastBookingKeyPrefix is the prefix for the per-user last-booking summary.
const LastBookingKeyPrefix = "lastBooking:"

// AuthTokenTTL is the lifetime of issued JWT tokens.
const AuthTokenTTL = 72 * time.Hour
