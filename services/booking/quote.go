package booking

import (
	"math"

	"quickcowork/models"
)

const (
	serviceFeeRate = 0.05
	taxRate        = 0.18 // GST
)

// ComputeQuote calculates the price breakdown for renting a space at the
// given hourly price for the given number of hours. Fee and tax are rounded
// to whole currency units. The service fee is shown on the breakdown but is
// not part of Total; that matches the long-standing checkout behavior and
// changing it would silently reprice existing flows.
func ComputeQuote(pricePerHour float64, durationHours int) models.Quote {
	subtotal := pricePerHour * float64(durationHours)
	serviceFee := math.Round(subtotal * serviceFeeRate)
	tax := math.Round(subtotal * taxRate)
	return models.Quote{
		Subtotal:   subtotal,
		ServiceFee: serviceFee,
		Tax:        tax,
		Total:      subtotal + tax,
	}
}
