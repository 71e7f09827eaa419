package service

import "github.com/iliyamo/railway-segment-reservation/internal/model"

// Base rate per travel class per route segment traversed. A "segment" is
// the gap between two adjacent stop orders, not real distance. The final
// amount is rate × segment count × 100 (minor currency units).
var baseFarePerClass = map[string]int64{
	model.ClassExecutive: 5000,
	model.ClassBusiness:  3000,
	model.ClassEconomy:   1500,
}

// PriceFor computes the fare for travelling the half-open range
// [startOrder, endOrder) in the given class. Unrecognized classes fall
// back to the Economy rate. Callers are expected to validate
// startOrder < endOrder before pricing; a non-positive segment count
// yields zero.
func PriceFor(class string, startOrder, endOrder int) int64 {
	segments := int64(endOrder - startOrder)
	if segments <= 0 {
		return 0
	}
	rate, ok := baseFarePerClass[class]
	if !ok {
		rate = baseFarePerClass[model.ClassEconomy]
	}
	return rate * segments * 100
}
