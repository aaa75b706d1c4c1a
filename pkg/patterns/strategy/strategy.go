// Package strategy implements the Strategy example from the corpus:
// interchangeable shipping pricers behind one interface.
package strategy

import "fmt"

// ShippingStrategy prices a parcel by weight in kilograms.
type ShippingStrategy interface {
	Name() string
	Cost(weightKg int) int
}

// Ground is flat-fee plus a dollar per kilogram.
type Ground struct{}

func (Ground) Name() string   { return "ground" }
func (Ground) Cost(w int) int { return 5 + 1*w }

// Express is pricier on both counts.
type Express struct{}

func (Express) Name() string   { return "express" }
func (Express) Cost(w int) int { return 12 + 3*w }

// Shipper is the context: it owns the parcel data, the strategy owns the
// computation.
type Shipper struct {
	strategy ShippingStrategy
}

// Use switches the active strategy.
func (s *Shipper) Use(st ShippingStrategy) {
	s.strategy = st
}

// Quote formats a price using the active strategy.
func (s *Shipper) Quote(weightKg int) (string, error) {
	if s.strategy == nil {
		return "", fmt.Errorf("no shipping strategy selected")
	}
	return fmt.Sprintf("%s shipping for %d kg: $%d",
		s.strategy.Name(), weightKg, s.strategy.Cost(weightKg)), nil
}
