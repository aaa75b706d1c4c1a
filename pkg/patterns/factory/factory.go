// Package factory implements the Factory Method example from the corpus:
// one constructor function mapping a kind to a configured product.
package factory

import "fmt"

// Bike describes one model in the catalog.
type Bike struct {
	Model        string
	FuelCapacity int // liters
	Mileage      int // kilometers per liter
}

// Specs formats the bike the way the catalog prints it.
func (b *Bike) Specs() string {
	return fmt.Sprintf("%s: %d L tank, %d km/L", b.Model, b.FuelCapacity, b.Mileage)
}

// NewBike is the factory: it maps a kind to a configured product and
// rejects kinds the catalog does not stock.
func NewBike(kind string) (*Bike, error) {
	switch kind {
	case "sport":
		return &Bike{Model: "Falcon 350", FuelCapacity: 13, Mileage: 35}, nil
	case "cruiser":
		return &Bike{Model: "Roadking", FuelCapacity: 18, Mileage: 28}, nil
	case "commuter":
		return &Bike{Model: "City 110", FuelCapacity: 9, Mileage: 60}, nil
	}
	return nil, fmt.Errorf("unknown bike kind %q", kind)
}
