// Package decorator implements the Decorator example from the corpus:
// beverages wrapped in layers that each add a description and a cost while
// preserving the interface.
package decorator

// Beverage prices a drink in cents.
type Beverage interface {
	Description() string
	Cost() int
}

// Espresso is the base drink.
type Espresso struct{}

func (Espresso) Description() string { return "espresso" }
func (Espresso) Cost() int           { return 250 }

// Milk decorates any beverage with steamed milk.
type Milk struct {
	Base Beverage
}

func (m Milk) Description() string { return m.Base.Description() + " + milk" }
func (m Milk) Cost() int           { return m.Base.Cost() + 60 }

// Syrup decorates any beverage with a syrup shot.
type Syrup struct {
	Base Beverage
}

func (s Syrup) Description() string { return s.Base.Description() + " + syrup" }
func (s Syrup) Cost() int           { return s.Base.Cost() + 40 }
