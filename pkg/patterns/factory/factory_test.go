package factory

import (
	"fmt"
	"testing"
)

func TestNewBike_KnownKinds(t *testing.T) {
	tests := []struct {
		kind  string
		model string
		fuel  int
	}{
		{"sport", "Falcon 350", 13},
		{"cruiser", "Roadking", 18},
		{"commuter", "City 110", 9},
	}
	for _, tt := range tests {
		bike, err := NewBike(tt.kind)
		if err != nil {
			t.Fatalf("NewBike(%q) returned error: %v", tt.kind, err)
		}
		if bike.Model != tt.model || bike.FuelCapacity != tt.fuel {
			t.Errorf("NewBike(%q) = %+v, want model %q fuel %d", tt.kind, bike, tt.model, tt.fuel)
		}
	}
}

func TestNewBike_UnknownKind(t *testing.T) {
	if _, err := NewBike("rocket"); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func ExampleNewBike() {
	for _, kind := range []string{"sport", "cruiser", "commuter", "rocket"} {
		bike, err := NewBike(kind)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		fmt.Println(bike.Specs())
	}
	// Output:
	// Falcon 350: 13 L tank, 35 km/L
	// Roadking: 18 L tank, 28 km/L
	// City 110: 9 L tank, 60 km/L
	// error: unknown bike kind "rocket"
}
