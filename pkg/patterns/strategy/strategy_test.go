package strategy

import (
	"fmt"
	"testing"
)

func TestShipper_SwitchesStrategies(t *testing.T) {
	var s Shipper

	s.Use(Ground{})
	got, err := s.Quote(4)
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if want := "ground shipping for 4 kg: $9"; got != want {
		t.Errorf("ground quote = %q, want %q", got, want)
	}

	s.Use(Express{})
	got, err = s.Quote(4)
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if want := "express shipping for 4 kg: $24"; got != want {
		t.Errorf("express quote = %q, want %q", got, want)
	}
}

func TestShipper_NoStrategy(t *testing.T) {
	var s Shipper
	if _, err := s.Quote(1); err == nil {
		t.Fatal("expected error with no strategy selected")
	}
}

func ExampleShipper() {
	var s Shipper

	s.Use(Ground{})
	quote, _ := s.Quote(4)
	fmt.Println(quote)

	s.Use(Express{})
	quote, _ = s.Quote(4)
	fmt.Println(quote)
	// Output:
	// ground shipping for 4 kg: $9
	// express shipping for 4 kg: $24
}
