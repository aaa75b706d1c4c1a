package builder

import (
	"fmt"
	"testing"
)

func TestBuild_SealsProduct(t *testing.T) {
	b := NewReport("Summary").Section("A")
	report := b.Build()

	// Further builder use must not leak into an already built report.
	b.Section("B")
	if got := report.Sections(); len(got) != 1 || got[0] != "A" {
		t.Fatalf("built report mutated after Build: %v", got)
	}
}

func TestReport_StringWithoutFooter(t *testing.T) {
	report := NewReport("Bare").Section("Only").Build()
	want := "== Bare ==\n1. Only\n"
	if got := report.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func ExampleReportBuilder() {
	report := NewReport("Quarterly Summary").
		Section("Revenue").
		Section("Costs").
		Footer("prepared by finance").
		Build()

	fmt.Println(report)
	// Output:
	// == Quarterly Summary ==
	// 1. Revenue
	// 2. Costs
	// -- prepared by finance
}
