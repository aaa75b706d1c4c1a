// Package builder implements the Builder example from the corpus: a report
// assembled step by step and immutable once built.
package builder

import (
	"fmt"
	"strings"
)

// Report is the product. Nothing mutates it after Build.
type Report struct {
	title    string
	sections []string
	footer   string
}

func (r Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "== %s ==\n", r.title)
	for i, s := range r.sections {
		fmt.Fprintf(&b, "%d. %s\n", i+1, s)
	}
	if r.footer != "" {
		fmt.Fprintf(&b, "-- %s", r.footer)
	}
	return b.String()
}

// Sections returns the section names in order.
func (r Report) Sections() []string {
	out := make([]string, len(r.sections))
	copy(out, r.sections)
	return out
}

// ReportBuilder accumulates parts and assembles the Report at the end.
type ReportBuilder struct {
	r Report
}

// NewReport starts a builder for a titled report.
func NewReport(title string) *ReportBuilder {
	return &ReportBuilder{r: Report{title: title}}
}

// Section appends a section and returns the builder for chaining.
func (b *ReportBuilder) Section(name string) *ReportBuilder {
	b.r.sections = append(b.r.sections, name)
	return b
}

// Footer sets the footer and returns the builder for chaining.
func (b *ReportBuilder) Footer(text string) *ReportBuilder {
	b.r.footer = text
	return b
}

// Build seals and returns the report. The builder keeps no hold on it.
func (b *ReportBuilder) Build() Report {
	sealed := b.r
	sealed.sections = make([]string, len(b.r.sections))
	copy(sealed.sections, b.r.sections)
	return sealed
}
