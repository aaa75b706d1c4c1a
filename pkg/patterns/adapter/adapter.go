// Package adapter implements the Adapter example from the corpus: a legacy
// pager wrapped so it satisfies the Notifier interface the application
// expects.
package adapter

import "fmt"

// Notifier is the interface the application expects.
type Notifier interface {
	Notify(message string)
}

// LegacyPager stands in for a vendor type we cannot change; its signature
// does not match Notifier.
type LegacyPager struct {
	Sent []string
}

// Page is the legacy API: numeric code plus text.
func (p *LegacyPager) Page(code int, text string) {
	p.Sent = append(p.Sent, fmt.Sprintf("PAGE [%d] %s", code, text))
}

// PagerAdapter makes a LegacyPager usable wherever a Notifier is wanted.
// Translation only; behavior belongs in a decorator.
type PagerAdapter struct {
	Pager *LegacyPager
	Code  int
}

func (a PagerAdapter) Notify(message string) {
	a.Pager.Page(a.Code, message)
}
