// Package observer implements the Observer example from the corpus: a
// ticker notifying attached observers of price changes, in attachment order.
package observer

import "fmt"

// Observer receives price updates.
type Observer interface {
	Update(symbol string, price int)
}

// Ticker is the subject. It knows only the Observer interface.
type Ticker struct {
	symbol    string
	observers []Observer
}

// NewTicker creates a ticker for a symbol.
func NewTicker(symbol string) *Ticker {
	return &Ticker{symbol: symbol}
}

// Attach subscribes an observer. Notification order is attachment order.
func (t *Ticker) Attach(o Observer) {
	t.observers = append(t.observers, o)
}

// SetPrice publishes a new price to every observer.
func (t *Ticker) SetPrice(price int) {
	for _, o := range t.observers {
		o.Update(t.symbol, price)
	}
}

// AuditLog records every update it sees.
type AuditLog struct {
	Entries []string
}

func (a *AuditLog) Update(symbol string, price int) {
	a.Entries = append(a.Entries, fmt.Sprintf("audit: %s now %d", symbol, price))
}

// AlertDesk fires when the price crosses its threshold.
type AlertDesk struct {
	Threshold int
	Alerts    []string
}

func (a *AlertDesk) Update(symbol string, price int) {
	if price >= a.Threshold {
		a.Alerts = append(a.Alerts, fmt.Sprintf("alert: %s crossed %d", symbol, a.Threshold))
	}
}
