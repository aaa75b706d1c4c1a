// Package chain implements the Chain of Responsibility examples from the
// corpus: a linked sequence of handlers, each holding a threshold and an
// optional next handler. A request walks the chain front to back until a
// handler accepts it, or falls through to the default action at the end.
package chain

import "fmt"

// Approver handles expenses up to its limit and defers the rest to the next
// approver in the chain.
type Approver struct {
	name  string
	limit int
	next  *Approver
}

// NewApprover creates an approver authorized up to limit dollars.
func NewApprover(name string, limit int) *Approver {
	return &Approver{name: name, limit: limit}
}

// SetNext links the next tier and returns it, so chains read left to right:
//
//	manager.SetNext(director).SetNext(cfo)
func (a *Approver) SetNext(next *Approver) *Approver {
	a.next = next
	return next
}

// Approve returns the decision line for an expense. The first approver whose
// limit covers the amount decides; an uncovered amount escalates to the
// default action.
func (a *Approver) Approve(amount int) string {
	if amount <= a.limit {
		return fmt.Sprintf("%s approved the expense of $%d", a.name, amount)
	}
	if a.next != nil {
		return a.next.Approve(amount)
	}
	return fmt.Sprintf("Expense of $%d requires a board meeting", amount)
}

// Ticket is a support request with an id and a priority (higher is hotter).
type Ticket struct {
	ID       int
	Priority int
}

// TicketHandler resolves tickets up to a priority ceiling.
type TicketHandler struct {
	name        string
	maxPriority int
	next        *TicketHandler
}

// NewTicketHandler creates a handler for tickets up to maxPriority.
func NewTicketHandler(name string, maxPriority int) *TicketHandler {
	return &TicketHandler{name: name, maxPriority: maxPriority}
}

// SetNext links the next escalation tier and returns it.
func (h *TicketHandler) SetNext(next *TicketHandler) *TicketHandler {
	h.next = next
	return next
}

// Handle returns the resolution line for a ticket, escalating past handlers
// whose ceiling is below the ticket's priority.
func (h *TicketHandler) Handle(t Ticket) string {
	if t.Priority <= h.maxPriority {
		return fmt.Sprintf("ticket #%d handled by %s", t.ID, h.name)
	}
	if h.next != nil {
		return h.next.Handle(t)
	}
	return fmt.Sprintf("ticket #%d queued for triage", t.ID)
}
