package chain

import (
	"fmt"
	"testing"
)

func buildApprovers() *Approver {
	manager := NewApprover("Manager", 1000)
	director := NewApprover("Director", 5000)
	cfo := NewApprover("CFO", 20000)
	manager.SetNext(director).SetNext(cfo)
	return manager
}

func TestApprover_TierSelection(t *testing.T) {
	head := buildApprovers()

	tests := []struct {
		amount int
		want   string
	}{
		{500, "Manager approved the expense of $500"},
		{4500, "Director approved the expense of $4500"},
		{12000, "CFO approved the expense of $12000"},
		{50000, "Expense of $50000 requires a board meeting"},
		// Boundary: a limit covers exactly its own value.
		{1000, "Manager approved the expense of $1000"},
		{1001, "Director approved the expense of $1001"},
	}
	for _, tt := range tests {
		if got := head.Approve(tt.amount); got != tt.want {
			t.Errorf("Approve(%d) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestApprover_SingleHandlerDefault(t *testing.T) {
	lone := NewApprover("Manager", 1000)
	want := "Expense of $9999 requires a board meeting"
	if got := lone.Approve(9999); got != want {
		t.Errorf("Approve(9999) = %q, want %q", got, want)
	}
}

func TestTicketHandler_Escalation(t *testing.T) {
	first := NewTicketHandler("first-line", 1)
	first.SetNext(NewTicketHandler("supervisor", 2)).SetNext(NewTicketHandler("engineering", 3))

	tests := []struct {
		ticket Ticket
		want   string
	}{
		{Ticket{ID: 7, Priority: 1}, "ticket #7 handled by first-line"},
		{Ticket{ID: 8, Priority: 2}, "ticket #8 handled by supervisor"},
		{Ticket{ID: 9, Priority: 3}, "ticket #9 handled by engineering"},
		{Ticket{ID: 10, Priority: 4}, "ticket #10 queued for triage"},
	}
	for _, tt := range tests {
		if got := first.Handle(tt.ticket); got != tt.want {
			t.Errorf("Handle(%+v) = %q, want %q", tt.ticket, got, tt.want)
		}
	}
}

func ExampleApprover_Approve() {
	manager := NewApprover("Manager", 1000)
	director := NewApprover("Director", 5000)
	cfo := NewApprover("CFO", 20000)
	manager.SetNext(director).SetNext(cfo)

	for _, amount := range []int{500, 4500, 12000, 50000} {
		fmt.Println(manager.Approve(amount))
	}
	// Output:
	// Manager approved the expense of $500
	// Director approved the expense of $4500
	// CFO approved the expense of $12000
	// Expense of $50000 requires a board meeting
}
