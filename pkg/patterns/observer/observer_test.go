package observer

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTicker_NotifiesInAttachmentOrder(t *testing.T) {
	var order []string

	ticker := NewTicker("ACME")
	ticker.Attach(observerFunc(func(string, int) { order = append(order, "first") }))
	ticker.Attach(observerFunc(func(string, int) { order = append(order, "second") }))
	ticker.SetPrice(100)

	if diff := cmp.Diff([]string{"first", "second"}, order); diff != "" {
		t.Errorf("notification order mismatch (-want +got):\n%s", diff)
	}
}

func TestAlertDesk_ThresholdGate(t *testing.T) {
	desk := &AlertDesk{Threshold: 150}
	ticker := NewTicker("ACME")
	ticker.Attach(desk)

	ticker.SetPrice(120)
	ticker.SetPrice(180)

	want := []string{"alert: ACME crossed 150"}
	if diff := cmp.Diff(want, desk.Alerts); diff != "" {
		t.Errorf("alerts mismatch (-want +got):\n%s", diff)
	}
}

func TestAuditLog_SeesEveryUpdate(t *testing.T) {
	audit := &AuditLog{}
	ticker := NewTicker("ACME")
	ticker.Attach(audit)

	ticker.SetPrice(120)
	ticker.SetPrice(180)

	want := []string{"audit: ACME now 120", "audit: ACME now 180"}
	if diff := cmp.Diff(want, audit.Entries); diff != "" {
		t.Errorf("audit entries mismatch (-want +got):\n%s", diff)
	}
}

// observerFunc adapts a function to the Observer interface.
type observerFunc func(symbol string, price int)

func (f observerFunc) Update(symbol string, price int) { f(symbol, price) }

func ExampleTicker() {
	audit := &AuditLog{}
	desk := &AlertDesk{Threshold: 150}

	ticker := NewTicker("ACME")
	ticker.Attach(audit)
	ticker.Attach(desk)

	ticker.SetPrice(120)
	ticker.SetPrice(180)

	for _, line := range audit.Entries {
		fmt.Println(line)
	}
	for _, line := range desk.Alerts {
		fmt.Println(line)
	}
	// Output:
	// audit: ACME now 120
	// audit: ACME now 180
	// alert: ACME crossed 150
}
