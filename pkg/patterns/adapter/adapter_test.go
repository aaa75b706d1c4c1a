package adapter

import (
	"fmt"
	"testing"
)

func alertOps(n Notifier) {
	n.Notify("disk usage above 90%")
}

func TestPagerAdapter_Translates(t *testing.T) {
	pager := &LegacyPager{}
	alertOps(PagerAdapter{Pager: pager, Code: 42})

	if len(pager.Sent) != 1 {
		t.Fatalf("expected 1 page, got %d", len(pager.Sent))
	}
	want := "PAGE [42] disk usage above 90%"
	if pager.Sent[0] != want {
		t.Errorf("page = %q, want %q", pager.Sent[0], want)
	}
}

func ExamplePagerAdapter() {
	pager := &LegacyPager{}
	alertOps(PagerAdapter{Pager: pager, Code: 42})

	fmt.Println(pager.Sent[0])
	// Output:
	// PAGE [42] disk usage above 90%
}
