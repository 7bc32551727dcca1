package enum_test

import (
	"errors"
	"testing"

	"github.com/hasbyte1/go-utility-belts/enum"
)

type status int

const (
	active status = iota
	pendingReview
	disabled
)

func (s status) String() string {
	switch s {
	case active:
		return "Active"
	case pendingReview:
		return "PendingReview"
	case disabled:
		return "Disabled"
	}
	return "Unknown"
}

var all = []status{active, pendingReview, disabled}

func branches() map[status]func() string {
	return map[status]func() string{
		active:        func() string { return "running" },
		pendingReview: func() string { return "waiting" },
	}
}

func TestWhen(t *testing.T) {
	got, err := enum.When(pendingReview, branches())
	if err != nil || got != "waiting" {
		t.Fatalf("When(pendingReview) = %q, %v; want waiting", got, err)
	}
	if _, err := enum.When(disabled, branches()); !errors.Is(err, enum.ErrNoMatch) {
		t.Fatalf("When(disabled) err = %v; want ErrNoMatch", err)
	}
}

func TestWhenInvokesOnlyTheMatch(t *testing.T) {
	calls := map[status]int{}
	b := map[status]func() int{
		active:   func() int { calls[active]++; return 1 },
		disabled: func() int { calls[disabled]++; return 2 },
	}
	if got := enum.MustWhen(disabled, b); got != 2 {
		t.Fatalf("MustWhen = %d; want 2", got)
	}
	if calls[active] != 0 || calls[disabled] != 1 {
		t.Fatalf("calls = %v; want only disabled once", calls)
	}
}

func TestWhenOrElse(t *testing.T) {
	orElse := func() string { return "unknown" }
	if got := enum.WhenOrElse(active, branches(), orElse); got != "running" {
		t.Fatalf("WhenOrElse(active) = %q; want running", got)
	}
	if got := enum.WhenOrElse(disabled, branches(), orElse); got != "unknown" {
		t.Fatalf("WhenOrElse(disabled) = %q; want unknown", got)
	}
}

func TestMustWhenPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustWhen did not panic")
		}
	}()
	enum.MustWhen(disabled, branches())
}

func TestLabel(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{pendingReview, "Pending Review"},
		{active, "Active"},
		{"high_priority", "High Priority"},
		{"inProgress", "In Progress"},
		{42, "42"},
	}
	for _, tc := range tests {
		if got := enum.Label(tc.in); got != tc.want {
			t.Fatalf("Label(%v) = %q; want %q", tc.in, got, tc.want)
		}
	}
	labels := enum.Labels(all)
	if len(labels) != 3 || labels[1] != "Pending Review" {
		t.Fatalf("Labels = %v", labels)
	}
}

func TestParse(t *testing.T) {
	for _, in := range []string{"PendingReview", "pending review", "PENDING REVIEW"} {
		got, err := enum.Parse(in, all)
		if err != nil || got != pendingReview {
			t.Fatalf("Parse(%q) = %v, %v; want PendingReview", in, got, err)
		}
	}
	if _, err := enum.Parse("archived", all); !errors.Is(err, enum.ErrUnknownLabel) {
		t.Fatalf("Parse(archived) err = %v; want ErrUnknownLabel", err)
	}
}
