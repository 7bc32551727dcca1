package enum

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/hasbyte1/go-utility-belts/str"
)

// ─────────────────────────────────────────────────────────────────────────────
// Dispatch
// ─────────────────────────────────────────────────────────────────────────────

// When invokes the branch registered for v and returns its result.
// Returns [ErrNoMatch] when branches has no entry for v.
func When[E comparable, R any](v E, branches map[E]func() R) (R, error) {
	if fn, ok := branches[v]; ok && fn != nil {
		return fn(), nil
	}
	var zero R
	return zero, fmt.Errorf("%w: %v", ErrNoMatch, v)
}

// WhenOrElse invokes the branch registered for v, or orElse when there is
// none.
func WhenOrElse[E comparable, R any](v E, branches map[E]func() R, orElse func() R) R {
	if fn, ok := branches[v]; ok && fn != nil {
		return fn()
	}
	return orElse()
}

// MustWhen is like [When] but panics when no branch matches.
func MustWhen[E comparable, R any](v E, branches map[E]func() R) R {
	return lo.Must(When(v, branches))
}

// ─────────────────────────────────────────────────────────────────────────────
// Labels
// ─────────────────────────────────────────────────────────────────────────────

// Name returns the identifier form of v: v.String() for a fmt.Stringer,
// fmt.Sprint(v) otherwise.
func Name(v any) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(v)
}

// Label returns a title-cased, space-separated label for v derived from
// [Name].
//
//	Label(PendingReview) // "Pending Review"
//	Label("high_priority") // "High Priority"
func Label(v any) string {
	return str.TitleCase(Name(v))
}

// Labels returns the label of every value, in order.
func Labels[E any](values []E) []string {
	return lo.Map(values, func(v E, _ int) string { return Label(v) })
}

// Parse returns the first value in values whose [Name] or [Label] equals
// s, ignoring case. Returns [ErrUnknownLabel] when none does.
//
//	Parse("pending review", []Status{Active, PendingReview}) // PendingReview
func Parse[E any](s string, values []E) (E, error) {
	v, ok := lo.Find(values, func(v E) bool {
		return str.EqualsIgnoreCase(Name(v), s) || str.EqualsIgnoreCase(Label(v), s)
	})
	if !ok {
		return v, fmt.Errorf("%w: %q", ErrUnknownLabel, s)
	}
	return v, nil
}
