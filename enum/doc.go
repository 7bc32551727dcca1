// Package enum adds exhaustive-style dispatch and human-readable labels to
// Go's constant-based enums.
//
// Any comparable type works as an enum. Dispatch takes a map of branches:
//
//	msg, err := enum.When(status, map[Status]func() string{
//		Active:   func() string { return "running" },
//		Disabled: func() string { return "stopped" },
//	})
//
// Labels are derived from the value's String method (or its fmt.Sprint
// form) by splitting on case and separator boundaries:
//
//	enum.Label(InProgress) // "In Progress" when InProgress.String() == "InProgress"
package enum
