package dict

import (
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// Query evaluates a JSONPath expression against doc and returns the
// selected value. doc may be a *Map[string, any], a map[string]any, a []any
// or any mix of those; ordered maps are converted with [Native] first.
// Wildcards and filters yield a []any of matches.
//
//	Query(doc, "$.users[0].name")          // "Alice"
//	Query(doc, "$.users[?(@.age > 30)].name") // []any{"Bob"}
//
// Returns [ErrInvalidPath] wrapping the evaluator's error when the
// expression is malformed or selects nothing.
func Query(doc any, expr string) (any, error) {
	v, err := jsonpath.Get(expr, Native(doc))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPath, expr, err)
	}
	return v, nil
}
