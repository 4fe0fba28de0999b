// Package query filters command output with jq expressions.
package query

import (
	"encoding/json"
	"fmt"

	"github.com/itchyny/gojq"
)

// Apply runs the jq expression expr over v and returns every emitted value.
// v is first normalised through JSON so struct tags decide the field names.
func Apply(expr string, v any) ([]any, error) {
	q, err := gojq.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("parse query: %w", err)
	}
	code, err := gojq.Compile(q)
	if err != nil {
		return nil, fmt.Errorf("compile query: %w", err)
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var input any
	if err := json.Unmarshal(raw, &input); err != nil {
		return nil, err
	}

	var out []any
	iter := code.Run(input)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, ok := v.(error); ok {
			if haltErr, ok := err.(*gojq.HaltError); ok && haltErr.Value() == nil {
				break
			}
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
