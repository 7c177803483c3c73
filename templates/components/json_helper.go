package components

import (
	"encoding/json"
)

// JSON marshals an object to a JSON string, returning "{}" on error.
// "<" is escaped so the result is safe inside a script element.
func JSON(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}
