package flow

import (
	"math"
	"strconv"
	"strings"
)

// Variable is a named slot a bot fills while a conversation runs.
type Variable struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Value any    `json:"value,omitempty"`
}

// ParseGuessedValue coerces a raw string answer into the value a user most
// likely meant: booleans, null, or a number. Non-string values pass through.
// Strings with a leading zero ("0042") stay strings so phone numbers and
// codes keep their digits.
func ParseGuessedValue(value any) any {
	s, ok := value.(string)
	if !ok {
		return value
	}
	if strings.HasPrefix(s, "0") && !strings.HasPrefix(s, "0.") && len(s) > 1 {
		return s
	}

	switch s {
	case "true":
		return true
	case "false":
		return false
	case "null", "undefined":
		return nil
	}

	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return s
	}
	switch trimmed {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	n, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return s
	}
	return n
}
