package extract

import (
	"encoding/json"
	"strings"

	"github.com/warmlinehq/warmline"
)

// Repair turns a possibly-wrapped, possibly-truncated completion response
// into a string that should decode as a JSON array. Each step is idempotent
// when its precondition already holds:
//
//  1. trim surrounding whitespace
//  2. strip a leading code fence (optionally tagged "json")
//  3. strip a trailing code fence
//  4. discard conversational preamble before the first '['
//  5. when the response was truncated, or does not end in ']', cut at the
//     last complete object close and append a single ']'
//
// Step 5 uses the last '}' byte found, not a JSON-aware scan. A '}' inside a
// string value can therefore cut more than one trailing record; this matches
// the upstream behavior the repair was built against.
func Repair(text string, truncated bool) string {
	s := strings.TrimSpace(text)

	if strings.HasPrefix(s, "```") {
		if i := strings.Index(s, "\n"); i >= 0 {
			s = s[i+1:]
		} else {
			s = s[3:]
		}
	}
	s = strings.TrimSpace(strings.TrimRight(s, "`"))

	if i := strings.Index(s, "["); i >= 0 {
		s = s[i:]
	}

	if truncated || !strings.HasSuffix(s, "]") {
		if i := strings.LastIndex(s, "}"); i >= 0 {
			s = s[:i+1] + "]"
		}
	}

	return s
}

// ParsePeople repairs a completion response and decodes it into a record
// list. A decode error after repair is terminal: EPARSE, no partial results.
func ParsePeople(text string, truncated bool) ([]*warmline.Person, error) {
	repaired := Repair(text, truncated)

	var people []*warmline.Person
	if err := json.Unmarshal([]byte(repaired), &people); err != nil {
		return nil, warmline.Errorf(warmline.EPARSE, "failed to decode extraction response: %v", err)
	}

	return people, nil
}
