package model

import (
	"fmt"
	"strings"
	"time"
)

// apiTimeLayouts covers the timestamp shapes the backend emits. The Flask
// services serialize naive ISO timestamps without a zone suffix, so plain
// RFC3339 parsing alone is not enough.
var apiTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// APITime is a backend timestamp. Zero value means the field was absent or
// null.
type APITime struct {
	time.Time
}

func (t *APITime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}

	for _, layout := range apiTimeLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp %q", s)
}

func (t APITime) MarshalJSON() ([]byte, error) {
	if t.Time.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Time.Format(time.RFC3339) + `"`), nil
}

// Display renders the timestamp for terminal output, empty when unset.
func (t APITime) Display() string {
	if t.Time.IsZero() {
		return ""
	}
	return t.Time.Format("02 Jan 2006")
}
