package view

import "time"

var inputLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

// FormatDateTime renders a backend timestamp as e.g. "Jan 2, 2006, 03:04 PM".
// Values that do not parse are returned unchanged.
func FormatDateTime(raw string) string {
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("Jan 2, 2006, 03:04 PM")
		}
	}
	return raw
}
