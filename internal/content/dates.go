package content

import "time"

// The CMS is inconsistent about date fields: full RFC3339 timestamps and
// bare dates both occur.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// parseDate example "2025-12-01T09:15:00Z" or "2025-12-01"
func parseDate(value string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

// displayDate renders a date for presentation, passing unparseable values
// through untouched rather than dropping them.
func displayDate(value string) string {
	t := parseDate(value)
	if t.IsZero() {
		return value
	}
	return t.Format("2 Jan 2006")
}
