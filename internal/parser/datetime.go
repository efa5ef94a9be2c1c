package parser

import "time"

// FormatOrgDate formats a time as org-mode date
func FormatOrgDate(t time.Time) string {
	return t.Format("2006-01-02 Mon")
}
