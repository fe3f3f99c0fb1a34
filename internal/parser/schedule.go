package parser

import (
	"regexp"
	"strconv"
	"time"
)

// Time-of-day phrases, from most to least specific. Each pattern captures
// an hour and optionally minutes.
// "\b" cannot sit before "à" (not an ASCII word character), so the "às"
// variants anchor on start-of-line or whitespace instead.
var timePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:^|\s)[aà]s\s+(\d{1,2}):(\d{2})\b`),
	regexp.MustCompile(`(?i)(?:^|\s)[aà]s\s+(\d{1,2})h(\d{2})?\b`),
	regexp.MustCompile(`(?i)(?:^|\s)[aà]s\s+(\d{1,2})\s*(?:hs|horas)\b`),
	regexp.MustCompile(`\b(\d{1,2}):(\d{2})\b`),
	regexp.MustCompile(`(?i)\b(\d{1,2})h(\d{2})?\b`),
	regexp.MustCompile(`(?i)\b(\d{1,2})\s*(?:hs|horas)\b`),
}

// extractScheduledTime tries to read a pickup/delivery time from one
// message line. The returned time is today's date at that hour/minute.
func extractScheduledTime(line string) (time.Time, bool) {
	for _, pattern := range timePatterns {
		m := pattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		hour, err := strconv.Atoi(m[1])
		if err != nil || hour >= 24 {
			continue
		}
		minute := 0
		if len(m) > 2 && m[2] != "" {
			minute, err = strconv.Atoi(m[2])
			if err != nil || minute >= 60 {
				continue
			}
		}

		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location()), true
	}
	return time.Time{}, false
}
