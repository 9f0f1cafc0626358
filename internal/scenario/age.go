package scenario

import (
	"strings"
	"time"
)

// DateLayout is the ISO calendar date accepted for birth dates.
const DateLayout = "2006-01-02"

// ParseBirthDate parses s as a calendar date in loc.
func ParseBirthDate(s, layout string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(layout, s, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Age returns whole years elapsed between an ISO birth date and now. The
// year difference drops by one until the birthday has been reached in the
// current year. Empty or unparseable input yields 0.
func Age(birthDate string, now time.Time) int {
	return ageWithLayout(birthDate, DateLayout, now)
}

func ageWithLayout(birthDate, layout string, now time.Time) int {
	birth, ok := ParseBirthDate(birthDate, layout, now.Location())
	if !ok {
		return 0
	}
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}
