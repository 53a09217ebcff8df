package timezone

import "time"

const DefaultTimezone = "America/Argentina/Buenos_Aires"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

// ParseDateTime parses "2006-01-02 15:04" in the platform timezone.
func ParseDateTime(date, hour string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02 15:04",
		date+" "+hour,
		Location(DefaultTimezone),
	)
}
