package reports

import (
	"errors"
	"time"
)

// GetDateRange returns the registration-date window for a preset relative to now.
// "all" (or empty) means no window and returns nil bounds. For "custom" startStr/endStr
// are "2006-01-02" dates and the end day is included.
func GetDateRange(dateRange, startStr, endStr string, now time.Time) (*time.Time, *time.Time, error) {
	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	endOfDay := func(t time.Time) time.Time { return t.AddDate(0, 0, 1).Add(-time.Nanosecond) }

	var start, end time.Time
	switch dateRange {
	case "", DateRangeAll:
		return nil, nil, nil
	case DateRangeDaily:
		start, end = today, endOfDay(today)
	case DateRangeWeekly:
		// last 7 days including today
		start, end = today.AddDate(0, 0, -6), endOfDay(today)
	case DateRangeMonthly:
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		end = start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	case DateRangeYearly:
		start = time.Date(now.Year(), 1, 1, 0, 0, 0, 0, loc)
		end = start.AddDate(1, 0, 0).Add(-time.Nanosecond)
	case DateRangeCustom:
		if startStr == "" || endStr == "" {
			return nil, nil, errors.New("startDate and endDate required for custom range")
		}
		s, err := time.ParseInLocation("2006-01-02", startStr, loc)
		if err != nil {
			return nil, nil, errors.New("startDate must be YYYY-MM-DD")
		}
		e, err := time.ParseInLocation("2006-01-02", endStr, loc)
		if err != nil {
			return nil, nil, errors.New("endDate must be YYYY-MM-DD")
		}
		if s.After(e) {
			return nil, nil, errors.New("startDate must be before endDate")
		}
		start, end = s, endOfDay(e)
	default:
		return nil, nil, errors.New("dateRange must be one of all, daily, weekly, monthly, yearly, custom")
	}
	return &start, &end, nil
}
