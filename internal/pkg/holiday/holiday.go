package holiday

import "time"

// Calendar answers whether a calendar date is a non-working day. The
// holiday set is static per-year data supplied at construction; lunar
// holidays shift every year, so each supported year is listed explicitly.
type Calendar struct {
	holidays map[string]struct{}
}

// NewCalendar builds a calendar from explicit holiday dates (YYYY-MM-DD).
func NewCalendar(dates []string) *Calendar {
	set := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		set[d] = struct{}{}
	}
	return &Calendar{holidays: set}
}

// NewKoreanCalendar returns a calendar preloaded with Korean public
// holidays for the years the roster planner supports.
func NewKoreanCalendar() *Calendar {
	return NewCalendar([]string{
		// 2025
		"2025-01-01", // 신정
		"2025-01-28", "2025-01-29", "2025-01-30", // 설날 연휴
		"2025-03-01", "2025-03-03", // 삼일절 (대체공휴일 포함)
		"2025-05-05", "2025-05-06", // 어린이날/부처님오신날
		"2025-06-06", // 현충일
		"2025-08-15", // 광복절
		"2025-10-03", // 개천절
		"2025-10-05", "2025-10-06", "2025-10-07", "2025-10-08", // 추석 연휴
		"2025-10-09", // 한글날
		"2025-12-25", // 성탄절
		// 2026
		"2026-01-01",
		"2026-02-16", "2026-02-17", "2026-02-18",
		"2026-03-01", "2026-03-02",
		"2026-05-05",
		"2026-05-24", "2026-05-25",
		"2026-06-06",
		"2026-08-15", "2026-08-17",
		"2026-09-24", "2026-09-25", "2026-09-26",
		"2026-10-03", "2026-10-05",
		"2026-10-09",
		"2026-12-25",
	})
}

// IsHoliday reports whether date is a listed public holiday.
func (c *Calendar) IsHoliday(date time.Time) bool {
	_, ok := c.holidays[date.Format("2006-01-02")]
	return ok
}

// IsWeekend reports whether date falls on Saturday or Sunday.
func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsWeekendOrHoliday reports whether date is a weekend or public holiday.
func (c *Calendar) IsWeekendOrHoliday(date time.Time) bool {
	return IsWeekend(date) || c.IsHoliday(date)
}
