package holiday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestIsWeekend(t *testing.T) {
	assert.True(t, IsWeekend(date("2025-03-08")))  // Saturday
	assert.True(t, IsWeekend(date("2025-03-09")))  // Sunday
	assert.False(t, IsWeekend(date("2025-03-10"))) // Monday
}

func TestCalendarIsHoliday(t *testing.T) {
	c := NewKoreanCalendar()

	assert.True(t, c.IsHoliday(date("2025-01-01")))
	assert.True(t, c.IsHoliday(date("2025-10-06")))
	assert.True(t, c.IsHoliday(date("2026-02-17")))
	assert.False(t, c.IsHoliday(date("2025-03-10")))
}

func TestIsWeekendOrHoliday(t *testing.T) {
	c := NewCalendar([]string{"2025-03-12"})

	assert.True(t, c.IsWeekendOrHoliday(date("2025-03-08")))  // Saturday
	assert.True(t, c.IsWeekendOrHoliday(date("2025-03-12")))  // listed holiday
	assert.False(t, c.IsWeekendOrHoliday(date("2025-03-11"))) // plain Tuesday
}
