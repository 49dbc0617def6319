package dailylog

import "time"

// Category is a daily-log status category. The Korean labels are the
// literal prefixes stored in log content, e.g. "[결근] 김철수, 이영희".
type Category string

const (
	CategoryAbsent     Category = "결근"
	CategoryLate       Category = "지각"
	CategoryEarlyLeave Category = "조퇴"
	CategoryOffDay     Category = "휴무"
)

// Categories lists every aggregated status category.
var Categories = []Category{CategoryAbsent, CategoryLate, CategoryEarlyLeave, CategoryOffDay}

// Log is a free-text or auto-aggregated note attached to a calendar date.
// For each (date, category) pair at most one row starts with the bracketed
// category prefix; its content is the aggregated name roster for that
// status. Rows without a recognized prefix are ordinary manager notes.
type Log struct {
	ID        string
	Date      time.Time
	Content   string
	AuthorID  *string
	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	AuthorName *string
}
