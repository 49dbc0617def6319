package dailylog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryPrefix(t *testing.T) {
	assert.Equal(t, "[결근] ", CategoryAbsent.Prefix())
	assert.Equal(t, "[지각] ", CategoryLate.Prefix())
	assert.Equal(t, "[조퇴] ", CategoryEarlyLeave.Prefix())
	assert.Equal(t, "[휴무] ", CategoryOffDay.Prefix())
}

func TestSplitAggregate(t *testing.T) {
	tests := []struct {
		name      string
		category  Category
		content   string
		wantNames []string
		wantOK    bool
	}{
		{
			name:      "single name",
			category:  CategoryAbsent,
			content:   "[결근] 김철수",
			wantNames: []string{"김철수"},
			wantOK:    true,
		},
		{
			name:      "multiple names",
			category:  CategoryLate,
			content:   "[지각] 김철수, 이영희, 박민수",
			wantNames: []string{"김철수", "이영희", "박민수"},
			wantOK:    true,
		},
		{
			name:      "empty list",
			category:  CategoryOffDay,
			content:   "[휴무] ",
			wantNames: nil,
			wantOK:    true,
		},
		{
			name:      "ragged spacing and empty segments",
			category:  CategoryAbsent,
			content:   "[결근]  김철수 ,, 이영희",
			wantNames: []string{"김철수", "이영희"},
			wantOK:    true,
		},
		{
			name:     "wrong category prefix",
			category: CategoryAbsent,
			content:  "[지각] 김철수",
			wantOK:   false,
		},
		{
			name:     "missing trailing space",
			category: CategoryAbsent,
			content:  "[결근]김철수",
			wantOK:   false,
		},
		{
			name:     "free-form note",
			category: CategoryAbsent,
			content:  "재고 정리 완료",
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			names, ok := SplitAggregate(tt.category, tt.content)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestJoinAggregate(t *testing.T) {
	assert.Equal(t, "[결근] 김철수, 이영희", JoinAggregate(CategoryAbsent, []string{"김철수", "이영희"}))
	assert.Equal(t, "[휴무] ", JoinAggregate(CategoryOffDay, nil))
}

func TestSplitJoinRoundTrip(t *testing.T) {
	names := []string{"김철수", "이영희", "박민수"}
	content := JoinAggregate(CategoryEarlyLeave, names)
	parsed, ok := SplitAggregate(CategoryEarlyLeave, content)
	assert.True(t, ok)
	assert.Equal(t, names, parsed)
}

func TestAddName(t *testing.T) {
	names := AddName(nil, "김철수")
	assert.Equal(t, []string{"김철수"}, names)

	names = AddName(names, "이영희")
	assert.Equal(t, []string{"김철수", "이영희"}, names)

	// Duplicate adds are no-ops.
	names = AddName(names, "김철수")
	assert.Equal(t, []string{"김철수", "이영희"}, names)
}

func TestRemoveName(t *testing.T) {
	names := []string{"김철수", "이영희", "박민수"}

	assert.Equal(t, []string{"김철수", "박민수"}, RemoveName(names, "이영희"))

	// Absent name leaves the list alone.
	assert.Equal(t, []string{"김철수", "박민수"}, RemoveName([]string{"김철수", "박민수"}, "최지훈"))

	assert.Empty(t, RemoveName([]string{"김철수"}, "김철수"))
}
