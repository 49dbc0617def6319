package cron

import (
	"context"
	"time"

	attendanceService "github.com/depotworks/workforce-backend-go/internal/service/attendance"
)

// RegisterAttendanceJobs wires the hourly sweep that promotes scheduled
// attendance records to present once the local cutoff hour has passed.
func RegisterAttendanceJobs(s *Scheduler, service attendanceService.AttendanceService) {
	s.AddJob("auto_advance_scheduled", time.Hour, func(ctx context.Context) error {
		_, err := service.AutoAdvance(ctx, time.Now())
		return err
	})
}
